package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a source path to name its backup.
const BackupSuffix = ".swiftfmt.orig"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies content to the sidecar backup of info.Path unless a
// backup already exists, so repeated runs keep the oldest original.
// It reports whether a backup was written.
func CreateBackup(ctx context.Context, info *FileInfo, content []byte) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}

	backupPath := BackupPath(info.Path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, content, info.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
