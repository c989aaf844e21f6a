// Package langdetect decides which files swiftfmt should format.
// It uses go-enry (linguist's data) so that extensionless scripts, vendored
// dependencies and generated sources are classified the same way GitHub
// classifies them.
package langdetect

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
	"github.com/gobwas/glob"
)

// Swift is the linguist name of the Swift language.
const Swift = "Swift"

// Detect returns the linguist language of a file, or "" when unknown.
// The extension is trusted when it is unambiguous; otherwise the shebang,
// then content heuristics, decide.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return lang
	}
	if len(content) == 0 {
		return ""
	}
	return enry.GetLanguage(filepath.Base(path), content)
}

// IsSwift reports whether the file holds Swift source.
func IsSwift(path string, content []byte) bool {
	return Detect(path, content) == Swift
}

// swiftVendorDirs covers dependency checkouts linguist does not know about.
var swiftVendorDirs = glob.MustCompile( //nolint:gochecknoglobals
	"{Pods/**,**/Pods/**,.build/**,**/.build/**}", '/')

// IsVendored reports whether path lies in a dependency directory such as
// Pods/ or Carthage/.
func IsVendored(path string) bool {
	slashed := filepath.ToSlash(path)
	return swiftVendorDirs.Match(slashed) || enry.IsVendor(slashed)
}

// IsGenerated reports whether the file looks machine-generated.
func IsGenerated(path string, content []byte) bool {
	return enry.IsGenerated(path, content)
}
