package formatter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/yaklabco/swiftfmt/pkg/config"
)

// DirectivePrefix starts every directive comment body.
const DirectivePrefix = "swiftformat:"

//nolint:gochecknoglobals // Read-only lookup table.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_]+`)

// processCommentBody interprets a comment body found at index during traversal.
func (f *Formatter) processCommentBody(text string, index int) {
	rest, ok := strings.CutPrefix(text, DirectivePrefix)
	if !ok {
		return
	}
	line := f.OriginalLine(index)

	word, args := rest, ""
	if end := strings.IndexFunc(rest, unicode.IsSpace); end >= 0 {
		word, args = rest[:end], strings.TrimSpace(rest[end:])
	}
	if word == "" {
		f.recordError(ParsingError, fmt.Sprintf("expected directive after %q on line %d", DirectivePrefix, line))
		return
	}

	directive, suffix, hasSuffix := strings.Cut(word, ":")
	if hasSuffix && suffix != "next" {
		directive = ""
	}
	next := hasSuffix

	switch directive {
	case "disable":
		if f.namesCurrentRule(args) {
			if next {
				f.disabledNext = 1
				f.wasNextDirective = true
			} else {
				f.disabledCount++
			}
		}
	case "enable":
		if f.namesCurrentRule(args) {
			if next {
				f.disabledNext = -1
				f.wasNextDirective = true
			} else {
				f.disabledCount = max(f.disabledCount-1, 0)
			}
		}
	case "options":
		f.applyOptionsDirective(args, next, line)
	case "sort":
		// Reserved for rules that sort declarations; no engine state.
	default:
		f.recordError(ParsingError, fmt.Sprintf("unknown directive %s%s on line %d", DirectivePrefix, word, line))
	}
}

// namesCurrentRule reports whether a directive argument list names the
// current rule or "all". Names are whole words compared with case folding.
func (f *Formatter) namesCurrentRule(args string) bool {
	folder := cases.Fold()
	rule := folder.String(f.rule)
	for _, name := range nonWord.Split(args, -1) {
		if name == "" {
			continue
		}
		name = folder.String(name)
		if name == "all" || (rule != "" && name == rule) {
			return true
		}
	}
	return false
}

func (f *Formatter) applyOptionsDirective(args string, next bool, line int) {
	argv, err := config.SplitArgs(args)
	if err != nil {
		f.recordError(ParsingError, fmt.Sprintf("invalid %soptions directive on line %d: %v", DirectivePrefix, line, err))
		return
	}

	opts, err := config.ParseArgs(f.options, argv)
	if err != nil {
		f.recordError(OptionsError, fmt.Sprintf("invalid %soptions directive on line %d: %v", DirectivePrefix, line, err))
		return
	}

	if next {
		if f.tempOptions == nil {
			saved := f.options
			f.tempOptions = &saved
		}
		f.wasNextDirective = true
	}
	f.options = opts
}

// processLinebreak ends a one-shot window. The linebreak that terminates the
// directive's own comment line is consumed without ending it.
func (f *Formatter) processLinebreak() {
	if f.wasNextDirective {
		f.wasNextDirective = false
		return
	}
	f.disabledNext = 0
	if f.tempOptions != nil {
		f.options = *f.tempOptions
		f.tempOptions = nil
	}
}
