// Package rules provides the built-in formatting rules for swiftfmt.
//
// # Rules
//
//   - Spacing:
//
//   - spaceInsideBrackets: no space just inside square brackets
//
//   - spaceInsideParens: no space just inside parentheses
//
//   - consecutiveSpaces: runs of spaces between tokens become one space
//
//   - Whitespace and layout:
//
//   - trailingSpace: no space at the end of a line (see trimwhitespace)
//
//   - consecutiveBlankLines: at most one blank line in a row
//
//   - linebreakAtEndOfFile: files end with exactly one linebreak
//
//   - semicolons: no statement-ending semicolons (see semicolons)
//
//   - Organization:
//
//   - sortImports: import blocks are sorted (see importgrouping)
//
//   - trailingCommas: multiline collection literals end with a comma (see commas)
//
// Every rule walks the buffer with the formatter's traversal functions, so
// "swiftformat:disable" directives apply to all of them.
package rules
