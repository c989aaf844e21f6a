package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// FormatOptions holds the formatting options rules read while they run.
// Directive comments may replace the active value for part of a file.
type FormatOptions struct {
	// Indent is the indentation unit, e.g. four spaces or a tab.
	Indent string `yaml:"indent" toml:"indent"`

	// Linebreak is the line terminator used for inserted linebreaks.
	Linebreak string `yaml:"linebreak" toml:"linebreak"`

	// MaxWidth is the preferred maximum line width; 0 means unlimited.
	MaxWidth int `yaml:"maxwidth" toml:"maxwidth"`

	// Allman places opening braces on their own line.
	Allman bool `yaml:"allman" toml:"allman"`

	// TrimWhitespace is "always" or "nonblank-lines".
	TrimWhitespace string `yaml:"trimwhitespace" toml:"trimwhitespace"`

	// Commas is "always" or "inline" for trailing commas in collections.
	Commas string `yaml:"commas" toml:"commas"`

	// Semicolons is "inline" or "never".
	Semicolons string `yaml:"semicolons" toml:"semicolons"`

	// ImportGrouping is "alpha", "length", "testable-first" or "testable-last".
	ImportGrouping string `yaml:"importgrouping" toml:"importgrouping"`

	// NoSpaceOperators lists operators that must not be surrounded by spaces.
	NoSpaceOperators []string `yaml:"nospaceoperators" toml:"nospaceoperators"`

	// Acronyms lists acronyms that are capitalized consistently.
	Acronyms []string `yaml:"acronyms" toml:"acronyms"`

	// SwiftVersion is the target language version, empty if unknown.
	SwiftVersion string `yaml:"swiftversion" toml:"swiftversion"`
}

// DefaultFormatOptions returns the option values used when nothing is configured.
func DefaultFormatOptions() FormatOptions {
	opts := FormatOptions{}
	for _, desc := range descriptors {
		// Defaults are valid by construction; see TestDescriptorDefaults.
		_ = desc.set(&opts, desc.Default)
	}
	return opts
}

// Clone returns a deep copy of the options.
func (o FormatOptions) Clone() FormatOptions {
	o.NoSpaceOperators = slices.Clone(o.NoSpaceOperators)
	o.Acronyms = slices.Clone(o.Acronyms)
	return o
}

// Equal reports whether two option sets are identical.
func (o FormatOptions) Equal(other FormatOptions) bool {
	for _, desc := range descriptors {
		if desc.get(&o) != desc.get(&other) {
			return false
		}
	}
	return true
}

// Descriptor describes one named option: its help text, default, accepted
// values, and how to read and write it on FormatOptions.
type Descriptor struct {
	// Name is the stable option name used by flags, config files and directives.
	Name string

	// Help is a one-line description.
	Help string

	// Default is the textual default value.
	Default string

	// Values lists the accepted values; nil means free-form with custom validation.
	Values []string

	// List marks comma-separated list options.
	List bool

	// Bool marks boolean options, which may be given as a bare flag.
	Bool bool

	get func(*FormatOptions) string
	set func(*FormatOptions, string) error
}

// Get returns the textual value of the option in opts.
func (d *Descriptor) Get(opts *FormatOptions) string { return d.get(opts) }

// Set validates value and stores it in opts.
func (d *Descriptor) Set(opts *FormatOptions, value string) error {
	if err := d.set(opts, value); err != nil {
		return &OptionError{Option: d.Name, Value: value, Message: err.Error()}
	}
	return nil
}

// Descriptors returns the option table ordered by name.
func Descriptors() []*Descriptor {
	return slices.Clone(descriptors)
}

// Lookup returns the descriptor with the given name.
func Lookup(name string) (*Descriptor, bool) {
	name = strings.ToLower(strings.TrimPrefix(name, "--"))
	idx := slices.IndexFunc(descriptors, func(d *Descriptor) bool { return d.Name == name })
	if idx < 0 {
		return nil, false
	}
	return descriptors[idx], true
}

// OptionError describes an invalid option name or value.
type OptionError struct {
	// Option is the option name, without dashes.
	Option string

	// Value is the rejected value, if any.
	Value string

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	if e.Option == "" {
		return e.Message
	}
	if e.Value == "" {
		return fmt.Sprintf("--%s: %s", e.Option, e.Message)
	}
	return fmt.Sprintf("--%s %q: %s", e.Option, e.Value, e.Message)
}

//nolint:gochecknoglobals // Read-only lookup table.
var linebreakValues = map[string]string{
	"cr":   "\r",
	"crlf": "\r\n",
	"lf":   "\n",
	"lfcr": "\n\r",
}

//nolint:gochecknoglobals // Read-only lookup table.
var swiftVersionPattern = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)

// descriptors is the option table, sorted by name.
//
//nolint:gochecknoglobals // Read-only lookup table.
var descriptors = []*Descriptor{
	{
		Name:    "acronyms",
		Help:    "Acronyms to auto-capitalize",
		Default: "ID,URL,UUID",
		List:    true,
		get:     func(o *FormatOptions) string { return strings.Join(o.Acronyms, ",") },
		set: func(o *FormatOptions, value string) error {
			list, err := parseList(value)
			if err != nil {
				return err
			}
			o.Acronyms = list
			return nil
		},
	},
	{
		Name:    "allman",
		Help:    "Use allman indentation style: \"true\" or \"false\"",
		Default: "false",
		Values:  []string{"true", "false"},
		Bool:    true,
		get:     func(o *FormatOptions) string { return strconv.FormatBool(o.Allman) },
		set: func(o *FormatOptions, value string) error {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("expected true or false")
			}
			o.Allman = parsed
			return nil
		},
	},
	{
		Name:    "commas",
		Help:    "Commas in collection literals: \"always\" or \"inline\"",
		Default: "always",
		Values:  []string{"always", "inline"},
		get:     func(o *FormatOptions) string { return o.Commas },
		set: func(o *FormatOptions, value string) error {
			return setEnum(&o.Commas, value, "always", "inline")
		},
	},
	{
		Name:    "importgrouping",
		Help:    "Import grouping: \"alpha\", \"length\", \"testable-first\" or \"testable-last\"",
		Default: "alpha",
		Values:  []string{"alpha", "length", "testable-first", "testable-last"},
		get:     func(o *FormatOptions) string { return o.ImportGrouping },
		set: func(o *FormatOptions, value string) error {
			return setEnum(&o.ImportGrouping, value, "alpha", "length", "testable-first", "testable-last")
		},
	},
	{
		Name:    "indent",
		Help:    "Number of spaces to indent, or \"tab\" to use tabs",
		Default: "4",
		get: func(o *FormatOptions) string {
			if o.Indent == "\t" {
				return "tab"
			}
			return strconv.Itoa(len(o.Indent))
		},
		set: func(o *FormatOptions, value string) error {
			switch strings.ToLower(value) {
			case "tab", "tabs", "tabbed":
				o.Indent = "\t"
				return nil
			}
			width, err := strconv.Atoi(value)
			if err != nil || width < 1 {
				return fmt.Errorf("expected a positive number or \"tab\"")
			}
			o.Indent = strings.Repeat(" ", width)
			return nil
		},
	},
	{
		Name:    "linebreaks",
		Help:    "Linebreak character to use: \"cr\", \"crlf\", \"lf\" or \"lfcr\"",
		Default: "lf",
		Values:  []string{"cr", "crlf", "lf", "lfcr"},
		get: func(o *FormatOptions) string {
			for name, text := range linebreakValues {
				if text == o.Linebreak {
					return name
				}
			}
			return ""
		},
		set: func(o *FormatOptions, value string) error {
			text, ok := linebreakValues[strings.ToLower(value)]
			if !ok {
				return fmt.Errorf("expected one of cr, crlf, lf, lfcr")
			}
			o.Linebreak = text
			return nil
		},
	},
	{
		Name:    "maxwidth",
		Help:    "Maximum length of a line before wrapping, or \"none\"",
		Default: "none",
		get: func(o *FormatOptions) string {
			if o.MaxWidth == 0 {
				return "none"
			}
			return strconv.Itoa(o.MaxWidth)
		},
		set: func(o *FormatOptions, value string) error {
			if strings.EqualFold(value, "none") {
				o.MaxWidth = 0
				return nil
			}
			width, err := strconv.Atoi(value)
			if err != nil || width < 1 {
				return fmt.Errorf("expected a positive number or \"none\"")
			}
			o.MaxWidth = width
			return nil
		},
	},
	{
		Name:    "nospaceoperators",
		Help:    "Comma-delimited list of operators without surrounding space",
		Default: "",
		List:    true,
		get:     func(o *FormatOptions) string { return strings.Join(o.NoSpaceOperators, ",") },
		set: func(o *FormatOptions, value string) error {
			list, err := parseList(value)
			if err != nil {
				return err
			}
			o.NoSpaceOperators = list
			return nil
		},
	},
	{
		Name:    "semicolons",
		Help:    "Allow semicolons: \"inline\" or \"never\"",
		Default: "inline",
		Values:  []string{"inline", "never"},
		get:     func(o *FormatOptions) string { return o.Semicolons },
		set: func(o *FormatOptions, value string) error {
			return setEnum(&o.Semicolons, value, "inline", "never")
		},
	},
	{
		Name:    "swiftversion",
		Help:    "The Swift compiler version used in the files",
		Default: "",
		get:     func(o *FormatOptions) string { return o.SwiftVersion },
		set: func(o *FormatOptions, value string) error {
			if value != "" && !swiftVersionPattern.MatchString(value) {
				return fmt.Errorf("expected a version such as 5.9")
			}
			o.SwiftVersion = value
			return nil
		},
	},
	{
		Name:    "trimwhitespace",
		Help:    "Trim trailing space: \"always\" or \"nonblank-lines\"",
		Default: "always",
		Values:  []string{"always", "nonblank-lines"},
		get:     func(o *FormatOptions) string { return o.TrimWhitespace },
		set: func(o *FormatOptions, value string) error {
			return setEnum(&o.TrimWhitespace, value, "always", "nonblank-lines")
		},
	},
}

func setEnum(field *string, value string, allowed ...string) error {
	value = strings.ToLower(value)
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("expected one of %s", strings.Join(allowed, ", "))
	}
	*field = value
	return nil
}

// parseList splits a comma-separated list, rejecting duplicate entries.
func parseList(value string) ([]string, error) {
	var list []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if slices.Contains(list, item) {
			return nil, fmt.Errorf("duplicate value %q", item)
		}
		list = append(list, item)
	}
	return list, nil
}
