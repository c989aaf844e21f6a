package config

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/pflag"
)

// SplitArgs splits option arguments the way a shell would, honouring quotes
// and backslash escapes.
func SplitArgs(text string) ([]string, error) {
	args, err := shlex.Split(text)
	if err != nil {
		return nil, fmt.Errorf("split arguments %q: %w", text, err)
	}
	return args, nil
}

// ParseArgs applies command-line style option arguments ("--indent 2",
// "--maxwidth=100", "--allman") on top of base and returns the result.
// base is not modified. Every failure is an *OptionError.
func ParseArgs(base FormatOptions, args []string) (FormatOptions, error) {
	opts := base.Clone()

	flags := pflag.NewFlagSet("options", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)

	values := make(map[string]*string, len(descriptors))
	for _, desc := range descriptors {
		values[desc.Name] = flags.String(desc.Name, desc.Get(&opts), desc.Help)
		if desc.Bool {
			flags.Lookup(desc.Name).NoOptDefVal = "true"
		}
	}

	if err := checkNames(args); err != nil {
		return base, err
	}
	if err := flags.Parse(args); err != nil {
		return base, &OptionError{Message: err.Error()}
	}

	if positional := flags.Args(); len(positional) > 0 {
		return base, &OptionError{Message: fmt.Sprintf("unexpected argument %q", positional[0])}
	}

	var setErr error
	flags.Visit(func(flag *pflag.Flag) {
		if setErr != nil {
			return
		}
		desc, _ := Lookup(flag.Name)
		setErr = desc.Set(&opts, *values[flag.Name])
	})
	if setErr != nil {
		return base, setErr
	}

	return opts, nil
}

// checkNames reports the first flag in args that names no known option.
func checkNames(args []string) error {
	for _, arg := range args {
		if arg == "--" {
			return nil
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if _, ok := Lookup(name); !ok {
			return &OptionError{Option: name, Message: "unknown option"}
		}
	}
	return nil
}

// ApplyValues applies option values keyed by name, as loaded from a config
// file, on top of opts. Values may be strings, numbers, booleans, or lists.
func ApplyValues(opts FormatOptions, values map[string]any) (FormatOptions, error) {
	result := opts.Clone()

	for _, name := range slices.Sorted(maps.Keys(values)) {
		desc, ok := Lookup(name)
		if !ok {
			return opts, &OptionError{Option: name, Message: "unknown option"}
		}
		text, err := valueString(values[name])
		if err != nil {
			return opts, &OptionError{Option: name, Message: err.Error()}
		}
		if err := desc.Set(&result, text); err != nil {
			return opts, err
		}
	}

	return result, nil
}

// valueString renders a decoded config value in flag syntax.
func valueString(value any) (string, error) {
	switch typed := value.(type) {
	case string:
		return typed, nil
	case bool:
		return strconv.FormatBool(typed), nil
	case int:
		return strconv.Itoa(typed), nil
	case int64:
		return strconv.FormatInt(typed, 10), nil
	case uint64:
		return strconv.FormatUint(typed, 10), nil
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), nil
	case []string:
		return strings.Join(typed, ","), nil
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			text, err := valueString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
