package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
)

func newConvertCmd() *cobra.Command {
	var (
		from string
		to   string
	)

	cmd := &cobra.Command{
		Use:   "convert [flags] <file>... | -",
		Short: "Convert one or more documents between SYM, JSON, YAML, and TOML",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConvert(args, from, to)
		},
	}

	cmd.Flags().StringVar(&from, "from", "sym", "input format: sym, json, yaml, toml")
	cmd.Flags().StringVar(&to, "to", "sym", "output format: sym, json, yaml, toml")

	return cmd
}

// runConvert decodes each path under from, deep-merging the results left
// to right so a later file's fields win, then encodes the merged tree as
// to. A single path is the common case and simply skips the merge.
func runConvert(paths []string, from, to string) error {
	var (
		merged sym.Value
		first  = true
	)

	for _, path := range paths {
		data, err := readOne(path)
		if err != nil {
			return err
		}

		v, err := decodeFormat(from, data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if first {
			merged = v
			first = false
		} else {
			merged = sym.DeepMerge(merged, v)
		}
	}

	encoded, err := encodeFormat(to, merged)
	if err != nil {
		return err
	}

	fmt.Println(string(encoded))

	return nil
}

func decodeFormat(format string, data []byte) (sym.Value, error) {
	switch format {
	case "sym":
		return sym.Parse(string(data))
	case "json":
		return symconvert.FromJSON(data)
	case "yaml":
		return symconvert.FromYAML(data)
	case "toml":
		return symconvert.FromTOML(data)
	default:
		return sym.Value{}, fmt.Errorf("unknown input format %q: want sym, json, yaml, or toml", format)
	}
}

func encodeFormat(format string, v sym.Value) ([]byte, error) {
	switch format {
	case "sym":
		return []byte(symconvert.Emit(v)), nil
	case "json":
		return symconvert.ToJSON(v)
	case "yaml":
		return symconvert.ToYAML(v)
	case "toml":
		return symconvert.ToTOML(v)
	default:
		return nil, fmt.Errorf("unknown output format %q: want sym, json, yaml, or toml", format)
	}
}
