package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
)

// newParseCmd builds the `parse` subcommand. logger is filled in by the
// root command's PersistentPreRunE, so it is read lazily from RunE
// rather than captured by value at command-construction time.
func newParseCmd(logger **slog.Logger) *cobra.Command {
	var (
		expr       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "parse [flags] <file.sym>... | -",
		Short: "Parse SYM documents and print their resolved value",
		RunE: func(_ *cobra.Command, args []string) error {
			return runParse(args, expr, jsonOutput, *logger)
		},
	}

	cmd.Flags().StringVarP(&expr, "expr", "e", "", "parse an inline SYM expression instead of a file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print the resolved value as JSON instead of SYM")

	return cmd
}

func runParse(args []string, expr string, jsonOutput bool, logger *slog.Logger) error {
	inputs, names, err := readInputs(args, expr)
	if err != nil {
		return err
	}

	results := make([]sym.Value, len(inputs))

	group := errgroup.Group{}

	for i := range inputs {
		group.Go(func() error {
			opts := []sym.Option{}
			if logger != nil {
				opts = append(opts, sym.WithLogger(logger))
			}

			v, err := sym.ParseDetailed(string(inputs[i]), nil, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", names[i], err)
			}

			results[i] = v.Value

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	for i, v := range results {
		if len(results) > 1 {
			fmt.Printf("# %s\n", names[i])
		}

		if err := printValue(v, jsonOutput); err != nil {
			return err
		}
	}

	return nil
}

func printValue(v sym.Value, jsonOutput bool) error {
	if !jsonOutput {
		fmt.Println(symconvert.Emit(v))

		return nil
	}

	out, err := symconvert.ToJSON(v)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	var pretty interface{}
	if err := json.Unmarshal(out, &pretty); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	indented, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	fmt.Println(string(indented))

	return nil
}
