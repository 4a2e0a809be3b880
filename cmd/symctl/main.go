// Command symctl is the CLI entry point for the SYM configuration
// notation: it parses, formats, and converts documents between SYM,
// JSON, YAML, and TOML.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Konfuzian/symbolic-language/symlog"
)

func main() {
	logCfg := symlog.NewConfig()

	rootCmd := &cobra.Command{
		Use:           "symctl",
		Short:         "Parse, format, and convert SYM documents",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	var logger *slog.Logger

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		handler, err := logCfg.NewHandler(os.Stderr)
		if err != nil {
			return err
		}

		logger = slog.New(handler)

		return nil
	}

	rootCmd.AddCommand(
		newParseCmd(&logger),
		newConvertCmd(),
		newFmtCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// readInputs resolves a list of file arguments (or a single "-e" inline
// expression) into their raw textual content. The "-" path reads stdin,
// matching the reference CLI and spec.md §6's "stdin via -" convention.
func readInputs(args []string, expr string) ([][]byte, []string, error) {
	if expr != "" {
		return [][]byte{[]byte(expr)}, []string{"<expression>"}, nil
	}

	if len(args) == 0 {
		return nil, nil, errNoInput
	}

	var (
		inputs [][]byte
		names  []string
	)

	for _, arg := range args {
		data, err := readOne(arg)
		if err != nil {
			return nil, nil, err
		}

		inputs = append(inputs, data)
		names = append(names, arg)
	}

	return inputs, names, nil
}

func readOne(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := readAllStdin()
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", arg, err)
	}

	return data, nil
}
