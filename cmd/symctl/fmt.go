package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
)

func newFmtCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [flags] <file.sym>...",
		Short: "Rewrite SYM files in their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFmt(args, write)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "write result to the source file instead of stdout")

	return cmd
}

func runFmt(args []string, write bool) error {
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		v, err := sym.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		formatted := symconvert.Emit(v) + "\n"

		if !write {
			if len(args) > 1 {
				fmt.Printf("# %s\n", path)
			}

			fmt.Print(formatted)

			continue
		}

		if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}
