// Command symview is an interactive terminal browser for SYM documents:
// it renders the parsed value as a collapsible tree, alongside a log
// pane fed by the document engine's debug output.
//
// When stdout is not a terminal, symview falls back to printing the
// document's canonical SYM text and exiting, so it composes with pipes
// the same way `symctl fmt` does.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/Konfuzian/symbolic-language"
	"github.com/Konfuzian/symbolic-language/symconvert"
	"github.com/Konfuzian/symbolic-language/symlog"
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: symview <file.sym> | -\n")

		return 1
	}

	path := os.Args[1]

	data, err := readSource(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	publisher := symlog.NewPublisher()
	defer publisher.Close()

	sub := publisher.Subscribe()

	handler := symlog.CreateHandler(publisher, slog.LevelDebug, symlog.FormatLogfmt)
	logger := slog.New(handler)

	result, err := sym.ParseDetailed(string(data), nil, sym.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "SYM parse error: %v\n", err)

		return 1
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(symconvert.Emit(result.Value))

		return 0
	}

	m := newModel(result, path, sub)

	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

func readSource(path string) ([]byte, error) {
	if path == "-" {
		return readAllStdin()
	}

	return os.ReadFile(path)
}
