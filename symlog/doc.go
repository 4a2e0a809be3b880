// Package symlog provides structured logging handler construction for use
// with [log/slog], for the sym document engine and its CLI tools.
//
// It supports two output formats ([FormatJSON] and [FormatLogfmt]) over the
// four severity levels already defined by [log/slog]. Use [CreateHandler] to
// build a handler directly, or use [Config] for CLI flag integration via
// [github.com/spf13/pflag] and shell completion via [github.com/spf13/cobra]:
//
//	cfg := symlog.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// A [Publisher] fans out log output to multiple subscribers, used by
// cmd/symview to feed its log pane without standing up a second handler:
//
//	pub := symlog.NewPublisher()
//	handler := symlog.CreateHandler(pub, slog.LevelDebug, symlog.FormatJSON)
//	logger := slog.New(handler)
//
//	sub := pub.Subscribe()
//	go func() {
//	    for entry := range sub.C() {
//	        // Deliver entry to the TUI's log viewport.
//	    }
//	}()
package symlog
