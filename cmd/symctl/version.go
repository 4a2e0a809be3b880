package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Konfuzian/symbolic-language/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print symctl's build and runtime version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			fmt.Printf("symctl version %s\n", nonEmpty(version.Version, "dev"))
			fmt.Printf("  revision:   %s\n", version.Revision)
			fmt.Printf("  branch:     %s\n", nonEmpty(version.Branch, "unknown"))
			fmt.Printf("  built by:   %s\n", nonEmpty(version.BuildUser, "unknown"))
			fmt.Printf("  built at:   %s\n", nonEmpty(version.BuildDate, "unknown"))
			fmt.Printf("  go version: %s\n", version.GoVersion)
			fmt.Printf("  platform:   %s/%s\n", version.GoOS, version.GoArch)

			return nil
		},
	}
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
