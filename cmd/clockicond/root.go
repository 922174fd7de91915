package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"github.com/zgpcy/clock-icon-animator/internal/version"
)

// newRootCmd builds the command tree. Each call returns fresh flag state.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clockicond",
		Short: "Clock icon animator",
		Long: `clockicond keeps the hands of clock launcher icons in step with the
time of day. Icons and their hand layers come from a YAML theme pack;
computed levels are exported as Prometheus metrics and a small JSON API.`,
		Version:      version.Get().Version,
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCmd(),
		newLevelsCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return root
}

// formatLevels renders the present hands, e.g. "hour=195 minute=195"
func formatLevels(levels clockicon.Levels) string {
	parts := make([]string, 0, len(clockicon.Hands))
	for _, hand := range clockicon.Hands {
		if level, ok := levels.Get(hand); ok {
			parts = append(parts, fmt.Sprintf("%s=%d", hand, level))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func printStatic(w io.Writer, failed map[string]error, packages []string) {
	for _, pkg := range packages {
		if err, ok := failed[pkg]; ok {
			fmt.Fprintf(w, "%-36s static: %v\n", pkg, err)
		}
	}
}
