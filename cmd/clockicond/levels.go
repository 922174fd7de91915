package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"github.com/zgpcy/clock-icon-animator/internal/theme"
)

func newLevelsCmd() *cobra.Command {
	var (
		themePath string
		at        string
		seconds   bool
	)

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the hand levels of every icon in a theme pack",
		Example: `  clockicond levels --theme configs/theme.yaml
  clockicond levels --theme configs/theme.yaml --at 03:15:30 --seconds`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				t, err := time.ParseInLocation(time.TimeOnly, at, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --at %q, want HH:MM:SS: %w", at, err)
				}
				now = t
			}

			pack, err := theme.Load(themePath)
			if err != nil {
				return err
			}

			settings := clockicon.DefaultSettings()
			settings.DisableSeconds = !seconds

			icons, failed := clockicon.LoadAll(pack, settings)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s at %s\n", pack.Name(), now.Format(time.TimeOnly))
			for _, icon := range icons {
				fmt.Fprintf(out, "%-36s %s\n", icon.Package, formatLevels(icon.Tick(now)))
			}
			printStatic(out, failed, pack.Packages())
			return nil
		},
	}

	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "Path to theme pack")
	cmd.Flags().StringVar(&at, "at", "", "Time of day as HH:MM:SS (default now)")
	cmd.Flags().BoolVar(&seconds, "seconds", false, "Include second hands")
	_ = cmd.MarkFlagRequired("theme")
	return cmd
}
