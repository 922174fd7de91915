package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zgpcy/clock-icon-animator/internal/clockicon"
	"github.com/zgpcy/clock-icon-animator/internal/theme"
)

func newValidateCmd() *cobra.Command {
	var themePath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check which icons of a theme pack can be animated",
		Long: `validate loads every icon of a theme pack with second hands enabled and
reports whether it animates or falls back to static rendering. It fails
only when the pack itself cannot be loaded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := theme.Load(themePath)
			if err != nil {
				return err
			}

			icons, failed := clockicon.LoadAll(pack, clockicon.Settings{DisableSeconds: false})
			out := cmd.OutOrStdout()
			for _, icon := range icons {
				cfg := icon.Config()
				fmt.Fprintf(out, "%-36s ok: %d layers", icon.Package, cfg.LayerCount())
				for _, hand := range clockicon.Hands {
					if cfg.Has(hand) {
						fmt.Fprintf(out, " %s@%d", hand, cfg.Layer(hand))
					}
				}
				fmt.Fprintln(out)
			}
			printStatic(out, failed, pack.Packages())
			fmt.Fprintf(out, "%s: %d animated, %d static\n", pack.Name(), len(icons), len(failed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "Path to theme pack")
	_ = cmd.MarkFlagRequired("theme")
	return cmd
}
