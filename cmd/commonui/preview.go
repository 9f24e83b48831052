package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/button"
	"github.com/vango-dev/commonui/pkg/gallery"
	"github.com/vango-dev/commonui/pkg/termpreview"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

func previewCmd(load configLoader) *cobra.Command {
	var (
		typ      string
		mode     string
		state    string
		platform string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview buttons in the terminal",
		Long: `Draw gallery buttons as terminal swatches.

Without filters every supported variant is drawn in every state.

Examples:
  commonui preview
  commonui preview --type Danger
  commonui preview --type PrimaryColoredBackground --mode Blue --state waiting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			p, err := platformFor(platform, cfg)
			if err != nil {
				return err
			}

			entries, err := gallery.Entries(p)
			if err != nil {
				return err
			}
			if typ != "" {
				t, err := button.ParseType(typ)
				if err != nil {
					return err
				}
				entries = gallery.Filter(entries, func(v button.Variant) bool { return v.Type == t })
			}
			if mode != "" {
				m, err := button.ParseBackgroundMode(mode)
				if err != nil {
					return err
				}
				entries = gallery.Filter(entries, func(v button.Variant) bool { return v.Mode == m })
			}

			opts := termpreview.Options{Width: width}
			shown := 0
			for _, e := range entries {
				if state != "" && e.State != state {
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), headingStyle.Render(e.ID))
				fmt.Fprintln(cmd.OutOrStdout(), termpreview.Render(e.Node, opts))
				shown++
			}
			if shown == 0 {
				return errors.New(errors.CodeUnsupportedVariant).
					WithDetail("no gallery entry matches the filters").
					WithSuggestion("Run 'commonui variants' to list supported pairs.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typ, "type", "t", "", "Only this button type")
	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Only this background mode")
	cmd.Flags().StringVarP(&state, "state", "s", "", "Only this state (default, small, fullWidth, icon, disabled, waiting)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "Style platform (default from commonui.json)")
	cmd.Flags().IntVarP(&width, "width", "w", 40, "Columns used by full-width buttons")

	return cmd
}
