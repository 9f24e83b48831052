package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vango-dev/commonui/pkg/server"
)

func variantsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List supported button variants",
		Long: `List every supported type and background mode pair with the style
table keys it resolves to.

Examples:
  commonui variants
  commonui variants --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			variants := server.Variants()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(variants)
			}

			rows := lo.Map(variants, func(v server.VariantInfo, _ int) []string {
				return []string{v.Type, v.Mode, v.ContainerKey, v.LabelKey}
			})
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("TYPE", "MODE", "CONTAINER", "LABEL").
				Rows(rows...)
			fmt.Fprintln(cmd.OutOrStdout(), t.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}
