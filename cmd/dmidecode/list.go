package main

import (
	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/internal/output"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "list [FILE...]",
		Short:       "List every structure with its handle, type and length",
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{fileArgsFrom: "0"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := a.loadTables(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Format, tables, func(t table) ([]output.Record, error) {
				return output.DescribeAll(t.Collection), nil
			}, output.WriteSummary)
		},
	}
}
