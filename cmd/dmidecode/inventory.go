package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/internal/inventory"
	"github.com/zenithax-cc/dmidecode/internal/output"
)

func (a *app) inventoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "inventory [FILE...]",
		Short:       "Summarize firmware, system, board, chassis, processors and memory",
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{fileArgsFrom: "0"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := a.loadTables(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Format, tables, func(t table) (*inventory.Inventory, error) {
				inv, err := inventory.Collect(cmd.Context(), t.Collection)
				// Missing sections were logged; print what was found.
				if err != nil && !errors.Is(err, inventory.ErrSectionNotFound) {
					return nil, err
				}
				return inv, nil
			}, writeInventory)
		},
	}
}

func writeInventory(w io.Writer, f output.Format, inv *inventory.Inventory) error {
	return output.WriteValue(w, f, inv)
}
