package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

var (
	errUnknownType = errors.New("unknown structure type")
	errBadHandle   = errors.New("invalid handle")
)

// typeKeywords groups related structure types the way dmidecode --type
// does.
var typeKeywords = map[string][]smbios.Type{
	"bios":      {smbios.TypeBIOS, smbios.TypeBIOSLanguage},
	"system":    {smbios.TypeSystem, smbios.TypeSystemConfigurationOptions, smbios.TypeSystemEventLog, smbios.TypeSystemReset, smbios.TypeSystemBoot},
	"baseboard": {smbios.TypeBaseBoard, smbios.TypeOnBoardDevices, smbios.TypeOnboardDevicesExtended},
	"chassis":   {smbios.TypeChassis},
	"processor": {smbios.TypeProcessor},
	"memory":    {smbios.TypeMemoryController, smbios.TypeMemoryModule, smbios.TypePhysicalMemoryArray, smbios.TypeMemoryDevice},
	"cache":     {smbios.TypeCache},
	"connector": {smbios.TypePortConnector},
	"slot":      {smbios.TypeSystemSlots},
}

type showOptions struct {
	types  []string
	handle string
}

func (a *app) showCmd() *cobra.Command {
	var opts showOptions

	cmd := &cobra.Command{
		Use:         "show [FILE...]",
		Short:       "Decode structures, optionally filtered by type or handle",
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{fileArgsFrom: "0"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			types, err := parseTypes(opts.types)
			if err != nil {
				return err
			}
			var handle *smbios.Handle
			if opts.handle != "" {
				h, err := parseHandle(opts.handle)
				if err != nil {
					return err
				}
				handle = &h
			}

			tables, err := a.loadTables(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Format, tables, func(t table) ([]output.Record, error) {
				return selectRecords(t.Collection, types, handle), nil
			}, output.WriteRecords)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.types, "type", "t", nil, "only show these types, by number or keyword ("+keywordList()+")")
	cmd.Flags().StringVarP(&opts.handle, "handle", "H", "", "only show the structure with this handle")
	return cmd
}

func selectRecords(c *smbios.Collection, types []smbios.Type, handle *smbios.Handle) []output.Record {
	if handle != nil {
		s, ok := c.ByHandle(*handle)
		if !ok || (len(types) > 0 && !slices.Contains(types, s.Type())) {
			return nil
		}
		return []output.Record{output.Describe(s)}
	}

	var out []output.Record
	for _, s := range c.All() {
		if len(types) > 0 && !slices.Contains(types, s.Type()) {
			continue
		}
		out = append(out, output.Describe(s))
	}
	return out
}

// parseTypes accepts decimal or 0x-prefixed type numbers and keywords.
func parseTypes(args []string) ([]smbios.Type, error) {
	var types []smbios.Type
	for _, arg := range args {
		arg = strings.ToLower(strings.TrimSpace(arg))
		if group, ok := typeKeywords[arg]; ok {
			types = append(types, group...)
			continue
		}
		n, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errUnknownType, arg)
		}
		types = append(types, smbios.Type(n))
	}
	slices.Sort(types)
	return slices.Compact(types), nil
}

func parseHandle(arg string) (smbios.Handle, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 0, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errBadHandle, arg)
	}
	return smbios.Handle(n), nil
}

func keywordList() string {
	return strings.Join(slices.Sorted(maps.Keys(typeKeywords)), ", ")
}
