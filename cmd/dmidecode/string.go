package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

var errUnknownKeyword = errors.New("unknown string keyword")

// stringGetter returns one value per matching structure.
type stringGetter func(*smbios.Collection) []string

func values[S smbios.Structure, V any](get func(S) smbios.Field[V]) stringGetter {
	return func(c *smbios.Collection) []string {
		var out []string
		for _, s := range smbios.Find[S](c) {
			if f := get(s); f.Present() {
				out = append(out, strings.TrimSpace(f.String()))
			}
		}
		return out
	}
}

// stringKeywords are the dmidecode --string keywords.
var stringKeywords = map[string]stringGetter{
	"bios-vendor":             values((*smbios.BIOSInformation).Vendor),
	"bios-version":            values((*smbios.BIOSInformation).BIOSVersion),
	"bios-release-date":       values((*smbios.BIOSInformation).ReleaseDate),
	"system-manufacturer":     values((*smbios.SystemInformation).Manufacturer),
	"system-product-name":     values((*smbios.SystemInformation).ProductName),
	"system-version":          values((*smbios.SystemInformation).SystemVersion),
	"system-serial-number":    values((*smbios.SystemInformation).SerialNumber),
	"system-uuid":             values((*smbios.SystemInformation).UUID),
	"system-sku-number":       values((*smbios.SystemInformation).SKUNumber),
	"system-family":           values((*smbios.SystemInformation).Family),
	"baseboard-manufacturer":  values((*smbios.BaseboardInformation).Manufacturer),
	"baseboard-product-name":  values((*smbios.BaseboardInformation).Product),
	"baseboard-version":       values((*smbios.BaseboardInformation).BoardVersion),
	"baseboard-serial-number": values((*smbios.BaseboardInformation).SerialNumber),
	"baseboard-asset-tag":     values((*smbios.BaseboardInformation).AssetTag),
	"chassis-manufacturer":    values((*smbios.ChassisInformation).Manufacturer),
	"chassis-type":            values((*smbios.ChassisInformation).ChassisType),
	"chassis-version":         values((*smbios.ChassisInformation).ChassisVersion),
	"chassis-serial-number":   values((*smbios.ChassisInformation).SerialNumber),
	"chassis-asset-tag":       values((*smbios.ChassisInformation).AssetTag),
	"processor-family":        values((*smbios.ProcessorInformation).EffectiveFamily),
	"processor-manufacturer":  values((*smbios.ProcessorInformation).Manufacturer),
	"processor-version":       values((*smbios.ProcessorInformation).ProcessorVersion),
	"processor-frequency":     processorFrequency,
}

func processorFrequency(c *smbios.Collection) []string {
	var out []string
	for _, p := range smbios.Find[*smbios.ProcessorInformation](c) {
		if mhz, ok := p.CurrentSpeed().Get(); ok {
			out = append(out, fmt.Sprintf("%d MHz", mhz))
		}
	}
	return out
}

func (a *app) stringCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "string KEYWORD [FILE...]",
		Short:       "Print the value of a single well known string",
		Long:        "Print the value of a single well known string. Keywords:\n  " + strings.Join(slices.Sorted(maps.Keys(stringKeywords)), "\n  "),
		Args:        cobra.MinimumNArgs(1),
		Annotations: map[string]string{fileArgsFrom: "1"},
		ValidArgs:   slices.Sorted(maps.Keys(stringKeywords)),
		RunE: func(cmd *cobra.Command, args []string) error {
			get, ok := stringKeywords[args[0]]
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownKeyword, args[0])
			}

			tables, err := a.loadTables(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), a.cfg.Format, tables, func(t table) ([]string, error) {
				return get(t.Collection), nil
			}, writeStrings)
		},
	}
}

func writeStrings(w io.Writer, f output.Format, values []string) error {
	if f == output.FormatJSON || f == output.FormatYAML {
		return output.WriteValue(w, f, values)
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	return nil
}
