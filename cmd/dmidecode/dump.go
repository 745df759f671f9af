package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

var errSingleTable = errors.New("dump needs exactly one table")

type dumpOptions struct {
	out  string
	wrap bool
}

func (a *app) dumpCmd() *cobra.Command {
	var opts dumpOptions

	cmd := &cobra.Command{
		Use:   "dump [FILE...]",
		Short: "Write the raw structure table to a file",
		Long: "Write the raw structure table to a file. The result can be decoded later\n" +
			"with --file. With --wrap the table is prefixed with a RawSMBIOSData\n" +
			"header carrying its version, the layout Windows returns.",
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{fileArgsFrom: "0"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			tables, err := a.loadTables(cmd.Context())
			if err != nil {
				return err
			}
			if len(tables) != 1 {
				return fmt.Errorf("%w, have %d", errSingleTable, len(tables))
			}

			data, err := dumpBytes(tables[0], opts.wrap)
			if err != nil {
				return err
			}
			if err := afero.WriteFile(a.fs, opts.out, data, 0o644); err != nil {
				return fmt.Errorf("dump: %w", err)
			}

			log.Info().Str("path", opts.out).Int("bytes", len(data)).Msg("table written")
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.out, "out", "", "destination file")
	cmd.Flags().BoolVar(&opts.wrap, "wrap", false, "prefix the table with a RawSMBIOSData header")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// dumpBytes returns the table of t, adding or removing the envelope as
// asked.
func dumpBytes(t table, wrap bool) ([]byte, error) {
	if t.Raw.Envelope {
		if wrap {
			return t.Raw.Data, nil
		}
		env, err := smbios.ParseEnvelope(t.Raw.Data)
		if err != nil {
			return nil, err
		}
		return env.Table, nil
	}

	if !wrap {
		return t.Raw.Data, nil
	}
	v, ok := t.Collection.Version()
	if !ok {
		log.Warn().Str("source", t.Name).Msg("table version unknown, header will say 0.0")
	}
	return smbios.NewEnvelope(v, t.Raw.Data).Bytes(), nil
}
