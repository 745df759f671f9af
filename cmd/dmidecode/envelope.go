package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/internal/source"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

var errNoEnvelopeFile = errors.New("envelope needs at least one dump file")

// envelopeInfo describes the RawSMBIOSData header of a dump.
type envelopeInfo struct {
	Path                string `json:"path" yaml:"path" name:"Path"`
	Used20CallingMethod bool   `json:"used_20_calling_method" yaml:"used_20_calling_method" name:"2.0 Calling Method" color:"trueGreen"`
	Version             string `json:"version" yaml:"version" name:"SMBIOS Version" color:"DefaultGreen"`
	TableLength         uint32 `json:"table_length" yaml:"table_length" name:"Table Length"`
	Structures          int    `json:"structures" yaml:"structures" name:"Structures"`
	Damaged             string `json:"damaged,omitempty" yaml:"damaged,omitempty" name:"Damaged"`
}

func (a *app) envelopeCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "envelope [FILE...]",
		Short:       "Show the RawSMBIOSData header of Windows table dumps",
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{fileArgsFrom: "0"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(a.cfg.Files) == 0 {
				return errNoEnvelopeFile
			}
			infos := make([]envelopeInfo, 0, len(a.cfg.Files))
			for _, path := range a.cfg.Files {
				info, err := a.readEnvelope(cmd.Context(), path)
				if err != nil {
					return err
				}
				infos = append(infos, info)
			}
			return writeEnvelopes(cmd.OutOrStdout(), a.cfg.Format, infos)
		},
	}
}

// readEnvelope reads path as an enveloped dump, subject to the same size
// cap as every other dump file.
func (a *app) readEnvelope(ctx context.Context, path string) (envelopeInfo, error) {
	src := &source.File{Fs: a.fs, Path: path, Envelope: source.EnvelopeYes}
	raw, err := src.Read(ctx)
	if err != nil {
		return envelopeInfo{}, fmt.Errorf("envelope: %w", err)
	}

	env, c, err := smbios.DecodeEnvelope(raw.Data)
	if env == nil {
		return envelopeInfo{}, fmt.Errorf("envelope: %s: %w", path, err)
	}

	info := envelopeInfo{
		Path:                path,
		Used20CallingMethod: env.Used20CallingMethod != 0,
		Version:             env.Version().String(),
		TableLength:         env.Length,
		Structures:          c.Len(),
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("table is damaged")
		info.Damaged = err.Error()
	}
	return info, nil
}

func writeEnvelopes(w io.Writer, f output.Format, infos []envelopeInfo) error {
	if f == output.FormatJSON || f == output.FormatYAML {
		return output.WriteValue(w, f, infos)
	}
	for _, info := range infos {
		if err := output.WriteValue(w, f, info); err != nil {
			return err
		}
	}
	return nil
}
