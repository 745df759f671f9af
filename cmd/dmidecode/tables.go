package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/internal/source"
	"github.com/zenithax-cc/dmidecode/pkg/smbios"
)

// table is one decoded structure table and where it came from.
type table struct {
	Name       string
	Raw        *source.Raw
	Collection *smbios.Collection
}

// loadTables reads the live table, or every configured dump file with at
// most Workers of them in flight.
func (a *app) loadTables(ctx context.Context) ([]table, error) {
	version, err := a.cfg.SmbiosVersion()
	if err != nil {
		return nil, err
	}
	opts := source.Options{Fs: a.fs, Envelope: a.cfg.Envelope, Version: version}

	if a.cfg.Source != source.KindFile {
		src, err := source.New(a.cfg.Source, opts)
		if err != nil {
			return nil, err
		}
		t, err := readTable(ctx, src)
		if err != nil {
			return nil, err
		}
		return []table{t}, nil
	}

	tables := make([]table, len(a.cfg.Files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, path := range a.cfg.Files {
		g.Go(func() error {
			fileOpts := opts
			fileOpts.Path = path
			src, err := source.New(source.KindFile, fileOpts)
			if err != nil {
				return err
			}
			t, err := readTable(ctx, src)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// readTable reads and decodes one source. A truncated table is reported
// and the structures decoded before the damage are kept.
func readTable(ctx context.Context, src source.Source) (table, error) {
	raw, err := src.Read(ctx)
	if err != nil {
		return table{}, fmt.Errorf("%s: %w", src.Name(), err)
	}

	c, err := raw.Decode()
	if c == nil {
		return table{}, fmt.Errorf("%s: %w", src.Name(), err)
	}
	if err != nil {
		log.Warn().Err(err).Str("source", src.Name()).Int("structures", c.Len()).
			Msg("table is damaged, showing the structures before it")
	}

	logger := log.Debug().Str("source", src.Name()).Int("structures", c.Len())
	if v, ok := c.Version(); ok {
		logger = logger.Stringer("version", v)
	}
	logger.Msg("table decoded")

	return table{Name: src.Name(), Raw: raw, Collection: c}, nil
}

type sourced struct {
	Source string `json:"source" yaml:"source"`
	Data   any    `json:"data" yaml:"data"`
}

// emit renders one result per table. With several tables, JSON and YAML
// output becomes a list of results labelled by source, and text output
// gets a header line per table.
func emit[T any](w io.Writer, f output.Format, tables []table, build func(table) (T, error),
	write func(io.Writer, output.Format, T) error) error {
	if len(tables) == 1 {
		v, err := build(tables[0])
		if err != nil {
			return err
		}
		return write(w, f, v)
	}

	results := make([]T, 0, len(tables))
	for _, t := range tables {
		v, err := build(t)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Name, err)
		}
		results = append(results, v)
	}

	if f == output.FormatJSON || f == output.FormatYAML {
		list := make([]sourced, len(tables))
		for i, t := range tables {
			list[i] = sourced{Source: t.Name, Data: results[i]}
		}
		return output.WriteValue(w, f, list)
	}

	for i, t := range tables {
		fmt.Fprintf(w, "# %s\n\n", t.Name)
		if err := write(w, f, results[i]); err != nil {
			return err
		}
	}
	return nil
}
