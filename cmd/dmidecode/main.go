// Command dmidecode decodes the SMBIOS structure table of the running
// system or of dump files and prints it in a human readable form.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"slices"
	"strconv"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zenithax-cc/dmidecode/internal/config"
	"github.com/zenithax-cc/dmidecode/internal/logging"
	"github.com/zenithax-cc/dmidecode/internal/output"
	"github.com/zenithax-cc/dmidecode/internal/source"
)

type rootFlags struct {
	configPath string
	source     string
	envelope   string
	format     string
	logLevel   string
	workers    int
	version    string
	files      []string
	noColor    bool
}

// fileArgsFrom annotates commands whose positional arguments, from the
// given index on, name dump files.
const fileArgsFrom = "file-args-from"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	fs    afero.Fs
	flags rootFlags
	cfg   *config.Config
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, cfg: config.Default()}

	root := &cobra.Command{
		Use:               "dmidecode",
		Short:             "Decode SMBIOS structure tables",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVarP(&a.flags.source, "source", "s", string(source.KindAuto), "table source: auto, sysfs, devmem, firmware or file")
	pf.StringVar(&a.flags.envelope, "envelope", string(source.EnvelopeAuto), "dump files carry a RawSMBIOSData header: auto, yes or no")
	pf.StringVarP(&a.flags.format, "format", "o", string(output.FormatText), "output format: text, table, json or yaml")
	pf.StringVar(&a.flags.logLevel, "log-level", "info", "log level")
	pf.IntVarP(&a.flags.workers, "workers", "j", 4, "dump files decoded concurrently")
	pf.StringVar(&a.flags.version, "smbios-version", "", "SMBIOS version of bare dumps, e.g. 3.4")
	pf.StringSliceVarP(&a.flags.files, "file", "f", nil, "decode dump files instead of the running system")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.stringCmd(),
		a.inventoryCmd(),
		a.dumpCmd(),
		a.envelopeCmd(),
	)
	return root
}

// setup loads the configuration file, lets flags override it and installs
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read(a.fs, a.flags.configPath)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, cfg, fileArgs(cmd, args))
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Setup(cfg.LogLevel, cmd.ErrOrStderr(), true); err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	a.cfg = cfg
	return nil
}

func fileArgs(cmd *cobra.Command, args []string) []string {
	from, ok := cmd.Annotations[fileArgsFrom]
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(from)
	if err != nil || len(args) <= n {
		return nil
	}
	return args[n:]
}

func (a *app) applyFlags(cmd *cobra.Command, c *config.Config, files []string) {
	changed := cmd.Flags().Changed

	if changed("source") {
		c.Source = source.Kind(a.flags.source)
	}
	if changed("envelope") {
		c.Envelope = source.EnvelopeMode(a.flags.envelope)
	}
	if changed("format") {
		c.Format = output.Format(a.flags.format)
	}
	if changed("log-level") {
		c.LogLevel = a.flags.logLevel
	}
	if changed("workers") {
		c.Workers = a.flags.workers
	}
	if changed("smbios-version") {
		c.Version = a.flags.version
	}
	if changed("file") || len(files) > 0 {
		var named []string
		if changed("file") {
			named = a.flags.files
		}
		c.Files = append(slices.Clone(named), files...)
	}
	if changed("no-color") {
		c.NoColor = a.flags.noColor
	}

	// Naming files is enough to read them.
	if len(c.Files) > 0 && c.Source == source.KindAuto {
		c.Source = source.KindFile
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(afero.NewOsFs()).ExecuteContext(ctx); err != nil {
		if errors.Is(err, os.ErrPermission) {
			log.Error().Err(err).Msg("reading the live table requires root")
		} else {
			log.Error().Err(err).Send()
		}
		stop()
		os.Exit(1)
	}
}
