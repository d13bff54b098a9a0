package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/khmerlegacy"
	"github.com/npillmayer/khmerlegacy/fontdata"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func newRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:          "khmerconv",
		Short:        "Convert Khmer text between legacy font encodings and Unicode",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return configure(v)
		},
		Run: func(cmd *cobra.Command, _ []string) { _ = cmd.Help() },
	}
	flags := root.PersistentFlags()
	flags.StringP("fontdata", "d", "fontdata.xml", "XML file with font descriptions")
	flags.String("config", "", "configuration file")
	flags.String("trace", "error", "trace level: debug, info or error")
	root.MarkPersistentFlagFilename("fontdata", "xml")
	bindFlags(v, flags, "fontdata", "config", "trace")
	v.SetEnvPrefix("KHMERCONV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root.AddCommand(newConvertCommand(v))
	root.AddCommand(newCheckCommand(v))
	root.AddCommand(newFontsCommand(v))
	return root
}

// bindFlags lets viper read the given keys from flags.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}
}

func configure(v *viper.Viper) error {
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading configuration: %w", err)
		}
	}
	level, err := traceLevel(v.GetString("trace"))
	if err != nil {
		return err
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	return nil
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", name)
}

func loadRegistry(v *viper.Viper) (*fontdata.Registry, error) {
	path := v.GetString("fontdata")
	gtrace.CoreTracer.Debugf("reading font descriptions from %s", path)
	return fontdata.LoadFile(path)
}

func loadConverter(v *viper.Viper) (*khmerlegacy.Converter, error) {
	reg, err := loadRegistry(v)
	if err != nil {
		return nil, err
	}
	return khmerlegacy.NewConverter(reg), nil
}
