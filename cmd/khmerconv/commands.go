package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/khmerlegacy/khmer"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newConvertCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Convert a text file, or standard input",
		Long: `Convert text typed in a legacy Khmer font to Unicode, or vice versa.
With --to=auto, input containing Khmer Unicode is converted to the legacy
encoding, any other input is converted to Unicode.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, v, args)
		},
	}
	cmd.Flags().StringP("font", "f", "", "name of the legacy font")
	cmd.Flags().String("to", "auto", "target encoding: unicode, legacy or auto")
	bindFlags(v, cmd.Flags(), "font", "to")
	return cmd
}

func runConvert(cmd *cobra.Command, v *viper.Viper, args []string) error {
	font := v.GetString("font")
	if font == "" {
		return errors.New("no font given, use --font")
	}
	conv, err := loadConverter(v)
	if err != nil {
		return err
	}
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	enc, err := conv.Encoding(font)
	if err != nil {
		return err
	}
	target := strings.ToLower(v.GetString("to"))
	if target == "auto" {
		target = "unicode"
		if utf8.Valid(data) && khmer.ContainsKhmer(string(data)) {
			target = "legacy"
		}
	}
	var out []byte
	switch target {
	case "unicode":
		out, err = enc.NewDecoder().Bytes(data)
	case "legacy":
		out, err = enc.NewEncoder().Bytes(data)
	default:
		return fmt.Errorf("unknown target encoding %q", target)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func newCheckCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check NAME...",
		Short: "Check if fonts are convertible",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(v)
			if err != nil {
				return err
			}
			unknown := 0
			for _, name := range args {
				fonttype, ok := reg.FontType(name)
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not convertible\n", name)
					unknown++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: font type %s (%s)\n", name, fonttype,
					reg.DefaultFont(fonttype))
			}
			if unknown > 0 {
				return fmt.Errorf("%d of %d fonts not convertible", unknown, len(args))
			}
			return nil
		},
	}
}

func newFontsCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "fonts",
		Short: "List convertible font types and their names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := loadRegistry(v)
			if err != nil {
				return err
			}
			for _, fonttype := range reg.FontTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", fonttype, reg.DefaultFont(fonttype),
					strings.Join(reg.FontNames(fonttype), ", "))
			}
			return nil
		},
	}
}
