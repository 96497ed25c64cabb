package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/logging"
)

func newURLCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Check, normalize, beautify or split a single URL",
		Long: `Works on one URL at a time.

normalize and beautify exit with status 2 when the input is not a URL.`,
	}

	var scheme string
	normalize := &cobra.Command{
		Use:   "normalize <url>",
		Short: "Add the default scheme to a URL without one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scheme") {
				scheme = a.cfg.URL.DefaultScheme
			}
			out, ok := stringx.NormalizeURL(args[0], scheme)
			if !ok {
				a.logger.Debug("not a URL", logging.KeyValues("input", args[0]))
				return errNoResult
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	normalize.Flags().StringVar(&scheme, "scheme", "", "scheme for URLs without one (default: config url.default_scheme)")

	var maxPathLen int
	beautify := &cobra.Command{
		Use:   "beautify <url>",
		Short: "Shorten a URL to a readable label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-path") {
				maxPathLen = a.cfg.URL.MaxPathLen
			}
			out, ok := stringx.BeautifyURL(args[0], maxPathLen)
			if !ok {
				a.logger.Debug("not a URL", logging.KeyValues("input", args[0]))
				return errNoResult
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	beautify.Flags().IntVar(&maxPathLen, "max-path", 0, "maximum path length (default: config url.max_path_len)")

	check := &cobra.Command{
		Use:   "check <url>",
		Short: "Print whether the argument is a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), stringx.IsURL(args[0]))
			return nil
		},
	}

	parts := &cobra.Command{
		Use:   "parts <url>",
		Short: "Split a URL into scheme, host and path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := stringx.ParseURLParts(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "scheme: %s\n", p.Scheme)
			fmt.Fprintf(out, "host:   %s\n", p.Host)
			fmt.Fprintf(out, "path:   %s\n", p.Path)
			return nil
		},
	}

	cmd.AddCommand(check, normalize, beautify, parts)
	return cmd
}
