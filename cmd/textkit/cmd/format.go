package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/i18n"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/timex"
)

func newSizeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "size <bytes>",
		Short: "Format a byte count with unit names of the locale",
		Long: `Examples:
  textkit size 1536              # 1.5 Кб
  textkit --locale en size 21    # 21 bytes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return mdwerrors.InvalidInput(mdwerrors.ModuleFilex, "format_size", args[0], "a whole number of bytes")
			}
			out, err := filex.FormatSize(size, a.locale)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newDurationCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "duration <seconds|duration>",
		Short: "Spell out a duration in days, hours, minutes and seconds",
		Long: `The argument is a number of seconds or a Go duration such as 1h30m.

Examples:
  textkit duration 97200          # 1 день 3 часа
  textkit duration --short 97200  # 1д 3ч`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				out string
				err error
			)
			if seconds, perr := strconv.ParseInt(args[0], 10, 64); perr == nil {
				out, err = timex.FormatSeconds(seconds, short, a.locale)
			} else if d, derr := time.ParseDuration(args[0]); derr == nil {
				out, err = timex.FormatDuration(d, short, a.locale)
			} else {
				return mdwerrors.InvalidInput(mdwerrors.ModuleTimex, "format_seconds", args[0], "seconds or a duration like 1h30m")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "use unit suffixes instead of names")
	return cmd
}

func newPluralCmd(a *app) *cobra.Command {
	var cldr bool

	cmd := &cobra.Command{
		Use:   "plural <n> <one> <few> <many>",
		Short: "Pick the noun form that agrees with a number",
		Long: `Uses the Russian rule by default: 1, 21, 31 take <one>; 2-4, 22-24 take
<few>; everything else, including 11-19, takes <many>. With --cldr the
plural rules of --locale select the form instead.

Example:
  textkit plural 22 день дня дней   # дня`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return mdwerrors.InvalidInput(mdwerrors.ModuleI18n, "plural", args[0], "an integer")
			}
			forms := [3]string{args[1], args[2], args[3]}

			var out string
			if cldr {
				out = i18n.Plural(a.locale, n, forms[:]...)
			} else {
				out = i18n.CaseForNumber(n, forms)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&cldr, "cldr", false, "use the CLDR plural rules of the locale")
	return cmd
}
