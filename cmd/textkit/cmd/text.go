package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/core/i18n"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newShortenCmd(a *app) *cobra.Command {
	var (
		maxLen int
		glue   string
	)

	cmd := &cobra.Command{
		Use:   "shorten [text]",
		Short: "Cut the middle out of a text",
		Long: `Keeps the head and the tail of the text and joins them with the glue so
that the result is at most --max characters long.

Examples:
  textkit shorten --max 15 /a/very/long/path/that/exceeds/limit
  echo "Hello, world!" | textkit shorten --max 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("glue") {
				glue = a.cfg.Truncate.Glue
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.Shorten(text, maxLen, glue))
			return nil
		},
	}

	cmd.Flags().IntVarP(&maxLen, "max", "m", 50, "maximum length in characters")
	cmd.Flags().StringVarP(&glue, "glue", "g", "", "joins head and tail (default: config truncate.glue)")
	return cmd
}

func newCutCmd(a *app) *cobra.Command {
	var (
		length   int
		appendix string
	)

	cmd := &cobra.Command{
		Use:   "cut [text]",
		Short: "Cut a text at the first space after a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("append") {
				appendix = a.cfg.Truncate.CutAppend
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.CutOnSpace(text, length, appendix))
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "len", "n", 50, "cut at the first space at or after this position")
	cmd.Flags().StringVarP(&appendix, "append", "a", "", "added after a cut (default: config truncate.cut_append)")
	return cmd
}

func newTranslitCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "translit [text]",
		Short: "Transliterate Russian text to Latin letters",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.Translit(text))
			return nil
		},
	}
}

func newFilenameCmd(_ *app) *cobra.Command {
	return &cobra.Command{
		Use:   "filename [text]",
		Short: "Turn a title into a safe ASCII file name",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filex.SafeName(text))
			return nil
		},
	}
}

func newCaseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "case",
		Short: "Change the case of the first letter or of words",
		Long: `Case mapping follows the rules of --locale, e.g. Turkish dotted i.

upper-* commands accept --if-not-lowercase: an all lower case text is left
alone. lower-* commands accept --if-not-uppercase likewise.`,
	}

	type caseFunc func(c stringx.Casing, s string, limit int, guard bool) string
	modes := []struct {
		use, short, guard string
		words             bool
		apply             caseFunc
	}{
		{"upper-first", "Upper-case the first letter", "if-not-lowercase", false,
			func(c stringx.Casing, s string, _ int, g bool) string { return c.UcFirst(s, g) }},
		{"lower-first", "Lower-case the first letter", "if-not-uppercase", false,
			func(c stringx.Casing, s string, _ int, g bool) string { return c.LcFirst(s, g) }},
		{"upper-words", "Upper-case the first letter of each word", "if-not-lowercase", true,
			func(c stringx.Casing, s string, n int, g bool) string { return c.UcWords(s, n, g) }},
		{"lower-words", "Lower-case the first letter of each word", "if-not-uppercase", true,
			func(c stringx.Casing, s string, n int, g bool) string { return c.LcWords(s, n, g) }},
	}

	for _, m := range modes {
		m := m
		var (
			guard bool
			limit int
		)
		sub := &cobra.Command{
			Use:   m.use + " [text]",
			Short: m.short,
			RunE: func(cmd *cobra.Command, args []string) error {
				text, err := textArg(cmd, args)
				if err != nil {
					return err
				}
				base, err := i18n.NormalizeLocale(a.locale)
				if err != nil {
					return err
				}
				casing := stringx.NewCasing(language.Make(base))
				fmt.Fprintln(cmd.OutOrStdout(), m.apply(casing, text, limit, guard))
				return nil
			},
		}
		sub.Flags().BoolVar(&guard, m.guard, false, "leave the text alone when it is entirely in that case")
		if m.words {
			sub.Flags().IntVar(&limit, "limit", -1, "change at most this many words; negative means all")
		}
		cmd.AddCommand(sub)
	}
	return cmd
}
