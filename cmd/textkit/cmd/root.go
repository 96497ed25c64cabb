package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/core/i18n"
	mdwlog "github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/msto63/textkit/pkg/core/version"
)

// Exit codes returned by Execute
const (
	ExitOK       = 0
	ExitError    = 1
	ExitNoResult = 2
)

// errNoResult marks commands that ran fine but had nothing to print
var errNoResult = errors.New("no result")

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	locale    string

	// resolved in PersistentPreRunE
	cfg     *config.Config
	cfgPath string
	logger  *mdwlog.Logger
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand()
	return exitCode(root.ExecuteContext(ctx), root.ErrOrStderr())
}

func exitCode(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errNoResult):
		return ExitNoResult
	default:
		printError(stderr, err)
		return ExitError
	}
}

// NewRootCommand builds the complete command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "textkit",
		Short: "Text shaping toolkit",
		Long: `textkit shapes short texts for display.

It turns URLs in plain text into HTML links, shortens and cuts strings,
normalizes and beautifies URLs, transliterates Russian, formats byte sizes
and durations with the right plural forms, and runs quick plausibility
checks on e-mail addresses and phone numbers.

Configuration is read from --config, $TEXTKIT_CONFIG, ./textkit.toml or
the user configuration directory. Logs go to stderr.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $TEXTKIT_CONFIG or ./textkit.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json or logfmt")
	flags.StringVar(&a.locale, "locale", "", "locale for unit names and casing (default: config, then $LANG)")

	root.AddCommand(
		newLinkifyCmd(a),
		newURLsCmd(a),
		newURLCmd(a),
		newShortenCmd(a),
		newCutCmd(a),
		newTranslitCmd(a),
		newFilenameCmd(a),
		newCaseCmd(a),
		newSizeCmd(a),
		newDurationCmd(a),
		newPluralCmd(a),
		newCheckCmd(a),
		newVersionCmd(a),
	)
	return root
}

// setup loads the configuration and creates the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	level := cfg.General.LogLevel
	if a.verbose {
		level = mdwlog.LevelDebug.String()
	}
	format := cfg.General.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}

	logger, err := logging.NewCommandLogger("textkit", level, format, cmd.ErrOrStderr())
	a.logger = logger.WithField("command", cmd.Name())
	if err != nil {
		a.logger.WarnWithErr("falling back to default log settings", err)
	}
	// foundation packages log through the default logger
	mdwlog.SetDefault(a.logger)

	if a.locale == "" {
		a.locale = cfg.General.Locale
	}
	if a.locale == "" {
		a.locale = i18n.MatchLocale(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
	}

	a.logger.Debug("configuration ready", logging.KeyValues(
		"config", a.cfgPath,
		"locale", a.locale,
		"build", version.Get().String(),
	))
	return nil
}

// loadConfig reads an explicit file, or searches $TEXTKIT_CONFIG and the
// default locations and falls back to built-in defaults when none exists
func loadConfig(explicit string) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := config.Load(explicit)
		return cfg, explicit, err
	}

	path := config.FindConfigFile()
	if path == "" {
		return config.Default(), "", nil
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
