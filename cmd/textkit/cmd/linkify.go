package cmd

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/filex"
	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

type linkifyFlags struct {
	watch      bool
	target     string
	rel        string
	class      string
	scheme     string
	maxPathLen int
}

func newLinkifyCmd(a *app) *cobra.Command {
	var f linkifyFlags

	cmd := &cobra.Command{
		Use:   "linkify [file]",
		Short: "Turn URLs in plain text into HTML links",
		Long: `Replaces every URL in the text with an HTML anchor. The link target is
the normalized URL, the label is the beautified URL.

Without a file, or with "-", the text is read from stdin.

Examples:
  textkit linkify notes.txt
  echo "see example.com/docs" | textkit linkify --target _blank
  textkit linkify --watch notes.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLinkify(cmd, args, &f)
		},
	}

	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "render again whenever the file changes")
	cmd.Flags().StringVar(&f.target, "target", "", "target attribute of the anchors")
	cmd.Flags().StringVar(&f.rel, "rel", "", "rel attribute of the anchors")
	cmd.Flags().StringVar(&f.class, "class", "", "class attribute of the anchors")
	cmd.Flags().StringVar(&f.scheme, "scheme", "", "scheme for URLs without one (default: config url.default_scheme)")
	cmd.Flags().IntVar(&f.maxPathLen, "max-path", 0, "maximum path length of the labels (default: config url.max_path_len)")
	return cmd
}

// anchorOptions merges the configuration with the flags the user set
func (f *linkifyFlags) anchorOptions(cmd *cobra.Command, cfg *config.Config) stringx.AnchorOptions {
	opts := cfg.AnchorOptions()
	flags := cmd.Flags()
	if flags.Changed("target") {
		opts.Target = f.target
	}
	if flags.Changed("rel") {
		opts.Rel = f.rel
	}
	if flags.Changed("class") {
		opts.Class = f.class
	}
	if flags.Changed("scheme") {
		opts.Scheme = f.scheme
	}
	if flags.Changed("max-path") {
		opts.MaxPathLen = f.maxPathLen
	}
	return opts
}

func (a *app) runLinkify(cmd *cobra.Command, args []string, f *linkifyFlags) error {
	if f.maxPathLen < 0 {
		return mdwerrors.StringxInvalidInput("linkify", f.maxPathLen, "max-path >= 0")
	}

	r := &linkRenderer{
		cmd:       cmd,
		args:      args,
		app:       a,
		transform: stringx.AnchorTransform(f.anchorOptions(cmd, a.cfg)),
	}
	if err := r.render(); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}

	if len(args) == 0 || args[0] == "-" {
		return mdwerrors.InvalidInput(mdwerrors.ModuleFilex, "watch", "stdin", "a file argument")
	}
	return a.watchLinkify(cmd, r, f)
}

// watchLinkify renders again on every change of the input file and, when a
// config file is in use, on every change of the configuration
func (a *app) watchLinkify(cmd *cobra.Command, r *linkRenderer, f *linkifyFlags) error {
	ctx := cmd.Context()
	debounce := a.cfg.Watch.Debounce.Duration

	w, err := filex.WatchFile(ctx, r.args[0], debounce, func() {
		if err := r.render(); err != nil {
			a.logger.WarnWithErr("render failed", err)
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	if a.cfgPath != "" {
		cw, err := config.Watch(ctx, a.cfgPath, debounce, func(cfg *config.Config, err error) {
			if err != nil {
				a.logger.WarnWithErr("config reload failed, keeping previous settings", err)
				return
			}
			r.setTransform(stringx.AnchorTransform(f.anchorOptions(cmd, cfg)))
			a.logger.Info("configuration reloaded", logging.KeyValues("config", a.cfgPath))
			if err := r.render(); err != nil {
				a.logger.WarnWithErr("render failed", err)
			}
		})
		if err != nil {
			return err
		}
		defer cw.Close()
	}

	a.logger.Info("watching for changes", logging.KeyValues("path", w.Path()))
	select {
	case <-ctx.Done():
	case <-w.Done():
	}
	return nil
}

// linkRenderer reads the input and writes the linkified text; renders from
// different watchers are serialized
type linkRenderer struct {
	cmd  *cobra.Command
	args []string
	app  *app

	mu        sync.Mutex
	transform stringx.TransformFunc
}

func (r *linkRenderer) setTransform(t stringx.TransformFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transform = t
}

func (r *linkRenderer) render() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer := r.app.logger.StartTimer("linkify")
	defer timer.Stop()

	text, err := readInput(r.cmd, r.args)
	if err != nil {
		return err
	}

	out := stringx.ParseURLs(text, r.transform)
	timer.WithField("bytes_in", len(text)).WithField("bytes_out", len(out))
	if _, err := fmt.Fprint(r.cmd.OutOrStdout(), out); err != nil {
		return mdwerrors.FilexWriteFailed("stdout", err)
	}
	return nil
}

func newURLsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "urls [file]",
		Short: "List the URLs found in plain text",
		Long: `Prints one line per URL found by the linkifier: start and end byte
offset, then the URL text, separated by tabs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			spans := stringx.FindURLs(text)
			a.logger.Debug("scanned", logging.KeyValues("urls", len(spans)))
			for _, s := range spans {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\t%s\n", s.Start, s.End, s.Text); err != nil {
					return mdwerrors.FilexWriteFailed("stdout", err)
				}
			}
			return nil
		},
	}
}
