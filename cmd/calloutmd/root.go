package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/dgallion1/calloutmd/internal/config"
	"github.com/dgallion1/calloutmd/internal/i18n"
)

// siteConfigFile is looked up in the XDG config directories when --config
// is not given.
const siteConfigFile = "calloutmd/config.toml"

type rootOptions struct {
	verbosity  int
	configPath string
	docsDir    string
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "calloutmd",
		Short: "Render Markdown with note, tip, caution and danger callouts",
		Long: `calloutmd renders Markdown documents to HTML, turning :::note, :::tip,
:::caution and :::danger container directives into styled callouts.
Directives nothing handles are written back exactly as authored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "site config file (default is $XDG_CONFIG_HOME/"+siteConfigFile+" when present)")
	rootCmd.PersistentFlags().StringVar(&opts.docsDir, "docs-dir", "src/content/docs", "directory whose first-level subdirectories name locales")

	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newIconsCmd())
	return rootCmd
}

func (o *rootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case o.verbosity >= 2:
		level = slog.LevelDebug
	case o.verbosity == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// site resolves the docs site layout: the config file, if any, then an
// explicit --docs-dir on top.
func (o *rootOptions) site(cmd *cobra.Command, log *slog.Logger) (i18n.Site, error) {
	site := i18n.Site{DocsDir: o.docsDir}

	path := o.configPath
	if path == "" {
		if found, err := xdg.SearchConfigFile(siteConfigFile); err == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := config.LoadSite(path, site)
		if err != nil {
			return site, err
		}
		log.Info("site config loaded", "file", path, "locales", len(loaded.Locales))
		site = loaded
		if cmd.Flags().Changed("docs-dir") {
			site.DocsDir = o.docsDir
		}
	}
	if err := config.ValidateSite(site); err != nil {
		return site, err
	}
	return site, nil
}
