package main

import (
	"fmt"

	"github.com/bethropolis/magicpad/internal/app"
	"github.com/bethropolis/magicpad/internal/config"
	"github.com/bethropolis/magicpad/internal/logger"
	"github.com/bethropolis/magicpad/internal/session"
	"github.com/bethropolis/magicpad/internal/theme"
	"github.com/spf13/cobra"
)

var version = "dev"

// rootOptions carries state shared by every subcommand once the persistent
// pre-run has loaded the configuration.
type rootOptions struct {
	flags    config.Flags
	cfg      *config.Config
	colors   *theme.ColorTable
	closeLog func() error
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "magicpad [file]",
		Short: "A terminal notepad with live inline formatting",
		Long: `Magic Notepad formats text as you type it:

  **bold**          becomes bold
  //italic//        becomes italic
  red::warning::    becomes red

Documents are saved as .ntp files, which keep the plain text and the
styled ranges.`,
		Version:            version,
		Args:               cobra.MaximumNArgs(1),
		SilenceUsage:       true,
		PersistentPreRunE:  opts.setup,
		PersistentPostRunE: opts.teardown,
		RunE:               opts.runEditor,
	}
	opts.flags.Define(cmd.PersistentFlags())
	cmd.AddCommand(newConvertCmd(opts), newCatCmd(opts))
	return cmd
}

// setup loads the configuration, starts logging and builds the color table.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	cfg, undecoded, err := config.Load(o.flags.ConfigFilePath, &o.flags)
	if err != nil {
		return err
	}
	o.cfg = cfg

	out, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		return err
	}
	o.closeLog = closeLog
	logger.Init(cfg.Logger, out)
	logger.Infof("Starting %s %s (%s)", config.AppName, version, cmd.Name())
	if len(undecoded) > 0 {
		logger.Warnf("Config: unrecognized keys: %v", undecoded)
	}

	o.colors, err = theme.NewColorTable(cfg.Colors)
	if err != nil {
		return fmt.Errorf("config [colors]: %w", err)
	}
	return nil
}

func (o *rootOptions) teardown(cmd *cobra.Command, args []string) error {
	logger.Infof("%s finished", config.AppName)
	if o.closeLog != nil {
		return o.closeLog()
	}
	return nil
}

// newSession creates a headless session using the loaded configuration.
func (o *rootOptions) newSession() *session.Session {
	return session.New(session.Config{TagLimit: o.cfg.Editor.TagLimit, Colors: o.colors}, nil)
}

func (o *rootOptions) runEditor(cmd *cobra.Command, args []string) error {
	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	activeTheme := &theme.MagicDark
	if o.cfg.Editor.ThemeFile != "" {
		loaded, err := theme.LoadThemeFromFile(o.cfg.Editor.ThemeFile)
		if err != nil {
			logger.Warnf("Theme: %v, using '%s'", err, activeTheme.Name)
		} else {
			activeTheme = loaded
		}
	}

	editor, err := app.NewApp(app.Options{
		FilePath: filePath,
		Config:   o.cfg,
		Theme:    activeTheme,
		Colors:   o.colors,
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		return err
	}
	if err := editor.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		return err
	}
	return nil
}
