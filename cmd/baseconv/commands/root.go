package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"baseconv/internal/app"
)

var (
	home          string
	remoteURL     string
	logLevel      string
	clipboardSpec string

	cfg     app.Config
	appWire *app.Wire
	logFile io.Closer
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "baseconv",
		Short:        "Convert numbers between binary, octal, decimal and hexadecimal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = app.LoadConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("home") || cfg.Home == "" {
				cfg.Home = home
			}
			if flags.Changed("remote") {
				cfg.Remote = remoteURL
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("clipboard") {
				cfg.Clipboard = clipboardSpec
			}

			if cfg.Home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				cfg.Home = filepath.Join(dir, ".baseconv")
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}

			log, closer, err := app.NewLogger(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logFile = closer

			appWire, err = app.NewWire(cfg, log, cmd.OutOrStdout())
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logFile != nil {
				return logFile.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default $BASECONV_HOME or ~/.baseconv)")
	root.PersistentFlags().StringVar(&remoteURL, "remote", "", "baseconvd base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&clipboardSpec, "clipboard", "osc52", "clipboard: osc52, stdout, memory or file:<path>")

	root.AddCommand(
		basesCmd(),
		validateCmd(),
		convertCmd(),
		stateCmd(),
		setCmd(),
		runCmd(),
		swapCmd(),
		copyCmd(),
	)
	return root
}
