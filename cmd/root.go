package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/diorchen/shell/core"
	"github.com/diorchen/shell/core/config"
	"github.com/diorchen/shell/core/logger"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		// No config directory is fine, run on built-in defaults.
		return config.Default(), nil
	}

	return configuration, err
}

// rootCmd runs the interactive loop when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "lsh",
	Short: "A small interactive shell",
	Long: `lsh reads one command per line, runs builtins in-process and launches
everything else as a child program, waiting for it to finish before
prompting again.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.NoColor {
			color.NoColor = true
		}

		logFd, err := cfg.OpenAppLog()
		if err != nil {
			return err
		}
		defer logFd.Close()
		session := logger.NewJsonLinesLogRecorder(logFd).NewSession()

		interactive := isatty.IsTerminal(os.Stdin.Fd())

		var reader core.LineReader
		if interactive {
			reader, err = core.NewTerminalReader(cfg.HistoryPath(cfgPath))
			if err != nil {
				return err
			}
		} else {
			reader = core.NewBufferedReader(os.Stdin, os.Stdout)
		}
		defer reader.Close()

		session.SessionStart(os.Getenv("USER"), interactive)

		shell := core.NewShell(reader, cfg)
		shell.Log = session
		return shell.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
