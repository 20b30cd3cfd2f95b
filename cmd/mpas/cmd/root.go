package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mPAS/core/config"
	"github.com/msto63/mPAS/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mpas",
	Short: "mPAS - Pascal-Interpreter",
	Long: `mPAS ist ein Interpreter für eine kleine Pascal-Teilsprache.

Ein Programm durchläuft vier Stufen:
  Lexer      - Tokenisierung des Quelltexts
  Parser     - Rekursiver Abstieg zum Syntaxbaum
  Analyse    - Symboltabelle und Deklarationsprüfung
  Auswertung - Baumdurchlauf mit Variablenbelegung`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// setupLogging configures the default logger from config file and flags.
// The verbose flag wins over any configured level.
func setupLogging() {
	level := log.DefaultLevel()
	format := log.FormatText

	path := cfgFile
	if path == "" {
		path = "./configs/config.toml"
	}
	if cfg, err := config.Load(path); err == nil {
		if configured, err := log.ParseLevel(cfg.GetString("log.level", level.String())); err == nil {
			level = configured
		}
		if configured, err := log.ParseFormat(cfg.GetString("log.format", format.String())); err == nil {
			format = configured
		}
	}

	if verbose {
		level = log.LevelDebug
	}

	log.SetDefault(log.GetDefault().WithLevel(level).WithFormat(format))
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// readSource reads program source from the file argument or stdin if
// the argument is "-"
func readSource(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
