package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/msto63/mPAS/pascal"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <datei>",
	Short: "Zeigt den Tokenstrom eines Programms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			printError("Quelldatei konnte nicht gelesen werden", err)
			return err
		}

		tokens, err := pascal.NewEngine().Tokenize(source)
		if err != nil {
			printError("Tokenisierung fehlgeschlagen", err)
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Token", "Wert", "Zeile", "Spalte"})
		for i, tok := range tokens {
			t.AppendRow(table.Row{i, tok.Type.String(), tok.Value, tok.Line, tok.Column})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
