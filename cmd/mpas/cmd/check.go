package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/msto63/mPAS/pascal"
)

var checkCmd = &cobra.Command{
	Use:   "check <datei>",
	Short: "Prüft ein Programm ohne Ausführung",
	Long: `Parst und prüft ein Pascal-Programm ohne es auszuführen und
zeigt die aufgebaute Symboltabelle an.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			printError("Quelldatei konnte nicht gelesen werden", err)
			return err
		}

		symbols, err := pascal.NewEngine().Check(source)
		if err != nil {
			printError("Prüfung fehlgeschlagen", err)
			return err
		}

		fmt.Println("Programm ist gültig")

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Symbol", "Typ"})
		for _, sym := range symbols.Variables() {
			t.AppendRow(table.Row{sym.Name, sym.Type})
		}
		t.SetStyle(table.StyleLight)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
