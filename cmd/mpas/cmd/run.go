package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/msto63/mPAS/pascal"
)

var (
	runTimeout     time.Duration
	runShowSymbols bool
)

var runCmd = &cobra.Command{
	Use:   "run <datei>",
	Short: "Führt ein Pascal-Programm aus",
	Long: `Führt ein Pascal-Programm aus und zeigt die Endbelegung aller
Variablen an. Mit "-" als Datei wird von stdin gelesen.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			printError("Quelldatei konnte nicht gelesen werden", err)
			return err
		}

		engine := pascal.NewEngine(pascal.Options{
			ExecutionTimeout: runTimeout,
		})

		result, err := engine.Run(context.Background(), source)
		if err != nil {
			printError("Ausführung fehlgeschlagen", err)
			return err
		}

		fmt.Printf("Programm %s ausgeführt (%v)\n\n", result.ProgramName, result.ExecutionTime)
		renderGlobals(result)

		if runShowSymbols {
			fmt.Println()
			renderSymbols(result)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 30*time.Second, "Maximale Ausführungszeit")
	runCmd.Flags().BoolVar(&runShowSymbols, "symbols", false, "Symboltabelle mit ausgeben")
	rootCmd.AddCommand(runCmd)
}

// renderGlobals prints the final variable bindings as a table
func renderGlobals(result *pascal.Result) {
	names := make([]string, 0, len(result.Globals))
	for name := range result.Globals {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Variable", "Wert", "Typ"})
	for _, name := range names {
		value := result.Globals[name]
		t.AppendRow(table.Row{name, value.String(), value.Type.String()})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

// renderSymbols prints the declared symbols as a table
func renderSymbols(result *pascal.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Symbol", "Typ"})
	for _, sym := range result.Symbols.Variables() {
		t.AppendRow(table.Row{sym.Name, sym.Type})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
