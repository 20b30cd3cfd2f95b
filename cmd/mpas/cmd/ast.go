package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mPAS/pascal"
	"github.com/msto63/mPAS/pascal/ast"
)

var astCmd = &cobra.Command{
	Use:   "ast <datei>",
	Short: "Zeigt den Syntaxbaum eines Programms",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args[0])
		if err != nil {
			printError("Quelldatei konnte nicht gelesen werden", err)
			return err
		}

		program, err := pascal.NewEngine().Parse(source)
		if err != nil {
			printError("Parsen fehlgeschlagen", err)
			return err
		}

		fmt.Print(ast.Dump(program))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}
