package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/compiler"
	"github.com/aretw0/espalier/internal/presentation/graph"
	"github.com/aretw0/espalier/pkg/ports"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Render the verb tree as a Mermaid diagram",
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		if len(args) > 0 {
			treePath = args[0]
		}

		var source ports.TreeSource = compiler.NewFileSource(treePath)
		verbs, err := source.Verbs()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(graph.GenerateMermaid(verbs))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
