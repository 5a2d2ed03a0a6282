package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier is a hierarchical command-line dispatcher",
	Long:  `Espalier resolves input lines against a declared tree of verbs and commands, with an interactive shell for exercising the tree.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("tree", "t", "espalier.yaml", "Tree declaration file")
}
