package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/compiler"
	"github.com/aretw0/espalier/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a tree declaration for consistency",
	Long:  `Parses the tree file and reports every structural problem: duplicate names, duplicate flags, malformed short flags, unreachable names and dead branches.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		if len(args) > 0 {
			treePath = args[0]
		}
		if err := runValidate(treePath); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Tree is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(treePath string) error {
	data, err := os.ReadFile(treePath)
	if err != nil {
		return fmt.Errorf("failed to read tree file: %w", err)
	}

	cp := compiler.NewParser()
	spec, err := cp.Parse(data)
	if err != nil {
		return err
	}

	if err := validator.ValidateTree(spec); err != nil {
		return err
	}

	// Compile as well: the constructors enforce the invariants the lint
	// pass only reports on.
	if _, err := cp.Compile(spec); err != nil {
		return err
	}

	return nil
}
