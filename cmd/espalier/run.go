package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive shell over a tree file",
	Long:  `Loads the tree declaration, lints it, and starts a read-dispatch loop on stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		if !cmd.Flags().Changed("tree") && len(args) > 0 {
			treePath = args[0]
		}
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		opts := cli.RunOptions{
			TreePath: treePath,
			Debug:    debug,
			NoBanner: noBanner,
		}
		if err := cli.Execute(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("debug", false, "Enable debug logging on stderr")
	runCmd.Flags().Bool("no-banner", false, "Skip the startup banner")

	// Make 'run' the default if no subcommand is provided
	rootCmd.Run = runCmd.Run
}
