// Package main provides the command-line interface for CrystalAI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "crystal",
	Short: "Crystal CLI tool can perform common tasks related to developing " +
		"agent simulations with CrystalAI.",
	Long: `Crystal CLI tool can perform common tasks related to developing ` +
		`agent simulations with CrystalAI. Currently, it supports running ` +
		`synthetic agent populations against the scheduler.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
