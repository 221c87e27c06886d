package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgalbally/scalargrad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scalargrad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scalargrad version %s\n", scalargrad.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
