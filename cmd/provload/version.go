package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/provload"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of provload and the provider interface",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "provload version %s (interface %s, symbol %s)\n",
			provload.Version, provload.InterfaceVersion, provload.BootstrapSymbol)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
