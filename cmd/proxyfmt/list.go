package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proxyfmt/internal/formats"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered formats",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range formats.Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
