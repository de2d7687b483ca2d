package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"proxyfmt/internal/codec"
	"proxyfmt/internal/formats"
	"proxyfmt/internal/logger"
)

var encodeFormat string

var encodeCmd = &cobra.Command{
	Use:   "encode [file|-]",
	Short: "Encode a record into wire text",
	Long:  `Read a record written as YAML or JSON (the shape printed by decode) and print it in the given format.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		f, err := formats.Get(encodeFormat)
		if err != nil {
			logger.Log.Fatalf("%v (available: %v)", err, formats.Names())
		}

		data, err := readInput(args)
		if err != nil {
			logger.Log.Fatalf("Error reading input: %v", err)
		}

		record := f.Record()
		if err := readRecord(data, record); err != nil {
			logger.Log.Fatalf("Error reading record (%s): %v", codec.KindOf(err), err)
		}

		text, err := f.Encode(record)
		if err != nil {
			logger.Log.Fatalf("Encode failed (%s): %v", codec.KindOf(err), err)
		}
		fmt.Println(text)
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeFormat, "format", "f", "", "Output format: clash, sip002, sip008 or vmess")
	_ = encodeCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(encodeCmd)
}
