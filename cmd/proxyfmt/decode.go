package main

import (
	"os"

	"github.com/spf13/cobra"

	"proxyfmt/internal/clash"
	"proxyfmt/internal/codec"
	"proxyfmt/internal/formats"
	"proxyfmt/internal/logger"
)

var decodeFormat string

var decodeCmd = &cobra.Command{
	Use:   "decode [file|-]",
	Short: "Decode wire text into a record",
	Long:  `Read a link, subscription or Clash node from a file or stdin and print the decoded record as YAML or JSON.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}

		f, err := formats.Get(decodeFormat)
		if err != nil {
			logger.Log.Fatalf("%v (available: %v)", err, formats.Names())
		}

		data, err := readInput(args)
		if err != nil {
			logger.Log.Fatalf("Error reading input: %v", err)
		}

		record, err := f.Decode(string(data))
		if err != nil {
			logger.Log.Fatalf("Decode failed (%s): %v", codec.KindOf(err), err)
		}
		logger.Log.Debugf("Decoded %s record %T", decodeFormat, record)

		if p, ok := record.(*clash.Proxy); ok && cfg.Clash.Strict {
			if err := clash.Validate(p.Node); err != nil {
				logger.Log.Fatalf("Validation failed: %v", err)
			}
		}

		if err := renderRecord(os.Stdout, record, cfg.Output); err != nil {
			logger.Log.Fatalf("Error writing record: %v", err)
		}
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "", "Input format: clash, sip002, sip008 or vmess")
	_ = decodeCmd.MarkFlagRequired("format")
	rootCmd.AddCommand(decodeCmd)
}
