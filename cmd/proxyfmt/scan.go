package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"proxyfmt/internal/config"
	"proxyfmt/internal/formats"
	"proxyfmt/internal/links"
	"proxyfmt/internal/logger"
	"proxyfmt/internal/metrics"
)

var (
	scanSchemes []string
	scanReport  bool
)

// scanResult is one decoded link.
type scanResult struct {
	Link     string `yaml:"link" json:"link"`
	Identity string `yaml:"identity" json:"identity"`
	Record   any    `yaml:"record" json:"record"`
}

var scanCmd = &cobra.Command{
	Use:   "scan [file|-]",
	Short: "Extract share links from text and decode them",
	Long:  `Find ss:// and vmess:// links in arbitrary text, decode each one, drop duplicates by endpoint identity and print the records. Failures are summarized by error kind.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		cfg.SelectSchemes(scanSchemes)
		if len(cfg.Scan.Schemes) == 0 {
			logger.Log.Warn("No schemes matched.")
			return
		}

		data, err := readInput(args)
		if err != nil {
			logger.Log.Fatalf("Error reading input: %v", err)
		}

		results, stats, err := scan(string(data), cfg)
		if err != nil {
			logger.Log.Fatalf("Scan failed: %v", err)
		}

		if err := renderRecord(os.Stdout, results, cfg.Output); err != nil {
			logger.Log.Fatalf("Error writing records: %v", err)
		}

		if scanReport {
			stats.PrintReport(os.Stderr)
		}
		logger.Log.Infof("Decoded %d link(s), %d failed.", len(results), stats.TotalFailures())
	},
}

func scan(text string, cfg *config.Config) ([]scanResult, *metrics.Collector, error) {
	ex, err := links.NewExtractor(cfg.Scan.Schemes)
	if err != nil {
		return nil, nil, err
	}
	found := ex.Extract(text)
	logger.Log.Debugf("Found %d candidate link(s)", len(found))

	var bar *progressbar.ProgressBar
	if cfg.Scan.Progress && len(found) > 0 {
		bar = progressbar.NewOptions(len(found),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(false),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan]Decoding...[reset]"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	results := []scanResult{}
	stats := metrics.New()
	seen := make(map[string]bool)

	for _, link := range found {
		if bar != nil {
			_ = bar.Add(1)
		}

		scheme := links.Scheme(link)
		f, err := formats.ForScheme(scheme)
		if err != nil {
			stats.RecordFailure(err)
			continue
		}
		record, err := f.Decode(link)
		if err != nil {
			stats.RecordFailure(err)
			logger.Log.Debugf("Dropped link %s: %v", truncate(link, 32), err)
			continue
		}

		id, err := links.Identity(record)
		if err != nil {
			return nil, nil, fmt.Errorf("identity of %s: %w", truncate(link, 32), err)
		}
		if cfg.Scan.Dedupe {
			if seen[id] {
				logger.Log.Debugf("Duplicate link %s", truncate(link, 32))
				stats.RecordDuplicate()
				continue
			}
			seen[id] = true
		}
		stats.RecordSuccess(scheme)
		results = append(results, scanResult{Link: link, Identity: id, Record: record})
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, stats, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func init() {
	scanCmd.Flags().StringSliceVar(&scanSchemes, "scheme", nil, "Scan only these schemes; cipher names select SIP002 links (e.g. --scheme vmess --scheme aes-256-gcm)")
	scanCmd.Flags().BoolVar(&scanReport, "report", false, "Print a summary of decoded and failed links to stderr")
	rootCmd.AddCommand(scanCmd)
}
