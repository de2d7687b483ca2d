package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// readInput reads the single positional argument, or stdin when it is
// absent or "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func renderRecord(w io.Writer, record any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return err
		}
		return enc.Close()
	}
}

// readRecord fills record from YAML or JSON; a leading '{' selects JSON.
func readRecord(data []byte, record any) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		if err := json.Unmarshal(data, record); err != nil {
			return fmt.Errorf("parse json record: %w", err)
		}
		return nil
	}
	if strings.TrimSpace(string(data)) == "" {
		return fmt.Errorf("empty record")
	}
	if err := yaml.Unmarshal(data, record); err != nil {
		return fmt.Errorf("parse yaml record: %w", err)
	}
	return nil
}
