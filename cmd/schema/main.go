// Command schema regenerates the JSON schema embedded into pkg/config.
// Run from the repo root, or pass the output path as the only argument.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/plantbot/pkg/config"
)

const defaultOutput = "pkg/config/schema.json"

func main() {
	lgr.SetupStdLogger(lgr.Msec, lgr.LevelBraces)
	output := defaultOutput
	if len(os.Args) > 1 {
		output = os.Args[1]
	}
	if err := writeSchema(output); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	log.Printf("[INFO] plantbot config schema written to %s", output)
}

// writeSchema reflects config.Config and writes the indented schema to path
func writeSchema(path string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write schema to %s: %w", path, err)
	}
	return nil
}
