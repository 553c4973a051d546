// schema generates pkg/config/schema.json from the config structs
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/gamedesk/pkg/config"
)

func main() {
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}
	if err := run(outputPath); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}

func run(outputPath string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	// marshal to JSON with indentation
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.WriteFile(outputPath, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write schema file: %w", err)
	}
	return nil
}
