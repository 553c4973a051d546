package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

// schemaNode is the subset of a JSON schema needed to check config structure
type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Type       string                 `json:"type"`
	Properties map[string]*schemaNode `json:"properties"`
	Required   []string               `json:"required"`
	Items      *schemaNode            `json:"items"`
	Defs       map[string]*schemaNode `json:"$defs"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It checks that every config key is declared in the schema with a matching type,
// which catches a stale schema.json after config changes.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, []byte(embeddedSchema))
}

func verify(cfg *Config, schemaData []byte) error {
	var root schemaNode
	if err := json.Unmarshal(schemaData, &root); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validateRequiredFields(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	var problems []string
	checkNode(&root, root.Defs, "", configMap, &problems)
	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("schema mismatch: %s", strings.Join(problems, "; "))
	}
	return nil
}

// checkNode walks the value along the schema and collects mismatches
func checkNode(node *schemaNode, defs map[string]*schemaNode, path string, val any, problems *[]string) {
	node = resolve(node, defs)
	if node == nil || val == nil {
		return
	}

	switch v := val.(type) {
	case map[string]any:
		if node.Type != "" && node.Type != "object" {
			*problems = append(*problems, fmt.Sprintf("%s: expected %s, got object", path, node.Type))
			return
		}
		for _, req := range node.Required {
			if _, ok := v[req]; !ok {
				*problems = append(*problems, fmt.Sprintf("%s: missing %s", path, req))
			}
		}
		for k, child := range v {
			prop, ok := node.Properties[k]
			if !ok {
				*problems = append(*problems, fmt.Sprintf("%s: undeclared key", joinPath(path, k)))
				continue
			}
			checkNode(prop, defs, joinPath(path, k), child, problems)
		}
	case []any:
		if node.Type != "array" {
			*problems = append(*problems, fmt.Sprintf("%s: expected %s, got array", path, node.Type))
			return
		}
		for i, item := range v {
			checkNode(node.Items, defs, fmt.Sprintf("%s[%d]", path, i), item, problems)
		}
	case string:
		if node.Type != "string" {
			*problems = append(*problems, fmt.Sprintf("%s: expected %s, got string", path, node.Type))
		}
	case float64:
		if node.Type != "integer" && node.Type != "number" {
			*problems = append(*problems, fmt.Sprintf("%s: expected %s, got number", path, node.Type))
		}
	case bool:
		if node.Type != "boolean" {
			*problems = append(*problems, fmt.Sprintf("%s: expected %s, got boolean", path, node.Type))
		}
	}
}

func resolve(node *schemaNode, defs map[string]*schemaNode) *schemaNode {
	for node != nil && node.Ref != "" {
		node = defs[strings.TrimPrefix(node.Ref, "#/$defs/")]
	}
	return node
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// validateRequiredFields performs basic validation of required fields
func validateRequiredFields(cfg *Config) error {
	if cfg.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if cfg.Server.Timeout == 0 {
		return fmt.Errorf("server.timeout is required")
	}
	if cfg.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	return nil
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
