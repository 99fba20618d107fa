package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		FieldNameTag:   "toml",
		DoNotReference: true,
	}
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/lightbox/config.schema.json"
	schema.Title = "Lightbox Configuration"
	schema.Description = "Configuration schema for lightbox, a terminal image gallery with zoom, pan and pinch"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// WriteSchemaFile writes config.schema.json into dir and returns its path.
func WriteSchemaFile(dir string) (string, error) {
	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
