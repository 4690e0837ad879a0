package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// LoadDocument loads and decodes a motion document from a YAML or JSON file.
func LoadDocument(path string) (*Document, error) {
	// Use os.OpenRoot so a document path cannot escape its own directory
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open document directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	doc, err := LoadDocumentFromReader(file)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", base, err)
	}
	doc.Name = DocumentName(path)
	return doc, nil
}

// LoadDocumentFromReader decodes a motion document from a reader.
func LoadDocumentFromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return DecodeDocument(data)
}

// DecodeDocument decodes a motion document from raw YAML or JSON bytes and
// checks it against the document schema.
func DecodeDocument(data []byte) (*Document, error) {
	// JSON is a YAML subset, so one conversion path serves both formats.
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	var raw interface{}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if err := documentSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("document failed schema validation: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	return &doc, nil
}
