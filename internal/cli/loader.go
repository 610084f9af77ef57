package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orqui/orqui/internal/contract"
)

// LoadedContract is a contract document read from disk. Doc always
// holds JSON bytes; YAML sources are converted on load so hashing and
// validation see one representation.
type LoadedContract struct {
	Path     string
	Doc      []byte
	Contract contract.Contract
}

// LoadError is an error reading or parsing a contract file.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadContract reads a contract document from path. Files ending in
// .yaml or .yml are parsed as YAML and re-encoded as JSON; everything
// else is treated as JSON.
func LoadContract(path string) (*LoadedContract, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("contract file not found: %s", path)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeReadFailed, Message: fmt.Sprintf("reading %s: %v", path, err)}
	}

	doc := raw
	if isYAMLPath(path) {
		doc, err = yamlToJSON(raw)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeBadDocument, Message: fmt.Sprintf("parsing YAML %s: %v", path, err)}
		}
	}

	var c contract.Contract
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, &LoadError{Code: ErrCodeBadDocument, Message: fmt.Sprintf("parsing %s: %v", path, err)}
	}

	return &LoadedContract{Path: path, Doc: doc, Contract: c}, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// yamlToJSON re-encodes a YAML document as JSON. yaml.v3 decodes
// mappings with string keys, so the result marshals directly.
func yamlToJSON(raw []byte) ([]byte, error) {
	var v any
	if err := yaml.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	v = normalizeYAML(v)
	return json.Marshal(v)
}

// normalizeYAML rewrites map[any]any values (produced for non-string
// keys and some nested forms) into map[string]any.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}
