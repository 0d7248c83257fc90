package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Encode for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the names accepted by Encode.
var Formats = []string{"text", "json", "yaml", "toml"}

type exportFile struct {
	Modality []Record `json:"modality" yaml:"modality" toml:"modality"`
}

// Encode writes the catalog to w in the named format.
func (c Catalog) Encode(w io.Writer, format string) error {
	doc := exportFile{Modality: c.All()}
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return c.encodeText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
	return nil
}

func (c Catalog) encodeText(w io.Writer) error {
	for i, r := range c.records {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, r.Title); err != nil {
			return fmt.Errorf("encode text: %w", err)
		}
	}
	return nil
}
