// Package catalog holds the admission modalities shown on the page.
//
// Records carry an icon identifier instead of a rendered icon; the rendering
// layer resolves identifiers through internal/icons.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// IconID names an icon in the rendering layer's lookup table.
type IconID string

const (
	IconExam       IconID = "exam"
	IconCourse     IconID = "course"
	IconSpecial    IconID = "special"
	IconExcellence IconID = "excellence"
	IconGraduate   IconID = "graduate"
)

// Record is one admission modality.
type Record struct {
	Title       string `toml:"title" json:"title" yaml:"title"`
	Icon        IconID `toml:"icon" json:"icon" yaml:"icon"`
	Description string `toml:"description" json:"description" yaml:"description"`
}

// Catalog is an ordered, read-only list of records.
type Catalog struct {
	records []Record
}

type catalogFile struct {
	Modality []Record `toml:"modality"`
}

//go:embed modalidades.toml
var embedded []byte

var (
	defaultOnce    sync.Once
	defaultCatalog Catalog
)

// Default returns the five modalities compiled into the binary.
func Default() Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embedded)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// New builds a catalog from records in display order.
func New(records ...Record) Catalog {
	return Catalog{records: slices.Clone(records)}
}

// Parse decodes a TOML document of [[modality]] tables.
func Parse(data []byte) (Catalog, error) {
	var f catalogFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	for i, r := range f.Modality {
		if err := r.validate(); err != nil {
			return Catalog{}, fmt.Errorf("modality[%d]: %w", i, err)
		}
	}
	return Catalog{records: f.Modality}, nil
}

func (r Record) validate() error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return errors.New("title is required")
	case strings.TrimSpace(r.Description) == "":
		return errors.New("description is required")
	case strings.TrimSpace(string(r.Icon)) == "":
		return errors.New("icon is required")
	}
	return nil
}

func (c Catalog) Len() int { return len(c.records) }

// At returns the record at position i.
func (c Catalog) At(i int) (Record, bool) {
	if i < 0 || i >= len(c.records) {
		return Record{}, false
	}
	return c.records[i], true
}

// All returns a copy of the records in display order.
func (c Catalog) All() []Record {
	return slices.Clone(c.records)
}

// Titles returns the record titles in display order.
func (c Catalog) Titles() []string {
	out := make([]string, len(c.records))
	for i, r := range c.records {
		out[i] = r.Title
	}
	return out
}
