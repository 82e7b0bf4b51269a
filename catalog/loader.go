package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chronoid/chronoid/errors"
)

// File is the on-disk YAML shape of an external catalog:
//
//	formats:
//	  - name: ISO_DATE
//	    pattern: '^\d{4}-\d{2}-\d{2}$'
//	    template: YYYY-MM-DD
//	    category: ISO
//	    example: "2025-05-19"
//	priority: [RFC, ISO, Regional]
//
// Definition order in the file is registration order.
type File struct {
	Formats  []FormatDefinition `yaml:"formats"`
	Priority []Category         `yaml:"priority"`
}

// Decode parses the YAML shape without validating the definitions.
func Decode(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidCatalog, "catalog YAML does not parse: %v", err)
	}
	if len(f.Formats) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidCatalog, "catalog contains no format definitions")
	}
	return &f, nil
}

// DecodeFile reads and parses a YAML catalog file without validating it.
func DecodeFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Decode(data)
}

// Parse decodes and loads a YAML catalog from raw bytes.
func Parse(data []byte) (*Registry, *Priority, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}

	reg, err := Load(f.Formats)
	if err != nil {
		return nil, nil, err
	}

	var prio *Priority
	if len(f.Priority) > 0 {
		prio, err = NewPriority(f.Priority)
		if err != nil {
			return nil, nil, err
		}
	}
	return reg, prio, nil
}

// LoadFile reads and loads a YAML catalog from path.
func LoadFile(path string) (*Registry, *Priority, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read catalog file %s", path)
	}
	return Parse(data)
}
