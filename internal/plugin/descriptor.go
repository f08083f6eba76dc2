// ABOUTME: Descriptor is the YAML plugin unit: a builtin name or an external command
// ABOUTME: Parsing validates that exactly one backend is named

package plugin

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Descriptor is the on-disk description of a plugin.
type Descriptor struct {
	Name    string            `yaml:"name"`
	Builtin string            `yaml:"builtin,omitempty"`
	Command []string          `yaml:"command,omitempty"`
	Options map[string]string `yaml:"options,omitempty"`
}

var (
	errNoBackend   = errors.New("descriptor names neither builtin nor command")
	errTwoBackends = errors.New("descriptor names both builtin and command")
)

// ParseDescriptor decodes a descriptor read from path. A missing name
// defaults to the file stem.
func ParseDescriptor(path string, data []byte) (Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("parse descriptor: %w", err)
	}
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := d.validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

func (d Descriptor) validate() error {
	switch {
	case d.Builtin == "" && len(d.Command) == 0:
		return errNoBackend
	case d.Builtin != "" && len(d.Command) > 0:
		return errTwoBackends
	case len(d.Command) > 0 && strings.TrimSpace(d.Command[0]) == "":
		return errors.New("descriptor command is empty")
	}
	return nil
}
