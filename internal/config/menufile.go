package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MenuFile is the YAML document describing the button and its entries.
type MenuFile struct {
	Label string   `yaml:"label"`
	Items []string `yaml:"items"`
}

// LoadMenuFile reads and parses a menu definition from the given path.
func LoadMenuFile(path string) (MenuFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MenuFile{}, fmt.Errorf("read menu file: %w", err)
	}
	var def MenuFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return MenuFile{}, fmt.Errorf("parse menu file %s: %w", path, err)
	}
	if len(def.Items) == 0 {
		return MenuFile{}, fmt.Errorf("menu file %s defines no items", path)
	}
	return def, nil
}
