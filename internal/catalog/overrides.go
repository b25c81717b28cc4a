package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemOverride adjusts one catalog item. Zero-valued fields keep the
// built-in value.
type ItemOverride struct {
	Label    string  `yaml:"label"`
	LengthCm float64 `yaml:"length_cm"`
	WidthCm  float64 `yaml:"width_cm"`
	Profile  string  `yaml:"profile"`
}

// OverrideFile is the on-disk format for user catalog overrides.
type OverrideFile struct {
	Items map[string]ItemOverride `yaml:"items"`
}

// LoadOverrides reads a YAML override file. A missing file is not an error
// and yields an empty override set.
func LoadOverrides(path string) (OverrideFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return OverrideFile{}, nil
		}
		return OverrideFile{}, err
	}
	var of OverrideFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return OverrideFile{}, fmt.Errorf("parse overrides %s: %w", path, err)
	}
	return of, nil
}

// Apply folds overrides into the catalog. Call during startup, before the
// catalog is shared; the catalog is immutable afterwards. Overrides for
// unknown item identifiers are rejected so typos do not silently vanish.
func (c *Catalog) Apply(of OverrideFile) error {
	for id, ov := range of.Items {
		it, ok := c.items[id]
		if !ok {
			return fmt.Errorf("%w: override for %q", ErrUnknownItem, id)
		}
		if ov.Label != "" {
			it.Label = ov.Label
		}
		if ov.LengthCm > 0 {
			it.DefaultLengthCm = ov.LengthCm
		}
		if ov.WidthCm > 0 {
			it.DefaultWidthCm = ov.WidthCm
		}
		if ov.Profile != "" {
			it.Profile = ParseMovementProfile(ov.Profile)
		}
		c.items[id] = it
	}
	return nil
}
