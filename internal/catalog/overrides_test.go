package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOverridesMissingFile(t *testing.T) {
	of, err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if len(of.Items) != 0 {
		t.Errorf("expected empty override set, got %d items", len(of.Items))
	}
}

func TestLoadAndApplyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `items:
  bed_queen:
    label: Queen bed (EU)
    length_cm: 210
  console_table:
    profile: small_item
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	of, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides: %v", err)
	}

	c := Default()
	if err := c.Apply(of); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	bed, _ := c.Item("bed_queen")
	if bed.Label != "Queen bed (EU)" {
		t.Errorf("label override not applied: %q", bed.Label)
	}
	if bed.DefaultLengthCm != 210 {
		t.Errorf("length override not applied: %.0f", bed.DefaultLengthCm)
	}
	// Unset fields keep the built-in value.
	if bed.DefaultWidthCm != 160 {
		t.Errorf("width should stay 160, got %.0f", bed.DefaultWidthCm)
	}

	console, _ := c.Item("console_table")
	if console.Profile != ProfileSmallItem {
		t.Errorf("profile override not applied: %s", console.Profile)
	}
}

func TestApplyRejectsUnknownItem(t *testing.T) {
	c := Default()
	err := c.Apply(OverrideFile{Items: map[string]ItemOverride{
		"jacuzzi": {LengthCm: 200},
	}})
	if !errors.Is(err, ErrUnknownItem) {
		t.Errorf("expected ErrUnknownItem, got %v", err)
	}
}

func TestLoadOverridesBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("items: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Error("expected a parse error")
	}
}
