package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	if len(c.Projects) != 2 {
		t.Errorf("got %d projects, want 2", len(c.Projects))
	}
	if len(c.Units) != 8 {
		t.Errorf("got %d units, want 8", len(c.Units))
	}
	if len(c.FAQs) != 14 {
		t.Errorf("got %d faqs, want 14", len(c.FAQs))
	}
	if len(c.Filters) != 10 {
		t.Errorf("got %d filters, want 10", len(c.Filters))
	}

	p := c.DefaultProject()
	if p == nil || p.ID != "greenfield-shantigram" {
		t.Fatalf("default project = %+v, want greenfield-shantigram", p)
	}
	if p.Transport == nil || len(p.Transport.Distances) != 5 {
		t.Fatalf("expected 5 transport distances, got %+v", p.Transport)
	}
	if p.Transport.Distances[0].Place != "SG Highway" {
		t.Errorf("first distance = %q, want SG Highway", p.Transport.Distances[0].Place)
	}
	if got := len(p.Amenities.All()); got != 18 {
		t.Errorf("got %d amenities, want 18", got)
	}
}

func TestDefaultCatalogReferences(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	for _, u := range c.Units {
		if _, err := c.Project(u.ProjectID); err != nil {
			t.Errorf("unit %s: %v", u.ID, err)
		}
	}
	for _, f := range c.FAQs {
		if _, err := c.Project(f.ProjectID); err != nil {
			t.Errorf("faq %s: %v", f.ID, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: `
projects: [{id: p1, name: One}]
units: [{id: u1, project_id: p1, availability: available}]
faqs: [{id: f1, project_id: p1}]
`,
		},
		{
			name: "dangling unit",
			yaml: `
projects: [{id: p1, name: One}]
units: [{id: u1, project_id: p2, availability: available}]
`,
			wantErr: "unknown project",
		},
		{
			name: "dangling faq",
			yaml: `
projects: [{id: p1, name: One}]
faqs: [{id: f1, project_id: nope}]
`,
			wantErr: "unknown project",
		},
		{
			name: "duplicate project",
			yaml: `
projects: [{id: p1, name: One}, {id: p1, name: Two}]
`,
			wantErr: "duplicate project",
		},
		{
			name: "bad availability",
			yaml: `
projects: [{id: p1, name: One}]
units: [{id: u1, project_id: p1, availability: reserved}]
`,
			wantErr: "invalid availability",
		},
		{
			name: "filter without query",
			yaml: `
projects: [{id: p1, name: One}]
filters: [{id: t1, label: Cheap}]
`,
			wantErr: "needs a label and a query",
		},
		{
			name:    "not yaml",
			yaml:    "projects: [",
			wantErr: "parsing catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestProjectNotFound(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	_, err = c.Project("missing")
	if !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestScopedRecords(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	units := c.UnitsForProject("gift-city-tower")
	if len(units) != 2 {
		t.Fatalf("got %d units, want 2", len(units))
	}
	if units[0].ID != "gift-3bhk-01" {
		t.Errorf("first unit = %q, want catalog order", units[0].ID)
	}

	faqs := c.FAQsForProject("greenfield-shantigram")
	if len(faqs) != 12 {
		t.Errorf("got %d faqs, want 12", len(faqs))
	}

	if got := c.UnitsForProject("missing"); len(got) != 0 {
		t.Errorf("got %d units for missing project, want 0", len(got))
	}
}

func TestUnitHasFeature(t *testing.T) {
	u := Unit{Features: []string{"East Facing", "Vastu Compliant"}}

	if !u.HasFeature("vastu compliant") {
		t.Error("expected case-insensitive feature match")
	}
	if u.HasFeature("West Facing") {
		t.Error("unexpected feature match")
	}
}

func TestRecordOwnership(t *testing.T) {
	tests := []struct {
		name      string
		record    Record
		wantKind  string
		wantOwner string
	}{
		{"project", &Project{ID: "p1"}, "project", "p1"},
		{"unit", &Unit{ID: "u1", ProjectID: "p2"}, "unit", "p2"},
		{"faq", &FAQ{ID: "f1", ProjectID: "p3"}, "faq", "p3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Kind(); got != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", got, tt.wantKind)
			}
			if got := tt.record.OwnerID(); got != tt.wantOwner {
				t.Errorf("OwnerID() = %q, want %q", got, tt.wantOwner)
			}
		})
	}
}

func TestFormatIndianPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		expected string
	}{
		{"crore", 20700000, "₹2.07 Cr"},
		{"exact crore", 10000000, "₹1.00 Cr"},
		{"lakh", 250000, "₹2.50 L"},
		{"small", 999, "₹999"},
		{"thousands", 45000, "₹45,000"},
		{"zero", 0, "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatIndianPrice(tt.price); got != tt.expected {
				t.Errorf("FormatIndianPrice(%d) = %q, want %q", tt.price, got, tt.expected)
			}
		})
	}
}

func TestGroupIndian(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{123, "123"},
		{1234, "1,234"},
		{123456, "1,23,456"},
		{12345678, "1,23,45,678"},
		{-98765, "-98,765"},
	}

	for _, tt := range tests {
		if got := groupIndian(tt.n); got != tt.expected {
			t.Errorf("groupIndian(%d) = %q, want %q", tt.n, got, tt.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	embedded, err := Load("")
	if err != nil {
		t.Fatalf("load embedded: %v", err)
	}
	if len(embedded.Projects) != 2 {
		t.Errorf("got %d projects, want 2", len(embedded.Projects))
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "projects: [{id: solo, name: Solo Residency}]\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if p := c.DefaultProject(); p == nil || p.Name != "Solo Residency" {
		t.Errorf("default project = %+v", p)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
