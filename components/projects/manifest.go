package projects

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// DashboardManifest models a YAML manifest describing the dashboard's cards.
type DashboardManifest struct {
	Version string         `json:"version" yaml:"version"`
	Name    string         `json:"name,omitempty" yaml:"name,omitempty"`
	Cards   []ManifestCard `json:"cards" yaml:"cards"`
	Source  string         `json:"-" yaml:"-"`
}

// ManifestCard describes a single card entry within a manifest.
type ManifestCard struct {
	Definition CardDefinition `json:"definition" yaml:"definition"`
	Config     map[string]any `json:"config,omitempty" yaml:"config,omitempty"`
	Tags       []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// CardDefinition describes a dashboard card: a KPI tile or a chart card.
type CardDefinition struct {
	Code                 string            `json:"code" yaml:"code"`
	Name                 string            `json:"name" yaml:"name"`
	NameLocalized        map[string]string `json:"name_localized,omitempty" yaml:"name_localized,omitempty"`
	Description          string            `json:"description,omitempty" yaml:"description,omitempty"`
	DescriptionLocalized map[string]string `json:"description_localized,omitempty" yaml:"description_localized,omitempty"`
	Kind                 CardKind          `json:"kind" yaml:"kind"`
	Schema               map[string]any    `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// CardKind is the closed set of card renderers.
type CardKind string

// Card kinds.
const (
	CardKPI      CardKind = "kpi"
	CardBarChart CardKind = "bar_chart"
	CardPieChart CardKind = "pie_chart"
)

// NameForLocale returns the display name for the requested locale with
// graceful fallback to the default name.
func (def CardDefinition) NameForLocale(locale string) string {
	return ResolveLocalizedValue(def.NameLocalized, locale, def.Name)
}

// DescriptionForLocale returns the localized description if available.
func (def CardDefinition) DescriptionForLocale(locale string) string {
	return ResolveLocalizedValue(def.DescriptionLocalized, locale, def.Description)
}

// LoadManifestFile reads a manifest from disk, registers it against the
// registry, and returns the document.
func (r *Registry) LoadManifestFile(path string) (*DashboardManifest, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers card definitions from a decoded manifest.
func (r *Registry) LoadManifestDocument(doc *DashboardManifest) error {
	if doc == nil {
		return fmt.Errorf("projects: manifest document is nil")
	}
	for _, card := range doc.Cards {
		if err := r.RegisterDefinition(card.Definition); err != nil {
			return fmt.Errorf("projects: register card %s from %s: %w", card.Definition.Code, doc.Source, err)
		}
		if err := r.SetCardConfig(card.Definition.Code, card.Config); err != nil {
			return fmt.Errorf("projects: store config for card %s from %s: %w", card.Definition.Code, doc.Source, err)
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*DashboardManifest, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("projects: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("projects: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader.
func DecodeManifest(r io.Reader) (*DashboardManifest, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc DashboardManifest
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("projects: manifest is empty")
		}
		return nil, fmt.Errorf("projects: parse manifest: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate ensures the manifest satisfies required fields.
func (doc *DashboardManifest) Validate() error {
	if doc.Version != manifestVersionV1 {
		return fmt.Errorf("projects: unsupported manifest version %q", doc.Version)
	}
	seen := make(map[string]struct{}, len(doc.Cards))
	for idx, card := range doc.Cards {
		if card.Definition.Code == "" {
			return fmt.Errorf("projects: manifest card at index %d is missing definition.code", idx)
		}
		if card.Definition.Name == "" {
			return fmt.Errorf("projects: manifest card %s missing definition.name", card.Definition.Code)
		}
		switch card.Definition.Kind {
		case CardKPI, CardBarChart, CardPieChart:
		default:
			return fmt.Errorf("projects: manifest card %s has unknown kind %q", card.Definition.Code, card.Definition.Kind)
		}
		if _, exists := seen[card.Definition.Code]; exists {
			return fmt.Errorf("projects: manifest duplicates card code %s", card.Definition.Code)
		}
		seen[card.Definition.Code] = struct{}{}
	}
	return nil
}

func (doc *DashboardManifest) applyDefaults() {
	if doc.Version == "" {
		doc.Version = manifestVersionV1
	}
}
