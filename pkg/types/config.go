package types

import "errors"

// Config selects a translator flavor and declares the item vocabulary it tracks.
type Config struct {
	Flavor      string   `json:"flavor" yaml:"flavor"`
	Items       []string `json:"items" yaml:"items"`
	UseVariants bool     `json:"use_variants" yaml:"use_variants"`
}

// Supported translator flavors.
const (
	// FlavorFlat tracks plain item types and ignores variants.
	FlavorFlat = "flat"
	// FlavorVariant tracks "type#variant" keys.
	FlavorVariant = "variant"
)

// Config validation errors.
var (
	ErrFlavorEmpty   = errors.New("flavor must not be empty")
	ErrFlavorUnknown = errors.New("unknown flavor")
)

// knownFlavors lists the flavors that Validate accepts.
var knownFlavors = map[string]bool{
	FlavorFlat:    true,
	FlavorVariant: true,
}

// Validate checks that the Config names a known flavor. Item keys are checked
// when the vocabulary is built, not here.
func (c Config) Validate() error {
	if c.Flavor == "" {
		return ErrFlavorEmpty
	}
	if !knownFlavors[c.Flavor] {
		return ErrFlavorUnknown
	}
	return nil
}

// IsValidFlavor reports whether the given string is a recognized flavor.
func IsValidFlavor(f string) bool {
	return knownFlavors[f]
}
