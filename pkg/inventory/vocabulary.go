package inventory

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// Counts maps every vocabulary key to a non-negative item count.
type Counts map[string]int

// Vocabulary is the frozen, sorted, duplicate-free set of item keys a
// translator reports on. The zero value is an empty flat vocabulary.
type Vocabulary struct {
	flavor string
	keys   []string
	index  map[string]int
}

// NewVocabulary validates keys for the given flavor and returns them sorted.
// It returns types.ErrDuplicateKey if a key repeats and types.ErrInvalidKey if
// a key is malformed for the flavor.
func NewVocabulary(flavor string, keys []string) (Vocabulary, error) {
	if !types.IsValidFlavor(flavor) {
		return Vocabulary{}, fmt.Errorf("%w: %q", types.ErrFlavorUnknown, flavor)
	}

	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			return Vocabulary{}, fmt.Errorf("%w: %q", types.ErrDuplicateKey, k)
		}
		seen[k] = true

		switch flavor {
		case types.FlavorVariant:
			if _, _, err := ParseItemKey(k); err != nil {
				return Vocabulary{}, err
			}
		default:
			if err := validatePlainKey(k); err != nil {
				return Vocabulary{}, err
			}
		}
	}

	sorted := make([]string, len(keys))
	copy(sorted, keys)
	slices.Sort(sorted)
	return newVocabulary(flavor, sorted), nil
}

// newVocabulary builds the lookup index for already validated, sorted keys.
func newVocabulary(flavor string, sorted []string) Vocabulary {
	index := make(map[string]int, len(sorted))
	for i, k := range sorted {
		index[k] = i
	}
	return Vocabulary{flavor: flavor, keys: sorted, index: index}
}

// Flavor returns the flavor the keys were validated against.
func (v Vocabulary) Flavor() string {
	if v.flavor == "" {
		return types.FlavorFlat
	}
	return v.flavor
}

// Keys returns a copy of the sorted keys.
func (v Vocabulary) Keys() []string {
	return slices.Clone(v.keys)
}

// Len returns the number of keys.
func (v Vocabulary) Len() int {
	return len(v.keys)
}

// Contains reports whether key is tracked.
func (v Vocabulary) Contains(key string) bool {
	_, ok := v.index[key]
	return ok
}

// NoOp returns a fresh mapping with every key set to zero. Each call returns a
// new map.
func (v Vocabulary) NoOp() Counts {
	counts := make(Counts, len(v.keys))
	for _, k := range v.keys {
		counts[k] = 0
	}
	return counts
}

// Vector returns the counts in vocabulary order. Keys missing from c read as zero.
func (v Vocabulary) Vector(c Counts) []int {
	out := make([]int, len(v.keys))
	for i, k := range v.keys {
		out[i] = c[k]
	}
	return out
}

// Equal reports whether both vocabularies have the same flavor and key set.
func (v Vocabulary) Equal(other Vocabulary) bool {
	return v.Flavor() == other.Flavor() && slices.Equal(v.keys, other.keys)
}

// Union returns a vocabulary over the keys of both. It returns
// types.ErrTypeMismatch if the flavors differ.
func (v Vocabulary) Union(other Vocabulary) (Vocabulary, error) {
	if v.Flavor() != other.Flavor() {
		return Vocabulary{}, fmt.Errorf("%w: cannot merge %s with %s", types.ErrTypeMismatch, v.Flavor(), other.Flavor())
	}
	merged := make([]string, 0, len(v.keys)+len(other.keys))
	merged = append(merged, v.keys...)
	merged = append(merged, other.keys...)
	slices.Sort(merged)
	return newVocabulary(v.Flavor(), slices.Compact(merged)), nil
}
