package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// VariantDelimiter separates the base type from the variant number in a
// composite item key such as "log#3".
const VariantDelimiter = "#"

// MaxVariant is the exclusive upper bound on variant numbers.
const MaxVariant = 16

// AirType is the sentinel item type for an empty slot. Each empty slot adds
// exactly one to its count regardless of stack size.
const AirType = "air"

// typeAliases maps engine item types onto the logical type they stand for.
// log2 holds the wood kinds that did not fit into log's variant range.
var typeAliases = map[string]string{
	"log2": "log",
}

// invalidKeyChars never appear in item types. A comma usually means a list was
// passed where a single key was expected.
const invalidKeyChars = ", \t\r\n"

// ParseItemKey splits a composite key into its base type and variant number.
// It returns types.ErrInvalidKey unless the key has exactly one delimiter, a
// non-empty base, and a variant in [0, MaxVariant) spelled in canonical
// decimal form, so that VariantKey(base, variant) == key.
func ParseItemKey(key string) (string, int, error) {
	if strings.Count(key, VariantDelimiter) != 1 {
		return "", 0, fmt.Errorf("%w: %q must contain exactly one %q", types.ErrInvalidKey, key, VariantDelimiter)
	}
	base, raw, _ := strings.Cut(key, VariantDelimiter)
	if base == "" {
		return "", 0, fmt.Errorf("%w: %q has an empty type", types.ErrInvalidKey, key)
	}
	if strings.ContainsAny(base, invalidKeyChars) {
		return "", 0, fmt.Errorf("%w: %q contains a separator or whitespace", types.ErrInvalidKey, key)
	}
	variant, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q variant is not an integer", types.ErrInvalidKey, key)
	}
	if variant < 0 || variant >= MaxVariant {
		return "", 0, fmt.Errorf("%w: %q variant out of range [0,%d)", types.ErrInvalidKey, key, MaxVariant)
	}
	if canonical := VariantKey(base, variant); canonical != key {
		return "", 0, fmt.Errorf("%w: %q must be spelled %q", types.ErrInvalidKey, key, canonical)
	}
	return base, variant, nil
}

// VariantKey joins a base type and variant number into a composite key.
func VariantKey(base string, variant int) string {
	return base + VariantDelimiter + strconv.Itoa(variant)
}

// StripNamespace removes a "namespace:" prefix such as "minecraft:".
func StripNamespace(name string) string {
	if _, rest, ok := strings.Cut(name, ":"); ok {
		return rest
	}
	return name
}

// NormalizeType applies the known type aliases.
func NormalizeType(t string) string {
	if alias, ok := typeAliases[t]; ok {
		return alias
	}
	return t
}

// validatePlainKey rejects empty keys, keys carrying a variant suffix, and
// keys with separators or whitespace.
func validatePlainKey(key string) error {
	if key == "" {
		return fmt.Errorf("%w: empty key", types.ErrInvalidKey)
	}
	if strings.ContainsAny(key, invalidKeyChars) {
		return fmt.Errorf("%w: %q contains a separator or whitespace", types.ErrInvalidKey, key)
	}
	if strings.Contains(key, VariantDelimiter) {
		return fmt.Errorf("%w: %q must not contain %q", types.ErrInvalidKey, key, VariantDelimiter)
	}
	return nil
}
