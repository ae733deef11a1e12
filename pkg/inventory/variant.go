package inventory

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// VariantTranslator counts items keyed by "type#variant". Every vocabulary key
// must carry a variant in [0, MaxVariant).
type VariantTranslator struct {
	vocab       Vocabulary
	useVariants bool
	logger      *slog.Logger
}

// NewVariantTranslator builds a translator over composite item keys. When
// useVariants is false stacks resolve to their bare type, which no composite
// vocabulary key matches; the option exists for parity with engine configs
// and is reported at construction.
func NewVariantTranslator(items []string, useVariants bool, opts ...Option) (*VariantTranslator, error) {
	vocab, err := NewVocabulary(types.FlavorVariant, items)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	if !useVariants && vocab.Len() > 0 {
		o.logger.Warn("variant translator without use_variants never matches composite keys", "items", vocab.Len())
	}
	return &VariantTranslator{vocab: vocab, useVariants: useVariants, logger: o.logger}, nil
}

func (t *VariantTranslator) Name() string { return ObservationName }
func (t *VariantTranslator) Flavor() string { return types.FlavorVariant }
func (t *VariantTranslator) Vocabulary() Vocabulary { return t.vocab }
func (t *VariantTranslator) NoOp() Counts { return t.vocab.NoOp() }
func (t *VariantTranslator) Space() Space { return newSpace(t.vocab) }

// UseVariants reports whether variants are folded into the resolved key.
func (t *VariantTranslator) UseVariants() bool { return t.useVariants }

// FromHero counts a hero event's inventory. Each stack type must be of the
// form "type#variant"; stacks that are not are skipped.
func (t *VariantTranslator) FromHero(event map[string]any) Counts {
	stacks, err := heroStacks(event)
	if err != nil {
		t.logger.Warn("yielding empty inventory", "translator", t.Flavor(), "mode", ModeHero, "error", err)
		return t.vocab.NoOp()
	}
	return aggregate(t.vocab, stacks, t.heroKey, t.logger)
}

// FromUniversal counts the inventory slots of a universal snapshot. The
// variant comes from each slot's "variant" field.
func (t *VariantTranslator) FromUniversal(snapshot map[string]any) Counts {
	stacks, err := ExtractSlots(snapshot)
	if err != nil {
		t.logger.Warn("yielding empty inventory", "translator", t.Flavor(), "mode", ModeUniversal, "error", err)
		return t.vocab.NoOp()
	}
	return aggregate(t.vocab, stacks, t.universalKey, t.logger)
}

// Union returns a variant translator over both vocabularies. The result keeps
// the receiver's use_variants setting.
func (t *VariantTranslator) Union(other Translator) (Translator, error) {
	o, ok := other.(*VariantTranslator)
	if !ok || o == nil {
		return nil, mismatch(t, other)
	}
	vocab, err := t.vocab.Union(o.vocab)
	if err != nil {
		return nil, err
	}
	return &VariantTranslator{vocab: vocab, useVariants: t.useVariants, logger: t.logger}, nil
}

// Equal reports whether other is a variant translator with the same keys.
func (t *VariantTranslator) Equal(other Translator) bool {
	o, ok := other.(*VariantTranslator)
	return ok && o != nil && t.vocab.Equal(o.vocab)
}

func (t *VariantTranslator) heroKey(s Stack) (string, string, error) {
	raw, ok := s.Type.Get()
	if !ok || raw == "" {
		return "", "", errMissingType
	}
	raw = StripNamespace(raw)
	if strings.Count(raw, VariantDelimiter) != 1 {
		return "", "", fmt.Errorf("type %q: %w", raw, errMissingVariant)
	}
	base, v, _ := strings.Cut(raw, VariantDelimiter)
	variant, err := strconv.Atoi(v)
	if err != nil {
		return "", "", fmt.Errorf("type %q: %w", raw, errMissingVariant)
	}
	base = NormalizeType(base)
	return t.key(base, variant), base, nil
}

func (t *VariantTranslator) universalKey(s Stack) (string, string, error) {
	raw, ok := s.Name.Get()
	if !ok || raw == "" {
		return "", "", errMissingName
	}
	base := NormalizeType(StripNamespace(raw))
	if !t.useVariants {
		return base, base, nil
	}
	variant, ok := s.Variant.Get()
	if !ok {
		return "", "", fmt.Errorf("name %q: %w", raw, errMissingVariant)
	}
	return VariantKey(base, variant), base, nil
}

func (t *VariantTranslator) key(base string, variant int) string {
	if t.useVariants {
		return VariantKey(base, variant)
	}
	return base
}
