package inventory

import (
	"log/slog"
	"strings"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// FlatTranslator counts items by plain type. All variants of a type share one
// key.
type FlatTranslator struct {
	vocab  Vocabulary
	logger *slog.Logger
}

// NewFlatTranslator builds a translator over plain item keys. It returns
// types.ErrDuplicateKey or types.ErrInvalidKey for a malformed item list;
// plain keys may not contain VariantDelimiter.
func NewFlatTranslator(items []string, opts ...Option) (*FlatTranslator, error) {
	vocab, err := NewVocabulary(types.FlavorFlat, items)
	if err != nil {
		return nil, err
	}
	o := newOptions(opts)
	return &FlatTranslator{vocab: vocab, logger: o.logger}, nil
}

func (t *FlatTranslator) Name() string { return ObservationName }
func (t *FlatTranslator) Flavor() string { return types.FlavorFlat }
func (t *FlatTranslator) Vocabulary() Vocabulary { return t.vocab }
func (t *FlatTranslator) NoOp() Counts { return t.vocab.NoOp() }
func (t *FlatTranslator) Space() Space { return newSpace(t.vocab) }

// FromHero counts a hero event's inventory. Any variant suffix on a stack type
// is ignored.
func (t *FlatTranslator) FromHero(event map[string]any) Counts {
	stacks, err := heroStacks(event)
	if err != nil {
		t.logger.Warn("yielding empty inventory", "translator", t.Flavor(), "mode", ModeHero, "error", err)
		return t.vocab.NoOp()
	}
	return aggregate(t.vocab, stacks, flatHeroKey, t.logger)
}

// FromUniversal counts the inventory slots of a universal snapshot.
func (t *FlatTranslator) FromUniversal(snapshot map[string]any) Counts {
	stacks, err := ExtractSlots(snapshot)
	if err != nil {
		t.logger.Warn("yielding empty inventory", "translator", t.Flavor(), "mode", ModeUniversal, "error", err)
		return t.vocab.NoOp()
	}
	return aggregate(t.vocab, stacks, flatUniversalKey, t.logger)
}

// Union returns a flat translator over both vocabularies.
func (t *FlatTranslator) Union(other Translator) (Translator, error) {
	o, ok := other.(*FlatTranslator)
	if !ok || o == nil {
		return nil, mismatch(t, other)
	}
	vocab, err := t.vocab.Union(o.vocab)
	if err != nil {
		return nil, err
	}
	return &FlatTranslator{vocab: vocab, logger: t.logger}, nil
}

// Equal reports whether other is a flat translator with the same keys.
func (t *FlatTranslator) Equal(other Translator) bool {
	o, ok := other.(*FlatTranslator)
	return ok && o != nil && t.vocab.Equal(o.vocab)
}

func flatHeroKey(s Stack) (string, string, error) {
	raw, ok := s.Type.Get()
	if !ok || raw == "" {
		return "", "", errMissingType
	}
	base := plainType(raw)
	return base, base, nil
}

func flatUniversalKey(s Stack) (string, string, error) {
	raw, ok := s.Name.Get()
	if !ok || raw == "" {
		return "", "", errMissingName
	}
	base := plainType(raw)
	return base, base, nil
}

// plainType strips the namespace and any variant suffix, then applies aliases.
func plainType(raw string) string {
	base, _, _ := strings.Cut(StripNamespace(raw), VariantDelimiter)
	return NormalizeType(base)
}
