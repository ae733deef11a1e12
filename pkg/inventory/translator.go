package inventory

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// ObservationName is the key the translator's output is published under.
const ObservationName = "inventory"

// Dump formats accepted by Translate.
const (
	ModeHero      = "hero"
	ModeUniversal = "universal"
)

// Translator maps one raw dump per tick onto a Count Mapping over a fixed
// vocabulary. Implementations are immutable and safe for concurrent use.
type Translator interface {
	// Name returns the observation key, always ObservationName.
	Name() string

	// Flavor returns types.FlavorFlat or types.FlavorVariant.
	Flavor() string

	// Vocabulary returns the tracked item keys.
	Vocabulary() Vocabulary

	// NoOp returns a fresh all-zero mapping.
	NoOp() Counts

	// FromHero counts the stacks of a hero event's inventory list.
	FromHero(event map[string]any) Counts

	// FromUniversal counts the inventory slots of a universal snapshot. A
	// malformed snapshot is logged and yields NoOp.
	FromUniversal(snapshot map[string]any) Counts

	// Space describes the shape and bounds of the output.
	Space() Space

	// Union returns a new translator over both vocabularies.
	// Returns types.ErrTypeMismatch if the flavors differ.
	Union(other Translator) (Translator, error)

	// Equal reports whether other has the same flavor and vocabulary.
	Equal(other Translator) bool
}

var (
	_ Translator = (*FlatTranslator)(nil)
	_ Translator = (*VariantTranslator)(nil)
)

// Option configures a translator.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for dropped ticks and skipped records.
// The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewTranslator builds the translator flavor named by cfg.
func NewTranslator(cfg types.Config, opts ...Option) (Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Flavor == types.FlavorVariant {
		t, err := NewVariantTranslator(cfg.Items, cfg.UseVariants, opts...)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	t, err := NewFlatTranslator(cfg.Items, opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Merge combines two translators of the same flavor. It is a.Union(b).
func Merge(a, b Translator) (Translator, error) {
	return a.Union(b)
}

// Translate dispatches dump to FromHero or FromUniversal by mode. It returns
// types.ErrModeUnknown for any other mode.
func Translate(t Translator, mode string, dump map[string]any) (Counts, error) {
	switch mode {
	case ModeHero:
		return t.FromHero(dump), nil
	case ModeUniversal:
		return t.FromUniversal(dump), nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrModeUnknown, mode)
	}
}

func mismatch(a, b Translator) error {
	other := "nil"
	if b != nil {
		other = b.Flavor()
	}
	return fmt.Errorf("%w: cannot merge %s with %s", types.ErrTypeMismatch, a.Flavor(), other)
}
