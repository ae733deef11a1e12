package inventory

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// Per-record problems. Records failing with one of these are skipped.
var (
	errMissingType     = errors.New("stack has no type")
	errMissingName     = errors.New("stack has no name")
	errMissingVariant  = errors.New("stack has no variant")
	errMissingQuantity = errors.New("stack has no quantity")
	errNegativeSize    = errors.New("stack size is negative")
	errSizeOverflow    = errors.New("stack size overflows the count")
)

// keyResolver maps a stack to its vocabulary key and its alias-normalized base
// type. The base type decides air handling.
type keyResolver func(Stack) (key, base string, err error)

// aggregate counts stacks into a fresh no-op mapping of vocab. Keys outside
// the vocabulary are dropped. Air adds one per stack.
func aggregate(vocab Vocabulary, stacks []Stack, resolve keyResolver, logger *slog.Logger) Counts {
	counts := vocab.NoOp()
	for i, s := range stacks {
		key, base, err := resolve(s)
		if err != nil {
			logger.Debug("skipping stack", "index", i, "error", err)
			continue
		}
		if !vocab.Contains(key) {
			continue
		}
		if base == AirType {
			counts[key]++
			continue
		}
		n, ok := s.size().Get()
		if !ok {
			logger.Debug("skipping stack", "index", i, "key", key, "error", errMissingQuantity)
			continue
		}
		if n < 0 {
			logger.Debug("skipping stack", "index", i, "key", key, "error", errNegativeSize)
			continue
		}
		if n > math.MaxInt-counts[key] {
			logger.Debug("skipping stack", "index", i, "key", key, "error", errSizeOverflow)
			continue
		}
		counts[key] += n
	}
	return counts
}

// heroStacks reads the inventory list of a hero event.
func heroStacks(event map[string]any) ([]Stack, error) {
	list, ok := listField(event, "inventory").Get()
	if !ok {
		return nil, fmt.Errorf("%w: missing inventory", types.ErrMalformedEvent)
	}
	return stacksFromList(list), nil
}
