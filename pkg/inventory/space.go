package inventory

// Bounds of each count in the observation space. 2304 is 36 slots of 64 items.
const (
	SpaceLow  = 0
	SpaceHigh = 2304
)

// Space describes the output of a translator: one bounded int32 per key, in
// key order. Agents that consume counts positionally rely on Keys.
type Space struct {
	Name            string   `json:"name"`
	Keys            []string `json:"keys"`
	Low             int      `json:"low"`
	High            int      `json:"high"`
	DType           string   `json:"dtype"`
	NormalizerScale string   `json:"normalizer_scale"`
}

func newSpace(v Vocabulary) Space {
	return Space{
		Name:            ObservationName,
		Keys:            v.Keys(),
		Low:             SpaceLow,
		High:            SpaceHigh,
		DType:           "int32",
		NormalizerScale: "log",
	}
}

// Contains reports whether c has exactly the space's keys and every count lies
// within [Low, High].
func (s Space) Contains(c Counts) bool {
	if len(c) != len(s.Keys) {
		return false
	}
	for _, k := range s.Keys {
		n, ok := c[k]
		if !ok || n < s.Low || n > s.High {
			return false
		}
	}
	return true
}
