package inventory

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	p := Present(3)
	v, ok := p.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, p.Or(7))

	a := Absent[int]()
	assert.False(t, a.IsPresent())
	assert.Equal(t, 7, a.Or(7))
}

func TestIntField(t *testing.T) {
	m := map[string]any{
		"int":      5,
		"int64":    int64(6),
		"float":    float64(7),
		"fraction": 7.5,
		"number":   json.Number("8"),
		"decimal":  json.Number("3.0"),
		"exponent": json.Number("1e3"),
		"partial":  json.Number("3.5"),
		"huge":     1e300,
		"string":   "9",
		"word":     "nine",
		"bool":     true,
	}
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"int", 5, true},
		{"int64", 6, true},
		{"float", 7, true},
		{"fraction", 0, false},
		{"number", 8, true},
		{"decimal", 3, true},
		{"exponent", 1000, true},
		{"partial", 0, false},
		{"huge", 0, false},
		{"string", 9, true},
		{"word", 0, false},
		{"bool", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := intField(m, tt.key).Get()
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStackFromMap(t *testing.T) {
	s := StackFromMap(map[string]any{"name": "minecraft:log", "count": 3.0, "variant": 2.0})
	assert.Equal(t, "minecraft:log", s.Name.Or(""))
	assert.False(t, s.Type.IsPresent())
	assert.Equal(t, 3, s.size().Or(-1))
	assert.Equal(t, 2, s.Variant.Or(-1))

	hero := StackFromMap(map[string]any{"type": "log", "quantity": 4.0})
	assert.Equal(t, 4, hero.size().Or(-1))

	assert.False(t, StackFromMap(nil).Name.IsPresent())
}
