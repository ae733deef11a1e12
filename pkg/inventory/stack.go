package inventory

// Stack is one slot's contents as reported by the engine. Every field is
// optional; which ones a record needs depends on the dump format and flavor.
type Stack struct {
	Type     Field[string] // hero events: "log" or "log#2"
	Name     Field[string] // universal snapshots: "minecraft:log"
	Quantity Field[int]
	Count    Field[int]
	Variant  Field[int]
}

// StackFromMap reads the known stack fields out of a raw record.
func StackFromMap(m map[string]any) Stack {
	return Stack{
		Type:     stringField(m, "type"),
		Name:     stringField(m, "name"),
		Quantity: intField(m, "quantity"),
		Count:    intField(m, "count"),
		Variant:  intField(m, "variant"),
	}
}

// stacksFromList converts raw list entries. Entries that are not objects
// become empty stacks, which aggregation skips.
func stacksFromList(list []any) []Stack {
	out := make([]Stack, 0, len(list))
	for _, entry := range list {
		m, _ := entry.(map[string]any)
		out = append(out, StackFromMap(m))
	}
	return out
}

// size returns the stack size, preferring the universal "count" field.
func (s Stack) size() Field[int] {
	if s.Count.IsPresent() {
		return s.Count
	}
	return s.Quantity
}
