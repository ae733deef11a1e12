// Package inventory translates raw game-engine observation dumps into
// fixed-shape item count mappings.
//
// Two dump formats are understood. A hero event carries an "inventory" list of
// stack records. A universal snapshot carries the open container GUI under
// slots.gui, whose slot list is trimmed per container kind before counting.
//
// A Translator is built once from a declared item vocabulary and is then
// called once per tick. It never mutates after construction and is safe for
// concurrent use. Malformed dumps never surface as errors from FromHero or
// FromUniversal: a bad tick yields the all-zero mapping and a bad record is
// skipped.
//
// Example:
//
//	tr, err := inventory.NewFlatTranslator([]string{"dirt", "log", "planks"})
//	if err != nil {
//	    return err
//	}
//	counts := tr.FromUniversal(snapshot)
//	fmt.Println(counts["log"])
package inventory
