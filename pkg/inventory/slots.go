package inventory

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/mesh-intelligence/invobs/pkg/types"
)

// ContainerKind identifies which GUI layout produced a snapshot.
type ContainerKind string

// Container kinds with their own slot trimming rules.
const (
	KindPlayer    ContainerKind = "player"
	KindWorkbench ContainerKind = "workbench"
	KindFurnace   ContainerKind = "furnace"
	KindGeneric   ContainerKind = "generic"
)

// containerLabels maps the labels engines emit onto container kinds. The long
// forms are the Java class names the engine reports.
var containerLabels = map[string]ContainerKind{
	"player":    KindPlayer,
	"workbench": KindWorkbench,
	"furnace":   KindFurnace,

	"class net.minecraft.inventory.ContainerPlayer":    KindPlayer,
	"class net.minecraft.inventory.ContainerWorkbench": KindWorkbench,
	"class net.minecraft.inventory.ContainerFurnace":   KindFurnace,
}

// cursorItemKey names the member of an object-shaped slot list that holds the
// item attached to the pointer.
const cursorItemKey = "cursor_item"

// furnaceProgressSlot is the furnace slot that holds the item being smelted.
const furnaceProgressSlot = 2

// ParseContainerKind maps a GUI type label to its kind. Unrecognized labels
// are KindGeneric.
func ParseContainerKind(label string) ContainerKind {
	if kind, ok := containerLabels[label]; ok {
		return kind
	}
	return KindGeneric
}

// Container is the GUI section of a universal snapshot.
type Container struct {
	Kind   ContainerKind
	Label  string
	Slots  []Stack
	Cursor Field[Stack]
}

// ReadContainer reads slots.gui from a universal snapshot. It returns
// types.ErrMalformedSnapshot if slots, slots.gui, slots.gui.type, or
// slots.gui.slots is missing or has the wrong shape.
func ReadContainer(snapshot map[string]any) (Container, error) {
	slots, ok := mapField(snapshot, "slots").Get()
	if !ok {
		return Container{}, fmt.Errorf("%w: missing slots", types.ErrMalformedSnapshot)
	}
	gui, ok := mapField(slots, "gui").Get()
	if !ok {
		return Container{}, fmt.Errorf("%w: missing slots.gui", types.ErrMalformedSnapshot)
	}
	label, ok := stringField(gui, "type").Get()
	if !ok {
		return Container{}, fmt.Errorf("%w: missing slots.gui.type", types.ErrMalformedSnapshot)
	}

	c := Container{
		Kind:   ParseContainerKind(label),
		Label:  label,
		Cursor: Absent[Stack](),
	}

	if list, ok := listField(gui, "slots").Get(); ok {
		c.Slots = stacksFromList(list)
		return c, nil
	}
	obj, ok := mapField(gui, "slots").Get()
	if !ok {
		return Container{}, fmt.Errorf("%w: missing slots.gui.slots", types.ErrMalformedSnapshot)
	}
	c.Slots = indexedSlots(obj)
	if cursor, ok := mapField(obj, cursorItemKey).Get(); ok && len(cursor) > 0 {
		c.Cursor = Present(StackFromMap(cursor))
	}
	return c, nil
}

// indexedSlots orders the integer-named members of an object-shaped slot list.
// Other members are ignored.
func indexedSlots(obj map[string]any) []Stack {
	type indexed struct {
		i     int
		stack Stack
	}
	var entries []indexed
	for k, v := range obj {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			continue
		}
		m, _ := v.(map[string]any)
		entries = append(entries, indexed{i: i, stack: StackFromMap(m)})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].i < entries[b].i })

	out := make([]Stack, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.stack)
	}
	return out
}

// InventorySlots returns the slots holding real inventory, in order, followed
// by the cursor item if one is held. Player and workbench GUIs lose their
// crafting-result slot; furnaces lose the smelting slot.
func (c Container) InventorySlots() []Stack {
	var out []Stack
	switch c.Kind {
	case KindPlayer, KindWorkbench:
		if len(c.Slots) > 0 {
			out = slices.Clone(c.Slots[1:])
		}
	case KindFurnace:
		out = slices.Clone(c.Slots)
		if len(out) > furnaceProgressSlot {
			out = slices.Delete(out, furnaceProgressSlot, furnaceProgressSlot+1)
		}
	default:
		out = slices.Clone(c.Slots)
	}

	if cursor, ok := c.Cursor.Get(); ok {
		out = append(out, cursor)
	}
	return out
}

// ExtractSlots returns the inventory slots of a universal snapshot. See
// ReadContainer and Container.InventorySlots.
func ExtractSlots(snapshot map[string]any) ([]Stack, error) {
	c, err := ReadContainer(snapshot)
	if err != nil {
		return nil, err
	}
	return c.InventorySlots(), nil
}
