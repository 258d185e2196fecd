package codegen

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/semantic"
)

// Basic-type class tags are fixed (spec.md §4.5 "Object layout").
const (
	StringTag = 5
	IntTag    = 6
	BoolTag   = 7
)

// Layout precomputes every per-class fact the code generator needs
// more than once: class tags, the ancestor-first attribute slot
// order, and the dispatch-table slot order.
type Layout struct {
	H *semantic.Hierarchy

	// ClassTag assigns every class a small integer identifying it at
	// runtime. Basic types keep their fixed tags; user classes
	// (including Object and IO) get tags assigned in hierarchy
	// iteration order, skipping the three reserved tags.
	ClassTag map[string]int

	// Attrs lists every attribute along a class's ancestor chain,
	// ancestor-first, each with the class that declares it.
	Attrs map[string][]AttrSlot

	// DispatchOrder lists a class's dispatch-table slots in order: a
	// method name keeps the slot index of its first appearance on the
	// chain from Object down to the class, even when a descendant
	// overrides it (only the label changes, to the overriding class).
	DispatchOrder map[string][]DispatchSlot
}

// AttrSlot is one attribute's position in an object's layout.
type AttrSlot struct {
	Name          string
	Type          string
	DeclaringClass string
	Index          int // 0-based, from the first attribute slot
}

// DispatchSlot is one dispatch-table entry.
type DispatchSlot struct {
	Method        string
	DefiningClass string // the class whose method label this slot calls
	Index         int    // 0-based word offset into the table
}

// BuildLayout computes tags, attribute slots, and dispatch order for
// every class in h.
func BuildLayout(h *semantic.Hierarchy) *Layout {
	l := &Layout{
		H:             h,
		ClassTag:      make(map[string]int),
		Attrs:         make(map[string][]AttrSlot),
		DispatchOrder: make(map[string][]DispatchSlot),
	}
	l.assignTags()
	for name := range h.Classes {
		l.buildAttrs(name)
		l.buildDispatch(name)
	}
	return l
}

func (l *Layout) assignTags() {
	l.ClassTag["String"] = StringTag
	l.ClassTag["Int"] = IntTag
	l.ClassTag["Bool"] = BoolTag

	next := 1
	nextTag := func() int {
		for next == StringTag || next == IntTag || next == BoolTag {
			next++
		}
		t := next
		next++
		return t
	}
	for _, name := range l.H.Order {
		if name == "String" || name == "Int" || name == "Bool" {
			continue
		}
		l.ClassTag[name] = nextTag()
	}
}

func (l *Layout) buildAttrs(name string) []AttrSlot {
	if s, ok := l.Attrs[name]; ok {
		return s
	}
	var slots []AttrSlot
	class := l.H.Classes[name]
	if class.Parent != ast.NoClass {
		slots = append(slots, l.buildAttrs(class.Parent)...)
	}
	for _, feat := range class.Features {
		attr, ok := feat.(*ast.Attribute)
		if !ok {
			continue
		}
		slots = append(slots, AttrSlot{Name: attr.Name, Type: attr.Type, DeclaringClass: name, Index: len(slots)})
	}
	l.Attrs[name] = slots
	return slots
}

func (l *Layout) buildDispatch(name string) []DispatchSlot {
	if s, ok := l.DispatchOrder[name]; ok {
		return s
	}
	class := l.H.Classes[name]
	var order []DispatchSlot
	index := make(map[string]int)
	if class.Parent != ast.NoClass {
		parentOrder := l.buildDispatch(class.Parent)
		order = append(order, parentOrder...)
		for i, s := range order {
			index[s.Method] = i
		}
	}
	for _, feat := range class.Features {
		m, ok := feat.(*ast.Method)
		if !ok {
			continue
		}
		if idx, exists := index[m.Name]; exists {
			order[idx].DefiningClass = name
		} else {
			index[m.Name] = len(order)
			order = append(order, DispatchSlot{Method: m.Name, DefiningClass: name, Index: len(order)})
		}
	}
	l.DispatchOrder[name] = order
	return order
}

// AttrIndex returns the 0-based slot index of attr on class, or -1.
func (l *Layout) AttrIndex(class, attr string) int {
	for _, s := range l.Attrs[class] {
		if s.Name == attr {
			return s.Index
		}
	}
	return -1
}

// DispatchIndex returns the 0-based slot index of method on class, or -1.
func (l *Layout) DispatchIndex(class, method string) int {
	for _, s := range l.DispatchOrder[class] {
		if s.Method == method {
			return s.Index
		}
	}
	return -1
}

// ObjectWords returns an object of this class's total size in words:
// the 3-word header plus one word per attribute.
func (l *Layout) ObjectWords(class string) int {
	return 3 + len(l.Attrs[class])
}
