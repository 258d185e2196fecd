// Package typecheck implements the type checker (spec.md §4.4):
// a scoped variable environment, a method-signature table built by
// walking each class's parent chain, per-expression type assignment
// via the ast.Visitor capability, and the subtype/lub rules.
package typecheck

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/semantic"
)

// resolveSelf replaces SELF_TYPE with selfClass; every other type
// name passes through unchanged.
func resolveSelf(t, selfClass string) string {
	if t == ast.SelfType {
		return selfClass
	}
	return t
}

// Subtype implements spec.md's `⊑` relation: NOTYPE is a subtype of
// everything (so a missing initializer never fails a subtype check);
// every type is a subtype of itself; SELF_TYPE is treated as equal to
// the enclosing class in both directions (the permissive rule the
// source actually implements, per spec.md §4.4 and the Open Question
// resolved in SPEC_FULL.md); otherwise child is a subtype of parent
// iff parent appears on child's ancestor chain.
func Subtype(h *semantic.Hierarchy, child, parent, selfClass string) bool {
	if child == ast.NoType {
		return true
	}
	child = resolveSelf(child, selfClass)
	parent = resolveSelf(parent, selfClass)
	if child == parent {
		return true
	}
	return h.IsSubclass(child, parent)
}

// Lub computes the least upper bound of a non-empty list of types
// along the inheritance tree (spec.md §4.4 "Least upper bound"). If
// every member is SELF_TYPE, the result is SELF_TYPE (both If and Case
// branches returning self stay self-typed); otherwise SELF_TYPE
// members are resolved to selfClass before walking the tree, and the
// walk falls back to Object if no common ancestor is found short of
// it.
func Lub(h *semantic.Hierarchy, types []string, selfClass string) string {
	if len(types) == 0 {
		return "Object"
	}

	allSelf := true
	for _, t := range types {
		if t != ast.SelfType {
			allSelf = false
			break
		}
	}
	if allSelf {
		return ast.SelfType
	}

	resolved := make([]string, len(types))
	allEqual := true
	for i, t := range types {
		resolved[i] = resolveSelf(t, selfClass)
		if resolved[i] != resolved[0] {
			allEqual = false
		}
	}
	if allEqual {
		return resolved[0]
	}

	chain := h.Ancestors(resolved[0])
	for _, anc := range chain {
		covers := true
		for _, t := range resolved {
			if !h.IsSubclass(t, anc) {
				covers = false
				break
			}
		}
		if covers {
			return anc
		}
	}
	return "Object"
}
