package typecheck

import (
	"github.com/coolc/coolc/internal/ast"
	"github.com/coolc/coolc/internal/diag"
	"github.com/coolc/coolc/internal/semantic"
)

// Signature is a method's ordered parameter types followed by its
// return type, plus the class that defines it (the most-derived class
// on the chain to declare it, which may differ from the class whose
// table is being consulted when the method is inherited unchanged).
type Signature struct {
	Params        []string
	Return        string
	DefiningClass string
}

func formalTypes(m *ast.Method) []string {
	out := make([]string, len(m.Formals))
	for i, f := range m.Formals {
		out[i] = f.Type
	}
	return out
}

func sameParams(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MethodTables maps each class name to its fully-resolved method
// table: every method reachable from that class, by name, with the
// signature in effect at that class (its own declaration if it
// overrides, otherwise the nearest ancestor's).
type MethodTables map[string]map[string]Signature

// BuildMethodTables walks each class's parent chain (spec.md §4.4
// "Method table build"): for each class C, every method encountered is
// recorded the first time it is seen; if a descendant redeclares a
// name already recorded, its parameter types and return type must
// match exactly, or OverrideMismatch is reported.
func BuildMethodTables(h *semantic.Hierarchy, errs *diag.Bag) MethodTables {
	tables := make(MethodTables, len(h.Classes))

	var build func(name string)
	build = func(name string) {
		if _, done := tables[name]; done {
			return
		}
		parent := h.Parent[name]
		effective := make(map[string]Signature)
		if parent != ast.NoClass {
			build(parent)
			for k, v := range tables[parent] {
				effective[k] = v
			}
		}

		class := h.Classes[name]
		for _, feat := range class.Features {
			m, ok := feat.(*ast.Method)
			if !ok {
				continue
			}
			sig := Signature{Params: formalTypes(m), Return: m.ReturnType, DefiningClass: name}
			if inherited, overrides := effective[m.Name]; overrides {
				if !sameParams(inherited.Params, sig.Params) || inherited.Return != sig.Return {
					errs.Add(class.Filename(), m.Line(), diag.OverrideMismatch,
						"method %s.%s does not match overridden %s.%s",
						name, m.Name, inherited.DefiningClass, m.Name)
				}
			}
			effective[m.Name] = sig
		}
		tables[name] = effective
	}

	for name := range h.Classes {
		build(name)
	}
	return tables
}

// Lookup finds method's signature as seen from class, searching the
// class's own resolved table (which already folds in inheritance).
func (mt MethodTables) Lookup(class, method string) (Signature, bool) {
	sig, ok := mt[class][method]
	return sig, ok
}
