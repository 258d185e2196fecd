package driver

import (
	"strings"
	"testing"
)

const helloWorld = `
class Main inherits IO {
	main() : SELF_TYPE {
		out_string("Hello, world.\n")
	};
};
`

func TestCompileMinimalProgram(t *testing.T) {
	result, err := Compile([]Source{{Name: "hello.cl", Text: helloWorld}})
	if err != nil {
		t.Fatalf("Compile returned error: %v, diagnostics: %v", err, result.Diagnostics)
	}
	if !strings.Contains(result.Assembly, "Main.main:") {
		t.Errorf("expected assembly to define Main.main, got:\n%s", result.Assembly)
	}
	if !strings.Contains(result.Assembly, "Main_prototype:") {
		t.Errorf("expected assembly to define Main_prototype, got:\n%s", result.Assembly)
	}
}

func TestCompileInheritanceCycle(t *testing.T) {
	src := `
class A inherits B {};
class B inherits A {};
class Main inherits IO {
	main() : SELF_TYPE { self };
};
`
	result, err := Compile([]Source{{Name: "cycle.cl", Text: src}})
	if err == nil {
		t.Fatal("expected an inheritance-cycle error, got nil")
	}
	if len(result.Diagnostics) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
}

func TestCompileOverrideMismatch(t *testing.T) {
	src := `
class A {
	f(x : Int) : Int { x };
};
class B inherits A {
	f(x : Int, y : Int) : Int { x };
};
class Main inherits IO {
	main() : SELF_TYPE { self };
};
`
	result, err := Compile([]Source{{Name: "override.cl", Text: src}})
	if err == nil {
		t.Fatal("expected an override-mismatch error, got nil")
	}
	found := false
	for _, d := range result.Diagnostics {
		if d.Kind == "OverrideMismatch" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an OverrideMismatch diagnostic, got %v", result.Diagnostics)
	}
}

func TestCompileEqualityTypeMismatch(t *testing.T) {
	src := `
class Main inherits IO {
	main() : SELF_TYPE {
		if 1 = "one" then self else self fi
	};
};
`
	result, err := Compile([]Source{{Name: "eq.cl", Text: src}})
	if err == nil {
		t.Fatal("expected an equality-type-mismatch error, got nil")
	}
	found := false
	for _, d := range result.Diagnostics {
		if d.Kind == "EqualityTypeMismatch" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an EqualityTypeMismatch diagnostic, got %v", result.Diagnostics)
	}
}

func TestCompileMultiFile(t *testing.T) {
	helper := `
class Helper {
	id(x : Int) : Int { x };
};
`
	main := `
class Main inherits IO {
	main() : SELF_TYPE {
		let h : Helper <- new Helper in out_int(h.id(42))
	};
};
`
	result, err := Compile([]Source{{Name: "helper.cl", Text: helper}, {Name: "main.cl", Text: main}})
	if err != nil {
		t.Fatalf("Compile returned error: %v, diagnostics: %v", err, result.Diagnostics)
	}
	if !strings.Contains(result.Assembly, "Helper_prototype:") {
		t.Errorf("expected assembly to define Helper_prototype, got:\n%s", result.Assembly)
	}
}
