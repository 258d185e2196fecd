package semantic

import "github.com/coolc/coolc/internal/ast"

const builtinFile = "<basic classes>"

// PrimSlot marks an attribute whose storage is controlled by the
// runtime rather than the initializer (spec.md's prim_slot
// pseudo-type), used for the val slot of Int and Bool and for String's
// str_field bytes slot (String's length slot, val, is typed Int).
const PrimSlot = "_prim_slot_"

// BuiltinsPass appends the synthetic Object, IO, Int, Bool, and String
// classes to the program and interns their names into the string
// table, so the code generator emits constants for them (spec.md
// §4.3 "Install built-ins").
type BuiltinsPass struct{}

func (BuiltinsPass) Name() string { return "install-builtins" }

func (BuiltinsPass) Run(program *ast.Program, ctx *Context) {
	builtins := []*ast.Class{
		objectClass(),
		ioClass(),
		intClass(),
		boolClass(),
		stringClass(),
	}
	program.Classes = append(builtins, program.Classes...)

	for _, name := range []string{"Object", "IO", "Int", "Bool", "String"} {
		ctx.Tables.AddString(name)
	}
}

func noFormalsMethod(name, ret string, body ast.Expression) *ast.Method {
	return ast.NewMethod(builtinFile, 0, name, nil, ret, body)
}

func objectClass() *ast.Class {
	abort := noFormalsMethod("abort", "Object", ast.NewNoExpr(builtinFile, 0))
	typeName := noFormalsMethod("type_name", "String", ast.NewNoExpr(builtinFile, 0))
	copyM := noFormalsMethod("copy", "SELF_TYPE", ast.NewNoExpr(builtinFile, 0))
	return ast.NewClass(builtinFile, 0, "Object", ast.NoClass, []ast.Feature{abort, typeName, copyM})
}

func ioClass() *ast.Class {
	outString := ast.NewMethod(builtinFile, 0, "out_string",
		[]*ast.Formal{ast.NewFormal(builtinFile, 0, "x", "String")}, "SELF_TYPE", ast.NewNoExpr(builtinFile, 0))
	outInt := ast.NewMethod(builtinFile, 0, "out_int",
		[]*ast.Formal{ast.NewFormal(builtinFile, 0, "x", "Int")}, "SELF_TYPE", ast.NewNoExpr(builtinFile, 0))
	inString := noFormalsMethod("in_string", "String", ast.NewNoExpr(builtinFile, 0))
	inInt := noFormalsMethod("in_int", "Int", ast.NewNoExpr(builtinFile, 0))
	return ast.NewClass(builtinFile, 0, "IO", "Object", []ast.Feature{outString, outInt, inString, inInt})
}

func intClass() *ast.Class {
	val := ast.NewAttribute(builtinFile, 0, "val", PrimSlot, ast.NewNoExpr(builtinFile, 0))
	return ast.NewClass(builtinFile, 0, "Int", "Object", []ast.Feature{val})
}

func boolClass() *ast.Class {
	val := ast.NewAttribute(builtinFile, 0, "val", PrimSlot, ast.NewNoExpr(builtinFile, 0))
	return ast.NewClass(builtinFile, 0, "Bool", "Object", []ast.Feature{val})
}

func stringClass() *ast.Class {
	val := ast.NewAttribute(builtinFile, 0, "val", "Int", ast.NewNoExpr(builtinFile, 0))
	strField := ast.NewAttribute(builtinFile, 0, "str_field", PrimSlot, ast.NewNoExpr(builtinFile, 0))
	length := noFormalsMethod("length", "Int", ast.NewNoExpr(builtinFile, 0))
	concat := ast.NewMethod(builtinFile, 0, "concat",
		[]*ast.Formal{ast.NewFormal(builtinFile, 0, "arg", "String")}, "String", ast.NewNoExpr(builtinFile, 0))
	substr := ast.NewMethod(builtinFile, 0, "substr",
		[]*ast.Formal{
			ast.NewFormal(builtinFile, 0, "arg", "Int"),
			ast.NewFormal(builtinFile, 0, "arg2", "Int"),
		}, "String", ast.NewNoExpr(builtinFile, 0))
	return ast.NewClass(builtinFile, 0, "String", "Object", []ast.Feature{val, strField, length, concat, substr})
}
