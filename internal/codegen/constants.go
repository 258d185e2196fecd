package codegen

import (
	"fmt"

	"github.com/coolc/coolc/internal/token"
)

// emitDataHeader writes the `.data` section header: global exports
// and the three class-tag words (spec.md §4.5 emission pass 1).
func emitDataHeader(e *Emitter) {
	e.Raw(".data")
	for _, sym := range []string{"Main_prototype", "Main_init", "Main.main", "bool_const0", "bool_const1",
		"__int_tag", "__bool_tag", "__string_tag"} {
		e.Raw(".globl " + sym)
	}
	e.Blank()
	e.Label("__int_tag")
	e.Word(fmt.Sprintf("%d", IntTag))
	e.Label("__bool_tag")
	e.Word(fmt.Sprintf("%d", BoolTag))
	e.Label("__string_tag")
	e.Word(fmt.Sprintf("%d", StringTag))
	e.Blank()
}

// stringWords returns the total size in words of the str_const object
// for a string of byte length n (header, length word, and bytes):
// 4 + ceil(len/4), per spec.md §4.5.
func stringWords(byteLen int) int {
	return 4 + (byteLen+3)/4
}

// emitConstants emits str_const<i> for every interned string
// (including an empty default), int_const<i> for every interned
// integer, and the two boolean constants (spec.md §4.5 emission pass
// 2).
func emitConstants(e *Emitter, tables *token.Tables) {
	// Ensure an empty-string default constant exists even if no
	// empty string literal appears in the source.
	tables.AddString("")

	for _, sym := range tables.Strings.Elements() {
		text := sym.String()
		i := tables.Strings.IndexOf(text)
		e.Label(strConstLabel(i))
		e.Word(fmt.Sprintf("%d", StringTag))
		e.Word(fmt.Sprintf("%d", stringWords(len(text))))
		e.Word(disptableLabel("String"))
		e.Word(fmt.Sprintf("%d", len(text)))
		e.Asciiz(text)
		e.Align(2)
		e.Blank()
	}

	for _, sym := range tables.Ints.Elements() {
		text := sym.String()
		i := tables.Ints.IndexOf(text)
		e.Label(intConstLabel(i))
		e.Word(fmt.Sprintf("%d", IntTag))
		e.Word("4")
		e.Word(disptableLabel("Int"))
		e.Word(text)
		e.Blank()
	}

	e.Label(boolConstLabel(false))
	e.Word(fmt.Sprintf("%d", BoolTag))
	e.Word("4")
	e.Word(disptableLabel("Bool"))
	e.Word("0")
	e.Blank()

	e.Label(boolConstLabel(true))
	e.Word(fmt.Sprintf("%d", BoolTag))
	e.Word("4")
	e.Word(disptableLabel("Bool"))
	e.Word("1")
	e.Blank()
}
