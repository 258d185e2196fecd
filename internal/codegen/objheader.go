package codegen

// Object header word offsets (spec.md §4.5 "3-word header: class tag,
// total size, dispatch-table pointer").
const (
	tagOffset       = 0
	sizeOffset      = 4
	disptablePtrOff = 8
)
