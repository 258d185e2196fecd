package codegen

// emitClassObjTab emits a tag-indexed table of (prototype, init) label
// pairs, one 2-word entry per possible class tag up to the largest tag
// in use. `new SELF_TYPE` cannot name its target class at compile
// time, so the emitted code loads the receiver's class tag out of its
// own header and indexes this table at runtime instead of resolving a
// fixed `T_prototype`/`T_init` pair the way a literal `new T` does.
func emitClassObjTab(e *Emitter, l *Layout) {
	byTag := make(map[int]string, len(l.ClassTag))
	maxTag := 0
	for name, tag := range l.ClassTag {
		byTag[tag] = name
		if tag > maxTag {
			maxTag = tag
		}
	}

	e.Label("class_objTab")
	for tag := 0; tag <= maxTag; tag++ {
		name, ok := byTag[tag]
		if !ok {
			e.Word("0")
			e.Word("0")
			continue
		}
		e.Word(prototypeLabel(name))
		e.Word(initLabel(name))
	}
	e.Blank()
}
