package codegen

import "fmt"

// Activation-record layout (spec.md §4.5). Every frame reserves a
// base of 3 words (saved fp, saved self, saved ra) plus one word per
// call argument (0 for a class initializer). After the frame is
// pushed, $fp points at the base of the new frame:
//
//	fp+0            saved caller fp
//	fp+4            saved caller self
//	fp+4*(1+k)      argument k, k = 1..n, in source order
//	fp+4*(n+2)      saved return address
//
// This keeps "first formal at index 1 from fp, growing up" (spec.md
// §4.5) literally true for any argument count, including zero, and
// squares the base-frame size ("fp + self + ra is 3 words") with the
// per-slot offsets in a way the source prose's own numeric example
// does not quite manage on its own.
const baseFrameWords = 3

func frameWords(argCount int) int { return baseFrameWords + argCount }

func fpSlotOffset() int             { return 0 }
func selfSlotOffset() int           { return 4 }
func argSlotOffset(k int) int       { return 4 * (1 + k) }
func raSlotOffset(argCount int) int { return 4 * (argCount + 2) }
func formalFPOffset(index1 int) int { return argSlotOffset(index1) }

// attrOffset is an attribute's byte offset from the start of self,
// counted from the first attribute slot at word offset 3 (spec.md
// §4.5: "Attribute offsets in the object are counted from the first
// attribute slot (offset 3 in words)").
func attrOffset(idx0 int) int { return 12 + WordSize*idx0 }

// offset formats a byte offset relative to $fp as a MIPS operand.
func offset(n int) string { return fpRel(n, regFP) }

// fpRel formats a byte offset relative to an arbitrary base register.
func fpRel(n int, base string) string {
	return fmt.Sprintf("%d(%s)", n, base)
}

// $s0 holds self across a routine, $fp the current frame's base, by
// convention throughout codegen, mirroring the classic SPIM Cool
// runtime register discipline.
const (
	regSelf   = "$s0"
	regFP     = "$fp"
	regSP     = "$sp"
	regRA     = "$ra"
	regAcc    = "$a0"
	regArg1   = "$a1"
)
