package codegen

import "testing"

func TestFrameWords(t *testing.T) {
	cases := []struct {
		argCount int
		want     int
	}{
		{0, 3},
		{1, 4},
		{3, 6},
	}
	for _, c := range cases {
		if got := frameWords(c.argCount); got != c.want {
			t.Errorf("frameWords(%d) = %d, want %d", c.argCount, got, c.want)
		}
	}
}

func TestSlotOffsetsStayWithinFrame(t *testing.T) {
	argCount := 2
	last := (frameWords(argCount) - 1) * WordSize
	if got := raSlotOffset(argCount); got != last {
		t.Errorf("raSlotOffset(%d) = %d, want the frame's last word at %d", argCount, got, last)
	}
	if got := fpSlotOffset(); got != 0 {
		t.Errorf("fpSlotOffset() = %d, want 0", got)
	}
	if got := selfSlotOffset(); got != WordSize {
		t.Errorf("selfSlotOffset() = %d, want %d", got, WordSize)
	}
	for k := 1; k <= argCount; k++ {
		got := argSlotOffset(k)
		want := WordSize * (1 + k)
		if got != want {
			t.Errorf("argSlotOffset(%d) = %d, want %d", k, got, want)
		}
		if got >= last {
			t.Errorf("argSlotOffset(%d) = %d should fall before the ra slot at %d", k, got, last)
		}
	}
}

func TestAttrOffsetMatchesFirstAttributeAtByte12(t *testing.T) {
	if got := attrOffset(0); got != 12 {
		t.Errorf("attrOffset(0) = %d, want 12 (spec.md's Complement bullet loads the boxed Int at offset 12)", got)
	}
	if got := attrOffset(1); got != 16 {
		t.Errorf("attrOffset(1) = %d, want 16", got)
	}
}
