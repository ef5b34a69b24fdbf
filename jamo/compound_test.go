package jamo

import (
	"errors"
	"fmt"
	"testing"
)

func TestComposeCompound(t *testing.T) {
	cases := []struct {
		parts  []rune
		target rune
	}{
		{[]rune{'ㄷ', 'ㄷ'}, 'ㄸ'},
		{[]rune{'ᄃ', 'ㄷ'}, 'ㄸ'}, // mixed forms compose to HCJ
		{[]rune{'ᄃ', 'ᄃ'}, 'ᄄ'},
		{[]rune{'ㅡ', 'ㅣ'}, 'ㅢ'},
		{[]rune{'ᆨ', 'ᆺ'}, 'ᆪ'},
		{[]rune{'ㅂ', 'ㅅ', 'ㄱ'}, 'ㅴ'},
		{[]rune{'ㅗ', 'ㅏ', 'ㅣ'}, 'ㅙ'},
		{[]rune{'ᄅ', 'ᄒ'}, 0x111A},
	}
	for _, c := range cases {
		r, err := ComposeCompound(c.parts...)
		if err != nil || r != c.target {
			t.Errorf("expected %q to compose to %c, is %c (%v)", string(c.parts), c.target, r, err)
		}
	}
	invalid := [][]rune{{'ㄷ', 'ㄷ', 'ㄷ'}, {'ㅡ', 'ㄷ'}, {'ㄱ'}, {'ㄱ', 'ㄱ', 'ㄱ', 'ㄱ'}}
	for _, parts := range invalid {
		if _, err := ComposeCompound(parts...); !errors.Is(err, ErrInvalidCombination) {
			t.Errorf("expected %q to be invalid, error is %v", string(parts), err)
		}
	}
	unsupported := [][]rune{{'ㄹ', 'ㅁ', 'ㄱ'}, {'ㄹ', 'ㄹ'}, {'ᄂ', 'ᄀ'}}
	for _, parts := range unsupported {
		if _, err := ComposeCompound(parts...); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("expected %q to be unsupported, error is %v", string(parts), err)
		}
	}
	if _, err := ComposeCompound('a', 'b'); !errors.Is(err, ErrInvalidCodePoint) {
		t.Errorf("expected non-jamo to be rejected, error is %v", err)
	}
}

func TestDecomposeCompound(t *testing.T) {
	cases := []struct {
		r      rune
		target string
	}{
		{'ㄸ', "ㄷㄷ"},
		{'ㅢ', "ㅡㅣ"},
		{'ㅙ', "ㅗㅐ"},
		{'ᆪ', "ᆨᆺ"},
		{'ᄁ', "ᄀᄀ"},
		{'ᅴ', "ᅳᅵ"},
		{'ㅥ', "ㄴㄴ"},
		{0x11FF, "ᆫᆫ"},
	}
	for _, c := range cases {
		parts, err := DecomposeCompound(c.r)
		if err != nil || string(parts) != c.target {
			t.Errorf("expected %c to decompose to %s, is %s (%v)", c.r, c.target, string(parts), err)
		}
	}
	for _, r := range []rune{'ㅿ', 'ㆁ', 'ㆍ', 'ᄀ', 'ᆨ', 'ㄱ', '가', 'a'} {
		parts, err := DecomposeCompound(r)
		if err != nil || len(parts) != 1 || parts[0] != r {
			t.Errorf("expected %c to be returned unchanged, is %q (%v)", r, string(parts), err)
		}
	}
	for _, r := range []rune{0x1113, 0xA960, 0xD7B0} {
		if _, err := DecomposeCompound(r); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("expected %#U to be unsupported, error is %v", r, err)
		}
	}
}

func TestCompoundRoundTrip(t *testing.T) {
	n := 0
	for r := rune(0x1100); r <= 0x318E; r++ {
		if !IsCompound(r) {
			continue
		}
		parts, err := DecomposeCompound(r)
		if err != nil {
			continue
		}
		back, err := ComposeCompound(parts...)
		if err != nil || back != r {
			t.Errorf("expected %#U to survive a round trip via %q, is %#U (%v)", r, string(parts), back, err)
		}
		n++
	}
	if n < len(hcjCompounds) {
		t.Errorf("expected at least %d compounds to round-trip, have %d", len(hcjCompounds), n)
	}
}

func ExampleComposeCompound() {
	r, _ := ComposeCompound('ㄱ', 'ㅅ')
	fmt.Printf("%c\n", r)
	// Output: ㄳ
}
