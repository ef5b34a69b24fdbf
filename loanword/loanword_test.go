package loanword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapt(t *testing.T) {
	cases := []struct {
		phones string
		hangul string
	}{
		{"G EY1 M", "게임"},
		{"F AY1 L", "파일"},
		{"S T AA1 R", "스타"},
		{"K EY1 K", "케이크"},
		{"B UH1 K", "북"},
		{"T R AY1", "트라이"},
		{"W IH1 N D OW0", "윈도"},
		{"Y UW1", "유"},
		{"HH EH0 L OW1", "헬로"},
		{"SH IY1", "시"},
		{"M AE1 N", "맨"},
		{"K AE1 T", "캣"},
		{"", ""},
	}
	for _, c := range cases {
		h, err := Adapt(c.phones)
		require.NoError(t, err, c.phones)
		assert.Equal(t, c.hangul, h, "pronunciation %q", c.phones)
	}
}

func TestAdaptUnknownPhone(t *testing.T) {
	_, err := Adapt("G XX1 M")
	assert.ErrorIs(t, err, ErrUnknownPhone)
}

func TestSpellDigits(t *testing.T) {
	assert.Equal(t, "쓰리", SpellDigits("3"))
	assert.Equal(t, "투제로", SpellDigits("20"))
	assert.Equal(t, "", SpellDigits(""))
}
