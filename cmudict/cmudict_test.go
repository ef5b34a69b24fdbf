package cmudict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `;;; # CMUdict  --  Major Version: 0.07
;;; sample
'TIS  T IH1 Z
ADVERSITY  AE0 D V ER1 S AH0 T IY2
ADVERSITY(1)  AH0 D V ER1 S IH0 T IY2
BARBERSHOP  B AA1 R B ER0 SH AA2 P
GAME  G EY1 M
YOU'LL  Y UW1 L
`

func load(t *testing.T) *Dict {
	d, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	return d
}

func TestLookup(t *testing.T) {
	d := load(t)
	assert.Equal(t, 5, d.Len())
	prons, ok := d.Lookup("ADVERSITY")
	require.True(t, ok)
	assert.Equal(t, []string{"AE0 D V ER1 S AH0 T IY2", "AH0 D V ER1 S IH0 T IY2"}, prons)
	prons, ok = d.Lookup("BarberShop")
	require.True(t, ok)
	assert.Equal(t, []string{"B AA1 R B ER0 SH AA2 P"}, prons)
	assert.True(t, d.Contains("You'll"))
	assert.True(t, d.Contains("'tis"))
	assert.False(t, d.Contains(""))
	assert.False(t, d.Contains("kimchi"))
}

func TestLookupIsolated(t *testing.T) {
	d := load(t)
	prons, _ := d.Lookup("game")
	prons[0] = "X"
	again, _ := d.Lookup("game")
	assert.Equal(t, []string{"G EY1 M"}, again)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader("GAME G EY1 M\nLONELY\n"))
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cmudict.dict")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	d, err := Open(path)
	require.NoError(t, err)
	assert.True(t, d.Contains("game"))
	_, err = Open(filepath.Join(t.TempDir(), "missing.dict"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
