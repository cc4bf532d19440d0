package ranges

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRangeFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranges.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	tables, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	f, ok := tables.OpenFreq(BTN, "AA")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.Raise)
}

func TestLoadRangeFile(t *testing.T) {
	path := writeRangeFile(t, `
open "BTN" {
  range "22+,A2s+" {
    raise = 100
  }
  range "K9o" {
    raise = 40
  }
}

vs_open "BB" "BTN" {
  range "QQ+,AKs" {
    threebet = 100
  }
  range "JJ,TT" {
    threebet = 35
    call     = 65
  }
}

vs_3bet "BTN" "BB" {
  range "KK+" {
    fourbet = 100
  }
}

vs_4bet "BB" "BTN" {
  range "AA" {
    fivebet = 100
  }
}
`)

	tables, err := Load(path)
	require.NoError(t, err)

	f, ok := tables.OpenFreq(BTN, "A5s")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.Raise)

	f, ok = tables.OpenFreq(BTN, "K9o")
	require.True(t, ok)
	assert.Equal(t, 40.0, f.Raise)

	_, ok = tables.OpenFreq(UTG, "AA")
	assert.False(t, ok, "positions absent from the file stay empty")

	f, ok = tables.VsOpenFreq(BB, BTN, "JJ")
	require.True(t, ok)
	assert.Equal(t, 35.0, f.ThreeBet)
	assert.Equal(t, 65.0, f.Call)

	f, ok = tables.Vs3BetFreq(BTN, BB, "AA")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.FourBet)

	f, ok = tables.Vs4BetFreq(BB, BTN, "AA")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.FiveBet)
}

func TestLoadRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			"syntax error",
			`open "BTN" {`,
		},
		{
			"unknown position",
			`open "HJ" {
  range "AA" { raise = 100 }
}`,
		},
		{
			"frequency out of range",
			`open "BTN" {
  range "AA" { raise = 150 }
}`,
		},
		{
			"malformed range spec",
			`open "BTN" {
  range "AXs" { raise = 100 }
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeRangeFile(t, tt.contents))
			assert.Error(t, err)
		})
	}
}
