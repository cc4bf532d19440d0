package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	for p := UTG; p <= BB; p++ {
		parsed, err := ParsePosition(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := ParsePosition("HJ")
	assert.Error(t, err)
}

func TestTablesMissingEntries(t *testing.T) {
	// Missing positions and hands degrade to a zero frequency, never an error
	var nilTables *Tables
	_, ok := nilTables.OpenFreq(BTN, "AA")
	assert.False(t, ok)

	empty := &Tables{}
	_, ok = empty.OpenFreq(BTN, "AA")
	assert.False(t, ok)
	_, ok = empty.VsOpenFreq(BB, BTN, "AA")
	assert.False(t, ok)
	_, ok = empty.Vs3BetFreq(BTN, BB, "AA")
	assert.False(t, ok)
	_, ok = empty.Vs4BetFreq(BTN, BB, "AA")
	assert.False(t, ok)

	withPos := &Tables{Open: map[Position]map[string]Freq{
		BTN: {"AA": {Raise: 100}},
	}}
	_, ok = withPos.OpenFreq(BTN, "72o")
	assert.False(t, ok)
	f, ok := withPos.OpenFreq(BTN, "AA")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.Raise)
}

func TestDefaultsCoverCoreSpots(t *testing.T) {
	d := Defaults()

	// Premium hands open everywhere
	for p := UTG; p <= SB; p++ {
		f, ok := d.OpenFreq(p, "AA")
		require.True(t, ok, "AA missing from %s open range", p)
		assert.Equal(t, 100.0, f.Raise, "AA should always open from %s", p)
	}

	// The button opens wider than under the gun
	assert.Greater(t, len(d.Open[BTN]), len(d.Open[UTG]))

	// Trash never appears in any open range
	for p := UTG; p <= SB; p++ {
		_, ok := d.OpenFreq(p, "72o")
		assert.False(t, ok, "72o should not open from %s", p)
	}

	// Defense tables exist for big blind versus a button open
	f, ok := d.VsOpenFreq(BB, BTN, "AA")
	require.True(t, ok)
	assert.Greater(t, f.ThreeBet, 0.0)

	// Facing a 3-bet, kings always 4-bet
	f, ok = d.Vs3BetFreq(BTN, BB, "KK")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.FourBet)

	// Facing a 4-bet, aces always 5-bet
	f, ok = d.Vs4BetFreq(BB, BTN, "AA")
	require.True(t, ok)
	assert.Equal(t, 100.0, f.FiveBet)
}
