package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpponentObserver(t *testing.T) {
	var o OpponentObserver

	assert.Zero(t, o.Hands())
	assert.Equal(t, 0.0, o.Observed().VPIP)

	// 10 hands: plays 6, raises 3
	for i := 0; i < 10; i++ {
		o.RecordPreflop(i < 6, i < 3)
	}
	// 4 aggressive actions against 2 passive ones
	for i := 0; i < 6; i++ {
		o.RecordPostflop(i < 4)
	}

	obs := o.Observed()
	assert.Equal(t, 10, obs.Hands)
	assert.InDelta(t, 0.6, obs.VPIP, 1e-9)
	assert.InDelta(t, 0.3, obs.PFR, 1e-9)
	assert.InDelta(t, 2.0, obs.Aggression, 1e-9)
}

func TestObserverAggressionEdges(t *testing.T) {
	var allAggro OpponentObserver
	allAggro.RecordPreflop(true, true)
	allAggro.RecordPostflop(true)
	assert.Equal(t, 2.0, allAggro.Observed().Aggression)

	var allPassive OpponentObserver
	allPassive.RecordPreflop(true, false)
	assert.Equal(t, 1.0, allPassive.Observed().Aggression)
}

func TestSummary(t *testing.T) {
	var s Summary
	assert.Zero(t, s.N())
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())

	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Add(v)
	}

	assert.Equal(t, 8, s.N())
	assert.InDelta(t, 5.0, s.Mean(), 1e-9)
	assert.InDelta(t, 4.571428571, s.Variance(), 1e-6)
	assert.InDelta(t, 2.138089935, s.StdDev(), 1e-6)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
}

func TestSummaryMerge(t *testing.T) {
	var a, b, whole Summary
	for i, v := range []float64{1, 2, 3, 4, 5, 6} {
		whole.Add(v)
		if i < 3 {
			a.Add(v)
		} else {
			b.Add(v)
		}
	}

	a.Merge(b)
	assert.Equal(t, whole.N(), a.N())
	assert.InDelta(t, whole.Mean(), a.Mean(), 1e-9)
	assert.InDelta(t, whole.Variance(), a.Variance(), 1e-9)
}

func TestSummarySingleSample(t *testing.T) {
	var s Summary
	s.Add(3.5)
	assert.Equal(t, 3.5, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StdDev())
}
