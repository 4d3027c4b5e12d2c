package fontmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func loadedSet(tiers ...Tier) func(Tier) bool {
	return func(t Tier) bool {
		for _, l := range tiers {
			if l == t {
				return true
			}
		}
		return false
	}
}

func TestBand(t *testing.T) {
	for _, x := range []struct {
		pts  int
		tier Tier
		ok   bool
	}{
		{0, Tier10, true}, {8, Tier10, true}, {11, Tier10, true},
		{12, Tier13, true}, {15, Tier13, true},
		{16, Tier18, true}, {20, Tier18, true},
		{21, Tier24, true}, {28, Tier24, true},
		{29, 0, false}, {72, 0, false},
	} {
		tier, ok := Band(x.pts)
		assert.Equal(t, x.ok, ok, "size %d", x.pts)
		assert.Equal(t, x.tier, tier, "size %d", x.pts)
	}
}

func TestSelectTier(t *testing.T) {
	for _, x := range []struct {
		pts    int
		loaded []Tier
		tier   Tier
	}{
		{14, []Tier{Tier10, Tier13, Tier18}, Tier13},
		{30, []Tier{Tier13}, Tier13},
		{10, []Tier{Tier10, Tier13, Tier18, Tier24}, Tier10},
		{22, []Tier{Tier10, Tier13, Tier18, Tier24}, Tier24},
		{10, []Tier{Tier13, Tier18}, Tier13},         // next larger tier
		{16, []Tier{Tier10, Tier24}, Tier24},         // next larger tier
		{24, []Tier{Tier10, Tier13}, Tier13},         // fallback, 13 before 10
		{30, []Tier{Tier10, Tier18, Tier24}, Tier18}, // fallback prefers 18
		{40, []Tier{Tier24}, Tier24},
	} {
		tier, ok := SelectTier(x.pts, loadedSet(x.loaded...))
		assert.True(t, ok, "size %d", x.pts)
		assert.Equal(t, x.tier, tier, "size %d with %v", x.pts, x.loaded)
	}
	_, ok := SelectTier(12, loadedSet())
	assert.False(t, ok)
}
