package fontmgr

import "fmt"

// Tier is a font size tier, named by its nominal point size.
type Tier int

// Size tiers.
const (
	Tier10 Tier = 10
	Tier13 Tier = 13
	Tier18 Tier = 18
	Tier24 Tier = 24
)

// Tiers lists all size tiers in ascending order.
var Tiers = []Tier{Tier10, Tier13, Tier18, Tier24}

// fallback is the order in which tiers are tried when a requested size cannot
// be served by its own band.
var fallback = []Tier{Tier18, Tier13, Tier10, Tier24}

func (t Tier) String() string {
	return fmt.Sprintf("%dpt", int(t))
}

// Band returns the tier responsible for point size pts: sizes up to 11 map to
// tier 10, 12–15 to 13, 16–20 to 18 and 21–28 to 24. Sizes above 28 have no
// band.
func Band(pts int) (Tier, bool) {
	switch {
	case pts <= 11:
		return Tier10, true
	case pts <= 15:
		return Tier13, true
	case pts <= 20:
		return Tier18, true
	case pts <= 28:
		return Tier24, true
	}
	return 0, false
}

// SelectTier selects a tier for point size pts among the tiers for which
// loaded returns true.
//
// The band tier of pts is preferred. If it is not loaded, the next larger
// tiers are tried. If none of these is loaded, or pts is too large for any
// band, tiers are tried in order 18, 13, 10, 24. If no tier is loaded at all,
// SelectTier returns false.
func SelectTier(pts int, loaded func(Tier) bool) (Tier, bool) {
	if band, ok := Band(pts); ok {
		for _, t := range Tiers {
			if t >= band && loaded(t) {
				return t, true
			}
		}
	}
	for _, t := range fallback {
		if loaded(t) {
			return t, true
		}
	}
	return 0, false
}
