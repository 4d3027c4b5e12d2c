package fontmgr

import (
	"golang.org/x/text/language"
)

// FontSet names the fonts to load for a group of languages, one font name per
// tier. A font set need not populate every tier.
type FontSet struct {
	Name      string
	Languages []language.Tag
	Fonts     map[Tier]string
}

// Font sets for supported languages. The Latin fonts contain characters with
// accent marks, and serve all Western European languages supported.
var (
	LatinFonts = FontSet{
		Name:      "Latin",
		Languages: []language.Tag{language.English, language.French, language.Portuguese, language.Spanish},
		Fonts: map[Tier]string{
			Tier10: "SegoeUI_10px",
			Tier13: "SegoeUI_13px",
			Tier18: "SegoeUI_18px",
			Tier24: "SegoeUI_24px",
		},
	}
	JapaneseFonts = FontSet{
		Name:      "Japanese",
		Languages: []language.Tag{language.Japanese},
		Fonts: map[Tier]string{
			Tier13: "MeiryoUI_24px",
			Tier18: "MeiryoUI_36px",
		},
	}
	ChineseFonts = FontSet{
		Name:      "Chinese",
		Languages: []language.Tag{language.Chinese},
		Fonts: map[Tier]string{
			Tier13: "FangSong_24px",
			Tier18: "FangSong_36px",
		},
	}
)

// DefaultFontSets are the font sets a Manager chooses from, unless configured
// otherwise.
var DefaultFontSets = []FontSet{LatinFonts, JapaneseFonts, ChineseFonts}

// fontSetMatcher matches language tags against the languages of a list of
// font sets.
type fontSetMatcher struct {
	sets    []FontSet
	index   []int // index into sets, per supported tag
	matcher language.Matcher
}

func newFontSetMatcher(sets []FontSet) *fontSetMatcher {
	m := &fontSetMatcher{sets: sets}
	var tags []language.Tag
	for i, set := range sets {
		for _, tag := range set.Languages {
			tags = append(tags, tag)
			m.index = append(m.index, i)
		}
	}
	m.matcher = language.NewMatcher(tags)
	return m
}

// match returns the font set for tag, if any font set supports tag with at
// least low confidence.
func (m *fontSetMatcher) match(tag language.Tag) (FontSet, bool) {
	if len(m.index) == 0 {
		return FontSet{}, false
	}
	_, i, conf := m.matcher.Match(tag)
	tracer().Debugf("language %s matches font set %s with confidence %s", tag, m.sets[m.index[i]].Name, conf)
	if conf == language.No {
		return FontSet{}, false
	}
	return m.sets[m.index[i]], true
}
