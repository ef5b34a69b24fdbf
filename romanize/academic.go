package romanize

import (
	"sort"
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/samber/lo"
)

// Spellings of the jamo in the Revised Romanization, indexed like the
// jamo of a syllable.
var (
	RevisedInitials = []string{
		"g", "kk", "n", "d", "tt", "l", "m", "b", "pp", "s", "ss", "", "j", "jj",
		"ch", "k", "t", "p", "h",
	}
	RevisedVowels = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa", "wae", "oe",
		"yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
	}
	RevisedFinals = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg", "lm", "lb", "ls",
		"lt", "lp", "lh", "m", "b", "bs", "s", "ss", "ng", "j", "ch", "k", "t",
		"p", "h",
	}
)

const silentInitial = 11 // ᄋ

var ambiguous struct {
	sync.Once
	set *hashset.Set
}

// ambiguousSet collects the spellings of final+initial which may be split
// into a final and an initial in more than one way.
func ambiguousSet() *hashset.Set {
	ambiguous.Do(func() {
		finals := hashset.New(lo.ToAnySlice(RevisedFinals)...)
		initials := hashset.New(lo.ToAnySlice(RevisedInitials)...)
		ambiguous.set = hashset.New()
		for _, final := range RevisedFinals {
			for _, initial := range RevisedInitials {
				combined := final + initial
				splits := 0
				for i := 0; i < len(combined); i++ {
					if finals.Contains(combined[:i]) && initials.Contains(combined[i:]) {
						splits++
					}
				}
				if splits > 1 {
					ambiguous.set.Add(combined)
				}
			}
		}
		T().Debugf("romanize: %d ambiguous final/initial spellings", ambiguous.set.Size())
	})
	return ambiguous.set
}

// AmbiguousPatterns returns the spellings of final+initial which the
// Academic rule separates by a hyphen, sorted.
func AmbiguousPatterns() []string {
	patterns := lo.Map(ambiguousSet().Values(), func(v interface{}, _ int) string {
		return v.(string)
	})
	sort.Strings(patterns)
	return patterns
}

// Academic spells syllables following the academic variant of the Revised
// Romanization. A hyphen precedes a syllable with silent initial following
// another syllable, and a syllable whose initial would otherwise read as
// part of the preceding final. Runes other than syllables are copied.
func Academic(now, prev, next Token) (string, bool) {
	if !now.IsSyllable {
		return string(now.Char), true
	}
	s := now.Syllable
	spelling := RevisedInitials[s.Initial()] + RevisedVowels[s.Vowel()] + RevisedFinals[s.Final()]
	if prev.IsSyllable {
		boundary := RevisedFinals[prev.Syllable.Final()] + RevisedInitials[s.Initial()]
		if s.Initial() == silentInitial || ambiguousSet().Contains(boundary) {
			return "-" + spelling, true
		}
	}
	return spelling, true
}
