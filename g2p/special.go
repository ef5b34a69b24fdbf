package g2p

import (
	"unicode"

	"github.com/npillmayer/kophon"
	"github.com/npillmayer/kophon/jamo"
	"github.com/samber/lo"
)

// Onsets and their tensed and aspirated counterparts.
var (
	tensed    = map[rune]rune{'ᄀ': 'ᄁ', 'ᄃ': 'ᄄ', 'ᄇ': 'ᄈ', 'ᄉ': 'ᄊ', 'ᄌ': 'ᄍ'}
	aspirated = map[rune]rune{'ᄀ': 'ᄏ', 'ᄃ': 'ᄐ', 'ᄌ': 'ᄎ'}
)

// j decomposes the syllables of a rule literal.
func j(s string) string {
	d, err := jamo.Decompose(s)
	if err != nil {
		panic(err) // rule literals are valid Hangul
	}
	return d
}

// lit is a pattern for a rule literal.
func lit(s string) kophon.Pattern {
	return kophon.Literal(j(s))
}

// to is a constant replacement with a rule literal.
func to(s string) func([]rune) []rune {
	return kophon.To(j(s))
}

// keepThen keeps the first rune of a match and appends r.
func keepThen(r rune) func([]rune) []rune {
	return func(m []rune) []rune { return []rune{m[0], r} }
}

// byFirst replaces a match by the table entry for its first rune.
func byFirst(table map[rune]string) func([]rune) []rune {
	return func(m []rune) []rune { return []rune(table[m[0]]) }
}

// tenseLast replaces a match by prefix(match) and the tensed last rune of the match.
func tenseLast(prefix func(m []rune) string) func([]rune) []rune {
	return func(m []rune) []rune {
		return append([]rune(prefix(m)), tensed[m[len(m)-1]])
	}
}

func setOf(table map[rune]string) string {
	return string(lo.Keys(table))
}

// stem matches a coda at the end of a predicate stem, followed by an onset.
func stem(coda, onset kophon.Step) kophon.Pattern {
	return kophon.Seq(coda, kophon.Lit('/'), kophon.Lit('P'), onset)
}

// specialRules are rules which depend on annotations or on particular
// words. They run before the annotations are stripped.
func specialRules() []*Rule {
	tensable := kophon.Set("ᄀᄃᄉᄌ")
	keepCoda := func(m []rune) string { return string(m[0]) }
	return []*Rule{
		rule("5.1", "jyeo", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set("ᄌᄍᄎ"), kophon.Lit('ᅧ')),
			Replace: keepThen('ᅥ'),
		}),
		colloquial("5.2", "ye", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set("ᄀᄁᄃᄄᄆᄇᄈᄌᄍᄎᄏᄐᄑᄒ"), kophon.Lit('ᅨ')),
			Replace: keepThen('ᅦ'),
		}),
		rule("5.3", "consonant_ui", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set("ᄀᄁᄂᄃᄄᄅᄆᄇᄈᄉᄊᄌᄍᄎᄏᄐᄑᄒ"), kophon.Lit('ᅴ')),
			Replace: keepThen('ᅵ'),
		}),
		{
			ID:   "5.4.2",
			Name: "josa_ui",
			descriptive: []kophon.Rewrite{
				{Pattern: lit("의/J"), Replace: to("에")},
			},
			prescriptive: []kophon.Rewrite{
				{Pattern: kophon.Literal("/J"), Replace: kophon.To("")},
			},
		},
		colloquial("5.4.1", "vowel_ui", kophon.Rewrite{
			Pattern: lit("의").After(kophon.Is(func(r rune) bool {
				return !unicode.IsSpace(r)
			})),
			Replace: to("이"),
		}),
		rule("16", "jamo",
			kophon.Rewrite{Pattern: lit("귿ᄋ"), Replace: to("그ᄉ")},
			kophon.Rewrite{
				Pattern: kophon.Seq(kophon.Lit('ᄋ'), kophon.Lit('ᅳ'), kophon.Set("ᆽᆾᇀᇂ"), kophon.Lit('ᄋ')),
				Replace: to("으ᄉ"),
			},
			kophon.Rewrite{Pattern: lit("읔ᄋ"), Replace: to("으ᄀ")},
			kophon.Rewrite{Pattern: lit("읖ᄋ"), Replace: to("으ᄇ")},
		),
		rule("11.1", "rieulgiyeok", kophon.Rewrite{
			Pattern: stem(kophon.Lit('ᆰ'), kophon.Set("ᄀᄁ")),
			Replace: kophon.To("ᆯᄁ"),
		}),
		rule("25", "rieulbieub", kophon.Rewrite{
			Pattern: stem(kophon.Set("ᆲᆴ"), tensable),
			Replace: tenseLast(keepCoda),
		}),
		rule("24", "verb_nieun",
			kophon.Rewrite{
				Pattern: stem(kophon.Set("ᆫᆷ"), tensable),
				Replace: tenseLast(keepCoda),
			},
			kophon.Rewrite{
				Pattern: stem(kophon.Set("ᆬᆱ"), tensable),
				Replace: tenseLast(func(m []rune) string {
					return map[rune]string{'ᆬ': "ᆫ", 'ᆱ': "ᆷ"}[m[0]]
				}),
			},
		),
		rule("10.1", "balb",
			kophon.Rewrite{
				Pattern: lit("밟").FollowedBy(kophon.Not("ᄋᄒ").OrEnd()),
				Replace: to("밥"),
			},
			kophon.Rewrite{
				Pattern: lit("넓").FollowedBy(kophon.Set("ᄌᄍᄃᄄ"), kophon.Lit('ᅮ')),
				Replace: to("넙"),
			},
		),
		rule("17", "palatalize",
			kophon.Rewrite{Pattern: kophon.Literal("ᆮᄋ").FollowedBy(kophon.Set("ᅵᅧ")), Replace: kophon.To("ᄌ")},
			kophon.Rewrite{Pattern: kophon.Literal("ᇀᄋ").FollowedBy(kophon.Set("ᅵᅧ")), Replace: kophon.To("ᄎ")},
			kophon.Rewrite{Pattern: kophon.Literal("ᆴᄋ").FollowedBy(kophon.Set("ᅵᅧ")), Replace: kophon.To("ᆯᄎ")},
			kophon.Rewrite{Pattern: kophon.Literal("ᆮᄒ").FollowedBy(kophon.Lit('ᅵ')), Replace: kophon.To("ᄎ")},
		),
		rule("27", "modifying_rieul", modifyingRieul()...),
	}
}

// Endings after the adnominal -ㄹ which are pronounced tensed.
var rieulEndings = [][2]string{
	{"걸", "껄"}, {"밖에", "빠께"}, {"세라", "쎄라"}, {"수록", "쑤록"},
	{"지라도", "찌라도"}, {"지언정", "찌언정"}, {"진대", "찐대"},
}

func modifyingRieul() []kophon.Rewrite {
	rewrites := []kophon.Rewrite{{
		Pattern: kophon.Seq(kophon.Lit('ᆯ'), kophon.Lit('/'), kophon.Lit('E'), kophon.Lit(' '),
			kophon.Set("ᄀᄃᄇᄉᄌ")),
		Replace: tenseLast(func([]rune) string { return "ᆯ " }),
	}}
	// endings are matched in jamo as well as in syllable form
	for _, e := range rieulEndings {
		rewrites = append(rewrites,
			kophon.Rewrite{Pattern: lit("ᆯ" + e[0]), Replace: to("ᆯ" + e[1])},
			kophon.Rewrite{Pattern: kophon.Literal("ᆯ" + e[0]), Replace: kophon.To("ᆯ" + e[1])},
		)
	}
	return rewrites
}

// stripRule removes all annotations.
func stripRule() *Rule {
	return rule("", "strip", kophon.Rewrite{
		Pattern: kophon.Seq(kophon.Lit('/'), kophon.Set("PEJB")),
		Replace: kophon.To(""),
	})
}
