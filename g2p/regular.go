package g2p

import "github.com/npillmayer/kophon"

// Coda ㅎ (and clusters ending in ㅎ), what remains of them before an onset.
var hieutRemains = map[rune]string{'ᇂ': "", 'ᆭ': "ᆫ", 'ᆶ': "ᆯ"}

// Codas followed by onset ᄒ merge into an aspirate.
var beforeHieut = map[rune]string{
	'ᆨ': "ᄏ", 'ᆩ': "ᄏ", 'ᆿ': "ᄏ", 'ᆪ': "ᄏ",
	'ᆮ': "ᄐ", 'ᆺ': "ᄐ", 'ᆻ': "ᄐ", 'ᇀ': "ᄐ",
	'ᆸ': "ᄑ", 'ᇁ': "ᄑ", 'ᆹ': "ᄑ", 'ᆵ': "ᄑ",
	'ᆽ': "ᄎ", 'ᆾ': "ᄎ",
	'ᆰ': "ᆯᄏ", 'ᆲ': "ᆯᄑ", 'ᆬ': "ᆫᄎ", 'ᆳ': "ᆯᄐ", 'ᆴ': "ᆯᄐ",
	'ᇂ': "ᄒ",
}

// Codas before a null onset: coda and new onset. Of clusters, only the
// second member moves, ㅅ tensed.
var liaisons = map[rune]string{
	'ᆨ': "ᄀ", 'ᆩ': "ᄁ", 'ᆪ': "ᆨᄊ", 'ᆫ': "ᄂ", 'ᆬ': "ᆫᄌ", 'ᆮ': "ᄃ",
	'ᆯ': "ᄅ", 'ᆰ': "ᆯᄀ", 'ᆱ': "ᆯᄆ", 'ᆲ': "ᆯᄇ", 'ᆳ': "ᆯᄊ", 'ᆴ': "ᆯᄐ",
	'ᆵ': "ᆯᄑ", 'ᆷ': "ᄆ", 'ᆸ': "ᄇ", 'ᆹ': "ᆸᄊ", 'ᆺ': "ᄉ", 'ᆻ': "ᄊ",
	'ᆽ': "ᄌ", 'ᆾ': "ᄎ", 'ᆿ': "ᄏ", 'ᇀ': "ᄐ", 'ᇁ': "ᄑ",
}

// Codas reduce to one of seven representatives at the end of a syllable.
var representatives = map[rune]string{
	'ᆩ': "ᆨ", 'ᆪ': "ᆨ", 'ᆰ': "ᆨ", 'ᆿ': "ᆨ",
	'ᆺ': "ᆮ", 'ᆻ': "ᆮ", 'ᆽ': "ᆮ", 'ᆾ': "ᆮ", 'ᇀ': "ᆮ", 'ᇂ': "ᆮ",
	'ᆹ': "ᆸ", 'ᇁ': "ᆸ", 'ᆵ': "ᆸ",
	'ᆲ': "ᆯ", 'ᆳ': "ᆯ", 'ᆴ': "ᆯ", 'ᆶ': "ᆯ",
	'ᆱ': "ᆷ",
	'ᆬ': "ᆫ", 'ᆭ': "ᆫ",
}

var nasals = map[rune]string{'ᆨ': "ᆼ", 'ᆮ': "ᆫ", 'ᆸ': "ᆷ"}

// Representative codas moving across a word boundary.
var links = map[rune]string{
	'ᆨ': "ᄀ", 'ᆫ': "ᄂ", 'ᆮ': "ᄃ", 'ᆯ': "ᄅ", 'ᆷ': "ᄆ", 'ᆸ': "ᄇ",
}

// regularRules operate on coda/onset pairs of plain jamo text.
func regularRules() []*Rule {
	hieut := kophon.Set("ᇂᆭᆶ")
	remains := func(m []rune) string { return hieutRemains[m[0]] }
	return []*Rule{
		rule("12", "h",
			kophon.Rewrite{
				Pattern: kophon.Seq(hieut, kophon.Set("ᄀᄃᄌ")),
				Replace: func(m []rune) []rune {
					return append([]rune(remains(m)), aspirated[m[1]])
				},
			},
			kophon.Rewrite{
				Pattern: kophon.Seq(hieut, kophon.Lit('ᄉ')),
				Replace: tenseLast(remains),
			},
			kophon.Rewrite{
				Pattern: kophon.Seq(hieut, kophon.Lit('ᄂ')),
				Replace: byFirst(map[rune]string{'ᇂ': "ᆫᄂ", 'ᆭ': "ᆫᄂ", 'ᆶ': "ᆯᄅ"}),
			},
			kophon.Rewrite{
				Pattern: kophon.Seq(hieut, kophon.Lit('ᄋ')),
				Replace: byFirst(map[rune]string{'ᇂ': "ᄋ", 'ᆭ': "ᄂ", 'ᆶ': "ᄅ"}),
			},
			kophon.Rewrite{
				Pattern: kophon.Seq(kophon.Set(setOf(beforeHieut)), kophon.Lit('ᄒ')),
				Replace: byFirst(beforeHieut),
			},
		),
		rule("13", "liaison", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set(setOf(liaisons)), kophon.Lit('ᄋ')),
			Replace: byFirst(liaisons),
		}),
		rule("9", "neutralize", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set(setOf(representatives))).
				FollowedBy(kophon.Not("ᄋ").OrEnd()),
			Replace: byFirst(representatives),
		}),
		rule("19", "lr_nasal", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set("ᆷᆼᆨᆮᆸ"), kophon.Lit('ᄅ')),
			Replace: keepThen('ᄂ'),
		}),
		rule("18", "nasalize", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set("ᆨᆮᆸ")).FollowedBy(kophon.Set("ᄂᄆ")),
			Replace: byFirst(nasals),
		}),
		rule("20", "lateralize",
			kophon.Rewrite{Pattern: kophon.Literal("ᆫᄅ"), Replace: kophon.To("ᆯᄅ")},
			kophon.Rewrite{Pattern: kophon.Literal("ᆯᄂ"), Replace: kophon.To("ᆯᄅ")},
		),
		rule("23", "tensify", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set("ᆨᆮᆸ"), kophon.Set("ᄀᄃᄇᄉᄌ")),
			Replace: tenseLast(func(m []rune) string { return string(m[0]) }),
		}),
		rule("15", "link", kophon.Rewrite{
			Pattern: kophon.Seq(kophon.Set(setOf(links)), kophon.Lit(' '), kophon.Lit('ᄋ')),
			Replace: func(m []rune) []rune {
				return []rune(" " + links[m[0]])
			},
		}),
	}
}
