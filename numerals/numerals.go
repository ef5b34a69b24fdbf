/*
Package numerals spells out numbers in Korean.

Korean has two sets of numerals. Sino-Korean numerals (일, 이, 삼, …) are
used for reading numbers in general, native Korean numerals (하나, 둘, 셋, …)
are used with many counters, and take their adnominal form there:

   Convert("사과 3개")    →   "사과 세개"
   Convert("3개월")       →   "삼개월"

Native numerals exist for 1…99 only. In larger numbers only the last two
digits are read natively.
*/
package numerals

import (
	"strings"
	"unicode/utf8"
)

var (
	sinoDigits   = []string{"", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}
	nativeDigits = []string{"", "한", "두", "세", "네", "다섯", "여섯", "일곱", "여덟", "아홉"}
	nativeTens   = []string{"", "열", "스물", "서른", "마흔", "쉰", "예순", "일흔", "여든", "아흔"}
	placeUnits   = []string{"", "십", "백", "천"}
	groupUnits   = []string{"", "만", "억", "조", "경"}
)

// Counters which take native numerals.
var nativeCounters = []string{
	"개", "시", "명", "마리", "살", "잔", "권", "장", "시간", "번", "벌", "채",
	"대", "병", "그릇", "켤레", "송이", "자루", "척", "통", "달", "가지",
	"군데", "곳", "사람", "줄", "쌍", "판",
}

// Counters which take Sino-Korean numerals, where they share a prefix with
// a native counter.
var sinoCounters = []string{
	"개월", "시기", "번지", "대대", "장관", "살이",
}

// Expand replaces every number in text by its reading. Numbers are runs of
// digits, with commas allowed between digits.
func Expand(text string, sino bool) string {
	return replaceNumbers(text, func(num, _ string) string {
		return spell(num, sino)
	})
}

// Convert replaces every number in text by its reading. Numbers directly
// followed by a counter which takes native numerals are read natively,
// all other numbers are read Sino-Korean.
func Convert(text string) string {
	return replaceNumbers(text, func(num, rest string) string {
		return spell(num, !isNativeCounter(rest))
	})
}

// Expander spells out numbers in Korean.
type Expander struct{}

// Convert replaces every number in text by its reading.
func (Expander) Convert(text string) string {
	return Convert(text)
}

func isNativeCounter(rest string) bool {
	longest, native := 0, false
	for _, c := range nativeCounters {
		if strings.HasPrefix(rest, c) && len(c) > longest {
			longest, native = len(c), true
		}
	}
	for _, c := range sinoCounters {
		if strings.HasPrefix(rest, c) && len(c) > longest {
			longest, native = len(c), false
		}
	}
	return native
}

// replaceNumbers calls f for every number of text, with the number's digits
// and the text following the number.
func replaceNumbers(text string, f func(num, rest string) string) string {
	var b strings.Builder
	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			r, size := utf8.DecodeRuneInString(text[i:])
			b.WriteRune(r)
			i += size
			continue
		}
		k, digits := i, make([]byte, 0, 16)
		for k < len(text) {
			if isDigit(text[k]) {
				digits = append(digits, text[k])
			} else if text[k] != ',' || k+1 >= len(text) || !isDigit(text[k+1]) {
				break
			}
			k++
		}
		b.WriteString(f(string(digits), text[k:]))
		i = k
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// spell reads a string of digits.
func spell(num string, sino bool) string {
	num = strings.TrimLeft(num, "0")
	if num == "" {
		return "영"
	}
	if len(num) > 4*len(groupUnits) {
		return spellDigits(num)
	}
	var b strings.Builder
	ngroups := (len(num) + 3) / 4
	for g := ngroups - 1; g >= 0; g-- {
		end := len(num) - 4*g
		start := max(end-4, 0)
		group := num[start:end]
		if strings.Trim(group, "0") == "" {
			continue
		}
		native := !sino && g == 0
		if g == 1 && strings.TrimLeft(group, "0") == "1" {
			b.WriteString(groupUnits[g]) // 만, not 일만
			continue
		}
		b.WriteString(spellGroup(group, native))
		b.WriteString(groupUnits[g])
	}
	return b.String()
}

// spellGroup reads up to four digits. If native is set, the last two digits
// are read natively.
func spellGroup(group string, native bool) string {
	var b strings.Builder
	for i := 0; i < len(group); i++ {
		d, place := int(group[i]-'0'), len(group)-i-1
		if native && place <= 1 {
			tens, ones := 0, int(group[len(group)-1]-'0')
			if place == 1 {
				tens = d
			}
			if tens == 2 && ones == 0 {
				b.WriteString("스무")
			} else {
				b.WriteString(nativeTens[tens])
				b.WriteString(nativeDigits[ones])
			}
			break
		}
		if d == 0 {
			continue
		}
		if d != 1 || place == 0 {
			b.WriteString(sinoDigits[d])
		}
		b.WriteString(placeUnits[place])
	}
	return b.String()
}

// spellDigits reads a number too large for words digit by digit.
func spellDigits(num string) string {
	var b strings.Builder
	for i := 0; i < len(num); i++ {
		if num[i] == '0' {
			b.WriteString("영")
		} else {
			b.WriteString(sinoDigits[num[i]-'0'])
		}
	}
	return b.String()
}
