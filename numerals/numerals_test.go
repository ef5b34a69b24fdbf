package numerals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpand(t *testing.T) {
	cases := []struct {
		text string
		sino bool
		out  string
	}{
		{"123,456,789", true, "일억이천삼백사십오만육천칠백팔십구"},
		{"123,456,789", false, "일억이천삼백사십오만육천칠백여든아홉"},
		{"0", true, "영"},
		{"10", true, "십"},
		{"11", true, "십일"},
		{"100", true, "백"},
		{"1000", true, "천"},
		{"10000", true, "만"},
		{"11000", true, "만천"},
		{"110000", true, "십일만"},
		{"100000000", true, "일억"},
		{"1,0000", true, "만"},
		{"20", false, "스무"},
		{"21", false, "스물한"},
		{"1", false, "한"},
		{"99", false, "아흔아홉"},
		{"120", false, "백스무"},
		{"100", false, "백"},
		{"1, 2", true, "일, 이"},
		{"abc", true, "abc"},
		{"", true, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, Expand(c.text, c.sino), "Expand(%q, %v)", c.text, c.sino)
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		text string
		out  string
	}{
		{"우리 3시/B 10분/B에 만나자.", "우리 세시/B 십분/B에 만나자."},
		{"3개를", "세개를"},
		{"3개월", "삼개월"},
		{"3번째", "세번째"},
		{"103번지", "백삼번지"},
		{"학생 20명", "학생 스무명"},
		{"2024년", "이천이십사년"},
		{"전화 1,000번", "전화 천번"},
		{"숫자 없음", "숫자 없음"},
	}
	for _, c := range cases {
		assert.Equal(t, c.out, Convert(c.text), "Convert(%q)", c.text)
	}
	assert.Equal(t, "세마리", Expander{}.Convert("3마리"))
}
