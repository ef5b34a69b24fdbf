package g2p

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/kophon/jamo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type stubDict map[string]string

func (d stubDict) Lookup(word string) ([]string, bool) {
	pron, ok := d[strings.ToUpper(word)]
	if !ok {
		return nil, false
	}
	return []string{pron}, true
}

var testDict = stubDict{"GAME": "G EY1 M", "FILE": "F AY1 L", "MP": "EH1 M P IY1"}

func convert(t *testing.T, c *Converter, text string, descriptive bool) string {
	t.Helper()
	out, err := c.Convert(text, descriptive)
	if err != nil {
		t.Fatalf("cannot convert %q: %v", text, err)
	}
	return out
}

func TestG2PEmpty(t *testing.T) {
	out, err := G2P("", false)
	if err != nil || out != "" {
		t.Errorf("expected empty output for empty input, have %q, %v", out, err)
	}
}

func TestG2P(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	cases := []struct {
		text, pron string
	}{
		{"좋다", "조타"},
		{"같이", "가치"},
		{"굳이", "구지"},
		{"굳히다", "구치다"},
		{"국물", "궁물"},
		{"신라", "실라"},
		{"칼날", "칼랄"},
		{"않은", "아는"},
		{"싫어도", "시러도"},
		{"밝히다", "발키다"},
		{"넓히다", "널피다"},
		{"앉히다", "안치다"},
		{"놓는", "논는"},
		{"뚫네", "뚤레"},
		{"않소", "안쏘"},
		{"닭", "닥"},
		{"옷 안", "오 단"},
		{"밭 아래", "바 다래"},
		{"담력", "담녁"},
		{"막론", "망논"},
		{"협력", "혐녁"},
		{"읊다", "읍따"},
		{"각하", "가카"},
		{"없었습니다", "업썯씀니다"},
		{"닭을", "달글"},
		{"값이", "갑씨"},
		{"닳지", "달치"},
		{"끝을", "끄틀"},
		{"늦어", "느저"},
		{"지읒이", "지으시"},
		{"밟다", "밥따"},
		{"밟아", "발바"},
		{"가져", "가저"},
		{"희망", "히망"},
		{"띄어쓰기", "띠어쓰기"},
		{"디귿이", "디그시"},
		{"키읔이", "키으기"},
		{"포상은 열심히 한 아이에게만 주어지기 때문에 포상인 것입니다.",
			"포상으 녈심히 하 나이에게만 주어지기 때무네 포상인 거심니다."},
	}
	for _, c := range cases {
		out, err := G2P(c.text, false)
		if err != nil {
			t.Fatalf("cannot convert %q: %v", c.text, err)
		}
		if out != c.pron {
			t.Errorf("expected %q to be pronounced %q, have %q", c.text, c.pron, out)
		}
	}
}

func TestAnnotations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cases := []struct {
		text, pron string
	}{
		{"맑/P게", "말께"},
		{"넓/P게", "널께"},
		{"핥/P다", "할따"},
		{"신/P고", "신꼬"},
		{"앉/P고", "안꼬"},
		{"할/E 것을", "할 꺼슬"},
		{"할수록", "할쑤록"},
		{"우리 3시/B 10분/B에 만나자.", "우리 세시 십뿌네 만나자."},
	}
	for _, c := range cases {
		out, err := G2P(c.text, false)
		if err != nil {
			t.Fatalf("cannot convert %q: %v", c.text, err)
		}
		if out != c.pron {
			t.Errorf("expected %q to be pronounced %q, have %q", c.text, c.pron, out)
		}
	}
}

func TestSentences(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	c := New(WithDictionary(testDict))
	cases := []struct {
		text, pron string
	}{
		{"오늘 학교에서 밥을 먹고 집에 와서 game을 했다", "오늘 학꾜에서 바블 먹꼬 지베 와서 게이믈 핻따"},
		{"나의 친구가 mp3 file 3개를 다운받고 있다", "나의 친구가 엠피쓰리 파일 세개를 다운받꼬 읻따"},
	}
	for _, s := range cases {
		if out := convert(t, c, s.text, false); out != s.pron {
			t.Errorf("expected %q to be pronounced %q, have %q", s.text, s.pron, out)
		}
	}
	if out := convert(t, c, "unknown word", false); out != "unknown word" {
		t.Errorf("expected unknown English words to be left alone, have %q", out)
	}
	if out := convert(t, c, "xyz3개", false); out != "xyz세개" {
		t.Errorf("expected digits after unknown words to be read in Korean, have %q", out)
	}
}

func TestDescriptive(t *testing.T) {
	cases := []struct {
		text         string
		prescriptive string
		descriptive  string
	}{
		{"우리의/J 집", "우리의 집", "우리에 집"},
		{"주의", "주의", "주이"},
		{"의사", "의사", "의사"},
		{"계시다", "계시다", "게시다"},
		{"희망", "히망", "히망"},
	}
	c := New()
	for _, s := range cases {
		if out := convert(t, c, s.text, false); out != s.prescriptive {
			t.Errorf("expected %q to be pronounced %q, have %q", s.text, s.prescriptive, out)
		}
		if out := convert(t, c, s.text, true); out != s.descriptive {
			t.Errorf("expected %q to be pronounced %q in descriptive mode, have %q",
				s.text, s.descriptive, out)
		}
	}
}

func TestDeterminism(t *testing.T) {
	text := "오늘 학교에서 밥을 먹고 집에 와서 게임을 했다"
	first, _ := G2P(text, false)
	for i := 0; i < 10; i++ {
		if out, _ := G2P(text, false); out != first {
			t.Fatalf("expected repeated conversions to be equal, have %q and %q", first, out)
		}
	}
}

func TestInvalidInput(t *testing.T) {
	out, err := G2P("가\uD7A4", false)
	if !errors.Is(err, jamo.ErrInvalidCodePoint) {
		t.Errorf("expected invalid code point error, have %v", err)
	}
	if out != "" {
		t.Errorf("expected no partial output, have %q", out)
	}
}

func TestConvertAll(t *testing.T) {
	c := New()
	texts := []string{"좋다", "같이", "국물", "신라", "칼날"}
	out, err := c.ConvertAll(context.Background(), texts, false)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"조타", "가치", "궁물", "실라", "칼랄"}
	for i := range expected {
		if out[i] != expected[i] {
			t.Errorf("expected #%d to be %q, have %q", i, expected[i], out[i])
		}
	}
	out, err = c.ConvertAll(context.Background(), []string{"좋다", "\uD7A4"}, false)
	if err == nil || out != nil {
		t.Errorf("expected batch to fail as a whole, have %v, %v", out, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = c.ConvertAll(ctx, texts, false); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, have %v", err)
	}
}

func TestOptions(t *testing.T) {
	opts, err := LoadOptions(strings.NewReader("group_vowels: true\nidioms:\n  \"어떡해\": \"어떠케\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !opts.GroupVowels || !opts.ToSyllables || opts.Parallelism != 4 {
		t.Errorf("expected defaults to be overridden by group_vowels only, have %+v", opts)
	}
	c := New(WithOptions(opts))
	if out := convert(t, c, "어떡해 개", false); out != "어떠케 게" {
		t.Errorf("expected idiom and vowel grouping, have %q", out)
	}
	if _, err := LoadOptions(strings.NewReader("group_vowels: [")); err == nil {
		t.Errorf("expected malformed YAML to be rejected")
	}
	opts, err = LoadOptionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil || opts.GroupVowels || !opts.ToSyllables {
		t.Errorf("expected defaults for missing options file, have %+v, %v", opts, err)
	}
}

func TestJamoOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.ToSyllables = false
	c := New(WithOptions(opts))
	if out := convert(t, c, "국물", false); out != "궁물" {
		t.Errorf("expected jamo output, have %q", out)
	}
}

func TestTrace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	opts := DefaultOptions()
	opts.Trace = true
	if out := convert(t, New(WithOptions(opts)), "같이", false); out != "가치" {
		t.Errorf("expected tracing not to change the output, have %q", out)
	}
}
