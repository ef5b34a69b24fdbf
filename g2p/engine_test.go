package g2p

import (
	"strings"
	"testing"

	"github.com/npillmayer/kophon/jamo"
)

func ruleByID(t *testing.T, id string) *Rule {
	t.Helper()
	for _, r := range NewEngine().Rules() {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("no rule %q", id)
	return nil
}

func TestRuleOrder(t *testing.T) {
	expected := []string{
		"jyeo", "ye", "consonant_ui", "josa_ui", "vowel_ui", "jamo", "rieulgiyeok",
		"rieulbieub", "verb_nieun", "balb", "palatalize", "modifying_rieul", "strip",
		"h", "liaison", "neutralize", "lr_nasal", "nasalize", "lateralize", "tensify", "link",
	}
	rules := NewEngine().Rules()
	if len(rules) != len(expected) {
		t.Fatalf("expected %d rules, have %d", len(expected), len(rules))
	}
	for i, r := range rules {
		if r.Name != expected[i] {
			t.Errorf("expected rule #%d to be %s, is %s", i, expected[i], r)
		}
	}
}

func TestRieulBieub(t *testing.T) {
	r := ruleByID(t, "25")
	for _, stem := range []string{"넓", "핥"} {
		for onset, tense := range tensed {
			if onset == '\u1107' { // not a tensable onset here
				continue
			}
			inp := j(stem) + "/P" + string(onset) + "\u1166"
			if out := r.Apply(inp, false); out != j(stem)+string(tense)+"\u1166" {
				t.Errorf("expected onset %#U after %s to be tensed, have %q", onset, stem, out)
			}
		}
	}
	if out := r.Apply(j("넓게"), false); out != j("넓게") {
		t.Errorf("expected rule to require a stem annotation, have %q", out)
	}
}

func TestModifyingRieul(t *testing.T) {
	r := ruleByID(t, "27")
	if out := r.Apply("\u11AF수록", false); out != "\u11AF쑤록" {
		t.Errorf("expected ending in syllable form to be tensed, have %q", out)
	}
	if out := r.Apply(j("\u11AF수록"), false); out != j("\u11AF쑤록") {
		t.Errorf("expected ending in jamo form to be tensed, have %q", out)
	}
	if out := r.Apply(j("수록"), false); out != j("수록") {
		t.Errorf("expected unrelated text to stay unchanged, have %q", out)
	}
}

func TestColloquialRule(t *testing.T) {
	r := ruleByID(t, "5.2")
	inp, _ := jamo.Decompose("계시다")
	if out := r.Apply(inp, false); out != inp {
		t.Errorf("expected colloquial rule not to apply prescriptively, have %q", out)
	}
	if out := jamo.Compose(r.Apply(inp, true)); out != "게시다" {
		t.Errorf("expected colloquial rule to apply descriptively, have %q", out)
	}
}

func TestGloss(t *testing.T) {
	inp, _ := jamo.Decompose("같이")
	var applied []string
	out := NewEngine().Run(inp, false, func(r *Rule, before, after string) {
		applied = append(applied, r.String())
	})
	if jamo.Compose(out) != "가치" {
		t.Errorf("expected 가치, have %q", jamo.Compose(out))
	}
	if len(applied) != 1 || applied[0] != "palatalize[17]" {
		t.Errorf("expected palatalization only, have %v", applied)
	}
}

func TestRuleText(t *testing.T) {
	text, ok := RuleText("17")
	if !ok || !strings.HasPrefix(text, "받침") {
		t.Errorf("expected text of regulation 17, have %q", text)
	}
	if _, ok := RuleText("5.4.1"); !ok {
		t.Errorf("expected text of regulation 5.4.1")
	}
	if _, ok := RuleText("99"); ok {
		t.Errorf("expected no text for regulation 99")
	}
}
