package g2p

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/kophon"
	"github.com/npillmayer/kophon/internal/tabparse"
)

// Rule is a rewrite rule over annotated jamo text. Every rule implements
// (part of) a regulation of the Standard Pronunciation Regulations, which is
// referred to by ID.
//
// A rule may behave differently in descriptive mode, i.e. when reproducing
// colloquial pronunciation instead of the codified standard.
type Rule struct {
	ID           string // regulation number, e.g. "17" or "11.1"
	Name         string // short name of the rule
	descriptive  []kophon.Rewrite
	prescriptive []kophon.Rewrite
}

// rule creates a rule which ignores the descriptive flag.
func rule(id, name string, rewrites ...kophon.Rewrite) *Rule {
	return &Rule{ID: id, Name: name, descriptive: rewrites, prescriptive: rewrites}
}

// colloquial creates a rule which applies in descriptive mode only.
func colloquial(id, name string, rewrites ...kophon.Rewrite) *Rule {
	return &Rule{ID: id, Name: name, descriptive: rewrites}
}

// Apply runs a rule on a string of jamo. Input which does not match any of
// the rule's patterns is returned unchanged.
func (r *Rule) Apply(inp string, descriptive bool) string {
	rewrites := r.prescriptive
	if descriptive {
		rewrites = r.descriptive
	}
	text, changed := []rune(inp), false
	for _, rw := range rewrites {
		var c bool
		text, c = rw.ApplyRunes(text)
		changed = changed || c
	}
	if !changed {
		return inp
	}
	return string(text)
}

func (r *Rule) String() string {
	return r.Name + "[" + r.ID + "]"
}

// Gloss receives a rule application which has changed the text.
type Gloss func(r *Rule, before, after string)

// Engine holds the ordered list of rules. The order is significant, as later
// rules rely on earlier ones having normalized certain patterns.
type Engine struct {
	rules *arraylist.List
}

var defaultEngine struct {
	sync.Once
	engine *Engine
}

// NewEngine returns the rule engine. Rules are immutable and the engine is
// shared between all callers.
func NewEngine() *Engine {
	defaultEngine.Do(func() {
		T().Infof("g2p: setting up rule engine")
		rules := arraylist.New()
		for _, r := range specialRules() {
			rules.Add(r)
		}
		rules.Add(stripRule())
		for _, r := range regularRules() {
			rules.Add(r)
		}
		defaultEngine.engine = &Engine{rules: rules}
	})
	return defaultEngine.engine
}

// Rules returns the rules in order of application.
func (e *Engine) Rules() []*Rule {
	rules := make([]*Rule, 0, e.rules.Size())
	e.rules.Each(func(_ int, value interface{}) {
		rules = append(rules, value.(*Rule))
	})
	return rules
}

// Run applies all rules, in order, to a string of annotated jamo. If gloss is
// non-nil, it is called for every rule which changed the text.
func (e *Engine) Run(text string, descriptive bool, gloss Gloss) string {
	it := e.rules.Iterator()
	for it.Next() {
		r := it.Value().(*Rule)
		out := r.Apply(text, descriptive)
		if gloss != nil && out != text {
			gloss(r, text, out)
		}
		text = out
	}
	return text
}

//go:embed rules.txt
var rulesTxt string

var ruleTexts struct {
	sync.Once
	texts *treemap.Map
}

// RuleText returns the text of a regulation by its number, e.g. "17".
func RuleText(id string) (string, bool) {
	ruleTexts.Do(func() {
		ruleTexts.texts = treemap.NewWithStringComparator()
		err := tabparse.Parse(strings.NewReader(rulesTxt), 2, func(token *tabparse.Token) {
			ruleTexts.texts.Put(token.Key(), token.Field(2))
		})
		if err != nil {
			T().Errorf("g2p: cannot read rule texts: %v", err)
		}
		T().Debugf("g2p: %d rule texts", ruleTexts.texts.Size())
	})
	text, ok := ruleTexts.texts.Get(id)
	if !ok {
		return "", false
	}
	return text.(string), true
}
