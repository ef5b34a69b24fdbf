package kophon

import (
	"context"
	"fmt"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

// eot is handed to state functions at the end of the input text.
const eot = rune(0)

// NfaStateFn represents a state in a non-deterministic finite automata.
// Functions of type NfaStateFn try to match a rune (Unicode code-point).
// The first argument is a Recognizer, which carries this state function.
//
// NfaStateFn – after matching a rune – must return another NfaStateFn,
// which will then in turn be called to process the next rune. The process
// of matching a string will stop as soon as a NfaStateFn returns nil.
// At the end of input, state functions receive a rune(0).
type NfaStateFn func(*Recognizer, rune) NfaStateFn

// A Recognizer represents an automata to recognize sequences of runes.
// Its main functionality is performed by an embedded NfaStateFn.
//
// Recognizer's state functions must be careful to increment MatchLen
// with each consumed rune. Runes matched as look-ahead context are not
// counted.
type Recognizer struct {
	Expect   int         // index of the next pattern step
	MatchLen int         // length of active match
	UserData interface{} // the pattern under recognition
	accepted bool        // set by DoAccept
	nextStep NfaStateFn  // next step of a DFA
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call NewPooledRecognizer().
func NewRecognizer(userData interface{}, next NfaStateFn) *Recognizer {
	rec := &Recognizer{}
	rec.UserData = userData
	rec.nextStep = next
	return rec
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rec := &Recognizer{}
			return rec, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a new Recognizer, pre-filled with user data
// and a state function. The Recognizer is pooled for efficiency.
func NewPooledRecognizer(userData interface{}, stateFn NfaStateFn) *Recognizer {
	o, err := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	if err != nil {
		CT().Errorf("cannot borrow recognizer: %v", err)
		return NewRecognizer(userData, stateFn)
	}
	rec := o.(*Recognizer)
	rec.UserData = userData
	rec.nextStep = stateFn
	return rec
}

// Release clears the Recognizer and puts it back into the pool.
func (rec *Recognizer) Release() {
	rec.Expect = 0
	rec.MatchLen = 0
	rec.UserData = nil
	rec.accepted = false
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[%d -> done=%v]", rec.Expect, rec.Done())
}

// Done is true if a Recognizer is done matching runes.
// If Accepted() is true it has been accepting a sequence of runes,
// otherwise it has aborted to further try a match.
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// Accepted is true if the Recognizer is done and has matched its pattern.
func (rec *Recognizer) Accepted() bool {
	return rec.Done() && rec.accepted
}

// RuneEvent feeds the next rune to the recognizer.
func (rec *Recognizer) RuneEvent(r rune) {
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, r)
	}
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	rec.accepted = false
	return nil
}

// DoAccept returns a state function which signals accept.
func DoAccept(rec *Recognizer) NfaStateFn {
	rec.accepted = true
	return nil
}

// --- Patterns ---------------------------------------------------------

// Step matches a single rune out of a finite class of runes.
type Step struct {
	match func(rune) bool
	eot   bool // matches end of text
}

// Lit matches exactly rune r.
func Lit(r rune) Step {
	return Step{match: func(c rune) bool { return c == r }}
}

// Set matches any of the runes in s.
func Set(s string) Step {
	return Step{match: func(c rune) bool { return strings.ContainsRune(s, c) }}
}

// Not matches any rune which is not in s. It does not match end of text.
func Not(s string) Step {
	return Step{match: func(c rune) bool { return !strings.ContainsRune(s, c) }}
}

// Is matches any rune for which predicate is true.
func Is(predicate func(rune) bool) Step {
	return Step{match: predicate}
}

// End matches the end of the text only.
func End() Step {
	return Step{eot: true}
}

// OrEnd extends a step to match the end of text as well.
func (st Step) OrEnd() Step {
	st.eot = true
	return st
}

func (st Step) matches(r rune) bool {
	if r == eot {
		return st.eot
	}
	return st.match != nil && st.match(r)
}

// Pattern is a sequence of steps, optionally with a single step of
// look-behind context and trailing look-ahead steps. Context steps
// take part in matching but are not consumed.
type Pattern struct {
	behind *Step
	steps  []Step
	ahead  []Step
}

// Seq creates a pattern from a sequence of steps.
func Seq(steps ...Step) Pattern {
	return Pattern{steps: steps}
}

// Literal creates a pattern matching string s.
func Literal(s string) Pattern {
	p := Pattern{}
	for _, r := range s {
		p.steps = append(p.steps, Lit(r))
	}
	return p
}

// FollowedBy adds look-ahead context to a pattern.
func (p Pattern) FollowedBy(steps ...Step) Pattern {
	p.ahead = append(append([]Step(nil), p.ahead...), steps...)
	return p
}

// After adds a step of look-behind context to a pattern. At the start of
// text, the look-behind step is matched against end of text.
func (p Pattern) After(step Step) Pattern {
	p.behind = &step
	return p
}

// Len is the number of runes a match of p consumes.
func (p Pattern) Len() int {
	return len(p.steps)
}

// patternStep is the single state function of pattern recognizers. It
// matches step #rec.Expect of the pattern.
func patternStep(rec *Recognizer, r rune) NfaStateFn {
	p := rec.UserData.(*Pattern)
	k := rec.Expect
	var st Step
	if k < len(p.steps) {
		st = p.steps[k]
	} else {
		st = p.ahead[k-len(p.steps)]
	}
	if !st.matches(r) {
		return DoAbort(rec)
	}
	if k < len(p.steps) && r != eot {
		rec.MatchLen++
	}
	rec.Expect++
	if rec.Expect == len(p.steps)+len(p.ahead) {
		return DoAccept(rec)
	}
	if r == eot {
		return DoAbort(rec)
	}
	return patternStep
}

// MatchAt tries to match p at position i of text. It returns the number of
// runes consumed by a match.
func (p Pattern) MatchAt(text []rune, i int) (int, bool) {
	if len(p.steps) == 0 || i > len(text) {
		return 0, false
	}
	if p.behind != nil {
		prev := eot
		if i > 0 {
			prev = text[i-1]
		}
		if !p.behind.matches(prev) {
			return 0, false
		}
	}
	if i < len(text) && !p.steps[0].matches(text[i]) {
		return 0, false
	}
	rec := NewPooledRecognizer(&p, patternStep)
	defer rec.Release()
	for j := i; !rec.Done(); j++ {
		r := eot
		if j < len(text) {
			r = text[j]
		}
		rec.RuneEvent(r)
	}
	if !rec.Accepted() {
		return 0, false
	}
	return rec.MatchLen, true
}

// --- Rewrites ---------------------------------------------------------

// Rewrite replaces every leftmost, non-overlapping match of a pattern.
type Rewrite struct {
	Pattern Pattern
	Replace func(match []rune) []rune
}

// To is a replacement with constant string s.
func To(s string) func([]rune) []rune {
	rs := []rune(s)
	return func([]rune) []rune { return rs }
}

// Apply rewrites a string.
func (rw Rewrite) Apply(s string) string {
	out, changed := rw.ApplyRunes([]rune(s))
	if !changed {
		return s
	}
	return string(out)
}

// ApplyRunes rewrites a rune slice. It reports whether anything has been
// replaced. The input slice is not modified.
func (rw Rewrite) ApplyRunes(text []rune) ([]rune, bool) {
	var out []rune
	changed := false
	for i := 0; i < len(text); {
		n, ok := rw.Pattern.MatchAt(text, i)
		if !ok || n == 0 {
			if changed {
				out = append(out, text[i])
			}
			i++
			continue
		}
		if !changed {
			out = make([]rune, i, len(text)+8)
			copy(out, text[:i])
			changed = true
		}
		out = append(out, rw.Replace(text[i:i+n])...)
		i += n
	}
	if !changed {
		return text, false
	}
	return out, true
}
