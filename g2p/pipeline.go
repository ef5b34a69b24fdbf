package g2p

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/kophon"
	"github.com/npillmayer/kophon/jamo"
	"github.com/npillmayer/kophon/loanword"
	"github.com/npillmayer/kophon/numerals"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// Dictionary looks up the pronunciations of English words. Pronunciations
// are ARPAbet phone strings like "G EY1 M".
type Dictionary interface {
	Lookup(word string) ([]string, bool)
}

// NumberExpander spells out digits in Korean. Annotations in the text are
// left in place.
type NumberExpander interface {
	Convert(text string) string
}

// Tagger annotates text with morphological boundaries /P, /E and /J.
type Tagger interface {
	Annotate(text string) string
}

type identityTagger struct{}

func (identityTagger) Annotate(text string) string { return text }

// Converter converts Korean text to its pronunciation, written in Hangul.
// A Converter is safe for concurrent use.
type Converter struct {
	engine  *Engine
	dict    Dictionary
	numbers NumberExpander
	tagger  Tagger
	opts    Options
	idioms  []string // idiom keys, longest first
}

// Option configures a Converter.
type Option func(*Converter)

// WithDictionary sets a pronunciation dictionary for English words. Without
// a dictionary, latin script is left alone.
func WithDictionary(d Dictionary) Option {
	return func(c *Converter) { c.dict = d }
}

// WithNumbers sets the number expander. A nil expander leaves digits alone.
func WithNumbers(n NumberExpander) Option {
	return func(c *Converter) { c.numbers = n }
}

// WithTagger sets a morphological tagger. The default tagger leaves the
// text unchanged, i.e. annotations have to be present in the input.
func WithTagger(t Tagger) Option {
	return func(c *Converter) {
		if t != nil {
			c.tagger = t
		}
	}
}

// WithOptions configures a converter from options.
func WithOptions(opts Options) Option {
	return func(c *Converter) { c.opts = opts }
}

// New creates a converter.
func New(opts ...Option) *Converter {
	c := &Converter{
		engine:  NewEngine(),
		numbers: numerals.Expander{},
		tagger:  identityTagger{},
		opts:    DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.idioms = lo.Keys(c.opts.Idioms)
	sort.Slice(c.idioms, func(i, j int) bool {
		if len(c.idioms[i]) != len(c.idioms[j]) {
			return len(c.idioms[i]) > len(c.idioms[j])
		}
		return c.idioms[i] < c.idioms[j]
	})
	return c
}

var defaultConverter struct {
	sync.Once
	c *Converter
}

// G2P converts text to its pronunciation using a default converter: no
// English dictionary, no tagger, digits read by package numerals.
// If descriptive is set, colloquial pronunciations are produced where the
// regulations allow for them.
func G2P(text string, descriptive bool) (string, error) {
	defaultConverter.Do(func() {
		defaultConverter.c = New()
	})
	return defaultConverter.c.Convert(text, descriptive)
}

// Convert converts text to its pronunciation. Text is processed as a whole;
// if any part of it is not valid Hangul text, no output is produced.
func (c *Converter) Convert(text string, descriptive bool) (string, error) {
	text = c.replaceIdioms(text)
	text = c.replaceLoanwords(text)
	text = c.tagger.Annotate(text)
	if c.numbers != nil {
		text = c.numbers.Convert(text)
	}
	text = norm.NFC.String(text)
	decomposed, err := jamo.Decompose(text)
	if err != nil {
		return "", fmt.Errorf("g2p: cannot decompose input: %w", err)
	}
	var gloss Gloss
	if c.opts.Trace {
		gloss = traceRule
	}
	out := c.engine.Run(decomposed, descriptive, gloss)
	if c.opts.GroupVowels {
		out = vowelGroups.Apply(out)
	}
	if c.opts.ToSyllables {
		out = jamo.Compose(out)
	}
	return out, nil
}

// ConvertAll converts a batch of texts in parallel. Either all texts are
// converted or an error is returned.
func (c *Converter) ConvertAll(ctx context.Context, texts []string, descriptive bool) ([]string, error) {
	results := make([]string, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.opts.Parallelism, 1))
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := c.Convert(text, descriptive)
			if err != nil {
				return fmt.Errorf("text #%d: %w", i, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func traceRule(r *Rule, before, after string) {
	text, _ := RuleText(r.ID)
	T().Infof("%s %s", r, text)
	T().Infof("    %s -> %s", jamo.Compose(before), jamo.Compose(after))
}

var vowelGroups = kophon.Rewrite{
	Pattern: kophon.Seq(kophon.Set("ᅢᅤᅫᅬ")),
	Replace: byFirst(map[rune]string{'ᅢ': "ᅦ", 'ᅤ': "ᅨ", 'ᅫ': "ᅰ", 'ᅬ': "ᅰ"}),
}

func (c *Converter) replaceIdioms(text string) string {
	for _, idiom := range c.idioms {
		text = strings.ReplaceAll(text, idiom, c.opts.Idioms[idiom])
	}
	return text
}

// replaceLoanwords replaces English words by their Hangul spelling. Digits
// directly following a known word are read in English, as in "mp3". Single
// letters following a '/' are annotations and are left alone.
func (c *Converter) replaceLoanwords(text string) string {
	if c.dict == nil {
		return text
	}
	rs := []rune(text)
	var b strings.Builder
	for i := 0; i < len(rs); {
		if !isLatin(rs[i]) {
			b.WriteRune(rs[i])
			i++
			continue
		}
		k := i
		for k < len(rs) && isLatin(rs[k]) {
			k++
		}
		word := string(rs[i:k])
		hangul := word
		if annotation := k-i == 1 && i > 0 && rs[i-1] == '/'; !annotation {
			if h, ok := c.adapt(word); ok {
				d := k
				for d < len(rs) && rs[d] >= '0' && rs[d] <= '9' {
					d++
				}
				hangul = h + loanword.SpellDigits(string(rs[k:d]))
				k = d
			}
		}
		b.WriteString(hangul)
		i = k
	}
	return b.String()
}

func (c *Converter) adapt(word string) (string, bool) {
	prons, ok := c.dict.Lookup(word)
	if !ok || len(prons) == 0 {
		return "", false
	}
	hangul, err := loanword.Adapt(prons[0])
	if err != nil {
		T().Debugf("g2p: cannot adapt %q [%s]: %v", word, prons[0], err)
		return "", false
	}
	return hangul, true
}

func isLatin(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
