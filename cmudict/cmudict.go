/*
Package cmudict reads the CMU Pronouncing Dictionary.

The dictionary is a text file with one pronunciation per line:

   ;;; comment
   ADVERSITY  AE0 D V ER1 S AH0 T IY2
   ADVERSITY(1)  AH0 D V ER1 S IH0 T IY2

Alternative pronunciations carry a counter in parentheses. Pronunciations
are strings of ARPAbet phones, with stress digits on the vowels.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/samber/lo"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Dict is a pronunciation dictionary. A Dict is read-only after loading and
// safe for concurrent use.
type Dict struct {
	prons map[string][]string
}

// Load reads a dictionary in CMUdict format.
func Load(r io.Reader) (*Dict, error) {
	d := &Dict{prons: make(map[string][]string)}
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.HasPrefix(line, ";;;") {
			continue
		}
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("cmudict: line %d: missing pronunciation for %q", lineno, fields[0])
		}
		word := headword(fields[0])
		pron := strings.Join(fields[1:], " ")
		if !lo.Contains(d.prons[word], pron) {
			d.prons[word] = append(d.prons[word], pron)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}
	T().Debugf("cmudict: loaded %d words", len(d.prons))
	return d, nil
}

// Open loads a dictionary file.
func Open(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		T().Errorf("cmudict: %s: %v", path, err)
		return nil, err
	}
	return d, nil
}

// headword strips an alternate counter like "(1)" and folds to upper case.
func headword(w string) string {
	if i := strings.LastIndexByte(w, '('); i > 0 && strings.HasSuffix(w, ")") {
		w = w[:i]
	}
	return strings.ToUpper(w)
}

// Lookup returns the pronunciations of a word, in dictionary order. Words
// are matched ignoring case.
func (d *Dict) Lookup(word string) ([]string, bool) {
	if d == nil || word == "" {
		return nil, false
	}
	prons, ok := d.prons[strings.ToUpper(word)]
	if !ok {
		return nil, false
	}
	return append([]string(nil), prons...), true
}

// Contains is true if the dictionary knows word.
func (d *Dict) Contains(word string) bool {
	_, ok := d.Lookup(word)
	return ok
}

// Len returns the number of words in the dictionary.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.prons)
}
