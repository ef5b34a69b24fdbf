package g2p

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configure a Converter.
//
// Options may be read from YAML:
//
//   group_vowels: true
//   to_syllables: true
//   trace: false
//   parallelism: 4
//   idioms:
//     "어떡해": "어떠케"
//
type Options struct {
	GroupVowels bool              `yaml:"group_vowels"` // merge ㅐ/ㅔ, ㅒ/ㅖ and ㅙ/ㅚ/ㅞ
	ToSyllables bool              `yaml:"to_syllables"` // join jamo back to syllables
	Trace       bool              `yaml:"trace"`        // trace rule applications
	Parallelism int               `yaml:"parallelism"`  // max. parallel conversions in ConvertAll
	Idioms      map[string]string `yaml:"idioms"`       // literal substitutions before anything else
}

// DefaultOptions returns the options used by G2P.
func DefaultOptions() Options {
	return Options{
		ToSyllables: true,
		Parallelism: 4,
	}
}

// LoadOptions reads options in YAML format. Settings missing from the input
// keep their default values.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	data, err := io.ReadAll(r)
	if err != nil {
		return opts, fmt.Errorf("failed to read options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return DefaultOptions(), fmt.Errorf("failed to parse options: %w", err)
	}
	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}
	return opts, nil
}

// LoadOptionsFile reads options from a YAML file. If the file does not
// exist, default options are returned.
func LoadOptionsFile(path string) (Options, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			T().Infof("g2p: no options file %q, using defaults", path)
			return DefaultOptions(), nil
		}
		return DefaultOptions(), fmt.Errorf("failed to open options file: %w", err)
	}
	defer f.Close()
	return LoadOptions(f)
}
