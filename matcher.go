package mdedit

import (
	"fmt"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
)

// compiledPatterns caches anchored expressions shared by every Editor.
// Registry patterns are compiled once per process; ad hoc formats pay the
// compile cost on first use only.
var compiledPatterns sync.Map // patternKey -> *regexp2.Regexp

type patternKey struct {
	source  string
	timeout time.Duration
}

// anchorStart pins a pattern to the start of the probed text.
func anchorStart(pattern string) string {
	return `\A(?:` + pattern + `)`
}

// anchorEnd pins a pattern to the very end of the probed text.
// \z is used instead of $, which also matches before a final newline.
func anchorEnd(pattern string) string {
	return `(?:` + pattern + `)\z`
}

// matcher runs anchored affix patterns. The zero value has no match timeout.
type matcher struct {
	timeout time.Duration
}

func (m matcher) compile(source string) (*regexp2.Regexp, error) {
	key := patternKey{source: source, timeout: m.timeout}
	if re, ok := compiledPatterns.Load(key); ok {
		return re.(*regexp2.Regexp), nil
	}

	re, err := regexp2.Compile(source, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, source, err)
	}
	if m.timeout > 0 {
		re.MatchTimeout = m.timeout
	}

	actual, _ := compiledPatterns.LoadOrStore(key, re)
	return actual.(*regexp2.Regexp), nil
}

// validate compiles every anchored form of the affix patterns.
func (m matcher) validate(a Affix) error {
	var sources []string
	if a.detectable() {
		sources = append(sources, anchorStart(a.Pattern), anchorEnd(a.Pattern))
	}
	if a.Antipattern != "" {
		sources = append(sources, anchorStart(a.Antipattern), anchorEnd(a.Antipattern))
	}
	for _, src := range sources {
		if _, err := m.compile(src); err != nil {
			return err
		}
	}
	return nil
}

func (m matcher) test(source, text string) (bool, error) {
	re, err := m.compile(source)
	if err != nil {
		return false, err
	}
	ok, err := re.MatchString(text)
	if err != nil {
		return false, fmt.Errorf("matching %q: %w", source, err)
	}
	return ok, nil
}

func (m matcher) length(source, text string) (int, error) {
	re, err := m.compile(source)
	if err != nil {
		return 0, err
	}
	match, err := re.FindStringMatch(text)
	if err != nil {
		return 0, fmt.Errorf("matching %q: %w", source, err)
	}
	if match == nil {
		return 0, nil
	}
	return match.Length, nil
}

// hasPrefix reports whether text starts with the affix and not with its
// antipattern.
func (m matcher) hasPrefix(text string, a Affix) (bool, error) {
	return m.has(text, a, anchorStart)
}

// hasSuffix reports whether text ends with the affix and not with its
// antipattern.
func (m matcher) hasSuffix(text string, a Affix) (bool, error) {
	return m.has(text, a, anchorEnd)
}

func (m matcher) has(text string, a Affix, anchor func(string) string) (bool, error) {
	if !a.detectable() {
		return false, nil
	}
	ok, err := m.test(anchor(a.Pattern), text)
	if err != nil || !ok || a.Antipattern == "" {
		return ok, err
	}
	excluded, err := m.test(anchor(a.Antipattern), text)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

// prefixLen returns the rune length of the affix match at the start of
// text, or 0. The antipattern is ignored.
func (m matcher) prefixLen(text string, a Affix) (int, error) {
	if !a.detectable() {
		return 0, nil
	}
	return m.length(anchorStart(a.Pattern), text)
}

// suffixLen returns the rune length of the affix match at the end of text,
// or 0. The antipattern is ignored.
func (m matcher) suffixLen(text string, a Affix) (int, error) {
	if !a.detectable() {
		return 0, nil
	}
	return m.length(anchorEnd(a.Pattern), text)
}
