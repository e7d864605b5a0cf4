package clonology

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidFlags is returned for unknown or repeated pattern flags
var ErrInvalidFlags = errors.New("invalid pattern flags")

// canonical flag order
const patternFlags = "dgimsuvy"

const compiledCacheSize = 512

var compiled = newCompiledCache()

func newCompiledCache() *lru.Cache[string, *regexp.Regexp] {
	cache, err := lru.New[string, *regexp.Regexp](compiledCacheSize)
	if err != nil {
		panic(err)
	}
	return cache
}

// Pattern represents a compiled regular expression with its source text and flags
type Pattern struct {
	Properties
	source    string
	flags     string
	re        *regexp.Regexp
	lastIndex int
}

// NewPattern creates a pattern, flags are any subset of "dgimsuvy"
func NewPattern(source, flags string) (*Pattern, error) {
	normalized, err := normalizeFlags(flags)
	if err != nil {
		return nil, err
	}
	if source == "" {
		source = "(?:)"
	}
	re, err := compilePattern(source, normalized)
	if err != nil {
		return nil, err
	}
	return &Pattern{source: source, flags: normalized, re: re}, nil
}

// MustPattern creates a pattern or panics
func MustPattern(source, flags string) *Pattern {
	pattern, err := NewPattern(source, flags)
	if err != nil {
		panic(err)
	}
	return pattern
}

func normalizeFlags(flags string) (string, error) {
	var seen [len(patternFlags)]bool
	for _, flag := range flags {
		pos := strings.IndexRune(patternFlags, flag)
		if pos == -1 || seen[pos] {
			return "", fmt.Errorf("%w: %q", ErrInvalidFlags, flags)
		}
		seen[pos] = true
	}
	builder := strings.Builder{}
	for i := range seen {
		if seen[i] {
			builder.WriteByte(patternFlags[i])
		}
	}
	return builder.String(), nil
}

func compilePattern(source, flags string) (*regexp.Regexp, error) {
	cacheKey := flags + "/" + source
	if re, ok := compiled.Get(cacheKey); ok {
		return re, nil
	}
	expr := source
	inline := ""
	for _, flag := range "ims" {
		if strings.ContainsRune(flags, flag) {
			inline += string(flag)
		}
	}
	if inline != "" {
		expr = "(?" + inline + ")" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern /%v/%v: %w", source, flags, err)
	}
	compiled.Add(cacheKey, re)
	return re, nil
}

// Source returns pattern source text
func (p *Pattern) Source() string {
	return p.source
}

// Flags returns pattern flags in canonical order
func (p *Pattern) Flags() string {
	return p.flags
}

// Global returns true for "g" flag
func (p *Pattern) Global() bool {
	return strings.IndexByte(p.flags, 'g') != -1
}

// Sticky returns true for "y" flag
func (p *Pattern) Sticky() bool {
	return strings.IndexByte(p.flags, 'y') != -1
}

// IgnoreCase returns true for "i" flag
func (p *Pattern) IgnoreCase() bool {
	return strings.IndexByte(p.flags, 'i') != -1
}

// LastIndex returns byte offset the next global or sticky match starts at
func (p *Pattern) LastIndex() int {
	return p.lastIndex
}

// SetLastIndex sets last index
func (p *Pattern) SetLastIndex(index int) {
	p.lastIndex = index
}

// Regexp returns compiled expression
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// Exec returns matched text followed by submatches or nil when no match was found.
// With "g" or "y" matching starts at LastIndex, a byte offset, and the input before it is not seen:
// "^" and "\b" are evaluated as if the input began at LastIndex.
func (p *Pattern) Exec(input string) []string {
	global, sticky := p.Global(), p.Sticky()
	if !global && !sticky {
		return p.re.FindStringSubmatch(input)
	}
	start := p.lastIndex
	if start < 0 || start > len(input) {
		p.lastIndex = 0
		return nil
	}
	loc := p.re.FindStringSubmatchIndex(input[start:])
	if loc == nil || (sticky && loc[0] != 0) {
		p.lastIndex = 0
		return nil
	}
	result := make([]string, len(loc)/2)
	for i := range result {
		if loc[2*i] < 0 {
			continue
		}
		result[i] = input[start+loc[2*i] : start+loc[2*i+1]]
	}
	p.lastIndex = start + loc[1]
	return result
}

// Test returns true if pattern matches input
func (p *Pattern) Test(input string) bool {
	return p.Exec(input) != nil
}

func (p *Pattern) String() string {
	return "/" + p.source + "/" + p.flags
}
