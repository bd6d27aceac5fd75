// Package modifier extracts file directives ("modifiers") from a raw document.
//
// A directive is a key starting with Prefix. Directives come in two phases:
// pre-directives run before key reconciliation, post-directives run after it.
//
// Available directives:
//
//   - $exclude (bool, pre): skip the file entirely; it is neither loaded nor rewritten.
//   - $redump (bool, post): rewrite the file in canonical order even without drift.
//   - $lang_code (string, post): override the record's language code. The loader
//     still indexes the record under the file name.
//
// Prefixed keys naming no directive are left unclassified; the engine treats them
// as unexpected keys.
package modifier

import (
	"strings"

	"sl10n/core/document"
	"sl10n/core/locale"
	"sl10n/core/utils"
)

// Prefix marks directive keys.
const Prefix = locale.DirectivePrefix

// Directive names, without the prefix.
const (
	Exclude  = "exclude"
	Redump   = "redump"
	LangCode = "lang_code"
)

var (
	preNames  = []string{Exclude}
	postNames = []string{Redump, LangCode}
)

// Pre holds the directives applied before reconciliation. Nil means unset.
type Pre struct {
	Exclude *bool
}

// Post holds the directives applied after reconciliation. Nil means unset.
type Post struct {
	Redump   *bool
	LangCode *string
}

// Set is the parsed directive content of one document.
type Set struct {
	Pre  Pre
	Post Post
	// Present lists the recognised directive keys (with prefix) in document order.
	Present []string
}

// Excluded reports whether the $exclude directive is set to true.
func (s Set) Excluded() bool {
	return s.Pre.Exclude != nil && *s.Pre.Exclude
}

// ForceRedump reports whether the $redump directive is set to true.
func (s Set) ForceRedump() bool {
	return s.Post.Redump != nil && *s.Post.Redump
}

// LangCodeOverride returns the $lang_code value, if a non-empty one is set.
func (s Set) LangCodeOverride() (string, bool) {
	if s.Post.LangCode == nil || *s.Post.LangCode == "" {
		return "", false
	}
	return *s.Post.LangCode, true
}

// Parse partitions the recognised directives of doc into their phases.
// Values that cannot be interpreted leave the directive unset, but its key still
// counts as present.
func Parse(doc *document.Document) Set {
	var s Set
	for _, key := range doc.Keys() {
		name, ok := strings.CutPrefix(key, Prefix)
		if !ok || !Known(name) {
			continue
		}
		s.Present = append(s.Present, key)

		v, _ := doc.Get(key)
		switch name {
		case Exclude:
			if b, ok := utils.ToBool(v); ok {
				s.Pre.Exclude = &b
			}
		case Redump:
			if b, ok := utils.ToBool(v); ok {
				s.Post.Redump = &b
			}
		case LangCode:
			if str, ok := v.(string); ok {
				s.Post.LangCode = &str
			}
		}
	}
	return s
}

// Known reports whether name (without prefix) is a directive of either phase.
func Known(name string) bool {
	for _, n := range preNames {
		if n == name {
			return true
		}
	}
	for _, n := range postNames {
		if n == name {
			return true
		}
	}
	return false
}

// IsDirective reports whether key carries the directive prefix.
func IsDirective(key string) bool {
	return strings.HasPrefix(key, Prefix)
}

// Available returns the prefixed directive names of each phase.
func Available() (pre, post []string) {
	for _, n := range preNames {
		pre = append(pre, Prefix+n)
	}
	for _, n := range postNames {
		post = append(post, Prefix+n)
	}
	return pre, post
}
