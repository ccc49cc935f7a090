package signer

import "strings"

// Rule decides whether a lowercase header name matches.
// Reference: AWS SDK v4 signer internal/v4/header_rules.go
type Rule interface {
	IsValid(name string) bool
}

// Rules is a slice of Rule; a name matches when any rule matches it.
type Rules []Rule

// IsValid returns true if any rule in the slice validates the name.
func (r Rules) IsValid(name string) bool {
	for _, rule := range r {
		if rule.IsValid(name) {
			return true
		}
	}
	return false
}

// MapRule matches names present in the map. Keys are lowercase.
type MapRule map[string]struct{}

// IsValid returns true if the name exists in the map.
func (m MapRule) IsValid(name string) bool {
	_, ok := m[name]
	return ok
}

// ExcludeList inverts the inner rule.
type ExcludeList struct {
	Rule
}

// IsValid returns true if the name does NOT match the inner rule.
func (e ExcludeList) IsValid(name string) bool {
	return !e.Rule.IsValid(name)
}

// Patterns matches names carrying any of the given prefixes.
type Patterns []string

// IsValid returns true if the name has any of the pattern prefixes.
func (p Patterns) IsValid(name string) bool {
	for _, pattern := range p {
		if strings.HasPrefix(name, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// requiredSignedHeaders lists the headers that participate in the signature
// whenever they are present on the request, regardless of any exclusion the
// caller configured.
var requiredSignedHeaders = Rules{
	MapRule{
		"host": struct{}{},
	},
	Patterns{"x-amz-"},
}

// shouldSignHeader decides whether the header with the given lowercase name
// participates in the canonical and signed header sets.
func shouldSignHeader(name string, excluded Rule) bool {
	if requiredSignedHeaders.IsValid(name) {
		return true
	}
	if excluded == nil {
		return true
	}
	return ExcludeList{excluded}.IsValid(name)
}
