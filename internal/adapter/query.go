package adapter

import (
	"strings"
	"unicode/utf8"
)

// AssembleQuery joins launcher arguments with single spaces and strips the
// launcher trigger prefix, if one is configured. No arguments yield "".
func AssembleQuery(args []string, prefix string) string {
	query := strings.Join(args, " ")
	if prefix != "" {
		query = strings.TrimPrefix(query, prefix)
	}
	return query
}

// Admit reports whether query passes the minimum-length filter.
// Length is counted in characters, not bytes. minLength <= 0 admits everything.
func Admit(query string, minLength int) bool {
	if minLength <= 0 {
		return true
	}
	return utf8.RuneCountInString(query) >= minLength
}
