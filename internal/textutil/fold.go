package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Lower NFKC-normalizes and lowercases s, so compatibility forms such as
// full-width letters match their plain keywords. A fresh Caser is built per
// call since cases.Caser keeps state and cannot be shared across goroutines.
func Lower(s string) string {
	if s == "" {
		return s
	}
	return cases.Lower(language.Und).String(norm.NFKC.String(s))
}
