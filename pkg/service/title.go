package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeriveTitle turns a directory-style name like "my-demo_app" into a
// human-facing project title.
func DeriveTitle(name string) string {
	cleaned := strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(name)
	words := strings.Fields(cleaned)
	for i, word := range words {
		words[i] = cases.Title(language.English).String(strings.ToLower(word))
	}
	return strings.Join(words, " ")
}
