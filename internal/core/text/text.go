// Package text holds small string helpers exposed under "stockroom text".
package text

import (
	"strings"
	"unicode"
)

const vowels = "aeiou"

// CountVowels returns the number of vowels in word, ignoring case.
func CountVowels(word string) int {
	count := 0
	for _, r := range word {
		if strings.ContainsRune(vowels, unicode.ToLower(r)) {
			count++
		}
	}
	return count
}

// DashSeparate joins the letters of word with dashes: "abc" becomes "a-b-c".
func DashSeparate(word string) string {
	letters := make([]string, 0, len(word))
	for _, r := range word {
		letters = append(letters, string(r))
	}
	return strings.Join(letters, "-")
}
