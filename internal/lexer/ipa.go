package lexer

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// ipaSymbols are the non-ASCII characters allowed in unquoted strings.
var ipaSymbols = sortedSymbols(
	// vowels
	"æ", "ɐ", "ɑ", "ɒ", "ɔ", "ə", "ɘ", "ɚ", "ɛ", "ɜ", "ɝ", "ɞ", "ɤ", "ɨ",
	"ɪ", "ɯ", "ɵ", "ɶ", "ʉ", "ʊ", "ʌ", "ʏ", "ø", "œ",
	// consonants
	"ɓ", "ɕ", "ç", "ɖ", "ɗ", "ɟ", "ɠ", "ɡ", "ɢ", "ɣ", "ɥ", "ɦ", "ɧ", "ɫ",
	"ɬ", "ɭ", "ɮ", "ɰ", "ɱ", "ɲ", "ɳ", "ɴ", "ɸ", "ɹ", "ɺ", "ɻ", "ɽ", "ɾ",
	"ʀ", "ʁ", "ʂ", "ʃ", "ʄ", "ʈ", "ʋ", "ʍ", "ʎ", "ʐ", "ʑ", "ʒ", "ʔ", "ʕ",
	"ʘ", "ʙ", "ʛ", "ʜ", "ʝ", "ʟ", "ʡ", "ʢ", "ǀ", "ǁ", "ǂ", "ǃ", "β", "θ",
	"ð", "χ", "ŋ", "ħ",
	// modifiers and suprasegmentals
	"ʰ", "ʱ", "ʲ", "ʷ", "ˀ", "ˁ", "ˠ", "ˤ", "ː", "ˑ", "ʼ", "ⁿ", "ˡ", "˞",
)

func sortedSymbols(symbols ...string) []string {
	slices.Sort(symbols)
	return symbols
}

func isIPASymbol(s string) bool {
	_, found := slices.BinarySearch(ipaSymbols, s)
	return found
}

// isUnquoted reports whether grapheme g may appear in an unquoted string:
// '_', an ASCII letter or digit, or an IPA symbol, optionally followed by
// combining diacritics.
func isUnquoted(g string) bool {
	base, size := utf8.DecodeRuneInString(g)
	if base == utf8.RuneError {
		return false
	}
	if !isASCIIWord(base) && !isIPASymbol(g[:size]) {
		return false
	}
	for _, r := range g[size:] {
		if !unicode.Is(unicode.Mn, r) {
			return false
		}
	}
	return true
}

func isASCIIWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
