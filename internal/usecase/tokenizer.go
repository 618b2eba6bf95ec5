package usecase

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/whispercart/backend/internal/domain"
)

// Compiled patterns for sentence and word splitting
var (
	// Sentence boundary: a single period, "!" or "?" followed by whitespace.
	// Ellipses do not end a sentence.
	sentenceBoundary = regexp.MustCompile(`([^.]\.|[!?])\s+`)

	startingQuotes   = regexp.MustCompile(`^"`)
	quoteAfterOpen   = regexp.MustCompile(`([ (\[{<])"`)
	ellipsisPattern  = regexp.MustCompile(`\.\.\.`)
	splitPunctuation = regexp.MustCompile(`([;@#$%&?!])`)
	// Commas and colons split unless they sit inside a number like 5,000 or 10:30
	commaColon       = regexp.MustCompile(`([:,])([^\d])`)
	commaColonAtEnd  = regexp.MustCompile(`([:,])$`)
	brackets         = regexp.MustCompile(`([\]\[(){}<>])`)
	doubleDash       = regexp.MustCompile(`--`)
	endingQuotes     = regexp.MustCompile(`"`)
	finalPeriod      = regexp.MustCompile(`([^.])(\.)([\]\)}>"']*)\s*$`)
	clitics          = regexp.MustCompile(`(?i)([^' ])('[sSmMdD]|'ll|'LL|'re|'RE|'ve|'VE|n't|N'T)\b`)
)

// WordTokenizer is a sentence-aware word tokenizer in the Penn Treebank
// style. Hyphenated words ("t-shirt") and grouped numbers ("20,000")
// stay whole; "$" is split off while "₹" stays attached.
type WordTokenizer struct{}

// NewWordTokenizer creates a tokenizer
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{}
}

// Tokenize returns tokens in left-to-right order with consecutive indices
func (t *WordTokenizer) Tokenize(text string) []domain.Token {
	text = norm.NFC.String(text)

	var tokens []domain.Token
	for _, sentence := range splitSentences(text) {
		for _, word := range tokenizeSentence(sentence) {
			tokens = append(tokens, domain.Token{Text: word, Index: len(tokens)})
		}
	}
	return tokens
}

// TokenTexts returns the text of each token
func TokenTexts(tokens []domain.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Text
	}
	return out
}

func splitSentences(text string) []string {
	marked := sentenceBoundary.ReplaceAllString(text, "$1\n")
	var sentences []string
	for _, s := range strings.Split(marked, "\n") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func tokenizeSentence(s string) []string {
	s = startingQuotes.ReplaceAllString(s, " `` ")
	s = quoteAfterOpen.ReplaceAllString(s, "$1 `` ")

	s = ellipsisPattern.ReplaceAllString(s, " ... ")
	s = splitPunctuation.ReplaceAllString(s, " $1 ")
	s = commaColon.ReplaceAllString(s, " $1 $2")
	s = commaColonAtEnd.ReplaceAllString(s, " $1 ")
	s = brackets.ReplaceAllString(s, " $1 ")
	s = doubleDash.ReplaceAllString(s, " -- ")

	s = " " + s + " "
	s = endingQuotes.ReplaceAllString(s, " '' ")
	s = finalPeriod.ReplaceAllString(strings.TrimSpace(s), "$1 $2 $3 ")
	s = clitics.ReplaceAllString(s, "$1 $2")

	return strings.Fields(s)
}
