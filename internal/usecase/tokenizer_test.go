package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordTokenizer_Tokenize(t *testing.T) {
	tokenizer := NewWordTokenizer()

	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "plain words",
			input: "I want wireless headphones under 5000 rupees",
			want:  []string{"I", "want", "wireless", "headphones", "under", "5000", "rupees"},
		},
		{
			name:  "keeps hyphenated words",
			input: "2 grey t-shirts",
			want:  []string{"2", "grey", "t-shirts"},
		},
		{
			name:  "keeps grouped numbers and rupee sign",
			input: "a phone under ₹20,000",
			want:  []string{"a", "phone", "under", "₹20,000"},
		},
		{
			name:  "splits dollar sign",
			input: "shoes under $50",
			want:  []string{"shoes", "under", "$", "50"},
		},
		{
			name:  "splits commas between words",
			input: "red, blue and green",
			want:  []string{"red", ",", "blue", "and", "green"},
		},
		{
			name:  "splits final period",
			input: "need a laptop.",
			want:  []string{"need", "a", "laptop", "."},
		},
		{
			name:  "splits clitics",
			input: "I can't find my wallet",
			want:  []string{"I", "ca", "n't", "find", "my", "wallet"},
		},
		{
			name:  "multiple sentences",
			input: "Need a laptop. Also 2 mice",
			want:  []string{"Need", "a", "laptop", ".", "Also", "2", "mice"},
		},
		{
			name:  "splits sentences before lowercase words",
			input: "buy a laptop. also red mouse",
			want:  []string{"buy", "a", "laptop", ".", "also", "red", "mouse"},
		},
		{
			name:  "splits on question and exclamation marks",
			input: "need shoes? yes! red ones",
			want:  []string{"need", "shoes", "?", "yes", "!", "red", "ones"},
		},
		{
			name:  "ellipsis does not end a sentence",
			input: "wait... also a mouse",
			want:  []string{"wait", "...", "also", "a", "mouse"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := tokenizer.Tokenize(tc.input)
			assert.Equal(t, tc.want, TokenTexts(tokens))
		})
	}
}

func TestWordTokenizer_ConsecutiveIndices(t *testing.T) {
	tokens := NewWordTokenizer().Tokenize("Need a laptop. Also a mouse, please!")
	for i, tok := range tokens {
		assert.Equal(t, i, tok.Index, "token %q", tok.Text)
	}
}

func TestWordTokenizer_LowercaseSentencePositions(t *testing.T) {
	tokens := NewWordTokenizer().Tokenize("buy a laptop. also red mouse")
	assert.Equal(t, "also", tokens[4].Text)
	assert.Equal(t, 4, tokens[4].Index)
}

func TestWordTokenizer_NormalizesUnicode(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune
	tokens := NewWordTokenizer().Tokenize("cafe\u0301 table")
	assert.Equal(t, []string{"caf\u00e9", "table"}, TokenTexts(tokens))
}
