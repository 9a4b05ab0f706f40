package vocab_test

import (
	"testing"

	"github.com/KimNorgaard/go-ssml/vocab"
	"github.com/stretchr/testify/require"
)

func TestParseOpenTag(t *testing.T) {
	tests := []struct {
		input    string
		expected vocab.OpenTag
		ok       bool
	}{
		{"break", vocab.OpenBreak, true},
		{"lang", vocab.OpenLang, true},
		{"mark", vocab.OpenMark, true},
		{"p", vocab.OpenParagraph, true},
		{"phoneme", vocab.OpenPhoneme, true},
		{"prosody", vocab.OpenProsody, true},
		{"s", vocab.OpenSentence, true},
		{"say-as", vocab.OpenSayAs, true},
		{"sub", vocab.OpenSub, true},
		{"w", vocab.OpenWord, true},
		{"amazon:effect", vocab.OpenAmazonEffect, true},
		{"amazon:auto-breaths", vocab.OpenAmazonAutoBreaths, true},
		{"amazon:breath", vocab.OpenAmazonBreath, true},
		{"amazon:domain", vocab.OpenAmazonDomain, true},
		{"P", vocab.OpenParagraph, true},
		{"AMAZON:EFFECT", vocab.OpenAmazonEffect, true},
		{"Say-As", vocab.OpenSayAs, true},
		{"bogus", 0, false},
		{"", 0, false},
		{"speak", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, ok := vocab.ParseOpenTag(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.expected, tag)
			}
		})
	}
}

func TestParseCloseTag(t *testing.T) {
	tests := []struct {
		input    string
		expected vocab.CloseTag
		ok       bool
	}{
		{"lang", vocab.CloseLang, true},
		{"p", vocab.CloseParagraph, true},
		{"s", vocab.CloseSentence, true},
		{"W", vocab.CloseWord, true},
		{"amazon:auto-breaths", vocab.CloseAmazonAutoBreaths, true},
		{"amazon:domain", vocab.CloseAmazonDomain, true},
		// Self-closing tags have no closing form.
		{"break", 0, false},
		{"amazon:breath", 0, false},
		{"bogus", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tag, ok := vocab.ParseCloseTag(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.expected, tag)
			}
		})
	}
}
