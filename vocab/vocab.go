// Package vocab defines the closed vocabulary of recognized tags and
// attribute values.
//
// Tag names and enumerated attribute values are matched case-insensitively,
// and every enumeration has a single canonical encoding written to the
// output regardless of which accepted spelling was supplied (for example
// both "whisper" and "whispered" encode as "whispered"). The value sets
// follow the tags Amazon Polly accepts; see
// http://docs.aws.amazon.com/polly/latest/dg/supported-ssml.html for what
// each one does in the synthesis engine.
package vocab

import "strings"

// OpenTag identifies a recognized opening tag.
type OpenTag int

const (
	OpenBreak OpenTag = iota
	OpenLang
	OpenMark
	OpenParagraph
	OpenPhoneme
	OpenProsody
	OpenSentence
	OpenSayAs
	OpenSub
	OpenWord
	OpenAmazonEffect
	OpenAmazonAutoBreaths
	OpenAmazonBreath
	OpenAmazonDomain
)

// ParseOpenTag resolves a tag name against the closed set of opening tags.
// Matching is case-insensitive. Unrecognized names report false and the
// caller is expected to drop the tag.
func ParseOpenTag(name string) (OpenTag, bool) {
	switch strings.ToLower(name) {
	case "break":
		return OpenBreak, true
	case "lang":
		return OpenLang, true
	case "mark":
		return OpenMark, true
	case "p":
		return OpenParagraph, true
	case "phoneme":
		return OpenPhoneme, true
	case "prosody":
		return OpenProsody, true
	case "s":
		return OpenSentence, true
	case "say-as":
		return OpenSayAs, true
	case "sub":
		return OpenSub, true
	case "w":
		return OpenWord, true
	case "amazon:effect":
		return OpenAmazonEffect, true
	case "amazon:auto-breaths":
		return OpenAmazonAutoBreaths, true
	case "amazon:breath":
		return OpenAmazonBreath, true
	case "amazon:domain":
		return OpenAmazonDomain, true
	}
	return 0, false
}

// CloseTag identifies a recognized closing tag. The self-closing tags
// (break, amazon:breath) have no closing form.
type CloseTag int

const (
	CloseLang CloseTag = iota
	CloseMark
	CloseParagraph
	ClosePhoneme
	CloseProsody
	CloseSentence
	CloseSayAs
	CloseSub
	CloseWord
	CloseAmazonEffect
	CloseAmazonAutoBreaths
	CloseAmazonDomain
)

// ParseCloseTag resolves a tag name against the closed set of closing tags,
// case-insensitively.
func ParseCloseTag(name string) (CloseTag, bool) {
	switch strings.ToLower(name) {
	case "lang":
		return CloseLang, true
	case "mark":
		return CloseMark, true
	case "p":
		return CloseParagraph, true
	case "phoneme":
		return ClosePhoneme, true
	case "prosody":
		return CloseProsody, true
	case "s":
		return CloseSentence, true
	case "say-as":
		return CloseSayAs, true
	case "sub":
		return CloseSub, true
	case "w":
		return CloseWord, true
	case "amazon:effect":
		return CloseAmazonEffect, true
	case "amazon:auto-breaths":
		return CloseAmazonAutoBreaths, true
	case "amazon:domain":
		return CloseAmazonDomain, true
	}
	return 0, false
}
