// Package lexer splits author text into tag and text tokens.
//
// The input grammar is a flat alternation of three forms, tried in order at
// every position: a start tag "${name|k=v|...}", an end tag "${/name}", and a
// literal run of text extending to the next "${" marker. There is no nesting
// at this level and no backtracking; a "${" that commits to a tag but never
// finds its closing "}" poisons the rest of the input.
package lexer

import (
	"strings"

	"github.com/KimNorgaard/go-ssml/token"
)

// Lexer holds the state for tokenizing input text.
type Lexer struct {
	input string
	pos   int
	done  bool
}

// New creates and returns a new Lexer.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Next scans the input and returns the next token. After an ILLEGAL token or
// the end of input, every further call returns EOF.
func (l *Lexer) Next() token.Token {
	if l.done || l.pos >= len(l.input) {
		l.done = true
		return token.Token{Type: token.EOF}
	}

	rest := l.input[l.pos:]

	// Fast path: no tag marker anywhere ahead, the rest is one text run.
	marker := strings.Index(rest, "${")
	if marker < 0 {
		l.pos = len(l.input)
		return token.Token{Type: token.TEXT, Literal: rest}
	}

	if marker > 0 {
		l.pos += marker
		return token.Token{Type: token.TEXT, Literal: rest[:marker]}
	}

	// Committed to a tag. From here a missing "}" fails the whole input.
	body := rest[2:]
	isEnd := strings.HasPrefix(body, "/")
	if isEnd {
		body = body[1:]
	}

	closing := strings.Index(body, "}")
	if closing < 0 {
		l.done = true
		return token.Token{Type: token.ILLEGAL, Literal: rest}
	}

	l.pos += 2 + closing + 1
	if isEnd {
		l.pos++
		// End-tag bodies are used verbatim, never split into parameters.
		return token.Token{Type: token.END_TAG, Name: body[:closing]}
	}

	name, params := token.SplitBody(body[:closing])
	return token.Token{Type: token.START_TAG, Name: name, Params: params}
}
