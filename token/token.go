package token

import "strings"

// Type is the type of a token.
type Type string

// Token represents one lexical item of the input text: a start tag, an end
// tag, or a run of literal text between tags.
type Token struct {
	Type    Type
	Name    string // tag name for START_TAG and END_TAG tokens
	Params  Params // start-tag parameters; nil for every other token type
	Literal string // text content for TEXT; unconsumed remainder for ILLEGAL
}

// Params holds the pipe-delimited parameters of a start tag. Keys are unique;
// a duplicate key overwrites the earlier value.
type Params map[string]string

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // a tag marker that is never terminated
	EOF     Type = "EOF"     // end of input

	START_TAG Type = "START_TAG" // ${name} or ${name|k=v|...}
	END_TAG   Type = "END_TAG"   // ${/name}
	TEXT      Type = "TEXT"      // a literal run of text
)

// SplitBody parses a start-tag body into its tag name and parameters.
//
// A body without a pipe is all name and carries no parameters. Otherwise the
// first pipe-delimited segment is the name and every following segment is a
// key=value pair: the key is the text before the first '=', the value is the
// text between the first and second '=', and anything after a second '=' is
// discarded. A segment with no '=' ends parameter parsing for the tag;
// whatever segments remain are discarded. This is deliberately best-effort:
// a half-typed parameter never fails the tag, it just stops contributing.
func SplitBody(body string) (string, Params) {
	if !strings.Contains(body, "|") {
		return body, nil
	}
	segments := strings.Split(body, "|")
	name := segments[0]
	params := make(Params)
	for _, seg := range segments[1:] {
		parts := strings.SplitN(seg, "=", 3)
		if len(parts) < 2 {
			break
		}
		params[parts[0]] = parts[1]
	}
	return name, params
}
