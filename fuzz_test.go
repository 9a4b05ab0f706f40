//go:build go1.18

package ssml_test

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/KimNorgaard/go-ssml"
)

func isXMLForbidden(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return r < 0x20 || r == utf8.RuneError || r == 0xFFFE || r == 0xFFFF
}

func FuzzConvert(f *testing.F) {
	// Seed with inputs covering every lexical form and the known failure
	// mode, so the fuzzer starts from valid tag syntax.
	seeds := []string{
		"",
		"hey world",
		"${p} x ${/p}",
		"${break|strength=strong|time=4s}",
		"${amazon:effect|name=whisper}test${/amazon:effect}",
		"${amazon:auto-breaths|volume=x-loud|frequency=x-high|duration=x-long}LALALA${/amazon:auto-breaths}",
		"${phoneme|alphabet=ipa|ph=pɪˈkɑːn} pecan ${/phoneme}",
		`a $\{not a tag}`,
		"${bogus|key=value|half}text${/bogus}",
		"hello ${p",
		"${}${/}",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Conversion must never panic. It either fails with the malformed
		// tag error or produces a well-formed document.
		out, err := ssml.Convert(input)
		if err != nil {
			var malformed *ssml.MalformedTagError
			if !errors.As(err, &malformed) {
				t.Fatalf("Convert(%q) returned unexpected error type: %v", input, err)
			}
			if out != "" {
				t.Fatalf("Convert(%q) returned both output and error", input)
			}
			return
		}

		// Characters XML 1.0 forbids outright (control characters, broken
		// UTF-8) pass through conversion untouched, so only inputs without
		// them can promise a parseable document.
		if !utf8.ValidString(input) || strings.ContainsFunc(input, isXMLForbidden) {
			return
		}

		// Successful output must at least tokenize as XML. Author-driven
		// nesting mistakes are allowed, so only lexical well-formedness is
		// checked, not element balance.
		dec := xml.NewDecoder(strings.NewReader(out))
		dec.Entity = map[string]string{}
		for {
			_, err := dec.RawToken()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("Convert(%q) produced unparseable XML: %v\noutput: %s", input, err, out)
			}
		}
	})
}
