package ssml

import (
	"strings"

	"github.com/KimNorgaard/go-ssml/lexer"
	"github.com/KimNorgaard/go-ssml/token"
	"github.com/KimNorgaard/go-ssml/vocab"
	"github.com/KimNorgaard/go-ssml/writer"
)

// Convert renders the marked-up input text as a complete SSML document.
//
// Each call is independent and owns its own output buffer. The result is the
// rendered document, or a *MalformedTagError if a tag marker is opened and
// never terminated — the only way a conversion fails. Tags that do not
// resolve against the vocabulary, and attributes that do not validate, are
// dropped without error.
func Convert(input string, opts ...Option) (string, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return "", err
		}
	}

	w := writer.New()
	w.StartSpeak(o.lang, o.onLangFailure)

	l := lexer.New(input)
	for tok := l.Next(); tok.Type != token.EOF; tok = l.Next() {
		switch tok.Type {
		case token.ILLEGAL:
			return "", &MalformedTagError{Remainder: tok.Literal}
		case token.START_TAG:
			startTag(w, tok)
		case token.END_TAG:
			endTag(w, tok.Name)
		case token.TEXT:
			// Reverse the authoring escape for a literal opener marker.
			w.Text(strings.ReplaceAll(tok.Literal, `$\{`, "${"))
		}
	}

	w.EndSpeak()
	return w.String(), nil
}

// startTag resolves one start tag against the vocabulary and emits its
// element. Unknown tags, missing required attributes, and enum values
// outside their accepted sets drop the tag; an optional attribute that fails
// validation is omitted on its own without taking the tag down.
func startTag(w *writer.Writer, tok token.Token) { //nolint:gocognit
	kind, ok := vocab.ParseOpenTag(tok.Name)
	if !ok {
		return
	}
	params := tok.Params

	switch kind {
	case vocab.OpenBreak:
		var attrs []writer.Attr
		if raw, ok := params["strength"]; ok {
			if strength, ok := vocab.ParseBreakStrength(raw); ok {
				attrs = append(attrs, writer.Attr{Key: "strength", Value: strength.String()})
			}
		}
		if raw, ok := params["time"]; ok {
			if bt, ok := vocab.ParseBreakTime(raw); ok {
				attrs = append(attrs, writer.Attr{Key: "time", Value: bt.String()})
			}
		}
		w.Break(attrs...)

	case vocab.OpenLang:
		lang, ok := params["lang"]
		if !ok {
			return
		}
		onLangFailure, ok := params["onlangfailure"]
		if !ok {
			onLangFailure = writer.DefaultOnLangFailure
		}
		w.StartLang(lang, onLangFailure)

	case vocab.OpenMark:
		name, ok := params["name"]
		if !ok {
			return
		}
		w.StartMark(name)

	case vocab.OpenParagraph:
		w.StartParagraph()

	case vocab.OpenPhoneme:
		rawAlphabet, okAlphabet := params["alphabet"]
		ph, okPh := params["ph"]
		if !okAlphabet || !okPh {
			return
		}
		alphabet, ok := vocab.ParsePhonemeAlphabet(rawAlphabet)
		if !ok {
			return
		}
		w.StartPhoneme(alphabet.String(), ph)

	case vocab.OpenProsody:
		var attrs []writer.Attr
		if volume, ok := params["volume"]; ok {
			attrs = append(attrs, writer.Attr{Key: "volume", Value: volume})
		}
		if raw, ok := params["rate"]; ok {
			if rate, ok := vocab.ParseProsodyRate(raw); ok {
				attrs = append(attrs, writer.Attr{Key: "rate", Value: rate.String()})
			}
		}
		if pitch, ok := params["pitch"]; ok {
			attrs = append(attrs, writer.Attr{Key: "pitch", Value: pitch})
		}
		// A prosody tag with nothing valid left is the writer's one
		// structural error; it emits nothing and conversion carries on.
		_ = w.StartProsody(attrs...)

	case vocab.OpenSentence:
		w.StartSentence()

	case vocab.OpenSayAs:
		interpretAs, ok := params["interpret-as"]
		if !ok {
			return
		}
		w.StartSayAs(interpretAs)

	case vocab.OpenSub:
		alias, ok := params["alias"]
		if !ok {
			return
		}
		w.StartSub(alias)

	case vocab.OpenWord:
		raw, ok := params["role"]
		if !ok {
			return
		}
		if role, ok := vocab.ParseWordRole(raw); ok {
			w.StartWord(role.String())
		}

	case vocab.OpenAmazonEffect:
		// One element, three mutually exclusive selection modes, picked by
		// key presence in fixed priority order. A present name that fails to
		// parse drops the tag; the later modes are not consulted.
		if raw, ok := params["name"]; ok {
			if effect, ok := vocab.ParseEffect(raw); ok {
				w.StartEffect(effect.String())
			}
			return
		}
		if factor, ok := params["vocal-tract-length"]; ok {
			w.StartVocalTractLength(factor)
			return
		}
		if raw, ok := params["phonation"]; ok {
			if phonation, ok := vocab.ParsePhonation(raw); ok {
				w.StartPhonation(phonation.String())
			}
		}

	case vocab.OpenAmazonAutoBreaths:
		volume, okVolume := vocab.ParseBreathVolume(params["volume"])
		frequency, okFrequency := vocab.ParseBreathFrequency(params["frequency"])
		duration, okDuration := vocab.ParseBreathDuration(params["duration"])
		if okVolume && okFrequency && okDuration {
			w.StartAutoBreaths(volume.String(), frequency.String(), duration.String())
		}

	case vocab.OpenAmazonBreath:
		volume, okVolume := vocab.ParseBreathVolume(params["volume"])
		duration, okDuration := vocab.ParseBreathDuration(params["duration"])
		if okVolume && okDuration {
			w.Breath(volume.String(), duration.String())
		}

	case vocab.OpenAmazonDomain:
		if name, ok := vocab.ParseDomainName(params["name"]); ok {
			w.StartDomain(name.String())
		}
	}
}

// endTag emits the closing element for a recognized end tag. No check is
// made that a matching open was ever emitted.
func endTag(w *writer.Writer, name string) {
	kind, ok := vocab.ParseCloseTag(name)
	if !ok {
		return
	}
	switch kind {
	case vocab.CloseLang:
		w.EndLang()
	case vocab.CloseMark:
		w.EndMark()
	case vocab.CloseParagraph:
		w.EndParagraph()
	case vocab.ClosePhoneme:
		w.EndPhoneme()
	case vocab.CloseProsody:
		w.EndProsody()
	case vocab.CloseSentence:
		w.EndSentence()
	case vocab.CloseSayAs:
		w.EndSayAs()
	case vocab.CloseSub:
		w.EndSub()
	case vocab.CloseWord:
		w.EndWord()
	case vocab.CloseAmazonEffect:
		w.EndEffect()
	case vocab.CloseAmazonAutoBreaths:
		w.EndAutoBreaths()
	case vocab.CloseAmazonDomain:
		w.EndDomain()
	}
}
