// Package writer renders SSML as a flat stream of XML events.
//
// The writer is an append-only buffer: elements are opened, closed and
// written strictly in call order, and nothing is balanced or validated on
// the way out. Render what you put in; if you leave a tag open, the output
// has an open tag. The per-tag methods cover the element inventory the
// conversion layer needs, but the generic StartElement, EndElement,
// EmptyElement and Text methods are enough to drive the writer from a
// custom front end.
package writer

import (
	"bytes"
	"errors"
	"strings"
)

// Default attributes of the speak root element.
const (
	DefaultLang          = "en-US"
	DefaultOnLangFailure = "processorchoice"

	xmlnsSynthesis = "http://www.w3.org/2001/10/synthesis"
	xmlnsXSI       = "http://www.w3.org/2001/XMLSchema-instance"
)

// escaper rewrites the five XML special characters to entity references. It
// is applied to text nodes and attribute values alike.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&apos;",
	`"`, "&quot;",
)

// Attr is a single element attribute. Attribute order is significant: attrs
// are written in the order given.
type Attr struct {
	Key   string
	Value string
}

// Writer accumulates an SSML document. The zero value is not usable; New
// writes the XML declaration the document must begin with.
type Writer struct {
	buf bytes.Buffer
}

// New creates a Writer holding the fixed declaration preamble
// <?xml version="1.0"?>.
func New() *Writer {
	w := &Writer{}
	w.buf.WriteString(`<?xml version="1.0"?>`)
	return w
}

// String renders the document in its current state. It has no side effects
// and may be called repeatedly; open elements are not closed for you.
func (w *Writer) String() string {
	return w.buf.String()
}

// StartElement writes an opening element with the given attributes.
func (w *Writer) StartElement(name string, attrs ...Attr) {
	w.writeTag(name, attrs, false)
}

// EndElement writes a closing element.
func (w *Writer) EndElement(name string) {
	w.buf.WriteString("</")
	w.buf.WriteString(name)
	w.buf.WriteByte('>')
}

// EmptyElement writes a self-closing element with the given attributes.
func (w *Writer) EmptyElement(name string, attrs ...Attr) {
	w.writeTag(name, attrs, true)
}

// Text writes a text node, escaping XML special characters.
func (w *Writer) Text(s string) {
	escaper.WriteString(&w.buf, s) //nolint:errcheck // bytes.Buffer cannot fail
}

func (w *Writer) writeTag(name string, attrs []Attr, selfClose bool) {
	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	for _, a := range attrs {
		w.buf.WriteByte(' ')
		w.buf.WriteString(a.Key)
		w.buf.WriteString(`="`)
		escaper.WriteString(&w.buf, a.Value) //nolint:errcheck
		w.buf.WriteByte('"')
	}
	if selfClose {
		w.buf.WriteByte('/')
	}
	w.buf.WriteByte('>')
}

// StartSpeak opens the speak root element. Empty lang and onLangFailure fall
// back to the fixed defaults; the synthesis namespace declarations are
// always present.
func (w *Writer) StartSpeak(lang, onLangFailure string) {
	if lang == "" {
		lang = DefaultLang
	}
	if onLangFailure == "" {
		onLangFailure = DefaultOnLangFailure
	}
	w.StartElement("speak",
		Attr{"xml:lang", lang},
		Attr{"onlangfailure", onLangFailure},
		Attr{"xmlns", xmlnsSynthesis},
		Attr{"xmlns:xsi", xmlnsXSI},
	)
}

// EndSpeak closes the speak root element.
func (w *Writer) EndSpeak() {
	w.EndElement("speak")
}

// Break writes a self-closing break element. Strength and time attributes
// are supplied by the caller; with none the bare <break/> still renders.
func (w *Writer) Break(attrs ...Attr) {
	w.EmptyElement("break", attrs...)
}

// StartLang opens a lang element for a span spoken in another language.
func (w *Writer) StartLang(lang, onLangFailure string) {
	w.StartElement("lang", Attr{"xml:lang", lang}, Attr{"onlangfailure", onLangFailure})
}

// EndLang closes a lang element.
func (w *Writer) EndLang() {
	w.EndElement("lang")
}

// StartMark opens a mark element, a named marker reported back in the
// synthesis metadata without affecting the voice.
func (w *Writer) StartMark(name string) {
	w.StartElement("mark", Attr{"name", name})
}

// EndMark closes a mark element.
func (w *Writer) EndMark() {
	w.EndElement("mark")
}

// StartParagraph opens a p element.
func (w *Writer) StartParagraph() {
	w.StartElement("p")
}

// EndParagraph closes a p element.
func (w *Writer) EndParagraph() {
	w.EndElement("p")
}

// StartPhoneme opens a phoneme element giving an exact pronunciation in the
// given alphabet.
func (w *Writer) StartPhoneme(alphabet, ph string) {
	w.StartElement("phoneme", Attr{"alphabet", alphabet}, Attr{"ph", ph})
}

// EndPhoneme closes a phoneme element.
func (w *Writer) EndPhoneme() {
	w.EndElement("phoneme")
}

// StartProsody opens a prosody element. At least one attribute is required;
// a prosody element with nothing to say about volume, rate or pitch is a
// structural error and nothing is written.
func (w *Writer) StartProsody(attrs ...Attr) error {
	if len(attrs) == 0 {
		return errors.New("prosody element requires at least one attribute")
	}
	w.StartElement("prosody", attrs...)
	return nil
}

// EndProsody closes a prosody element.
func (w *Writer) EndProsody() {
	w.EndElement("prosody")
}

// StartSentence opens an s element.
func (w *Writer) StartSentence() {
	w.StartElement("s")
}

// EndSentence closes an s element.
func (w *Writer) EndSentence() {
	w.EndElement("s")
}

// StartSayAs opens a say-as element. The interpret-as value is passed
// through verbatim; the downstream engine's accepted set changes too often
// to pin down here.
func (w *Writer) StartSayAs(interpretAs string) {
	w.StartElement("say-as", Attr{"interpret-as", interpretAs})
}

// EndSayAs closes a say-as element.
func (w *Writer) EndSayAs() {
	w.EndElement("say-as")
}

// StartSub opens a sub element substituting the spoken alias for the
// written content.
func (w *Writer) StartSub(alias string) {
	w.StartElement("sub", Attr{"alias", alias})
}

// EndSub closes a sub element.
func (w *Writer) EndSub() {
	w.EndElement("sub")
}

// StartWord opens a w element with the given role.
func (w *Writer) StartWord(role string) {
	w.StartElement("w", Attr{"role", role})
}

// EndWord closes a w element.
func (w *Writer) EndWord() {
	w.EndElement("w")
}

// StartEffect opens an amazon:effect element selected by name.
func (w *Writer) StartEffect(name string) {
	w.StartElement("amazon:effect", Attr{"name", name})
}

// StartVocalTractLength opens an amazon:effect element selected by a
// vocal-tract-length factor.
func (w *Writer) StartVocalTractLength(factor string) {
	w.StartElement("amazon:effect", Attr{"vocal-tract-length", factor})
}

// StartPhonation opens an amazon:effect element selected by a phonation
// setting.
func (w *Writer) StartPhonation(phonation string) {
	w.StartElement("amazon:effect", Attr{"phonation", phonation})
}

// EndEffect closes an amazon:effect element, whichever way it was opened.
func (w *Writer) EndEffect() {
	w.EndElement("amazon:effect")
}

// StartAutoBreaths opens an amazon:auto-breaths element. All three
// attributes are always written.
func (w *Writer) StartAutoBreaths(volume, frequency, duration string) {
	w.StartElement("amazon:auto-breaths",
		Attr{"volume", volume},
		Attr{"frequency", frequency},
		Attr{"duration", duration},
	)
}

// EndAutoBreaths closes an amazon:auto-breaths element.
func (w *Writer) EndAutoBreaths() {
	w.EndElement("amazon:auto-breaths")
}

// Breath writes a self-closing amazon:breath element.
func (w *Writer) Breath(volume, duration string) {
	w.EmptyElement("amazon:breath", Attr{"volume", volume}, Attr{"duration", duration})
}

// StartDomain opens an amazon:domain element.
func (w *Writer) StartDomain(name string) {
	w.StartElement("amazon:domain", Attr{"name", name})
}

// EndDomain closes an amazon:domain element.
func (w *Writer) EndDomain() {
	w.EndElement("amazon:domain")
}
