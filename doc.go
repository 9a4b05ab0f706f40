/*
Package ssml converts author-friendly plain text into SSML for a speech
synthesis engine.

Authors write ordinary text and mark it up with lightweight ${tag} markers
instead of XML:

	out, err := ssml.Convert("${amazon:effect|name=whisper}a secret${/amazon:effect}")
	if err != nil {
		// handle error
	}
	// out is a full SSML document with the whisper effect around "a secret".

A start tag is written ${name} or ${name|key=value|key=value}; an end tag is
written ${/name}. To include a literal "${" in the spoken text, write "$\{".

Conversion is deliberately permissive. The only hard failure is a tag marker
that is never terminated before the input ends. Everything else — unknown
tag names, unknown attributes, values outside an attribute's accepted set,
missing required attributes — is silently dropped while the surrounding text
and tags keep flowing. The output is therefore always a complete document,
but it is the author's job to close what they open: unclosed tags stay
unclosed, and stray end tags still emit their closing element. Nothing is
balanced, fixed up, or validated against the SSML schema on the way out.

The writer subpackage is the XML layer underneath Convert and can be driven
directly to build SSML from a custom front end; the vocab subpackage holds
the recognized tag and attribute vocabulary.
*/
package ssml
