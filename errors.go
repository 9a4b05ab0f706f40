package ssml

import "strconv"

// A MalformedTagError reports a tag marker that was opened but never
// terminated before the end of the input. Remainder holds the unconsumed
// input starting at the offending marker.
type MalformedTagError struct {
	Remainder string
}

func (e *MalformedTagError) Error() string {
	return "ssml: malformed tag, no closing '}' in " + strconv.Quote(e.Remainder)
}
