package vocab

import (
	"strconv"
	"strings"
)

// BreakStrength is the strength of a pause inserted by a break tag, per the
// SSML 1.1 break element.
type BreakStrength int

const (
	StrengthNone BreakStrength = iota
	StrengthXWeak
	StrengthWeak
	StrengthMedium
	StrengthStrong
	StrengthXStrong
)

func (s BreakStrength) String() string {
	switch s {
	case StrengthNone:
		return "none"
	case StrengthXWeak:
		return "x-weak"
	case StrengthWeak:
		return "weak"
	case StrengthMedium:
		return "medium"
	case StrengthStrong:
		return "strong"
	case StrengthXStrong:
		return "x-strong"
	}
	return ""
}

// ParseBreakStrength matches a break strength case-insensitively. The input
// spelling "break" is accepted for the canonical "none".
func ParseBreakStrength(s string) (BreakStrength, bool) {
	switch strings.ToLower(s) {
	case "break":
		return StrengthNone, true
	case "x-weak":
		return StrengthXWeak, true
	case "weak":
		return StrengthWeak, true
	case "medium":
		return StrengthMedium, true
	case "strong":
		return StrengthStrong, true
	case "x-strong":
		return StrengthXStrong, true
	}
	return 0, false
}

// BreakTime is the duration of a pause inserted by a break tag, in whole
// seconds or milliseconds.
type BreakTime struct {
	Time    uint32
	Seconds bool // false means milliseconds
}

func (t BreakTime) String() string {
	unit := "ms"
	if t.Seconds {
		unit = "s"
	}
	return strconv.FormatUint(uint64(t.Time), 10) + unit
}

// ParseBreakTime parses a duration of the form "<digits>s" or "<digits>ms".
// The digits must be a non-empty unsigned integer, with a single leading
// '+' allowed; a bare unit with no digits is rejected.
func ParseBreakTime(s string) (BreakTime, bool) {
	if digits, ok := strings.CutSuffix(s, "ms"); ok && s != "ms" {
		if n, ok := parseBreakDigits(digits); ok {
			return BreakTime{Time: n}, true
		}
		return BreakTime{}, false
	}
	if digits, ok := strings.CutSuffix(s, "s"); ok && s != "s" {
		if n, ok := parseBreakDigits(digits); ok {
			return BreakTime{Time: n, Seconds: true}, true
		}
	}
	return BreakTime{}, false
}

func parseBreakDigits(s string) (uint32, bool) {
	// An explicit '+' sign is accepted the way unsigned integer parsing
	// usually allows; '-' is not.
	if rest, ok := strings.CutPrefix(s, "+"); ok {
		s = rest
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// PhonemeAlphabet is the pronunciation alphabet of a phoneme tag.
type PhonemeAlphabet int

const (
	AlphabetIPA PhonemeAlphabet = iota
	AlphabetXSampa
)

func (a PhonemeAlphabet) String() string {
	if a == AlphabetXSampa {
		return "x-sampa"
	}
	return "ipa"
}

// ParsePhonemeAlphabet matches a phoneme alphabet case-insensitively.
func ParsePhonemeAlphabet(s string) (PhonemeAlphabet, bool) {
	switch strings.ToLower(s) {
	case "ipa":
		return AlphabetIPA, true
	case "x-sampa":
		return AlphabetXSampa, true
	}
	return 0, false
}

// ProsodyRate is the speaking rate of a prosody tag.
type ProsodyRate int

const (
	RateXSlow ProsodyRate = iota
	RateSlow
	RateMedium
	RateFast
	RateXFast
)

func (r ProsodyRate) String() string {
	switch r {
	case RateXSlow:
		return "x-slow"
	case RateSlow:
		return "slow"
	case RateMedium:
		return "medium"
	case RateFast:
		return "fast"
	case RateXFast:
		return "x-fast"
	}
	return ""
}

// ParseProsodyRate matches a prosody rate case-insensitively.
func ParseProsodyRate(s string) (ProsodyRate, bool) {
	switch strings.ToLower(s) {
	case "x-slow":
		return RateXSlow, true
	case "slow":
		return RateSlow, true
	case "medium":
		return RateMedium, true
	case "fast":
		return RateFast, true
	case "x-fast":
		return RateXFast, true
	}
	return 0, false
}

// WordRole disambiguates the sense of a word wrapped in a w tag. The
// canonical encodings keep Polly's mixed-case spellings.
type WordRole int

const (
	RoleVerb WordRole = iota
	RolePastTense
	RolePresentTense
)

func (r WordRole) String() string {
	switch r {
	case RoleVerb:
		return "amazon:VB"
	case RolePastTense:
		return "amazon:VBD"
	case RolePresentTense:
		return "amazon:SENSE_1"
	}
	return ""
}

// ParseWordRole matches a word role case-insensitively.
func ParseWordRole(s string) (WordRole, bool) {
	switch strings.ToLower(s) {
	case "amazon:vb":
		return RoleVerb, true
	case "amazon:vbd":
		return RolePastTense, true
	case "amazon:sense_1":
		return RolePresentTense, true
	}
	return 0, false
}

// Effect is a named amazon:effect, for the effects that take no value of
// their own.
type Effect int

const (
	EffectWhispered Effect = iota
	EffectDRC
)

func (e Effect) String() string {
	if e == EffectDRC {
		return "drc"
	}
	return "whispered"
}

// ParseEffect matches an effect name case-insensitively. Both "whisper" and
// "whispered" are accepted spellings for the whispered effect.
func ParseEffect(s string) (Effect, bool) {
	switch strings.ToLower(s) {
	case "whispered", "whisper":
		return EffectWhispered, true
	case "drc":
		return EffectDRC, true
	}
	return 0, false
}

// DomainName is the name attribute of an amazon:domain tag.
type DomainName int

const (
	DomainNews DomainName = iota
)

func (d DomainName) String() string {
	return "news"
}

// ParseDomainName matches a domain name case-insensitively.
func ParseDomainName(s string) (DomainName, bool) {
	if strings.ToLower(s) == "news" {
		return DomainNews, true
	}
	return 0, false
}

// Phonation is the phonation setting of an amazon:effect tag.
type Phonation int

const (
	PhonationSoft Phonation = iota
)

func (p Phonation) String() string {
	return "soft"
}

// ParsePhonation matches a phonation setting case-insensitively.
func ParsePhonation(s string) (Phonation, bool) {
	if strings.ToLower(s) == "soft" {
		return PhonationSoft, true
	}
	return 0, false
}

// BreathVolume is the volume of a breath for amazon:breath and
// amazon:auto-breaths.
type BreathVolume int

const (
	BreathVolumeDefault BreathVolume = iota
	BreathVolumeXSoft
	BreathVolumeSoft
	BreathVolumeMedium
	BreathVolumeLoud
	BreathVolumeXLoud
)

func (v BreathVolume) String() string {
	switch v {
	case BreathVolumeDefault:
		return "default"
	case BreathVolumeXSoft:
		return "x-soft"
	case BreathVolumeSoft:
		return "soft"
	case BreathVolumeMedium:
		return "medium"
	case BreathVolumeLoud:
		return "loud"
	case BreathVolumeXLoud:
		return "x-loud"
	}
	return ""
}

// ParseBreathVolume matches a breath volume case-insensitively. The empty
// string parses as the default, so an absent attribute falls through to
// volume="default".
func ParseBreathVolume(s string) (BreathVolume, bool) {
	switch strings.ToLower(s) {
	case "default", "":
		return BreathVolumeDefault, true
	case "x-soft":
		return BreathVolumeXSoft, true
	case "soft":
		return BreathVolumeSoft, true
	case "medium":
		return BreathVolumeMedium, true
	case "loud":
		return BreathVolumeLoud, true
	case "x-loud":
		return BreathVolumeXLoud, true
	}
	return 0, false
}

// BreathDuration is the length of a breath for amazon:breath and
// amazon:auto-breaths.
type BreathDuration int

const (
	BreathDurationDefault BreathDuration = iota
	BreathDurationXShort
	BreathDurationShort
	BreathDurationMedium
	BreathDurationLong
	BreathDurationXLong
)

func (d BreathDuration) String() string {
	switch d {
	case BreathDurationDefault:
		return "default"
	case BreathDurationXShort:
		return "x-short"
	case BreathDurationShort:
		return "short"
	case BreathDurationMedium:
		return "medium"
	case BreathDurationLong:
		return "long"
	case BreathDurationXLong:
		return "x-long"
	}
	return ""
}

// ParseBreathDuration matches a breath duration case-insensitively. The
// empty string parses as the default.
func ParseBreathDuration(s string) (BreathDuration, bool) {
	switch strings.ToLower(s) {
	case "default", "":
		return BreathDurationDefault, true
	case "x-short":
		return BreathDurationXShort, true
	case "short":
		return BreathDurationShort, true
	case "medium":
		return BreathDurationMedium, true
	case "long":
		return BreathDurationLong, true
	case "x-long":
		return BreathDurationXLong, true
	}
	return 0, false
}

// BreathFrequency is how often automatic breathing occurs for
// amazon:auto-breaths.
type BreathFrequency int

const (
	BreathFrequencyDefault BreathFrequency = iota
	BreathFrequencyXLow
	BreathFrequencyLow
	BreathFrequencyMedium
	BreathFrequencyHigh
	BreathFrequencyXHigh
)

func (f BreathFrequency) String() string {
	switch f {
	case BreathFrequencyDefault:
		return "default"
	case BreathFrequencyXLow:
		return "x-low"
	case BreathFrequencyLow:
		return "low"
	case BreathFrequencyMedium:
		return "medium"
	case BreathFrequencyHigh:
		return "high"
	case BreathFrequencyXHigh:
		return "x-high"
	}
	return ""
}

// ParseBreathFrequency matches a breath frequency case-insensitively. The
// empty string parses as the default.
func ParseBreathFrequency(s string) (BreathFrequency, bool) {
	switch strings.ToLower(s) {
	case "default", "":
		return BreathFrequencyDefault, true
	case "x-low":
		return BreathFrequencyXLow, true
	case "low":
		return BreathFrequencyLow, true
	case "medium":
		return BreathFrequencyMedium, true
	case "high":
		return BreathFrequencyHigh, true
	case "x-high":
		return BreathFrequencyXHigh, true
	}
	return 0, false
}
