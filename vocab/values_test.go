package vocab_test

import (
	"testing"

	"github.com/KimNorgaard/go-ssml/vocab"
	"github.com/stretchr/testify/require"
)

func TestParseBreakStrength(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"break", "none", true},
		{"x-weak", "x-weak", true},
		{"weak", "weak", true},
		{"medium", "medium", true},
		{"strong", "strong", true},
		{"x-strong", "x-strong", true},
		{"X-STRONG", "x-strong", true},
		{"none", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, ok := vocab.ParseBreakStrength(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.expected, s.String())
			}
		})
	}
}

func TestParseBreakTime(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"4s", "4s", true},
		{"10s", "10s", true},
		{"300ms", "300ms", true},
		{"0ms", "0ms", true},
		// A single explicit '+' parses; the canonical form drops it.
		{"+5s", "5s", true},
		{"+300ms", "300ms", true},
		{"++5s", "", false},
		{"+s", "", false},
		{"+ms", "", false},
		// A bare unit with no digits is not a duration.
		{"s", "", false},
		{"ms", "", false},
		{"", "", false},
		{"4", "", false},
		{"-4s", "", false},
		{"4.5s", "", false},
		{"fourms", "", false},
		{"4S", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bt, ok := vocab.ParseBreakTime(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.expected, bt.String())
			}
		})
	}
}

func TestParseProsodyRate(t *testing.T) {
	for _, want := range []string{"x-slow", "slow", "medium", "fast", "x-fast"} {
		r, ok := vocab.ParseProsodyRate(want)
		require.True(t, ok)
		require.Equal(t, want, r.String())
	}

	r, ok := vocab.ParseProsodyRate("X-Fast")
	require.True(t, ok)
	require.Equal(t, "x-fast", r.String())

	_, ok = vocab.ParseProsodyRate("warp")
	require.False(t, ok)
}

func TestParsePhonemeAlphabet(t *testing.T) {
	a, ok := vocab.ParsePhonemeAlphabet("IPA")
	require.True(t, ok)
	require.Equal(t, "ipa", a.String())

	a, ok = vocab.ParsePhonemeAlphabet("x-sampa")
	require.True(t, ok)
	require.Equal(t, "x-sampa", a.String())

	_, ok = vocab.ParsePhonemeAlphabet("arpabet")
	require.False(t, ok)
}

func TestParseWordRole(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"amazon:VB", "amazon:VB", true},
		{"amazon:vb", "amazon:VB", true},
		{"amazon:vbd", "amazon:VBD", true},
		{"AMAZON:SENSE_1", "amazon:SENSE_1", true},
		{"noun", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := vocab.ParseWordRole(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.expected, r.String())
			}
		})
	}
}

func TestParseEffect(t *testing.T) {
	// Both spellings are accepted for a single canonical encoding.
	for _, in := range []string{"whisper", "whispered", "WHISPER"} {
		e, ok := vocab.ParseEffect(in)
		require.True(t, ok)
		require.Equal(t, "whispered", e.String())
	}

	e, ok := vocab.ParseEffect("drc")
	require.True(t, ok)
	require.Equal(t, "drc", e.String())

	_, ok = vocab.ParseEffect("reverb")
	require.False(t, ok)
}

func TestParseDomainName(t *testing.T) {
	d, ok := vocab.ParseDomainName("News")
	require.True(t, ok)
	require.Equal(t, "news", d.String())

	_, ok = vocab.ParseDomainName("sports")
	require.False(t, ok)
}

func TestParsePhonation(t *testing.T) {
	p, ok := vocab.ParsePhonation("Soft")
	require.True(t, ok)
	require.Equal(t, "soft", p.String())

	_, ok = vocab.ParsePhonation("hard")
	require.False(t, ok)
}

func TestParseBreathValues(t *testing.T) {
	t.Run("volume", func(t *testing.T) {
		for in, want := range map[string]string{
			"":        "default",
			"default": "default",
			"x-soft":  "x-soft",
			"soft":    "soft",
			"medium":  "medium",
			"loud":    "loud",
			"X-LOUD":  "x-loud",
		} {
			v, ok := vocab.ParseBreathVolume(in)
			require.True(t, ok, "input %q", in)
			require.Equal(t, want, v.String())
		}
		_, ok := vocab.ParseBreathVolume("silent")
		require.False(t, ok)
	})

	t.Run("duration", func(t *testing.T) {
		for in, want := range map[string]string{
			"":        "default",
			"x-short": "x-short",
			"short":   "short",
			"medium":  "medium",
			"long":    "long",
			"X-Long":  "x-long",
		} {
			d, ok := vocab.ParseBreathDuration(in)
			require.True(t, ok, "input %q", in)
			require.Equal(t, want, d.String())
		}
		_, ok := vocab.ParseBreathDuration("forever")
		require.False(t, ok)
	})

	t.Run("frequency", func(t *testing.T) {
		for in, want := range map[string]string{
			"":       "default",
			"x-low":  "x-low",
			"low":    "low",
			"medium": "medium",
			"high":   "high",
			"X-High": "x-high",
		} {
			f, ok := vocab.ParseBreathFrequency(in)
			require.True(t, ok, "input %q", in)
			require.Equal(t, want, f.String())
		}
		_, ok := vocab.ParseBreathFrequency("never")
		require.False(t, ok)
	})
}
