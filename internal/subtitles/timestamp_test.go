package subtitles

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimestamp_Valid(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:00:01,123", 1123 * time.Millisecond},
		{"00:01:05,000", 65 * time.Second},
		{"01:01:01,001", time.Hour + time.Minute + time.Second + time.Millisecond},
		{"23:59:59,999", 23*time.Hour + 59*time.Minute + 59*time.Second + 999*time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseTimestamp(tc.in)
			if err != nil {
				t.Fatalf("parseTimestamp(%q) error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("parseTimestamp(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseTimestamp_OutOfRange(t *testing.T) {
	// bornes strptime : heures 00-23, minutes/secondes 00-59
	tests := []string{
		"24:00:00,000",
		"00:60:00,000",
		"00:99:00,000",
		"00:00:60,000",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := parseTimestamp(in)
			if err == nil {
				t.Fatalf("parseTimestamp(%q) : erreur attendue, obtenu nil", in)
			}
			var mErr *MalformedTimestampError
			if !errors.As(err, &mErr) {
				t.Fatalf("erreur de type %T; want *MalformedTimestampError", err)
			}
			if mErr.Value != in {
				t.Errorf("MalformedTimestampError.Value = %q; want %q", mErr.Value, in)
			}
		})
	}
}

func TestReTimestampLine(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		match bool
	}{
		{"nominal", "00:00:01,000 --> 00:00:02,000", true},
		{"crlf suffix", "00:00:01,000 --> 00:00:02,000\r", true},
		{"position hints ignored", "00:00:01,000 --> 00:00:02,000 X1:0 X2:100", true},
		{"texte", "Hello world", false},
		{"point au lieu de virgule", "00:00:01.000 --> 00:00:02.000", false},
		{"pas en début de ligne", " 00:00:01,000 --> 00:00:02,000", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := reTimestampLine.MatchString(tc.line); got != tc.match {
				t.Errorf("MatchString(%q) = %v; want %v", tc.line, got, tc.match)
			}
		})
	}
}
