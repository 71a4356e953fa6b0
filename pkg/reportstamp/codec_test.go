package reportstamp_test

import (
	"testing"
	"time"

	"github.com/nelsonberm/go-srtm/pkg/reportstamp"
)

func TestDecodeRoundTrip(t *testing.T) {
	token := reportstamp.Now()
	decoded, ok := reportstamp.Decode(token)
	if !ok {
		t.Fatalf("Decode(%q) failed", token)
	}
	if got := reportstamp.Encode(decoded); got != token {
		t.Fatalf("round trip mismatch: encoded %q, got %q", token, got)
	}
}

func TestDecodeKnownInstant(t *testing.T) {
	decoded, ok := reportstamp.Decode("20241025143000")
	if !ok {
		t.Fatal("Decode rejected a valid token")
	}
	want := time.Date(2024, time.October, 25, 14, 30, 0, 0, time.Local)
	if !decoded.Equal(want) {
		t.Fatalf("decoded %v, want %v", decoded, want)
	}
}

func TestDecodeRejectsInvalidTokens(t *testing.T) {
	cases := []struct {
		name  string
		token string
	}{
		{"too short", "2024102514300"},
		{"too long", "202410251430000"},
		{"non digits", "2024102514300a"},
		{"february 30th", "20240230000000"},
		{"month 13", "20241325143000"},
		{"hour 24", "20241025240000"},
		{"minute 60", "20241025146000"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := reportstamp.Decode(tc.token); ok {
				t.Fatalf("Decode(%q) accepted an invalid token", tc.token)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	if got := reportstamp.Format("20241025143000"); got != "25 de octubre de 2024, 14:30:00" {
		t.Fatalf("unexpected long form: %q", got)
	}
	if got := reportstamp.Format("20240230000000"); got != reportstamp.InvalidMarker {
		t.Fatalf("invalid token formatted as %q, want marker", got)
	}
}

func TestFormatTransaction(t *testing.T) {
	cases := []struct {
		name  string
		stamp string
		want  string
	}{
		{"server form with millis", "2024-10-25 14:30:00.123", "25 de octubre de 2024, 14:30:00"},
		{"server form without millis", "2024-10-25 14:30:00", "25 de octubre de 2024, 14:30:00"},
		{"report token", "20241025143000", "25 de octubre de 2024, 14:30:00"},
		{"unknown shape passes through", "25/10/2024 14:30", "25/10/2024 14:30"},
		{"empty passes through", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reportstamp.FormatTransaction(tc.stamp); got != tc.want {
				t.Fatalf("FormatTransaction(%q) = %q, want %q", tc.stamp, got, tc.want)
			}
		})
	}
}
