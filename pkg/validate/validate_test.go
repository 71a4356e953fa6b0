package validate_test

import (
	"errors"
	"testing"
	"time"

	"github.com/nelsonberm/go-srtm/pkg/reportstamp"
	"github.com/nelsonberm/go-srtm/pkg/validate"
)

func TestIMEI(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"valid checksum", "490154203237518", true},
		{"checksum off by one", "490154203237519", false},
		{"fourteen digits", "49015420323751", false},
		{"sixteen digits", "4901542032375181", false},
		{"letters", "49015420323751a", false},
		{"all zeros", "000000000000000", true},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := validate.IMEI(tc.in); got != tc.want {
				t.Fatalf("IMEI(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

// Every 15-digit string with the checksum recomputed over its first 14 digits
// must validate; flipping the final digit must not.
func TestIMEIChecksumProperty(t *testing.T) {
	prefixes := []string{
		"49015420323751",
		"35209900176148",
		"86205505944749",
		"00000000000001",
		"99999999999999",
	}
	for _, prefix := range prefixes {
		sum := 0
		for i := 0; i < 14; i++ {
			d := int(prefix[i] - '0')
			if i%2 == 1 {
				d *= 2
				if d > 9 {
					d -= 9
				}
			}
			sum += d
		}
		check := (10 - sum%10) % 10
		valid := prefix + string(rune('0'+check))
		if !validate.IMEI(valid) {
			t.Fatalf("IMEI(%q) rejected a well-formed identifier", valid)
		}
		wrong := prefix + string(rune('0'+(check+1)%10))
		if validate.IMEI(wrong) {
			t.Fatalf("IMEI(%q) accepted a broken checksum", wrong)
		}
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"nelsonberm@gmail.com", true},
		{"a@b.co", true},
		{"user.name@sub.example.org", true},
		{"no-at-sign.com", false},
		{"two@@signs.com", false},
		{"spaces in@address.com", false},
		{"missing@dot", false},
		{"@example.com", false},
		{"user@.", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validate.Email(tc.in); got != tc.want {
			t.Fatalf("Email(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCheckReportTimestamp(t *testing.T) {
	now := time.Date(2024, time.October, 25, 14, 30, 0, 0, time.Local)

	t.Run("current instant is valid", func(t *testing.T) {
		if err := validate.CheckReportTimestamp(reportstamp.Encode(now), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("future is rejected", func(t *testing.T) {
		token := reportstamp.Encode(now.Add(time.Second))
		if err := validate.CheckReportTimestamp(token, now); !errors.Is(err, validate.ErrStampInFuture) {
			t.Fatalf("got %v, want ErrStampInFuture", err)
		}
	})

	t.Run("ten years minus a second is valid", func(t *testing.T) {
		token := reportstamp.Encode(now.AddDate(-10, 0, 0).Add(time.Second))
		if err := validate.CheckReportTimestamp(token, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("exactly ten years is valid", func(t *testing.T) {
		token := reportstamp.Encode(now.AddDate(-10, 0, 0))
		if err := validate.CheckReportTimestamp(token, now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("older than ten years is rejected", func(t *testing.T) {
		token := reportstamp.Encode(now.AddDate(-10, 0, 0).Add(-time.Second))
		if err := validate.CheckReportTimestamp(token, now); !errors.Is(err, validate.ErrStampTooOld) {
			t.Fatalf("got %v, want ErrStampTooOld", err)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		if err := validate.CheckReportTimestamp("20240230000000", now); !errors.Is(err, validate.ErrStampMalformed) {
			t.Fatalf("got %v, want ErrStampMalformed", err)
		}
	})
}
