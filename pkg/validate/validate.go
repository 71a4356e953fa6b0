// Package validate holds the client-side field predicates that gate a
// registry submission. Every check is a pure function of its inputs; the
// caller decides how a failure is presented.
package validate

import (
	"errors"
	"regexp"
	"time"

	"github.com/nelsonberm/go-srtm/pkg/reportstamp"
)

// Report-timestamp failures are distinguished so the UI can tell the user
// whether the date is malformed, in the future, or past the retention window.
var (
	ErrStampMalformed = errors.New("validate: report timestamp is not a valid YYYYMMDDHHMMSS token")
	ErrStampInFuture  = errors.New("validate: report timestamp is in the future")
	ErrStampTooOld    = errors.New("validate: report timestamp is more than ten years old")
)

// emailPattern is a shape check, not RFC 5322: one @, a dot somewhere in the
// domain part, no whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IMEI reports whether s is a 15-digit identifier whose final digit matches
// the Luhn checksum of the first 14.
func IMEI(s string) bool {
	if len(s) != 15 {
		return false
	}
	sum := 0
	for i := 0; i < 14; i++ {
		d := int(s[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	last := int(s[14] - '0')
	if last < 0 || last > 9 {
		return false
	}
	return (10-sum%10)%10 == last
}

// Email reports whether s looks like an email address.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// CheckReportTimestamp validates a fecha_reporte token against now. The
// window is inclusive on the old side: a report exactly ten years old is
// still accepted, anything older is not.
func CheckReportTimestamp(s string, now time.Time) error {
	decoded, ok := reportstamp.Decode(s)
	if !ok {
		return ErrStampMalformed
	}
	if decoded.After(now) {
		return ErrStampInFuture
	}
	if decoded.Before(now.AddDate(-10, 0, 0)) {
		return ErrStampTooOld
	}
	return nil
}

// ReportTimestamp is the boolean form of CheckReportTimestamp.
func ReportTimestamp(s string, now time.Time) bool {
	return CheckReportTimestamp(s, now) == nil
}
