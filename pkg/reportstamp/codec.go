// Package reportstamp encodes and decodes the 14-digit report timestamps
// (YYYYMMDDHHmmss) carried by SRTM registry operations, most notably the
// fecha_reporte field of a negative-report cancellation.
package reportstamp

import (
	"fmt"
	"time"
)

// Layout is the wire format of a report timestamp.
const Layout = "20060102150405"

// InvalidMarker is what Format returns for tokens that do not decode.
const InvalidMarker = "Fecha inválida"

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Now encodes the current local date-time as a report timestamp.
func Now() string {
	return time.Now().Format(Layout)
}

// Encode renders t as a report timestamp in t's own location.
func Encode(t time.Time) string {
	return t.Format(Layout)
}

// Decode parses a report timestamp into a local time. The second return is
// false when the token is not exactly 14 digits or does not name a real
// calendar date-time. A token that only parses after normalisation (month 13
// rolling into the next year, Feb 30 becoming Mar 2) is rejected, not
// silently corrected.
func Decode(s string) (time.Time, bool) {
	if len(s) != 14 {
		return time.Time{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, false
		}
	}
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	if t.Format(Layout) != s {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a valid token in long form ("25 de octubre de 2024, 14:30:00")
// or InvalidMarker when the token does not decode.
func Format(s string) string {
	t, ok := Decode(s)
	if !ok {
		return InvalidMarker
	}
	return longForm(t)
}

// transactionLayouts covers the API's transaction_timestamp wire forms:
// millisecond precision as the wrapper emits it, plus a plain
// second-precision variant.
var transactionLayouts = []string{
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
}

// FormatTransaction renders a transaction timestamp for display. It
// accepts both the API's "2006-01-02 15:04:05.000" form and the local
// 14-digit report form; anything else passes through verbatim instead
// of being masked.
func FormatTransaction(s string) string {
	if t, ok := Decode(s); ok {
		return longForm(t)
	}
	for _, layout := range transactionLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return longForm(t)
		}
	}
	return s
}

func longForm(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d, %02d:%02d:%02d",
		t.Day(), monthNames[t.Month()-1], t.Year(),
		t.Hour(), t.Minute(), t.Second())
}
