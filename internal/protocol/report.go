// internal/protocol/report.go
package protocol

import (
	"fmt"
	"time"
)

const (
	// ReportAddress is the register holding the automatic report interval.
	ReportAddress uint16 = 0x00FD
	// ReportQuantity is the register count of the interval value.
	ReportQuantity uint16 = 1

	// ReportSecondsMin is the lowest interval (0 = reporting disabled).
	ReportSecondsMin uint8 = 0
	// ReportSecondsMax is the highest interval in seconds.
	ReportSecondsMax uint8 = 255
)

// AutomaticReport is the unsolicited temperature report interval in seconds.
// Zero disables reporting (query mode); 1-255 set the period.
type AutomaticReport struct {
	seconds uint8
}

// ReportDisabled is the interval that turns automatic reporting off.
var ReportDisabled = AutomaticReport{seconds: 0}

// NewAutomaticReport builds an interval from a byte value. Every byte is a
// valid interval, so this cannot fail; use AutomaticReportFromDuration for
// checked construction from a duration.
func NewAutomaticReport(seconds uint8) AutomaticReport {
	return AutomaticReport{seconds: seconds}
}

// AutomaticReportFromDuration truncates the duration to whole seconds and
// validates that the result fits in a byte. The error cites the truncated
// second count, not the original sub-second duration.
func AutomaticReportFromDuration(d time.Duration) (AutomaticReport, error) {
	secs := uint64(d / time.Second)
	if secs > uint64(ReportSecondsMax) {
		return AutomaticReport{}, &DurationRangeError{Seconds: secs}
	}
	return AutomaticReport{seconds: uint8(secs)}, nil
}

// DecodeAutomaticReport decodes the interval from its register. The upper
// byte is reserved and must be zero; every lower-byte value is valid.
func DecodeAutomaticReport(words []Word) (AutomaticReport, error) {
	if len(words) != int(ReportQuantity) {
		return AutomaticReport{}, &LengthError{Expected: int(ReportQuantity), Got: len(words)}
	}
	w := words[0]
	if w&0xFF00 != 0 {
		return AutomaticReport{}, &DataError{
			Details: fmt.Sprintf("upper byte of automatic report register is non-zero (value: 0x%04X)", w),
		}
	}
	return AutomaticReport{seconds: uint8(w)}, nil
}

// Encode returns the register word for a write-interval request.
func (r AutomaticReport) Encode() Word {
	return Word(r.seconds)
}

// Seconds returns the interval in seconds; 0 means disabled.
func (r AutomaticReport) Seconds() uint8 {
	return r.seconds
}

// Duration returns the interval as a time.Duration.
func (r AutomaticReport) Duration() time.Duration {
	return time.Duration(r.seconds) * time.Second
}

// IsDisabled reports whether automatic reporting is off.
func (r AutomaticReport) IsDisabled() bool {
	return r.seconds == ReportSecondsMin
}

// String formats the interval with a seconds suffix, e.g. "10s".
func (r AutomaticReport) String() string {
	return fmt.Sprintf("%ds", r.seconds)
}
