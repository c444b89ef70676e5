// internal/protocol/report_test.go
package protocol

import (
	"errors"
	"testing"
	"time"
)

func TestDecodeAutomaticReport(t *testing.T) {
	cases := []struct {
		word Word
		want uint8
	}{
		{0x0000, 0},
		{0x0001, 1},
		{0x000A, 10},
		{0x00FF, 255},
	}
	for _, c := range cases {
		report, err := DecodeAutomaticReport([]Word{c.word})
		if err != nil {
			t.Fatalf("DecodeAutomaticReport(0x%04X) err=%v", c.word, err)
		}
		if report.Seconds() != c.want {
			t.Fatalf("Seconds() = %d, want %d", report.Seconds(), c.want)
		}
	}
}

func TestDecodeAutomaticReportInvalid(t *testing.T) {
	_, err := DecodeAutomaticReport([]Word{0x0100})
	var dataErr *DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("DecodeAutomaticReport(0x0100) err=%v, want *DataError", err)
	}

	_, err = DecodeAutomaticReport(nil)
	var lenErr *LengthError
	if !errors.As(err, &lenErr) {
		t.Fatalf("DecodeAutomaticReport(nil) err=%v, want *LengthError", err)
	}
}

func TestEncodeAutomaticReport(t *testing.T) {
	for _, secs := range []uint8{0, 1, 10, 255} {
		if got := NewAutomaticReport(secs).Encode(); got != Word(secs) {
			t.Fatalf("NewAutomaticReport(%d).Encode() = %d", secs, got)
		}
	}
	if got := ReportDisabled.Encode(); got != 0 {
		t.Fatalf("ReportDisabled.Encode() = %d", got)
	}
}

func TestAutomaticReportFromDuration(t *testing.T) {
	report, err := AutomaticReportFromDuration(10 * time.Second)
	if err != nil {
		t.Fatalf("FromDuration(10s) err=%v", err)
	}
	if report.Seconds() != 10 {
		t.Fatalf("Seconds() = %d, want 10", report.Seconds())
	}

	// Sub-second part truncates, it does not round.
	report, err = AutomaticReportFromDuration(10500 * time.Millisecond)
	if err != nil {
		t.Fatalf("FromDuration(10.5s) err=%v", err)
	}
	if report.Seconds() != 10 {
		t.Fatalf("Seconds() = %d, want 10", report.Seconds())
	}

	_, err = AutomaticReportFromDuration(256 * time.Second)
	var rangeErr *DurationRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("FromDuration(256s) err=%v, want *DurationRangeError", err)
	}
	if rangeErr.Seconds != 256 {
		t.Fatalf("DurationRangeError = %+v", rangeErr)
	}
}

func TestAutomaticReportHelpers(t *testing.T) {
	report := NewAutomaticReport(10)
	if report.IsDisabled() {
		t.Fatal("10s interval reported disabled")
	}
	if report.Duration() != 10*time.Second {
		t.Fatalf("Duration() = %v", report.Duration())
	}

	if !ReportDisabled.IsDisabled() {
		t.Fatal("ReportDisabled not disabled")
	}
	if ReportDisabled.Duration() != 0 {
		t.Fatalf("ReportDisabled.Duration() = %v", ReportDisabled.Duration())
	}
}

func TestAutomaticReportString(t *testing.T) {
	if got := NewAutomaticReport(10).String(); got != "10s" {
		t.Fatalf("String() = %q, want \"10s\"", got)
	}
	if got := ReportDisabled.String(); got != "0s" {
		t.Fatalf("String() = %q, want \"0s\"", got)
	}
	if got := NewAutomaticReport(255).String(); got != "255s" {
		t.Fatalf("String() = %q, want \"255s\"", got)
	}
}
