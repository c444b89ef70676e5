// internal/protocol/errors.go
package protocol

import "fmt"

// The decode/encode error taxonomy is shared across all register types.
// Every error here is a recoverable validation failure; nothing in this
// package panics on data supplied by a caller.

// LengthError reports a decode that received the wrong number of words.
type LengthError struct {
	Expected int
	Got      int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid data length: expected %d, got %d", e.Expected, e.Got)
}

// DataError reports a malformed bit pattern inside a register, typically a
// non-zero upper byte where the protocol reserves it.
type DataError struct {
	Details string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid data in register: %s", e.Details)
}

// ValueCodeError reports a register code outside a closed enumeration.
type ValueCodeError struct {
	Entity string
	Code   Word
}

func (e *ValueCodeError) Error() string {
	return fmt.Sprintf("invalid value code for %s: %d", e.Entity, e.Code)
}

// EncodeError reports a value that cannot be represented on the wire.
type EncodeError struct {
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode value: %s", e.Reason)
}

// ---- constructor range errors ----

// TemperatureRangeError reports a degree-celsius value outside the
// representable range, or an attempt to construct NaN through NewTemperature.
type TemperatureRangeError struct {
	Value float32
}

func (e *TemperatureRangeError) Error() string {
	return fmt.Sprintf("the degree celsius value %v is outside the valid range of %v to %v",
		e.Value, TemperatureMin, TemperatureMax)
}

// AddressRangeError reports a device address outside the assignable range.
type AddressRangeError struct {
	Value uint8
}

func (e *AddressRangeError) Error() string {
	return fmt.Sprintf("the address value %d is outside the valid assignable range of %d to %d",
		e.Value, AddressMin, AddressMax)
}

// ChannelRangeError reports a channel index outside 0..7.
type ChannelRangeError struct {
	Value uint8
}

func (e *ChannelRangeError) Error() string {
	return fmt.Sprintf("the channel value %d is outside the valid range of %d to %d",
		e.Value, ChannelMin, ChannelMax)
}

// DurationRangeError reports a report interval that does not fit in a byte.
// Seconds carries the truncated whole-second value, not the original duration.
type DurationRangeError struct {
	Seconds uint64
}

func (e *DurationRangeError) Error() string {
	return fmt.Sprintf("the duration %d seconds is outside the valid automatic report range [%d, %d] seconds",
		e.Seconds, ReportSecondsMin, ReportSecondsMax)
}

// BaudRateValueError reports a numeric baud rate that is not one of the
// five rates the device supports.
type BaudRateValueError struct {
	Value uint16
}

func (e *BaudRateValueError) Error() string {
	return fmt.Sprintf("unsupported baud rate value: %d. Must be 1200, 2400, 4800, 9600, or 19200", e.Value)
}
