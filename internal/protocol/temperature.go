// internal/protocol/temperature.go
package protocol

import (
	"fmt"
	"math"
	"strings"
)

// Temperature is a degree-celsius reading with one implied decimal digit.
//
// The wire format is the 16-bit word interpreted as two's-complement signed,
// divided by 10 — except that the word 0x8000 is reserved as the NaN sentinel
// ("sensor absent or faulted") rather than the signed value -3276.8. That
// reservation narrows the usable range by one step at the negative end, so
// the representable span is [-3276.7, 3276.7].
//
// Construct values with NewTemperature; the NaN sentinel is only reachable
// through the package-level NaN value, never through the constructor.
type Temperature struct {
	value float32
}

// NaN marks a channel whose sensor is disconnected or reporting an error.
var NaN = Temperature{value: float32(math.NaN())}

const (
	// TemperatureMin is the lowest representable reading in °C.
	TemperatureMin float32 = -3276.7
	// TemperatureMax is the highest representable reading in °C.
	TemperatureMax float32 = 3276.7
)

// NewTemperature validates a degree-celsius value.
// NaN is rejected here; use the NaN sentinel value directly.
func NewTemperature(value float32) (Temperature, error) {
	if math.IsNaN(float64(value)) || value < TemperatureMin || value > TemperatureMax {
		return Temperature{}, &TemperatureRangeError{Value: value}
	}
	return Temperature{value: value}, nil
}

// DecodeTemperature converts one register word into a Temperature.
//
//	0x8000          -> NaN
//	word > 0x8000   -> (word - 65536) / 10  (negative)
//	word < 0x8000   -> word / 10            (positive)
func DecodeTemperature(word Word) Temperature {
	switch {
	case word == 0x8000:
		return NaN
	case word > 0x8000:
		return Temperature{value: (float32(word) - 65536) / 10}
	default:
		return Temperature{value: float32(word) / 10}
	}
}

// Encode returns the register word for this temperature.
// NaN has no write encoding and yields an EncodeError.
func (t Temperature) Encode() (Word, error) {
	if t.IsNaN() {
		return 0, &EncodeError{Reason: "temperature value is NAN, which cannot be encoded"}
	}
	scaled := math.Round(float64(t.value) * 10)
	if scaled >= 0 {
		return Word(scaled), nil
	}
	return Word(65536 + scaled), nil
}

// Value returns the degree-celsius value. NaN propagates as float NaN.
func (t Temperature) Value() float32 {
	return t.value
}

// IsNaN reports whether this is the sensor-absent sentinel.
func (t Temperature) IsNaN() bool {
	return math.IsNaN(float64(t.value))
}

// Equal compares two temperatures, treating NaN as equal to NaN.
func (t Temperature) Equal(other Temperature) bool {
	if t.IsNaN() || other.IsNaN() {
		return t.IsNaN() && other.IsNaN()
	}
	return t.value == other.value
}

// String formats with one decimal place, or "NAN" for the sentinel.
func (t Temperature) String() string {
	if t.IsNaN() {
		return "NAN"
	}
	return fmt.Sprintf("%.1f", t.value)
}

// ---- all-channel readings ----

const (
	// TemperaturesAddress is the first register of the reading block.
	TemperaturesAddress uint16 = 0x0000
	// TemperaturesQuantity is the register count of the reading block.
	TemperaturesQuantity uint16 = NumberOfChannels
)

// Temperatures holds one reading per channel; the channel index is the
// array index.
type Temperatures [NumberOfChannels]Temperature

// DecodeTemperatures decodes the full reading block. The input must contain
// exactly NumberOfChannels words.
func DecodeTemperatures(words []Word) (Temperatures, error) {
	var ts Temperatures
	if len(words) != NumberOfChannels {
		return ts, &LengthError{Expected: NumberOfChannels, Got: len(words)}
	}
	for i, w := range words {
		ts[i] = DecodeTemperature(w)
	}
	return ts, nil
}

// String formats the readings as a comma-separated list, e.g.
// "21.9, -11.2, NAN, 0.0, 0.0, 0.0, 0.0, 0.0".
func (ts Temperatures) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// ---- per-channel correction offsets ----

const (
	// CorrectionAddress is the first register of the correction block.
	CorrectionAddress uint16 = 0x0008
	// CorrectionQuantity is the register count of the correction block.
	CorrectionQuantity uint16 = NumberOfChannels
)

// TemperatureCorrection holds the additive calibration offset per channel.
// A 0.0 offset disables correction for that channel.
type TemperatureCorrection [NumberOfChannels]Temperature

// DecodeTemperatureCorrection decodes the full correction block. The wire
// rule is identical to Temperatures; only the register range differs.
func DecodeTemperatureCorrection(words []Word) (TemperatureCorrection, error) {
	var tc TemperatureCorrection
	if len(words) != NumberOfChannels {
		return tc, &LengthError{Expected: NumberOfChannels, Got: len(words)}
	}
	for i, w := range words {
		tc[i] = DecodeTemperature(w)
	}
	return tc, nil
}

// EncodeCorrection encodes a single correction offset for a write to one
// channel register. Writes target one channel at a time; the device has no
// batched multi-channel correction write.
func EncodeCorrection(value Temperature) (Word, error) {
	return value.Encode()
}

// CorrectionChannelAddress returns the write register for one channel's
// correction value.
func CorrectionChannelAddress(ch Channel) uint16 {
	return CorrectionAddress + uint16(ch.Value())
}

// String formats the offsets as a comma-separated list.
func (tc TemperatureCorrection) String() string {
	parts := make([]string, len(tc))
	for i, t := range tc {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}
