// internal/protocol/baudrate.go
package protocol

import "strconv"

// BaudRate is one of the five RS485 rates the module supports. The register
// stores an ordinal code 0-4, not the literal rate; code 5 at the same
// address is the factory reset sentinel and is never a valid BaudRate.
type BaudRate uint16

const (
	Baud1200  BaudRate = 1200  // wire code 0
	Baud2400  BaudRate = 2400  // wire code 1
	Baud4800  BaudRate = 4800  // wire code 2
	Baud9600  BaudRate = 9600  // wire code 3, factory default
	Baud19200 BaudRate = 19200 // wire code 4
)

// BaudRateDefault is the factory default rate.
const BaudRateDefault = Baud9600

const (
	// BaudRateAddress is the register holding the baud rate code.
	BaudRateAddress uint16 = 0x00FF
	// BaudRateQuantity is the register count of the baud rate value.
	BaudRateQuantity uint16 = 1
)

// NewBaudRate validates a literal rate (e.g. parsed from user input).
func NewBaudRate(value uint16) (BaudRate, error) {
	switch BaudRate(value) {
	case Baud1200, Baud2400, Baud4800, Baud9600, Baud19200:
		return BaudRate(value), nil
	}
	return 0, &BaudRateValueError{Value: value}
}

// DecodeBaudRate decodes the rate from its register. Any code outside 0-4 is
// rejected, including 5: that code is reserved for the factory reset trigger
// and must not silently map to a rate.
func DecodeBaudRate(words []Word) (BaudRate, error) {
	if len(words) != int(BaudRateQuantity) {
		return 0, &LengthError{Expected: int(BaudRateQuantity), Got: len(words)}
	}
	switch words[0] {
	case 0:
		return Baud1200, nil
	case 1:
		return Baud2400, nil
	case 2:
		return Baud4800, nil
	case 3:
		return Baud9600, nil
	case 4:
		return Baud19200, nil
	}
	return 0, &ValueCodeError{Entity: "BaudRate", Code: words[0]}
}

// Encode returns the wire ordinal for this rate.
//
// Values produced by NewBaudRate or DecodeBaudRate always hit one of the
// five cases; anything else is a programming defect, not a runtime input.
func (b BaudRate) Encode() Word {
	switch b {
	case Baud1200:
		return 0
	case Baud2400:
		return 1
	case Baud4800:
		return 2
	case Baud9600:
		return 3
	case Baud19200:
		return 4
	}
	panic("protocol: BaudRate value outside the supported set")
}

// Value returns the literal rate, e.g. 9600.
func (b BaudRate) Value() uint16 {
	return uint16(b)
}

// String formats the rate as its numeric value, e.g. "9600".
func (b BaudRate) String() string {
	return strconv.Itoa(int(b))
}
