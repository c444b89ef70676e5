// internal/protocol/address.go
package protocol

import "fmt"

const (
	// AddressMin is the lowest assignable device address.
	AddressMin uint8 = 1
	// AddressMax is the highest assignable device address.
	AddressMax uint8 = 247

	// AddressRegister is the register holding the device's own address.
	// Reads and writes both require addressing the device with its current
	// address (or, for reads only, the broadcast value).
	AddressRegister uint16 = 0x00FE
	// AddressQuantity is the register count of the address value.
	AddressQuantity uint16 = 1

	// BroadcastValue is the wire value for a broadcast read-address request.
	// It is usable only when a single device sits on the bus, and it is not
	// an assignable address: NewAddress rejects it.
	BroadcastValue uint8 = 0xFF
)

// Address is a validated Modbus slave id in the assignable range 1-247.
// 0 and the broadcast value 255 cannot be constructed.
type Address struct {
	value uint8
}

// AddressDefault is the factory default device address (0x01).
var AddressDefault = Address{value: 0x01}

// NewAddress validates an assignable device address.
func NewAddress(value uint8) (Address, error) {
	if value < AddressMin || value > AddressMax {
		return Address{}, &AddressRangeError{Value: value}
	}
	return Address{value: value}, nil
}

// DecodeAddress decodes the device address from its register. The upper byte
// is reserved and must be zero; the lower byte must be assignable.
func DecodeAddress(words []Word) (Address, error) {
	if len(words) != int(AddressQuantity) {
		return Address{}, &LengthError{Expected: int(AddressQuantity), Got: len(words)}
	}
	w := words[0]
	if w&0xFF00 != 0 {
		return Address{}, &DataError{
			Details: fmt.Sprintf("upper byte of address register is non-zero (value: 0x%04X)", w),
		}
	}
	addr, err := NewAddress(uint8(w))
	if err != nil {
		return Address{}, &DataError{Details: err.Error()}
	}
	return addr, nil
}

// Encode returns the register word for a write-address request.
func (a Address) Encode() Word {
	return Word(a.value)
}

// Value returns the slave id.
func (a Address) Value() uint8 {
	return a.value
}

// String formats the address in fixed two-hex-digit form, e.g. "0x01".
func (a Address) String() string {
	return fmt.Sprintf("0x%02x", a.value)
}
