// internal/protocol/protocol.go

// Package protocol implements the register codec for the R4DCB08 8-channel
// temperature acquisition module.
//
// The device speaks Modbus holding registers ("read holding registers" 0x03,
// "write single register" 0x06). This package converts between raw 16-bit
// register words and validated domain values; it performs no I/O and holds no
// state, so it is safe to use from any number of goroutines.
package protocol

// Word is a single 16-bit Modbus register value. This is the unit the
// transport layer speaks; every codec in this package maps to and from it.
type Word = uint16

// NumberOfChannels is the count of temperature channels on the module.
const NumberOfChannels = 8
