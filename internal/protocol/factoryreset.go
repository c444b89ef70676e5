// internal/protocol/factoryreset.go
package protocol

// The factory reset trigger aliases the baud rate register: writing the
// sentinel word 5 there restores factory defaults. The alias only exists in
// the write direction — reading that register always yields a baud rate
// code, and DecodeBaudRate rejects 5 for exactly this reason. There is no
// decode operation for a factory reset.

const (
	// FactoryResetAddress is the register a factory reset is written to.
	FactoryResetAddress = BaudRateAddress

	// factoryResetWord is the sentinel value that triggers the reset.
	factoryResetWord Word = 5
)

// EncodeFactoryReset returns the sentinel word to write to
// FactoryResetAddress. After a successful reset the device stops responding
// until it is power-cycled, so the write's response may legitimately time
// out; callers must treat that specific timeout as success.
func EncodeFactoryReset() Word {
	return factoryResetWord
}
