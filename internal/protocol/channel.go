// internal/protocol/channel.go
package protocol

import "strconv"

const (
	// ChannelMin is the lowest valid channel index.
	ChannelMin uint8 = 0
	// ChannelMax is the highest valid channel index.
	ChannelMax uint8 = NumberOfChannels - 1
)

// Channel is a validated temperature channel index (0..7). It selects both
// the array slot in Temperatures and the per-channel correction register.
type Channel struct {
	value uint8
}

// NewChannel validates a channel index.
func NewChannel(value uint8) (Channel, error) {
	if value > ChannelMax {
		return Channel{}, &ChannelRangeError{Value: value}
	}
	return Channel{value: value}, nil
}

// Value returns the channel index.
func (c Channel) Value() uint8 {
	return c.value
}

// String formats the channel as its number, e.g. "0" or "7".
func (c Channel) String() string {
	return strconv.Itoa(int(c.value))
}
