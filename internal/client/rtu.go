// internal/client/rtu.go
package client

import (
	"log"
	"time"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// minimumRTUDelayFloor is a practical lower bound on the inter-frame
// silence, useful with USB-to-RS485 converters that need time to switch
// between TX and RX.
const minimumRTUDelayFloor = 1750 * time.Microsecond

// MinimumRTUDelay returns the Modbus RTU inter-frame silence for a baud
// rate: 3.5 character times at 11 bits per character, clamped to the
// practical floor.
func MinimumRTUDelay(baud protocol.BaudRate) time.Duration {
	const bitsPerChar = 11.0
	charTimeSecs := bitsPerChar / float64(baud.Value())
	delay := time.Duration(3.5*charTimeSecs*1e6) * time.Microsecond
	if delay < minimumRTUDelayFloor {
		return minimumRTUDelayFloor
	}
	return delay
}

// CheckRTUDelay clamps a user-supplied command delay up to the minimum
// inter-frame silence for the baud rate.
func CheckRTUDelay(userDelay time.Duration, baud protocol.BaudRate) time.Duration {
	min := MinimumRTUDelay(baud)
	if userDelay < min {
		log.Printf("rtu delay %v is below the recommended minimum %v for %s baud, using minimum", userDelay, min, baud)
		return min
	}
	return userDelay
}
