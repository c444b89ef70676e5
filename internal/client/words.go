// internal/client/words.go
package client

import (
	"errors"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

// wordsFromBytes converts a big-endian register payload into words.
func wordsFromBytes(data []byte) ([]protocol.Word, error) {
	if len(data)%2 != 0 {
		return nil, errors.New("client: register payload length not even")
	}
	out := make([]protocol.Word, len(data)/2)
	for i := range out {
		out[i] = protocol.Word(data[2*i])<<8 | protocol.Word(data[2*i+1])
	}
	return out, nil
}
