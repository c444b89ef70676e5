// internal/protocol/channel_test.go
package protocol

import (
	"errors"
	"testing"
)

func TestNewChannel(t *testing.T) {
	for v := uint8(0); v <= ChannelMax; v++ {
		ch, err := NewChannel(v)
		if err != nil {
			t.Fatalf("NewChannel(%d) err=%v", v, err)
		}
		if ch.Value() != v {
			t.Fatalf("NewChannel(%d).Value() = %d", v, ch.Value())
		}
	}

	for _, v := range []uint8{8, 100, 255} {
		_, err := NewChannel(v)
		var rangeErr *ChannelRangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("NewChannel(%d) err=%v, want *ChannelRangeError", v, err)
		}
		if rangeErr.Value != v {
			t.Fatalf("ChannelRangeError = %+v", rangeErr)
		}
	}
}

func TestChannelString(t *testing.T) {
	ch, err := NewChannel(7)
	if err != nil {
		t.Fatalf("NewChannel err=%v", err)
	}
	if got := ch.String(); got != "7" {
		t.Fatalf("String() = %q, want \"7\"", got)
	}
}
