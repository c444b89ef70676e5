// internal/daemon/daemon_test.go
package daemon

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tamzrod/r4dcb08/internal/protocol"
)

type fakeReader struct {
	temps protocol.Temperatures
	err   error
	calls int
}

func (f *fakeReader) ReadTemperatures() (protocol.Temperatures, error) {
	f.calls++
	if f.err != nil {
		return protocol.Temperatures{}, f.err
	}
	return f.temps, nil
}

type recordSink struct {
	published []protocol.Temperatures
	err       error
}

func (s *recordSink) Publish(temps protocol.Temperatures) error {
	s.published = append(s.published, temps)
	return s.err
}

func (s *recordSink) Close() error { return nil }

func decodeTemps(t *testing.T, words []protocol.Word) protocol.Temperatures {
	t.Helper()
	temps, err := protocol.DecodeTemperatures(words)
	if err != nil {
		t.Fatalf("DecodeTemperatures err=%v", err)
	}
	return temps
}

func TestNewValidation(t *testing.T) {
	reader := &fakeReader{}
	sink := &recordSink{}

	if _, err := New(nil, time.Second, nil, sink); err == nil {
		t.Fatal("New(nil reader) expected error")
	}
	if _, err := New(reader, 0, nil, sink); err == nil {
		t.Fatal("New(zero interval) expected error")
	}
	if _, err := New(reader, time.Second, nil); err == nil {
		t.Fatal("New(no sinks) expected error")
	}
	if _, err := New(reader, time.Second, nil, sink); err != nil {
		t.Fatalf("New err=%v", err)
	}
}

func TestPollOncePublishes(t *testing.T) {
	temps := decodeTemps(t, []protocol.Word{219, 65424, 32768, 0, 0, 0, 0, 0})
	reader := &fakeReader{temps: temps}
	sinkA := &recordSink{}
	sinkB := &recordSink{}

	d, err := New(reader, time.Second, nil, sinkA, sinkB)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	d.pollOnce()

	for _, s := range []*recordSink{sinkA, sinkB} {
		if len(s.published) != 1 {
			t.Fatalf("published = %d, want 1", len(s.published))
		}
		if s.published[0].String() != temps.String() {
			t.Fatalf("published %q", s.published[0])
		}
	}
}

func TestPollOnceReadError(t *testing.T) {
	reader := &fakeReader{err: errors.New("bus down")}
	sink := &recordSink{}
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	d, err := New(reader, time.Second, metrics, sink)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	d.pollOnce()

	if len(sink.published) != 0 {
		t.Fatalf("publish happened despite read error")
	}
	if got := testutil.ToFloat64(metrics.pollErrors); got != 1 {
		t.Fatalf("poll_errors_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.polls); got != 1 {
		t.Fatalf("polls_total = %v, want 1", got)
	}
}

func TestPollOnceSinkErrorDoesNotStopOthers(t *testing.T) {
	temps := decodeTemps(t, []protocol.Word{0, 0, 0, 0, 0, 0, 0, 0})
	reader := &fakeReader{temps: temps}
	failing := &recordSink{err: errors.New("sink down")}
	healthy := &recordSink{}

	d, err := New(reader, time.Second, nil, failing, healthy)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	d.pollOnce()

	if len(healthy.published) != 1 {
		t.Fatalf("healthy sink got %d publishes", len(healthy.published))
	}
}

func TestMetricsObserve(t *testing.T) {
	temps := decodeTemps(t, []protocol.Word{219, 32768, 0, 0, 0, 0, 0, 0})
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	metrics.Observe(temps)

	if got := testutil.ToFloat64(metrics.temperature.WithLabelValues("0")); got != float64(float32(21.9)) {
		t.Fatalf("temperature{channel=0} = %v", got)
	}
	if got := testutil.ToFloat64(metrics.connected.WithLabelValues("0")); got != 1 {
		t.Fatalf("sensor_connected{channel=0} = %v, want 1", got)
	}
	// NaN channel: connected drops, no temperature sample forced.
	if got := testutil.ToFloat64(metrics.connected.WithLabelValues("1")); got != 0 {
		t.Fatalf("sensor_connected{channel=1} = %v, want 0", got)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	temps := decodeTemps(t, []protocol.Word{0, 0, 0, 0, 0, 0, 0, 0})
	reader := &fakeReader{temps: temps}
	sink := &recordSink{}

	d, err := New(reader, 10*time.Millisecond, nil, sink)
	if err != nil {
		t.Fatalf("New err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run err=%v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// first immediate poll plus at least one tick
	if reader.calls < 2 {
		t.Fatalf("reader calls = %d, want >= 2", reader.calls)
	}
}

func TestConsoleSink(t *testing.T) {
	temps := decodeTemps(t, []protocol.Word{219, 65424, 32768, 0, 0, 0, 0, 0})
	var buf bytes.Buffer

	s := NewConsoleSink(&buf)
	if err := s.Publish(temps); err != nil {
		t.Fatalf("Publish err=%v", err)
	}
	want := "Temperatures (°C): 21.9, -11.2, NAN, 0.0, 0.0, 0.0, 0.0, 0.0\n"
	if buf.String() != want {
		t.Fatalf("output = %q, want %q", buf.String(), want)
	}
}
