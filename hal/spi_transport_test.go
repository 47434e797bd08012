package hal

import (
	"errors"
	"testing"
	"time"
)

type spiFrame struct {
	dc   bool
	data []byte
}

type fakeSPI struct {
	dc     *fakeLine
	frames []spiFrame
	err    error
}

func (s *fakeSPI) Tx(w, r []byte) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, spiFrame{dc: s.dc.level, data: append([]byte(nil), w...)})
	return nil
}

func (s *fakeSPI) Transfer(b byte) (byte, error) {
	return 0, s.Tx([]byte{b}, nil)
}

func TestSPITransportDriveDC(t *testing.T) {
	dc, cs := &fakeLine{}, &fakeLine{}
	bus := &fakeSPI{dc: dc}
	tr := NewSPITransport(bus, dc, cs, nil)

	if !cs.level {
		t.Fatal("chip select should idle high")
	}
	tr.Select(true)
	if cs.level {
		t.Fatal("selected panel should pull CS low")
	}

	tr.Command(0x2A)
	tr.DataBytes([]byte{0, 1, 0, 9})
	tr.Data(0x55)
	tr.DataBytes(nil)

	want := []spiFrame{
		{dc: false, data: []byte{0x2A}},
		{dc: true, data: []byte{0, 1, 0, 9}},
		{dc: true, data: []byte{0x55}},
	}
	if len(bus.frames) != len(want) {
		t.Fatalf("frames = %+v", bus.frames)
	}
	for i := range want {
		if bus.frames[i].dc != want[i].dc || string(bus.frames[i].data) != string(want[i].data) {
			t.Fatalf("frame %d = %+v, want %+v", i, bus.frames[i], want[i])
		}
	}
}

func TestSPITransportResetPulse(t *testing.T) {
	dc, rst := &fakeLine{}, &fakeLine{}
	tr := NewSPITransport(&fakeSPI{dc: dc}, dc, nil, rst)
	var slept time.Duration
	tr.sleep = func(d time.Duration) { slept += d }
	rst.edges = 0

	if err := tr.Reset(); err != nil {
		t.Fatal(err)
	}
	if !rst.level || rst.edges != 3 {
		t.Fatalf("rst level=%v edges=%d", rst.level, rst.edges)
	}
	if slept != 3*tr.ResetPulse {
		t.Fatalf("slept %v", slept)
	}
}

func TestSPITransportPropagatesBusError(t *testing.T) {
	dc := &fakeLine{}
	boom := errors.New("boom")
	tr := NewSPITransport(&fakeSPI{dc: dc, err: boom}, dc, nil, nil)
	if err := tr.Command(0x01); !errors.Is(err, boom) {
		t.Fatalf("err = %v", err)
	}
}
