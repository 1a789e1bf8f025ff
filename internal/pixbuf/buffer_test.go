package pixbuf

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"
)

func TestAllocateZeroFills(t *testing.T) {
	shapes := []Shape{
		{0, 0, 0}, {1, 1, 1}, {4, 3, 1}, {4, 3, 3}, {7, 2, 5}, {5, 5, 0}, {0, 9, 3},
	}
	for _, s := range shapes {
		t.Run(s.String(), func(t *testing.T) {
			b := &Int16{}
			b.SetValueShape(9, 2, 2, 2)
			b.Allocate(s.Width, s.Height, s.Channels)

			if b.Elements() != s.Elements() {
				t.Fatalf("Elements() = %d, want %d", b.Elements(), s.Elements())
			}
			if len(b.Data()) != s.Elements() {
				t.Fatalf("len(Data()) = %d, want %d", len(b.Data()), s.Elements())
			}
			if b.Pixels() != s.Pixels() {
				t.Errorf("Pixels() = %d, want %d", b.Pixels(), s.Pixels())
			}
			for i, v := range b.Data() {
				if v != 0 {
					t.Fatalf("element %d = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestAllocateNegativeDimensions(t *testing.T) {
	b := New[uint8](-3, 4, -1)
	if !b.Matches(Shape{0, 4, 0}) {
		t.Errorf("shape = %v, want 0x4x0", b.Shape())
	}
	if b.Data() != nil {
		t.Error("expected no storage")
	}
}

func TestAllocateOverflowPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAllocationFailure) {
			t.Fatalf("recovered %v, want ErrAllocationFailure", r)
		}
	}()
	New[uint8](math.MaxInt, 2, 1)
}

func TestClearAndReset(t *testing.T) {
	b := NewFilled[float32](3, 2, 2, 1)
	b.Reset()
	if !b.Matches(Shape{2, 2, 1}) {
		t.Errorf("Reset changed shape to %v", b.Shape())
	}
	for _, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Reset left %v", v)
		}
	}
	b.Clear()
	if b.Elements() != 0 || b.Width() != 0 || b.Data() != nil {
		t.Errorf("Clear left %v with %d elements", b.Shape(), len(b.Data()))
	}
}

func TestSetValueShapeReusesStorage(t *testing.T) {
	b := New[uint8](3, 3, 1)
	before := &b.Data()[0]
	b.SetValueShape(7, 3, 3, 1)
	if &b.Data()[0] != before {
		t.Error("matching shape reallocated storage")
	}
	b.SetValueShape(2, 4, 1, 2)
	if !b.Matches(Shape{4, 1, 2}) || b.At(3, 0, 1) != 2 {
		t.Errorf("SetValueShape gave %v, last element %d", b.Shape(), b.At(3, 0, 1))
	}
}

func TestFromSlice(t *testing.T) {
	src := []uint8{1, 2, 3, 4, 5, 6}
	b, err := FromSlice(src, 3, 1, 2)
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}
	src[0] = 99
	if b.At(0, 0, 0) != 1 {
		t.Error("FromSlice aliases its input")
	}
	if b.At(2, 0, 1) != 6 {
		t.Errorf("At(2,0,1) = %d, want 6", b.At(2, 0, 1))
	}

	if _, err := FromSlice(src, 2, 2, 2); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short slice: got %v, want ErrShapeMismatch", err)
	}
}

func TestIsFloat(t *testing.T) {
	if (&Byte{}).IsFloat() || (&Int16{}).IsFloat() {
		t.Error("integer buffer reported float")
	}
	if !(&Float32{}).IsFloat() || !(&Float64{}).IsFloat() {
		t.Error("float buffer reported integer")
	}
}

func TestScaleToUnit(t *testing.T) {
	f := NewFilled[float64](255, 1, 1, 1)
	f.ScaleToUnit()
	if f.At(0, 0, 0) != 1 {
		t.Errorf("float: got %v, want 1", f.At(0, 0, 0))
	}
	u := NewFilled[uint8](255, 1, 1, 1)
	u.ScaleToUnit()
	if u.At(0, 0, 0) != 255 {
		t.Errorf("integer: got %v, want 255", u.At(0, 0, 0))
	}
}

type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}
func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func TestLoggerReportsRejections(t *testing.T) {
	h := &recordingHandler{}
	SetLogger(slog.New(h))
	defer SetLogger(nil)

	a := New[uint8](2, 2, 1)
	b := New[uint8](3, 2, 1)
	if err := Add(&Byte{}, a, b); err == nil {
		t.Fatal("expected shape mismatch")
	}
	var warned bool
	for _, r := range h.records {
		if r.Level == slog.LevelWarn {
			warned = true
		}
	}
	if !warned {
		t.Error("no warning logged for rejected Add")
	}
}

func TestDefaultLoggerIsSilent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
	_ = Crop(&Byte{}, New[uint8](2, 2, 1), 5, 0, 1, 1)
	if buf.Len() != 0 {
		t.Errorf("restored default logger still wrote %q", buf.String())
	}
}
