// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cursorcanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/cursors"
	"github.com/gogpu/cursors/chart"
)

// mockDevice implements gpucontext.Device for testing.
type mockDevice struct{}

func (m *mockDevice) Poll(wait bool) {}
func (m *mockDevice) Destroy()       {}

// mockQueue implements gpucontext.Queue for testing.
type mockQueue struct{}

// mockAdapter implements gpucontext.Adapter for testing.
type mockAdapter struct{}

// mockProvider implements gpucontext.DeviceProvider for testing.
type mockProvider struct {
	device  gpucontext.Device
	queue   gpucontext.Queue
	adapter gpucontext.Adapter
	format  gputypes.TextureFormat
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		device:  &mockDevice{},
		queue:   &mockQueue{},
		adapter: &mockAdapter{},
		format:  gputypes.TextureFormatBGRA8Unorm,
	}
}

func (m *mockProvider) Device() gpucontext.Device             { return m.device }
func (m *mockProvider) Queue() gpucontext.Queue               { return m.queue }
func (m *mockProvider) Adapter() gpucontext.Adapter           { return m.adapter }
func (m *mockProvider) SurfaceFormat() gputypes.TextureFormat { return m.format }

func newSurface(t *testing.T, c *chart.Chart) *Surface {
	t.Helper()
	s, err := New(newMockProvider(), c)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		provider gpucontext.DeviceProvider
		chart    *chart.Chart
		wantErr  error
	}{
		{"valid", newMockProvider(), chart.New(200, 100), nil},
		{"nil chart", newMockProvider(), nil, ErrNilChart},
		{"nil provider", nil, chart.New(200, 100), ggcanvas.ErrNilProvider},
		{"empty chart", newMockProvider(), chart.New(0, 100), ggcanvas.ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.provider, tt.chart)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			defer s.Close()
			if w, h := s.Canvas().Size(); w != 200 || h != 100 {
				t.Errorf("canvas size = %dx%d, want 200x100", w, h)
			}
		})
	}
}

func TestFrameRedrawsOnDemand(t *testing.T) {
	c := chart.New(200, 100)
	overlays := 0
	c.OnDrawOverlay(func(*gg.Context) { overlays++ })
	s := newSurface(t, c)

	steps := []struct {
		name    string
		before  func()
		drawn   bool
		overlay int
	}{
		{"first frame", nil, true, 1},
		{"idle", nil, false, 1},
		{"after redraw request", c.TriggerRedraw, true, 2},
		{"idle again", nil, false, 2},
	}
	for _, st := range steps {
		if st.before != nil {
			st.before()
		}
		drawn, err := s.Frame()
		if err != nil {
			t.Fatalf("%s: Frame() error = %v", st.name, err)
		}
		if drawn != st.drawn || overlays != st.overlay {
			t.Errorf("%s: drawn = %v overlays = %d, want %v and %d", st.name, drawn, overlays, st.drawn, st.overlay)
		}
	}
	if s.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", s.Frames())
	}
	if !s.Canvas().IsDirty() {
		t.Error("a drawn frame should mark the canvas dirty")
	}
}

func TestFrameFollowsCursorDrag(t *testing.T) {
	c := chart.New(200, 100, chart.WithPadding(0, 0, 0, 0))
	p := cursors.Install(c, cursors.WithCursors(cursors.NewConfig(cursors.WithPosition(cursors.Relative(50, 50)))))
	c.Setup()
	t.Cleanup(c.Shutdown)
	s := newSurface(t, c)

	if drawn, _ := s.Frame(); !drawn {
		t.Fatal("first frame not drawn")
	}
	cur := p.Cursors()[0]
	p.Set(cur, cursors.NewConfig(cursors.WithPosition(cursors.Relative(120, 60))))

	drawn, err := s.Frame()
	if err != nil || !drawn {
		t.Errorf("Frame() = %v, %v; want a redraw after the cursor moved", drawn, err)
	}
}

func TestResize(t *testing.T) {
	c := chart.New(200, 100)
	s := newSurface(t, c)
	if _, err := s.Frame(); err != nil {
		t.Fatal(err)
	}

	if err := s.Resize(300, 150); err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if c.Width() != 300 || c.Height() != 150 {
		t.Errorf("chart size = %dx%d, want 300x150", c.Width(), c.Height())
	}
	if w, h := s.Canvas().Size(); w != 300 || h != 150 {
		t.Errorf("canvas size = %dx%d, want 300x150", w, h)
	}
	if drawn, _ := s.Frame(); !drawn {
		t.Error("resize should force a redraw")
	}

	if err := s.Resize(0, 10); !errors.Is(err, ggcanvas.ErrInvalidDimensions) {
		t.Errorf("Resize(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
	if c.Width() != 300 {
		t.Error("a failed resize must leave the chart alone")
	}
}

func TestClose(t *testing.T) {
	s := newSurface(t, chart.New(200, 100))

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if _, err := s.Frame(); !errors.Is(err, ggcanvas.ErrCanvasClosed) {
		t.Errorf("Frame() after Close error = %v, want ErrCanvasClosed", err)
	}
}
