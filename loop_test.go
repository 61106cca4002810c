package triangle_test

import (
	"errors"
	"testing"

	"github.com/opengl-primer/triangle"
)

// mockWindow closes after a fixed number of polled frames.
type mockWindow struct {
	framesLeft int
	swaps      int
	polls      int
}

func (w *mockWindow) ShouldClose() bool { return w.framesLeft <= 0 }
func (w *mockWindow) SwapBuffers()      { w.swaps++ }
func (w *mockWindow) PollEvents() {
	w.polls++
	w.framesLeft--
}

// mockRenderer counts clears and draws and can fail on demand.
type mockRenderer struct {
	clears  int
	draws   int
	drawErr error
}

func (r *mockRenderer) Clear() { r.clears++ }
func (r *mockRenderer) Draw() error {
	r.draws++
	return r.drawErr
}

func TestRunDrawsOncePerFrame(t *testing.T) {
	window := &mockWindow{framesLeft: 5}
	renderer := &mockRenderer{}

	if err := triangle.Run(window, renderer); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if renderer.draws != 5 {
		t.Errorf("expected 5 draw calls, got %d", renderer.draws)
	}
	if renderer.clears != 5 {
		t.Errorf("expected 5 clears, got %d", renderer.clears)
	}
	if window.swaps != 5 {
		t.Errorf("expected 5 buffer swaps, got %d", window.swaps)
	}
}

func TestRunStopsOnlyOnCloseFlag(t *testing.T) {
	window := &mockWindow{framesLeft: 0}
	renderer := &mockRenderer{}

	if err := triangle.Run(window, renderer); err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if renderer.draws != 0 {
		t.Errorf("expected no draw calls for a closed window, got %d", renderer.draws)
	}
}

func TestRunReturnsDrawError(t *testing.T) {
	window := &mockWindow{framesLeft: 10}
	drawErr := errors.New("context lost")
	renderer := &mockRenderer{drawErr: drawErr}

	err := triangle.Run(window, renderer)
	if err == nil {
		t.Fatal("expected error from failing draw")
	}
	if !errors.Is(err, drawErr) {
		t.Errorf("expected wrapped draw error, got %v", err)
	}
	if renderer.draws != 1 {
		t.Errorf("expected loop to stop after first failed draw, got %d draws", renderer.draws)
	}
	if window.swaps != 0 {
		t.Errorf("expected no swap after failed draw, got %d", window.swaps)
	}
}

func TestRunFrameFunc(t *testing.T) {
	window := &mockWindow{framesLeft: 3}
	renderer := &mockRenderer{}

	calls := 0
	var last float32 = -1
	err := triangle.Run(window, renderer, triangle.WithFrameFunc(func(elapsed float32) {
		calls++
		if elapsed < last {
			t.Errorf("elapsed time went backwards: %v after %v", elapsed, last)
		}
		last = elapsed

		// The hook runs after the clear and before the draw.
		if renderer.clears != calls {
			t.Errorf("expected %d clears before hook call %d, got %d", calls, calls, renderer.clears)
		}
		if renderer.draws != calls-1 {
			t.Errorf("expected %d draws before hook call %d, got %d", calls-1, calls, renderer.draws)
		}
	}))
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}

	if calls != 3 {
		t.Errorf("expected 3 frame callbacks, got %d", calls)
	}
}
