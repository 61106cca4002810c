package triangle

import (
	"fmt"
	"time"
)

// Window is the windowing surface the frame loop presents to.
// backend/opengl.Window implements it over GLFW.
type Window interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

// Renderer draws one frame worth of geometry.
// backend/opengl.Renderer implements it; tests use mocks.
type Renderer interface {
	Clear()
	Draw() error
}

// FrameFunc runs once per frame before the draw call, with the elapsed
// time in seconds since Run started.
type FrameFunc func(elapsed float32)

// RunOption configures the frame loop.
type RunOption func(*loopConfig)

type loopConfig struct {
	frameFunc FrameFunc
}

// WithFrameFunc installs a per-frame callback, invoked after the clear and
// before the draw call.
func WithFrameFunc(fn FrameFunc) RunOption {
	return func(c *loopConfig) { c.frameFunc = fn }
}

// Run drives the frame loop until the window close flag is set: clear,
// frame callback, one draw call, present, poll. A draw error stops the
// loop and is returned to the caller.
func Run(w Window, r Renderer, opts ...RunOption) error {
	var cfg loopConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	for !w.ShouldClose() {
		r.Clear()

		if cfg.frameFunc != nil {
			cfg.frameFunc(float32(time.Since(start).Seconds()))
		}

		if err := r.Draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		w.SwapBuffers()
		w.PollEvents()
	}

	return nil
}
