package triangle_test

import (
	"strings"
	"testing"

	"github.com/opengl-primer/triangle"
)

func TestStageString(t *testing.T) {
	if got := triangle.StageVertex.String(); got != "vertex" {
		t.Errorf("StageVertex.String() = %q", got)
	}
	if got := triangle.StageFragment.String(); got != "fragment" {
		t.Errorf("StageFragment.String() = %q", got)
	}
	if got := triangle.Stage(99).String(); got != "unknown" {
		t.Errorf("Stage(99).String() = %q", got)
	}
}

func TestDefaultSources(t *testing.T) {
	if !strings.Contains(triangle.DefaultVertexSource, "#version 410 core") {
		t.Error("vertex source missing version directive")
	}
	if !strings.Contains(triangle.DefaultVertexSource, "gl_Position") {
		t.Error("vertex source does not write gl_Position")
	}
	if !strings.Contains(triangle.DefaultFragmentSource, "#version 410 core") {
		t.Error("fragment source missing version directive")
	}
	if !strings.Contains(triangle.DefaultFragmentSource, "uColor") {
		t.Error("fragment source does not read uColor")
	}

	// The backend appends the C string terminator itself.
	if strings.ContainsRune(triangle.DefaultVertexSource, 0) ||
		strings.ContainsRune(triangle.DefaultFragmentSource, 0) {
		t.Error("shader sources must not contain NUL bytes")
	}
}
