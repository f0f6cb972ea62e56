//go:build !release

package footer

import (
	"strings"
	"testing"
)

func TestRenderMarksDevBuild(t *testing.T) {
	t.Parallel()

	out := New("lights connected", 80).Render()
	if !strings.Contains(out, "(dev build)") {
		t.Errorf("Render() = %q, want a dev build marker", out)
	}
	if !strings.Contains(out, "lights connected") {
		t.Errorf("Render() = %q, want the status on the right", out)
	}
}
