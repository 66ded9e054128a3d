package observ_test

import (
	"strings"
	"testing"

	"github.com/SteveSandersonMS/witx-bindgen/internal/observ"
)

func TestTimerPhases(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("check")
	timer.End(idx, "3 files")

	phases := timer.Phases()
	if len(phases) != 1 {
		t.Fatalf("got %d phases", len(phases))
	}
	if phases[0].Name != "check" || phases[0].Note != "3 files" {
		t.Errorf("phase = %+v", phases[0])
	}
	if phases[0].Dur < 0 {
		t.Errorf("negative duration")
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	timer := observ.NewTimer()
	timer.End(0, "nothing started") // must not panic
	timer.End(-1, "negative")
}

func TestTimerSummary(t *testing.T) {
	timer := observ.NewTimer()
	a := timer.Begin("lex")
	timer.End(a, "")
	b := timer.Begin("parse")
	timer.End(b, "2 files")

	out := timer.Summary()
	for _, want := range []string{"lex", "parse", "(2 files)", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}
