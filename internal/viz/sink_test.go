package viz

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/san-kum/leaflet/internal/playback"
	"github.com/san-kum/leaflet/internal/trace"
)

func TestTextSinkRender(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.Generate(trace.BubbleSort, []float64{5, 2, 8, 1, 9})
	sink := NewTextSink(&buf, tr.Len())

	ctrl := playback.NewController(sink)
	ctrl.Load(tr)
	ctrl.Step()

	out := buf.String()
	if !strings.HasPrefix(out, "[1/") {
		t.Errorf("expected first block to start with [1/, got %q", out)
	}
	if !strings.Contains(out, "[2/") || !strings.Contains(out, "Comparing positions 0 and 1: 5 vs 2") {
		t.Errorf("missing comparison block:\n%s", out)
	}
	if !strings.Contains(out, "[5] [2] 8 1 9") {
		t.Errorf("missing marked values:\n%s", out)
	}
	if sink.Err() != nil {
		t.Errorf("unexpected error %v", sink.Err())
	}
}

func TestTextSinkTree(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, 1)
	tr := trace.Generate(trace.DFS, []float64{1, 2, 3, 4})
	sink.Render(tr.Steps[0], 0)

	want := "[1/1] DFS visualization - simplified placeholder\n" +
		"      [1]\n" +
		"      [2, 3]\n" +
		"      [4]\n"
	if buf.String() != want {
		t.Errorf("got\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestTextSinkEmptyStep(t *testing.T) {
	var buf bytes.Buffer
	sink := NewTextSink(&buf, 1)
	sink.Render(trace.Generate(trace.BubbleSort, nil).Steps[0], 0)

	if strings.Count(buf.String(), "\n") != 1 {
		t.Errorf("empty step should be one line, got %q", buf.String())
	}
}

type failingWriter struct{ calls int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.calls++
	return 0, errors.New("disk full")
}

func TestTextSinkKeepsFirstError(t *testing.T) {
	w := &failingWriter{}
	sink := NewTextSink(w, 2)
	step := trace.Step{Kind: trace.KindArray, Values: []float64{1}, Narration: "x"}

	sink.Render(step, 0)
	sink.Render(step, 1)

	if sink.Err() == nil {
		t.Fatal("expected error")
	}
	if w.calls != 1 {
		t.Errorf("expected writes to stop after failure, got %d calls", w.calls)
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		in   []float64
		want string
	}{
		{[]float64{0, 7}, "▁█"},
		{[]float64{0, 0}, "▁▁"},
		{[]float64{-8, 4, 8}, "█▅█"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := Sparkline(tt.in); got != tt.want {
			t.Errorf("Sparkline(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMarkedValues(t *testing.T) {
	step := trace.Step{
		Values:      []float64{4, 3, 2, 1},
		Highlighted: []int{0},
		Colors:      map[int]trace.Color{1: trace.ColorSwapped, 2: trace.ColorFound, 3: trace.ColorSettled},
	}
	if got := MarkedValues(step); got != "[4] *3* (2) 1." {
		t.Errorf("got %q", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "autumn" {
		t.Error("unknown theme should fall back to autumn")
	}
	th := ThemeAutumn
	seen := map[string]bool{}
	for range Themes {
		seen[th.Name] = true
		th = th.Next()
	}
	if len(seen) != len(Themes) || th.Name != ThemeAutumn.Name {
		t.Errorf("Next should cycle through all themes, saw %v", seen)
	}
	if ThemeAutumn.ColorFor(trace.ColorCompared) != ThemeAutumn.Compared {
		t.Error("compared tag should map to the compared colour")
	}
}
