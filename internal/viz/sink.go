package viz

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/leaflet/internal/trace"
)

// TextSink writes every rendered step as a small text block:
//
//	[2/7] Comparing positions 0 and 1: 5 vs 2
//	      ▅▂▇▁█
//	      [5] [2] 8 1 9
type TextSink struct {
	w     io.Writer
	total int
	err   error
}

func NewTextSink(w io.Writer, total int) *TextSink {
	return &TextSink{w: w, total: total}
}

func (s *TextSink) Render(step trace.Step, cursor int) {
	if s.err != nil {
		return
	}
	prefix := fmt.Sprintf("[%d/%d] ", cursor+1, s.total)
	pad := strings.Repeat(" ", len(prefix))

	var b strings.Builder
	b.WriteString(prefix + step.Narration + "\n")
	if step.Kind == trace.KindTree {
		for _, level := range TreeLevels(step.Values) {
			b.WriteString(pad + trace.FormatValues(level) + "\n")
		}
	} else if len(step.Values) > 0 {
		b.WriteString(pad + Sparkline(step.Values) + "\n")
		b.WriteString(pad + MarkedValues(step) + "\n")
	}
	_, s.err = io.WriteString(s.w, b.String())
}

// Err returns the first write error. Render itself never fails.
func (s *TextSink) Err() error { return s.err }
