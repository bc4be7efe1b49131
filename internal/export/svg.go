package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/leaflet/internal/trace"
	"github.com/san-kum/leaflet/internal/viz"
)

const (
	barWidth   = 40.0
	barGap     = 10.0
	plotHeight = 200.0
	margin     = 30.0
	nodeRadius = 20.0
	levelGap   = 70.0
)

// StepToSVG draws a step with the autumn palette.
func StepToSVG(step trace.Step, scale float64) string {
	return StepToSVGTheme(step, scale, viz.ThemeAutumn)
}

// StepToSVGTheme draws an array step as bars scaled to the largest
// magnitude, or a tree step as level-ordered nodes. Fill follows the
// colour tag of each position.
func StepToSVGTheme(step trace.Step, scale float64, th viz.Theme) string {
	if scale <= 0 {
		scale = 1
	}
	if step.Kind == trace.KindTree {
		return treeToSVG(step, scale, th)
	}
	return barsToSVG(step, scale, th)
}

func header(sb *strings.Builder, width, height float64, bg string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg))
}

func barsToSVG(step trace.Step, scale float64, th viz.Theme) string {
	n := len(step.Values)
	width := (2*margin + float64(n)*(barWidth+barGap)) * scale
	height := (2*margin + plotHeight + 20) * scale

	maxAbs, hasNeg := 0.0, false
	for _, v := range step.Values {
		maxAbs = math.Max(maxAbs, math.Abs(v))
		hasNeg = hasNeg || v < 0
	}

	span := plotHeight
	baseline := margin + plotHeight
	if hasNeg {
		span = plotHeight / 2
		baseline = margin + plotHeight/2
	}

	var sb strings.Builder
	header(&sb, width, height, string(th.Text))
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%.1f" font-family="monospace" font-size="%.0f">
`, th.Accent, 2*scale, 12*scale))

	for i, v := range step.Values {
		h := 0.0
		if maxAbs > 0 {
			h = math.Abs(v) / maxAbs * span
		}
		y := baseline - h
		if v < 0 {
			y = baseline
		}
		x := margin + float64(i)*(barWidth+barGap)
		fill := th.ColorFor(step.ColorAt(i))

		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x*scale, y*scale, barWidth*scale, h*scale, fill))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" stroke="none" fill="%s">%s</text>
`, (x+barWidth/2)*scale, (y-4)*scale, th.Accent, trace.FormatValue(v)))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" stroke="none" fill="%s">%d</text>
`, (x+barWidth/2)*scale, (margin+plotHeight+16)*scale, th.Muted, i))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

func treeToSVG(step trace.Step, scale float64, th viz.Theme) string {
	levels := viz.TreeLevels(step.Values)
	widest := 1 << max(len(levels)-1, 0)
	width := (2*margin + float64(widest)*2*nodeRadius*1.5) * scale
	height := (2*margin + float64(len(levels))*levelGap) * scale

	pos := func(i int) (float64, float64) {
		depth := int(math.Floor(math.Log2(float64(i + 1))))
		first := 1<<depth - 1
		slots := float64(int(1) << depth)
		x := margin + (float64(i-first)+0.5)/slots*(width/scale-2*margin)
		y := margin + nodeRadius + float64(depth)*levelGap
		return x, y
	}

	var sb strings.Builder
	header(&sb, width, height, string(th.Text))
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="%.1f" font-family="monospace" font-size="%.0f">
`, th.Accent, 2*scale, 12*scale))

	for i := 1; i < len(step.Values); i++ {
		px, py := pos((i - 1) / 2)
		cx, cy := pos(i)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, px*scale, py*scale, cx*scale, cy*scale))
	}
	for i, v := range step.Values {
		cx, cy := pos(i)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx*scale, cy*scale, nodeRadius*scale, th.ColorFor(step.ColorAt(i))))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" text-anchor="middle" stroke="none" fill="%s">%s</text>
`, cx*scale, (cy+4)*scale, th.Accent, trace.FormatValue(v)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
