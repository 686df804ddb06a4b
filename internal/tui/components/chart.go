package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/tiptrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak <= 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx]) //nolint:gosec // bounds checked above
	}

	return style.Render(buf.String())
}

// BarChart renders values as columns on a dollar axis. Positive values rise
// from the zero line in color, negative ones hang below it in the theme's
// Loss color. Too small an area falls back to a sparkline.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	hi, lo := 0.0, 0.0
	for _, v := range values {
		hi = math.Max(hi, v)
		lo = math.Max(lo, -v)
	}
	s := newChartScale(hi, lo, height-1)

	yLabelW := max(len(formatChartLabel(s.tick(s.up))), len(formatChartLabel(-s.tick(s.down))), 3) + 1
	values, labels, barW := fitBars(values, labels, max(width-yLabelW-1, 5))
	n := len(values)
	axisLen := n*barW + n - 1

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	gainStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	lossStyle := lipgloss.NewStyle().Foreground(t.Loss).Background(t.Surface)

	var b strings.Builder
	row := func(label string, cell func(v float64) (string, lipgloss.Style)) {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))
		for i, v := range values {
			if i > 0 {
				b.WriteString(blank.Render(" "))
			}
			glyph, style := cell(v)
			b.WriteString(style.Render(strings.Repeat(glyph, barW)))
		}
	}

	for r := s.up * s.rowsPerTick; r >= 1; r-- {
		bottom, top := s.band(r)
		row(s.label(r, 1), func(v float64) (string, lipgloss.Style) {
			return riseGlyph(v, bottom, top), gainStyle
		})
		b.WriteString("\n")
	}

	edge := "└"
	if s.down > 0 {
		edge = "├"
	}
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s%s%s", yLabelW, formatChartLabel(0), edge, strings.Repeat("─", axisLen))))

	for r := 1; r <= s.down*s.rowsPerTick; r++ {
		b.WriteString("\n")
		bottom, top := s.band(r)
		row(s.label(r, -1), func(v float64) (string, lipgloss.Style) {
			return hangGlyph(-v, bottom, top), lossStyle
		})
	}

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(axisStyle.Render(placeLabels(labels, barW, axisLen)))
	}
	return b.String()
}

// chartScale maps dollars to rows: up ticks above the zero line and down
// ticks below it, each step dollars tall and rowsPerTick rows high.
type chartScale struct {
	step        float64
	up, down    int
	rowsPerTick int
}

func newChartScale(hi, lo float64, rows int) chartScale {
	s := chartScale{step: chartTickStep(math.Max(hi, lo))}
	maxTicks := max(rows/2, 2)
	for {
		s.up = int(math.Ceil(hi / s.step))
		s.down = int(math.Ceil(lo / s.step))
		if s.up+s.down <= maxTicks {
			break
		}
		s.step *= 2
	}
	if s.up+s.down == 0 {
		s.up = 1
	}
	s.rowsPerTick = max(rows/(s.up+s.down), 1)
	return s
}

func (s chartScale) tick(i int) float64 {
	return s.step * float64(i)
}

// band returns the dollar range covered by the r-th row away from zero.
func (s chartScale) band(r int) (float64, float64) {
	unit := s.step / float64(s.rowsPerTick)
	return unit * float64(r-1), unit * float64(r)
}

func (s chartScale) label(r int, sign float64) string {
	if r%s.rowsPerTick != 0 {
		return ""
	}
	return formatChartLabel(sign * s.tick(r/s.rowsPerTick))
}

var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// riseGlyph fills a row from below for a bar reaching v.
func riseGlyph(v, bottom, top float64) string {
	switch {
	case v >= top:
		return "█"
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		return string(eighths[min(max(idx, 1), 8)])
	default:
		return " "
	}
}

// hangGlyph fills a row from above for a bar dropping depth below zero.
func hangGlyph(depth, bottom, top float64) string {
	switch {
	case depth >= top:
		return "█"
	case depth > bottom && (depth-bottom)/(top-bottom) >= 0.5:
		return "▀"
	case depth > bottom:
		return "▔"
	default:
		return " "
	}
}

// fitBars sizes columns for width, sampling values when every column
// cannot get two cells.
func fitBars(values []float64, labels []string, width int) ([]float64, []string, int) {
	n := len(values)
	if n == 1 {
		return values, labels, min(width, 6)
	}
	barW := (width - (n - 1)) / n
	if barW >= 2 {
		return values, labels, min(barW, 6)
	}

	keep := max((width+1)/3, 2)
	sampled := make([]float64, keep)
	var sampledLabels []string
	if len(labels) == n {
		sampledLabels = make([]string, keep)
	}
	for i := range sampled {
		src := i * (n - 1) / (keep - 1)
		sampled[i] = values[src]
		if sampledLabels != nil {
			sampledLabels[i] = labels[src]
		}
	}
	return sampled, sampledLabels, 2
}

// placeLabels lays labels under their columns, skipping any that would
// touch the previous one.
func placeLabels(labels []string, barW, axisLen int) string {
	buf := []byte(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for i, lbl := range labels {
		pos := i * (barW + 1)
		if pos <= lastEnd || pos >= axisLen {
			continue
		}
		end := pos + len(lbl)
		if end > axisLen {
			if axisLen-pos < 3 {
				continue
			}
			end = axisLen
			lbl = lbl[:end-pos]
		}
		copy(buf[pos:end], lbl)
		lastEnd = end
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep picks a 1, 2 or 5 times power of ten step giving about
// five ticks up to maxVal.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel renders a dollar tick label: $0, $5, -$250, $1.5k.
func formatChartLabel(v float64) string {
	switch {
	case v < 0:
		return "-" + formatChartLabel(-v)
	case v == 0:
		return "$0"
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("$%.0fk", v/1e3)
		}
		return fmt.Sprintf("$%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("$%.0f", v)
	default:
		return fmt.Sprintf("$%.2f", v)
	}
}

// DayLabels builds compact X-axis labels for ascending YYYY-MM-DD dates:
// the first day and each month boundary show the month ("Jan"), every
// other day its number.
func DayLabels(dates []string) []string {
	labels := make([]string, len(dates))
	prevMonth := ""
	for i, d := range dates {
		month, day := "", d
		if len(d) == len("2006-01-02") {
			month, day = d[5:7], strings.TrimLeft(d[8:], "0")
		}
		if i == 0 || month != prevMonth {
			labels[i] = monthAbbrev(month)
		} else {
			labels[i] = day
		}
		prevMonth = month
	}
	return labels
}

func monthAbbrev(mm string) string {
	names := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	var n int
	if _, err := fmt.Sscanf(mm, "%d", &n); err != nil || n < 1 || n > 12 {
		return mm
	}
	return names[n-1]
}
