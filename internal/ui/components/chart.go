package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/moodlog/internal/ui/theme"
)

// Point is one plotted (timestamp, score) pair.
type Point struct {
	Time  time.Time
	Value int
}

// Chart renders scores over time as a terminal scatter-line plot with a
// fixed y range of [0, MaxValue], so a chart never rescales as new
// check-ins arrive.
type Chart struct {
	Points   []Point
	MaxValue int
	Width    int
	Height   int
}

// NewChart creates a chart. Points may be in any order; they are placed by
// timestamp.
func NewChart(points []Point, maxValue, width, height int) Chart {
	return Chart{
		Points:   points,
		MaxValue: maxValue,
		Width:    width,
		Height:   height,
	}
}

const axisLabelWidth = 5 // "100 |"

// View renders the chart.
func (c Chart) View() string {
	if len(c.Points) == 0 {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("  No entries in this range yet.")
	}

	plotWidth := c.Width - axisLabelWidth
	plotHeight := c.Height - 2 // bottom axis + date labels
	if plotWidth < 8 || plotHeight < 3 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (not enough room for chart)")
	}

	minT, maxT := c.timeBounds()

	// Rasterize points onto the grid. Row 0 is the top of the plot.
	grid := make([][]bool, plotHeight)
	for i := range grid {
		grid[i] = make([]bool, plotWidth)
	}
	for _, p := range c.Points {
		x := c.xFor(p.Time, minT, maxT, plotWidth)
		y := c.yFor(p.Value, plotHeight)
		grid[y][x] = true
	}

	marker := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	gridDot := lipgloss.NewStyle().Foreground(theme.Border)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	for row := 0; row < plotHeight; row++ {
		b.WriteString(c.axisLabel(row, plotHeight, label))
		for col := 0; col < plotWidth; col++ {
			if grid[row][col] {
				b.WriteString(marker.Render("●"))
			} else if col%8 == 0 {
				b.WriteString(gridDot.Render("·"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	// Bottom axis.
	b.WriteString(label.Render(strings.Repeat(" ", axisLabelWidth-1) + "+" + strings.Repeat("-", plotWidth)))
	b.WriteString("\n")

	// Date labels under the axis: range start left, range end right.
	left := minT.Format("Jan 02")
	right := maxT.Format("Jan 02")
	gap := plotWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", axisLabelWidth))
	b.WriteString(label.Render(left + strings.Repeat(" ", gap) + right))

	return b.String()
}

// timeBounds returns the oldest and newest plotted timestamps.
func (c Chart) timeBounds() (time.Time, time.Time) {
	minT, maxT := c.Points[0].Time, c.Points[0].Time
	for _, p := range c.Points[1:] {
		if p.Time.Before(minT) {
			minT = p.Time
		}
		if p.Time.After(maxT) {
			maxT = p.Time
		}
	}
	return minT, maxT
}

// xFor maps a timestamp onto a column. A single-instant range centers it.
func (c Chart) xFor(t time.Time, minT, maxT time.Time, plotWidth int) int {
	span := maxT.Sub(minT)
	if span <= 0 {
		return plotWidth / 2
	}
	frac := float64(t.Sub(minT)) / float64(span)
	x := int(frac * float64(plotWidth-1))
	if x < 0 {
		x = 0
	}
	if x > plotWidth-1 {
		x = plotWidth - 1
	}
	return x
}

// yFor maps a score onto a row, clamping out-of-range values to the edges.
func (c Chart) yFor(v, plotHeight int) int {
	if c.MaxValue <= 0 {
		return plotHeight - 1
	}
	frac := float64(v) / float64(c.MaxValue)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	y := int((1 - frac) * float64(plotHeight-1))
	return y
}

// axisLabel renders the y-axis gutter for a row: max at the top, zero at
// the bottom, midpoint between.
func (c Chart) axisLabel(row, plotHeight int, style lipgloss.Style) string {
	var value int
	switch row {
	case 0:
		value = c.MaxValue
	case plotHeight - 1:
		value = 0
	case (plotHeight - 1) / 2:
		value = c.MaxValue / 2
	default:
		return style.Render(strings.Repeat(" ", axisLabelWidth-1) + "|")
	}
	return style.Render(fmt.Sprintf("%*d |", axisLabelWidth-2, value))
}
