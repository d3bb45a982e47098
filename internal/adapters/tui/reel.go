package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/xvierd/daylog/internal/config"
	"github.com/xvierd/daylog/internal/domain"
)

// Reel is a vertically scrolling list of activities. Rows have a fixed
// height and the list is padded so that the first and the last row can both
// reach the middle of the visible area.
//
// Offsets are measured in terminal lines from the top of the padded content.
type Reel struct {
	catalog   domain.Catalog
	items     []domain.ActivityName
	rowHeight int
	width     int
	height    int
	offset    int
	mounted   bool
}

// NewReel creates an unmeasured reel over the catalog's activities.
func NewReel(catalog domain.Catalog, rowHeight int) Reel {
	if rowHeight < 1 {
		rowHeight = 1
	}
	return Reel{
		catalog:   catalog,
		items:     catalog.Activities,
		rowHeight: rowHeight,
	}
}

// SetSize measures the reel. The first measurement centres the middle
// entry; later ones keep the current position.
func (r *Reel) SetSize(width, height int) {
	if height <= 0 {
		return
	}
	r.width = width
	r.height = height
	if !r.mounted {
		r.mounted = true
		r.offset = r.offsetFor(r.catalog.Middle())
		return
	}
	r.offset = r.clamp(r.snap(r.offset))
}

// Measured reports whether the reel has been laid out.
func (r Reel) Measured() bool {
	return r.mounted && r.height > 0
}

// Height returns the measured height in lines.
func (r Reel) Height() int {
	return r.height
}

// Len returns the number of rows.
func (r Reel) Len() int {
	return len(r.items)
}

// pad is the blank space above the first row.
func (r Reel) pad() int {
	p := (r.height - r.rowHeight) / 2
	if p < 0 {
		return 0
	}
	return p
}

// offsetFor returns the scroll offset that centres row i.
func (r Reel) offsetFor(i int) int {
	return r.clamp(i * r.rowHeight)
}

func (r Reel) maxOffset() int {
	if len(r.items) == 0 {
		return 0
	}
	return (len(r.items) - 1) * r.rowHeight
}

func (r Reel) clamp(offset int) int {
	return max(0, min(offset, r.maxOffset()))
}

// snap rounds offset to the nearest row boundary.
func (r Reel) snap(offset int) int {
	rows := int(math.Round(float64(offset) / float64(r.rowHeight)))
	return rows * r.rowHeight
}

// rowCenter returns the vertical centre of row i relative to the top of the
// visible area.
func (r Reel) rowCenter(i int) float64 {
	top := r.pad() + i*r.rowHeight - r.offset
	return float64(top) + float64(r.rowHeight)/2
}

// centeredIndex returns the row nearest the visible centre, or -1 when the
// reel cannot be measured.
func (r Reel) centeredIndex() int {
	if !r.Measured() || len(r.items) == 0 {
		return -1
	}
	center := float64(r.height) / 2
	best := -1
	bestDist := math.Inf(1)
	for i := range r.items {
		d := math.Abs(r.rowCenter(i) - center)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Centered returns the activity nearest the middle of the reel. Before the
// reel is measured it falls back to the first entry.
func (r Reel) Centered() domain.ActivityName {
	i := r.centeredIndex()
	if i < 0 {
		return r.catalog.First()
	}
	return r.items[i]
}

// ScrollBy moves the reel by n rows; negative moves up.
func (r *Reel) ScrollBy(n int) {
	if !r.Measured() {
		return
	}
	r.offset = r.clamp(r.snap(r.offset + n*r.rowHeight))
}

// ScrollTo centres row i.
func (r *Reel) ScrollTo(i int) {
	if !r.Measured() || len(r.items) == 0 {
		return
	}
	r.offset = r.offsetFor(i)
}

// PageRows is the number of rows a page scroll moves.
func (r Reel) PageRows() int {
	return max(1, r.height/r.rowHeight)
}

// JumpTo centres the best fuzzy match for query. It returns false and leaves
// the reel untouched when nothing matches.
func (r *Reel) JumpTo(query string) bool {
	query = strings.TrimSpace(query)
	if query == "" || !r.Measured() {
		return false
	}
	names := make([]string, len(r.items))
	for i, item := range r.items {
		names[i] = string(item)
	}
	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return false
	}
	r.ScrollTo(matches[0].Index)
	return true
}

// View renders the visible part of the reel.
func (r Reel) View(theme config.ThemeConfig) string {
	if !r.Measured() {
		return ""
	}

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorReel)).Width(r.width).Align(lipgloss.Center)
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorSelected)).Bold(true).Width(r.width).Align(lipgloss.Center)

	selected := r.centeredIndex()
	pad := r.pad()
	labelLine := r.rowHeight / 2

	lines := make([]string, 0, r.height)
	for l := r.offset; l < r.offset+r.height; l++ {
		k := l - pad
		if k < 0 || k >= len(r.items)*r.rowHeight {
			lines = append(lines, rowStyle.Render(""))
			continue
		}
		row := k / r.rowHeight
		if k%r.rowHeight != labelLine {
			lines = append(lines, rowStyle.Render(""))
			continue
		}
		label := string(r.items[row])
		if row == selected {
			lines = append(lines, selectedStyle.Render(theme.IconPointer+" "+label))
		} else {
			lines = append(lines, rowStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}
