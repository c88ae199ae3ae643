package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/perchkit/perch/pkg/anchor"
	"github.com/perchkit/perch/pkg/attach"
	"github.com/perchkit/perch/pkg/geom"
)

// previewCommand creates the interactive terminal preview.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		sizeStr   string
		boundsStr string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Explore placements interactively in the terminal",
		Long: `Preview opens a terminal canvas with a workarea, an attachment
rectangle you move with the arrow keys, and the window the engine
places against it. Watch the window flip and clamp as the rectangle
approaches the edges.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(sizeStr)
			if err != nil {
				return err
			}
			bounds, err := parseRect(boundsStr)
			if err != nil {
				return err
			}
			m := newPreviewModel(size, bounds)
			_, err = tea.NewProgram(m).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&sizeStr, "size", "240,320", "window size as w,h")
	cmd.Flags().StringVar(&boundsStr, "bounds", "0,0,1280,800", "workarea as x,y,w,h")

	return cmd
}

// =============================================================================
// previewModel - Interactive placement exploration
// =============================================================================

// previewAnchors is the cycling order for the anchor keys.
var previewAnchors = []anchor.Anchor{
	anchor.TopLeft, anchor.Top, anchor.TopRight,
	anchor.Left, anchor.Middle, anchor.Right,
	anchor.BottomLeft, anchor.Bottom, anchor.BottomRight,
}

// Canvas dimensions in character cells.
const (
	previewCols = 72
	previewRows = 22

	// Attachment rectangle size and arrow-key step in root pixels.
	previewRectW = 120
	previewRectH = 40
	previewStep  = 20
)

// previewModel is the bubbletea model for the placement preview.
type previewModel struct {
	bounds     geom.Rect
	windowSize geom.Size
	rectPos    geom.Point
	rectAnchor int // index into previewAnchors
	winAnchor  int
	flipX      bool
	flipY      bool

	result attach.Result
	err    error
}

func newPreviewModel(size geom.Size, bounds geom.Rect) previewModel {
	m := previewModel{
		bounds:     bounds,
		windowSize: size,
		rectPos:    bounds.Center(),
		rectAnchor: indexOfAnchor(anchor.Bottom),
		winAnchor:  indexOfAnchor(anchor.Top),
		flipX:      true,
		flipY:      true,
	}
	m.resolve()
	return m
}

func indexOfAnchor(a anchor.Anchor) int {
	for i, p := range previewAnchors {
		if p == a {
			return i
		}
	}
	return 0
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.rectPos.Y -= previewStep
		case "down", "j":
			m.rectPos.Y += previewStep
		case "left", "h":
			m.rectPos.X -= previewStep
		case "right", "l":
			m.rectPos.X += previewStep
		case "a":
			m.rectAnchor = (m.rectAnchor + 1) % len(previewAnchors)
		case "w":
			m.winAnchor = (m.winAnchor + 1) % len(previewAnchors)
		case "x":
			m.flipX = !m.flipX
		case "y":
			m.flipY = !m.flipY
		}
		m.resolve()
	}
	return m, nil
}

// attachRect returns the attachment rectangle centered on rectPos.
func (m *previewModel) attachRect() geom.Rect {
	return geom.Rect{
		X: m.rectPos.X - previewRectW/2,
		Y: m.rectPos.Y - previewRectH/2,
		W: previewRectW,
		H: previewRectH,
	}
}

func (m *previewModel) resolve() {
	p := attach.NewParams()
	p.SetAttachRect(m.attachRect(), nil)
	p.SetAnchors(previewAnchors[m.rectAnchor], previewAnchors[m.winAnchor])
	p.SetFlipHints(m.flipX, m.flipY)

	bounds := m.bounds
	m.result, m.err = attach.Resolve(p, m.windowSize, geom.Insets{}, &bounds)
}

// =============================================================================
// View
// =============================================================================

var (
	previewBorder = lipgloss.NewStyle().Foreground(colorDim)
	previewWin    = lipgloss.NewStyle().Foreground(colorCyan)
	previewRect   = lipgloss.NewStyle().Foreground(colorYellow)
)

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Placement Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("arrows move rect  a/w cycle anchors  x/y toggle flips  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderCanvas())
	b.WriteString("\n")

	ra := previewAnchors[m.rectAnchor]
	wa := previewAnchors[m.winAnchor]
	b.WriteString(StyleDim.Render("anchors ") + StyleValue.Render(fmt.Sprintf("%s %s %s", ra, iconArrow, wa)))
	b.WriteString(StyleDim.Render("   flips ") + StyleValue.Render(fmt.Sprintf("x=%t y=%t", m.flipX, m.flipY)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render(m.err.Error()))
	} else {
		b.WriteString(StyleDim.Render("result  ") + StyleValue.Render(m.result.String()))
		if m.result.Clamped() {
			b.WriteString(StyleWarning.Render("  clamped"))
		}
	}
	b.WriteString("\n")

	return b.String()
}

// renderCanvas draws the workarea as a character grid with the
// attachment rectangle and the placed window scaled into it.
func (m previewModel) renderCanvas() string {
	grid := make([][]rune, previewRows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", previewCols))
	}

	window := geom.Rect{X: m.result.X, Y: m.result.Y, W: m.windowSize.W, H: m.windowSize.H}
	m.paint(grid, window, '#')
	m.paint(grid, m.attachRect(), '@')

	var b strings.Builder
	border := previewBorder.Render("+" + strings.Repeat("-", previewCols) + "+")
	b.WriteString(border)
	b.WriteString("\n")
	for _, row := range grid {
		b.WriteString(previewBorder.Render("|"))
		b.WriteString(styleCanvasRow(string(row)))
		b.WriteString(previewBorder.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border)
	b.WriteString("\n")
	return b.String()
}

// paint fills the cells covered by r, clipped to the canvas.
func (m previewModel) paint(grid [][]rune, r geom.Rect, ch rune) {
	x0, y0 := m.toCell(r.X, r.Y)
	x1, y1 := m.toCell(r.MaxX(), r.MaxY())
	for y := max(y0, 0); y <= min(y1, previewRows-1); y++ {
		for x := max(x0, 0); x <= min(x1, previewCols-1); x++ {
			grid[y][x] = ch
		}
	}
}

// toCell maps root coordinates into canvas cells.
func (m previewModel) toCell(x, y int) (int, int) {
	cx := (x - m.bounds.X) * previewCols / m.bounds.W
	cy := (y - m.bounds.Y) * previewRows / m.bounds.H
	return cx, cy
}

// styleCanvasRow colors the window and rectangle cells.
func styleCanvasRow(row string) string {
	var b strings.Builder
	for _, ch := range row {
		switch ch {
		case '#':
			b.WriteString(previewWin.Render(string(ch)))
		case '@':
			b.WriteString(previewRect.Render(string(ch)))
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}
