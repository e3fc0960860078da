// Package terminal 终端版前端
//
// 用 tcell 把同一套 RenderSystem 的输出画到字符终端上：
// 每个棋盘格子占两列一行，贴图换成带颜色的字符。
package terminal

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

// CellsPerTile 每个棋盘格子占用的终端列数（终端字符大约是 1:2 的长方形）
const CellsPerTile = 2

// CellSetter tcell.Screen 中 Surface 用到的部分
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// glyph 贴图在终端上的替代字符
type glyph struct {
	runes [CellsPerTile]rune
	fg    tcell.Color
}

var spriteGlyphs = map[components.SpriteRole]glyph{
	components.SpriteFood: {runes: [CellsPerTile]rune{'(', ')'}, fg: tcell.ColorRed},
	components.SpriteBody: {runes: [CellsPerTile]rune{'█', '█'}, fg: tcell.ColorGreen},
	components.SpriteTail: {runes: [CellsPerTile]rune{'▓', '▓'}, fg: tcell.ColorDarkGreen},
}

// Surface 把逻辑像素坐标的绘图命令换算到终端字符格
//
// 列 = x * 2 / gridSize，行 = y / gridSize。
// 终端没有透明度，所以自己记录每格的背景色，文字画在已有背景上。
type Surface struct {
	target   CellSetter
	gridSize float64
	cols     int
	rows     int
	bg       []tcell.Color
	fill     tcell.Color
	align    systems.TextAlign
}

// NewSurface 创建终端绘图面
//
// 参数：
//   - target: 通常是 tcell.Screen
//   - gridSize: 格子像素大小
//   - width, height: 逻辑像素尺寸（棋盘加按钮栏）
func NewSurface(target CellSetter, gridSize, width, height int) *Surface {
	cols := width * CellsPerTile / gridSize
	rows := height / gridSize
	return &Surface{
		target:   target,
		gridSize: float64(gridSize),
		cols:     cols,
		rows:     rows,
		bg:       make([]tcell.Color, cols*rows),
		fill:     tcell.ColorWhite,
	}
}

// Size 返回需要的终端尺寸（列，行）
func (s *Surface) Size() (int, int) {
	return s.cols, s.rows
}

func (s *Surface) col(x float64) int {
	return int(math.Floor(x * CellsPerTile / s.gridSize))
}

func (s *Surface) row(y float64) int {
	return int(math.Floor(y / s.gridSize))
}

// textRow 基线所在行的上一行（文字画在基线上方）
func (s *Surface) textRow(y float64) int {
	return int(math.Ceil(y/s.gridSize)) - 1
}

func (s *Surface) inside(col, row int) bool {
	return col >= 0 && col < s.cols && row >= 0 && row < s.rows
}

func (s *Surface) background(col, row int) tcell.Color {
	return s.bg[row*s.cols+col]
}

func (s *Surface) set(col, row int, r rune, style tcell.Style) {
	if !s.inside(col, row) {
		return
	}
	s.target.SetContent(col, row, r, nil, style)
}

func (s *Surface) Clear(c color.Color) {
	s.fillCells(0, 0, s.cols, s.rows, tcell.FromImageColor(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	col0, row0 := s.col(x), s.row(y)
	col1 := int(math.Ceil((x + w) * CellsPerTile / s.gridSize))
	row1 := int(math.Ceil((y + h) / s.gridSize))
	s.fillCells(col0, row0, col1, row1, tcell.FromImageColor(c))
}

func (s *Surface) fillCells(col0, row0, col1, row1 int, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			if !s.inside(col, row) {
				continue
			}
			s.bg[row*s.cols+col] = bg
			s.set(col, row, ' ', style)
		}
	}
}

func (s *Surface) DrawImage(role components.SpriteRole, x, y, w, h float64) {
	g, ok := spriteGlyphs[role]
	if !ok {
		return
	}
	s.drawGlyph(g, s.col(x), s.row(y))
}

// DrawImageRotated 蛇头按角度换成箭头字符
func (s *Surface) DrawImageRotated(role components.SpriteRole, cx, cy, w, h, angle float64) {
	g, ok := spriteGlyphs[role]
	if role == components.SpriteHead {
		g, ok = headGlyph(angle), true
	}
	if !ok {
		return
	}
	s.drawGlyph(g, s.col(cx-w/2), s.row(cy-h/2))
}

func (s *Surface) drawGlyph(g glyph, col, row int) {
	for i, r := range g.runes {
		c := col + i
		if !s.inside(c, row) {
			continue
		}
		s.set(c, row, r, tcell.StyleDefault.Foreground(g.fg).Background(s.background(c, row)))
	}
}

// headGlyph 蛇头朝向：0 向右，π 向左，-π/2 向上，π/2 向下
func headGlyph(angle float64) glyph {
	arrow := '▶'
	switch dx, dy := math.Cos(angle), math.Sin(angle); {
	case dx < -0.5:
		arrow = '◀'
	case dy < -0.5:
		arrow = '▲'
	case dy > 0.5:
		arrow = '▼'
	}
	return glyph{runes: [CellsPerTile]rune{arrow, ' '}, fg: tcell.ColorLime}
}

// SetFont 终端只有一种字号
func (s *Surface) SetFont(size float64) {}

func (s *Surface) SetTextAlign(align systems.TextAlign) {
	s.align = align
}

func (s *Surface) SetFillColor(c color.Color) {
	s.fill = tcell.FromImageColor(c)
}

func (s *Surface) FillText(text string, x, y float64) {
	col := s.col(x)
	if s.align == systems.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	row := s.textRow(y)

	for _, r := range text {
		if s.inside(col, row) {
			s.set(col, row, r, tcell.StyleDefault.Foreground(s.fill).Background(s.background(col, row)))
		}
		col++
	}
}

// PixelAt 终端格子中心对应的逻辑像素坐标（用于鼠标点击）
func (s *Surface) PixelAt(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) * s.gridSize / CellsPerTile
	y := (float64(row) + 0.5) * s.gridSize
	return x, y
}

var _ systems.Surface = (*Surface)(nil)
