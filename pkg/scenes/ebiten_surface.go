package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/media"
	"github.com/decker502/snake/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface 基于 Ebitengine 的 systems.Surface 实现
//
// 贴图按角色从 ResourceManager 取出（未加载时跳过绘制），
// 文字使用内置 Go Regular 字体。
type EbitenSurface struct {
	target *ebiten.Image
	rm     *media.ResourceManager

	fontSize float64
	align    systems.TextAlign
	fill     color.Color
}

var _ systems.Surface = (*EbitenSurface)(nil)

// NewEbitenSurface 创建绘图表面
func NewEbitenSurface(rm *media.ResourceManager) *EbitenSurface {
	return &EbitenSurface{
		rm:       rm,
		fontSize: 20,
		fill:     color.White,
	}
}

// SetTarget 设置本帧的绘制目标
func (s *EbitenSurface) SetTarget(screen *ebiten.Image) {
	s.target = screen
}

// Clear 用纯色填满整个画面
func (s *EbitenSurface) Clear(c color.Color) {
	s.target.Fill(c)
}

// FillRect 填充矩形
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.target, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawImage 把贴图缩放到指定矩形
func (s *EbitenSurface) DrawImage(role components.SpriteRole, x, y, w, h float64) {
	img := s.sprite(role)
	if img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	s.target.DrawImage(img, op)
}

// DrawImageRotated 以 (cx, cy) 为中心绘制旋转后的贴图
func (s *EbitenSurface) DrawImageRotated(role components.SpriteRole, cx, cy, w, h, angle float64) {
	img := s.sprite(role)
	if img == nil {
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	// 先把贴图中心移到原点，再缩放、旋转、移到目标中心
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	s.target.DrawImage(img, op)
}

// SetFont 设置字号
func (s *EbitenSurface) SetFont(size float64) {
	s.fontSize = size
}

// SetTextAlign 设置水平对齐
func (s *EbitenSurface) SetTextAlign(align systems.TextAlign) {
	s.align = align
}

// SetFillColor 设置文字颜色
func (s *EbitenSurface) SetFillColor(c color.Color) {
	s.fill = c
}

// FillText 绘制文字，y 为基线位置
func (s *EbitenSurface) FillText(str string, x, y float64) {
	if s.rm == nil {
		return
	}
	face, err := s.rm.LoadDefaultFont(s.fontSize)
	if err != nil {
		log.Printf("[EbitenSurface] Warning: %v", err)
		return
	}

	op := &text.DrawOptions{}
	// text.Draw 以行顶部为原点，换算成基线
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(s.fill)
	if s.align == systems.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.target, str, face, op)
}

func (s *EbitenSurface) sprite(role components.SpriteRole) *ebiten.Image {
	if s.rm == nil {
		return nil
	}
	return s.rm.GetImageByID(role.ResourceID())
}
