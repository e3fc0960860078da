package systems

import (
	"fmt"
	"image/color"

	"github.com/decker502/snake/pkg/components"
	"github.com/decker502/snake/pkg/config"
	"github.com/decker502/snake/pkg/game"
)

// TextAlign 文字水平对齐方式
type TextAlign int

const (
	// AlignStart 以 x 为文字左端
	AlignStart TextAlign = iota
	// AlignCenter 以 x 为文字中心
	AlignCenter
)

// Surface 2D 绘图目标
//
// 坐标为逻辑像素，文字的 y 坐标是基线位置。
// 绘制未加载的贴图时什么也不做。
type Surface interface {
	// Clear 用纯色填满整个画面
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// DrawImage 把贴图缩放到 (x, y, w, h)
	DrawImage(role components.SpriteRole, x, y, w, h float64)
	// DrawImageRotated 以 (cx, cy) 为中心绘制旋转后的贴图，angle 为弧度（顺时针）
	DrawImageRotated(role components.SpriteRole, cx, cy, w, h, angle float64)
	SetFont(size float64)
	SetTextAlign(align TextAlign)
	SetFillColor(c color.Color)
	FillText(text string, x, y float64)
}

// 颜色
var (
	ColorBackground   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorText         = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorButtonBar    = color.RGBA{R: 34, G: 34, B: 34, A: 255}
	ColorButton       = color.RGBA{R: 68, G: 68, B: 68, A: 255}
	ColorButtonActive = color.RGBA{R: 46, G: 125, B: 50, A: 255}
)

// RenderSystem 把游戏状态画到 Surface 上
// 只读状态，不做任何修改
type RenderSystem struct {
	gridSize   float64
	canvasSize float64
	buttons    *ButtonSystem
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(cfg *config.GameConfig, buttons *ButtonSystem) *RenderSystem {
	return &RenderSystem{
		gridSize:   float64(cfg.Canvas.GridSize),
		canvasSize: float64(cfg.Canvas.Size),
		buttons:    buttons,
	}
}

// Draw 绘制一帧
//
// 顺序：背景 → 食物 → 蛇 → 分数 → 暂停提示 → 按钮栏
func (s *RenderSystem) Draw(surface Surface, gs game.GameState) {
	surface.Clear(ColorBackground)

	g := s.gridSize
	surface.DrawImage(components.SpriteFood, float64(gs.Food.X)*g, float64(gs.Food.Y)*g, g, g)

	s.drawSnake(surface, gs)
	s.drawHUD(surface, gs)
	s.drawButtonBar(surface, gs)
}

func (s *RenderSystem) drawSnake(surface Surface, gs game.GameState) {
	g := s.gridSize
	last := len(gs.Snake) - 1

	for i, part := range gs.Snake {
		x := float64(part.X) * g
		y := float64(part.Y) * g

		switch {
		case i == 0:
			// 蛇头贴图朝右，按速度旋转
			surface.DrawImageRotated(components.SpriteHead, x+g/2, y+g/2, g, g, gs.Velocity.Angle())
		case i == last:
			surface.DrawImage(components.SpriteTail, x, y, g, g)
		default:
			surface.DrawImage(components.SpriteBody, x, y, g, g)
		}
	}
}

func (s *RenderSystem) drawHUD(surface Surface, gs game.GameState) {
	surface.SetFillColor(ColorText)
	surface.SetFont(config.HUDFontSize)
	surface.SetTextAlign(AlignStart)
	surface.FillText(fmt.Sprintf("Score: %d", gs.Score), config.ScoreTextX, config.ScoreTextY)
	surface.FillText(fmt.Sprintf("High Score: %d", gs.HighScore), config.ScoreTextX, config.HighScoreTextY)

	if gs.Paused {
		surface.SetFont(config.PausedFontSize)
		surface.SetTextAlign(AlignCenter)
		surface.FillText("PAUSED", s.canvasSize/2, s.canvasSize/2)
		surface.SetTextAlign(AlignStart)
	}
}

func (s *RenderSystem) drawButtonBar(surface Surface, gs game.GameState) {
	if s.buttons == nil {
		return
	}

	surface.FillRect(0, s.canvasSize, s.canvasSize, config.ButtonBarHeight, ColorButtonBar)

	surface.SetFont(config.ButtonFontSize)
	surface.SetTextAlign(AlignCenter)
	for _, button := range s.buttons.Buttons(gs) {
		fill := ColorButton
		if (button.ID == components.ButtonPause && gs.Paused) || (button.ID == components.ButtonMute && gs.Muted) {
			fill = ColorButtonActive
		}
		b := button.Bounds
		surface.FillRect(b.X, b.Y, b.W, b.H, fill)

		surface.SetFillColor(ColorText)
		// 基线约在字号的 0.35 倍处，让文字在按钮内垂直居中
		surface.FillText(button.Label, b.X+b.W/2, b.Y+b.H/2+config.ButtonFontSize*0.35)
	}
	surface.SetTextAlign(AlignStart)
}
