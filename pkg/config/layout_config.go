package config

// 布局配置常量
// 本文件定义了 HUD 文字和底部按钮栏的位置参数，单位均为逻辑像素

// HUD 文字（叠加在画布左上角）
const (
	// ScoreTextX 分数文字的 X 坐标
	ScoreTextX = 10.0

	// ScoreTextY 当前分数文字的基线 Y 坐标
	ScoreTextY = 20.0

	// HighScoreTextY 最高分文字的基线 Y 坐标
	HighScoreTextY = 45.0

	// HUDFontSize 分数文字字号
	HUDFontSize = 20.0

	// PausedFontSize 暂停提示字号（画布中央）
	PausedFontSize = 40.0
)

// 底部按钮栏（位于画布下方）
const (
	// ButtonBarHeight 按钮栏高度
	ButtonBarHeight = 40

	// ButtonWidth 按钮宽度
	ButtonWidth = 120.0

	// ButtonHeight 按钮高度
	ButtonHeight = 28.0

	// ButtonGap 两个按钮之间的间距
	ButtonGap = 16.0

	// ButtonFontSize 按钮文字字号
	ButtonFontSize = 16.0
)

// ButtonOrigins 返回暂停按钮和静音按钮左上角的坐标
// 两个按钮在按钮栏中水平居中
//
// 参数：
//   - canvasSize: 画布边长（像素）
func ButtonOrigins(canvasSize int) (pauseX, pauseY, muteX, muteY float64) {
	total := ButtonWidth*2 + ButtonGap
	pauseX = (float64(canvasSize) - total) / 2
	muteX = pauseX + ButtonWidth + ButtonGap
	pauseY = float64(canvasSize) + (ButtonBarHeight-ButtonHeight)/2
	muteY = pauseY
	return pauseX, pauseY, muteX, muteY
}
