package config

import "testing"

func TestButtonOrigins(t *testing.T) {
	pauseX, pauseY, muteX, muteY := ButtonOrigins(400)

	// 两个按钮总宽 256，居中后左边距 72
	if pauseX != 72 {
		t.Errorf("pauseX: got %v, want 72", pauseX)
	}
	if muteX != pauseX+ButtonWidth+ButtonGap {
		t.Errorf("muteX: got %v, want %v", muteX, pauseX+ButtonWidth+ButtonGap)
	}
	if pauseY != muteY {
		t.Errorf("buttons should share a row: %v vs %v", pauseY, muteY)
	}
	if pauseY < 400 || pauseY+ButtonHeight > 400+ButtonBarHeight {
		t.Errorf("buttons should sit inside the bar, got y=%v", pauseY)
	}

	// 右边距与左边距相等
	right := 400 - (muteX + ButtonWidth)
	if right != pauseX {
		t.Errorf("buttons not centred: left %v, right %v", pauseX, right)
	}
}
