// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSnapshot 一帧的指针状态
// 同时覆盖鼠标和触摸输入，触摸优先
type PointerSnapshot struct {
	X, Y        int
	Pressed     bool // 鼠标左键按下或有活动触摸
	JustPressed bool // 本帧刚按下
	Touch       bool // 来自触摸
	InWindow    bool // 指针位于逻辑屏幕内
}

// ReadPointer 读取当前帧的指针状态
// width、height 为逻辑屏幕尺寸，用于判断鼠标是否移出窗口
func ReadPointer(width, height int) PointerSnapshot {
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSnapshot{X: x, Y: y, Pressed: true, JustPressed: true, Touch: true, InWindow: true}
	}
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return PointerSnapshot{X: x, Y: y, Pressed: true, Touch: true, InWindow: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerSnapshot{
		X:           x,
		Y:           y,
		Pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		InWindow:    x >= 0 && y >= 0 && x < width && y < height,
	}
}

// ReadWheel 返回本帧滚轮的垂直增量，向上滚为正
func ReadWheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

// ============================================================================
// 触摸拖拽 - 移动端用手指拖动页面滚动
// ============================================================================

// DragState 拖拽状态
type DragState int

const (
	// DragStateNone 无拖拽
	DragStateNone DragState = iota
	// DragStateStarted 拖拽开始（刚按下）
	DragStateStarted
	// DragStateDragging 拖拽中（按住移动）
	DragStateDragging
	// DragStateEnded 拖拽结束（释放），只持续一帧
	DragStateEnded
)

// DragTracker 跟踪触摸拖拽，把手指移动转换为每帧的位移
// 鼠标按下不会开始拖拽，桌面端用滚轮滚动
type DragTracker struct {
	state          DragState
	startX, startY int
	lastX, lastY   int
}

// Update 用本帧的指针状态推进拖拽，返回本帧的垂直位移（像素）
func (d *DragTracker) Update(p PointerSnapshot) (dy int) {
	switch d.state {
	case DragStateNone:
		if p.JustPressed && p.Touch {
			d.state = DragStateStarted
			d.startX, d.startY = p.X, p.Y
			d.lastX, d.lastY = p.X, p.Y
		}
		return 0

	case DragStateStarted, DragStateDragging:
		if !p.Pressed {
			d.state = DragStateEnded
			return 0
		}
		d.state = DragStateDragging
		dy = p.Y - d.lastY
		d.lastX, d.lastY = p.X, p.Y
		return dy

	case DragStateEnded:
		d.Reset()
	}
	return 0
}

// Reset 重置拖拽状态
func (d *DragTracker) Reset() {
	*d = DragTracker{}
}

// State 当前拖拽状态
func (d *DragTracker) State() DragState {
	return d.state
}

// IsDragging 是否正在拖拽
func (d *DragTracker) IsDragging() bool {
	return d.state == DragStateStarted || d.state == DragStateDragging
}

// Distance 从起点到当前位置的距离
func (d *DragTracker) Distance() (dx, dy int) {
	if d.state == DragStateNone {
		return 0, 0
	}
	return d.lastX - d.startX, d.lastY - d.startY
}
