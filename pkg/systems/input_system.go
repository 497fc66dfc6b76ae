package systems

import (
	"log"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/ui"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// InputSystem 把指针、滚轮和触摸拖拽转换为文档事件和滚动
//
// 输入由调用方每帧读取（utils.ReadPointer / utils.ReadWheel）后传入，
// 系统本身不访问 ebiten，便于无窗口测试。
type InputSystem struct {
	doc    *dom.Document
	navbar *ui.Navbar
	drag   utils.DragTracker

	lastX, lastY float64
	inWindow     bool
	hasPointer   bool
}

// NewInputSystem 创建输入系统，navbar 可为 nil
func NewInputSystem(doc *dom.Document, navbar *ui.Navbar) *InputSystem {
	return &InputSystem{doc: doc, navbar: navbar}
}

// Update 处理一帧的输入
// wheelY 为滚轮增量（向上为正），返回导航栏的 scrolled 状态是否变化
func (s *InputSystem) Update(pointer utils.PointerSnapshot, wheelY float64) bool {
	dy := -wheelY * config.ScrollStep
	// 手指向上拖动时页面向下滚动
	dy -= float64(s.drag.Update(pointer))

	scrolled := false
	if dy != 0 {
		if s.navbar != nil && s.navbar.ScrollLocked() {
			log.Printf("[InputSystem] 菜单打开，忽略滚动")
		} else {
			before := s.doc.ScrollY()
			s.doc.ScrollBy(dy)
			scrolled = s.doc.ScrollY() != before
		}
	}
	// 页面滚动后指针下的元素可能变化
	s.updatePointer(pointer, scrolled)

	if s.navbar == nil {
		return false
	}
	return s.navbar.Update(s.doc.ScrollY())
}

func (s *InputSystem) updatePointer(p utils.PointerSnapshot, force bool) {
	if !p.InWindow {
		if s.inWindow {
			s.doc.DispatchPointerLeave()
		}
		s.inWindow = false
		return
	}

	x, y := float64(p.X), float64(p.Y)
	moved := force || !s.hasPointer || !s.inWindow || x != s.lastX || y != s.lastY
	s.lastX, s.lastY = x, y
	s.inWindow = true
	s.hasPointer = true
	if moved {
		s.doc.DispatchPointerMove(x, y)
	}
}

// SetDocument 切换到新页面的文档，清除指针状态
func (s *InputSystem) SetDocument(doc *dom.Document) {
	s.doc = doc
	s.drag.Reset()
	s.inWindow = false
	s.hasPointer = false
}
