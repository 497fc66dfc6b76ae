package motion

import (
	"github.com/gonewx/sitemotion/pkg/components"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// 磁吸效果参数
const (
	DefaultDamping = 0.3

	followDuration = 0.3 // 跟随指针
	returnDuration = 0.5 // 指针离开后回弹
)

var (
	followEase = utils.EaseOutCubic           // power2.out
	returnEase = utils.EaseOutElastic(1, 0.3) // elastic.out(1, 0.3)
)

// Magnet 元素上的磁吸（指针跟随）效果
//
// 指针在元素上移动时，元素的 x/y 缓动到 damping × (指针 − 元素中心)；
// 指针离开时弹性回到 (0, 0)。元素中心取未变换的布局盒。
type Magnet struct {
	rt      *Runtime
	el      *dom.Element
	damping float64

	moveID  uint64
	leaveID uint64
	active  *tween.Tween

	targetX, targetY float64
	detached         bool
}

// AttachMagnetic 在 el 上挂载磁吸效果，damping <= 0 时使用 0.3
// el 为 nil 或已移除时返回 nil
func AttachMagnetic(rt *Runtime, el *dom.Element, damping float64) *Magnet {
	if el == nil || !el.IsConnected() {
		return nil
	}
	if damping <= 0 {
		damping = DefaultDamping
	}
	m := &Magnet{rt: rt, el: el, damping: damping}
	m.moveID = el.AddEventListener(components.PointerMove, m.onMove)
	m.leaveID = el.AddEventListener(components.PointerLeave, m.onLeave)
	return m
}

// Element 返回目标元素
func (m *Magnet) Element() *dom.Element { return m.el }

// Target 返回当前目标偏移
func (m *Magnet) Target() (x, y float64) { return m.targetX, m.targetY }

// IsDetached 是否已卸载
func (m *Magnet) IsDetached() bool { return m.detached }

func (m *Magnet) onMove(clientX, clientY float64) {
	cx, cy := m.el.BoundingClientRect().Center()
	m.targetX = (clientX - cx) * m.damping
	m.targetY = (clientY - cy) * m.damping
	m.tweenTo(followDuration, followEase)
}

func (m *Magnet) onLeave(_, _ float64) {
	m.targetX, m.targetY = 0, 0
	m.tweenTo(returnDuration, returnEase)
}

// tweenTo 覆盖正在进行的补间，从当前值出发
func (m *Magnet) tweenTo(duration float64, ease utils.EaseFunc) {
	if m.detached {
		return
	}
	if m.active != nil {
		m.active.Kill()
	}
	m.active = m.rt.engine.To([]*dom.Element{m.el}, tween.Vars{
		Props:    tween.Props{dom.PropX: m.targetX, dom.PropY: m.targetY},
		Duration: duration,
		Ease:     ease,
	})
}

// Detach 移除监听器并停止进行中的补间，偏移停留在当前值，幂等
func (m *Magnet) Detach() {
	if m == nil || m.detached {
		return
	}
	m.detached = true
	m.el.RemoveEventListener(m.moveID)
	m.el.RemoveEventListener(m.leaveID)
	if m.active != nil {
		m.active.Kill()
		m.active = nil
	}
}
