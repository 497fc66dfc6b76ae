package motion

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/scroll"
	"github.com/gonewx/sitemotion/pkg/tween"
)

// ErrScopeClosed 在已关闭的作用域上创建效果
var ErrScopeClosed = errors.New("motion: scope is closed")

// member 作用域成员：一个效果、一个观察者或一个清理函数
type member struct {
	kind   string
	revert func()
}

// Scope 动画作用域
//
// 通过 Scope 创建的每个效果、观察者和清理函数都是它的成员，
// Close 按创建的逆序撤销全部成员，只执行一次。
type Scope struct {
	id      uuid.UUID
	owner   string
	rt      *Runtime
	members []member
	closed  bool
}

// ID 作用域标识
func (s *Scope) ID() uuid.UUID { return s.id }

// Owner 创建作用域的组件名
func (s *Scope) Owner() string { return s.owner }

// Runtime 所属运行时
func (s *Scope) Runtime() *Runtime { return s.rt }

// Document 所属文档
func (s *Scope) Document() *dom.Document { return s.rt.doc }

// IsClosed 是否已关闭
func (s *Scope) IsClosed() bool { return s.closed }

// Len 当前成员数量
func (s *Scope) Len() int { return len(s.members) }

// Run 同步执行 fn，fn 中通过 s 创建的一切都归 s 所有
func (s *Scope) Run(fn func(s *Scope)) {
	s.mustBeOpen()
	if fn != nil {
		fn(s)
	}
}

func (s *Scope) mustBeOpen() {
	if s.closed {
		panic(fmt.Errorf("%w: %s (%s)", ErrScopeClosed, s.owner, s.id))
	}
}

func (s *Scope) add(kind string, revert func()) {
	s.members = append(s.members, member{kind: kind, revert: revert})
}

// AddCleanup 注册一个在 Close 时执行的清理函数
func (s *Scope) AddCleanup(fn func()) {
	s.mustBeOpen()
	if fn != nil {
		s.add("cleanup", fn)
	}
}

// Set 立即应用属性（零时长），Close 时恢复
func (s *Scope) Set(targets []*dom.Element, props tween.Props) *tween.Tween {
	s.mustBeOpen()
	tw := s.rt.engine.Set(targets, props)
	s.add("tween", tw.Revert)
	return tw
}

// To 创建补间到 vars.Props 的效果
func (s *Scope) To(targets []*dom.Element, vars tween.Vars) *tween.Tween {
	s.mustBeOpen()
	tw := s.rt.engine.To(targets, vars)
	s.add("tween", tw.Revert)
	return tw
}

// FromTo 创建从 from 补间到 vars.Props 的效果
func (s *Scope) FromTo(targets []*dom.Element, from tween.Props, vars tween.Vars) *tween.Tween {
	s.mustBeOpen()
	tw := s.rt.engine.FromTo(targets, from, vars)
	s.add("tween", tw.Revert)
	return tw
}

// Timeline 创建时间轴，Close 时连同其子补间一起撤销
func (s *Scope) Timeline(vars tween.TimelineVars) *tween.Timeline {
	s.mustBeOpen()
	tl := s.rt.engine.Timeline(vars)
	s.add("timeline", tl.Revert)
	return tl
}

// Observe 注册滚动观察者，Close 时注销
func (s *Scope) Observe(cfg scroll.Config) (*scroll.Observer, error) {
	s.mustBeOpen()
	obs, err := s.rt.scroll.Observe(cfg)
	if err != nil {
		return nil, err
	}
	s.add("observer", obs.Dispose)
	return obs, nil
}

// Magnetic 在 el 上挂载磁吸效果
// Close 时移除监听器并恢复挂载前的 x/y 内联值
func (s *Scope) Magnetic(el *dom.Element, damping float64) *Magnet {
	s.mustBeOpen()
	if el == nil || !el.IsConnected() {
		return nil
	}
	x, hasX := el.Style(dom.PropX)
	y, hasY := el.Style(dom.PropY)
	m := AttachMagnetic(s.rt, el, damping)
	s.add("magnetic", func() {
		m.Detach()
		restoreStyle(el, dom.PropX, x, hasX)
		restoreStyle(el, dom.PropY, y, hasY)
	})
	return m
}

func restoreStyle(el *dom.Element, prop string, value float64, set bool) {
	if !el.IsConnected() {
		return
	}
	if set {
		el.SetStyle(prop, value)
	} else {
		el.RemoveStyle(prop)
	}
}

// Close 撤销全部成员，幂等且不会 panic
// 成员按创建的逆序撤销，同一元素上叠加的效果逐层还原到作用域创建之前
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.members) - 1; i >= 0; i-- {
		s.revertMember(s.members[i])
	}
	n := len(s.members)
	s.members = nil
	s.rt.forget(s)
	log.Printf("[Scope] 关闭作用域 %s (%s)，撤销 %d 个成员", s.owner, s.id, n)
}

func (s *Scope) revertMember(m member) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Scope] 撤销 %s 时发生 panic (%s): %v", m.kind, s.owner, r)
		}
	}()
	m.revert()
}
