// Package scroll 实现滚动观察者
//
// Observer 把触发元素相对视口的滚动位置映射为离散的越界动作
// （播放、反向等）或连续的 scrub 进度。Registry 每帧最多测量一次：
// 只有当文档的布局版本变化（滚动、视口尺寸或布局改变）时才重新计算阈值并求值。
package scroll

import (
	"math"

	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// Config 观察者配置
type Config struct {
	// Trigger 触发元素，必填
	Trigger *dom.Element
	// Start / End 阈值字符串，为空时使用 DefaultStart / DefaultEnd
	Start string
	End   string

	// Animation 被驱动的动画，可为空（只用回调）
	Animation tween.Animation
	// Actions 越界时对 Animation 执行的动作，零值表示 PlayOnce
	// Scrub 启用时忽略
	Actions ToggleActions
	Scrub   Scrub

	OnEnter     func()
	OnLeave     func()
	OnEnterBack func()
	OnLeaveBack func()
	// OnToggle 在活动区间内外切换时调用
	OnToggle func(active bool)
	// OnUpdate 滚动进度变化时调用
	OnUpdate func(progress float64)
}

type state int

const (
	stateBefore state = iota // 尚未到达 start
	stateActive              // 位于 start 与 end 之间
	stateAfter               // 已越过 end
)

// Observer 一个滚动观察者
type Observer struct {
	id       uint64
	registry *Registry
	cfg      Config

	start, end       Threshold
	startPos, endPos float64

	state     state
	evaluated bool
	progress  float64 // 滚动进度
	smoothed  float64 // scrub 平滑后的进度
	disposed  bool
}

// Trigger 返回触发元素
func (o *Observer) Trigger() *dom.Element {
	return o.cfg.Trigger
}

// Animation 返回被驱动的动画
func (o *Observer) Animation() tween.Animation {
	return o.cfg.Animation
}

// Start 返回最近一次测量的 start 滚动位置
func (o *Observer) Start() float64 { return o.startPos }

// End 返回最近一次测量的 end 滚动位置
func (o *Observer) End() float64 { return o.endPos }

// Progress 返回滚动进度 [0, 1]
func (o *Observer) Progress() float64 { return o.progress }

// IsActive 滚动位置是否位于 start 与 end 之间
func (o *Observer) IsActive() bool { return o.state == stateActive }

// IsDisposed 是否已经注销
func (o *Observer) IsDisposed() bool { return o.disposed }

// Dispose 从注册表注销，幂等
// 不会 Revert 被驱动的动画，动画由其创建者负责
func (o *Observer) Dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	if o.registry != nil {
		o.registry.remove(o)
	}
}

// measure 重新计算阈值位置
func (o *Observer) measure(viewportHeight float64) {
	box := o.cfg.Trigger.Box()
	o.startPos = o.start.ScrollPosition(box, viewportHeight)
	o.endPos = o.end.ScrollPosition(box, viewportHeight)
}

// evaluate 根据滚动位置更新状态并派发越界事件
func (o *Observer) evaluate(scrollY float64) {
	var next state
	switch {
	case scrollY < o.startPos:
		next = stateBefore
	case scrollY > o.endPos:
		next = stateAfter
	default:
		next = stateActive
	}

	progress := 0.0
	if o.endPos > o.startPos {
		progress = utils.Clamp01((scrollY - o.startPos) / (o.endPos - o.startPos))
	} else if scrollY >= o.startPos {
		progress = 1
	}
	changed := !o.evaluated || math.Abs(progress-o.progress) > 1e-9
	o.progress = progress

	if o.cfg.Scrub.Enabled && o.cfg.Animation != nil {
		if o.cfg.Scrub.Smoothing <= 0 || !o.evaluated {
			o.smoothed = progress
			o.cfg.Animation.SetProgress(progress)
		}
	}

	prev := o.state
	o.state = next
	o.evaluated = true
	if prev != next {
		o.transition(prev, next)
	}
	if changed && o.cfg.OnUpdate != nil {
		o.cfg.OnUpdate(progress)
	}
}

// transition 派发 prev → next 之间经过的每个越界事件
// 一帧内跳过整个区间时 enter 与 leave 都会触发
func (o *Observer) transition(prev, next state) {
	switch {
	case prev == stateBefore && next == stateActive:
		o.enter()
	case prev == stateBefore && next == stateAfter:
		o.enter()
		o.leave()
	case prev == stateActive && next == stateAfter:
		o.leave()
	case prev == stateAfter && next == stateActive:
		o.enterBack()
	case prev == stateAfter && next == stateBefore:
		o.enterBack()
		o.leaveBack()
	case prev == stateActive && next == stateBefore:
		o.leaveBack()
	}
}

func (o *Observer) fire(action Action, callback func(), active bool) {
	if !o.cfg.Scrub.Enabled {
		action.apply(o.cfg.Animation)
	}
	if callback != nil {
		callback()
	}
	if o.cfg.OnToggle != nil {
		o.cfg.OnToggle(active)
	}
}

func (o *Observer) enter()     { o.fire(o.cfg.Actions.OnEnter, o.cfg.OnEnter, true) }
func (o *Observer) leave()     { o.fire(o.cfg.Actions.OnLeave, o.cfg.OnLeave, false) }
func (o *Observer) enterBack() { o.fire(o.cfg.Actions.OnEnterBack, o.cfg.OnEnterBack, true) }
func (o *Observer) leaveBack() { o.fire(o.cfg.Actions.OnLeaveBack, o.cfg.OnLeaveBack, false) }

// smooth 让 scrub 进度在 Smoothing 秒内追上滚动进度
func (o *Observer) smooth(dt float64) {
	if !o.cfg.Scrub.Enabled || o.cfg.Scrub.Smoothing <= 0 || o.cfg.Animation == nil {
		return
	}
	if o.smoothed == o.progress {
		return
	}
	k := dt / o.cfg.Scrub.Smoothing
	if k >= 1 || math.Abs(o.progress-o.smoothed) < 1e-4 {
		o.smoothed = o.progress
	} else {
		o.smoothed += (o.progress - o.smoothed) * k
	}
	o.cfg.Animation.SetProgress(o.smoothed)
}
