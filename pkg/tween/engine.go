// Package tween 实现补间与时间轴
//
// Engine 是进程内的动画注册表：只有正在播放的根级动画登记在册，
// 由宿主每帧调用 Engine.Update(dt) 推进。暂停、播放完毕、被 Kill 或 Revert
// 的动画会自动离开注册表，动画对象本身仍由创建者（通常是 motion.Scope）持有。
package tween

import "github.com/gonewx/sitemotion/pkg/dom"

// Animation 补间与时间轴的公共行为
type Animation interface {
	// Play 正向播放；已经播放到结尾时不做任何事
	Play()
	// Reverse 反向播放回起点
	Reverse()
	// Pause 暂停在当前位置
	Pause()
	// Restart 从起点（含延迟）重新正向播放
	Restart()
	// Progress 返回线性播放进度 [0, 1]（不含缓动）
	Progress() float64
	// SetProgress 立即跳到指定进度并渲染，不改变播放状态
	SetProgress(p float64)
	// Duration 返回总时长（含错开，不含延迟）
	Duration() float64
	// IsActive 是否正在播放
	IsActive() bool
	// IsReversed 当前播放方向是否为反向
	IsReversed() bool
	// Kill 停止并离开注册表，保留目标当前样式
	Kill()
	// Revert 停止并把目标的内联样式恢复到动画创建之前，幂等
	Revert()

	advance(dt float64)
}

// Engine 动画注册表
type Engine struct {
	registry []Animation
}

// NewEngine 创建动画引擎
func NewEngine() *Engine {
	return &Engine{registry: make([]Animation, 0)}
}

// Update 推进所有正在播放的根级动画
// 回调中可能创建或结束动画，所以遍历注册表的快照
func (e *Engine) Update(deltaTime float64) {
	snapshot := append([]Animation(nil), e.registry...)
	for _, a := range snapshot {
		a.advance(deltaTime)
	}
}

// Len 返回正在播放的根级动画数量
func (e *Engine) Len() int {
	return len(e.registry)
}

func (e *Engine) register(a Animation) {
	for _, existing := range e.registry {
		if existing == a {
			return
		}
	}
	e.registry = append(e.registry, a)
}

func (e *Engine) unregister(a Animation) {
	for i, existing := range e.registry {
		if existing == a {
			e.registry = append(e.registry[:i], e.registry[i+1:]...)
			return
		}
	}
}

// To 创建从当前值补间到 vars.Props 的动画，除非 vars.Paused 否则立即开始播放
func (e *Engine) To(targets []*dom.Element, vars Vars) *Tween {
	tw := newTween(e, targets, nil, vars)
	if !vars.Paused {
		tw.Play()
	}
	return tw
}

// FromTo 创建从 from 补间到 vars.Props 的动画
// 创建时立即渲染 from 状态，避免播放前闪现最终样式
func (e *Engine) FromTo(targets []*dom.Element, from Props, vars Vars) *Tween {
	tw := newTween(e, targets, from, vars)
	tw.renderAt(0)
	if !vars.Paused {
		tw.Play()
	}
	return tw
}

// Set 立即把属性应用到目标（零时长补间），返回的补间可被 Revert
func (e *Engine) Set(targets []*dom.Element, props Props) *Tween {
	tw := newTween(e, targets, nil, Vars{Props: props})
	tw.renderAt(0)
	return tw
}

// Timeline 创建时间轴，除非 vars.Paused 否则立即开始播放
func (e *Engine) Timeline(vars TimelineVars) *Timeline {
	tl := newTimeline(e, vars)
	if !vars.Paused {
		tl.Play()
	}
	return tl
}

// liveTargets 过滤 nil 目标
func liveTargets(targets []*dom.Element) []*dom.Element {
	out := make([]*dom.Element, 0, len(targets))
	for _, el := range targets {
		if el != nil {
			out = append(out, el)
		}
	}
	return out
}
