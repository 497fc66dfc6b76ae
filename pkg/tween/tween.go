package tween

import (
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// Tween 在一个或多个目标上插值数值属性
type Tween struct {
	playhead

	targets  []*dom.Element
	from     Props // FromTo 的显式起点，To 时为 nil
	to       Props
	duration float64
	stagger  float64
	ease     utils.EaseFunc

	// starts 每个目标的起点值，首次渲染时读取
	starts []Props
	// snapshots 每个目标在补间创建时的内联样式，Revert 时恢复
	snapshots []map[string]styleValue
	reverted  bool
}

func newTween(engine *Engine, targets []*dom.Element, from Props, vars Vars) *Tween {
	tw := &Tween{
		targets:  liveTargets(targets),
		from:     from.Clone(),
		to:       vars.Props.Clone(),
		duration: vars.Duration,
		stagger:  vars.Stagger,
		ease:     vars.Ease,
	}
	if tw.duration < 0 {
		tw.duration = 0
	}
	if tw.ease == nil {
		tw.ease = utils.DefaultEase
	}
	tw.playhead = playhead{
		engine:     engine,
		self:       tw,
		render:     tw.renderAt,
		total:      tw.totalDuration,
		delay:      vars.Delay,
		delayLeft:  vars.Delay,
		repeat:     vars.Repeat,
		repeatLeft: vars.Repeat,
		yoyo:       vars.Yoyo,
		onComplete: vars.OnComplete,
	}
	tw.snapshot()
	return tw
}

// snapshot 记录所有被触及属性的内联值
func (tw *Tween) snapshot() {
	tw.snapshots = make([]map[string]styleValue, len(tw.targets))
	for i, el := range tw.targets {
		snap := make(map[string]styleValue)
		for _, prop := range tw.props() {
			v, ok := el.Style(prop)
			snap[prop] = styleValue{value: v, set: ok}
		}
		tw.snapshots[i] = snap
	}
}

func (tw *Tween) props() []string {
	seen := make(map[string]bool, len(tw.to)+len(tw.from))
	out := make([]string, 0, len(tw.to)+len(tw.from))
	for _, m := range []Props{tw.to, tw.from} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	return out
}

func (tw *Tween) totalDuration() float64 {
	if len(tw.targets) <= 1 {
		return tw.duration
	}
	return tw.duration + tw.stagger*float64(len(tw.targets)-1)
}

// Targets 返回补间目标
func (tw *Tween) Targets() []*dom.Element {
	return append([]*dom.Element(nil), tw.targets...)
}

// To 返回目标属性值的副本
func (tw *Tween) To() Props {
	return tw.to.Clone()
}

// renderAt 把所有目标渲染到时间 t
func (tw *Tween) renderAt(t float64) {
	tw.time = t
	if tw.starts == nil {
		tw.starts = make([]Props, len(tw.targets))
		for i, el := range tw.targets {
			start := make(Props, len(tw.to))
			for prop := range tw.to {
				if v, ok := tw.from[prop]; ok {
					start[prop] = v
				} else {
					start[prop] = el.Computed(prop)
				}
			}
			tw.starts[i] = start
		}
	}

	for i, el := range tw.targets {
		local := t - float64(i)*tw.stagger
		var p float64
		if tw.duration <= 0 {
			if local >= 0 {
				p = 1
			}
		} else {
			p = utils.Clamp01(local / tw.duration)
		}
		eased := tw.ease(p)
		for prop, end := range tw.to {
			start := tw.starts[i][prop]
			switch p {
			case 0:
				el.SetStyle(prop, start)
			case 1:
				el.SetStyle(prop, end)
			default:
				el.SetStyle(prop, utils.Lerp(start, end, eased))
			}
		}
	}
	tw.rendered = true
}

// Revert 停止补间并恢复创建前的内联样式，幂等
// 已离开文档的目标会被跳过
func (tw *Tween) Revert() {
	if tw.reverted {
		return
	}
	tw.reverted = true
	tw.Kill()
	for i, el := range tw.targets {
		if !el.IsConnected() {
			continue
		}
		for prop, sv := range tw.snapshots[i] {
			if sv.set {
				el.SetStyle(prop, sv.value)
			} else {
				el.RemoveStyle(prop)
			}
		}
	}
}

// IsReverted 是否已经 Revert
func (tw *Tween) IsReverted() bool {
	return tw.reverted
}
