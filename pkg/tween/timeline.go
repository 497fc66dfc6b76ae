package tween

import "github.com/gonewx/sitemotion/pkg/dom"

// timelineChild 时间轴中的一段补间
type timelineChild struct {
	tween *Tween
	start float64
}

// Timeline 按位置编排多个补间
//
// 子补间不进入引擎注册表，由时间轴统一推进；
// 时间轴本身可以被滚动观察者播放、反向或按进度驱动。
type Timeline struct {
	playhead

	children []*timelineChild
	end      float64
	reverted bool
}

func newTimeline(engine *Engine, vars TimelineVars) *Timeline {
	tl := &Timeline{}
	tl.playhead = playhead{
		engine:     engine,
		self:       tl,
		render:     tl.renderAt,
		total:      func() float64 { return tl.end },
		delay:      vars.Delay,
		delayLeft:  vars.Delay,
		onComplete: vars.OnComplete,
	}
	return tl
}

func (tl *Timeline) add(tw *Tween, pos []Position) *Timeline {
	if tl.dead {
		return tl
	}
	p := AtEnd()
	if len(pos) > 0 {
		p = pos[0]
	}
	start := p.resolve(tl.end) + tw.delay
	tl.children = append(tl.children, &timelineChild{tween: tw, start: start})
	if childEnd := start + tw.totalDuration(); childEnd > tl.end {
		tl.end = childEnd
	}
	return tl
}

// To 追加一段 To 补间
func (tl *Timeline) To(targets []*dom.Element, vars Vars, pos ...Position) *Timeline {
	return tl.add(newTween(nil, targets, nil, vars), pos)
}

// FromTo 追加一段 FromTo 补间，from 状态立即渲染
func (tl *Timeline) FromTo(targets []*dom.Element, from Props, vars Vars, pos ...Position) *Timeline {
	tw := newTween(nil, targets, from, vars)
	tw.renderAt(0)
	return tl.add(tw, pos)
}

// Set 在指定位置插入零时长补间
func (tl *Timeline) Set(targets []*dom.Element, props Props, pos ...Position) *Timeline {
	return tl.add(newTween(nil, targets, nil, Vars{Props: props}), pos)
}

// Len 返回子补间数量
func (tl *Timeline) Len() int {
	return len(tl.children)
}

// ChildStart 返回第 i 段补间的开始时间（秒）
func (tl *Timeline) ChildStart(i int) float64 {
	if i < 0 || i >= len(tl.children) {
		return 0
	}
	return tl.children[i].start
}

func (tl *Timeline) renderAt(t float64) {
	tl.time = t
	for _, c := range tl.children {
		local := t - c.start
		// 尚未开始且从未渲染过的 To 补间不应提前读取起点
		if local < 0 && !c.tween.rendered {
			continue
		}
		total := c.tween.totalDuration()
		if local < 0 {
			local = 0
		}
		if local > total {
			local = total
		}
		c.tween.renderAt(local)
	}
	tl.rendered = true
}

// Revert 停止时间轴，按创建的逆序恢复所有子补间，幂等
func (tl *Timeline) Revert() {
	if tl.reverted {
		return
	}
	tl.reverted = true
	tl.Kill()
	for i := len(tl.children) - 1; i >= 0; i-- {
		tl.children[i].tween.Revert()
	}
}
