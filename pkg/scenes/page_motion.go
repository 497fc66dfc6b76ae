package scenes

import (
	"log"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/motion"
	"github.com/gonewx/sitemotion/pkg/scroll"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// 漂浮装饰元素的往返动画
const (
	floatOffset   = -20.0
	floatDuration = 3.0
	floatStagger  = 0.5
)

// bindSection 按区块配置创建动画
func (s *PageScene) bindSection(sc *motion.Scope, sv *sectionView) {
	cfg := sv.cfg

	if len(cfg.Timeline) > 0 {
		s.bindTimeline(sc, sv)
	}

	for _, a := range cfg.Animations {
		targets := sv.resolve(a.Target)
		if len(targets) == 0 {
			log.Printf("[PageScene] %s/%s: 动画目标 %v 为空，跳过", s.page.ID, cfg.ID, a.Target)
			continue
		}
		motion.Bind(sc, targets, a.Preset, motion.BindConfig{
			Delay:         a.Delay,
			Duration:      a.Duration,
			StaggerAmount: a.Stagger,
			Immediate:     a.Immediate,
			Start:         a.Start,
			End:           a.End,
			Scrub:         scroll.Scrub{Enabled: a.Scrub.Enabled, Smoothing: a.Scrub.Smoothing},
			NoReplay:      a.NoReplay,
			Trigger:       sv.trigger(a.Trigger),
			Ease:          a.Ease,
			Overrides:     a.Overrides,
		})
	}

	if floats := sv.lookup(cfg.Float); len(floats) > 0 {
		sc.To(floats, tween.Vars{
			Props:    tween.Props{dom.PropY: floatOffset},
			Duration: floatDuration,
			Ease:     utils.EaseInOutSine,
			Stagger:  floatStagger,
			Repeat:   -1,
			Yoyo:     true,
		})
	}

	for _, el := range sv.lookup(cfg.Magnetic) {
		sc.Magnetic(el, motion.DefaultDamping)
	}

	if p := cfg.Parallax; p != nil {
		motion.Parallax(sc, sv.named[p.Element], p.Speed)
	}
}

// bindTimeline 首屏入场时间轴，挂载后立即播放
func (s *PageScene) bindTimeline(sc *motion.Scope, sv *sectionView) {
	tl := sc.Timeline(tween.TimelineVars{})
	for i, step := range sv.cfg.Timeline {
		el, ok := sv.named[step.Element]
		if !ok {
			continue
		}
		ease := utils.EaseOrDefault(motion.DefaultEase)
		if step.Ease != "" {
			ease = utils.EaseOrDefault(step.Ease)
		}
		pos, err := tween.ParsePosition(step.Position)
		if err != nil {
			log.Printf("[PageScene] %s/%s: 时间轴第 %d 步: %v", s.page.ID, sv.cfg.ID, i, err)
			pos = tween.AtEnd()
		}
		tl.FromTo([]*dom.Element{el}, tween.Props(step.From), tween.Vars{
			Props:    tween.Props(step.To),
			Duration: step.Duration,
			Ease:     ease,
		}, pos)
	}
}

// resolve 把目标关键字和元素名解析为元素
func (sv *sectionView) resolve(targets config.Targets) []*dom.Element {
	var out []*dom.Element
	for _, t := range targets {
		switch t {
		case config.TargetSection:
			out = append(out, sv.el)
		case config.TargetTitle:
			if sv.title != nil {
				out = append(out, sv.title)
			}
		case config.TargetItems:
			out = append(out, sv.items...)
		case config.TargetElements:
			out = append(out, sv.elements...)
		default:
			if el, ok := sv.named[t]; ok {
				out = append(out, el)
			}
		}
	}
	return out
}

// trigger 解析触发元素，空表示第一个目标
func (sv *sectionView) trigger(name string) *dom.Element {
	switch name {
	case "":
		return nil
	case config.TargetSection:
		return sv.el
	}
	return sv.named[name]
}

func (sv *sectionView) lookup(names []string) []*dom.Element {
	out := make([]*dom.Element, 0, len(names))
	for _, name := range names {
		if el, ok := sv.named[name]; ok {
			out = append(out, el)
		}
	}
	return out
}
