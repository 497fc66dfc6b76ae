package motion

import (
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/scroll"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// 视差滚动区间：元素顶边进入视口底部到底边离开视口顶部
const (
	parallaxStart = "top bottom"
	parallaxEnd   = "bottom top"
)

// Parallax 让 el 随滚动产生 yPercent = -100 × speed 的位移
func Parallax(s *Scope, el *dom.Element, speed float64) *Binding {
	if el == nil || !el.IsConnected() {
		return nil
	}
	tw := s.To([]*dom.Element{el}, tween.Vars{
		Props:    tween.Props{dom.PropYPercent: -100 * speed},
		Duration: 1,
		Ease:     utils.EaseLinear,
		Paused:   true,
	})
	obs, err := s.Observe(scroll.Config{
		Trigger:   el,
		Start:     parallaxStart,
		End:       parallaxEnd,
		Animation: tw,
		Scrub:     scroll.ScrubImmediate(),
	})
	if err != nil {
		return nil
	}
	return &Binding{
		Targets:  []*dom.Element{el},
		Trigger:  el,
		Tween:    tw,
		Observer: obs,
	}
}
