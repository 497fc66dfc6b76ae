package motion

import (
	"log"

	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/preset"
	"github.com/gonewx/sitemotion/pkg/scroll"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// 绑定默认值
const (
	DefaultStart         = "top 80%"
	DefaultEnd           = "bottom 20%"
	DefaultEase          = "power3.out"
	DefaultStaggerAmount = 0.1
)

// BindConfig 预设绑定参数，零值即常用的“滚动进入视口时播放、滚回时反向”
type BindConfig struct {
	Delay         float64 // 秒
	Duration      float64 // 秒，0 表示使用预设时长
	StaggerAmount float64 // 目标之间的错开（秒），0 表示预设值或多目标时的 0.1
	Immediate     bool    // 挂载后立即播放，不等待滚动（首屏内容）

	Start string // 默认 "top 80%"
	End   string // 默认 "bottom 20%"
	Scrub scroll.Scrub
	// NoReplay 只播放一次，向上滚回时不反向
	NoReplay bool
	// Trigger 触发元素，默认第一个目标
	Trigger *dom.Element
	// Ease 缓动名称，默认 power3.out
	Ease string
	// Overrides 合并进预设终点，"stagger" 键设置错开间隔
	Overrides map[string]float64
}

// Binding 一次预设绑定的结果
type Binding struct {
	Targets    []*dom.Element
	Trigger    *dom.Element // 立即播放时为 nil
	Transition preset.Transition

	Initial  *tween.Tween     // 设置起点状态的零时长补间
	Tween    *tween.Tween     // 走向终点的补间
	Observer *scroll.Observer // 立即播放时为 nil
}

// IsScrollBound 是否由滚动驱动
func (b *Binding) IsScrollBound() bool {
	return b != nil && b.Observer != nil
}

// Bind 把预设绑定到 targets
//
// 目标先被设置为预设起点；立即模式下马上补间到终点，
// 否则创建暂停的补间，由触发元素上的滚动观察者控制播放或 scrub。
// 没有可用目标时什么也不做并返回 nil。
func Bind(s *Scope, targets []*dom.Element, presetName string, cfg BindConfig) *Binding {
	live := connected(targets)
	if len(live) == 0 {
		return nil
	}

	tr := s.rt.presets.Resolve(presetName, cfg.Overrides)
	duration := cfg.Duration
	if duration <= 0 {
		duration = tr.Duration
	}
	stagger := cfg.StaggerAmount
	if stagger <= 0 {
		stagger = tr.Stagger
	}
	if stagger <= 0 && len(live) > 1 {
		stagger = DefaultStaggerAmount
	}

	easeName := cfg.Ease
	if easeName == "" {
		easeName = DefaultEase
	}
	ease, err := utils.ParseEase(easeName)
	if err != nil {
		log.Printf("[Bind] %s: %v，使用 %s", s.owner, err, DefaultEase)
		ease = utils.EaseOutQuart
	}

	b := &Binding{Targets: live, Transition: tr}
	b.Initial = s.Set(live, tr.From)

	vars := tween.Vars{
		Props:    tr.To,
		Duration: duration,
		Delay:    cfg.Delay,
		Ease:     ease,
		Stagger:  stagger,
		Paused:   !cfg.Immediate,
	}
	b.Tween = s.To(live, vars)
	if cfg.Immediate {
		return b
	}

	trigger := cfg.Trigger
	if trigger == nil || !trigger.IsConnected() {
		trigger = live[0]
	}
	actions := scroll.PlayAndReverse
	if cfg.NoReplay {
		actions = scroll.PlayOnce
	}
	obs, err := s.Observe(scroll.Config{
		Trigger:   trigger,
		Start:     thresholdOrDefault(s, cfg.Start, DefaultStart),
		End:       thresholdOrDefault(s, cfg.End, DefaultEnd),
		Animation: b.Tween,
		Actions:   actions,
		Scrub:     cfg.Scrub,
	})
	if err != nil {
		// 阈值已校验，只有触发元素失效时才会到这里；保持终点样式可见
		log.Printf("[Bind] %s: 注册滚动观察者失败: %v", s.owner, err)
		b.Tween.SetProgress(1)
		return b
	}
	b.Trigger = trigger
	b.Observer = obs
	return b
}

// BindChildren 绑定 container 的直接子元素（调用时解析一次），以 container 为触发元素
func BindChildren(s *Scope, container *dom.Element, presetName string, cfg BindConfig) *Binding {
	if container == nil || !container.IsConnected() {
		return nil
	}
	if cfg.Trigger == nil {
		cfg.Trigger = container
	}
	return Bind(s, s.Document().Children(container), presetName, cfg)
}

// BindClass 绑定文档中带有 class 的全部元素（调用时解析一次）
func BindClass(s *Scope, class string, presetName string, cfg BindConfig) *Binding {
	return Bind(s, s.Document().ElementsByClass(class), presetName, cfg)
}

func thresholdOrDefault(s *Scope, value, fallback string) string {
	if value == "" {
		return fallback
	}
	if _, err := scroll.ParseThreshold(value); err != nil {
		log.Printf("[Bind] %s: %v，使用默认阈值 %q", s.owner, err, fallback)
		return fallback
	}
	return value
}

func connected(targets []*dom.Element) []*dom.Element {
	out := make([]*dom.Element, 0, len(targets))
	for _, el := range targets {
		if el != nil && el.IsConnected() {
			out = append(out, el)
		}
	}
	return out
}
