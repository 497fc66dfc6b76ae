package scroll

import (
	"fmt"
	"strings"

	"github.com/gonewx/sitemotion/pkg/tween"
)

// Action 越过阈值时对动画执行的动作
type Action int

const (
	ActionNone Action = iota
	ActionPlay
	ActionPause
	ActionResume
	ActionReverse
	ActionRestart
	ActionReset
	ActionComplete
)

var actionNames = map[string]Action{
	"none":     ActionNone,
	"play":     ActionPlay,
	"pause":    ActionPause,
	"resume":   ActionResume,
	"reverse":  ActionReverse,
	"restart":  ActionRestart,
	"reset":    ActionReset,
	"complete": ActionComplete,
}

// ToggleActions 四个越界时机各自的动作
type ToggleActions struct {
	OnEnter     Action // 向下滚动越过 start
	OnLeave     Action // 向下滚动越过 end
	OnEnterBack Action // 向上滚动回到 end 之内
	OnLeaveBack Action // 向上滚动回到 start 之上
}

// IsZero 是否未配置任何动作
func (t ToggleActions) IsZero() bool {
	return t == ToggleActions{}
}

// 常用组合
var (
	// PlayOnce 进入时播放，之后不再变化
	PlayOnce = ToggleActions{OnEnter: ActionPlay}
	// PlayAndReverse 进入时播放，向上滚回 start 之上时反向（可重复播放）
	PlayAndReverse = ToggleActions{OnEnter: ActionPlay, OnLeaveBack: ActionReverse}
)

// ParseToggleActions 解析 "play none none reverse" 形式的动作列表
func ParseToggleActions(s string) (ToggleActions, error) {
	fields := strings.Fields(s)
	if len(fields) != 4 {
		return ToggleActions{}, fmt.Errorf("toggle actions %q: want 4 actions", s)
	}
	parsed := make([]Action, 4)
	for i, f := range fields {
		a, ok := actionNames[f]
		if !ok {
			return ToggleActions{}, fmt.Errorf("toggle actions %q: unknown action %q", s, f)
		}
		parsed[i] = a
	}
	return ToggleActions{
		OnEnter:     parsed[0],
		OnLeave:     parsed[1],
		OnEnterBack: parsed[2],
		OnLeaveBack: parsed[3],
	}, nil
}

// apply 对动画执行动作
func (a Action) apply(anim tween.Animation) {
	if anim == nil {
		return
	}
	switch a {
	case ActionPlay:
		anim.Play()
	case ActionPause:
		anim.Pause()
	case ActionResume:
		if anim.IsReversed() {
			anim.Reverse()
		} else {
			anim.Play()
		}
	case ActionReverse:
		anim.Reverse()
	case ActionRestart:
		anim.Restart()
	case ActionReset:
		anim.Pause()
		anim.SetProgress(0)
	case ActionComplete:
		anim.Pause()
		anim.SetProgress(1)
	}
}

// Scrub 滚动驱动进度的方式
type Scrub struct {
	Enabled   bool
	Smoothing float64 // 追赶滚动位置所需的秒数，0 表示立即跟随
}

// ScrubOff 不使用 scrub
var ScrubOff = Scrub{}

// ScrubImmediate 进度立即等于滚动进度
func ScrubImmediate() Scrub {
	return Scrub{Enabled: true}
}

// ScrubSmooth 进度在 seconds 秒内追上滚动进度
func ScrubSmooth(seconds float64) Scrub {
	return Scrub{Enabled: true, Smoothing: seconds}
}
