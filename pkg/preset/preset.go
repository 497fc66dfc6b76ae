// Package preset 定义命名的动画意图（起点/终点属性对）
//
// 预设表在创建后不可变：Resolve 总是返回属性集合的副本，
// 调用方的 overrides 只作用于返回值。
package preset

import (
	"fmt"
	"sort"

	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/tween"
)

// 内置预设名称
const (
	FadeIn     = "fadeIn"
	SlideUp    = "slideUp"
	SlideLeft  = "slideLeft"
	SlideRight = "slideRight"
	ScaleIn    = "scaleIn"
	Stagger    = "stagger"
)

// Fallback 未知名称时使用的预设
const Fallback = FadeIn

// OverrideStagger overrides 中表示错开间隔的键
const OverrideStagger = "stagger"

// DefaultDuration 未指定时长时的默认值（秒）
const DefaultDuration = 0.8

// Preset 一个命名的起点/终点属性对
type Preset struct {
	From     tween.Props
	To       tween.Props
	Stagger  float64 // 目标之间的错开间隔（秒），0 表示不错开
	Duration float64 // 默认时长（秒）
}

// Transition Resolve 的结果，可以自由修改
type Transition struct {
	Name     string
	From     tween.Props
	To       tween.Props
	Stagger  float64
	Duration float64
}

var builtins = map[string]Preset{
	FadeIn: {
		From:     tween.Props{dom.PropOpacity: 0},
		To:       tween.Props{dom.PropOpacity: 1},
		Duration: 0.8,
	},
	SlideUp: {
		From:     tween.Props{dom.PropOpacity: 0, dom.PropY: 50},
		To:       tween.Props{dom.PropOpacity: 1, dom.PropY: 0},
		Duration: 0.8,
	},
	SlideLeft: {
		From:     tween.Props{dom.PropOpacity: 0, dom.PropX: 50},
		To:       tween.Props{dom.PropOpacity: 1, dom.PropX: 0},
		Duration: 0.8,
	},
	SlideRight: {
		From:     tween.Props{dom.PropOpacity: 0, dom.PropX: -50},
		To:       tween.Props{dom.PropOpacity: 1, dom.PropX: 0},
		Duration: 0.8,
	},
	ScaleIn: {
		From:     tween.Props{dom.PropOpacity: 0, dom.PropScale: 0.9},
		To:       tween.Props{dom.PropOpacity: 1, dom.PropScale: 1},
		Duration: 0.8,
	},
	Stagger: {
		From:     tween.Props{dom.PropOpacity: 0, dom.PropY: 30},
		To:       tween.Props{dom.PropOpacity: 1, dom.PropY: 0},
		Stagger:  0.1,
		Duration: 0.6,
	},
}

// Table 不可变的预设表
type Table struct {
	presets map[string]Preset
}

var defaultTable = &Table{presets: builtins}

// Default 返回只包含内置预设的表
func Default() *Table {
	return defaultTable
}

// NewTable 在内置预设之上追加自定义预设
// 自定义预设不能覆盖内置名称，也不能缺少 To
func NewTable(custom map[string]Preset) (*Table, error) {
	presets := make(map[string]Preset, len(builtins)+len(custom))
	for name, p := range builtins {
		presets[name] = p
	}
	for name, p := range custom {
		if _, exists := builtins[name]; exists {
			return nil, fmt.Errorf("preset %q: cannot redefine a built-in preset", name)
		}
		if len(p.To) == 0 {
			return nil, fmt.Errorf("preset %q: to is empty", name)
		}
		if p.Duration < 0 || p.Stagger < 0 {
			return nil, fmt.Errorf("preset %q: duration and stagger must not be negative", name)
		}
		if p.Duration == 0 {
			p.Duration = DefaultDuration
		}
		presets[name] = Preset{
			From:     p.From.Clone(),
			To:       p.To.Clone(),
			Stagger:  p.Stagger,
			Duration: p.Duration,
		}
	}
	return &Table{presets: presets}, nil
}

// Has 是否存在该名称
func (t *Table) Has(name string) bool {
	_, ok := t.presets[name]
	return ok
}

// Names 返回所有预设名称（排序后）
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.presets))
	for name := range t.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve 按名称查找预设并合并 overrides
//
// 未知名称回退到 fadeIn。overrides 合并进 To，
// 其中 "stagger" 键设置错开间隔而不是属性。
func (t *Table) Resolve(name string, overrides map[string]float64) Transition {
	p, ok := t.presets[name]
	if !ok {
		name = Fallback
		p = t.presets[Fallback]
	}
	tr := Transition{
		Name:     name,
		From:     p.From.Clone(),
		To:       p.To.Clone(),
		Stagger:  p.Stagger,
		Duration: p.Duration,
	}
	for k, v := range overrides {
		if k == OverrideStagger {
			tr.Stagger = v
			continue
		}
		tr.To[k] = v
	}
	return tr
}

// Resolve 在内置预设表中查找
func Resolve(name string, overrides map[string]float64) Transition {
	return defaultTable.Resolve(name, overrides)
}
