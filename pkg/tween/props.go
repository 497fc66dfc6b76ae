package tween

import "github.com/gonewx/sitemotion/pkg/utils"

// Props 属性名到数值的映射，如 {"opacity": 0, "y": 50}
type Props map[string]float64

// Clone 返回副本
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge 返回 p 与 other 合并后的新映射，other 中的值优先
func (p Props) Merge(other Props) Props {
	out := p.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Vars 补间参数
type Vars struct {
	Props    Props          // 目标属性值
	Duration float64        // 时长（秒），0 表示立即完成
	Delay    float64        // 正向播放前的延迟（秒）
	Ease     utils.EaseFunc // 缓动函数，nil 时使用 utils.DefaultEase
	Stagger  float64        // 多个目标之间的错开时间（秒）
	Paused   bool           // 创建后不自动播放（由滚动观察者或调用方控制）
	Repeat   int            // 完成后重复的次数，-1 为无限
	Yoyo     bool           // 重复时往返播放

	OnComplete func() // 正向播放到结尾时调用
}

// TimelineVars 时间轴参数
type TimelineVars struct {
	Delay      float64
	Paused     bool
	OnComplete func()
}

// styleValue 创建时刻的内联属性快照
type styleValue struct {
	value float64
	set   bool
}
