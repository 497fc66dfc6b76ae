package scroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonewx/sitemotion/pkg/dom"
)

// Anchor 尺寸上的一个锚点：Fraction × 尺寸 + Pixels
type Anchor struct {
	Fraction float64
	Pixels   float64
}

// Resolve 在给定尺寸上计算锚点偏移
func (a Anchor) Resolve(size float64) float64 {
	return a.Fraction*size + a.Pixels
}

// Threshold 滚动阈值
//
// 写法为 "<触发元素锚点> <视口锚点>"，例如 "top 80%" 表示
// 触发元素的顶边到达视口高度 80% 处时越过阈值。
// 每个锚点可以是 top / center / bottom、百分比、像素值（"120px" 或 "120"），
// 并可追加 "+=N" / "-=N" 像素偏移，如 "top+=100"。
type Threshold struct {
	Trigger  Anchor
	Viewport Anchor
}

// 默认阈值
const (
	DefaultStart = "top bottom"
	DefaultEnd   = "bottom top"
)

// ParseThreshold 解析阈值字符串
func ParseThreshold(s string) (Threshold, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Threshold{}, fmt.Errorf("threshold %q: want \"<trigger> <viewport>\"", s)
	}
	trigger, err := parseAnchor(fields[0])
	if err != nil {
		return Threshold{}, fmt.Errorf("threshold %q: trigger anchor: %w", s, err)
	}
	viewport, err := parseAnchor(fields[1])
	if err != nil {
		return Threshold{}, fmt.Errorf("threshold %q: viewport anchor: %w", s, err)
	}
	return Threshold{Trigger: trigger, Viewport: viewport}, nil
}

// MustParseThreshold 解析阈值字符串，失败时 panic（仅用于常量）
func MustParseThreshold(s string) Threshold {
	t, err := ParseThreshold(s)
	if err != nil {
		panic(err)
	}
	return t
}

func parseAnchor(token string) (Anchor, error) {
	base, offset := token, 0.0
	if i := strings.Index(token, "+="); i > 0 {
		v, err := strconv.ParseFloat(token[i+2:], 64)
		if err != nil {
			return Anchor{}, fmt.Errorf("invalid offset in %q", token)
		}
		base, offset = token[:i], v
	} else if i := strings.Index(token, "-="); i > 0 {
		v, err := strconv.ParseFloat(token[i+2:], 64)
		if err != nil {
			return Anchor{}, fmt.Errorf("invalid offset in %q", token)
		}
		base, offset = token[:i], -v
	}

	var a Anchor
	switch {
	case base == "top":
		a.Fraction = 0
	case base == "center":
		a.Fraction = 0.5
	case base == "bottom":
		a.Fraction = 1
	case strings.HasSuffix(base, "%"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(base, "%"), 64)
		if err != nil {
			return Anchor{}, fmt.Errorf("invalid percentage %q", base)
		}
		a.Fraction = v / 100
	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(base, "px"), 64)
		if err != nil {
			return Anchor{}, fmt.Errorf("unknown anchor %q", base)
		}
		a.Pixels = v
	}
	a.Pixels += offset
	return a, nil
}

// ScrollPosition 返回越过阈值时的滚动偏移
// box 为触发元素的文档坐标布局盒
func (t Threshold) ScrollPosition(box dom.Rect, viewportHeight float64) float64 {
	return box.Y + t.Trigger.Resolve(box.Height) - t.Viewport.Resolve(viewportHeight)
}
