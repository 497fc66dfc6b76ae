package tween

import (
	"fmt"
	"strconv"
	"strings"
)

// Position 子动画在时间轴中的插入位置
type Position struct {
	relative bool
	value    float64
}

// AtEnd 紧接在时间轴当前末尾（默认位置）
func AtEnd() Position {
	return Position{relative: true}
}

// Offset 相对时间轴末尾的偏移，负值表示与前一段重叠（等价于 "-=0.3"）
func Offset(seconds float64) Position {
	return Position{relative: true, value: seconds}
}

// At 绝对时间位置（秒）
func At(seconds float64) Position {
	return Position{value: seconds}
}

// ParsePosition 解析位置字符串
//
//	""      -> 时间轴末尾
//	"+=0.5" -> 末尾之后 0.5 秒
//	"-=0.3" -> 末尾之前 0.3 秒（重叠）
//	"1.2"   -> 绝对时间 1.2 秒
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AtEnd(), nil
	}
	if strings.HasPrefix(s, "+=") || strings.HasPrefix(s, "-=") {
		v, err := strconv.ParseFloat(strings.TrimSpace(s[2:]), 64)
		if err != nil {
			return Position{}, fmt.Errorf("invalid relative position %q: %w", s, err)
		}
		if s[0] == '-' {
			v = -v
		}
		return Offset(v), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid position %q: %w", s, err)
	}
	if v < 0 {
		return Position{}, fmt.Errorf("absolute position must not be negative: %q", s)
	}
	return At(v), nil
}

// resolve 根据时间轴当前末尾计算插入时间，结果不小于 0
func (p Position) resolve(end float64) float64 {
	t := p.value
	if p.relative {
		t += end
	}
	if t < 0 {
		return 0
	}
	return t
}
