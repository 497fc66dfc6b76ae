package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EaseFunc 缓动函数
// 接受进度 t ∈ [0, 1]，返回缓动后的进度（弹性缓动可能短暂超出 [0, 1]）
//
// 命名沿用网页动画里常见的 "powerN.out" 写法，参考：https://easings.net/
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（"none"）
func EaseLinear(t float64) float64 {
	return t
}

// powerOut 返回 N 次方缓出：f(t) = 1 - (1-t)^(n+1)
// power1.out = 二次方，power2.out = 三次方，power3.out = 四次方
func powerOut(n int) EaseFunc {
	exp := float64(n + 1)
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, exp)
	}
}

// powerIn 返回 N 次方缓入：f(t) = t^(n+1)
func powerIn(n int) EaseFunc {
	exp := float64(n + 1)
	return func(t float64) float64 {
		return math.Pow(t, exp)
	}
}

// powerInOut 返回 N 次方缓入缓出
func powerInOut(n int) EaseFunc {
	in := powerIn(n)
	return func(t float64) float64 {
		if t < 0.5 {
			return in(t*2) / 2
		}
		return 1 - in((1-t)*2)/2
	}
}

var (
	// EaseOutQuad 二次方缓出（power1.out，默认缓动）
	EaseOutQuad = powerOut(1)
	// EaseOutCubic 三次方缓出（power2.out）
	EaseOutCubic = powerOut(2)
	// EaseOutQuart 四次方缓出（power3.out），入场动画使用
	EaseOutQuart = powerOut(3)
	// EaseInOutCubic 三次方缓入缓出（power2.inOut）
	EaseInOutCubic = powerInOut(2)
)

// EaseOutExpo 指数缓出
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseOutElastic 返回弹性缓出函数
//
// amplitude 为回弹幅度（小于 1 时按 1 处理），period 为振荡周期。
// 公式：f(t) = a · 2^(-10t) · sin((t - s) · 2π / p) + 1，其中 s = p/2π · asin(1/a)
// 端点被钉死为 0 和 1，保证动画结束时精确回到目标值。
func EaseOutElastic(amplitude, period float64) EaseFunc {
	if amplitude < 1 {
		amplitude = 1
	}
	if period <= 0 {
		period = 0.3
	}
	shift := period / (2 * math.Pi) * math.Asin(1/amplitude)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return amplitude*math.Pow(2, -10*t)*math.Sin((t-shift)*(2*math.Pi)/period) + 1
	}
}

// EaseInOutSine 正弦缓入缓出 (sine.inOut)
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// DefaultEase 未指定缓动时使用的缓动（power1.out）
var DefaultEase EaseFunc = EaseOutQuad

// ParseEase 解析缓动名称
//
// 支持：
//   - "none" / "linear"
//   - "power1.out" ~ "power4.out"，以及对应的 ".in" 与 ".inOut"
//   - "expo.out"、"sine.inOut"
//   - "elastic.out" / "elastic.out(1, 0.3)"
//
// 未知名称返回错误，调用方可回退到 DefaultEase
func ParseEase(name string) (EaseFunc, error) {
	name = strings.TrimSpace(name)
	switch name {
	case "", "power1.out":
		return EaseOutQuad, nil
	case "none", "linear":
		return EaseLinear, nil
	case "expo.out":
		return EaseOutExpo, nil
	case "sine.inOut":
		return EaseInOutSine, nil
	}

	if strings.HasPrefix(name, "elastic.out") {
		args := strings.TrimPrefix(name, "elastic.out")
		amplitude, period := 1.0, 0.3
		if args != "" {
			if !strings.HasPrefix(args, "(") || !strings.HasSuffix(args, ")") {
				return nil, fmt.Errorf("invalid elastic ease arguments: %q", name)
			}
			parts := strings.Split(strings.Trim(args, "()"), ",")
			values := make([]float64, 0, len(parts))
			for _, p := range parts {
				v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
				if err != nil {
					return nil, fmt.Errorf("invalid elastic ease argument %q: %w", p, err)
				}
				values = append(values, v)
			}
			if len(values) > 0 {
				amplitude = values[0]
			}
			if len(values) > 1 {
				period = values[1]
			}
		}
		return EaseOutElastic(amplitude, period), nil
	}

	if strings.HasPrefix(name, "power") {
		dot := strings.Index(name, ".")
		if dot < 0 {
			return nil, fmt.Errorf("unknown ease: %q", name)
		}
		n, err := strconv.Atoi(name[len("power"):dot])
		if err != nil || n < 1 || n > 4 {
			return nil, fmt.Errorf("unknown ease: %q", name)
		}
		switch name[dot+1:] {
		case "out":
			return powerOut(n), nil
		case "in":
			return powerIn(n), nil
		case "inOut":
			return powerInOut(n), nil
		}
	}

	return nil, fmt.Errorf("unknown ease: %q", name)
}

// EaseOrDefault 解析缓动名称，失败时回退到 DefaultEase
func EaseOrDefault(name string) EaseFunc {
	ease, err := ParseEase(name)
	if err != nil {
		return DefaultEase
	}
	return ease
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把值限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
