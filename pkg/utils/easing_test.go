package utils

import (
	"math"
	"testing"
)

// TestPowerEases 测试 powerN.out 系列缓动的端点与中点
func TestPowerEases(t *testing.T) {
	tests := []struct {
		name     string
		ease     string
		input    float64
		expected float64
	}{
		{"power1.out 起点", "power1.out", 0, 0},
		{"power1.out 中点", "power1.out", 0.5, 0.75},
		{"power2.out 中点", "power2.out", 0.5, 0.875},
		{"power3.out 中点", "power3.out", 0.5, 0.9375},
		{"power3.out 终点", "power3.out", 1, 1},
		{"power2.in 中点", "power2.in", 0.5, 0.125},
		{"power2.inOut 中点", "power2.inOut", 0.5, 0.5},
		{"power2.inOut 四分之一", "power2.inOut", 0.25, 0.0625},
		{"none 中点", "none", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ease, err := ParseEase(tt.ease)
			if err != nil {
				t.Fatalf("ParseEase(%q) error: %v", tt.ease, err)
			}
			if got := ease(tt.input); math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("%s(%v) = %v, 期望 %v", tt.ease, tt.input, got, tt.expected)
			}
		})
	}
}

// TestEaseOutQuartFasterThanLinear 验证入场缓动"开始快，结束慢"的特性
func TestEaseOutQuartFasterThanLinear(t *testing.T) {
	for p := 0.1; p < 1.0; p += 0.1 {
		if EaseOutQuart(p) <= EaseLinear(p) {
			t.Errorf("EaseOutQuart(%v) = %v 应该大于线性值 %v", p, EaseOutQuart(p), p)
		}
	}
}

// TestEaseOutElastic 测试弹性缓出
func TestEaseOutElastic(t *testing.T) {
	ease := EaseOutElastic(1, 0.3)

	if ease(0) != 0 || ease(1) != 1 {
		t.Errorf("端点必须精确：f(0)=%v f(1)=%v", ease(0), ease(1))
	}

	// 弹性缓动会越过目标值
	overshoot := false
	for p := 0.05; p < 1.0; p += 0.05 {
		if ease(p) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("elastic.out 应该在中途越过 1")
	}

	parsed, err := ParseEase("elastic.out(1, 0.3)")
	if err != nil {
		t.Fatalf("ParseEase error: %v", err)
	}
	for _, p := range []float64{0.1, 0.33, 0.7} {
		if math.Abs(parsed(p)-ease(p)) > 1e-9 {
			t.Errorf("解析结果与直接构造不一致 p=%v: %v vs %v", p, parsed(p), ease(p))
		}
	}
}

// TestParseEaseErrors 测试未知缓动名称
func TestParseEaseErrors(t *testing.T) {
	for _, name := range []string{"bounce.out", "power9.out", "power2.sideways", "elastic.out(x)", "elastic.out1"} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseEase(name); err == nil {
				t.Errorf("ParseEase(%q) 应该返回错误", name)
			}
		})
	}

	// 回退到默认缓动
	if got := EaseOrDefault("bogus")(0.5); math.Abs(got-0.75) > 0.001 {
		t.Errorf("EaseOrDefault 回退值 = %v, 期望 power1.out(0.5)=0.75", got)
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{0, 100, 0, 0},
		{0, 100, 1, 100},
		{50, 0, 0.5, 25},
		{-50, 50, 0.25, -25},
	}
	for _, tt := range tests {
		if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 结果错误")
	}
}

func TestEaseInOutSine(t *testing.T) {
	ease, err := ParseEase("sine.inOut")
	if err != nil {
		t.Fatalf("ParseEase(sine.inOut): %v", err)
	}
	if math.Abs(ease(0)) > 1e-9 || math.Abs(ease(1)-1) > 1e-9 || math.Abs(ease(0.5)-0.5) > 1e-9 {
		t.Errorf("sine.inOut endpoints: %v %v %v", ease(0), ease(0.5), ease(1))
	}
}
