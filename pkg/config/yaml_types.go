package config

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Localized 按语言区分的文本，如 {de: "Startseite", en: "Home"}
type Localized map[string]string

// Get 返回 locale 对应的文本，缺失时依次回退到 fallback 语言和任意非空值
func (l Localized) Get(locale, fallback string) string {
	if s, ok := l[locale]; ok && s != "" {
		return s
	}
	if s, ok := l[fallback]; ok && s != "" {
		return s
	}
	for _, s := range l {
		if s != "" {
			return s
		}
	}
	return ""
}

// ScrubValue scrub 设置
// YAML 中可写 true / false 或平滑秒数（如 1.5）
type ScrubValue struct {
	Enabled   bool
	Smoothing float64
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (s *ScrubValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: scrub must be a boolean or a number", node.Line)
	}
	if b, err := strconv.ParseBool(node.Value); err == nil {
		*s = ScrubValue{Enabled: b}
		return nil
	}
	v, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("line %d: invalid scrub %q", node.Line, node.Value)
	}
	if v < 0 {
		return fmt.Errorf("line %d: scrub smoothing must not be negative", node.Line)
	}
	*s = ScrubValue{Enabled: true, Smoothing: v}
	return nil
}

// Targets 动画目标：单个名称或名称列表
type Targets []string

// UnmarshalYAML 实现 yaml.Unmarshaler
func (t *Targets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*t = Targets{node.Value}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		*t = names
		return nil
	}
	return fmt.Errorf("line %d: target must be a name or a list of names", node.Line)
}

// Box 相对区块左上角的 [x, y, width, height]
type Box [4]float64

// X 左边
func (b Box) X() float64 { return b[0] }

// Y 顶边
func (b Box) Y() float64 { return b[1] }

// Width 宽度
func (b Box) Width() float64 { return b[2] }

// Height 高度
func (b Box) Height() float64 { return b[3] }
