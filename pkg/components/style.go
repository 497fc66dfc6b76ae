package components

// StyleComponent 元素的内联视觉样式
// 只记录被显式设置过的属性；未出现在 Props 中的属性取默认值（见 dom.DefaultValue）
type StyleComponent struct {
	Props map[string]float64 // 属性名 -> 数值，如 "opacity" -> 0.5
}

// NewStyleComponent 创建空的样式组件
func NewStyleComponent() *StyleComponent {
	return &StyleComponent{Props: make(map[string]float64)}
}
