package components

// LayoutComponent 元素在文档坐标系中的布局盒（不含变换）
type LayoutComponent struct {
	X      float64 // 左上角 X（文档坐标）
	Y      float64 // 左上角 Y（文档坐标，随页面滚动）
	Width  float64
	Height float64
}
