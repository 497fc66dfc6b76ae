package dom

// 内联视觉属性名
// 与动画引擎共享同一组名称，引擎只通过这些属性修改元素外观
const (
	PropOpacity  = "opacity"
	PropX        = "x"        // 水平平移（像素）
	PropY        = "y"        // 垂直平移（像素）
	PropXPercent = "xPercent" // 水平平移（占自身宽度的百分比）
	PropYPercent = "yPercent" // 垂直平移（占自身高度的百分比）
	PropScale    = "scale"
	PropRotation = "rotation" // 角度
)

// DefaultValue 返回属性在没有内联覆盖时的计算值
func DefaultValue(prop string) float64 {
	switch prop {
	case PropOpacity, PropScale:
		return 1
	default:
		return 0
	}
}

// Rect 矩形区域
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains 检查点是否在矩形内（左闭右开）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Bottom 返回矩形底边 Y
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}
