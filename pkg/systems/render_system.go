package systems

import (
	"image/color"

	"github.com/gonewx/sitemotion/pkg/components"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/ecs"
	"github.com/gonewx/sitemotion/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 元素类名，决定绘制样式
const (
	ClassSection  = "section"
	ClassGrid     = "grid"
	ClassButton   = "button"
	ClassFloat    = "float"
	ClassParallax = "parallax"
)

// Visual 元素经过内联变换后的视口矩形
type Visual struct {
	Rect    dom.Rect
	Opacity float64
}

// RenderSystem 把文档中的元素绘制到屏幕
//
// 元素按创建顺序绘制，父元素在子元素之前。
// 平移和不透明度沿父链累积，缩放只作用于元素自身（以中心为原点）。
type RenderSystem struct {
	doc *dom.Document
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(doc *dom.Document) *RenderSystem {
	return &RenderSystem{doc: doc}
}

// VisualOf 计算元素的视口矩形和累积不透明度
func (s *RenderSystem) VisualOf(id ecs.EntityID) (Visual, bool) {
	em := s.doc.EntityManager()
	layout, ok := ecs.GetComponent[*components.LayoutComponent](em, id)
	if !ok {
		return Visual{}, false
	}

	rect := dom.Rect{X: layout.X, Y: layout.Y - s.doc.ScrollY(), Width: layout.Width, Height: layout.Height}
	opacity := 1.0

	// 自身和祖先的平移、不透明度
	for cur := id; cur != 0; {
		l, ok := ecs.GetComponent[*components.LayoutComponent](em, cur)
		if !ok {
			break
		}
		if style, ok := ecs.GetComponent[*components.StyleComponent](em, cur); ok {
			rect.X += prop(style, dom.PropX) + prop(style, dom.PropXPercent)*l.Width/100
			rect.Y += prop(style, dom.PropY) + prop(style, dom.PropYPercent)*l.Height/100
			opacity *= prop(style, dom.PropOpacity)
		}
		node, ok := ecs.GetComponent[*components.NodeComponent](em, cur)
		if !ok {
			break
		}
		cur = node.Parent
	}

	if style, ok := ecs.GetComponent[*components.StyleComponent](em, id); ok {
		if scale := prop(style, dom.PropScale); scale != 1 {
			cx, cy := rect.Center()
			rect.Width *= scale
			rect.Height *= scale
			rect.X = cx - rect.Width/2
			rect.Y = cy - rect.Height/2
		}
	}

	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return Visual{Rect: rect, Opacity: opacity}, true
}

func prop(style *components.StyleComponent, name string) float64 {
	if v, ok := style.Props[name]; ok {
		return v
	}
	return dom.DefaultValue(name)
}

// Draw 绘制所有可见元素
func (s *RenderSystem) Draw(screen *ebiten.Image, palette ui.Palette) {
	em := s.doc.EntityManager()
	vh := s.doc.ViewportHeight()

	for _, id := range ecs.GetEntitiesWith2[*components.LayoutComponent, *components.NodeComponent](em) {
		v, ok := s.VisualOf(id)
		if !ok || v.Opacity <= 0.01 {
			continue
		}
		// 视口外
		if v.Rect.Bottom() < 0 || v.Rect.Y > vh {
			continue
		}
		node, _ := ecs.GetComponent[*components.NodeComponent](em, id)
		drawElement(screen, node, v, palette)
	}
}

func drawElement(screen *ebiten.Image, node *components.NodeComponent, v Visual, palette ui.Palette) {
	x, y := float32(v.Rect.X), float32(v.Rect.Y)
	w, h := float32(v.Rect.Width), float32(v.Rect.Height)

	switch {
	case node.HasClass(ClassSection):
		vector.StrokeLine(screen, 0, y, x+w, y, 1, fade(palette.Border, v.Opacity), false)
		return
	case node.HasClass(ClassGrid):
		return
	case node.HasClass(ClassParallax):
		vector.DrawFilledRect(screen, x, y, w, h, fade(palette.Primary, v.Opacity*0.12), false)
		return
	case node.HasClass(ClassFloat):
		vector.DrawFilledRect(screen, x, y, w, h, fade(palette.Accent, v.Opacity*0.5), true)
		return
	case node.HasClass(ClassButton):
		vector.DrawFilledRect(screen, x, y, w, h, fade(palette.Primary, v.Opacity), false)
	default:
		vector.DrawFilledRect(screen, x, y, w, h, fade(palette.Surface, v.Opacity), false)
		vector.StrokeRect(screen, x, y, w, h, 1, fade(palette.Border, v.Opacity), false)
	}

	if node.Text != "" && v.Opacity > 0.3 {
		ebitenutil.DebugPrintAt(screen, node.Text, int(v.Rect.X)+12, int(v.Rect.Y)+10)
	}
}

// fade 按不透明度缩放颜色（预乘 alpha）
func fade(c color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return c
	}
	if opacity <= 0 {
		return color.RGBA{}
	}
	return color.RGBA{
		R: uint8(float64(c.R) * opacity),
		G: uint8(float64(c.G) * opacity),
		B: uint8(float64(c.B) * opacity),
		A: uint8(float64(c.A) * opacity),
	}
}
