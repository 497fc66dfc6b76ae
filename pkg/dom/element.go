package dom

import (
	"github.com/gonewx/sitemotion/pkg/components"
	"github.com/gonewx/sitemotion/pkg/ecs"
)

// Element 元素句柄
//
// 句柄在元素被移除后仍然可用：读操作返回默认值，写操作静默忽略。
// 动画在拆除阶段经常遇到已经离开文档的目标，这里保证不会出错。
type Element struct {
	doc *Document
	id  ecs.EntityID
}

// ID 返回元素的实体 ID
func (e *Element) ID() ecs.EntityID { return e.id }

// Document 返回元素所属文档
func (e *Element) Document() *Document { return e.doc }

// IsConnected 检查元素是否仍在文档中
func (e *Element) IsConnected() bool {
	return e != nil && e.doc != nil && e.id != 0 && e.doc.em.IsAlive(e.id)
}

func (e *Element) node() (*components.NodeComponent, bool) {
	if !e.IsConnected() {
		return nil, false
	}
	return ecs.GetComponent[*components.NodeComponent](e.doc.em, e.id)
}

func (e *Element) style() (*components.StyleComponent, bool) {
	if !e.IsConnected() {
		return nil, false
	}
	return ecs.GetComponent[*components.StyleComponent](e.doc.em, e.id)
}

// Name 返回元素名称
func (e *Element) Name() string {
	if node, ok := e.node(); ok {
		return node.Name
	}
	return ""
}

// HasClass 检查元素类名
func (e *Element) HasClass(class string) bool {
	node, ok := e.node()
	return ok && node.HasClass(class)
}

// Text 返回元素显示文本
func (e *Element) Text() string {
	if node, ok := e.node(); ok {
		return node.Text
	}
	return ""
}

// SetText 设置元素显示文本
func (e *Element) SetText(text string) {
	if node, ok := e.node(); ok {
		node.Text = text
	}
}

// Parent 返回父元素，根元素或已移除元素返回 nil
func (e *Element) Parent() *Element {
	node, ok := e.node()
	if !ok || node.Parent == 0 {
		return nil
	}
	return e.doc.elements[node.Parent]
}

// ========== 内联样式 ==========

// Style 返回内联属性值；未设置时 ok 为 false
func (e *Element) Style(prop string) (float64, bool) {
	s, ok := e.style()
	if !ok {
		return 0, false
	}
	v, ok := s.Props[prop]
	return v, ok
}

// Computed 返回属性的计算值（内联值优先，否则默认值）
func (e *Element) Computed(prop string) float64 {
	if v, ok := e.Style(prop); ok {
		return v
	}
	return DefaultValue(prop)
}

// SetStyle 设置内联属性
func (e *Element) SetStyle(prop string, value float64) {
	if s, ok := e.style(); ok {
		s.Props[prop] = value
	}
}

// RemoveStyle 移除内联属性，之后 Computed 返回默认值
func (e *Element) RemoveStyle(prop string) {
	if s, ok := e.style(); ok {
		delete(s.Props, prop)
	}
}

// InlineStyle 返回内联属性的副本
func (e *Element) InlineStyle() map[string]float64 {
	result := make(map[string]float64)
	if s, ok := e.style(); ok {
		for k, v := range s.Props {
			result[k] = v
		}
	}
	return result
}

// ========== 布局 ==========

// Box 返回文档坐标系中的布局盒
func (e *Element) Box() Rect {
	if !e.IsConnected() {
		return Rect{}
	}
	layout, ok := ecs.GetComponent[*components.LayoutComponent](e.doc.em, e.id)
	if !ok {
		return Rect{}
	}
	return Rect{X: layout.X, Y: layout.Y, Width: layout.Width, Height: layout.Height}
}

// SetBox 修改布局盒
func (e *Element) SetBox(r Rect) {
	if !e.IsConnected() {
		return
	}
	if layout, ok := ecs.GetComponent[*components.LayoutComponent](e.doc.em, e.id); ok {
		layout.X, layout.Y, layout.Width, layout.Height = r.X, r.Y, r.Width, r.Height
		e.doc.layoutVersion++
	}
}

// BoundingClientRect 返回视口坐标系中的布局盒（不含变换）
func (e *Element) BoundingClientRect() Rect {
	box := e.Box()
	if !e.IsConnected() {
		return box
	}
	box.Y -= e.doc.scrollY
	return box
}

// ========== 事件 ==========

// AddEventListener 注册指针事件监听器，返回监听器 ID（元素已移除时返回 0）
func (e *Element) AddEventListener(kind components.PointerEventKind, handler components.PointerHandler) uint64 {
	if !e.IsConnected() || handler == nil {
		return 0
	}
	lc, ok := ecs.GetComponent[*components.ListenerComponent](e.doc.em, e.id)
	if !ok {
		return 0
	}
	id := e.doc.nextListenerID
	e.doc.nextListenerID++
	lc.Listeners = append(lc.Listeners, components.PointerListener{ID: id, Kind: kind, Handler: handler})
	return id
}

// RemoveEventListener 按 ID 移除监听器，不存在时静默忽略
func (e *Element) RemoveEventListener(id uint64) {
	if !e.IsConnected() || id == 0 {
		return
	}
	lc, ok := ecs.GetComponent[*components.ListenerComponent](e.doc.em, e.id)
	if !ok {
		return
	}
	for i, l := range lc.Listeners {
		if l.ID == id {
			lc.Listeners = append(lc.Listeners[:i], lc.Listeners[i+1:]...)
			return
		}
	}
}

// ListenerCount 返回指定类型的监听器数量
func (e *Element) ListenerCount(kind components.PointerEventKind) int {
	if !e.IsConnected() {
		return 0
	}
	lc, ok := ecs.GetComponent[*components.ListenerComponent](e.doc.em, e.id)
	if !ok {
		return 0
	}
	return lc.Count(kind)
}
