// Package dom 提供一个无头的元素宿主
//
// 它在动画内核与真实渲染层之间扮演浏览器 DOM 的角色：
// 元素拥有布局盒、内联视觉样式和指针事件监听器，文档拥有视口和滚动位置。
// 元素数据以组件形式存放在 ecs.EntityManager 中，渲染层（pkg/systems）
// 直接查询组件绘制，动画内核只通过 *Element 句柄读写内联样式。
package dom

import (
	"math"

	"github.com/gonewx/sitemotion/pkg/components"
	"github.com/gonewx/sitemotion/pkg/ecs"
)

// Document 元素宿主
type Document struct {
	em *ecs.EntityManager

	viewportWidth  float64
	viewportHeight float64
	scrollY        float64

	// layoutVersion 在滚动、视口尺寸或布局变化时递增
	// 滚动观察者据此把同一帧内的多次变化合并为一次测量
	layoutVersion uint64

	nextListenerID uint64
	hovered        map[ecs.EntityID]bool
	elements       map[ecs.EntityID]*Element
}

// NewDocument 创建指定视口尺寸的文档
func NewDocument(viewportWidth, viewportHeight float64) *Document {
	return &Document{
		em:             ecs.NewEntityManager(),
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
		nextListenerID: 1,
		hovered:        make(map[ecs.EntityID]bool),
		elements:       make(map[ecs.EntityID]*Element),
	}
}

// EntityManager 返回底层的实体管理器（供渲染系统查询组件）
func (d *Document) EntityManager() *ecs.EntityManager {
	return d.em
}

// CreateElement 创建一个根元素
func (d *Document) CreateElement(name string, box Rect, classes ...string) *Element {
	return d.createElement(0, name, box, classes)
}

// CreateChild 在 parent 下创建子元素
// parent 已被移除时返回一个未连接的元素（所有操作都是空操作）
func (d *Document) CreateChild(parent *Element, name string, box Rect, classes ...string) *Element {
	if parent == nil || !parent.IsConnected() {
		return &Element{doc: d}
	}
	child := d.createElement(parent.id, name, box, classes)
	if node, ok := ecs.GetComponent[*components.NodeComponent](d.em, parent.id); ok {
		node.Children = append(node.Children, child.id)
	}
	return child
}

func (d *Document) createElement(parent ecs.EntityID, name string, box Rect, classes []string) *Element {
	id := d.em.CreateEntity()
	d.em.AddComponent(id, &components.NodeComponent{
		Name:    name,
		Classes: append([]string(nil), classes...),
		Parent:  parent,
	})
	d.em.AddComponent(id, &components.LayoutComponent{
		X: box.X, Y: box.Y, Width: box.Width, Height: box.Height,
	})
	d.em.AddComponent(id, components.NewStyleComponent())
	d.em.AddComponent(id, &components.ListenerComponent{})

	el := &Element{doc: d, id: id}
	d.elements[id] = el
	d.layoutVersion++
	return el
}

// Remove 移除元素及其全部子元素
// 已移除的元素再次移除是空操作
func (d *Document) Remove(el *Element) {
	if el == nil || !el.IsConnected() {
		return
	}

	if node, ok := ecs.GetComponent[*components.NodeComponent](d.em, el.id); ok && node.Parent != 0 {
		if parent, ok := ecs.GetComponent[*components.NodeComponent](d.em, node.Parent); ok {
			kept := parent.Children[:0]
			for _, c := range parent.Children {
				if c != el.id {
					kept = append(kept, c)
				}
			}
			parent.Children = kept
		}
	}

	d.markSubtree(el.id)
	d.em.RemoveMarkedEntities()
	d.layoutVersion++
	d.clampScroll()
}

func (d *Document) markSubtree(id ecs.EntityID) {
	if node, ok := ecs.GetComponent[*components.NodeComponent](d.em, id); ok {
		for _, c := range node.Children {
			d.markSubtree(c)
		}
	}
	d.em.DestroyEntity(id)
	delete(d.elements, id)
	delete(d.hovered, id)
}

// Element 根据 ID 返回元素句柄，元素不存在时返回 nil
func (d *Document) Element(id ecs.EntityID) *Element {
	return d.elements[id]
}

// Elements 返回所有已连接元素，按创建顺序
func (d *Document) Elements() []*Element {
	ids := ecs.GetEntitiesWith1[*components.NodeComponent](d.em)
	result := make([]*Element, 0, len(ids))
	for _, id := range ids {
		if el, ok := d.elements[id]; ok {
			result = append(result, el)
		}
	}
	return result
}

// Children 返回元素的直接子元素（调用时解析一次）
func (d *Document) Children(el *Element) []*Element {
	if el == nil {
		return nil
	}
	node, ok := ecs.GetComponent[*components.NodeComponent](d.em, el.id)
	if !ok {
		return nil
	}
	result := make([]*Element, 0, len(node.Children))
	for _, id := range node.Children {
		if child, ok := d.elements[id]; ok {
			result = append(result, child)
		}
	}
	return result
}

// ElementsByClass 返回包含指定类名的已连接元素（调用时解析一次）
func (d *Document) ElementsByClass(class string) []*Element {
	result := make([]*Element, 0)
	for _, el := range d.Elements() {
		if el.HasClass(class) {
			result = append(result, el)
		}
	}
	return result
}

// ========== 视口与滚动 ==========

// ViewportWidth 返回视口宽度
func (d *Document) ViewportWidth() float64 { return d.viewportWidth }

// ViewportHeight 返回视口高度
func (d *Document) ViewportHeight() float64 { return d.viewportHeight }

// ScrollY 返回当前垂直滚动偏移
func (d *Document) ScrollY() float64 { return d.scrollY }

// LayoutVersion 返回布局版本号
func (d *Document) LayoutVersion() uint64 { return d.layoutVersion }

// ContentHeight 返回所有元素布局盒的最大底边
func (d *Document) ContentHeight() float64 {
	maxBottom := 0.0
	for _, id := range ecs.GetEntitiesWith1[*components.LayoutComponent](d.em) {
		layout, _ := ecs.GetComponent[*components.LayoutComponent](d.em, id)
		maxBottom = math.Max(maxBottom, layout.Y+layout.Height)
	}
	return maxBottom
}

// MaxScroll 返回可滚动的最大偏移
func (d *Document) MaxScroll() float64 {
	return math.Max(0, d.ContentHeight()-d.viewportHeight)
}

// ScrollTo 滚动到指定偏移，结果被限制在 [0, MaxScroll]
func (d *Document) ScrollTo(y float64) {
	y = math.Max(0, math.Min(y, d.MaxScroll()))
	if y == d.scrollY {
		return
	}
	d.scrollY = y
	d.layoutVersion++
}

// ScrollBy 相对当前位置滚动
func (d *Document) ScrollBy(dy float64) {
	d.ScrollTo(d.scrollY + dy)
}

// SetViewport 修改视口尺寸（相当于窗口 resize）
func (d *Document) SetViewport(width, height float64) {
	if width == d.viewportWidth && height == d.viewportHeight {
		return
	}
	d.viewportWidth = width
	d.viewportHeight = height
	d.layoutVersion++
	d.clampScroll()
}

func (d *Document) clampScroll() {
	if d.scrollY > d.MaxScroll() {
		d.scrollY = d.MaxScroll()
		d.layoutVersion++
	}
}

// ========== 指针事件 ==========

// DispatchPointerMove 在视口坐标 (x, y) 派发指针移动
//
// 指针位于元素布局盒内时向该元素派发 PointerMove；
// 之前处于悬停状态、现在不再包含指针的元素收到 PointerLeave。
func (d *Document) DispatchPointerMove(x, y float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ListenerComponent](d.em) {
		el, ok := d.elements[id]
		if !ok {
			continue
		}
		inside := el.BoundingClientRect().Contains(x, y)
		switch {
		case inside:
			d.hovered[id] = true
			d.fire(id, components.PointerMove, x, y)
		case d.hovered[id]:
			delete(d.hovered, id)
			d.fire(id, components.PointerLeave, x, y)
		}
	}
}

// DispatchPointerLeave 指针离开视口（例如移出窗口），所有悬停元素收到 PointerLeave
func (d *Document) DispatchPointerLeave() {
	for _, id := range ecs.GetEntitiesWith1[*components.ListenerComponent](d.em) {
		if d.hovered[id] {
			delete(d.hovered, id)
			d.fire(id, components.PointerLeave, -1, -1)
		}
	}
}

// IsHovered 检查元素当前是否处于悬停状态
func (d *Document) IsHovered(el *Element) bool {
	return el != nil && d.hovered[el.id]
}

func (d *Document) fire(id ecs.EntityID, kind components.PointerEventKind, x, y float64) {
	lc, ok := ecs.GetComponent[*components.ListenerComponent](d.em, id)
	if !ok {
		return
	}
	// 回调中可能移除监听器，先复制
	listeners := append([]components.PointerListener(nil), lc.Listeners...)
	for _, l := range listeners {
		if l.Kind == kind {
			l.Handler(x, y)
		}
	}
}
