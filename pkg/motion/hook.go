package motion

import "reflect"

// Hook 组件的挂载/重渲染生命周期
//
// 每次 Use 的依赖变化时先关闭上一个作用域，再打开新的作用域执行 setup，
// 因此同一触发元素上的观察者数量不会超过最近一次挂载创建的数量。
type Hook struct {
	rt    *Runtime
	owner string

	deps  []any
	scope *Scope
}

// NewHook 为 owner 创建生命周期钩子
func NewHook(rt *Runtime, owner string) *Hook {
	return &Hook{rt: rt, owner: owner}
}

// Use 在依赖变化时重新执行 setup
//
// deps 为 nil 表示每次调用都重新执行；空切片表示只执行一次。
// 返回当前作用域。
func (h *Hook) Use(deps []any, setup func(s *Scope)) *Scope {
	if h.scope != nil && deps != nil && h.deps != nil && reflect.DeepEqual(deps, h.deps) {
		return h.scope
	}
	if h.scope != nil {
		h.scope.Close()
	}
	h.scope = h.rt.OpenScope(h.owner)
	if deps != nil {
		h.deps = append([]any{}, deps...)
	} else {
		h.deps = nil
	}
	h.scope.Run(setup)
	return h.scope
}

// Scope 返回当前作用域，未挂载时为 nil
func (h *Hook) Scope() *Scope {
	return h.scope
}

// Unmount 关闭当前作用域
func (h *Hook) Unmount() {
	if h.scope != nil {
		h.scope.Close()
	}
	h.scope = nil
	h.deps = nil
}
