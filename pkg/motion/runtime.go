// Package motion 是页面动画的编排层
//
// 组件在挂载时通过 Runtime.OpenScope（或 Hook.Use）获得一个 Scope，
// 在其中用预设绑定元素、创建时间轴、挂载磁吸效果；卸载时 Scope.Close
// 一次性撤销它创建的全部效果与滚动观察者，目标元素的内联样式恢复原状。
package motion

import (
	"log"

	"github.com/google/uuid"

	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/preset"
	"github.com/gonewx/sitemotion/pkg/scroll"
	"github.com/gonewx/sitemotion/pkg/tween"
)

// Runtime 一个文档上的动画运行时
// 持有补间引擎、滚动观察者注册表和预设表，由宿主每帧调用 Update
type Runtime struct {
	doc     *dom.Document
	engine  *tween.Engine
	scroll  *scroll.Registry
	presets *preset.Table

	scopes map[uuid.UUID]*Scope
}

// NewRuntime 创建运行时，presets 为 nil 时使用内置预设表
func NewRuntime(doc *dom.Document, presets *preset.Table) *Runtime {
	if presets == nil {
		presets = preset.Default()
	}
	return &Runtime{
		doc:     doc,
		engine:  tween.NewEngine(),
		scroll:  scroll.NewRegistry(doc),
		presets: presets,
		scopes:  make(map[uuid.UUID]*Scope),
	}
}

// Document 返回元素宿主
func (rt *Runtime) Document() *dom.Document { return rt.doc }

// Engine 返回补间引擎
func (rt *Runtime) Engine() *tween.Engine { return rt.engine }

// Scroll 返回滚动观察者注册表
func (rt *Runtime) Scroll() *scroll.Registry { return rt.scroll }

// Presets 返回预设表
func (rt *Runtime) Presets() *preset.Table { return rt.presets }

// OpenScope 为 owner（通常是组件名）打开一个新的作用域
func (rt *Runtime) OpenScope(owner string) *Scope {
	s := &Scope{
		id:      uuid.New(),
		owner:   owner,
		rt:      rt,
		members: make([]member, 0),
	}
	rt.scopes[s.id] = s
	log.Printf("[Scope] 打开作用域 %s (%s)", owner, s.id)
	return s
}

// OpenScopes 返回尚未关闭的作用域数量
func (rt *Runtime) OpenScopes() int {
	return len(rt.scopes)
}

// Update 推进一帧：先求值滚动观察者（布局变化时最多测量一次），再推进补间
func (rt *Runtime) Update(deltaTime float64) {
	rt.scroll.Update(deltaTime)
	rt.engine.Update(deltaTime)
}

func (rt *Runtime) forget(s *Scope) {
	delete(rt.scopes, s.id)
}
