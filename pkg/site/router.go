package site

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrNoFactory 未设置页面工厂
var ErrNoFactory = errors.New("site: page factory not set")

// PageFactory 按页面 ID 创建页面
type PageFactory func(pageID string) (Page, error)

// Router 管理当前页面，同一时刻只有一个页面接收 Update 和 Draw
type Router struct {
	current   Page
	currentID string
	factory   PageFactory
}

// NewRouter 创建路由器，初始没有页面，用 Navigate 打开第一个页面
func NewRouter(factory PageFactory) *Router {
	return &Router{factory: factory}
}

// SetFactory 设置页面工厂
func (r *Router) SetFactory(factory PageFactory) {
	r.factory = factory
}

// Navigate 切换到指定页面
//
// 新页面创建失败时保留当前页面并返回错误。
// 旧页面先卸载，新页面再挂载。
func (r *Router) Navigate(pageID string) error {
	log.Printf("[Router] 导航到页面: %s", pageID)

	if r.factory == nil {
		log.Printf("[Router] 错误: PageFactory 未设置")
		return ErrNoFactory
	}

	next, err := r.factory(pageID)
	if err != nil {
		log.Printf("[Router] 错误: 无法创建页面 %s: %v", pageID, err)
		return fmt.Errorf("create page %s: %w", pageID, err)
	}

	r.unmount()
	r.current = next
	r.currentID = pageID
	r.mount()
	log.Printf("[Router] 成功切换到页面: %s", pageID)
	return nil
}

// Remount 卸载并重新挂载当前页面（同一实例）
func (r *Router) Remount() {
	if r.current == nil {
		return
	}
	log.Printf("[Router] 重新挂载页面: %s", r.currentID)
	r.unmount()
	r.mount()
}

// Close 卸载当前页面
func (r *Router) Close() {
	r.unmount()
	r.current = nil
	r.currentID = ""
}

func (r *Router) mount() {
	if m, ok := r.current.(Mountable); ok {
		m.Mount()
	}
}

func (r *Router) unmount() {
	if m, ok := r.current.(Mountable); ok {
		m.Unmount()
	}
}

// Current 返回当前页面，没有时为 nil
func (r *Router) Current() Page {
	return r.current
}

// CurrentID 返回当前页面 ID
func (r *Router) CurrentID() string {
	return r.currentID
}

// Update 更新当前页面
func (r *Router) Update(deltaTime float64) {
	if r.current != nil {
		r.current.Update(deltaTime)
	}
}

// Draw 绘制当前页面
func (r *Router) Draw(screen *ebiten.Image) {
	if r.current != nil {
		r.current.Draw(screen)
	}
}
