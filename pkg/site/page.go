// Package site 管理页面切换和用户偏好
package site

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Page 一个可显示的页面
type Page interface {
	// Update 推进页面逻辑，deltaTime 为秒
	Update(deltaTime float64)

	// Draw 把页面绘制到 screen
	Draw(screen *ebiten.Image)
}

// Mountable 可选接口：页面在成为当前页面时挂载，离开时卸载
//
// 挂载时打开动画作用域，卸载时关闭它们；
// Router 保证先卸载旧页面再挂载新页面。
type Mountable interface {
	Mount()
	Unmount()
}
