package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/motion"
	"github.com/gonewx/sitemotion/pkg/systems"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/ui"
	"github.com/gonewx/sitemotion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 移动端菜单布局
const (
	menuPadding     = 24.0
	menuLinkHeight  = 44.0
	menuLinkGap     = 8.0
	menuLinkOffsetX = -20.0
	menuStagger     = 0.05
	menuDuration    = 0.3
	menuEase        = "power2.out"

	// ClassMobileNavLink 菜单链接的类名
	ClassMobileNavLink = "mobile-nav-link"
)

// NavMenu 移动端导航菜单
//
// 菜单有独立的文档，链接在导航栏下方纵向排列。
// 每次展开时通过 Hook 以展开状态为依赖重新播放链接入场，收起时撤销。
type NavMenu struct {
	site   *config.SiteConfig
	navbar *ui.Navbar
	locale ui.Locale

	doc    *dom.Document
	rt     *motion.Runtime
	render *systems.RenderSystem
	hook   *motion.Hook

	panel *dom.Element
	links []*dom.Element
	pages []config.PageConfig
}

// NewNavMenu 为 navbar 创建菜单，链接为导航栏页面
func NewNavMenu(opts PageOptions, navbar *ui.Navbar) (*NavMenu, error) {
	if opts.Site == nil {
		return nil, fmt.Errorf("site config is required")
	}
	presets := opts.Presets
	if presets == nil {
		table, err := opts.Site.PresetTable()
		if err != nil {
			return nil, fmt.Errorf("build presets: %w", err)
		}
		presets = table
	}

	w := float64(opts.Site.Window.Width)
	h := float64(opts.Site.Window.Height)
	doc := dom.NewDocument(w, h)
	m := &NavMenu{
		site:   opts.Site,
		navbar: navbar,
		doc:    doc,
		rt:     motion.NewRuntime(doc, presets),
		render: systems.NewRenderSystem(doc),
		pages:  opts.Site.NavPages(),
	}
	m.hook = motion.NewHook(m.rt, "navbar:menu")

	top := float64(config.NavbarHeight)
	n := len(m.pages)
	m.panel = doc.CreateElement("menu", dom.Rect{
		X: 0, Y: top, Width: w, Height: stackHeight(n, menuLinkHeight, menuLinkGap) + 2*menuPadding,
	}, "mobile-menu")
	for i, p := range m.pages {
		m.links = append(m.links, doc.CreateChild(m.panel, p.ID, dom.Rect{
			X:      menuPadding,
			Y:      top + menuPadding + float64(i)*(menuLinkHeight+menuLinkGap),
			Width:  w - 2*menuPadding,
			Height: menuLinkHeight,
		}, ClassMobileNavLink))
	}
	m.SetLocale(opts.Locale)
	return m, nil
}

// SetLocale 以 locale 更新链接文本
func (m *NavMenu) SetLocale(locale ui.Locale) {
	if locale == "" {
		locale = ui.DefaultLocale
	}
	m.locale = locale
	for i, p := range m.pages {
		m.links[i].SetText(p.Title.Get(string(locale), m.site.Locales.Default))
	}
}

// Toggle 切换导航栏菜单并同步动画
func (m *NavMenu) Toggle() {
	m.navbar.ToggleMenu()
	m.Sync()
}

// Sync 按导航栏的展开状态挂载或卸载链接动画
//
// 导航栏状态被其他地方改变（例如导航后自动收起）时也需要调用。
func (m *NavMenu) Sync() {
	open := m.navbar.IsMenuOpen()
	if !open {
		if m.hook.Scope() != nil {
			m.hook.Unmount()
			log.Printf("[NavMenu] 菜单收起")
		}
		return
	}
	m.hook.Use([]any{open}, func(sc *motion.Scope) {
		ease, err := utils.ParseEase(menuEase)
		if err != nil {
			ease = utils.EaseOutCubic
		}
		sc.FromTo(m.links,
			tween.Props{dom.PropOpacity: 0, dom.PropX: menuLinkOffsetX},
			tween.Vars{
				Props:    tween.Props{dom.PropOpacity: 1, dom.PropX: 0},
				Duration: menuDuration,
				Stagger:  menuStagger,
				Ease:     ease,
			})
		log.Printf("[NavMenu] 菜单展开: %d 个链接", len(m.links))
	})
}

// Update 推进链接动画
func (m *NavMenu) Update(deltaTime float64) {
	m.rt.Update(deltaTime)
}

// Draw 菜单展开时绘制遮罩和链接
func (m *NavMenu) Draw(screen *ebiten.Image, palette ui.Palette) {
	if !m.navbar.IsMenuOpen() {
		return
	}
	top := float32(config.NavbarHeight)
	vector.DrawFilledRect(screen, 0, top, float32(m.doc.ViewportWidth()), float32(m.doc.ViewportHeight())-top,
		color.RGBA{0, 0, 0, 120}, false)
	m.render.Draw(screen, palette)
}

// Click 返回 (x, y) 处链接对应的页面 ID，菜单收起或未命中时返回 false
func (m *NavMenu) Click(x, y float64) (string, bool) {
	if !m.navbar.IsMenuOpen() {
		return "", false
	}
	for i, el := range m.links {
		if el.BoundingClientRect().Contains(x, y) {
			return m.pages[i].ID, true
		}
	}
	return "", false
}

// Close 撤销菜单动画
func (m *NavMenu) Close() {
	m.hook.Unmount()
}

// Links 菜单链接，按导航栏顺序
func (m *NavMenu) Links() []*dom.Element { return m.links }

// Runtime 菜单动画运行时
func (m *NavMenu) Runtime() *motion.Runtime { return m.rt }

// Scope 当前链接动画的作用域，收起时为 nil
func (m *NavMenu) Scope() *motion.Scope { return m.hook.Scope() }
