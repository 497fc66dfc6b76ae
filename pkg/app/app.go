// Package app 提供站点应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来，桌面端通过 main.go 调用 NewApp()，
// 移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/contact"
	"github.com/gonewx/sitemotion/pkg/scenes"
	"github.com/gonewx/sitemotion/pkg/site"
	"github.com/gonewx/sitemotion/pkg/systems"
	"github.com/gonewx/sitemotion/pkg/ui"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// 导航栏和页脚链接
const (
	navLinkWidth    = 110
	navLinkPadding  = 12
	navTextY        = 26
	footerHeight    = 28
	footerLinkWidth = 130
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SiteConfig 站点配置路径，为空时使用 data/site.yaml
	SiteConfig string
	// Page 启动页面 ID，为空时打开第一个页面
	Page string
	// Locale 显式指定语言，优先于保存的偏好
	Locale string
	// AcceptLanguage 系统语言偏好（如 LANG），用于协商默认语言
	AcceptLanguage string
	// PrefersDark 系统是否偏好深色，决定 system 主题的解析结果
	PrefersDark bool
	// Storage 偏好存储，nil 时只保存在内存
	Storage *gdata.Manager
	// Sender 联系表单的发送方式，nil 时只记录日志
	Sender contact.Sender
}

// App 站点应用，实现 ebiten.Game 接口
type App struct {
	site     *config.SiteConfig
	router   *site.Router
	settings *site.SettingsManager
	navbar   *ui.Navbar
	menu     *scenes.NavMenu
	input    *systems.InputSystem

	opts        scenes.PageOptions
	prefersDark bool
	verbose     bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.SiteConfig
	if path == "" {
		path = config.DefaultSiteConfigPath
	}
	siteCfg, err := config.LoadSiteConfig(path)
	if err != nil {
		return nil, fmt.Errorf("站点配置加载失败: %w", err)
	}
	presets, err := siteCfg.PresetTable()
	if err != nil {
		return nil, fmt.Errorf("动画预设构建失败: %w", err)
	}
	log.Printf("[App] 加载站点配置 %s: %d 个页面", path, len(siteCfg.Pages))

	settings := site.NewSettingsManager(cfg.Storage)
	stored, _ := settings.Locale()
	locale := ui.ResolveLocale(cfg.Locale, string(stored), cfg.AcceptLanguage)
	log.Printf("[App] 语言: %s, 主题: %s", locale, settings.Theme())

	a := &App{
		site:        siteCfg,
		settings:    settings,
		navbar:      ui.NewNavbar(),
		prefersDark: cfg.PrefersDark,
		verbose:     cfg.Verbose,
		opts: scenes.PageOptions{
			Site:    siteCfg,
			Presets: presets,
			Locale:  locale,
			Sender:  cfg.Sender,
		},
	}
	a.router = site.NewRouter(scenes.NewPageFactory(a.opts))
	a.menu, err = scenes.NewNavMenu(a.opts, a.navbar)
	if err != nil {
		return nil, fmt.Errorf("导航菜单创建失败: %w", err)
	}

	pageID := cfg.Page
	if pageID == "" {
		pageID = siteCfg.Pages[0].ID
	}
	if err := a.navigate(pageID); err != nil {
		return nil, err
	}
	return a, nil
}

// navigate 切换页面并把输入系统接到新文档上
func (a *App) navigate(pageID string) error {
	if err := a.router.Navigate(pageID); err != nil {
		return err
	}
	scene := a.scene()
	scene.SetPalette(a.palette())
	if a.input == nil {
		a.input = systems.NewInputSystem(scene.Document(), a.navbar)
	} else {
		a.input.SetDocument(scene.Document())
	}
	a.navbar.Navigate(pageID)
	a.menu.Sync()
	ebiten.SetWindowTitle(fmt.Sprintf("%s - %s", scene.Title(), a.site.Window.Title))
	return nil
}

func (a *App) scene() *scenes.PageScene {
	scene, _ := a.router.Current().(*scenes.PageScene)
	return scene
}

func (a *App) palette() ui.Palette {
	return ui.PaletteFor(a.settings.Theme().Resolve(a.prefersDark))
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.site.Window.Width, a.site.Window.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.site.Window.Width, a.site.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	a.handleKeys()

	pointer := utils.ReadPointer(a.site.Window.Width, a.site.Window.Height)
	// 桌面端触摸只用于拖动滚动，移动端轻触即点击
	if pointer.JustPressed && (!pointer.Touch || utils.IsMobile()) {
		a.click(float64(pointer.X), float64(pointer.Y))
	}
	if a.input.Update(pointer, utils.ReadWheel()) {
		log.Printf("[App] 导航栏 scrolled=%v", a.navbar.IsScrolled())
	}

	deltaTime := 1.0 / 60.0
	a.router.Update(deltaTime)
	a.menu.Update(deltaTime)
	return nil
}

func (a *App) handleKeys() {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	scene := a.scene()
	// 联系表单获得输入时，字母键全部作为文本
	if scene.Form() != nil {
		a.handleFormKeys(scene)
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		a.toggleTheme()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		a.toggleLocale()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.menu.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		scene.NextFilter()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.router.Remount()
	}

	for i, page := range a.site.NavPages() {
		if i > 8 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			if err := a.navigate(page.ID); err != nil {
				log.Printf("[App] 导航失败: %v", err)
			}
		}
	}
}

func (a *App) handleFormKeys(scene *scenes.PageScene) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if err := a.navigate(a.site.Pages[0].ID); err != nil {
			log.Printf("[App] 导航失败: %v", err)
		}
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		scene.FocusNextField()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		scene.SubmitForm()
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		scene.Backspace()
	}
	scene.TypeText(ebiten.AppendInputChars(nil))
}

func (a *App) toggleTheme() {
	next := a.settings.Theme().Next()
	a.settings.SetTheme(next)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存主题失败: %v", err)
	}
	a.scene().SetPalette(a.palette())
	log.Printf("[App] 主题: %s", next)
}

// toggleLocale 切换语言并以新语言重新创建当前页面
func (a *App) toggleLocale() {
	next := a.opts.Locale.Next()
	a.opts.Locale = next
	a.settings.SetLocale(next)
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] 保存语言失败: %v", err)
	}
	a.router.SetFactory(scenes.NewPageFactory(a.opts))
	a.menu.SetLocale(next)
	if err := a.navigate(a.router.CurrentID()); err != nil {
		log.Printf("[App] 切换语言失败: %v", err)
	}
	log.Printf("[App] 语言: %s", next)
}

// click 依次检查导航栏、展开的菜单和页脚，最后交给页面
func (a *App) click(x, y float64) {
	if y < config.NavbarHeight {
		if page, ok := linkAt(a.site.NavPages(), x, navLinkPadding, navLinkWidth); ok {
			a.goTo(page)
		}
		return
	}
	if a.navbar.IsMenuOpen() {
		if page, ok := a.menu.Click(x, y); ok {
			a.goTo(page)
		} else {
			a.menu.Toggle()
		}
		return
	}
	if y >= float64(a.site.Window.Height-footerHeight) {
		if page, ok := linkAt(a.site.FooterPages(), x, navLinkPadding, footerLinkWidth); ok {
			a.goTo(page)
			return
		}
	}
	a.scene().Click(x, y)
}

func (a *App) goTo(pageID string) {
	if err := a.navigate(pageID); err != nil {
		log.Printf("[App] 导航失败: %v", err)
	}
}

// linkAt 返回横向排列的链接中 x 处的页面
func linkAt(pages []config.PageConfig, x float64, padding, width int) (string, bool) {
	for i, p := range pages {
		left := float64(padding + i*width)
		if x >= left && x < left+float64(width) {
			return p.ID, true
		}
	}
	return "", false
}

// Draw 绘制页面和导航栏
func (a *App) Draw(screen *ebiten.Image) {
	a.router.Draw(screen)
	a.drawNavbar(screen)
}

func (a *App) drawNavbar(screen *ebiten.Image) {
	p := a.palette()
	w := float32(a.site.Window.Width)
	bg := p.Surface
	if !a.navbar.IsScrolled() {
		bg.A = 160
	}
	h := float32(config.NavbarHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, bg, false)
	if a.navbar.IsScrolled() {
		vector.StrokeLine(screen, 0, h, w, h, 1, p.Border, false)
	}

	locale := string(a.opts.Locale)
	for i, page := range a.site.NavPages() {
		label := page.Title.Get(locale, a.site.Locales.Default)
		if page.ID == a.navbar.Active() {
			label = "[" + label + "]"
		}
		ebitenutil.DebugPrintAt(screen, label, navLinkPadding+i*navLinkWidth, navTextY)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s | %s", a.opts.Locale.DisplayName(), a.settings.Theme()),
		a.site.Window.Width-160, navTextY)

	a.drawFooter(screen, p, locale)
	a.menu.Draw(screen, p)
}

func (a *App) drawFooter(screen *ebiten.Image, p ui.Palette, locale string) {
	top := a.site.Window.Height - footerHeight
	vector.DrawFilledRect(screen, 0, float32(top), float32(a.site.Window.Width), footerHeight, p.Surface, false)
	for i, page := range a.site.FooterPages() {
		label := page.Title.Get(locale, a.site.Locales.Default)
		if page.ID == a.navbar.Active() {
			label = "[" + label + "]"
		}
		ebitenutil.DebugPrintAt(screen, label, navLinkPadding+i*footerLinkWidth, top+6)
	}
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.site.Window.Width, a.site.Window.Height
}

// Close 卸载当前页面和菜单动画并保存偏好
func (a *App) Close() error {
	a.menu.Close()
	a.router.Close()
	return a.settings.Save()
}

// Router 返回页面路由
func (a *App) Router() *site.Router {
	return a.router
}

// Menu 返回移动端导航菜单
func (a *App) Menu() *scenes.NavMenu {
	return a.menu
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
