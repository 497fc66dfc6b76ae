package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/contact"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/motion"
	"github.com/gonewx/sitemotion/pkg/preset"
	"github.com/gonewx/sitemotion/pkg/systems"
	"github.com/gonewx/sitemotion/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// PageOptions 创建页面所需的依赖
type PageOptions struct {
	Site    *config.SiteConfig
	Presets *preset.Table // nil 时由 Site 构建
	Locale  ui.Locale
	Sender  contact.Sender // nil 时只记录日志
}

// PageScene 由站点配置构建的页面
//
// 元素树在创建时一次性构建，动画在 Mount 时绑定、Unmount 时全部撤销；
// 作品集筛选通过 Hook 以分类为依赖重新绑定。
type PageScene struct {
	site   *config.SiteConfig
	page   *config.PageConfig
	locale ui.Locale

	doc    *dom.Document
	rt     *motion.Runtime
	render *systems.RenderSystem

	sections []*sectionView
	scope    *motion.Scope

	portfolio *portfolioView
	faq       *faqView
	form      *formView

	palette ui.Palette
	mounted bool
}

// sectionView 一个区块的元素
type sectionView struct {
	cfg      *config.SectionConfig
	el       *dom.Element
	title    *dom.Element
	grid     *dom.Element
	items    []*dom.Element
	elements []*dom.Element // 按配置顺序
	named    map[string]*dom.Element
}

// NewPageScene 创建页面场景
func NewPageScene(pageID string, opts PageOptions) (*PageScene, error) {
	if opts.Site == nil {
		return nil, fmt.Errorf("site config is required")
	}
	page, ok := opts.Site.Page(pageID)
	if !ok {
		return nil, fmt.Errorf("unknown page %q", pageID)
	}
	presets := opts.Presets
	if presets == nil {
		table, err := opts.Site.PresetTable()
		if err != nil {
			return nil, fmt.Errorf("build presets: %w", err)
		}
		presets = table
	}
	locale := opts.Locale
	if locale == "" {
		locale = ui.DefaultLocale
	}

	w := float64(opts.Site.Window.Width)
	h := float64(opts.Site.Window.Height)
	doc := dom.NewDocument(w, h)

	s := &PageScene{
		site:    opts.Site,
		page:    page,
		locale:  locale,
		doc:     doc,
		rt:      motion.NewRuntime(doc, presets),
		render:  systems.NewRenderSystem(doc),
		palette: ui.PaletteFor(ui.ThemeLight),
	}
	s.build(opts)
	log.Printf("[PageScene] 创建页面 %s (%s): %d 个区块, %d 个元素", page.ID, locale, len(s.sections), len(doc.Elements()))
	return s, nil
}

// text 返回当前语言的文本
func (s *PageScene) text(l config.Localized) string {
	return l.Get(string(s.locale), s.site.Locales.Default)
}

// Mount 打开页面作用域并绑定全部动画
func (s *PageScene) Mount() {
	if s.mounted {
		return
	}
	s.mounted = true
	s.scope = s.rt.OpenScope("page:" + s.page.ID)
	s.scope.Run(func(sc *motion.Scope) {
		for _, sv := range s.sections {
			s.bindSection(sc, sv)
		}
		if s.faq != nil {
			s.faq.bind(sc)
		}
	})
	if s.portfolio != nil {
		s.portfolio.animate()
	}
	log.Printf("[PageScene] 挂载页面 %s: 作用域成员 %d, 滚动观察者 %d", s.page.ID, s.scope.Len(), s.rt.Scroll().Len())
}

// Unmount 撤销页面创建的全部动画和观察者
func (s *PageScene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	if s.portfolio != nil {
		s.portfolio.hook.Unmount()
	}
	if s.form != nil {
		s.form.cancel()
	}
	s.scope.Close()
	s.scope = nil
	log.Printf("[PageScene] 卸载页面 %s", s.page.ID)
}

// Update 推进滚动观察者和补间
func (s *PageScene) Update(deltaTime float64) {
	if s.form != nil {
		s.form.refresh()
	}
	s.rt.Update(deltaTime)
}

// Draw 绘制页面
func (s *PageScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.palette.Background)
	s.render.Draw(screen, s.palette)
}

// SetPalette 切换配色
func (s *PageScene) SetPalette(p ui.Palette) {
	s.palette = p
}

// Click 处理视口坐标 (x, y) 的点击，命中可交互元素时返回 true
func (s *PageScene) Click(x, y float64) bool {
	if s.portfolio != nil && s.portfolio.click(x, y) {
		return true
	}
	if s.faq != nil && s.faq.click(x, y) {
		return true
	}
	if s.form != nil && s.form.click(x, y) {
		return true
	}
	return false
}

// PageID 页面 ID
func (s *PageScene) PageID() string { return s.page.ID }

// Title 当前语言的页面标题
func (s *PageScene) Title() string { return s.text(s.page.Title) }

// Locale 页面语言
func (s *PageScene) Locale() ui.Locale { return s.locale }

// Document 页面文档
func (s *PageScene) Document() *dom.Document { return s.doc }

// Runtime 页面动画运行时
func (s *PageScene) Runtime() *motion.Runtime { return s.rt }

// IsMounted 是否已挂载
func (s *PageScene) IsMounted() bool { return s.mounted }

// Section 按 ID 返回区块根元素
func (s *PageScene) Section(id string) (*dom.Element, bool) {
	for _, sv := range s.sections {
		if sv.cfg.ID == id {
			return sv.el, true
		}
	}
	return nil, false
}

// Element 返回区块内的命名元素
func (s *PageScene) Element(sectionID, name string) (*dom.Element, bool) {
	for _, sv := range s.sections {
		if sv.cfg.ID == sectionID {
			el, ok := sv.named[name]
			return el, ok
		}
	}
	return nil, false
}

// Items 返回区块网格项
func (s *PageScene) Items(sectionID string) []*dom.Element {
	for _, sv := range s.sections {
		if sv.cfg.ID == sectionID {
			return append([]*dom.Element(nil), sv.items...)
		}
	}
	return nil
}

// ========== 作品集 / FAQ / 联系表单 ==========

// Filter 当前作品分类，非作品集页面返回空
func (s *PageScene) Filter() string {
	if s.portfolio == nil {
		return ""
	}
	return s.portfolio.filter
}

// SetFilter 切换作品分类，分类变化时重建网格并重新播放入场动画
func (s *PageScene) SetFilter(category string) bool {
	if s.portfolio == nil {
		return false
	}
	return s.portfolio.setFilter(category, s.mounted)
}

// NextFilter 切换到下一个分类
func (s *PageScene) NextFilter() {
	if s.portfolio == nil || len(s.portfolio.categories) == 0 {
		return
	}
	cats := s.portfolio.categories
	for i, c := range cats {
		if c.ID == s.portfolio.filter {
			s.SetFilter(cats[(i+1)%len(cats)].ID)
			return
		}
	}
	s.SetFilter(cats[0].ID)
}

// Projects 当前显示的作品卡片
func (s *PageScene) Projects() []*dom.Element {
	if s.portfolio == nil {
		return nil
	}
	return s.doc.Children(s.portfolio.grid)
}

// ProjectScope 作品网格当前的动画作用域
func (s *PageScene) ProjectScope() *motion.Scope {
	if s.portfolio == nil {
		return nil
	}
	return s.portfolio.hook.Scope()
}

// Accordion 常见问题手风琴，非 FAQ 页面返回 nil
func (s *PageScene) Accordion() *ui.Accordion {
	if s.faq == nil {
		return nil
	}
	return s.faq.accordion
}

// ToggleFAQ 展开或收起第 i 个问题
func (s *PageScene) ToggleFAQ(i int) {
	if s.faq == nil || i < 0 || i >= len(s.faq.items) {
		return
	}
	s.faq.items[i].Toggle()
	s.faq.refresh()
}

// Form 联系表单，非联系页面返回 nil
func (s *PageScene) Form() *contact.Controller {
	if s.form == nil {
		return nil
	}
	return s.form.ctrl
}

// FocusedField 当前输入焦点字段
func (s *PageScene) FocusedField() contact.Field {
	if s.form == nil {
		return ""
	}
	return contact.Fields[s.form.focus]
}

// FocusNextField 把输入焦点移到下一个字段
func (s *PageScene) FocusNextField() {
	if s.form != nil {
		s.form.focus = (s.form.focus + 1) % len(contact.Fields)
	}
}

// TypeText 向焦点字段追加文本
func (s *PageScene) TypeText(runes []rune) {
	if s.form == nil || len(runes) == 0 {
		return
	}
	field := contact.Fields[s.form.focus]
	s.form.ctrl.Set(field, s.form.ctrl.Values().Get(field)+string(runes))
}

// Backspace 删除焦点字段的最后一个字符
func (s *PageScene) Backspace() {
	if s.form == nil {
		return
	}
	field := contact.Fields[s.form.focus]
	r := []rune(s.form.ctrl.Values().Get(field))
	if len(r) > 0 {
		s.form.ctrl.Set(field, string(r[:len(r)-1]))
	}
}

// SubmitForm 在后台提交联系表单，页面卸载时取消
func (s *PageScene) SubmitForm() {
	if s.form == nil {
		return
	}
	s.form.start()
}
