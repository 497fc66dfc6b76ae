package scenes

import (
	"log"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/motion"
	"github.com/gonewx/sitemotion/pkg/systems"
)

// CategoryAll 显示全部作品的分类
const CategoryAll = "all"

// 作品集布局
const (
	filterTop        = 40.0
	filterWidth      = 150.0
	filterHeight     = 40.0
	filterGap        = 12.0
	projectTop       = 112.0
	projectColumns   = 3
	projectHeight    = 260.0
	projectGap       = 24.0
	projectPreset    = "projectCard"
	classProjectCard = "project-card"
)

// portfolioView 作品集：分类筛选按钮和作品网格
type portfolioView struct {
	scene      *PageScene
	section    *sectionView
	categories []config.CategoryConfig
	filters    []*dom.Element
	grid       *dom.Element
	filter     string
	hook       *motion.Hook
}

func newPortfolioView(s *PageScene, sv *sectionView) *portfolioView {
	p := &portfolioView{
		scene:      s,
		section:    sv,
		categories: s.site.Portfolio.Categories,
		hook:       motion.NewHook(s.rt, "portfolio"),
	}
	top := sv.el.Box().Y

	for i, cat := range p.categories {
		f := s.doc.CreateChild(sv.el, "filter:"+cat.ID, dom.Rect{
			X:      config.SectionPaddingX + float64(i)*(filterWidth+filterGap),
			Y:      top + filterTop,
			Width:  filterWidth,
			Height: filterHeight,
		}, "filter")
		p.filters = append(p.filters, f)
	}
	p.grid = s.doc.CreateChild(sv.el, sv.cfg.ID+":grid", dom.Rect{
		X:     config.SectionPaddingX,
		Y:     top + projectTop,
		Width: s.doc.ViewportWidth() - 2*config.SectionPaddingX,
	}, systems.ClassGrid)

	p.filter = CategoryAll
	if len(p.categories) > 0 {
		p.filter = p.categories[0].ID
	}
	p.rebuild()
	return p
}

// rebuild 按当前分类重建作品卡片
func (p *portfolioView) rebuild() {
	doc := p.scene.doc
	for _, card := range doc.Children(p.grid) {
		doc.Remove(card)
	}

	var titles []string
	for _, proj := range p.scene.site.Portfolio.Projects {
		if p.filter == CategoryAll || proj.Category == p.filter {
			titles = append(titles, proj.Title)
		}
	}

	box, cells := gridLayout(p.grid.Box().Y, doc.ViewportWidth(), len(titles), projectColumns, projectHeight, projectGap)
	p.grid.SetBox(box)
	for i, cell := range cells {
		card := doc.CreateChild(p.grid, "project", cell, classProjectCard)
		card.SetText(titles[i])
	}

	for i, cat := range p.categories {
		label := p.scene.text(cat.Label)
		if cat.ID == p.filter {
			label = "> " + label
		}
		p.filters[i].SetText(label)
	}
}

// animate 以分类为依赖播放卡片入场动画
// 分类不变时复用当前作用域，变化时先撤销上一次的动画
func (p *portfolioView) animate() {
	p.hook.Use([]any{p.filter}, func(sc *motion.Scope) {
		motion.BindChildren(sc, p.grid, projectPreset, motion.BindConfig{Immediate: true})
	})
}

func (p *portfolioView) setFilter(category string, mounted bool) bool {
	if category == p.filter {
		return false
	}
	known := false
	for _, c := range p.categories {
		if c.ID == category {
			known = true
			break
		}
	}
	if !known {
		log.Printf("[Portfolio] 未知分类: %s", category)
		return false
	}

	p.filter = category
	p.rebuild()
	if mounted {
		p.animate()
	}
	log.Printf("[Portfolio] 切换分类: %s (%d 个作品)", category, len(p.scene.doc.Children(p.grid)))
	return true
}

func (p *portfolioView) click(x, y float64) bool {
	for i, f := range p.filters {
		if f.BoundingClientRect().Contains(x, y) {
			p.setFilter(p.categories[i].ID, p.scene.mounted)
			return true
		}
	}
	return false
}
