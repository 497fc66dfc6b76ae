package scenes

import (
	"math"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/systems"
)

// 区块内布局
const (
	sectionTitleTop    = 24.0
	sectionTitleHeight = 56.0
	// 没有标题时内容距区块顶部的距离
	contentTopNoTitle = 40.0
)

func (s *PageScene) build(opts PageOptions) {
	width := s.doc.ViewportWidth()
	top := 0.0
	for i := range s.page.Sections {
		cfg := &s.page.Sections[i]
		sv := s.buildSection(cfg, top, width)
		s.sections = append(s.sections, sv)

		switch cfg.Kind {
		case config.KindPortfolio:
			s.portfolio = newPortfolioView(s, sv)
		case config.KindFAQ:
			s.faq = newFAQView(s, sv)
		case config.KindContact:
			s.form = newFormView(s, sv, opts.Sender)
		}
		top += cfg.Height
	}
}

func (s *PageScene) buildSection(cfg *config.SectionConfig, top, width float64) *sectionView {
	sv := &sectionView{cfg: cfg, named: make(map[string]*dom.Element)}
	sv.el = s.doc.CreateElement("section:"+cfg.ID, dom.Rect{Y: top, Width: width, Height: cfg.Height}, systems.ClassSection)

	contentTop := top + contentTopNoTitle
	if title := s.text(cfg.Title); title != "" {
		sv.title = s.doc.CreateChild(sv.el, cfg.ID+":title", dom.Rect{
			X:      config.SectionPaddingX,
			Y:      top + sectionTitleTop,
			Width:  width - 2*config.SectionPaddingX,
			Height: sectionTitleHeight,
		}, "section-title")
		sv.title.SetText(title)
		contentTop = top + config.SectionTitleHeight
	}

	for _, ec := range cfg.Elements {
		el := s.doc.CreateChild(sv.el, cfg.ID+":"+ec.Name, dom.Rect{
			X:      ec.Box.X(),
			Y:      top + ec.Box.Y(),
			Width:  ec.Box.Width(),
			Height: ec.Box.Height(),
		}, elementClasses(cfg, ec.Name)...)
		el.SetText(s.text(ec.Text))
		sv.elements = append(sv.elements, el)
		sv.named[ec.Name] = el
	}

	if g := cfg.Grid; g != nil {
		box, cells := gridLayout(contentTop, width, g.Items, g.Columns, g.ItemHeight, g.Gap)
		sv.grid = s.doc.CreateChild(sv.el, cfg.ID+":grid", box, systems.ClassGrid)
		labels := s.labels(cfg)
		for i, cell := range cells {
			item := s.doc.CreateChild(sv.grid, cfg.ID+":item", cell, "grid-item")
			if i < len(labels) {
				item.SetText(labels[i])
			}
			sv.items = append(sv.items, item)
		}
	}
	return sv
}

// labels 网格项文本，缺失当前语言时使用默认语言
func (s *PageScene) labels(cfg *config.SectionConfig) []string {
	if l, ok := cfg.Labels[string(s.locale)]; ok {
		return l
	}
	return cfg.Labels[s.site.Locales.Default]
}

func elementClasses(cfg *config.SectionConfig, name string) []string {
	var classes []string
	for _, m := range cfg.Magnetic {
		if m == name {
			classes = append(classes, systems.ClassButton)
		}
	}
	for _, f := range cfg.Float {
		if f == name {
			classes = append(classes, systems.ClassFloat)
		}
	}
	if cfg.Parallax != nil && cfg.Parallax.Element == name {
		classes = append(classes, systems.ClassParallax)
	}
	return classes
}

// gridLayout 计算网格容器和各单元格的文档坐标
// 网格水平方向占满区块内边距之间的宽度
func gridLayout(top, width float64, count, columns int, itemHeight, gap float64) (dom.Rect, []dom.Rect) {
	if columns <= 0 {
		columns = 1
	}
	inner := width - 2*config.SectionPaddingX
	itemWidth := (inner - gap*float64(columns-1)) / float64(columns)
	rows := int(math.Ceil(float64(count) / float64(columns)))

	cells := make([]dom.Rect, 0, count)
	for i := 0; i < count; i++ {
		row, col := i/columns, i%columns
		cells = append(cells, dom.Rect{
			X:      config.SectionPaddingX + float64(col)*(itemWidth+gap),
			Y:      top + float64(row)*(itemHeight+gap),
			Width:  itemWidth,
			Height: itemHeight,
		})
	}

	height := 0.0
	if rows > 0 {
		height = float64(rows)*itemHeight + float64(rows-1)*gap
	}
	return dom.Rect{X: config.SectionPaddingX, Y: top, Width: inner, Height: height}, cells
}
