package scenes

import (
	"context"
	"fmt"
	"log"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/motion"
	"github.com/gonewx/sitemotion/pkg/ui"
)

// 常见问题布局
const (
	faqTop        = 40.0
	faqItemHeight = 110.0
	faqItemGap    = 16.0
	faqPreset     = "faqItem"
	faqMaxWidth   = 880.0
)

// faqView 常见问题手风琴
type faqView struct {
	scene     *PageScene
	accordion *ui.Accordion
	container *dom.Element
	entries   []config.FAQEntry
	items     []*ui.AccordionItem
	els       []*dom.Element
}

func newFAQView(s *PageScene, sv *sectionView) *faqView {
	typ, err := ui.ParseAccordionType(s.site.FAQ.Type)
	if err != nil {
		log.Printf("[FAQ] %v，使用 %s", err, ui.AccordionSingle)
		typ = ui.AccordionSingle
	}
	f := &faqView{
		scene:     s,
		accordion: ui.NewAccordion(typ),
		entries:   s.site.FAQ.Entries,
	}
	// 问答项通过上下文取得手风琴
	ctx := ui.WithAccordion(context.Background(), f.accordion)

	top := sv.el.Box().Y + faqTop
	width := s.doc.ViewportWidth() - 2*config.SectionPaddingX
	if width > faqMaxWidth {
		width = faqMaxWidth
	}
	x := (s.doc.ViewportWidth() - width) / 2
	f.container = s.doc.CreateChild(sv.el, sv.cfg.ID+":faq", dom.Rect{
		X: x, Y: top, Width: width, Height: stackHeight(len(f.entries), faqItemHeight, faqItemGap),
	}, "faq-container")

	for i := range f.entries {
		el := s.doc.CreateChild(f.container, "faq-item", dom.Rect{
			X: x, Y: top + float64(i)*(faqItemHeight+faqItemGap), Width: width, Height: faqItemHeight,
		}, "faq-item")
		f.els = append(f.els, el)
		f.items = append(f.items, ui.NewAccordionItem(ctx, fmt.Sprintf("item-%d", i)))
	}
	f.refresh()
	return f
}

// stackHeight n 个等高项纵向排列的总高度，没有项时为 0
func stackHeight(n int, itemHeight, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*itemHeight + float64(n-1)*gap
}

// bind 问答项在容器进入视口时依次出现
func (f *faqView) bind(sc *motion.Scope) {
	motion.BindChildren(sc, f.container, faqPreset, motion.BindConfig{})
}

// refresh 按展开状态更新文本
func (f *faqView) refresh() {
	for i, entry := range f.entries {
		text := "+ " + f.scene.text(entry.Question)
		if f.items[i].IsOpen() {
			text = "- " + f.scene.text(entry.Question) + "\n\n" + f.scene.text(entry.Answer)
		}
		f.els[i].SetText(text)
	}
}

func (f *faqView) click(x, y float64) bool {
	for i, el := range f.els {
		if el.BoundingClientRect().Contains(x, y) {
			f.items[i].Toggle()
			f.refresh()
			return true
		}
	}
	return false
}
