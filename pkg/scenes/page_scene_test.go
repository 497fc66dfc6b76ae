package scenes

import (
	"context"
	"io"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/contact"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/embedded"
	"github.com/gonewx/sitemotion/pkg/site"
	"github.com/gonewx/sitemotion/pkg/ui"
)

const frame = 1.0 / 60.0

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func loadSite(t *testing.T) *config.SiteConfig {
	t.Helper()
	embedded.Init(os.DirFS("../.."))
	t.Cleanup(func() { embedded.Init(nil) })
	cfg, err := config.LoadSiteConfig(config.DefaultSiteConfigPath)
	if err != nil {
		t.Fatalf("LoadSiteConfig: %v", err)
	}
	return cfg
}

func newScene(t *testing.T, cfg *config.SiteConfig, pageID string) *PageScene {
	t.Helper()
	s, err := NewPageScene(pageID, PageOptions{Site: cfg, Locale: ui.LocaleDE})
	if err != nil {
		t.Fatalf("NewPageScene(%s): %v", pageID, err)
	}
	return s
}

func step(s *PageScene, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		s.Update(frame)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func snapshotStyles(doc *dom.Document) map[*dom.Element]map[string]float64 {
	out := make(map[*dom.Element]map[string]float64)
	for _, el := range doc.Elements() {
		out[el] = el.InlineStyle()
	}
	return out
}

func TestUnmountRestoresEveryPage(t *testing.T) {
	cfg := loadSite(t)

	for _, id := range cfg.PageIDs() {
		t.Run(id, func(t *testing.T) {
			s := newScene(t, cfg, id)
			doc := s.Document()
			before := snapshotStyles(doc)

			s.Mount()
			step(s, 1)
			doc.ScrollTo(doc.MaxScroll())
			step(s, 1)
			doc.DispatchPointerMove(640, 360)
			step(s, 0.5)
			s.Unmount()

			if n := s.Runtime().Scroll().Len(); n != 0 {
				t.Errorf("卸载后仍有 %d 个滚动观察者", n)
			}
			if n := s.Runtime().OpenScopes(); n != 0 {
				t.Errorf("卸载后仍有 %d 个打开的作用域", n)
			}
			after := snapshotStyles(doc)
			for el, want := range before {
				got := after[el]
				if len(got) != len(want) {
					t.Errorf("元素 %s 内联样式 = %v, want %v", el.Name(), got, want)
					continue
				}
				for k, v := range want {
					if !approx(got[k], v) {
						t.Errorf("元素 %s.%s = %v, want %v", el.Name(), k, got[k], v)
					}
				}
			}
		})
	}
}

func TestNoObserverLeakAcrossRemounts(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "home")

	s.Mount()
	first := s.Runtime().Scroll().Len()
	if first == 0 {
		t.Fatal("首页应至少注册一个滚动观察者")
	}
	s.Unmount()

	for i := 0; i < 3; i++ {
		s.Mount()
		if n := s.Runtime().Scroll().Len(); n != first {
			t.Errorf("第 %d 次重新挂载: 观察者 %d, want %d", i+1, n, first)
		}
		s.Unmount()
	}
	if n := s.Runtime().OpenScopes(); n != 0 {
		t.Errorf("卸载后打开的作用域 = %d, want 0", n)
	}
}

func TestMountIsIdempotent(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "services")

	s.Mount()
	n := s.Runtime().Scroll().Len()
	s.Mount()
	if got := s.Runtime().Scroll().Len(); got != n {
		t.Errorf("重复挂载: 观察者 %d, want %d", got, n)
	}
	s.Unmount()
	s.Unmount()
	if s.Runtime().OpenScopes() != 0 {
		t.Error("重复卸载后不应保留作用域")
	}
}

func TestHeroTimeline(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "home")
	s.Mount()
	step(s, 3)

	for _, name := range []string{"badge", "heading", "description", "buttons", "image"} {
		el, ok := s.Element("hero", name)
		if !ok {
			t.Fatalf("缺少元素 %s", name)
		}
		if got := el.Computed(dom.PropOpacity); !approx(got, 1) {
			t.Errorf("%s opacity = %v, want 1", name, got)
		}
	}
	image, _ := s.Element("hero", "image")
	if got := image.Computed(dom.PropScale); !approx(got, 1) {
		t.Errorf("image scale = %v, want 1", got)
	}

	s.Unmount()
	badge, _ := s.Element("hero", "badge")
	if _, ok := badge.Style(dom.PropOpacity); ok {
		t.Error("卸载后 badge 不应保留内联 opacity")
	}
}

func TestSectionItemsRevealOnScroll(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "home")
	s.Mount()
	defer s.Unmount()

	items := s.Items("services")
	if len(items) != 6 {
		t.Fatalf("services 网格项 = %d, want 6", len(items))
	}
	step(s, 0.5)
	if got := items[0].Computed(dom.PropOpacity); got != 0 {
		t.Errorf("滚动前 opacity = %v, want 0", got)
	}

	section, _ := s.Section("services")
	s.Document().ScrollTo(section.Box().Y)
	step(s, 2)
	for i, item := range items {
		if got := item.Computed(dom.PropOpacity); !approx(got, 1) {
			t.Errorf("item %d opacity = %v, want 1", i, got)
		}
	}
}

func TestPortfolioFilter(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "portfolio")
	s.Mount()

	if s.Filter() != CategoryAll {
		t.Errorf("默认分类 = %q, want %q", s.Filter(), CategoryAll)
	}
	if n := len(s.Projects()); n != 6 {
		t.Fatalf("全部作品 = %d, want 6", n)
	}
	observers := s.Runtime().Scroll().Len()
	scope := s.ProjectScope()

	t.Run("切换分类", func(t *testing.T) {
		if !s.SetFilter("ecommerce") {
			t.Fatal("SetFilter(ecommerce) = false")
		}
		if n := len(s.Projects()); n != 2 {
			t.Errorf("ecommerce 作品 = %d, want 2", n)
		}
		if s.ProjectScope() == scope {
			t.Error("分类变化后应打开新的作用域")
		}
		if !scope.IsClosed() {
			t.Error("旧作用域应被关闭")
		}
		if n := s.Runtime().Scroll().Len(); n != observers {
			t.Errorf("观察者数量 = %d, want %d", n, observers)
		}
		step(s, 1)
		for _, card := range s.Projects() {
			if got := card.Computed(dom.PropOpacity); !approx(got, 1) {
				t.Errorf("卡片 %q opacity = %v, want 1", card.Text(), got)
			}
		}
	})

	t.Run("相同分类不重新绑定", func(t *testing.T) {
		current := s.ProjectScope()
		if s.SetFilter("ecommerce") {
			t.Error("相同分类应返回 false")
		}
		if s.ProjectScope() != current {
			t.Error("相同分类不应替换作用域")
		}
	})

	t.Run("未知分类", func(t *testing.T) {
		if s.SetFilter("games") {
			t.Error("未知分类应返回 false")
		}
	})

	t.Run("点击筛选按钮", func(t *testing.T) {
		// 第三个按钮为 react
		x := config.SectionPaddingX + 2*(filterWidth+filterGap) + 10
		section, _ := s.Section("projects")
		y := section.Box().Y + filterTop + 10
		if !s.Click(x, y) {
			t.Fatal("点击筛选按钮未命中")
		}
		if s.Filter() != "react" || len(s.Projects()) != 1 {
			t.Errorf("Filter = %q, projects = %d", s.Filter(), len(s.Projects()))
		}
	})

	s.Unmount()
	if n := s.Runtime().OpenScopes(); n != 0 {
		t.Errorf("卸载后打开的作用域 = %d, want 0", n)
	}
}

func TestFAQAccordion(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "faq")

	if s.Accordion() == nil || s.Accordion().Type() != ui.AccordionSingle {
		t.Fatal("FAQ 页面应创建单选手风琴")
	}

	s.ToggleFAQ(0)
	if !s.faq.items[0].IsOpen() {
		t.Fatal("第一个问题应展开")
	}
	if !strings.Contains(s.faq.els[0].Text(), "4 bis 8 Wochen") {
		t.Errorf("展开后应显示答案: %q", s.faq.els[0].Text())
	}

	s.ToggleFAQ(1)
	if s.faq.items[0].IsOpen() || !s.faq.items[1].IsOpen() {
		t.Error("单选模式下只能展开一个问题")
	}
	if strings.Contains(s.faq.els[0].Text(), "\n") {
		t.Error("收起后不应显示答案")
	}

	s.ToggleFAQ(1)
	if len(s.Accordion().OpenItems()) != 0 {
		t.Error("再次点击应收起")
	}

	s.ToggleFAQ(99)
}

func TestStackHeight(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{"没有项", 0, 0},
		{"负数", -2, 0},
		{"一项", 1, faqItemHeight},
		{"五项", 5, 5*faqItemHeight + 4*faqItemGap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stackHeight(tt.n, faqItemHeight, faqItemGap); got != tt.want {
				t.Errorf("stackHeight(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestFAQWithoutEntries(t *testing.T) {
	cfg := loadSite(t)
	cfg.FAQ.Entries = nil
	s := newScene(t, cfg, "faq")

	if h := s.faq.container.Box().Height; h != 0 {
		t.Errorf("空容器高度 = %v, want 0", h)
	}
	s.Mount()
	step(s, 0.5)
	s.ToggleFAQ(0)
	s.Unmount()
	if n := s.Runtime().OpenScopes(); n != 0 {
		t.Errorf("卸载后打开的作用域 = %d, want 0", n)
	}
}

func TestLegalPagesStaggerIn(t *testing.T) {
	cfg := loadSite(t)

	for _, id := range []string{"impressum", "datenschutz", "agb"} {
		t.Run(id, func(t *testing.T) {
			s := newScene(t, cfg, id)
			s.Mount()

			heading, ok := s.Element("content", "heading")
			if !ok {
				t.Fatal("缺少 heading")
			}
			step(s, frame)
			if got := heading.Computed(dom.PropOpacity); got >= 1 {
				t.Errorf("挂载后 heading opacity = %v, 应仍在入场中", got)
			}
			if n := s.Runtime().Scroll().Len(); n != 0 {
				t.Errorf("立即播放的动画不应注册滚动观察者, got %d", n)
			}

			// 6 个元素: 0.5s + 5*0.05s
			step(s, 1)
			for _, el := range s.Document().Elements() {
				if _, ok := el.Style(dom.PropOpacity); !ok {
					continue
				}
				if got := el.Computed(dom.PropOpacity); !approx(got, 1) {
					t.Errorf("%s opacity = %v, want 1", el.Name(), got)
				}
				if got := el.Computed(dom.PropY); !approx(got, 0) {
					t.Errorf("%s y = %v, want 0", el.Name(), got)
				}
			}

			s.Unmount()
			if _, ok := heading.Style(dom.PropOpacity); ok {
				t.Error("卸载后 heading 不应保留内联 opacity")
			}
		})
	}
}

func TestContactFormSubmit(t *testing.T) {
	cfg := loadSite(t)
	cfg.Contact.SubmitDelay = 0

	var sent []contact.Form
	sender := contact.SenderFunc(func(ctx context.Context, f contact.Form) error {
		sent = append(sent, f)
		return nil
	})
	s, err := NewPageScene("contact", PageOptions{Site: cfg, Locale: ui.LocaleEN, Sender: sender})
	if err != nil {
		t.Fatalf("NewPageScene: %v", err)
	}

	if s.FocusedField() != contact.FieldName {
		t.Errorf("初始焦点 = %q, want name", s.FocusedField())
	}
	s.TypeText([]rune("Anna"))
	s.FocusNextField()
	s.TypeText([]rune("anna@example.de"))
	s.FocusNextField()
	s.TypeText([]rune("X"))
	s.Backspace()
	for s.FocusedField() != contact.FieldMessage {
		s.FocusNextField()
	}
	s.TypeText([]rune("Hallo"))

	if err := s.Form().Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(sent) != 1 {
		t.Fatalf("发送次数 = %d, want 1", len(sent))
	}
	if sent[0].Name != "Anna" || sent[0].Email != "anna@example.de" || sent[0].Company != "" {
		t.Errorf("发送内容 = %+v", sent[0])
	}
	if s.Form().Status() != contact.StatusSuccess {
		t.Errorf("Status = %v, want success", s.Form().Status())
	}

	s.Update(frame)
	if got := s.form.submit.Text(); got != statusLabels[ui.LocaleEN][contact.StatusSuccess] {
		t.Errorf("提交按钮文本 = %q", got)
	}
}

func TestContactFormShowsErrors(t *testing.T) {
	cfg := loadSite(t)
	s := newScene(t, cfg, "contact")

	err := s.Form().Submit(context.Background())
	if err == nil {
		t.Fatal("空表单应校验失败")
	}
	s.Update(frame)
	if !strings.Contains(s.form.fields[0].Text(), "Pflichtfeld") {
		t.Errorf("姓名字段应显示错误: %q", s.form.fields[0].Text())
	}
}

func TestPageFactory(t *testing.T) {
	cfg := loadSite(t)
	r := site.NewRouter(NewPageFactory(PageOptions{Site: cfg}))

	if err := r.Navigate("home"); err != nil {
		t.Fatalf("Navigate(home): %v", err)
	}
	home := r.Current().(*PageScene)
	if !home.IsMounted() {
		t.Error("导航后页面应已挂载")
	}

	if err := r.Navigate("nowhere"); err == nil {
		t.Error("未知页面应返回错误")
	}
	if err := r.Navigate("faq"); err != nil {
		t.Fatalf("Navigate(faq): %v", err)
	}
	if home.IsMounted() || home.Runtime().OpenScopes() != 0 {
		t.Error("离开页面后应卸载并关闭作用域")
	}
}
