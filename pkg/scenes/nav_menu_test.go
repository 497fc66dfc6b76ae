package scenes

import (
	"testing"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/ui"
)

func newNavMenu(t *testing.T) (*NavMenu, *ui.Navbar) {
	t.Helper()
	cfg := loadSite(t)
	navbar := ui.NewNavbar()
	m, err := NewNavMenu(PageOptions{Site: cfg, Locale: ui.LocaleEN}, navbar)
	if err != nil {
		t.Fatalf("NewNavMenu: %v", err)
	}
	return m, navbar
}

func stepMenu(m *NavMenu, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		m.Update(frame)
	}
}

func TestNavMenuLinks(t *testing.T) {
	m, _ := newNavMenu(t)

	links := m.Links()
	if len(links) != 7 {
		t.Fatalf("菜单链接 = %d, want 7", len(links))
	}
	if links[0].Text() != "Home" || links[6].Text() != "Contact" {
		t.Errorf("链接文本 = %q .. %q", links[0].Text(), links[6].Text())
	}
	for _, el := range links {
		if !el.HasClass(ClassMobileNavLink) {
			t.Errorf("链接 %s 缺少类名 %s", el.Name(), ClassMobileNavLink)
		}
		if el.Box().Y < config.NavbarHeight {
			t.Errorf("链接 %s 应位于导航栏下方, y = %v", el.Name(), el.Box().Y)
		}
	}

	m.SetLocale(ui.LocaleDE)
	if links[0].Text() != "Startseite" {
		t.Errorf("切换语言后链接文本 = %q", links[0].Text())
	}
}

func TestNavMenuToggleKeepsOneScope(t *testing.T) {
	m, navbar := newNavMenu(t)

	if m.Runtime().OpenScopes() != 0 || m.Scope() != nil {
		t.Fatal("收起状态不应有作用域")
	}

	for i := 1; i <= 9; i++ {
		m.Toggle()
		want := 0
		if navbar.IsMenuOpen() {
			want = 1
		}
		if n := m.Runtime().OpenScopes(); n != want {
			t.Errorf("第 %d 次切换: 打开的作用域 = %d, want %d", i, n, want)
		}
		// 重复同步不重新绑定
		scope := m.Scope()
		m.Sync()
		if m.Scope() != scope {
			t.Errorf("第 %d 次切换: 同步后作用域被替换", i)
		}
		stepMenu(m, 0.1)
	}

	if !navbar.IsMenuOpen() {
		t.Fatal("奇数次切换后菜单应展开")
	}
	if n := m.Runtime().OpenScopes(); n != 1 {
		t.Errorf("展开时打开的作用域 = %d, want 1", n)
	}

	m.Close()
	if n := m.Runtime().OpenScopes(); n != 0 {
		t.Errorf("关闭后打开的作用域 = %d, want 0", n)
	}
}

func TestNavMenuLinksStaggerIn(t *testing.T) {
	m, _ := newNavMenu(t)
	links := m.Links()

	m.Toggle()
	if got := links[0].Computed(dom.PropOpacity); got != 0 {
		t.Errorf("展开瞬间 opacity = %v, want 0", got)
	}
	if got := links[0].Computed(dom.PropX); got != menuLinkOffsetX {
		t.Errorf("展开瞬间 x = %v, want %v", got, menuLinkOffsetX)
	}

	stepMenu(m, 0.15)
	first := links[0].Computed(dom.PropOpacity)
	last := links[len(links)-1].Computed(dom.PropOpacity)
	if first <= last {
		t.Errorf("链接应依次出现: first = %v, last = %v", first, last)
	}

	// 0.3s + 6*0.05s
	stepMenu(m, 1)
	for _, el := range links {
		if got := el.Computed(dom.PropOpacity); !approx(got, 1) {
			t.Errorf("%s opacity = %v, want 1", el.Name(), got)
		}
		if got := el.Computed(dom.PropX); !approx(got, 0) {
			t.Errorf("%s x = %v, want 0", el.Name(), got)
		}
	}

	m.Toggle()
	for _, el := range links {
		if _, ok := el.Style(dom.PropOpacity); ok {
			t.Errorf("收起后 %s 不应保留内联 opacity", el.Name())
		}
	}

	// 重新展开从头播放
	m.Toggle()
	if got := links[0].Computed(dom.PropOpacity); got != 0 {
		t.Errorf("重新展开 opacity = %v, want 0", got)
	}
	m.Close()
}

func TestNavMenuClick(t *testing.T) {
	m, navbar := newNavMenu(t)
	link := m.Links()[3]
	x, y := link.Box().Center()

	if _, ok := m.Click(x, y); ok {
		t.Error("收起时点击不应命中")
	}

	m.Toggle()
	id, ok := m.Click(x, y)
	if !ok || id != "portfolio" {
		t.Errorf("Click = %q, %v, want portfolio", id, ok)
	}

	// 导航后导航栏自动收起
	navbar.Navigate(id)
	m.Sync()
	if m.Scope() != nil || m.Runtime().OpenScopes() != 0 {
		t.Error("导航后菜单作用域应已卸载")
	}
}
