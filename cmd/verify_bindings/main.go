// verify_bindings 无窗口地挂载每个页面（含页脚的法律页面）、滚动到底并卸载，
// 检查观察者和作用域是否泄漏、内联样式是否恢复；最后反复切换移动端菜单。
//
// 用法：
//
//	go run ./cmd/verify_bindings --verbose
//	go run ./cmd/verify_bindings --page portfolio --remounts 5
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gonewx/sitemotion/pkg/config"
	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/embedded"
	"github.com/gonewx/sitemotion/pkg/scenes"
	"github.com/gonewx/sitemotion/pkg/ui"
)

const frame = 1.0 / 60.0

var (
	rootFlag     = flag.String("root", ".", "包含 data/ 的目录")
	pageFlag     = flag.String("page", "", "只检查指定页面")
	localeFlag   = flag.String("locale", "de", "页面语言")
	remountsFlag = flag.Int("remounts", 3, "每个页面的挂载次数")
	verboseFlag  = flag.Bool("verbose", false, "显示详细日志")
)

// pageReport 一个页面的检查结果
type pageReport struct {
	id        string
	elements  int
	observers []int
	leaked    int
	scopes    int
	dirty     int // 卸载后内联样式未恢复的元素
}

func (r pageReport) ok() bool {
	if r.leaked != 0 || r.scopes != 0 || r.dirty != 0 {
		return false
	}
	for _, n := range r.observers {
		if n != r.observers[0] {
			return false
		}
	}
	return true
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	embedded.Init(os.DirFS(*rootFlag))
	cfg, err := config.LoadSiteConfig(config.DefaultSiteConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载站点配置失败: %v\n", err)
		os.Exit(1)
	}
	locale, err := ui.ParseLocale(*localeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ids := cfg.PageIDs()
	if *pageFlag != "" {
		ids = []string{*pageFlag}
	}

	failed := 0
	for _, id := range ids {
		report, err := verifyPage(cfg, id, locale, *remountsFlag)
		if err != nil {
			fmt.Printf("✗ %-10s %v\n", id, err)
			failed++
			continue
		}
		status := "✓"
		if !report.ok() {
			status = "✗"
			failed++
		}
		fmt.Printf("%s %-12s 元素 %3d  每次挂载观察者 %v  卸载后观察者 %d  未关闭作用域 %d  样式未恢复 %d\n",
			status, id, report.elements, report.observers, report.leaked, report.scopes, report.dirty)
	}

	if *pageFlag == "" {
		if err := verifyMenu(cfg, locale, 2*(*remountsFlag)+1); err != nil {
			fmt.Printf("✗ %-12s %v\n", "menu", err)
			failed++
		} else {
			fmt.Printf("✓ %-12s 切换 %d 次后作用域已全部关闭\n", "menu", 2*(*remountsFlag)+1)
		}
	}

	if failed > 0 {
		fmt.Printf("\n%d 个页面未通过\n", failed)
		os.Exit(1)
	}
	fmt.Printf("\n全部 %d 个页面通过\n", len(ids))
}

func verifyPage(cfg *config.SiteConfig, id string, locale ui.Locale, remounts int) (pageReport, error) {
	s, err := scenes.NewPageScene(id, scenes.PageOptions{Site: cfg, Locale: locale})
	if err != nil {
		return pageReport{}, err
	}
	doc := s.Document()
	report := pageReport{id: id, elements: len(doc.Elements())}
	before := make(map[*dom.Element]map[string]float64)
	for _, el := range doc.Elements() {
		before[el] = el.InlineStyle()
	}

	for i := 0; i < remounts; i++ {
		doc.ScrollTo(0)
		s.Mount()
		report.observers = append(report.observers, s.Runtime().Scroll().Len())

		// 分段滚到底再滚回顶部，覆盖进入、离开和回滚
		for y := 0.0; y <= doc.MaxScroll(); y += config.ScrollStep {
			doc.ScrollTo(y)
			s.Update(frame)
		}
		for y := doc.MaxScroll(); y >= 0; y -= config.ScrollStep {
			doc.ScrollTo(y)
			s.Update(frame)
		}
		if s.Filter() != "" {
			s.NextFilter()
			s.Update(frame)
		}
		s.Unmount()
	}

	report.leaked = s.Runtime().Scroll().Len()
	report.scopes = s.Runtime().OpenScopes()
	for el, want := range before {
		if !el.IsConnected() {
			continue
		}
		if !sameStyle(el.InlineStyle(), want) {
			report.dirty++
		}
	}
	return report, nil
}

func sameStyle(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// verifyMenu 反复切换移动端菜单，展开时只允许一个作用域，关闭后不留作用域
func verifyMenu(cfg *config.SiteConfig, locale ui.Locale, toggles int) error {
	navbar := ui.NewNavbar()
	m, err := scenes.NewNavMenu(scenes.PageOptions{Site: cfg, Locale: locale}, navbar)
	if err != nil {
		return err
	}
	for i := 0; i < toggles; i++ {
		m.Toggle()
		m.Update(frame)
		want := 0
		if navbar.IsMenuOpen() {
			want = 1
		}
		if n := m.Runtime().OpenScopes(); n != want {
			return fmt.Errorf("第 %d 次切换: 打开的作用域 %d, want %d", i+1, n, want)
		}
	}
	m.Close()
	if n := m.Runtime().OpenScopes(); n != 0 {
		return fmt.Errorf("关闭后仍有 %d 个作用域", n)
	}
	return nil
}
