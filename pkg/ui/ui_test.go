package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccordion(t *testing.T) {
	t.Run("单选可收起", func(t *testing.T) {
		a := NewAccordion(AccordionSingle, "q1", "q2")
		assert.Equal(t, []string{"q1"}, a.OpenItems())

		a.Toggle("q2")
		assert.Equal(t, []string{"q2"}, a.OpenItems())
		assert.False(t, a.IsOpen("q1"))

		a.Toggle("q2")
		assert.Empty(t, a.OpenItems())
	})

	t.Run("多选", func(t *testing.T) {
		a := NewAccordion(AccordionMultiple, "q1")
		a.Toggle("q3")
		a.Toggle("q2")
		assert.Equal(t, []string{"q1", "q3", "q2"}, a.OpenItems())

		a.Toggle("q3")
		assert.Equal(t, []string{"q1", "q2"}, a.OpenItems())
	})

	t.Run("未知类型回退为单选", func(t *testing.T) {
		a := NewAccordion("tabs")
		assert.Equal(t, AccordionSingle, a.Type())
	})

	t.Run("解析类型", func(t *testing.T) {
		typ, err := ParseAccordionType("multiple")
		require.NoError(t, err)
		assert.Equal(t, AccordionMultiple, typ)

		_, err = ParseAccordionType("tabs")
		assert.Error(t, err)
	})
}

func TestAccordionContext(t *testing.T) {
	t.Run("手风琴内的问答项", func(t *testing.T) {
		a := NewAccordion(AccordionSingle)
		ctx := WithAccordion(context.Background(), a)

		item := NewAccordionItem(ctx, "q1")
		item.Toggle()
		assert.True(t, item.IsOpen())
		assert.True(t, a.IsOpen("q1"))
	})

	t.Run("手风琴外创建问答项会 panic", func(t *testing.T) {
		assert.PanicsWithValue(t, ErrNoAccordion, func() {
			NewAccordionItem(context.Background(), "q1")
		})
		_, ok := AccordionFrom(context.Background())
		assert.False(t, ok)
	})
}

func TestTheme(t *testing.T) {
	t.Run("循环切换", func(t *testing.T) {
		assert.Equal(t, ThemeDark, ThemeLight.Next())
		assert.Equal(t, ThemeSystem, ThemeDark.Next())
		assert.Equal(t, ThemeLight, ThemeSystem.Next())
		assert.Equal(t, ThemeLight, Theme("sepia").Next())
	})

	t.Run("解析系统主题", func(t *testing.T) {
		assert.Equal(t, ThemeDark, ThemeSystem.Resolve(true))
		assert.Equal(t, ThemeLight, ThemeSystem.Resolve(false))
		assert.Equal(t, ThemeLight, ThemeLight.Resolve(true))
	})

	t.Run("解析主题", func(t *testing.T) {
		th, err := ParseTheme("dark")
		require.NoError(t, err)
		assert.Equal(t, ThemeDark, th)

		_, err = ParseTheme("sepia")
		assert.Error(t, err)
	})

	t.Run("配色", func(t *testing.T) {
		assert.NotEqual(t, PaletteFor(ThemeLight).Background, PaletteFor(ThemeDark).Background)
	})
}

func TestLocale(t *testing.T) {
	t.Run("解析语言", func(t *testing.T) {
		l, err := ParseLocale("de-AT")
		require.NoError(t, err)
		assert.Equal(t, LocaleDE, l)

		_, err = ParseLocale("fr")
		assert.Error(t, err)
		_, err = ParseLocale("???")
		assert.Error(t, err)
	})

	t.Run("协商语言", func(t *testing.T) {
		assert.Equal(t, LocaleEN, Negotiate("en-US,en;q=0.9,de;q=0.5"))
		assert.Equal(t, LocaleDE, Negotiate("de-CH,de;q=0.9,en;q=0.8"))
		assert.Equal(t, LocaleDE, Negotiate(""))
	})

	t.Run("切换路径语言", func(t *testing.T) {
		assert.Equal(t, "/en/about", SwitchPath("/de/about", LocaleEN))
		assert.Equal(t, "/de/about", SwitchPath("/en/about", LocaleDE))
		assert.Equal(t, "/en", SwitchPath("/de", LocaleEN))
		assert.Equal(t, "/en/contact", SwitchPath("/contact", LocaleEN))
		assert.Equal(t, "/de", LocalizePath("/", LocaleDE))
	})

	t.Run("拆分路径", func(t *testing.T) {
		l, rest := SplitPath("/en/portfolio")
		assert.Equal(t, LocaleEN, l)
		assert.Equal(t, "/portfolio", rest)

		l, rest = SplitPath("/faq")
		assert.Equal(t, DefaultLocale, l)
		assert.Equal(t, "/faq", rest)
	})

	t.Run("下一个语言", func(t *testing.T) {
		assert.Equal(t, LocaleEN, LocaleDE.Next())
		assert.Equal(t, LocaleDE, LocaleEN.Next())
	})

	t.Run("显示名称", func(t *testing.T) {
		assert.Equal(t, "Deutsch", LocaleDE.DisplayName())
		assert.Equal(t, "English", LocaleEN.DisplayName())
	})

	t.Run("解析优先级", func(t *testing.T) {
		assert.Equal(t, LocaleEN, ResolveLocale("en", "de", "de"))
		assert.Equal(t, LocaleDE, ResolveLocale("", "de", "en"))
		assert.Equal(t, LocaleEN, ResolveLocale("xx", "", "en-GB"))
		assert.Equal(t, DefaultLocale, ResolveLocale("", "", ""))
	})
}

func TestNavbar(t *testing.T) {
	n := NewNavbar()

	t.Run("滚动阈值", func(t *testing.T) {
		assert.False(t, n.Update(20))
		assert.False(t, n.IsScrolled())
		assert.True(t, n.Update(21))
		assert.True(t, n.IsScrolled())
		assert.False(t, n.Update(400))
		assert.True(t, n.Update(0))
	})

	t.Run("移动端菜单", func(t *testing.T) {
		n.ToggleMenu()
		assert.True(t, n.IsMenuOpen())
		assert.True(t, n.ScrollLocked())

		n.Navigate("about")
		assert.False(t, n.IsMenuOpen())
		assert.Equal(t, "about", n.Active())
	})
}
