package ui

import (
	"fmt"
	"image/color"
)

// Theme 主题
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Themes 切换顺序
var Themes = []Theme{ThemeLight, ThemeDark, ThemeSystem}

// ParseTheme 解析主题名
func ParseTheme(s string) (Theme, error) {
	for _, t := range Themes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

// Next 返回切换顺序中的下一个主题
func (t Theme) Next() Theme {
	for i, th := range Themes {
		if th == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeLight
}

// Resolve 把 system 解析为 light 或 dark
func (t Theme) Resolve(prefersDark bool) Theme {
	if t != ThemeSystem {
		return t
	}
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// Palette 主题配色
type Palette struct {
	Background color.RGBA
	Surface    color.RGBA
	Border     color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Primary    color.RGBA
	Accent     color.RGBA
}

var (
	lightPalette = Palette{
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Surface:    color.RGBA{R: 0xf4, G: 0xf5, B: 0xf7, A: 0xff},
		Border:     color.RGBA{R: 0xe2, G: 0xe4, B: 0xe9, A: 0xff},
		Text:       color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff},
		Muted:      color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff},
		Primary:    color.RGBA{R: 0x3b, G: 0x5b, B: 0xdb, A: 0xff},
		Accent:     color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff},
	}
	darkPalette = Palette{
		Background: color.RGBA{R: 0x0b, G: 0x0f, B: 0x19, A: 0xff},
		Surface:    color.RGBA{R: 0x16, G: 0x1b, B: 0x26, A: 0xff},
		Border:     color.RGBA{R: 0x27, G: 0x2e, B: 0x3b, A: 0xff},
		Text:       color.RGBA{R: 0xf3, G: 0xf4, B: 0xf6, A: 0xff},
		Muted:      color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff},
		Primary:    color.RGBA{R: 0x63, G: 0x7e, B: 0xf2, A: 0xff},
		Accent:     color.RGBA{R: 0xa7, G: 0x8b, B: 0xfa, A: 0xff},
	}
)

// PaletteFor 返回主题配色，system 需先 Resolve
func PaletteFor(t Theme) Palette {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}
