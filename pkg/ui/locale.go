package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale 站点语言
type Locale string

const (
	LocaleDE Locale = "de"
	LocaleEN Locale = "en"

	// DefaultLocale 默认语言
	DefaultLocale = LocaleDE
)

// Locales 支持的语言，顺序即切换顺序
var Locales = []Locale{LocaleDE, LocaleEN}

var matcher = language.NewMatcher([]language.Tag{language.German, language.English})

// ParseLocale 解析语言代码，接受 "de"、"de-AT" 等写法
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", s, err)
	}
	base, _ := tag.Base()
	for _, l := range Locales {
		if string(l) == base.String() {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported locale %q", s)
}

// Negotiate 按 Accept-Language 风格的偏好列表选择语言，无法匹配时返回默认语言
func Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return Locales[index]
}

// Next 返回切换顺序中的下一个语言
func (l Locale) Next() Locale {
	for i, loc := range Locales {
		if loc == l {
			return Locales[(i+1)%len(Locales)]
		}
	}
	return DefaultLocale
}

// Tag 返回语言标签
func (l Locale) Tag() language.Tag {
	return language.Make(string(l))
}

// DisplayName 返回语言的自称，如 "Deutsch"、"English"
func (l Locale) DisplayName() string {
	return display.Self.Name(l.Tag())
}

// SplitPath 拆分带语言前缀的路径
// "/en/about" -> (en, "/about")；没有前缀时返回默认语言
func SplitPath(path string) (Locale, string) {
	trimmed := strings.TrimPrefix(path, "/")
	first, rest, _ := strings.Cut(trimmed, "/")
	for _, l := range Locales {
		if first == string(l) {
			return l, "/" + rest
		}
	}
	if path == "" {
		path = "/"
	}
	return DefaultLocale, path
}

// LocalizePath 为路径加上语言前缀
func LocalizePath(path string, l Locale) string {
	if path == "" || path == "/" {
		return "/" + string(l)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return "/" + string(l) + path
}

// SwitchPath 把带前缀的路径切换到另一种语言
// "/de/about" -> "/en/about"
func SwitchPath(path string, to Locale) string {
	_, rest := SplitPath(path)
	return LocalizePath(rest, to)
}

// ResolveLocale 按优先级选择语言：
//  1. explicit（命令行或环境变量）
//  2. stored（已保存的偏好）
//  3. acceptLanguage 协商（如系统 LANG）
//  4. 默认语言
func ResolveLocale(explicit, stored, acceptLanguage string) Locale {
	for _, s := range []string{explicit, stored} {
		if s == "" {
			continue
		}
		if l, err := ParseLocale(s); err == nil {
			return l
		}
	}
	if acceptLanguage != "" {
		return Negotiate(acceptLanguage)
	}
	return DefaultLocale
}
