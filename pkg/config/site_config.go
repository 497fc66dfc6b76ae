package config

import (
	"fmt"

	"github.com/gonewx/sitemotion/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultSiteConfigPath 嵌入的站点配置路径
const DefaultSiteConfigPath = "data/site.yaml"

// 动画目标关键字
const (
	TargetSection  = "section"  // 区块本身
	TargetTitle    = "title"    // 区块标题
	TargetItems    = "items"    // 网格项
	TargetElements = "elements" // 区块内的全部命名元素
)

// 区块类型
const (
	KindDefault   = ""
	KindPortfolio = "portfolio"
	KindFAQ       = "faq"
	KindContact   = "contact"
)

// SiteConfig 站点配置
type SiteConfig struct {
	Window    WindowConfig            `yaml:"window"`
	Locales   LocaleConfig            `yaml:"locales"`
	Presets   map[string]PresetConfig `yaml:"presets"`
	Pages     []PageConfig            `yaml:"pages"`
	Portfolio PortfolioConfig         `yaml:"portfolio"`
	FAQ       FAQConfig               `yaml:"faq"`
	Contact   ContactConfig           `yaml:"contact"`
}

// WindowConfig 窗口（视口）尺寸
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LocaleConfig 语言设置
type LocaleConfig struct {
	Default   string   `yaml:"default"`
	Supported []string `yaml:"supported"`
}

// PresetConfig 自定义动画预设
type PresetConfig struct {
	From     map[string]float64 `yaml:"from"`
	To       map[string]float64 `yaml:"to"`
	Stagger  float64            `yaml:"stagger"`
	Duration float64            `yaml:"duration"`
}

// PageConfig 页面
type PageConfig struct {
	ID       string          `yaml:"id"`
	Path     string          `yaml:"path"`
	Title    Localized       `yaml:"title"`
	Footer   bool            `yaml:"footer"` // 只在页脚链接（法律页面）
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig 页面区块
type SectionConfig struct {
	ID     string    `yaml:"id"`
	Kind   string    `yaml:"kind"`
	Height float64   `yaml:"height"`
	Title  Localized `yaml:"title"`

	Elements []ElementConfig     `yaml:"elements"`
	Grid     *GridConfig         `yaml:"grid"`
	Labels   map[string][]string `yaml:"labels"` // 网格项文本，按语言

	Animations []AnimationConfig `yaml:"animations"`
	Timeline   []TimelineStep    `yaml:"timeline"`
	Magnetic   []string          `yaml:"magnetic"`
	Parallax   *ParallaxConfig   `yaml:"parallax"`
	Float      []string          `yaml:"float"`
}

// ElementConfig 区块内的命名元素
type ElementConfig struct {
	Name string    `yaml:"name"`
	Box  Box       `yaml:"box"`
	Text Localized `yaml:"text"`
}

// GridConfig 网格布局
type GridConfig struct {
	Items      int     `yaml:"items"`
	Columns    int     `yaml:"columns"`
	ItemHeight float64 `yaml:"itemHeight"`
	Gap        float64 `yaml:"gap"`
}

// AnimationConfig 一个预设绑定
type AnimationConfig struct {
	Target    Targets            `yaml:"target"`
	Preset    string             `yaml:"preset"`
	Trigger   string             `yaml:"trigger"`
	Immediate bool               `yaml:"immediate"`
	Delay     float64            `yaml:"delay"`
	Duration  float64            `yaml:"duration"`
	Stagger   float64            `yaml:"stagger"`
	Start     string             `yaml:"start"`
	End       string             `yaml:"end"`
	Scrub     ScrubValue         `yaml:"scrub"`
	NoReplay  bool               `yaml:"noReplay"`
	Ease      string             `yaml:"ease"`
	Overrides map[string]float64 `yaml:"overrides"`
}

// TimelineStep 入场时间轴的一步
type TimelineStep struct {
	Element  string             `yaml:"element"`
	From     map[string]float64 `yaml:"from"`
	To       map[string]float64 `yaml:"to"`
	Duration float64            `yaml:"duration"`
	Ease     string             `yaml:"ease"`
	Position string             `yaml:"position"` // 空、"+=N"、"-=N" 或绝对秒数
}

// ParallaxConfig 视差元素
type ParallaxConfig struct {
	Element string  `yaml:"element"`
	Speed   float64 `yaml:"speed"`
}

// PortfolioConfig 作品集
type PortfolioConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
	Projects   []ProjectConfig  `yaml:"projects"`
}

// CategoryConfig 作品分类
type CategoryConfig struct {
	ID    string    `yaml:"id"`
	Label Localized `yaml:"label"`
}

// ProjectConfig 作品
type ProjectConfig struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
}

// FAQConfig 常见问题
type FAQConfig struct {
	Type    string     `yaml:"type"` // single / multiple
	Entries []FAQEntry `yaml:"entries"`
}

// FAQEntry 一条问答
type FAQEntry struct {
	Question Localized `yaml:"question"`
	Answer   Localized `yaml:"answer"`
}

// ContactConfig 联系表单
type ContactConfig struct {
	SubmitDelay float64 `yaml:"submitDelay"` // 模拟提交延迟（秒）
}

// LoadSiteConfig 从嵌入资源加载站点配置
func LoadSiteConfig(filepath string) (*SiteConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", filepath, err)
	}
	cfg, err := ParseSiteConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseSiteConfig 解析并校验站点配置
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := validateSiteConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid site config: %w", err)
	}
	return &cfg, nil
}

func (c *SiteConfig) applyDefaults() {
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultWindowTitle
	}
	if c.Locales.Default == "" {
		c.Locales.Default = "de"
	}
	if len(c.Locales.Supported) == 0 {
		c.Locales.Supported = []string{c.Locales.Default}
	}
	if c.FAQ.Type == "" {
		c.FAQ.Type = "single"
	}
	if c.Contact.SubmitDelay == 0 {
		c.Contact.SubmitDelay = DefaultSubmitDelay
	}
}

// Page 按 ID 查找页面
func (c *SiteConfig) Page(id string) (*PageConfig, bool) {
	for i := range c.Pages {
		if c.Pages[i].ID == id {
			return &c.Pages[i], true
		}
	}
	return nil, false
}

// PageIDs 返回页面 ID（按配置顺序）
func (c *SiteConfig) PageIDs() []string {
	ids := make([]string, 0, len(c.Pages))
	for _, p := range c.Pages {
		ids = append(ids, p.ID)
	}
	return ids
}

// NavPages 返回出现在导航栏的页面
func (c *SiteConfig) NavPages() []PageConfig {
	return c.pagesWhere(false)
}

// FooterPages 返回只在页脚链接的页面
func (c *SiteConfig) FooterPages() []PageConfig {
	return c.pagesWhere(true)
}

func (c *SiteConfig) pagesWhere(footer bool) []PageConfig {
	var pages []PageConfig
	for _, p := range c.Pages {
		if p.Footer == footer {
			pages = append(pages, p)
		}
	}
	return pages
}

// Element 按名称查找区块内的元素
func (s *SectionConfig) Element(name string) (*ElementConfig, bool) {
	for i := range s.Elements {
		if s.Elements[i].Name == name {
			return &s.Elements[i], true
		}
	}
	return nil, false
}

// TotalHeight 页面内容总高度
func (p *PageConfig) TotalHeight() float64 {
	h := 0.0
	for _, s := range p.Sections {
		h += s.Height
	}
	return h
}
