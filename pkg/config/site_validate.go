package config

import (
	"fmt"
	"strings"

	"github.com/gonewx/sitemotion/pkg/preset"
	"github.com/gonewx/sitemotion/pkg/scroll"
	"github.com/gonewx/sitemotion/pkg/tween"
	"github.com/gonewx/sitemotion/pkg/utils"
)

// PresetTable 用配置中的自定义预设构建预设表
func (c *SiteConfig) PresetTable() (*preset.Table, error) {
	custom := make(map[string]preset.Preset, len(c.Presets))
	for name, p := range c.Presets {
		custom[name] = preset.Preset{
			From:     tween.Props(p.From),
			To:       tween.Props(p.To),
			Stagger:  p.Stagger,
			Duration: p.Duration,
		}
	}
	return preset.NewTable(custom)
}

// validateSiteConfig 验证站点配置的完整性和合法性
func validateSiteConfig(c *SiteConfig) error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if !contains(c.Locales.Supported, c.Locales.Default) {
		return fmt.Errorf("default locale %q is not in supported locales %v", c.Locales.Default, c.Locales.Supported)
	}

	table, err := c.PresetTable()
	if err != nil {
		return err
	}

	if len(c.Pages) == 0 {
		return fmt.Errorf("at least one page is required")
	}
	if len(c.NavPages()) == 0 {
		return fmt.Errorf("at least one navbar page is required")
	}
	ids := make(map[string]bool)
	paths := make(map[string]bool)
	hasFAQ := false
	for i := range c.Pages {
		p := &c.Pages[i]
		if p.ID == "" {
			return fmt.Errorf("page %d: id is required", i)
		}
		if ids[p.ID] {
			return fmt.Errorf("page %s: duplicate id", p.ID)
		}
		ids[p.ID] = true
		if !strings.HasPrefix(p.Path, "/") {
			return fmt.Errorf("page %s: path must start with '/', got %q", p.ID, p.Path)
		}
		if paths[p.Path] {
			return fmt.Errorf("page %s: duplicate path %q", p.ID, p.Path)
		}
		paths[p.Path] = true
		if len(p.Sections) == 0 {
			return fmt.Errorf("page %s: at least one section is required", p.ID)
		}
		sectionIDs := make(map[string]bool)
		for j := range p.Sections {
			s := &p.Sections[j]
			if s.ID == "" || sectionIDs[s.ID] {
				return fmt.Errorf("page %s: section %d: missing or duplicate id %q", p.ID, j, s.ID)
			}
			sectionIDs[s.ID] = true
			if s.Kind == KindFAQ {
				hasFAQ = true
			}
			if err := validateSection(s, table); err != nil {
				return fmt.Errorf("page %s: section %s: %w", p.ID, s.ID, err)
			}
		}
	}

	categories := make(map[string]bool)
	for _, cat := range c.Portfolio.Categories {
		if cat.ID == "" || categories[cat.ID] {
			return fmt.Errorf("portfolio: missing or duplicate category %q", cat.ID)
		}
		categories[cat.ID] = true
	}
	for _, proj := range c.Portfolio.Projects {
		if !categories[proj.Category] {
			return fmt.Errorf("portfolio: project %q has unknown category %q", proj.Title, proj.Category)
		}
	}

	if c.FAQ.Type != "single" && c.FAQ.Type != "multiple" {
		return fmt.Errorf("faq: type must be single or multiple, got %q", c.FAQ.Type)
	}
	if hasFAQ && len(c.FAQ.Entries) == 0 {
		return fmt.Errorf("faq: at least one entry is required for a faq section")
	}
	if c.Contact.SubmitDelay < 0 {
		return fmt.Errorf("contact: submitDelay cannot be negative")
	}
	return nil
}

func validateSection(s *SectionConfig, table *preset.Table) error {
	if s.Height <= 0 {
		return fmt.Errorf("height must be positive, got %v", s.Height)
	}
	switch s.Kind {
	case KindDefault, KindPortfolio, KindFAQ, KindContact:
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}

	names := make(map[string]bool)
	for _, el := range s.Elements {
		if el.Name == "" || names[el.Name] {
			return fmt.Errorf("missing or duplicate element name %q", el.Name)
		}
		switch el.Name {
		case TargetSection, TargetTitle, TargetItems, TargetElements:
			return fmt.Errorf("element name %q is reserved", el.Name)
		}
		if el.Box.Width() <= 0 || el.Box.Height() <= 0 {
			return fmt.Errorf("element %s: box size must be positive", el.Name)
		}
		names[el.Name] = true
	}
	if g := s.Grid; g != nil {
		if g.Items <= 0 || g.Columns <= 0 || g.ItemHeight <= 0 || g.Gap < 0 {
			return fmt.Errorf("grid: items, columns and itemHeight must be positive")
		}
	}

	for i, a := range s.Animations {
		if err := validateAnimation(s, names, a, table); err != nil {
			return fmt.Errorf("animation %d: %w", i, err)
		}
	}
	for i, step := range s.Timeline {
		if !names[step.Element] {
			return fmt.Errorf("timeline step %d: unknown element %q", i, step.Element)
		}
		if len(step.To) == 0 {
			return fmt.Errorf("timeline step %d: to is empty", i)
		}
		if step.Duration < 0 {
			return fmt.Errorf("timeline step %d: duration cannot be negative", i)
		}
		if _, err := tween.ParsePosition(step.Position); err != nil {
			return fmt.Errorf("timeline step %d: %w", i, err)
		}
		if step.Ease != "" {
			if _, err := utils.ParseEase(step.Ease); err != nil {
				return fmt.Errorf("timeline step %d: %w", i, err)
			}
		}
	}
	for _, name := range append(append([]string{}, s.Magnetic...), s.Float...) {
		if !names[name] {
			return fmt.Errorf("unknown element %q", name)
		}
	}
	if s.Parallax != nil && !names[s.Parallax.Element] {
		return fmt.Errorf("parallax: unknown element %q", s.Parallax.Element)
	}
	return nil
}

func validateAnimation(s *SectionConfig, names map[string]bool, a AnimationConfig, table *preset.Table) error {
	if !table.Has(a.Preset) {
		return fmt.Errorf("unknown preset %q", a.Preset)
	}
	if len(a.Target) == 0 {
		return fmt.Errorf("target is required")
	}
	for _, t := range a.Target {
		switch t {
		case TargetSection:
		case TargetTitle:
			if len(s.Title) == 0 {
				return fmt.Errorf("target title requires a section title")
			}
		case TargetItems:
			if s.Grid == nil {
				return fmt.Errorf("target items requires a grid")
			}
		case TargetElements:
			if len(s.Elements) == 0 {
				return fmt.Errorf("target elements requires elements")
			}
		default:
			if !names[t] {
				return fmt.Errorf("unknown target %q", t)
			}
		}
	}
	if a.Trigger != "" && a.Trigger != TargetSection && !names[a.Trigger] {
		return fmt.Errorf("unknown trigger %q", a.Trigger)
	}
	for _, th := range []string{a.Start, a.End} {
		if th == "" {
			continue
		}
		if _, err := scroll.ParseThreshold(th); err != nil {
			return err
		}
	}
	if a.Ease != "" {
		if _, err := utils.ParseEase(a.Ease); err != nil {
			return err
		}
	}
	if a.Delay < 0 || a.Duration < 0 || a.Stagger < 0 {
		return fmt.Errorf("delay, duration and stagger cannot be negative")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
