// Package ui 包含与动画内核无关的页面控件状态：
// 手风琴、主题切换、语言切换和导航栏。
package ui

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoAccordion 在手风琴之外使用手风琴项
var ErrNoAccordion = errors.New("ui: accordion item used outside an accordion")

// AccordionType 展开模式
type AccordionType string

const (
	// AccordionSingle 同时只能展开一项，再次点击已展开项会收起
	AccordionSingle AccordionType = "single"
	// AccordionMultiple 各项独立展开
	AccordionMultiple AccordionType = "multiple"
)

// ParseAccordionType 解析展开模式
func ParseAccordionType(s string) (AccordionType, error) {
	switch AccordionType(s) {
	case AccordionSingle, AccordionMultiple:
		return AccordionType(s), nil
	}
	return "", fmt.Errorf("unknown accordion type %q", s)
}

// Accordion 手风琴的展开状态
type Accordion struct {
	typ  AccordionType
	open []string // 按展开顺序
}

// NewAccordion 创建手风琴，defaults 为初始展开的项
// single 模式下只保留第一个默认项
func NewAccordion(typ AccordionType, defaults ...string) *Accordion {
	a := &Accordion{typ: typ}
	if typ != AccordionMultiple {
		a.typ = AccordionSingle
		if len(defaults) > 1 {
			defaults = defaults[:1]
		}
	}
	a.open = append([]string{}, defaults...)
	return a
}

// Type 展开模式
func (a *Accordion) Type() AccordionType { return a.typ }

// Toggle 切换一项的展开状态
func (a *Accordion) Toggle(value string) {
	if a.typ == AccordionSingle {
		if a.IsOpen(value) {
			a.open = a.open[:0]
		} else {
			a.open = append(a.open[:0], value)
		}
		return
	}
	for i, v := range a.open {
		if v == value {
			a.open = append(a.open[:i], a.open[i+1:]...)
			return
		}
	}
	a.open = append(a.open, value)
}

// IsOpen 该项是否展开
func (a *Accordion) IsOpen(value string) bool {
	for _, v := range a.open {
		if v == value {
			return true
		}
	}
	return false
}

// OpenItems 返回展开的项（按展开顺序）
func (a *Accordion) OpenItems() []string {
	return append([]string{}, a.open...)
}

type accordionKey struct{}

// WithAccordion 返回携带手风琴的子上下文
func WithAccordion(parent context.Context, a *Accordion) context.Context {
	return context.WithValue(parent, accordionKey{}, a)
}

// AccordionFrom 取出上下文中的手风琴
func AccordionFrom(ctx context.Context) (*Accordion, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(accordionKey{}).(*Accordion)
	return a, ok && a != nil
}

// MustAccordionFrom 同 AccordionFrom，不存在时 panic(ErrNoAccordion)
func MustAccordionFrom(ctx context.Context) *Accordion {
	a, ok := AccordionFrom(ctx)
	if !ok {
		panic(ErrNoAccordion)
	}
	return a
}

// AccordionItem 手风琴中的一项，只能在手风琴上下文中创建
type AccordionItem struct {
	Value     string
	accordion *Accordion
}

// NewAccordionItem 在 ctx 的手风琴中创建一项
func NewAccordionItem(ctx context.Context, value string) *AccordionItem {
	return &AccordionItem{Value: value, accordion: MustAccordionFrom(ctx)}
}

// Toggle 切换展开状态
func (i *AccordionItem) Toggle() { i.accordion.Toggle(i.Value) }

// IsOpen 是否展开
func (i *AccordionItem) IsOpen() bool { return i.accordion.IsOpen(i.Value) }
