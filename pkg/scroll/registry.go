package scroll

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/sitemotion/pkg/dom"
)

// ErrNoTrigger 观察者没有可用的触发元素
var ErrNoTrigger = errors.New("scroll: trigger element is nil or removed")

// Registry 某个文档上的全部滚动观察者
type Registry struct {
	doc       *dom.Document
	observers []*Observer
	nextID    uint64

	measuredVersion uint64
	dirty           bool
}

// NewRegistry 创建文档的观察者注册表
func NewRegistry(doc *dom.Document) *Registry {
	return &Registry{
		doc:       doc,
		observers: make([]*Observer, 0),
		nextID:    1,
		dirty:     true,
	}
}

// Observe 注册一个观察者
// 新观察者在下一次 Update 时完成首次测量与求值
func (r *Registry) Observe(cfg Config) (*Observer, error) {
	if cfg.Trigger == nil || !cfg.Trigger.IsConnected() {
		return nil, ErrNoTrigger
	}
	if cfg.Start == "" {
		cfg.Start = DefaultStart
	}
	if cfg.End == "" {
		cfg.End = DefaultEnd
	}
	start, err := ParseThreshold(cfg.Start)
	if err != nil {
		return nil, fmt.Errorf("observe start: %w", err)
	}
	end, err := ParseThreshold(cfg.End)
	if err != nil {
		return nil, fmt.Errorf("observe end: %w", err)
	}
	if cfg.Actions.IsZero() {
		cfg.Actions = PlayOnce
	}

	o := &Observer{
		id:       r.nextID,
		registry: r,
		cfg:      cfg,
		start:    start,
		end:      end,
	}
	r.nextID++
	o.measure(r.doc.ViewportHeight())
	r.observers = append(r.observers, o)
	return o, nil
}

// Update 每帧调用一次
// 布局版本未变化时只推进 scrub 平滑，不重新测量
func (r *Registry) Update(deltaTime float64) {
	version := r.doc.LayoutVersion()
	remeasure := r.dirty || version != r.measuredVersion
	r.measuredVersion = version
	r.dirty = false

	// 回调中可能注销或新建观察者
	snapshot := append([]*Observer(nil), r.observers...)
	for _, o := range snapshot {
		if o.disposed {
			continue
		}
		if !o.cfg.Trigger.IsConnected() {
			continue
		}
		if remeasure || !o.evaluated {
			o.measure(r.doc.ViewportHeight())
			o.evaluate(r.doc.ScrollY())
		}
		o.smooth(deltaTime)
	}
}

// Refresh 强制下一次 Update 重新测量所有观察者
func (r *Registry) Refresh() {
	r.dirty = true
}

// Len 返回已注册的观察者数量
func (r *Registry) Len() int {
	return len(r.observers)
}

// CountFor 返回以 trigger 为触发元素的观察者数量
func (r *Registry) CountFor(trigger *dom.Element) int {
	if trigger == nil {
		return 0
	}
	n := 0
	for _, o := range r.observers {
		if o.cfg.Trigger.ID() == trigger.ID() {
			n++
		}
	}
	return n
}

// Observers 返回注册表快照
func (r *Registry) Observers() []*Observer {
	return append([]*Observer(nil), r.observers...)
}

func (r *Registry) remove(o *Observer) {
	for i, existing := range r.observers {
		if existing == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
	log.Printf("[ScrollRegistry] observer %d already removed", o.id)
}
