package tween

import (
	"math"
	"testing"

	"github.com/gonewx/sitemotion/pkg/dom"
	"github.com/gonewx/sitemotion/pkg/utils"
)

const frame = 1.0 / 60.0

// step 以 60 FPS 推进引擎 seconds 秒
func step(e *Engine, seconds float64) {
	for t := 0.0; t < seconds; t += frame {
		e.Update(frame)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func newTarget(doc *dom.Document, name string) *dom.Element {
	return doc.CreateElement(name, dom.Rect{Width: 100, Height: 100})
}

func TestToReachesTarget(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "card")
	e := NewEngine()

	completed := false
	tw := e.To([]*dom.Element{el}, Vars{
		Props:      Props{dom.PropOpacity: 0.2, dom.PropY: 40},
		Duration:   0.5,
		Ease:       utils.EaseLinear,
		OnComplete: func() { completed = true },
	})

	if e.Len() != 1 || !tw.IsActive() {
		t.Fatalf("Playing tween should be registered, Len=%d", e.Len())
	}

	e.Update(0.25)
	if got := el.Computed(dom.PropY); !approx(got, 20) {
		t.Errorf("y at half time = %v, want 20", got)
	}

	step(e, 0.5)
	if !completed {
		t.Error("OnComplete should fire")
	}
	if el.Computed(dom.PropOpacity) != 0.2 || el.Computed(dom.PropY) != 40 {
		t.Errorf("final style = %v", el.InlineStyle())
	}
	if e.Len() != 0 {
		t.Errorf("Completed tween must leave the registry, Len=%d", e.Len())
	}
	if tw.Progress() != 1 {
		t.Errorf("Progress = %v, want 1", tw.Progress())
	}
}

func TestRevertRestoresInlineStyle(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "card")
	el.SetStyle(dom.PropScale, 2)
	e := NewEngine()

	set := e.Set([]*dom.Element{el}, Props{dom.PropOpacity: 0, dom.PropScale: 0.9})
	to := e.To([]*dom.Element{el}, Vars{Props: Props{dom.PropOpacity: 1, dom.PropScale: 1}, Duration: 0.3})
	step(e, 0.5)

	// 逆序恢复：先 To 后 Set
	to.Revert()
	set.Revert()

	if _, ok := el.Style(dom.PropOpacity); ok {
		t.Error("opacity was not inline before, must be removed")
	}
	if v, _ := el.Style(dom.PropScale); v != 2 {
		t.Errorf("scale = %v, want original inline 2", v)
	}

	// 幂等
	to.Revert()
	set.Revert()
	if v, _ := el.Style(dom.PropScale); v != 2 {
		t.Errorf("second revert changed scale to %v", v)
	}
}

func TestRevertOnRemovedTarget(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "card")
	e := NewEngine()

	tw := e.FromTo([]*dom.Element{el}, Props{dom.PropOpacity: 0}, Vars{Props: Props{dom.PropOpacity: 1}, Duration: 1})
	e.Update(0.1)
	doc.Remove(el)

	tw.Revert()
	e.Update(0.1)
	if e.Len() != 0 {
		t.Errorf("Reverted tween must leave registry, Len=%d", e.Len())
	}
}

func TestStaggerAndDelay(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	targets := []*dom.Element{newTarget(doc, "a"), newTarget(doc, "b"), newTarget(doc, "c")}
	e := NewEngine()

	tw := e.FromTo(targets, Props{dom.PropY: 30}, Vars{
		Props:    Props{dom.PropY: 0},
		Duration: 0.5,
		Stagger:  0.1,
		Delay:    0.2,
		Ease:     utils.EaseLinear,
	})

	if !approx(tw.Duration(), 0.7) {
		t.Errorf("Duration = %v, want 0.7 (0.5 + 2*0.1)", tw.Duration())
	}

	// 延迟期间保持 from 状态
	e.Update(0.15)
	for _, el := range targets {
		if el.Computed(dom.PropY) != 30 {
			t.Fatalf("%s moved during delay: y=%v", el.Name(), el.Computed(dom.PropY))
		}
	}

	// 延迟结束后 0.25 秒：a 走了一半，b 走了 0.15/0.5，c 走了 0.05/0.5
	e.Update(0.05)
	e.Update(0.25)
	want := []float64{15, 21, 27}
	for i, el := range targets {
		if got := el.Computed(dom.PropY); !approx(got, want[i]) {
			t.Errorf("%s y = %v, want %v", el.Name(), got, want[i])
		}
	}
}

func TestReverseReturnsToStart(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "card")
	e := NewEngine()

	e.Set([]*dom.Element{el}, Props{dom.PropOpacity: 0})
	tw := e.To([]*dom.Element{el}, Vars{Props: Props{dom.PropOpacity: 1}, Duration: 0.4, Paused: true})

	if e.Len() != 0 {
		t.Fatalf("Paused tween must not be registered, Len=%d", e.Len())
	}

	tw.Play()
	step(e, 0.5)
	if el.Computed(dom.PropOpacity) != 1 {
		t.Fatalf("opacity = %v after play, want 1", el.Computed(dom.PropOpacity))
	}

	tw.Reverse()
	step(e, 0.5)
	if el.Computed(dom.PropOpacity) != 0 {
		t.Errorf("opacity = %v after reverse, want 0", el.Computed(dom.PropOpacity))
	}
	if tw.Progress() != 0 || tw.IsActive() {
		t.Errorf("Progress = %v active = %v, want 0 and false", tw.Progress(), tw.IsActive())
	}

	// 再次播放不重新计算延迟
	tw.Play()
	e.Update(0.2)
	if got := el.Computed(dom.PropOpacity); got <= 0 {
		t.Errorf("replay should move immediately, opacity = %v", got)
	}
}

func TestSetProgressIsLinearInTime(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "bg")
	e := NewEngine()

	tw := e.To([]*dom.Element{el}, Vars{
		Props:    Props{dom.PropYPercent: -50},
		Duration: 1,
		Ease:     utils.EaseLinear,
		Paused:   true,
	})

	for _, p := range []float64{0, 0.5, 1} {
		tw.SetProgress(p)
		if !approx(tw.Progress(), p) {
			t.Errorf("Progress = %v, want %v", tw.Progress(), p)
		}
		if got := el.Computed(dom.PropYPercent); !approx(got, -50*p) {
			t.Errorf("yPercent at %v = %v, want %v", p, got, -50*p)
		}
	}
}

func TestKillKeepsStyle(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "button")
	e := NewEngine()

	tw := e.To([]*dom.Element{el}, Vars{Props: Props{dom.PropX: 100}, Duration: 1, Ease: utils.EaseLinear})
	e.Update(0.5)
	tw.Kill()
	e.Update(0.5)

	if got := el.Computed(dom.PropX); !approx(got, 50) {
		t.Errorf("x = %v after kill, want 50", got)
	}
	tw.Play()
	if e.Len() != 0 {
		t.Error("Killed tween must not be replayed")
	}
}

func TestRepeatYoyo(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "float")
	e := NewEngine()

	tw := e.To([]*dom.Element{el}, Vars{
		Props:    Props{dom.PropY: -20},
		Duration: 1,
		Ease:     utils.EaseLinear,
		Repeat:   -1,
		Yoyo:     true,
	})

	e.Update(0.5)
	if got := el.Computed(dom.PropY); !approx(got, -10) {
		t.Errorf("y at 0.5s = %v, want -10", got)
	}
	e.Update(1.0)
	if got := el.Computed(dom.PropY); !approx(got, -10) {
		t.Errorf("y at 1.5s (coming back) = %v, want -10", got)
	}
	e.Update(0.5)
	if got := el.Computed(dom.PropY); !approx(got, 0) {
		t.Errorf("y at 2.0s = %v, want 0", got)
	}
	if !tw.IsActive() {
		t.Error("infinite yoyo should keep playing")
	}

	tw.Revert()
	if _, ok := el.Style(dom.PropY); ok || e.Len() != 0 {
		t.Error("revert should stop the loop and restore style")
	}
}

func TestRepeatCount(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	el := newTarget(doc, "pulse")
	e := NewEngine()

	completed := 0
	e.To([]*dom.Element{el}, Vars{
		Props:      Props{dom.PropX: 10},
		Duration:   0.5,
		Repeat:     2,
		OnComplete: func() { completed++ },
	})
	step(e, 1.2)
	if completed != 0 {
		t.Fatal("should still be repeating after 1.2s")
	}
	step(e, 0.5)
	if completed != 1 || el.Computed(dom.PropX) != 10 {
		t.Errorf("completed=%d x=%v after three cycles", completed, el.Computed(dom.PropX))
	}
}
