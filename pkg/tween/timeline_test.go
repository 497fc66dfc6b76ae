package tween

import (
	"testing"

	"github.com/gonewx/sitemotion/pkg/dom"
)

// TestHeroSequencePositions 首页头图序列：每段与前一段重叠固定时长
func TestHeroSequencePositions(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	badge := newTarget(doc, "hero-badge")
	title := newTarget(doc, "hero-title")
	desc := newTarget(doc, "hero-description")
	buttons := newTarget(doc, "hero-buttons")
	image := newTarget(doc, "hero-image")
	e := NewEngine()

	tl := e.Timeline(TimelineVars{})
	tl.FromTo([]*dom.Element{badge}, Props{dom.PropOpacity: 0, dom.PropY: 20}, Vars{Props: Props{dom.PropOpacity: 1, dom.PropY: 0}, Duration: 0.6}).
		FromTo([]*dom.Element{title}, Props{dom.PropOpacity: 0, dom.PropY: 30}, Vars{Props: Props{dom.PropOpacity: 1, dom.PropY: 0}, Duration: 0.8}, Offset(-0.3)).
		FromTo([]*dom.Element{desc}, Props{dom.PropOpacity: 0, dom.PropY: 20}, Vars{Props: Props{dom.PropOpacity: 1, dom.PropY: 0}, Duration: 0.6}, Offset(-0.4)).
		FromTo([]*dom.Element{buttons}, Props{dom.PropOpacity: 0, dom.PropY: 20}, Vars{Props: Props{dom.PropOpacity: 1, dom.PropY: 0}, Duration: 0.6}, Offset(-0.3)).
		FromTo([]*dom.Element{image}, Props{dom.PropOpacity: 0, dom.PropScale: 0.95, dom.PropX: 50}, Vars{Props: Props{dom.PropOpacity: 1, dom.PropScale: 1, dom.PropX: 0}, Duration: 1}, Offset(-0.8))

	wantStarts := []float64{0, 0.3, 0.7, 1.0, 0.8}
	for i, want := range wantStarts {
		if got := tl.ChildStart(i); !approx(got, want) {
			t.Errorf("child %d start = %v, want %v", i, got, want)
		}
	}
	if !approx(tl.Duration(), 1.8) {
		t.Errorf("Duration = %v, want 1.8", tl.Duration())
	}

	// FromTo 立即渲染 from 状态
	if image.Computed(dom.PropOpacity) != 0 || image.Computed(dom.PropX) != 50 {
		t.Errorf("image should start hidden, got %v", image.InlineStyle())
	}

	step(e, 2)
	for _, el := range []*dom.Element{badge, title, desc, buttons, image} {
		if el.Computed(dom.PropOpacity) != 1 {
			t.Errorf("%s opacity = %v, want 1", el.Name(), el.Computed(dom.PropOpacity))
		}
	}
	if e.Len() != 0 {
		t.Errorf("Finished timeline must leave registry, Len=%d", e.Len())
	}

	tl.Revert()
	for _, el := range []*dom.Element{badge, title, desc, buttons, image} {
		if len(el.InlineStyle()) != 0 {
			t.Errorf("%s keeps inline style after revert: %v", el.Name(), el.InlineStyle())
		}
	}
}

func TestTimelineScrubbedProgress(t *testing.T) {
	doc := dom.NewDocument(800, 600)
	a := newTarget(doc, "a")
	e := NewEngine()

	tl := e.Timeline(TimelineVars{Paused: true})
	tl.To([]*dom.Element{a}, Vars{Props: Props{dom.PropX: 100}, Duration: 1, Ease: func(t float64) float64 { return t }})

	tl.SetProgress(0.5)
	if got := a.Computed(dom.PropX); !approx(got, 50) {
		t.Errorf("x = %v at progress 0.5, want 50", got)
	}
	tl.SetProgress(0)
	if got := a.Computed(dom.PropX); !approx(got, 0) {
		t.Errorf("x = %v at progress 0, want 0", got)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		end     float64
		want    float64
		wantErr bool
	}{
		{"", 1.0, 1.0, false},
		{"-=0.3", 1.0, 0.7, false},
		{"+=0.5", 1.0, 1.5, false},
		{"0.25", 1.0, 0.25, false},
		{"-=5", 1.0, 0, false},
		{"-1", 1.0, 0, true},
		{"soon", 1.0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			pos, err := ParsePosition(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePosition(%q) should fail", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePosition(%q) error: %v", tt.in, err)
			}
			if got := pos.resolve(tt.end); !approx(got, tt.want) {
				t.Errorf("resolve = %v, want %v", got, tt.want)
			}
		})
	}
}
