package dom

import (
	"testing"

	"github.com/gonewx/sitemotion/pkg/components"
)

func TestElementStyleDefaults(t *testing.T) {
	doc := NewDocument(800, 600)
	el := doc.CreateElement("card", Rect{X: 0, Y: 100, Width: 200, Height: 100})

	tests := []struct {
		prop string
		want float64
	}{
		{PropOpacity, 1},
		{PropScale, 1},
		{PropX, 0},
		{PropY, 0},
		{PropYPercent, 0},
	}
	for _, tt := range tests {
		t.Run(tt.prop, func(t *testing.T) {
			if _, ok := el.Style(tt.prop); ok {
				t.Errorf("%s should have no inline value", tt.prop)
			}
			if got := el.Computed(tt.prop); got != tt.want {
				t.Errorf("Computed(%s) = %v, want %v", tt.prop, got, tt.want)
			}
		})
	}

	el.SetStyle(PropOpacity, 0.25)
	if got := el.Computed(PropOpacity); got != 0.25 {
		t.Errorf("Computed(opacity) after SetStyle = %v, want 0.25", got)
	}
	el.RemoveStyle(PropOpacity)
	if len(el.InlineStyle()) != 0 {
		t.Errorf("InlineStyle() = %v, want empty", el.InlineStyle())
	}
}

func TestRemovedElementIsInert(t *testing.T) {
	doc := NewDocument(800, 600)
	section := doc.CreateElement("section", Rect{Width: 800, Height: 400})
	card := doc.CreateChild(section, "card", Rect{Width: 100, Height: 100})

	doc.Remove(section)

	if section.IsConnected() || card.IsConnected() {
		t.Fatal("Removing a parent must disconnect the whole subtree")
	}

	// 对已移除元素的所有操作都不能 panic
	card.SetStyle(PropOpacity, 0)
	card.RemoveStyle(PropOpacity)
	card.SetBox(Rect{Width: 10})
	if _, ok := card.Style(PropOpacity); ok {
		t.Error("Removed element must not keep inline style")
	}
	if id := card.AddEventListener(components.PointerMove, func(x, y float64) {}); id != 0 {
		t.Errorf("AddEventListener on removed element returned %d, want 0", id)
	}
	doc.Remove(card)
}

func TestScrollClamping(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.CreateElement("page", Rect{Width: 800, Height: 2000})

	v0 := doc.LayoutVersion()
	doc.ScrollTo(500)
	if doc.ScrollY() != 500 {
		t.Errorf("ScrollY = %v, want 500", doc.ScrollY())
	}
	if doc.LayoutVersion() == v0 {
		t.Error("Scrolling must bump the layout version")
	}

	doc.ScrollTo(5000)
	if doc.ScrollY() != 1400 {
		t.Errorf("ScrollY = %v, want clamp to 1400", doc.ScrollY())
	}

	doc.ScrollBy(-9999)
	if doc.ScrollY() != 0 {
		t.Errorf("ScrollY = %v, want clamp to 0", doc.ScrollY())
	}
}

func TestBoundingClientRectFollowsScroll(t *testing.T) {
	doc := NewDocument(800, 600)
	doc.CreateElement("page", Rect{Width: 800, Height: 3000})
	el := doc.CreateElement("card", Rect{X: 10, Y: 900, Width: 100, Height: 50})

	doc.ScrollTo(400)
	r := el.BoundingClientRect()
	if r.Y != 500 || r.X != 10 {
		t.Errorf("BoundingClientRect = %+v, want X=10 Y=500", r)
	}
}

func TestPointerDispatch(t *testing.T) {
	doc := NewDocument(800, 600)
	button := doc.CreateElement("button", Rect{X: 100, Y: 100, Width: 100, Height: 40})

	var moves, leaves int
	moveID := button.AddEventListener(components.PointerMove, func(x, y float64) { moves++ })
	button.AddEventListener(components.PointerLeave, func(x, y float64) { leaves++ })

	doc.DispatchPointerMove(150, 120)
	doc.DispatchPointerMove(160, 125)
	if moves != 2 || !doc.IsHovered(button) {
		t.Fatalf("moves = %d hovered = %v, want 2 and true", moves, doc.IsHovered(button))
	}

	doc.DispatchPointerMove(500, 500)
	if leaves != 1 {
		t.Errorf("leaves = %d, want 1", leaves)
	}

	// 已经离开后再次移动到外部不应重复触发
	doc.DispatchPointerMove(510, 500)
	if leaves != 1 {
		t.Errorf("leaves = %d after second outside move, want 1", leaves)
	}

	button.RemoveEventListener(moveID)
	if button.ListenerCount(components.PointerMove) != 0 {
		t.Error("Move listener should be removed")
	}
	doc.DispatchPointerMove(150, 120)
	if moves != 2 {
		t.Errorf("moves = %d after removal, want 2", moves)
	}

	doc.DispatchPointerLeave()
	if leaves != 2 {
		t.Errorf("leaves = %d after window leave, want 2", leaves)
	}
}

func TestChildrenAndClasses(t *testing.T) {
	doc := NewDocument(800, 600)
	grid := doc.CreateElement("grid", Rect{Width: 800, Height: 400}, "services-grid")
	a := doc.CreateChild(grid, "a", Rect{Width: 100, Height: 100}, "service-card")
	b := doc.CreateChild(grid, "b", Rect{Width: 100, Height: 100}, "service-card")
	c := doc.CreateChild(grid, "c", Rect{Width: 100, Height: 100}, "service-card")

	doc.Remove(b)

	children := doc.Children(grid)
	if len(children) != 2 || children[0] != a || children[1] != c {
		t.Errorf("Children = %v, want [a c]", children)
	}
	if got := doc.ElementsByClass("service-card"); len(got) != 2 {
		t.Errorf("ElementsByClass returned %d elements, want 2", len(got))
	}
	if a.Parent() != grid {
		t.Error("Parent() should return the grid")
	}
}
