package vdom

import (
	"testing"

	"github.com/vango-dev/commonui/pkg/styles"
)

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindBox, "Box"},
		{KindClickable, "Clickable"},
		{KindIcon, "Icon"},
		{KindText, "Text"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxDropsNilChildren(t *testing.T) {
	node := Box(nil,
		Text(TextBody, nil, "a"),
		If(false, Text(TextBody, nil, "b")),
		nil,
		Text(TextBody, nil, "c"),
	)

	if len(node.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(node.Children))
	}
	if node.Children[1].Text != "c" {
		t.Errorf("second child = %q, want %q", node.Children[1].Text, "c")
	}
}

func TestFire(t *testing.T) {
	clicks, enters := 0, 0
	wired := ClickableBox(nil, Handlers{
		OnClick:      func() { clicks++ },
		OnMouseEnter: func() { enters++ },
	})

	if !wired.Fire(EventClick) {
		t.Error("Fire(click) on wired region should report true")
	}
	if !wired.Fire(EventMouseEnter) {
		t.Error("Fire(mouseenter) should report true")
	}
	if wired.Fire(EventMouseLeave) {
		t.Error("Fire(mouseleave) without handler should report false")
	}
	if clicks != 1 || enters != 1 {
		t.Errorf("clicks=%d enters=%d, want 1 and 1", clicks, enters)
	}

	inert := ClickableBox(nil, Handlers{})
	if inert.Fire(EventClick) {
		t.Error("Fire(click) on inert region should report false")
	}
	if inert.IsInteractive() {
		t.Error("inert region should not be interactive")
	}

	box := Box(nil)
	if box.Fire(EventClick) {
		t.Error("Fire on a Box should report false")
	}

	var nilNode *VNode
	if nilNode.Fire(EventClick) {
		t.Error("Fire on nil should report false")
	}
}

func TestFindAndWalk(t *testing.T) {
	root := ClickableBox(styles.Style{"height": 28}, Handlers{},
		Box(nil,
			Icon("iconfont-check", SizeSmall, styles.White, nil),
			Text(TextBodySemibold, nil, "Save"),
			Box(nil, Icon(IconProgressWhiteAnimated, SizeDefault, "", nil)),
		),
	)

	if got := CountNodes(root); got != 6 {
		t.Errorf("CountNodes() = %d, want 6", got)
	}

	text := Find(root, OfKind(KindText))
	if text == nil || text.Text != "Save" {
		t.Fatalf("Find(text) = %+v", text)
	}

	icons := FindAll(root, OfKind(KindIcon))
	if len(icons) != 2 {
		t.Fatalf("FindAll(icon) = %d, want 2", len(icons))
	}
	if icons[1].Icon != IconProgressWhiteAnimated {
		t.Errorf("second icon = %q", icons[1].Icon)
	}

	maxDepth := 0
	Walk(root, func(_ *VNode, depth int) bool {
		if depth > maxDepth {
			maxDepth = depth
		}
		return true
	})
	if maxDepth != 3 {
		t.Errorf("max depth = %d, want 3", maxDepth)
	}
}

func TestWhen(t *testing.T) {
	called := false
	if When(false, func() *VNode { called = true; return Box(nil) }) != nil {
		t.Error("When(false) should return nil")
	}
	if called {
		t.Error("When(false) should not call fn")
	}
	if When(true, func() *VNode { return Box(nil) }) == nil {
		t.Error("When(true) should return the node")
	}
}
