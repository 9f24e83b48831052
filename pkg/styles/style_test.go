package styles

import "testing"

func TestCollapse(t *testing.T) {
	tests := []struct {
		name   string
		layers []Style
		want   Style
	}{
		{
			name:   "no layers",
			layers: nil,
			want:   Style{},
		},
		{
			name:   "nil layers skipped",
			layers: []Style{nil, {"height": 28}, nil},
			want:   Style{"height": 28},
		},
		{
			name:   "later layer wins",
			layers: []Style{{"height": 28, "color": White}, {"height": 40}},
			want:   Style{"height": 40, "color": White},
		},
		{
			name:   "unset removes key",
			layers: []Style{{"alignSelf": "center", "height": 28}, {"alignSelf": Unset}},
			want:   Style{"height": 28},
		},
		{
			name:   "unset then set again",
			layers: []Style{{"width": 10}, {"width": Unset}, {"width": 20}},
			want:   Style{"width": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collapse(tt.layers...)
			if !Equal(got, tt.want) {
				t.Errorf("Collapse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollapseDoesNotMutate(t *testing.T) {
	base := Style{"height": 28}
	over := Style{"height": 40, "alignSelf": Unset}
	_ = Collapse(base, over)

	if base["height"] != 28 {
		t.Errorf("base mutated: %v", base)
	}
	if len(over) != 2 {
		t.Errorf("override mutated: %v", over)
	}
}

func TestStyleAccessors(t *testing.T) {
	s := Style{"color": Black, "textAlign": "center", "opacity": 0.3, "height": 28}

	if got := s.Color("color"); got != Black {
		t.Errorf("Color() = %q, want %q", got, Black)
	}
	if got := s.StringValue("textAlign"); got != "center" {
		t.Errorf("StringValue() = %q, want %q", got, "center")
	}
	if got, ok := s.Number("opacity"); !ok || got != 0.3 {
		t.Errorf("Number(opacity) = %v, %v", got, ok)
	}
	if got, ok := s.Number("height"); !ok || got != 28 {
		t.Errorf("Number(height) = %v, %v", got, ok)
	}
	if _, ok := s.Number("missing"); ok {
		t.Error("Number(missing) should report unset")
	}
	if s.Has("width") {
		t.Error("Has(width) should be false")
	}
}

func TestPlatformStylesResolve(t *testing.T) {
	ps := PlatformStyles{
		Common:   Style{"height": 28, "paddingLeft": 0},
		Electron: Style{"paddingLeft": 16, "display": "inline-block"},
		Mobile:   Style{"paddingLeft": 12},
	}

	desktop := ps.Resolve(Electron)
	if desktop["paddingLeft"] != 16 || desktop["display"] != "inline-block" || desktop["height"] != 28 {
		t.Errorf("Resolve(Electron) = %v", desktop)
	}

	mobile := ps.Resolve(Mobile)
	if mobile["paddingLeft"] != 12 || mobile.Has("display") {
		t.Errorf("Resolve(Mobile) = %v", mobile)
	}
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		in      string
		want    Platform
		wantErr bool
	}{
		{"", Electron, false},
		{"electron", Electron, false},
		{"Desktop", Electron, false},
		{"mobile", Mobile, false},
		{"watch", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlatform(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePlatform(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePlatform(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPick(t *testing.T) {
	if got := Pick(Electron, 24, 28); got != 24 {
		t.Errorf("Pick(Electron) = %d, want 24", got)
	}
	if got := Pick(Mobile, 24, 28); got != 28 {
		t.Errorf("Pick(Mobile) = %d, want 28", got)
	}
}
