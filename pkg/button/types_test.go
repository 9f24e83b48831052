package button

import (
	"errors"
	"testing"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"Primary", Primary, false},
		{"primarygreenactive", PrimaryGreenActive, false},
		{" Wallet ", Wallet, false},
		{"SecondaryColoredBackground", SecondaryColoredBackground, false},
		{"Custom", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownType) {
					t.Fatalf("ParseType(%q) error = %v, want ErrUnknownType", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseType(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBackgroundMode(t *testing.T) {
	tests := []struct {
		in      string
		want    BackgroundMode
		wantErr bool
	}{
		{"", Normal, false},
		{"Normal", Normal, false},
		{"terminal", Terminal, false},
		{"PURPLE", Purple, false},
		{"Yellow", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBackgroundMode(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownBackgroundMode) {
					t.Fatalf("ParseBackgroundMode(%q) error = %v", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBackgroundMode(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBackgroundMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuffix(t *testing.T) {
	want := map[BackgroundMode]string{
		Normal:   "",
		Terminal: "OnTerminal",
		Red:      "Red",
		Green:    "Green",
		Blue:     "Blue",
		Black:    "Black",
		Purple:   "Purple",
	}
	for m, s := range want {
		if got := m.Suffix(); got != s {
			t.Errorf("%v.Suffix() = %q, want %q", m, got, s)
		}
	}
	if got := BackgroundMode(99).Suffix(); got != "" {
		t.Errorf("invalid Suffix() = %q, want empty", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %v, %v", typ, got, err)
		}
	}
	for _, m := range BackgroundModes() {
		got, err := ParseBackgroundMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBackgroundMode(%q) = %v, %v", m, got, err)
		}
	}
	if Type(99).String() != "Unknown" || BackgroundMode(99).String() != "Unknown" {
		t.Error("out-of-range values should print Unknown")
	}
}

func TestVariantString(t *testing.T) {
	if got := (Variant{Primary, Normal}).String(); got != "Primary" {
		t.Errorf("String() = %q", got)
	}
	if got := (Variant{Secondary, Terminal}).String(); got != "Secondary/Terminal" {
		t.Errorf("String() = %q", got)
	}
}

func TestSupportedIsUnique(t *testing.T) {
	seen := make(map[Variant]bool)
	for _, v := range Supported() {
		if seen[v] {
			t.Errorf("duplicate variant %s", v)
		}
		seen[v] = true
	}
	if len(seen) != 18 {
		t.Errorf("Supported() = %d variants, want 18", len(seen))
	}
}
