package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "unsupported variant",
			code:    CodeUnsupportedVariant,
			wantMsg: "Unsupported button variant",
			wantCat: CategoryVariant,
		},
		{
			name:    "config error",
			code:    CodeInvalidConfig,
			wantMsg: "Invalid configuration",
			wantCat: CategoryConfig,
		},
		{
			name:    "export error",
			code:    CodeExportFailed,
			wantMsg: "Gallery export failed",
			wantCat: CategoryExport,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewReturnsFreshValue(t *testing.T) {
	a := New(CodeUnknownType).WithDetail("first")
	b := New(CodeUnknownType)
	if b.Detail != "" {
		t.Errorf("second New() shares state: Detail = %q", b.Detail)
	}
	if a == b {
		t.Error("New() should return distinct values")
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeUnsupportedVariant).WithDetailf("no style row for %q", "PrimaryColoredBackground")
	want := `E101: Unsupported button variant: no style row for "PrimaryColoredBackground"`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := New(CodeExportFailed).Wrap(fmt.Errorf("access denied"))
	if !strings.HasSuffix(wrapped.Error(), ": access denied") {
		t.Errorf("Error() = %q, want wrapped cause suffix", wrapped.Error())
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New(CodeUnsupportedVariant)
	err := fmt.Errorf("render: %w", New(CodeUnsupportedVariant).WithDetail("x"))

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should match on code")
	}
	if stderrors.Is(err, New(CodeUnknownType)) {
		t.Error("errors.Is should not match a different code")
	}
	if stderrors.Is(err, &Error{Message: "Unsupported button variant"}) {
		t.Error("errors.Is should not match a code-less target")
	}

	var e *Error
	if !stderrors.As(err, &e) || e.Detail != "x" {
		t.Errorf("errors.As = %+v", e)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := New(CodeConfigRead).Wrap(cause)
	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeConfigRead) != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New(CodeUnknownType)
	if FromError(orig, CodeConfigRead) != orig {
		t.Error("FromError should pass *Error through")
	}

	plain := fmt.Errorf("disk")
	got := FromError(plain, CodeConfigRead)
	if got.Code != CodeConfigRead || got.Wrapped != plain {
		t.Errorf("FromError() = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeUnsupportedVariant).WithDetail("no style row for the requested key")
	out := err.Format()

	for _, want := range []string{
		"ERROR E101: Unsupported button variant",
		"  no style row for the requested key",
		"Hint: Run `commonui variants`",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatJSON(t *testing.T) {
	err := New(CodeUnknownBackgroundMode).WithDetail(`"Yellow"`)

	var decoded map[string]string
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("FormatJSON() is not valid JSON: %v", jerr)
	}
	if decoded["code"] != CodeUnknownBackgroundMode {
		t.Errorf("code = %q", decoded["code"])
	}
	if decoded["category"] != string(CategoryVariant) {
		t.Errorf("category = %q", decoded["category"])
	}
	if decoded["detail"] != `"Yellow"` {
		t.Errorf("detail = %q", decoded["detail"])
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	want := []string{"one two", "three", "four five"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText() = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("   ", 10) != nil {
		t.Error("wrapText(blank) should be nil")
	}
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("Codes() not sorted: %v", codes)
		}
	}
	if _, ok := Lookup(CodeUnknownType); !ok {
		t.Error("Lookup(E100) should succeed")
	}
}
