package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/commonui/internal/errors"
	"github.com/vango-dev/commonui/pkg/button"
	"github.com/vango-dev/commonui/pkg/server"
)

// run executes the CLI with args against an empty config directory.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runIn(t, t.TempDir(), args...)
}

func runIn(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, "render", "--type", "Danger", "--label", "Delete")
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	for _, want := range []string{`role="button"`, "Delete", "#ff4d61"} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCommandUnsupported(t *testing.T) {
	_, err := run(t, "render", "--type", "Wallet", "--mode", "Red")
	if !stderrors.Is(err, button.ErrUnsupportedVariant) {
		t.Errorf("render Wallet/Red error = %v, want E101", err)
	}

	_, err = run(t, "render", "--type", "Giant")
	if !stderrors.Is(err, button.ErrUnknownType) {
		t.Errorf("render Giant error = %v, want E100", err)
	}

	_, err = run(t, "render", "--platform", "watch")
	if !stderrors.Is(err, errors.New(errors.CodeInvalidConfig)) {
		t.Errorf("render --platform watch error = %v, want E110", err)
	}
}

func TestRenderUsesConfigPlatform(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "commonui.json"), []byte(`{"platform":"mobile"}`), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runIn(t, dir, "render", "--type", "Primary", "--label", "A")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "height: 32px") {
		t.Errorf("mobile config should give a 32px button:\n%s", out)
	}

	out, err = runIn(t, dir, "render", "--type", "Primary", "--label", "A", "--platform", "electron")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "height: 28px") {
		t.Errorf("--platform should override the config:\n%s", out)
	}
}

func TestVariantsCommand(t *testing.T) {
	out, err := run(t, "variants")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"TYPE", "SecondaryLabelOnTerminal", "PrimaryColoredBackgroundPurple"} {
		if !strings.Contains(out, want) {
			t.Errorf("variants table missing %q", want)
		}
	}

	out, err = run(t, "variants", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got []server.VariantInfo
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("variants --json is not JSON: %v", err)
	}
	if len(got) != len(button.Supported()) {
		t.Errorf("variants --json = %d entries, want %d", len(got), len(button.Supported()))
	}
	want := server.VariantInfo{Type: "Secondary", Mode: "Terminal", ContainerKey: "SecondaryOnTerminal", LabelKey: "SecondaryLabelOnTerminal"}
	found := false
	for _, v := range got {
		if v == want {
			found = true
		}
	}
	if !found {
		t.Errorf("variants --json missing %+v", want)
	}
}

func TestPreviewCommand(t *testing.T) {
	out, err := run(t, "preview", "--type", "Danger", "--state", "default")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Danger/default") || !strings.Contains(out, "Danger") {
		t.Errorf("preview output:\n%s", out)
	}
	if strings.Contains(out, "Danger/small") {
		t.Error("--state should filter to one state")
	}

	if _, err := run(t, "preview", "--type", "Wallet", "--mode", "Red"); err == nil {
		t.Error("preview with no matching entry should fail")
	}
}

func TestExportRequiresBucket(t *testing.T) {
	_, err := run(t, "export")
	if !stderrors.Is(err, errors.New(errors.CodeInvalidConfig)) {
		t.Errorf("export without bucket error = %v, want E110", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version --short = %q, want %q", out, version)
	}
}
