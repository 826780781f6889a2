package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PostProcessing.InputMethod != "direct-key" {
		t.Errorf("default input_method = %q, want direct-key", cfg.PostProcessing.InputMethod)
	}
	if cfg.PostProcessing.WritingKeyPressDelay != 0 {
		t.Errorf("default delay = %v, want 0", cfg.PostProcessing.WritingKeyPressDelay)
	}
	if cfg.PostProcessing.TypeCommand != "ydotool" {
		t.Errorf("default type_command = %q, want ydotool", cfg.PostProcessing.TypeCommand)
	}
	if cfg.PostProcessing.StreamCommand != "dotool" {
		t.Errorf("default stream_command = %q, want dotool", cfg.PostProcessing.StreamCommand)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PostProcessing.InputMethod != "direct-key" {
		t.Errorf("got %q, want defaults", cfg.PostProcessing.InputMethod)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[post_processing]
input_method = "clipboard"
writing_key_press_delay = 0.05
type_command = "wtype"
stream_command = "dotoolc"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PostProcessing.InputMethod != "clipboard" {
		t.Errorf("input_method = %q", cfg.PostProcessing.InputMethod)
	}
	if cfg.PostProcessing.WritingKeyPressDelay != 0.05 {
		t.Errorf("delay = %v", cfg.PostProcessing.WritingKeyPressDelay)
	}
	if cfg.PostProcessing.TypeCommand != "wtype" {
		t.Errorf("type_command = %q", cfg.PostProcessing.TypeCommand)
	}
	if cfg.PostProcessing.StreamCommand != "dotoolc" {
		t.Errorf("stream_command = %q", cfg.PostProcessing.StreamCommand)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[post_processing]
input_method = "external-stream"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PostProcessing.InputMethod != "external-stream" {
		t.Errorf("input_method = %q", cfg.PostProcessing.InputMethod)
	}
	if cfg.PostProcessing.StreamCommand != "dotool" {
		t.Errorf("stream_command = %q, want default dotool", cfg.PostProcessing.StreamCommand)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, `[post_processing`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateNegativeDelay(t *testing.T) {
	cfg := Default()
	cfg.PostProcessing.WritingKeyPressDelay = -0.1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "writing_key_press_delay") {
		t.Errorf("error does not name the key: %v", err)
	}
}

func TestValidateEmptyCommands(t *testing.T) {
	cfg := Default()
	cfg.PostProcessing.TypeCommand = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty type_command")
	}
	cfg = Default()
	cfg.PostProcessing.StreamCommand = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty stream_command")
	}
}

func TestDelayConversion(t *testing.T) {
	pp := PostProcessing{WritingKeyPressDelay: 0.05}
	if got := pp.Delay(); got != 50*time.Millisecond {
		t.Errorf("Delay() = %v, want 50ms", got)
	}
	pp.WritingKeyPressDelay = 0
	if got := pp.Delay(); got != 0 {
		t.Errorf("Delay() = %v, want 0", got)
	}
}

func TestResolvePathFlag(t *testing.T) {
	got, err := ResolvePath("/etc/quill/config.toml")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/etc/quill/config.toml" {
		t.Errorf("got %q", got)
	}
}

func TestResolvePathFlagRelative(t *testing.T) {
	got, err := ResolvePath("conf/quill.toml")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(wd, "conf", "quill.toml"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePathEnv(t *testing.T) {
	t.Setenv("QUILL_CONFIG", "/tmp/quill-env.toml")
	got, err := ResolvePath("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/quill-env.toml" {
		t.Errorf("got %q", got)
	}
}

func TestResolvePathDefault(t *testing.T) {
	t.Setenv("QUILL_CONFIG", "")
	got, err := ResolvePath("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("expected non-empty default path")
	}
	if !strings.Contains(got, "quill") {
		t.Errorf("default path %q does not contain quill", got)
	}
}
