package editor

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestEditWritesTemplateWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.md")

	b := New("vim")
	var launched *exec.Cmd
	b.run = func(cmd *exec.Cmd) error {
		launched = cmd
		return nil
	}

	if err := b.Edit(path, "# Template\n"); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("template not written: %v", err)
	}
	if string(data) != "# Template\n" {
		t.Errorf("template content = %q", data)
	}
	if launched == nil {
		t.Fatal("editor was not launched")
	}
	if got := launched.Args[len(launched.Args)-1]; got != path {
		t.Errorf("editor arg = %q, want %q", got, path)
	}
}

func TestEditKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing.md")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := New("vim")
	b.run = func(cmd *exec.Cmd) error { return nil }

	if err := b.Edit(path, "# Template\n"); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "original" {
		t.Errorf("existing content overwritten: %q", data)
	}
}

func TestEditCompoundEditorGoesThroughShell(t *testing.T) {
	b := New("code --wait")
	var launched *exec.Cmd
	b.run = func(cmd *exec.Cmd) error {
		launched = cmd
		return nil
	}

	path := filepath.Join(t.TempDir(), "a.md")
	if err := b.Edit(path, ""); err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if launched.Args[0] != "sh" || launched.Args[1] != "-c" {
		t.Errorf("compound editor args = %v, want sh -c ...", launched.Args)
	}
	if !strings.Contains(launched.Args[2], "code --wait") {
		t.Errorf("shell command = %q", launched.Args[2])
	}
}

func TestEditLaunchFailure(t *testing.T) {
	b := New("definitely-not-an-editor-2u8f")

	path := filepath.Join(t.TempDir(), "a.md")
	err := b.Edit(path, "")
	if err == nil {
		t.Fatal("expected launch error")
	}
	if !strings.Contains(err.Error(), "failed to launch editor") {
		t.Errorf("error = %v", err)
	}
}

func TestContentAdded(t *testing.T) {
	template := strings.Repeat("x", 100)

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"real content added", template + strings.Repeat("y", 50), true},
		{"template untouched", template, false},
		{"blank file", "   \n\t\n", false},
		{"mostly deleted", strings.Repeat("x", 30), false},
		{"just over half", strings.Repeat("x", 51), true},
		{"exactly half", strings.Repeat("x", 50), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContentAdded(tt.content, template); got != tt.want {
				t.Errorf("ContentAdded(len %d, len %d) = %v, want %v",
					len(tt.content), len(template), got, tt.want)
			}
		})
	}
}
