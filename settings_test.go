package vtterm

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs := &FileSettings{dir: dir, values: make(map[string]string)}

	if got := fs.SettingsValue("shell"); got != "" {
		t.Fatalf("expected empty value before set, got %q", got)
	}

	fs.SetSettingsValue("shell", "/bin/zsh")
	if got := fs.SettingsValue("shell"); got != "/bin/zsh" {
		t.Errorf("expected /bin/zsh, got %q", got)
	}

	reloaded := &FileSettings{dir: fs.dir, values: make(map[string]string)}
	reloaded.load()
	if got := reloaded.SettingsValue("shell"); got != "/bin/zsh" {
		t.Errorf("expected persisted value after reload, got %q", got)
	}
}

func TestFileSettingsBellAndTitleCallbacks(t *testing.T) {
	dir := t.TempDir()
	fs := &FileSettings{dir: dir, values: make(map[string]string)}

	var rang bool
	var lastTitle string
	fs.OnBell = func() { rang = true }
	fs.OnTitleChange = func(title string) { lastTitle = title }

	fs.BellAlert()
	fs.SetWindowTitle("session one")

	if !rang {
		t.Error("expected OnBell to be invoked")
	}
	if lastTitle != "session one" {
		t.Errorf("expected title callback to capture 'session one', got %q", lastTitle)
	}
}

func TestFileSettingsConfigPathServesMenuXML(t *testing.T) {
	dir := t.TempDir()
	fs := &FileSettings{dir: dir, values: make(map[string]string)}

	if err := os.WriteFile(filepath.Join(dir, "menu.xml"), []byte("<menu/>"), 0644); err != nil {
		t.Fatal(err)
	}

	term := NewTerminal(WithHostServices(fs))
	term.SetTermSize(10, 4)
	if got := term.GetUserMenuXML(); got != "<menu/>" {
		t.Errorf("expected menu.xml contents via ConfigPath, got %q", got)
	}
}
