package vtterm

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileSettings is a HostServices adapter that persists settings as a JSON
// document under the user's config directory, grounded on
// javanhut-RavenTerminal/config/config.go's Load/Save convention. Bell and
// title notifications and selection-finished are forwarded to an optional
// RendererPort-independent callback set; embedders that need those need
// only wrap FileSettings or implement HostServices directly.
type FileSettings struct {
	mu     sync.Mutex
	dir    string
	values map[string]string

	OnBell             func()
	OnTitleChange       func(title string)
	OnSelectionFinished func()
}

// NewFileSettings constructs a FileSettings adapter rooted at the user's
// config directory ("~/.config/vtterm"), holding both the settings
// document ("settings.json") and anything else the host keeps there (e.g.
// "menu.xml", read by Terminal.GetUserMenuXML via ConfigPath). When
// os.UserHomeDir fails it falls back to a relative "vtterm-settings"
// directory, matching the teacher's fallback.
func NewFileSettings() *FileSettings {
	fs := &FileSettings{dir: defaultConfigDir(), values: make(map[string]string)}
	fs.load()
	return fs
}

func defaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "vtterm-settings"
	}
	dir := filepath.Join(home, ".config", "vtterm")
	os.MkdirAll(dir, 0755)
	return dir
}

func (f *FileSettings) settingsPath() string {
	return filepath.Join(f.dir, "settings.json")
}

func (f *FileSettings) load() {
	data, err := os.ReadFile(f.settingsPath())
	if err != nil {
		return
	}
	var values map[string]string
	if json.Unmarshal(data, &values) == nil {
		f.values = values
	}
}

func (f *FileSettings) save() {
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return
	}
	os.WriteFile(f.settingsPath(), data, 0644)
}

// ConfigPath implements HostServices, returning the host's config
// directory (not a specific file) — grounded on the original's
// iUtil->configPath(), which GetUserMenuXML appends "/menu.xml" to.
func (f *FileSettings) ConfigPath() string {
	return f.dir
}

// SettingsValue implements HostServices, returning "" for unknown keys.
func (f *FileSettings) SettingsValue(key string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

// SetSettingsValue stores a key and persists the document immediately.
func (f *FileSettings) SetSettingsValue(key, value string) {
	f.mu.Lock()
	f.values[key] = value
	f.mu.Unlock()
	f.save()
}

// BellAlert implements HostServices.
func (f *FileSettings) BellAlert() {
	if f.OnBell != nil {
		f.OnBell()
	}
}

// SetWindowTitle implements HostServices.
func (f *FileSettings) SetWindowTitle(title string) {
	if f.OnTitleChange != nil {
		f.OnTitleChange(title)
	}
}

// SelectionFinished implements HostServices.
func (f *FileSettings) SelectionFinished() {
	if f.OnSelectionFinished != nil {
		f.OnSelectionFinished()
	}
}

var _ HostServices = (*FileSettings)(nil)
