package vtterm

import "testing"

func TestGrabURLsFromBuffer(t *testing.T) {
	term := newTestTerminal(40, 4)
	term.PutString("see https://example.com/path?q=1 and http://foo.bar.", false)

	urls := term.GrabURLsFromBuffer()
	if len(urls) != 2 {
		t.Fatalf("expected 2 urls, got %d: %v", len(urls), urls)
	}
	if urls[0] != "https://example.com/path?q=1" {
		t.Errorf("unexpected first url: %q", urls[0])
	}
	if urls[1] != "http://foo.bar" {
		t.Errorf("expected trailing period trimmed, got %q", urls[1])
	}
}

func TestGrabURLsDeduplicates(t *testing.T) {
	term := newTestTerminal(60, 4)
	term.PutString("https://x.test https://x.test", false)
	urls := term.GrabURLsFromBuffer()
	if len(urls) != 1 {
		t.Errorf("expected deduplicated single url, got %v", urls)
	}
}

func TestGrabURLsFromBufferSkipsScrollbackByDefault(t *testing.T) {
	term := newTestTerminal(40, 2)
	term.PutString("https://scrolled-off.test\r\n", false)
	term.PutString("second\r\nthird\r\n", false)

	urls := term.GrabURLsFromBuffer()
	for _, u := range urls {
		if u == "https://scrolled-off.test" {
			t.Fatalf("expected scrollback excluded without gen/grabUrlsFromBackbuffer setting, got %v", urls)
		}
	}
}

type settingsStub struct {
	NoopHostServices
	values map[string]string
}

func (s *settingsStub) SettingsValue(key string) string { return s.values[key] }

func TestGrabURLsFromBufferIncludesScrollbackWhenSettingEnabled(t *testing.T) {
	host := &settingsStub{values: map[string]string{"gen/grabUrlsFromBackbuffer": "true"}}
	term := NewTerminal(WithHostServices(host))
	term.SetTermSize(40, 2)
	term.PutString("https://scrolled-off.test\r\n", false)
	term.PutString("second\r\nthird\r\n", false)

	urls := term.GrabURLsFromBuffer()
	found := false
	for _, u := range urls {
		if u == "https://scrolled-off.test" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected scrollback URL included when setting is true, got %v", urls)
	}
}
