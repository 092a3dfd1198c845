package launcher

import "testing"

func TestEncodeRequestForms(t *testing.T) {
	cases := []struct {
		req  Request
		want string
	}{
		{Close{}, `"Close"`},
		{Exit{}, `"Exit"`},
		{Search("fire"), `{"Search":"fire"}`},
		{Activate(3), `{"Activate":3}`},
		{Context(7), `{"Context":7}`},
		{ActivateContext{ID: 2, Option: 1}, `{"ActivateContext":{"id":2,"context":1}}`},
	}
	for _, tc := range cases {
		got, err := EncodeRequest(tc.req)
		if err != nil {
			t.Fatalf("encode %T: %v", tc.req, err)
		}
		if string(got) != tc.want {
			t.Fatalf("encode %T: got %s, want %s", tc.req, got, tc.want)
		}
	}
}

func TestDecodeCloseUnit(t *testing.T) {
	resp, err := DecodeResponse([]byte(`"Close"`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.(Closed); !ok {
		t.Fatalf("expected Closed, got %T", resp)
	}
}

func TestDecodeUpdateCarriesWindowFlag(t *testing.T) {
	line := `{"Update":[` +
		`{"id":0,"name":"Firefox","description":"Web Browser","icon":{"Name":"firefox"}},` +
		`{"id":1,"name":"term","description":"Alacritty","window":[0,42],"category_icon":{"Mime":"inode/directory"}}` +
		`]}`
	resp, err := DecodeResponse([]byte(line))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	update, ok := resp.(Update)
	if !ok {
		t.Fatalf("expected Update, got %T", resp)
	}
	if len(update) != 2 {
		t.Fatalf("expected 2 results, got %d", len(update))
	}
	if update[0].Windowed() {
		t.Fatalf("first result should not be windowed")
	}
	if !update[1].Windowed() || update[1].Window[1] != 42 {
		t.Fatalf("second result window not decoded: %#v", update[1].Window)
	}
	if update[0].Icon == nil || update[0].Icon.Value() != "firefox" {
		t.Fatalf("icon not decoded: %#v", update[0].Icon)
	}
	if update[1].CategoryIcon == nil || update[1].CategoryIcon.Mime != "inode/directory" {
		t.Fatalf("mime icon not decoded: %#v", update[1].CategoryIcon)
	}
}

func TestDecodeContextAndFill(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"Context":{"id":4,"options":[{"id":0,"name":"Open in Terminal"}]}}`))
	if err != nil {
		t.Fatalf("decode context: %v", err)
	}
	menu, ok := resp.(ContextMenu)
	if !ok {
		t.Fatalf("expected ContextMenu, got %T", resp)
	}
	if menu.ID != 4 || len(menu.Options) != 1 || menu.Options[0].Name != "Open in Terminal" {
		t.Fatalf("unexpected menu: %#v", menu)
	}

	resp, err = DecodeResponse([]byte(`{"Fill":"firefox "}`))
	if err != nil {
		t.Fatalf("decode fill: %v", err)
	}
	if fill, ok := resp.(Fill); !ok || string(fill) != "firefox " {
		t.Fatalf("unexpected fill: %#v", resp)
	}
}

func TestDecodeDesktopEntry(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"DesktopEntry":{"path":"/usr/share/applications/firefox.desktop","gpu_preference":"Default"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	entry, ok := resp.(DesktopEntry)
	if !ok {
		t.Fatalf("expected DesktopEntry, got %T", resp)
	}
	if entry.Path != "/usr/share/applications/firefox.desktop" {
		t.Fatalf("unexpected path %q", entry.Path)
	}
}

func TestDecodeRejectsUnknownAndMalformed(t *testing.T) {
	for _, line := range []string{``, `"Restart"`, `{"Nope":1}`, `{"Update":`} {
		if _, err := DecodeResponse([]byte(line)); err == nil {
			t.Fatalf("expected error for %q", line)
		}
	}
}
