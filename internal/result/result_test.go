package result

import (
	"fmt"
	"strings"
	"testing"

	"github.com/nimbus-shell/launcher/internal/launcher"
)

func window(n uint32) *[2]uint32 {
	w := [2]uint32{0, n}
	return &w
}

func TestRankPartitionsWindowedFirst(t *testing.T) {
	list := make([]launcher.SearchResult, 12)
	windowed := map[int]bool{2: true, 5: true, 9: true}
	for i := range list {
		list[i] = launcher.SearchResult{ID: uint32(i), Name: fmt.Sprintf("item-%d", i)}
		if windowed[i] {
			list[i].Window = window(uint32(i))
		}
	}
	ranked := Rank(list)
	if len(ranked) != MaxVisible {
		t.Fatalf("expected %d results, got %d", MaxVisible, len(ranked))
	}
	want := []uint32{2, 5, 9, 0, 1, 3, 4, 6, 7, 8}
	for i, id := range want {
		if ranked[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, ranked[i].ID)
		}
	}
}

func TestRankPreservesOrderWithoutWindows(t *testing.T) {
	list := []launcher.SearchResult{{ID: 9}, {ID: 3}, {ID: 7}}
	ranked := Rank(list)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	for i, id := range []uint32{9, 3, 7} {
		if ranked[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, ranked[i].ID)
		}
	}
}

func TestRankLeavesInputUntouched(t *testing.T) {
	list := []launcher.SearchResult{{ID: 0}, {ID: 1, Window: window(1)}}
	Rank(list)
	if list[0].ID != 0 || list[1].ID != 1 {
		t.Fatalf("input order changed: %#v", list)
	}
}

func TestPresentSwapsForWindowedResults(t *testing.T) {
	plain := launcher.SearchResult{Name: "Firefox", Description: "Web Browser"}
	p := Present(plain)
	if p.Primary != "Firefox" || p.Secondary != "Web Browser" {
		t.Fatalf("unexpected presentation: %#v", p)
	}

	open := launcher.SearchResult{Name: "Firefox", Description: "Mozilla Firefox", Window: window(1)}
	p = Present(open)
	if p.Primary != "Mozilla Firefox" || p.Secondary != "Firefox" {
		t.Fatalf("expected swapped fields, got %#v", p)
	}
}

func TestPresentClipsLongLines(t *testing.T) {
	long := strings.Repeat("x", 80)
	p := Present(launcher.SearchResult{Name: long, Description: long})
	if p.Primary != strings.Repeat("x", 45)+"..." {
		t.Fatalf("primary not clipped with marker: %q", p.Primary)
	}
	if p.Secondary != strings.Repeat("x", 60) {
		t.Fatalf("secondary not clipped plain: %q", p.Secondary)
	}
}

func TestPresentCarriesIconReferences(t *testing.T) {
	item := launcher.SearchResult{
		Name:         "Files",
		Icon:         &launcher.IconSource{Name: "system-file-manager"},
		CategoryIcon: &launcher.IconSource{Mime: "inode/directory"},
	}
	p := Present(item)
	if p.Icon != "system-file-manager" || p.Category != "inode/directory" {
		t.Fatalf("icon references lost: %#v", p)
	}
}
