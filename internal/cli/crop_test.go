package cli

import (
	"testing"

	"github.com/gogpu/blit"
)

func TestParseRect(t *testing.T) {
	off, size, err := parseRect("10, 20, 30, 40")
	if err != nil {
		t.Fatalf("parseRect: %v", err)
	}
	if off != blit.Pt(10, 20) {
		t.Errorf("offset = %v, want (10,20)", off)
	}
	if size != blit.Sz(30, 40) {
		t.Errorf("size = %v, want 30x40", size)
	}

	for _, bad := range []string{"", "1,2,3", "1,2,3,4,5", "a,2,3,4"} {
		if _, _, err := parseRect(bad); err == nil {
			t.Errorf("parseRect(%q) succeeded, want error", bad)
		}
	}
}
