package util

import "testing"

func TestPtrDeref(t *testing.T) {
	p := Ptr("external")
	if *p != "external" {
		t.Errorf("unexpected value: %s", *p)
	}
	if Deref(p) != "external" {
		t.Errorf("unexpected deref: %s", Deref(p))
	}
	var nilp *int
	if Deref(nilp) != 0 {
		t.Error("expected zero value for nil pointer")
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "/_bulk", "/other"); got != "/_bulk" {
		t.Errorf("unexpected value: %s", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("expected zero, got %d", got)
	}
}

func TestStringInSlice(t *testing.T) {
	external := []string{"external", "external_gt", "external_gte"}
	if !StringInSlice("external_gt", external) {
		t.Error("expected match")
	}
	if StringInSlice("internal", external) {
		t.Error("unexpected match")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"20MB", 20 * 1024 * 1024},
		{"512KB", 512 * 1024},
		{"1GB", 1024 * 1024 * 1024},
		{"4096", 4096},
		{"", 99},
		{"garbage", 99},
	}
	for _, tt := range tests {
		if got := ParseSize(tt.in, 99); got != tt.want {
			t.Errorf("ParseSize(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("supersecret", 4); got != "supe***" {
		t.Errorf("unexpected mask: %s", got)
	}
	if got := MaskSecret("ab", 4); got != "***" {
		t.Errorf("unexpected mask: %s", got)
	}
}
