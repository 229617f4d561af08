package helper

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dasar", "Academia San Martín", "academia-san-martín"},
		{"trim & kapital", "  Instituto NORTE  ", "instituto-norte"},
		{"simbol jadi dash", "Taller #1 (Robótica)", "taller-1-robótica"},
		{"dash beruntun di-collapse", "a -- b", "a-b"},
		{"dash ujung dibuang", "---hola---", "hola"},
		{"angka dipertahankan", "Grupo 2026", "grupo-2026"},
		{"kosong", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateSlug(tt.in); got != tt.want {
				t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateSlugMaxLen(t *testing.T) {
	long := strings.Repeat("a", DefaultSlugMaxLen+50)
	got := GenerateSlug(long)
	if len(got) > DefaultSlugMaxLen {
		t.Errorf("len = %d, want <= %d", len(got), DefaultSlugMaxLen)
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Errorf("slug %q tidak boleh diawali/diakhiri dash", got)
	}
}
