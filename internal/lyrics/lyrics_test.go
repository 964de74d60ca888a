package lyrics

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoad_SkipsBlanksAndHeaders(t *testing.T) {
	input := `[Verse 1]
Yana yana sevdik bazen

Unutulup gidenin ardından

[Chorus]
  Yana yana
`

	got, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{
		"Yana yana sevdik bazen",
		"Unutulup gidenin ardından",
		"Yana yana",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoad_PreservesOrder(t *testing.T) {
	input := "c line\na line\nb line\n"

	got, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"c line", "a line", "b line"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestLoad_Empty(t *testing.T) {
	got, err := Load(strings.NewReader("\n\n[Bridge]\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load = %v, want nothing usable", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrics.txt")
	if err := os.WriteFile(path, []byte("Yana yana\nSevdik bazen\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d lines, want 2", len(got))
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("LoadFile accepted a missing file")
	}
}
