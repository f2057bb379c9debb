package wordlist

import (
	"strings"
	"testing"
)

func TestReadLinesTrimsCRLF(t *testing.T) {
	in := "car\r\ncart\r\ncats\r\n"
	got, err := ReadLines(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"car", "cart", "cats"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadLinesKeepsBlankLinesAsEmptyWords(t *testing.T) {
	got, err := ReadLines(strings.NewReader("a\n\nb\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"a", "", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReadLinesEmptyInput(t *testing.T) {
	got, err := ReadLines(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := ReadFile("/nonexistent/path/to/words.txt"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
