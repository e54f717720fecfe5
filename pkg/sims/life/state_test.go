package life

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"
)

func TestSerializeLayout(t *testing.T) {
	b := emptyBoard(t, 3, 2)
	b.Set(0, 0, true)
	b.Set(2, 1, true)

	if got, want := b.Serialize(), "100\n001\n"; got != want {
		t.Fatalf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 7}, {10, 10}, {17, 4}}
	for i, s := range sizes {
		b, err := New(s.w, s.h, 0.5, int64(i))
		if err != nil {
			t.Fatal(err)
		}
		loaded, err := Deserialize(b.Serialize())
		if err != nil {
			t.Fatalf("%dx%d: %v", s.w, s.h, err)
		}
		if loaded.Columns() != b.Columns() || loaded.Rows() != b.Rows() {
			t.Fatalf("dimensions changed: %dx%d -> %dx%d", b.Columns(), b.Rows(), loaded.Columns(), loaded.Rows())
		}
		if !slices.Equal(b.Cells(), loaded.Cells()) {
			t.Fatalf("%dx%d: cells changed in round trip", s.w, s.h)
		}
	}
}

func TestDeserializeAcceptsLineEndings(t *testing.T) {
	for _, text := range []string{"010\r\n111\r\n", "010\n111", "010\n111\n"} {
		b, err := Deserialize(text)
		if err != nil {
			t.Fatalf("%q: %v", text, err)
		}
		if b.Columns() != 3 || b.Rows() != 2 {
			t.Fatalf("%q: got %dx%d", text, b.Columns(), b.Rows())
		}
		if b.CountLiveCells() != 4 || b.Alive(0, 0) || !b.Alive(1, 0) {
			t.Fatalf("%q: wrong cells %v", text, b.Cells())
		}
	}
}

func TestDeserializeRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"blank line":    "\n",
		"short row":     "101\n10\n",
		"long row":      "10\n101\n",
		"blank row":     "11\n\n11\n",
		"bad character": "102\n",
		"star":          "1*1\n",
	}
	for name, text := range cases {
		if _, err := Deserialize(text); !errors.Is(err, ErrFormat) {
			t.Fatalf("%s: expected ErrFormat, got %v", name, err)
		}
	}
}

func TestSerializeRoundTripWideBoard(t *testing.T) {
	b, err := New(1<<20+1, 1, 0.5, 3)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := Deserialize(b.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Columns() != b.Columns() || loaded.Rows() != 1 {
		t.Fatalf("dimensions changed: got %dx%d", loaded.Columns(), loaded.Rows())
	}
	if !slices.Equal(loaded.Cells(), b.Cells()) {
		t.Fatal("cells changed in round trip")
	}
}

func TestReadBoardErrors(t *testing.T) {
	long := strings.Repeat("1", 1<<20+1) + "\n" + "1\n"
	if _, err := ReadBoard(strings.NewReader(long)); !errors.Is(err, ErrFormat) {
		t.Fatalf("ragged long row: expected ErrFormat, got %v", err)
	}
	bad := strings.Repeat("0", 1<<20+1) + "x\n"
	if _, err := ReadBoard(strings.NewReader(bad)); !errors.Is(err, ErrFormat) {
		t.Fatalf("long row with bad character: expected ErrFormat, got %v", err)
	}

	readErr := errors.New("disk gone")
	_, err := ReadBoard(iotest.ErrReader(readErr))
	if !errors.Is(err, ErrIO) || !errors.Is(err, readErr) {
		t.Fatalf("expected ErrIO wrapping the reader error, got %v", err)
	}
	_, err = ReadBoard(io.MultiReader(strings.NewReader("01\n"), iotest.ErrReader(readErr)))
	if !errors.Is(err, ErrIO) || errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrIO after a partial read, got %v", err)
	}
}

func TestWriteToMatchesSerialize(t *testing.T) {
	b, err := New(6, 4, 0.5, 11)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	n, err := b.WriteTo(&sb)
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != b.Serialize() || int(n) != sb.Len() {
		t.Fatalf("WriteTo wrote %d bytes %q", n, sb.String())
	}
}

func TestSaveAndLoadState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pause_state.txt")

	b := emptyBoard(t, 3, 3)
	b.Set(1, 1, true)
	if err := b.SaveState(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatal(err)
	}
	if !loaded.Alive(1, 1) || loaded.Alive(0, 0) {
		t.Fatalf("loaded board has wrong cells: %q", loaded.Serialize())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "000\n010\n000\n" {
		t.Fatalf("unexpected file contents %q", raw)
	}
}

func TestLoadStateErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadState(filepath.Join(dir, "missing.txt"))
	if !errors.Is(err, ErrIO) || !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrIO wrapping fs.ErrNotExist, got %v", err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadState(empty); !errors.Is(err, ErrFormat) {
		t.Fatalf("expected ErrFormat for empty file, got %v", err)
	}
}

func TestSaveStateUnwritable(t *testing.T) {
	b := emptyBoard(t, 2, 2)
	path := filepath.Join(t.TempDir(), "missing-dir", "state.txt")
	if err := b.SaveState(path); !errors.Is(err, ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
