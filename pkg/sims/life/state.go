package life

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	stateAlive = '1'
	stateDead  = '0'
)

// Serialize encodes the board as one line per row, '1' for alive and '0' for
// dead, rows top to bottom.
func (b *Board) Serialize() string {
	var sb strings.Builder
	sb.Grow(b.h * (b.w + 1))
	for y := 0; y < b.h; y++ {
		for _, c := range b.cur[y*b.w : (y+1)*b.w] {
			if c == 1 {
				sb.WriteByte(stateAlive)
			} else {
				sb.WriteByte(stateDead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the serialized board to w.
func (b *Board) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.Serialize())
	return int64(n), err
}

// Deserialize rebuilds a board from Serialize output. The column count comes
// from the first line; every other line must match it.
func Deserialize(text string) (*Board, error) {
	return ReadBoard(strings.NewReader(text))
}

// ReadBoard parses a serialized board from r.
func ReadBoard(r io.Reader) (*Board, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("%w: empty state", ErrFormat)
	}

	cols := len(lines[0])
	b := newBoard(cols, len(lines), 1, DefaultConfig().Seed)
	for y, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrFormat, y, len(line), cols)
		}
		for x := 0; x < cols; x++ {
			switch line[x] {
			case stateAlive:
				b.cur[y*cols+x] = 1
			case stateDead:
			default:
				return nil, fmt.Errorf("%w: row %d column %d: unexpected %q", ErrFormat, y, x, line[x])
			}
		}
	}
	return b, nil
}

// SaveState writes the serialized board to path, replacing any existing file.
func (b *Board) SaveState(path string) error {
	if err := os.WriteFile(path, []byte(b.Serialize()), 0o644); err != nil {
		return fmt.Errorf("%w: save state: %w", ErrIO, err)
	}
	return nil
}

// LoadState reads a board previously written by SaveState.
func LoadState(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: load state: %w", ErrIO, err)
	}
	defer f.Close()

	b, err := ReadBoard(f)
	if err != nil {
		return nil, fmt.Errorf("load state %s: %w", path, err)
	}
	return b, nil
}
