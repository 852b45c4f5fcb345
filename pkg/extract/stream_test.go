package extract

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

// trickleWriter accepts at most max bytes per call.
type trickleWriter struct {
	buf     bytes.Buffer
	max     int
	errored bool // report io.ErrShortWrite on partial writes
	calls   int
}

func (w *trickleWriter) Write(p []byte) (int, error) {
	w.calls++
	n := min(len(p), w.max)
	w.buf.Write(p[:n])
	if n < len(p) && w.errored {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// failingWriter accepts limit bytes, then fails.
type failingWriter struct {
	buf   bytes.Buffer
	limit int
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	room := w.limit - w.buf.Len()
	if room <= 0 {
		return 0, w.err
	}
	n := min(room, len(p))
	w.buf.Write(p[:n])
	if n < len(p) {
		return n, w.err
	}
	return n, nil
}

type stallWriter struct{}

func (stallWriter) Write([]byte) (int, error) { return 0, nil }

func TestCopy(t *testing.T) {
	content := "a\nbb\nccc\n"
	lengths := LineLengths{2, 3, 4}

	tests := []struct {
		name string
		rng  LineRange
		skip int64
		want string
	}{
		{"all lines", LineRange{0, 3}, 0, content},
		{"first two", LineRange{0, 2}, 0, "a\nbb\n"},
		{"last one", LineRange{2, 3}, 5, "ccc\n"},
		{"middle", LineRange{1, 2}, 2, "bb\n"},
		{"empty", LineRange{1, 1}, 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := strings.NewReader(content)
			if _, err := src.Seek(tt.skip, io.SeekStart); err != nil {
				t.Fatal(err)
			}

			var dst bytes.Buffer
			n, err := Copy(src, &dst, lengths, tt.rng)
			if err != nil {
				t.Fatalf("Copy() error = %v", err)
			}
			if dst.String() != tt.want {
				t.Errorf("output = %q, want %q", dst.String(), tt.want)
			}
			if n != int64(len(tt.want)) {
				t.Errorf("written = %d, want %d", n, len(tt.want))
			}
		})
	}
}

func TestCopy_UnterminatedFinalLine(t *testing.T) {
	content := "one\ntwo"
	var dst bytes.Buffer
	if _, err := Copy(strings.NewReader(content), &dst, LineLengths{4, 3}, LineRange{0, 2}); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}
	if dst.String() != content {
		t.Errorf("output = %q, want %q", dst.String(), content)
	}
}

func TestCopy_ContinuesPartialWrites(t *testing.T) {
	content := "first line\nsecond line\n"
	lengths := LineLengths{11, 12}

	for _, errored := range []bool{false, true} {
		w := &trickleWriter{max: 3, errored: errored}
		n, err := Copy(strings.NewReader(content), w, lengths, LineRange{0, 2})
		if err != nil {
			t.Fatalf("Copy() error = %v (errored=%v)", err, errored)
		}
		if w.buf.String() != content {
			t.Errorf("output = %q, want %q", w.buf.String(), content)
		}
		if n != int64(len(content)) {
			t.Errorf("written = %d, want %d", n, len(content))
		}
		if w.calls <= 2 {
			t.Errorf("calls = %d, want partial writes to be continued", w.calls)
		}
	}
}

func TestCopy_WriteFailure(t *testing.T) {
	diskFull := errors.New("no space left on device")
	w := &failingWriter{limit: 4, err: diskFull}

	n, err := Copy(strings.NewReader("a\nbb\nccc\n"), w, LineLengths{2, 3, 4}, LineRange{0, 3})
	if !errors.Is(err, diskFull) {
		t.Fatalf("Copy() error = %v, want %v", err, diskFull)
	}

	var ioe *IOError
	if !errors.As(err, &ioe) || ioe.Op != "write" {
		t.Errorf("error = %v, want write IOError", err)
	}
	if n != 4 {
		t.Errorf("written = %d, want 4", n)
	}
	if w.buf.String() != "a\nbb" {
		t.Errorf("prefix = %q, want %q", w.buf.String(), "a\nbb")
	}
}

func TestCopy_WriterStalls(t *testing.T) {
	_, err := Copy(strings.NewReader("a\n"), stallWriter{}, LineLengths{2}, LineRange{0, 1})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Errorf("Copy() error = %v, want io.ErrShortWrite", err)
	}
}

func TestCopy_SourceShorterThanIndex(t *testing.T) {
	var dst bytes.Buffer
	_, err := Copy(strings.NewReader("a\nb"), &dst, LineLengths{2, 5}, LineRange{0, 2})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Copy() error = %v, want io.ErrUnexpectedEOF", err)
	}

	var ioe *IOError
	if !errors.As(err, &ioe) || ioe.Op != "read" {
		t.Errorf("error = %v, want read IOError", err)
	}
	if dst.String() != "a\n" {
		t.Errorf("output = %q, want %q", dst.String(), "a\n")
	}
}

func TestCopy_InvalidRange(t *testing.T) {
	lengths := LineLengths{1, 1}
	for _, rng := range []LineRange{{-1, 1}, {2, 1}, {0, 3}} {
		var dst bytes.Buffer
		_, err := Copy(strings.NewReader("a\nb\n"), &dst, lengths, rng)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Copy(%v) error = %v, want ErrInvalidArgument", rng, err)
		}
		if dst.Len() != 0 {
			t.Errorf("Copy(%v) wrote %d bytes", rng, dst.Len())
		}
	}
}
