package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/ccollicutt/fileutil/pkg/extract"
)

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewTextFormatter() returned nil")
	}
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	report := NewReport("sample.txt", "/tmp/out/sample.txt", extract.FirstN(2), extract.LineRange{Start: 0, End: 2}, 5)

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if buf.String() != "copy successful\n" {
		t.Errorf("output = %q, want %q", buf.String(), "copy successful\n")
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})
	report := NewReport("sample.txt", "/tmp/out/sample.txt", extract.LastN(1), extract.LineRange{Start: 2, End: 3}, 4)

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "copy successful\n") {
		t.Error("Output missing confirmation")
	}
	if !strings.Contains(output, "lines 3-3, 4 bytes (last 1)") {
		t.Errorf("Output missing range details: %q", output)
	}
}

func TestTextFormatter_Format_VerboseEmpty(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})
	report := NewReport("empty.txt", "out/empty.txt", extract.Default(), extract.LineRange{}, 0)

	var buf bytes.Buffer
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "no lines (default)") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"text", "json"} {
		f, err := New(name, FormatOptions{})
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("Name() = %q, want %q", f.Name(), name)
		}
	}

	if _, err := New("xml", FormatOptions{}); err == nil {
		t.Error("New(xml) expected error")
	}
}
