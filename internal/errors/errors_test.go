package errors

import (
	"strings"
	"testing"

	"github.com/purrlang/purr/internal/lexer"
)

func TestFormatWithSourceContext(t *testing.T) {
	source := "a = 1\nprintln missing\nb = 2"
	d := New(
		lexer.Position{Line: 2, Column: 9},
		lexer.Position{Line: 2, Column: 16},
		`name "missing" is not defined`,
		source,
		"script.purr",
	)

	out := d.Format(false)

	if !strings.Contains(out, "Error in script.purr:2:9") {
		t.Errorf("missing header in:\n%s", out)
	}
	if !strings.Contains(out, "println missing") {
		t.Errorf("missing source line in:\n%s", out)
	}
	if !strings.Contains(out, "^^^^^^^") {
		t.Errorf("missing caret underline in:\n%s", out)
	}
	if !strings.Contains(out, "not defined") {
		t.Errorf("missing message in:\n%s", out)
	}
}

func TestFormatWithoutFile(t *testing.T) {
	d := New(
		lexer.Position{Line: 1, Column: 1},
		lexer.Position{Line: 1, Column: 2},
		"boom", "x", "",
	)
	out := d.Format(false)
	if !strings.Contains(out, "Error at line 1:1") {
		t.Errorf("unexpected header:\n%s", out)
	}
}

func TestFormatOutOfRangeLine(t *testing.T) {
	d := New(
		lexer.Position{Line: 99, Column: 1},
		lexer.Position{Line: 99, Column: 2},
		"boom", "one line only", "f.purr",
	)
	out := d.Format(false)
	// No source context; header and message only.
	if strings.Contains(out, "|") {
		t.Errorf("unexpected source context:\n%s", out)
	}
}

func TestFromStringErrors(t *testing.T) {
	diags := FromStringErrors([]string{"1:2: bad", "3:4: worse"}, "src", "f.purr")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics", len(diags))
	}

	out := FormatErrors(diags, false)
	if !strings.Contains(out, "1:2: bad") || !strings.Contains(out, "3:4: worse") {
		t.Errorf("messages missing from:\n%s", out)
	}
}
