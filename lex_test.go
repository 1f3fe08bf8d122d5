package calculator

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		wseof  string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", "", []lexToken{{kind: tokenEOF, pos: 1}}, 0},
		{" \t ", "", []lexToken{{kind: tokenEOF, pos: 4}}, 0},
		// numbers
		{"0", "", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"9876543210", "", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 11}}, 0},
		{"1 0", "", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"1.5", "", []lexToken{{text: "1.5", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 4}}, 0},
		{".5", "", []lexToken{{text: ".5", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{"5.", "", []lexToken{{text: "5.", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{".", "", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 2}}, 1},
		{"1.2.3", "", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 6}}, 1},
		{"1..", "", []lexToken{{pos: 1}, {kind: tokenEOF, pos: 4}}, 1},
		// operators
		{"1+0", "", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
		{"2 ^ 3", "", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "^", kind: tokenOp, pos: 3}, {text: "3", kind: tokenNum, pos: 5}, {kind: tokenEOF, pos: 6}}, 0},
		{"--", "", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {kind: tokenEOF, pos: 3}}, 0},
		// unknown symbols are operators too
		{"1x", "", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "x", kind: tokenOp, pos: 2}, {kind: tokenEOF, pos: 3}}, 0},
		{"a$", "", []lexToken{{text: "a", kind: tokenOp, pos: 1}, {text: "$", kind: tokenOp, pos: 2}, {kind: tokenEOF, pos: 3}}, 0},
		{"π", "", []lexToken{{text: "π", kind: tokenOp, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		// stop runes
		{"1\n2", "\n", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 2}}, 0},
		{"1 \n2", "\n", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {kind: tokenEOF, pos: 3}}, 0},
		{"1\t2", "\n", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "2", kind: tokenNum, pos: 3}, {kind: tokenEOF, pos: 4}}, 0},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next(c.wseof)
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
			if err != nil {
				if c.errs > 0 {
					c.errs--
					if !errors.Is(err, ErrMalformed) {
						t.Errorf("scanning %q: error %v does not unwrap to ErrMalformed", c.src, err)
					}
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		if got, err := scan.next(c.wseof); err != io.EOF {
			t.Errorf("scanning %q: extra token %s with error: %v", c.src, spew.Sdump(got), err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexErrorCol(t *testing.T) {
	cases := []struct {
		src  string
		text string
		col  int
	}{
		{".", ".", 2},
		{"1.2.3", "1.2.3", 6},
		{"4 + ..5", "..5", 8},
		{"..+1", "..", 3},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var err error
		for err == nil {
			var tok lexToken
			tok, err = scan.next("")
			if tok.kind == tokenEOF {
				t.Fatalf("scanning %q: no error", c.src)
			}
		}
		var le *LexError
		if !errors.As(err, &le) {
			t.Fatalf("scanning %q: wrong error type %T", c.src, err)
		}
		if le.Text != c.text {
			t.Errorf("scanning %q: want error text %q, got %q", c.src, c.text, le.Text)
		}
		if le.Pos() != c.col {
			t.Errorf("scanning %q: want error column %d, got %d", c.src, c.col, le.Pos())
		}
		if !strings.Contains(le.Error(), "number") {
			t.Errorf("scanning %q: error %q doesn't mention number", c.src, le.Error())
		}
	}
}
