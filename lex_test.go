package scicalc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	eof := func(pos int) lexToken { return lexToken{kind: tokenEOF, pos: pos} }
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", []lexToken{eof(1)}, 0},
		{" \t \r\n ", []lexToken{eof(7)}, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}, eof(2)}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}, eof(11)}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}, eof(4)}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}, eof(4)}, 0},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}, eof(3)}, 0},
		{"1.", []lexToken{{text: "1.", kind: tokenNum, pos: 1}, eof(3)}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, eof(3)}, 0},
		{"1e1", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "e1", kind: tokenIdent, pos: 2}, eof(4)}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}, eof(6)}, 1},
		{".", []lexToken{{pos: 1}, eof(2)}, 1},
		{"..", []lexToken{{pos: 1}, eof(3)}, 1},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}, eof(4)}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}, eof(4)}, 0},
		// identifiers
		{"sin", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}, eof(4)}, 0},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}, eof(2)}, 0},
		{"_x1", []lexToken{{text: "_x1", kind: tokenIdent, pos: 1}, eof(4)}, 0},
		{"sin(", []lexToken{{text: "sin", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 4}, eof(5)}, 0},
		// operators
		{"+-*/^", []lexToken{
			{text: "+", kind: tokenOp, pos: 1},
			{text: "-", kind: tokenOp, pos: 2},
			{text: "*", kind: tokenOp, pos: 3},
			{text: "/", kind: tokenOp, pos: 4},
			{text: "^", kind: tokenOp, pos: 5},
			eof(6),
		}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}, eof(2)}, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}, eof(3)}, 1},
		{"$0", []lexToken{{pos: 1}, {text: "0", kind: tokenNum, pos: 2}, eof(3)}, 1},
		{"2%", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {pos: 2}, eof(3)}, 1},
		{"1,2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {pos: 2}, {text: "2", kind: tokenNum, pos: 3}, eof(4)}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}, eof(3)}, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
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
					if !errors.Is(err, ErrSyntax) {
						t.Errorf("scanning %q: error %v is not a syntax error", c.src, err)
					}
					continue
				}
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
		if c.errs > 0 {
			t.Errorf("scanning %q: not enough errors", c.src)
		}
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("1 2"))
	a, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	scan.push(a)
	b, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("pushed %v but got %v", a, b)
	}
	c, err := scan.next()
	if err != nil {
		t.Fatal(err)
	}
	if c.text != "2" || c.pos != 3 {
		t.Errorf("wrong token after push: %v", c)
	}
}

func TestLexDoublePush(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("double push did not panic")
		}
	}()
	scan := lex(strings.NewReader(""))
	scan.push(lexToken{kind: tokenNum, text: "1", pos: 1})
	scan.push(lexToken{kind: tokenNum, text: "1", pos: 1})
}
