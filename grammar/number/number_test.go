package number

import (
	"errors"
	"strconv"
	"testing"

	"github.com/dhamidi/byteparse/parse"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Number
	}{
		{"1.23", Float(1.23)},
		{"-32.1", Float(-32.1)},
		{"42", Uint(42)},
		{"420", Uint(420)},
		{"-42", Integer(-42)},
		{"0", Uint(0)},
		{"7.", Float(7)},
		{"18446744073709551615", Uint(18446744073709551615)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{".42", ErrSyntax},
		{"-", ErrSyntax},
		{"", ErrSyntax},
		{"-.5", ErrSyntax},
		{"5.42 ", ErrTrailing},
		{"12abc", ErrTrailing},
		{"1.2.3", ErrTrailing},
		{"18446744073709551616", strconv.ErrRange},
		{"-9223372036854775809", strconv.ErrRange},
		{"1\xff", parse.ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) = %#v, %v, want error %v", tt.input, got, err, tt.want)
			}
		})
	}
}

func TestFromParserLeavesCursorAfterLiteral(t *testing.T) {
	p := parse.NewBytesParser([]byte("12abc"))
	n, err := FromParser(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != Uint(12) {
		t.Errorf("FromParser() = %#v, want Uint(12)", n)
	}
	if p.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", p.Offset())
	}
}

func TestFromParserOnSegments(t *testing.T) {
	p := parse.NewBytesParser([]byte("1,-2,3.5"))

	var got []Number
	p.Split(',').ForEach(func(seg *parse.Segment) {
		n, err := FromParser(seg)
		if err != nil {
			t.Fatalf("FromParser() error = %v", err)
		}
		if err := seg.ExpectEnd(); err != nil {
			t.Fatalf("segment not exhausted: %v", err)
		}
		got = append(got, n)
	})

	want := []Number{Uint(1), Integer(-2), Float(3.5)}
	if len(got) != len(want) {
		t.Fatalf("got %d numbers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("number %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestFromParserRetryFromCheckpoint(t *testing.T) {
	p := parse.MustStrParser("-x")
	cp := p.Checkpoint()

	if _, err := FromParser(p); !errors.Is(err, ErrSyntax) {
		t.Fatalf("FromParser() error = %v, want ErrSyntax", err)
	}
	p.Restore(cp)
	if b, _ := p.Peek(); b != '-' {
		t.Errorf("Peek() after Restore = %q, want '-'", b)
	}
}
