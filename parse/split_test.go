package parse

import (
	"strings"
	"testing"
)

func TestSplitNext(t *testing.T) {
	p := NewBytesParser([]byte("my byte str"))
	s := p.Split(' ')

	my, ok := s.Next()
	if !ok {
		t.Fatal("Next() = false for first segment")
	}
	for _, want := range []byte("my") {
		if got, _ := my.Advance(); got != want {
			t.Errorf("Advance() = %q, want %q", got, want)
		}
	}
	if _, ok := my.Advance(); ok {
		t.Error("first segment extends past the delimiter")
	}

	byteSeg, _ := s.Next()
	byteSeg.Advance()
	byteSeg.Advance()

	str, ok := s.Next()
	if !ok {
		t.Fatal("Next() = false for third segment")
	}
	if got := str.Record().MustConsumeToStr(); got != "str" {
		t.Errorf("third segment = %q, want %q", got, "str")
	}
	if _, ok := s.Next(); ok {
		t.Error("Next() after last segment = true")
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"words", "Hello World!", []string{"Hello", "World!"}},
		{"delimiter absent", "no-spaces", []string{"no-spaces"}},
		{"trailing delimiter", "a b ", []string{"a", "b", ""}},
		{"leading delimiter", " a", []string{"", "a"}},
		{"empty input", "", []string{""}},
		{"only delimiters", "  ", []string{"", "", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustStrParser(tt.input)
			got := MapAndCollect(p.Split(' '), func(seg *Segment) string {
				return seg.Record().MustConsumeToStr()
			})
			if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
				t.Errorf("segments = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitWithoutDelimiterRoundTrips(t *testing.T) {
	inputs := [][]byte{nil, []byte("x"), []byte("abc def"), {0, 1, 2, 255}}
	for _, input := range inputs {
		p := NewBytesParser(input)
		segs := MapAndCollect(p.Split('\n'), func(seg *Segment) []byte {
			return seg.Record().ConsumeToSlice()
		})
		if len(segs) != 1 {
			t.Fatalf("%q: got %d segments, want 1", input, len(segs))
		}
		if string(segs[0]) != string(input) {
			t.Errorf("%q: segment = %q", input, segs[0])
		}
	}
}

func TestSplitForEachCount(t *testing.T) {
	p := NewBytesParser([]byte("my byte str"))
	count := 0
	p.Split(' ').ForEach(func(*Segment) { count++ })
	if count != 3 {
		t.Errorf("ForEach visited %d segments, want 3", count)
	}
	if !p.Done() {
		t.Error("parser not at end after exhausting the splitter")
	}
}

func TestSplitIgnoresPartialConsumption(t *testing.T) {
	p := NewBytesParser([]byte("ab\raaa\r aab\raa"))

	p.Split(' ').ForEach(func(seg *Segment) {
		count := 0
		for {
			b, ok := seg.Advance()
			if !ok {
				break
			}
			if b == 'a' {
				count++
			}
		}
		if count != 4 {
			t.Errorf("segment has %d 'a' bytes, want 4", count)
		}
	})
}

func TestSplitMovesParent(t *testing.T) {
	p := NewBytesParser([]byte("one,two,three"))
	s := p.Split(',')

	seg, _ := s.Next()
	if p.Offset() != 4 {
		t.Errorf("parent Offset() after first segment = %d, want 4", p.Offset())
	}
	if start, end := seg.Bounds(); start != 0 || end != 3 {
		t.Errorf("Bounds() = %d, %d, want 0, 3", start, end)
	}
	s.Next()
	s.Next()
	if !p.Done() {
		t.Error("parent not at end after last segment")
	}
}

func TestSplitFromMidBuffer(t *testing.T) {
	p := NewBytesParser([]byte("header;a;b"))
	p.ConsumeUntilByte(';')
	p.Advance()

	got := MapAndCollect(p.Split(';'), func(seg *Segment) string {
		return seg.Record().MustConsumeToStr()
	})
	if strings.Join(got, ",") != "a,b" {
		t.Errorf("segments = %q, want [a b]", got)
	}
}

func TestSplitFnTextModeDelimiter(t *testing.T) {
	p := MustStrParser("α·β·γ")
	got := MapAndCollect(p.SplitFn(func(b byte) bool { return b == 0xC2 }), func(seg *Segment) string {
		return seg.Record().MustConsumeToStr()
	})
	want := []string{"α", "β", "γ"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("segments = %q, want %q", got, want)
	}
}

func TestSplitAllStopsEarly(t *testing.T) {
	p := NewBytesParser([]byte("a,b,c,d"))
	s := p.Split(',')
	var seen []string
	for seg := range s.All() {
		seen = append(seen, seg.Record().MustConsumeToStr())
		if len(seen) == 2 {
			break
		}
	}
	if strings.Join(seen, ",") != "a,b" {
		t.Errorf("seen = %q, want [a b]", seen)
	}
	rest, ok := s.Next()
	if !ok {
		t.Fatal("Next() after break = false")
	}
	if got := rest.Record().MustConsumeToStr(); got != "c" {
		t.Errorf("next segment = %q, want %q", got, "c")
	}
}

func TestKeyValueLines(t *testing.T) {
	p := MustStrParser("key: value\nother key: more : value\nalso valid")

	type pair struct{ key, value string }
	lines := MapAndCollect(p.Split('\n'), func(line *Segment) pair {
		key := line.Record()
		key.ConsumeUntilByte(':')
		k := key.MustStr()

		if _, ok := line.Advance(); !ok {
			return pair{"", strings.TrimLeft(k, " ")}
		}
		line.ConsumeWhile(IsSpace)
		return pair{k, line.Record().MustConsumeToStr()}
	})

	want := []pair{
		{"key", "value"},
		{"other key", "more : value"},
		{"", "also valid"},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}
