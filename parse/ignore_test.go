package parse

import "testing"

func TestIgnoreByte(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		ignore string
		want   string
	}{
		{"spaces", "my byte str", " ", "mybytestr"},
		{"carriage returns", "a\r\nb\r\n", "\r", "a\nb\n"},
		{"two bytes", "a-b_c", "-_", "abc"},
		{"everything ignored", "   ", " ", ""},
		{"nothing ignored", "abc", "x", "abc"},
		{"empty", "", " ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewBytesParser([]byte(tt.input))
			for i := 0; i < len(tt.ignore); i++ {
				p.IgnoreByte(tt.ignore[i])
			}
			var got []byte
			for !p.Done() {
				b, ok := p.Advance()
				if !ok {
					t.Fatal("Advance() = false while Done() = false")
				}
				got = append(got, b)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if _, ok := p.Peek(); ok {
				t.Error("Peek() after Done() = true")
			}
		})
	}
}

func TestIgnoreByteWithSplit(t *testing.T) {
	p := NewBytesParser([]byte("ab\raaa\r aab\raa"))
	p.IgnoreByte('\r')

	count := 0
	p.Split(' ').ForEach(func(seg *Segment) {
		count++
		seg.IgnoreByte('b')
		if n := seg.CountByte('a'); n != 4 {
			t.Errorf("segment %d: CountByte('a') = %d, want 4", count, n)
		}
	})
	if count != 2 {
		t.Errorf("got %d segments, want 2", count)
	}
	if !p.Done() {
		t.Error("parser not at end after splitting")
	}
}

func TestIgnoreByteRecordingKeepsSkippedBytes(t *testing.T) {
	p := NewBytesParser([]byte("a b c"))
	p.IgnoreByte(' ')

	if b, _ := p.PeekAt(2); b != 'b' {
		t.Errorf("PeekAt(2) = %q, want 'b'", b)
	}
	if got, _ := p.PeekLen(2); string(got) != "a b" {
		t.Errorf("PeekLen(2) = %q, want %q", got, "a b")
	}

	rec := p.Record()
	if err := rec.ConsumeLen(3); err != nil {
		t.Fatalf("ConsumeLen(3) = %v", err)
	}
	if got := string(rec.Slice()); got != "a b c" {
		t.Errorf("Slice() = %q, want %q", got, "a b c")
	}
}

func TestIgnoreByteText(t *testing.T) {
	p := MustStrParser(" é x")
	p.IgnoreByte(' ')

	if r, ok := p.NextRune(); !ok || r != 'é' {
		t.Errorf("NextRune() = %q, %v, want 'é', true", r, ok)
	}
	if err := p.ExpectByte('x'); err != nil {
		t.Errorf("ExpectByte('x') = %v", err)
	}
	if err := p.ExpectEnd(); err != nil {
		t.Errorf("ExpectEnd() = %v", err)
	}
}

func TestIgnoreByteOnSegmentLeavesParent(t *testing.T) {
	p := NewBytesParser([]byte("ab,ab"))
	s := p.Split(',')

	first, _ := s.Next()
	first.IgnoreByte('a')
	if b, _ := first.Peek(); b != 'b' {
		t.Errorf("first segment Peek() = %q, want 'b'", b)
	}

	second, _ := s.Next()
	if b, _ := second.Peek(); b != 'a' {
		t.Errorf("second segment Peek() = %q, want 'a'", b)
	}
}

func TestClearIgnored(t *testing.T) {
	p := NewBytesParser([]byte(" a"))
	p.IgnoreByte(' ')
	p.ClearIgnored()
	if b, _ := p.Peek(); b != ' ' {
		t.Errorf("Peek() = %q, want ' '", b)
	}
}

func TestCursorStop(t *testing.T) {
	p := NewBytesParser([]byte("abcdef"))
	cp := p.Checkpoint()
	p.ConsumeLen(3)

	stopped := p.Stop()
	if _, ok := stopped.Advance(); ok {
		t.Error("Advance() on a stopped segment reported a byte")
	}
	if !stopped.Done() {
		t.Error("stopped segment is not done")
	}
	if start, end := stopped.Bounds(); start != 0 || end != 3 {
		t.Errorf("Bounds() = %d, %d, want 0, 3", start, end)
	}

	stopped.Restore(cp)
	if got := string(stopped.Record().ConsumeToSlice()); got != "abc" {
		t.Errorf("ConsumeToSlice() after Restore = %q, want %q", got, "abc")
	}
	if b, _ := p.Advance(); b != 'd' {
		t.Errorf("parser Advance() = %q, want 'd'", b)
	}
}
