package pattern

import (
	"errors"
	"strings"
	"testing"
)

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name  string
		query string
		k     int
		opts  Options
		want  error
	}{
		{"empty", "", 0, Options{}, ErrInvalidPattern},
		{"empty negative k", "", -1, Options{}, ErrInvalidPattern},
		{"empty dna", "", 0, Options{Syntax: DNA}, ErrInvalidPattern},
		{"negative k", "ACGT", -1, Options{}, ErrInvalidDistance},
		{"k equals length", "ACGT", 4, Options{}, ErrInvalidDistance},
		{"k above length", "ACGT", 9, Options{}, ErrInvalidDistance},
		{"class shortens query", "A[CG]", 2, Options{Syntax: DNA}, ErrInvalidDistance},
		{"illegal dna char", "ACXT", 0, Options{Syntax: DNA}, ErrInvalidPattern},
		{"unknown syntax", "ACGT", 0, Options{Syntax: Syntax(9)}, ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile([]byte(tt.query), tt.k, tt.opts)
			if err == nil {
				t.Fatalf("Compile(%q, %d) succeeded, want %v", tt.query, tt.k, tt.want)
			}
			if p != nil {
				t.Error("Compile returned a pattern together with an error")
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Compile(%q, %d) error = %v, want %v", tt.query, tt.k, err, tt.want)
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Errorf("error %T is not a *CompileError", err)
			} else if ce.Query != tt.query {
				t.Errorf("CompileError.Query = %q, want %q", ce.Query, tt.query)
			}
		})
	}
}

func TestCompile_Masks(t *testing.T) {
	p, err := Compile([]byte("ACCA"), 1, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.Len() != 4 || p.MaxDistance() != 1 || p.Blocks() != 1 || p.Symbols() != 2 {
		t.Fatalf("Len=%d MaxDistance=%d Blocks=%d Symbols=%d", p.Len(), p.MaxDistance(), p.Blocks(), p.Symbols())
	}

	tests := []struct {
		c        byte
		fwd, rev uint64
	}{
		{'A', 0b1001, 0b1001},
		{'C', 0b0110, 0b0110},
		{'G', 0, 0},
		{'a', 0, 0},
	}
	for _, tt := range tests {
		if got := p.Eq(tt.c)[0]; got != tt.fwd {
			t.Errorf("Eq(%q) = %04b, want %04b", tt.c, got, tt.fwd)
		}
		if got := p.EqReverse(tt.c)[0]; got != tt.rev {
			t.Errorf("EqReverse(%q) = %04b, want %04b", tt.c, got, tt.rev)
		}
	}
	if got := p.High()[0]; got != 1<<3 {
		t.Errorf("High = %b, want %b", got, 1<<3)
	}
}

func TestCompile_ReverseMasks(t *testing.T) {
	p, err := Compile([]byte("AAC"), 0, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if got := p.Eq('C')[0]; got != 0b100 {
		t.Errorf("Eq('C') = %03b, want 100", got)
	}
	if got := p.EqReverse('C')[0]; got != 0b001 {
		t.Errorf("EqReverse('C') = %03b, want 001", got)
	}
}

func TestCompile_MultiBlock(t *testing.T) {
	query := strings.Repeat("A", 64) + "C" + strings.Repeat("G", 5)
	p, err := Compile([]byte(query), 3, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.Blocks() != 2 {
		t.Fatalf("Blocks = %d, want 2", p.Blocks())
	}
	if eq := p.Eq('A'); eq[0] != ^uint64(0) || eq[1] != 0 {
		t.Errorf("Eq('A') = %x, want [ffffffffffffffff 0]", eq)
	}
	if eq := p.Eq('C'); eq[0] != 0 || eq[1] != 1 {
		t.Errorf("Eq('C') = %x, want [0 1]", eq)
	}
	if eq := p.Eq('G'); eq[1] != 0b111110 {
		t.Errorf("Eq('G')[1] = %b, want 111110", eq[1])
	}
	// Reversed: GGGGG C AAAA... so C sits at reversed position 5.
	if eq := p.EqReverse('C'); eq[0] != 1<<5 || eq[1] != 0 {
		t.Errorf("EqReverse('C') = %x, want [20 0]", eq)
	}
	high := p.High()
	if high[0] != 1<<63 || high[1] != 1<<5 {
		t.Errorf("High = %x, want [8000000000000000 20]", high)
	}
	if len(p.Eq('T')) != 2 {
		t.Errorf("absent symbol mask has %d blocks, want 2", len(p.Eq('T')))
	}
}

func TestCompile_CopiesQuery(t *testing.T) {
	q := []byte("GATTACA")
	p, err := Compile(q, 2, Options{})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	q[0] = 'C'
	if p.String() != "GATTACA" {
		t.Errorf("String() = %q after caller mutation", p.String())
	}
	if string(p.Literal()) != "GATTACA" {
		t.Errorf("Literal() = %q after caller mutation", p.Literal())
	}
	if p.Eq('G')[0] != 1 {
		t.Errorf("Eq('G') = %b, want 1", p.Eq('G')[0])
	}
}

func TestCompile_FoldCase(t *testing.T) {
	p, err := Compile([]byte("Ab1"), 0, Options{FoldCase: true})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, c := range []byte("Aa") {
		if p.Eq(c)[0] != 0b001 {
			t.Errorf("Eq(%q) = %03b, want 001", c, p.Eq(c)[0])
		}
	}
	for _, c := range []byte("Bb") {
		if p.Eq(c)[0] != 0b010 {
			t.Errorf("Eq(%q) = %03b, want 010", c, p.Eq(c)[0])
		}
	}
	if p.Literal() != nil {
		t.Errorf("Literal() = %q, want nil for case-folded query", p.Literal())
	}
}

func TestParseDNA(t *testing.T) {
	p, err := Compile([]byte("aC[AT]NR"), 1, Options{Syntax: DNA})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if p.Len() != 5 {
		t.Fatalf("Len = %d, want 5", p.Len())
	}
	tests := []struct {
		c    byte
		want uint64
	}{
		{'A', 0b11101}, // pos 0, [AT], N, R
		{'a', 0b11101},
		{'C', 0b01010}, // pos 1, N
		{'G', 0b11000}, // N, R
		{'T', 0b01100}, // [AT], N
		{'u', 0b01100},
		{'N', 0b01000}, // only N accepts N
		{'X', 0},
	}
	for _, tt := range tests {
		if got := p.Eq(tt.c)[0]; got != tt.want {
			t.Errorf("Eq(%q) = %05b, want %05b", tt.c, got, tt.want)
		}
	}
	if p.Literal() != nil {
		t.Errorf("Literal() = %q, want nil", p.Literal())
	}
}

func TestParseDNA_Errors(t *testing.T) {
	tests := []struct {
		query  string
		pos    int
		reason string
	}{
		{"AC[[T]", 3, "nested '['"},
		{"ACT]", 3, "unmatched ']'"},
		{"AC[]T", 3, "empty base set"},
		{"AC[AT", 5, "missing ']'"},
		{"ACZ", 2, "illegal character"},
		{"AC T", 2, "illegal character"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			_, err := Compile([]byte(tt.query), 0, Options{Syntax: DNA})
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Compile(%q) error = %v, want *SyntaxError", tt.query, err)
			}
			if se.Pos != tt.pos || se.Reason != tt.reason {
				t.Errorf("SyntaxError = {%d %q}, want {%d %q}", se.Pos, se.Reason, tt.pos, tt.reason)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("errors.Is(%v, ErrInvalidPattern) = false", err)
			}
		})
	}
}

func TestIsBase(t *testing.T) {
	for _, c := range []byte("ACGTUNacgtun") {
		if !IsBase(c) {
			t.Errorf("IsBase(%q) = false", c)
		}
	}
	for _, c := range []byte("RYX-\n ") {
		if IsBase(c) {
			t.Errorf("IsBase(%q) = true", c)
		}
	}
}

func TestSyntax_String(t *testing.T) {
	if Bytes.String() != "bytes" || DNA.String() != "dna" || Syntax(7).String() != "Syntax(7)" {
		t.Errorf("unexpected Syntax names: %s %s %s", Bytes, DNA, Syntax(7))
	}
}
