package primes

import (
	"context"
	"errors"
	"testing"
)

func TestSieve30(t *testing.T) {
	want := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true, 29: true}
	table := Sieve(30)
	if len(table) != 31 {
		t.Fatalf("expected 31 entries, got %d", len(table))
	}
	for n, got := range table {
		if got != want[n] {
			t.Errorf("Sieve(30)[%d] = %v, want %v", n, got, want[n])
		}
	}
}

func TestSieveBoundaries(t *testing.T) {
	tests := []struct {
		max  int
		want int
	}{
		{-5, 0},
		{0, 1},
		{1, 2},
		{2, 3},
	}
	for _, tt := range tests {
		table := Sieve(tt.max)
		if len(table) != tt.want {
			t.Errorf("Sieve(%d) length %d, want %d", tt.max, len(table), tt.want)
		}
	}
	if table := Sieve(2); table[0] || table[1] || !table[2] {
		t.Errorf("Sieve(2) = %v", table)
	}
}

func TestSieveAgreesWithTrialDivision(t *testing.T) {
	table := Sieve(2000)
	for n := range table {
		if table[n] != IsPrime(n) {
			t.Fatalf("sieve and trial division disagree at %d", n)
		}
	}
}

func TestSieveContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := SieveContext(ctx, 100)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestPrimes(t *testing.T) {
	got := Primes(20)
	want := []int{2, 3, 5, 7, 11, 13, 17, 19}
	if len(got) != len(want) {
		t.Fatalf("Primes(20) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Primes(20)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestGrid(t *testing.T) {
	g := Grid(100)
	if g.Size != 10 {
		t.Errorf("expected size 10, got %d", g.Size)
	}
	if len(g.Primes) != 25 {
		t.Errorf("expected 25 primes, got %d", len(g.Primes))
	}
	if len(g.Primes)+len(g.Composites) != 100 {
		t.Errorf("cells do not cover 1..100")
	}
	last := g.Composites[len(g.Composites)-1]
	if last.N != 100 || last.X != 9 || last.Y != 9 {
		t.Errorf("100 placed at %+v", last)
	}
	if empty := Grid(0); len(empty.Primes) != 0 {
		t.Error("expected empty grid for limit 0")
	}
}
