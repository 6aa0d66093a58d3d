package deck

import (
	"testing"

	"github.com/louken/cardhouse/internal/randutil"
)

func TestNewDeckContainsAll52Cards(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(1))

	seen := make(map[Card]int)
	for !d.IsEmpty() {
		c, err := d.Draw()
		if err != nil {
			t.Fatalf("unexpected draw error: %v", err)
		}
		seen[c]++
	}

	if len(seen) != 52 {
		t.Errorf("expected 52 unique cards, got %d", len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("card %s drawn %d times", c, n)
		}
	}
}

func TestShufflePreservesMultiset(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(42))
	d.Shuffle()
	d.Shuffle()

	seen := make(map[Card]bool)
	for !d.IsEmpty() {
		c, _ := d.Draw()
		if seen[c] {
			t.Fatalf("card %s duplicated after shuffle", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("expected 52 cards after shuffle, got %d", len(seen))
	}
}

func TestDrawDecreasesRemaining(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(7))
	for i := 52; i > 0; i-- {
		if d.Remaining() != i {
			t.Fatalf("expected %d remaining, got %d", i, d.Remaining())
		}
		if _, err := d.Draw(); err != nil {
			t.Fatalf("draw %d failed: %v", 52-i, err)
		}
	}
	if _, err := d.Draw(); err != ErrEmptyDeck {
		t.Errorf("expected ErrEmptyDeck, got %v", err)
	}
}

func TestDrawN(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(3))
	cards, err := d.DrawN(13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cards) != 13 {
		t.Errorf("expected 13 cards, got %d", len(cards))
	}
	if d.Remaining() != 39 {
		t.Errorf("expected 39 remaining, got %d", d.Remaining())
	}

	if _, err := d.DrawN(40); err != ErrEmptyDeck {
		t.Errorf("expected ErrEmptyDeck drawing past the end, got %v", err)
	}
}
