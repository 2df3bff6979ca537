package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestWithAll(t *testing.T) {
	got := WithAll([]string{"shoes", "hats"})
	want := []string{"All", "shoes", "hats"}
	if len(got) != len(want) {
		t.Fatalf("WithAll() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WithAll() = %v, want %v", got, want)
		}
	}

	if got := WithAll(nil); len(got) != 1 || got[0] != CategoryAll {
		t.Fatalf("WithAll(nil) = %v, want [All]", got)
	}
}

func TestProductFormatting(t *testing.T) {
	p := Product{ID: 7, Price: 109.95, Description: "abcdefghij"}

	if got := p.FormattedPrice(); got != "109.95$" {
		t.Errorf("FormattedPrice() = %q", got)
	}
	if got := p.IDString(); got != "7" {
		t.Errorf("IDString() = %q", got)
	}
	if got := p.ShortDescription(4); got != "abcd..." {
		t.Errorf("ShortDescription(4) = %q", got)
	}
	if got := p.ShortDescription(100); got != "abcdefghij..." {
		t.Errorf("ShortDescription(100) = %q", got)
	}
	if got := p.ShortDescription(0); got != "abcdefghij" {
		t.Errorf("ShortDescription(0) = %q", got)
	}

	// cut lands after a space; the space is kept
	spaced := Product{Description: "abc defg"}
	if got := spaced.ShortDescription(4); got != "abc ..." {
		t.Errorf("ShortDescription(4) = %q, want %q", got, "abc ...")
	}
	if got := (Product{}).ShortDescription(100); got != "..." {
		t.Errorf("empty ShortDescription(100) = %q", got)
	}
}

func TestRatingStars(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "☆☆☆☆☆"},
		{3.9, "★★★★☆"},
		{4.5, "★★★★★"},
		{7, "★★★★★"},
	}
	for _, tt := range tests {
		if got := (Rating{Rate: tt.rate}).Stars(); got != tt.want {
			t.Errorf("Stars(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestSourceErrorUnwrap(t *testing.T) {
	err := &SourceError{
		Resource: ResourceProducts,
		Err:      fmt.Errorf("%w: connection refused", ErrFetchFailed),
	}
	if !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("errors.Is(%v, ErrFetchFailed) = false", err)
	}
	if errors.Is(err, ErrParseFailed) {
		t.Fatalf("errors.Is(%v, ErrParseFailed) = true", err)
	}
	if got := err.Error(); got != "loading products: catalog fetch failed: connection refused" {
		t.Fatalf("Error() = %q", got)
	}
}
