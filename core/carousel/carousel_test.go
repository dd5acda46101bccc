package carousel

import (
	"errors"
	"testing"
)

func TestStoreCRUD(t *testing.T) {
	s := NewStore()

	sl := s.Create(SlideNew{
		Headline:    "Define Your Device",
		Description: "Discover exclusive skins.",
		ImageURL:    "https://placehold.co/1920x800.png",
		ImageHint:   "abstract texture",
		CTAText:     "Shop All Skins",
		CTALink:     "/products",
	})
	if sl.ID != 1 {
		t.Fatalf("first slide id should be 1, got %d", sl.ID)
	}

	headline := "New headline"
	up, err := s.Update(sl.ID, SlideUp{Headline: &headline})
	if err != nil {
		t.Fatalf("updating slide: %v", err)
	}
	if up.Headline != headline || up.CTAText != "Shop All Skins" {
		t.Fatalf("partial update wrong: %+v", up)
	}

	if _, err := s.Update(42, SlideUp{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown slide update: expected ErrNotFound, got %v", err)
	}

	if err := s.Delete(sl.ID); err != nil {
		t.Fatalf("deleting slide: %v", err)
	}
	if err := s.Delete(sl.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete: expected ErrNotFound, got %v", err)
	}
	if len(s.Slides()) != 0 {
		t.Fatal("store should be empty")
	}
}

func TestSeed(t *testing.T) {
	s := NewStore()
	Seed(s)

	slides := s.Slides()
	if len(slides) != 3 {
		t.Fatalf("expected 3 seeded slides, got %d", len(slides))
	}

	next := s.Create(SlideNew{
		Headline:    "Sale",
		Description: "Everything must go.",
		ImageURL:    "https://placehold.co/1920x800.png",
		CTAText:     "Shop",
		CTALink:     "/products",
	})
	if next.ID != 4 {
		t.Fatalf("id sequence must continue after the seed, got %d", next.ID)
	}
}
