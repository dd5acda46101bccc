// Package carousel manages the hero carousel slides shown on the
// storefront landing page, an admin-managed display configuration with
// no relationship to the catalog or cart.
package carousel

import (
	"errors"
	"fmt"
	"sync"
)

var ErrNotFound = errors.New("not found")

type Slide struct {
	ID          int64  `json:"id"`
	Headline    string `json:"headline"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	ImageHint   string `json:"imageHint"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
}

type SlideNew struct {
	Headline    string `json:"headline" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	ImageHint   string `json:"imageHint"`
	CTAText     string `json:"ctaText" validate:"required"`
	CTALink     string `json:"ctaLink" validate:"required"`
}

type SlideUp struct {
	Headline    *string `json:"headline"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	ImageHint   *string `json:"imageHint"`
	CTAText     *string `json:"ctaText"`
	CTALink     *string `json:"ctaLink"`
}

type Store struct {
	mu     sync.RWMutex
	slides []Slide
	nextID int64
}

func NewStore() *Store {
	return &Store{nextID: 1}
}

func (s *Store) Slides() []Slide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Slide, len(s.slides))
	copy(out, s.slides)
	return out
}

func (s *Store) Create(ns SlideNew) Slide {
	s.mu.Lock()
	defer s.mu.Unlock()

	sl := Slide{
		ID:          s.nextID,
		Headline:    ns.Headline,
		Description: ns.Description,
		ImageURL:    ns.ImageURL,
		ImageHint:   ns.ImageHint,
		CTAText:     ns.CTAText,
		CTALink:     ns.CTALink,
	}
	s.nextID++
	s.slides = append(s.slides, sl)
	return sl
}

func (s *Store) Update(id int64, us SlideUp) (Slide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slides {
		if s.slides[i].ID != id {
			continue
		}
		if us.Headline != nil {
			s.slides[i].Headline = *us.Headline
		}
		if us.Description != nil {
			s.slides[i].Description = *us.Description
		}
		if us.ImageURL != nil {
			s.slides[i].ImageURL = *us.ImageURL
		}
		if us.ImageHint != nil {
			s.slides[i].ImageHint = *us.ImageHint
		}
		if us.CTAText != nil {
			s.slides[i].CTAText = *us.CTAText
		}
		if us.CTALink != nil {
			s.slides[i].CTALink = *us.CTALink
		}
		return s.slides[i], nil
	}
	return Slide{}, fmt.Errorf("slide[%d]: %w", id, ErrNotFound)
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slides {
		if s.slides[i].ID == id {
			s.slides = append(s.slides[:i], s.slides[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("slide[%d]: %w", id, ErrNotFound)
}

// Seed loads the demo slides.
func Seed(s *Store) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slides = []Slide{
		{
			ID:          1,
			Headline:    "Define Your Device",
			Description: "Discover exclusive, high-quality skins to give your phone a unique personality.",
			ImageURL:    "https://placehold.co/1920x800.png",
			ImageHint:   "abstract texture",
			CTAText:     "Shop All Skins",
			CTALink:     "/products",
		},
		{
			ID:          2,
			Headline:    "New Cosmic Collection!",
			Description: "Explore otherworldly designs and give your device a look that's out of this world.",
			ImageURL:    "https://placehold.co/1920x800.png",
			ImageHint:   "cosmic nebula",
			CTAText:     "Shop Now",
			CTALink:     "/products",
		},
		{
			ID:          3,
			Headline:    "The SkinFlex Difference",
			Description: "Precision fit, premium materials, and durable protection for your device.",
			ImageURL:    "https://placehold.co/1920x800.png",
			ImageHint:   "carbon fiber",
			CTAText:     "Learn More",
			CTALink:     "/products",
		},
	}
	s.nextID = 4
}
