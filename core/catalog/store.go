package catalog

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNotFound reports an id with no matching row.
	ErrNotFound = errors.New("not found")

	// ErrReferenced reports a delete blocked by dependent rows.
	ErrReferenced = errors.New("still referenced")
)

type BrandNew struct {
	Name string `json:"name" validate:"required,min=2"`
}

type BrandUp struct {
	Name *string `json:"name" validate:"omitempty,min=2"`
}

type ModelNew struct {
	BrandID int64  `json:"brand_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,min=2"`
}

type ModelUp struct {
	BrandID *int64  `json:"brand_id" validate:"omitempty,gt=0"`
	Name    *string `json:"name" validate:"omitempty,min=2"`
}

type SkinNew struct {
	ModelID int64  `json:"model_id" validate:"required,gt=0"`
	Name    string `json:"name" validate:"required,min=2"`
}

type SkinUp struct {
	ModelID *int64  `json:"model_id" validate:"omitempty,gt=0"`
	Name    *string `json:"name" validate:"omitempty,min=2"`
}

type VariantNew struct {
	SkinID    int64    `json:"master_skin_id" validate:"required,gt=0"`
	Name      string   `json:"name" validate:"required,min=2"`
	Price     int64    `json:"price" validate:"required,gt=0"`
	ColorHex  string   `json:"color_hex" validate:"required,hexcolor,len=7"`
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}

type VariantUp struct {
	Name      *string  `json:"name" validate:"omitempty,min=2"`
	Price     *int64   `json:"price" validate:"omitempty,gt=0"`
	ColorHex  *string  `json:"color_hex" validate:"omitempty,hexcolor,len=7"`
	ImageURLs []string `json:"image_urls" validate:"omitempty,min=1,dive,url"`
}

// Store holds the normalized catalog tables plus the featured ids. All
// access is serialized, and composed views are rebuilt on every read so
// no derived state survives an admin edit.
type Store struct {
	mu sync.RWMutex

	brands   []Brand
	models   []PhoneModel
	skins    []Skin
	variants []Variant
	featured []int64

	nextBrandID   int64
	nextModelID   int64
	nextSkinID    int64
	nextVariantID int64
}

func NewStore() *Store {
	return &Store{
		nextBrandID:   1,
		nextModelID:   1,
		nextSkinID:    1,
		nextVariantID: 1,
	}
}

// Catalog composes the full denormalized view.
func (s *Store) Catalog() []MasterSkin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Compose(s.brands, s.models, s.skins, s.variants)
}

// Featured composes the featured view in stored order.
func (s *Store) Featured() []MasterSkin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Featured(Compose(s.brands, s.models, s.skins, s.variants), s.featured)
}

// FindSkin returns one composed entry.
func (s *Store) FindSkin(id int64) (MasterSkin, error) {
	for _, ms := range s.Catalog() {
		if ms.ID == id {
			return ms, nil
		}
	}
	return MasterSkin{}, fmt.Errorf("skin[%d]: %w", id, ErrNotFound)
}

// FindVariant resolves a variant together with the composed skin it
// belongs to, which carries the display names the cart snapshots.
func (s *Store) FindVariant(id int64) (Variant, MasterSkin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.variants {
		if v.ID != id {
			continue
		}
		for _, ms := range Compose(s.brands, s.models, s.skins, s.variants) {
			if ms.ID == v.SkinID {
				return v, ms, nil
			}
		}
		// Variant with a dangling skin reference: still sellable,
		// the display names degrade to placeholders.
		return v, MasterSkin{
			Skin:      Skin{ID: v.SkinID, Name: UnknownName},
			ModelName: UnknownName,
			BrandName: UnknownName,
		}, nil
	}

	return Variant{}, MasterSkin{}, fmt.Errorf("variant[%d]: %w", id, ErrNotFound)
}

func (s *Store) Brands() []Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Brand, len(s.brands))
	copy(out, s.brands)
	return out
}

func (s *Store) CreateBrand(nb BrandNew) Brand {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := Brand{ID: s.nextBrandID, Name: nb.Name}
	s.nextBrandID++
	s.brands = append(s.brands, b)
	return b
}

func (s *Store) UpdateBrand(id int64, ub BrandUp) (Brand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.brands {
		if s.brands[i].ID != id {
			continue
		}
		if ub.Name != nil {
			s.brands[i].Name = *ub.Name
		}
		return s.brands[i], nil
	}
	return Brand{}, fmt.Errorf("brand[%d]: %w", id, ErrNotFound)
}

func (s *Store) DeleteBrand(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.models {
		if m.BrandID == id {
			return fmt.Errorf("brand[%d] has model[%d]: %w", id, m.ID, ErrReferenced)
		}
	}

	for i := range s.brands {
		if s.brands[i].ID == id {
			s.brands = append(s.brands[:i], s.brands[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("brand[%d]: %w", id, ErrNotFound)
}

func (s *Store) Models() []PhoneModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PhoneModel, len(s.models))
	copy(out, s.models)
	return out
}

func (s *Store) CreateModel(nm ModelNew) (PhoneModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.brandExists(nm.BrandID) {
		return PhoneModel{}, fmt.Errorf("brand[%d]: %w", nm.BrandID, ErrNotFound)
	}

	m := PhoneModel{ID: s.nextModelID, BrandID: nm.BrandID, Name: nm.Name}
	s.nextModelID++
	s.models = append(s.models, m)
	return m, nil
}

func (s *Store) UpdateModel(id int64, um ModelUp) (PhoneModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.models {
		if s.models[i].ID != id {
			continue
		}
		if um.BrandID != nil {
			if !s.brandExists(*um.BrandID) {
				return PhoneModel{}, fmt.Errorf("brand[%d]: %w", *um.BrandID, ErrNotFound)
			}
			s.models[i].BrandID = *um.BrandID
		}
		if um.Name != nil {
			s.models[i].Name = *um.Name
		}
		return s.models[i], nil
	}
	return PhoneModel{}, fmt.Errorf("model[%d]: %w", id, ErrNotFound)
}

func (s *Store) DeleteModel(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sk := range s.skins {
		if sk.ModelID == id {
			return fmt.Errorf("model[%d] has skin[%d]: %w", id, sk.ID, ErrReferenced)
		}
	}

	for i := range s.models {
		if s.models[i].ID == id {
			s.models = append(s.models[:i], s.models[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("model[%d]: %w", id, ErrNotFound)
}

func (s *Store) Skins() []Skin {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Skin, len(s.skins))
	copy(out, s.skins)
	return out
}

func (s *Store) CreateSkin(ns SkinNew) (Skin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.modelExists(ns.ModelID) {
		return Skin{}, fmt.Errorf("model[%d]: %w", ns.ModelID, ErrNotFound)
	}

	sk := Skin{ID: s.nextSkinID, ModelID: ns.ModelID, Name: ns.Name}
	s.nextSkinID++
	s.skins = append(s.skins, sk)
	return sk, nil
}

func (s *Store) UpdateSkin(id int64, us SkinUp) (Skin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skins {
		if s.skins[i].ID != id {
			continue
		}
		if us.ModelID != nil {
			if !s.modelExists(*us.ModelID) {
				return Skin{}, fmt.Errorf("model[%d]: %w", *us.ModelID, ErrNotFound)
			}
			s.skins[i].ModelID = *us.ModelID
		}
		if us.Name != nil {
			s.skins[i].Name = *us.Name
		}
		return s.skins[i], nil
	}
	return Skin{}, fmt.Errorf("skin[%d]: %w", id, ErrNotFound)
}

func (s *Store) DeleteSkin(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.variants {
		if v.SkinID == id {
			return fmt.Errorf("skin[%d] has variant[%d]: %w", id, v.ID, ErrReferenced)
		}
	}

	for i := range s.skins {
		if s.skins[i].ID != id {
			continue
		}
		s.skins = append(s.skins[:i], s.skins[i+1:]...)

		// Keep the featured list a subset of existing skins.
		kept := s.featured[:0]
		for _, fid := range s.featured {
			if fid != id {
				kept = append(kept, fid)
			}
		}
		s.featured = kept
		return nil
	}
	return fmt.Errorf("skin[%d]: %w", id, ErrNotFound)
}

func (s *Store) Variants() []Variant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Variant, len(s.variants))
	copy(out, s.variants)
	return out
}

func (s *Store) CreateVariant(nv VariantNew) (Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.skinExists(nv.SkinID) {
		return Variant{}, fmt.Errorf("skin[%d]: %w", nv.SkinID, ErrNotFound)
	}

	v := Variant{
		ID:        s.nextVariantID,
		SkinID:    nv.SkinID,
		Name:      nv.Name,
		Price:     nv.Price,
		ColorHex:  nv.ColorHex,
		ImageURLs: nv.ImageURLs,
	}
	s.nextVariantID++
	s.variants = append(s.variants, v)
	return v, nil
}

func (s *Store) UpdateVariant(id int64, uv VariantUp) (Variant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.variants {
		if s.variants[i].ID != id {
			continue
		}
		if uv.Name != nil {
			s.variants[i].Name = *uv.Name
		}
		if uv.Price != nil {
			s.variants[i].Price = *uv.Price
		}
		if uv.ColorHex != nil {
			s.variants[i].ColorHex = *uv.ColorHex
		}
		if uv.ImageURLs != nil {
			s.variants[i].ImageURLs = uv.ImageURLs
		}
		return s.variants[i], nil
	}
	return Variant{}, fmt.Errorf("variant[%d]: %w", id, ErrNotFound)
}

func (s *Store) DeleteVariant(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.variants {
		if s.variants[i].ID == id {
			s.variants = append(s.variants[:i], s.variants[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("variant[%d]: %w", id, ErrNotFound)
}

func (s *Store) FeaturedIDs() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int64, len(s.featured))
	copy(out, s.featured)
	return out
}

// SetFeaturedIDs replaces the featured selection. Every id must name an
// existing skin; the given order is the display order.
func (s *Store) SetFeaturedIDs(ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if !s.skinExists(id) {
			return fmt.Errorf("featured skin[%d]: %w", id, ErrNotFound)
		}
	}

	s.featured = make([]int64, len(ids))
	copy(s.featured, ids)
	return nil
}

func (s *Store) brandExists(id int64) bool {
	for _, b := range s.brands {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) modelExists(id int64) bool {
	for _, m := range s.models {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) skinExists(id int64) bool {
	for _, sk := range s.skins {
		if sk.ID == id {
			return true
		}
	}
	return false
}
