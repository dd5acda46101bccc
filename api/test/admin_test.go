package test

import (
	"net/http"
	"testing"

	"github.com/skinflex/api/core/carousel"
	"github.com/skinflex/api/core/catalog"
)

func TestAdminRequiresKey(t *testing.T) {
	env := NewTestEnv(t, nil)

	paths := []string{
		"/admin/brands",
		"/admin/models",
		"/admin/skins",
		"/admin/variants",
		"/admin/collections",
		"/admin/carousel",
	}
	for _, path := range paths {
		if code := env.get(path, nil); code != http.StatusUnauthorized {
			t.Errorf("GET %s without key: expected 401, got %d", path, code)
		}
	}

	// A wrong key is just as dead as no key.
	r, err := http.NewRequest(http.MethodGet, env.URL+"/admin/brands", nil)
	if err != nil {
		t.Fatal(err)
	}
	r.Header.Set("X-Api-Key", "not-the-key")
	w, err := env.Client().Do(r)
	if err != nil {
		t.Fatal(err)
	}
	w.Body.Close()
	if w.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong key: expected 401, got %d", w.StatusCode)
	}
}

func TestAdminCatalogCRUD(t *testing.T) {
	env := NewTestEnv(t, nil)

	var brand catalog.Brand
	code := env.adminDo(http.MethodPost, "/admin/brands", map[string]string{"name": "Nothing"}, &brand)
	if code != http.StatusCreated {
		t.Fatalf("POST /admin/brands: expected 201, got %d", code)
	}
	if brand.ID == 0 || brand.Name != "Nothing" {
		t.Fatalf("unexpected brand: %+v", brand)
	}

	var model catalog.PhoneModel
	code = env.adminDo(http.MethodPost, "/admin/models", map[string]interface{}{"brand_id": brand.ID, "name": "Phone (2)"}, &model)
	if code != http.StatusCreated {
		t.Fatalf("POST /admin/models: expected 201, got %d", code)
	}

	var skin catalog.Skin
	code = env.adminDo(http.MethodPost, "/admin/skins", map[string]interface{}{"model_id": model.ID, "name": "Transparent"}, &skin)
	if code != http.StatusCreated {
		t.Fatalf("POST /admin/skins: expected 201, got %d", code)
	}

	var variant catalog.Variant
	code = env.adminDo(http.MethodPost, "/admin/variants", map[string]interface{}{
		"master_skin_id": skin.ID,
		"name":           "Glyph White",
		"price":          2399,
		"color_hex":      "#f5f5f5",
		"image_urls":     []string{"https://img.example.com/glyph-white.png"},
	}, &variant)
	if code != http.StatusCreated {
		t.Fatalf("POST /admin/variants: expected 201, got %d", code)
	}

	// The new skin shows up on the public surface immediately.
	var listed []catalog.MasterSkin
	if code := env.get("/products?brand="+itoa(brand.ID), &listed); code != http.StatusOK {
		t.Fatalf("GET /products: status %d", code)
	}
	if len(listed) != 1 || listed[0].ID != skin.ID || len(listed[0].Variants) != 1 {
		t.Fatalf("new skin not listed: %+v", listed)
	}
	if listed[0].ModelName != "Phone (2)" || listed[0].BrandName != "Nothing" {
		t.Fatalf("joins not composed: %+v", listed[0])
	}

	// Rename and verify through a public read.
	code = env.adminDo(http.MethodPut, "/admin/skins/"+itoa(skin.ID), map[string]string{"name": "Transparent Edition"}, &skin)
	if code != http.StatusOK {
		t.Fatalf("PUT /admin/skins: expected 200, got %d", code)
	}
	var shown catalog.MasterSkin
	if code := env.get("/products/"+itoa(skin.ID), &shown); code != http.StatusOK {
		t.Fatalf("GET /products/{id}: status %d", code)
	}
	if shown.Name != "Transparent Edition" {
		t.Fatalf("rename not visible: %+v", shown)
	}

	// Deletes walk children first, parents refuse while referenced.
	if code := env.adminDo(http.MethodDelete, "/admin/brands/"+itoa(brand.ID), nil, nil); code != http.StatusConflict {
		t.Fatalf("delete referenced brand: expected 409, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/skins/"+itoa(skin.ID), nil, nil); code != http.StatusConflict {
		t.Fatalf("delete referenced skin: expected 409, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/variants/"+itoa(variant.ID), nil, nil); code != http.StatusNoContent {
		t.Fatalf("delete variant: expected 204, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/skins/"+itoa(skin.ID), nil, nil); code != http.StatusNoContent {
		t.Fatalf("delete skin: expected 204, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/models/"+itoa(model.ID), nil, nil); code != http.StatusNoContent {
		t.Fatalf("delete model: expected 204, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/brands/"+itoa(brand.ID), nil, nil); code != http.StatusNoContent {
		t.Fatalf("delete brand: expected 204, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/brands/"+itoa(brand.ID), nil, nil); code != http.StatusNotFound {
		t.Fatalf("delete gone brand: expected 404, got %d", code)
	}
}

func TestAdminValidation(t *testing.T) {
	env := NewTestEnv(t, nil)

	cases := []struct {
		name string
		path string
		body interface{}
	}{
		{"empty brand name", "/admin/brands", map[string]string{"name": ""}},
		{"model without brand", "/admin/models", map[string]string{"name": "Pixel 9"}},
		{"skin without model", "/admin/skins", map[string]string{"name": "Bamboo"}},
		{"variant bad color", "/admin/variants", map[string]interface{}{
			"master_skin_id": 1, "name": "Bad", "price": 100,
			"color_hex":  "red",
			"image_urls": []string{"https://img.example.com/x.png"},
		}},
		{"variant no images", "/admin/variants", map[string]interface{}{
			"master_skin_id": 1, "name": "Bad", "price": 100,
			"color_hex":  "#ff0000",
			"image_urls": []string{},
		}},
	}
	for _, tc := range cases {
		if code := env.adminDo(http.MethodPost, tc.path, tc.body, nil); code != http.StatusUnprocessableEntity {
			t.Errorf("%s: expected 422, got %d", tc.name, code)
		}
	}

	// Dangling parents are rejected, not silently accepted.
	code := env.adminDo(http.MethodPost, "/admin/models", map[string]interface{}{"brand_id": 999, "name": "Pixel 9"}, nil)
	if code != http.StatusNotFound {
		t.Fatalf("model with unknown brand: expected 404, got %d", code)
	}
}

func TestAdminCollections(t *testing.T) {
	env := NewTestEnv(t, nil)

	var got []int64
	if code := env.adminDo(http.MethodGet, "/admin/collections", nil, &got); code != http.StatusOK {
		t.Fatalf("GET /admin/collections: status %d", code)
	}
	if len(got) == 0 {
		t.Fatal("seeded featured ids missing")
	}

	// An id outside the catalog rejects the whole update.
	code := env.adminDo(http.MethodPut, "/admin/collections", map[string][]int64{"ids": {1, 999}}, nil)
	if code != http.StatusBadRequest {
		t.Fatalf("featured ids with unknown skin: expected 400, got %d", code)
	}

	if code := env.adminDo(http.MethodPut, "/admin/collections", map[string][]int64{"ids": {4, 2}}, nil); code != http.StatusOK {
		t.Fatalf("PUT /admin/collections: status %d", code)
	}

	var featured []catalog.MasterSkin
	if code := env.get("/products/featured", &featured); code != http.StatusOK {
		t.Fatalf("GET /products/featured: status %d", code)
	}
	if len(featured) != 2 || featured[0].ID != 4 || featured[1].ID != 2 {
		t.Fatalf("featured order not honored: %+v", featured)
	}
}

func TestAdminCarouselCRUD(t *testing.T) {
	env := NewTestEnv(t, nil)

	var slide carousel.Slide
	code := env.adminDo(http.MethodPost, "/admin/carousel", map[string]string{
		"headline":    "Winter Drop",
		"description": "Frosted textures for the season.",
		"imageUrl":    "https://img.example.com/winter.png",
		"ctaText":     "Shop Winter",
		"ctaLink":     "/products?search=frost",
	}, &slide)
	if code != http.StatusCreated {
		t.Fatalf("POST /admin/carousel: expected 201, got %d", code)
	}

	code = env.adminDo(http.MethodPut, "/admin/carousel/"+itoa(slide.ID), map[string]string{"headline": "Winter Drop 2"}, &slide)
	if code != http.StatusOK {
		t.Fatalf("PUT /admin/carousel: expected 200, got %d", code)
	}
	if slide.Headline != "Winter Drop 2" {
		t.Fatalf("headline not updated: %+v", slide)
	}

	var slides []carousel.Slide
	if code := env.get("/carousel", &slides); code != http.StatusOK {
		t.Fatalf("GET /carousel: status %d", code)
	}
	if len(slides) != 4 {
		t.Fatalf("expected 4 slides, got %d", len(slides))
	}

	if code := env.adminDo(http.MethodDelete, "/admin/carousel/"+itoa(slide.ID), nil, nil); code != http.StatusNoContent {
		t.Fatalf("DELETE /admin/carousel: expected 204, got %d", code)
	}
	if code := env.adminDo(http.MethodDelete, "/admin/carousel/"+itoa(slide.ID), nil, nil); code != http.StatusNotFound {
		t.Fatalf("delete gone slide: expected 404, got %d", code)
	}
}
