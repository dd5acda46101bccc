package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testTables() ([]Brand, []PhoneModel, []Skin, []Variant) {
	brands := []Brand{
		{ID: 1, Name: "Apple"},
		{ID: 2, Name: "Samsung"},
	}
	models := []PhoneModel{
		{ID: 1, BrandID: 1, Name: "iPhone 15 Pro"},
		{ID: 2, BrandID: 2, Name: "Galaxy S24 Ultra"},
	}
	skins := []Skin{
		{ID: 1, ModelID: 1, Name: "Carbon Fiber"},
		{ID: 2, ModelID: 2, Name: "Cosmic"},
		{ID: 3, ModelID: 99, Name: "Orphan"},
	}
	variants := []Variant{
		{ID: 101, SkinID: 1, Name: "Obsidian Weave", Price: 2499, ColorHex: "#000000"},
		{ID: 102, SkinID: 1, Name: "Crimson Carbon", Price: 2499, ColorHex: "#8B0000"},
		{ID: 201, SkinID: 2, Name: "Cosmic Marble", Price: 2999, ColorHex: "#465067"},
	}
	return brands, models, skins, variants
}

func TestCompose(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	if len(catalog) != 3 {
		t.Fatalf("expected 3 composed skins, got %d", len(catalog))
	}

	if catalog[0].ModelName != "iPhone 15 Pro" || catalog[0].BrandName != "Apple" {
		t.Fatalf("skin 1 joined wrong names: %q / %q", catalog[0].ModelName, catalog[0].BrandName)
	}
	if len(catalog[0].Variants) != 2 {
		t.Fatalf("skin 1 expected 2 variants, got %d", len(catalog[0].Variants))
	}

	orphan := catalog[2]
	if orphan.ModelName != UnknownName || orphan.BrandName != UnknownName {
		t.Fatalf("dangling model_id should degrade to %q, got %q / %q", UnknownName, orphan.ModelName, orphan.BrandName)
	}
	if orphan.Variants == nil {
		t.Fatal("variants of a skin without variants must be an empty slice, not nil")
	}
}

func TestFilterIdentity(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	got := Filter(catalog, Query{})
	if diff := cmp.Diff(catalog, got); diff != "" {
		t.Fatalf("empty query must return the catalog unchanged:\n%s", diff)
	}
}

func TestFilterBrandFacet(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	got := Filter(catalog, Query{BrandIDs: []int64{1}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("brand facet {1} should return exactly skin 1, got %+v", got)
	}
}

func TestFilterSearch(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	cases := []struct {
		name   string
		search string
		want   []int64
	}{
		{"skin name", "carbon fib", []int64{1}},
		{"model name", "galaxy", []int64{2}},
		{"variant name", "obsidian", []int64{1}},
		{"case insensitive", "COSMIC", []int64{2}},
		{"no match", "zzz", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(catalog, Query{SearchText: tc.search})
			var ids []int64
			for _, ms := range got {
				ids = append(ids, ms.ID)
			}
			if diff := cmp.Diff(tc.want, ids); diff != "" {
				t.Fatalf("search %q:\n%s", tc.search, diff)
			}
		})
	}
}

func TestFilterColorFacet(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	got := Filter(catalog, Query{ColorHexes: []string{"#8b0000"}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("color facet should match case-insensitively, got %+v", got)
	}
}

func TestFilterFacetsConjunction(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	// Brand matches skin 1 but the color belongs to skin 2: AND across
	// facets must yield nothing.
	got := Filter(catalog, Query{BrandIDs: []int64{1}, ColorHexes: []string{"#465067"}})
	if len(got) != 0 {
		t.Fatalf("conjunction of unsatisfiable facets must be empty, got %+v", got)
	}
}

func TestFilterCascadingModelReset(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	// Model 2 belongs to brand 2. With brand 1 selected the model facet
	// is unreachable and must be dropped, not produce an empty result.
	got := Filter(catalog, Query{BrandIDs: []int64{1}, ModelIDs: []int64{2}})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unreachable model facet should reset, got %+v", got)
	}
}

func TestFeatured(t *testing.T) {
	brands, models, skins, variants := testTables()
	catalog := Compose(brands, models, skins, variants)

	got := Featured(catalog, []int64{3, 1})
	if len(got) != 2 || got[0].ID != 3 || got[1].ID != 1 {
		t.Fatalf("featured view must follow the id sequence, got %+v", got)
	}

	got = Featured(catalog, []int64{2, 42})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("stale featured ids must be dropped, got %+v", got)
	}

	if got := Featured(catalog, nil); len(got) != 0 {
		t.Fatalf("empty featured ids must yield an empty view, got %+v", got)
	}
}
