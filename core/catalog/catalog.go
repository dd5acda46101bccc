// Package catalog owns the normalized product tables and the composed,
// query-ready views the storefront serves: master skins joined with
// their phone model, brand and variants, multi-facet filtering and the
// admin-ordered featured selection.
package catalog

import "strings"

// UnknownName is substituted when a join target is missing. Dangling
// references degrade the display instead of failing the request.
const UnknownName = "Unknown"

type Brand struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PhoneModel struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Name    string `json:"name"`
}

// Skin is the normalized master-skin row, a design family on one model.
type Skin struct {
	ID      int64  `json:"id"`
	ModelID int64  `json:"model_id"`
	Name    string `json:"name"`
}

// Variant is the sellable unit. Price is in cents.
type Variant struct {
	ID        int64    `json:"id"`
	SkinID    int64    `json:"master_skin_id"`
	Name      string   `json:"name"`
	Price     int64    `json:"price"`
	ColorHex  string   `json:"color_hex"`
	ImageURLs []string `json:"image_urls"`
}

// MasterSkin is the denormalized view of a Skin: model and brand names
// joined on, variants attached.
type MasterSkin struct {
	Skin
	ModelName string    `json:"model_name"`
	BrandID   int64     `json:"brand_id"`
	BrandName string    `json:"brand_name"`
	Variants  []Variant `json:"variants"`
}

// Compose builds the denormalized catalog from the normalized tables.
// Source slices are never mutated.
func Compose(brands []Brand, models []PhoneModel, skins []Skin, variants []Variant) []MasterSkin {
	brandByID := make(map[int64]Brand, len(brands))
	for _, b := range brands {
		brandByID[b.ID] = b
	}

	modelByID := make(map[int64]PhoneModel, len(models))
	for _, m := range models {
		modelByID[m.ID] = m
	}

	variantsBySkin := make(map[int64][]Variant)
	for _, v := range variants {
		variantsBySkin[v.SkinID] = append(variantsBySkin[v.SkinID], v)
	}

	catalog := make([]MasterSkin, 0, len(skins))
	for _, s := range skins {
		ms := MasterSkin{
			Skin:      s,
			ModelName: UnknownName,
			BrandName: UnknownName,
		}

		if m, ok := modelByID[s.ModelID]; ok {
			ms.ModelName = m.Name
			ms.BrandID = m.BrandID
			if b, ok := brandByID[m.BrandID]; ok {
				ms.BrandName = b.Name
			}
		}

		ms.Variants = variantsBySkin[s.ID]
		if ms.Variants == nil {
			ms.Variants = []Variant{}
		}

		catalog = append(catalog, ms)
	}

	return catalog
}

// Query is a conjunction of independent facets. An empty facet places
// no constraint.
type Query struct {
	SearchText string
	BrandIDs   []int64
	ModelIDs   []int64
	ColorHexes []string
}

// Filter evaluates the query: AND across facets, OR within a facet.
// Before evaluation a selected model that is unreachable under the
// selected brands is dropped from the query, so a stale model facet
// never forces an empty result.
func Filter(catalog []MasterSkin, q Query) []MasterSkin {
	q.ModelIDs = reachableModels(catalog, q)

	out := make([]MasterSkin, 0, len(catalog))
	for _, ms := range catalog {
		if q.SearchText != "" && !matchesSearch(ms, q.SearchText) {
			continue
		}
		if len(q.BrandIDs) > 0 && !containsID(q.BrandIDs, ms.BrandID) {
			continue
		}
		if len(q.ModelIDs) > 0 && !containsID(q.ModelIDs, ms.ModelID) {
			continue
		}
		if len(q.ColorHexes) > 0 && !matchesColor(ms, q.ColorHexes) {
			continue
		}
		out = append(out, ms)
	}

	return out
}

// Featured returns the catalog entries named by ids, in the order ids
// dictates. Ids with no catalog entry are stale and silently dropped.
func Featured(catalog []MasterSkin, ids []int64) []MasterSkin {
	byID := make(map[int64]MasterSkin, len(catalog))
	for _, ms := range catalog {
		byID[ms.ID] = ms
	}

	out := make([]MasterSkin, 0, len(ids))
	for _, id := range ids {
		if ms, ok := byID[id]; ok {
			out = append(out, ms)
		}
	}

	return out
}

func reachableModels(catalog []MasterSkin, q Query) []int64 {
	if len(q.BrandIDs) == 0 || len(q.ModelIDs) == 0 {
		return q.ModelIDs
	}

	modelBrand := make(map[int64]int64, len(catalog))
	for _, ms := range catalog {
		modelBrand[ms.ModelID] = ms.BrandID
	}

	kept := make([]int64, 0, len(q.ModelIDs))
	for _, id := range q.ModelIDs {
		if containsID(q.BrandIDs, modelBrand[id]) {
			kept = append(kept, id)
		}
	}
	return kept
}

func matchesSearch(ms MasterSkin, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(ms.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(ms.ModelName), needle) {
		return true
	}
	for _, v := range ms.Variants {
		if strings.Contains(strings.ToLower(v.Name), needle) {
			return true
		}
	}
	return false
}

func matchesColor(ms MasterSkin, hexes []string) bool {
	for _, v := range ms.Variants {
		for _, hex := range hexes {
			if strings.EqualFold(v.ColorHex, hex) {
				return true
			}
		}
	}
	return false
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
