package healthintel

import (
	"log"
	"math"
	"strings"
)

// FoodCategory is one of the eight food groups the catalogue is organized by.
type FoodCategory string

const (
	CategoryProtein   FoodCategory = "protein"
	CategoryCarb      FoodCategory = "carb"
	CategoryVegetable FoodCategory = "vegetable"
	CategoryFruit     FoodCategory = "fruit"
	CategoryDairy     FoodCategory = "dairy"
	CategoryFat       FoodCategory = "fat"
	CategorySnack     FoodCategory = "snack"
	CategoryBeverage  FoodCategory = "beverage"
)

// FoodItem is one catalogue entry. All nutritional densities are per 100 g.
// Items are reference data: never mutated, only shadowed by overrides.
type FoodItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category FoodCategory `json:"category"`

	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g,omitempty"`

	// Common-unit conversion for entry convenience ("piece", "cup", "tbsp",
	// "slice", "glass").
	CommonUnit   string  `json:"common_unit,omitempty"`
	GramsPerUnit float64 `json:"grams_per_unit,omitempty"`

	// SearchTerms are synonyms matched by Search in addition to Name.
	SearchTerms []string `json:"search_terms,omitempty"`
}

// Nutrition is a scaled nutritional total. Calories are whole kcal; macro
// grams carry one decimal — the same precision as the catalogue source data.
type Nutrition struct {
	Calories int     `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	FiberG   float64 `json:"fiber_g"`
}

func (n Nutrition) add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		ProteinG: n.ProteinG + o.ProteinG,
		CarbsG:   n.CarbsG + o.CarbsG,
		FatG:     n.FatG + o.FatG,
		FiberG:   n.FiberG + o.FiberG,
	}
}

/* ─── Catalogue ──────────────────────────────────────────────────────── */

// searchLimit caps Search results; the UI never shows more than a screenful.
const searchLimit = 20

// Catalog is the read view over the canonical food table plus an optional
// per-caller override map. The canonical table is shared and immutable;
// overrides are merged at read time so concurrent callers never alias
// mutated state.
type Catalog struct {
	items     []FoodItem
	overrides map[string]FoodItem
}

// defaultCatalog wraps the canonical table with no overrides. Built once at
// init; safe for concurrent use because it is never written after that.
var defaultCatalog = newCatalogFromItems(foodTable, nil)

// DefaultCatalog returns the shared catalogue without customizations.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// NewCatalog returns a catalogue view that shadows canonical items with the
// given overrides. An override must keep the same ID as the item it replaces;
// overrides for unknown IDs are ignored (they would be unreachable anyway,
// since the canonical table defines the iteration set).
func NewCatalog(overrides map[string]FoodItem) *Catalog {
	return newCatalogFromItems(foodTable, overrides)
}

func newCatalogFromItems(items []FoodItem, overrides map[string]FoodItem) *Catalog {
	return &Catalog{items: items, overrides: overrides}
}

// resolve applies the override shadow for a canonical item.
func (c *Catalog) resolve(item FoodItem) FoodItem {
	if o, ok := c.overrides[item.ID]; ok {
		return o
	}
	return item
}

// Lookup returns the item for id, with overrides applied.
func (c *Catalog) Lookup(id string) (FoodItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return c.resolve(item), true
		}
	}
	return FoodItem{}, false
}

// Search matches query case-insensitively against item names and synonyms.
// Queries shorter than two characters return nothing. Results keep catalogue
// declaration order and are capped at 20 — there is no ranking beyond
// match/no-match.
func (c *Catalog) Search(query string) []FoodItem {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 {
		return nil
	}

	var results []FoodItem
	for _, item := range c.items {
		item = c.resolve(item)
		if foodMatches(item, query) {
			results = append(results, item)
			if len(results) == searchLimit {
				break
			}
		}
	}
	return results
}

func foodMatches(item FoodItem, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(item.Name), lowerQuery) {
		return true
	}
	for _, term := range item.SearchTerms {
		if strings.Contains(strings.ToLower(term), lowerQuery) {
			return true
		}
	}
	return false
}

// ByCategory returns all items of a category, in declaration order.
func (c *Catalog) ByCategory(cat FoodCategory) []FoodItem {
	var results []FoodItem
	for _, item := range c.items {
		if item.Category == cat {
			results = append(results, c.resolve(item))
		}
	}
	return results
}

// firstOfCategory is the fallback item when a generator shortlist id is
// missing from the catalogue.
func (c *Catalog) firstOfCategory(cat FoodCategory) (FoodItem, bool) {
	for _, item := range c.items {
		if item.Category == cat {
			return c.resolve(item), true
		}
	}
	return FoodItem{}, false
}

/* ─── Scaling ────────────────────────────────────────────────────────── */

// Scale computes the nutrition of a gram quantity of an item, linear in
// grams/100. Calories round to whole kcal and macros to one decimal — the
// same precision as the per-100g source values. Other components rely on
// this exact rounding so per-row and aggregate figures always agree.
func Scale(item FoodItem, grams float64) Nutrition {
	factor := grams / 100
	return Nutrition{
		Calories: int(math.Round(item.CaloriesPer100g * factor)),
		ProteinG: round1(item.ProteinPer100g * factor),
		CarbsG:   round1(item.CarbsPer100g * factor),
		FatG:     round1(item.FatPer100g * factor),
		FiberG:   round1(item.FiberPer100g * factor),
	}
}

// TotalNutrition sums the scaled nutrition of a portion list. Portions whose
// id does not resolve are logged and skipped — an unknown id (e.g. after a
// catalogue revision) must never poison a whole meal total.
func (c *Catalog) TotalNutrition(portions []FoodPortion) Nutrition {
	var total Nutrition
	for _, p := range portions {
		item, ok := c.Lookup(p.FoodID)
		if !ok {
			log.Printf("[catalog] unknown food id %q ignored in portion list", p.FoodID)
			continue
		}
		total = total.add(Scale(item, p.Grams))
	}
	return total
}

// EstimateCaloriesByName guesses per-100g calories for a free-text food name
// by substring match against the catalogue; 200 kcal when nothing matches.
// Used for quick manual entries before the user picks a real item.
func (c *Catalog) EstimateCaloriesByName(name string) int {
	lower := strings.ToLower(name)
	for _, item := range c.items {
		item = c.resolve(item)
		if strings.Contains(lower, strings.ToLower(item.Name)) {
			return int(math.Round(item.CaloriesPer100g))
		}
		for _, term := range item.SearchTerms {
			if strings.Contains(lower, strings.ToLower(term)) {
				return int(math.Round(item.CaloriesPer100g))
			}
		}
	}
	return 200
}
