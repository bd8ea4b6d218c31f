package healthintel

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

// slotShares splits a daily calorie budget across meal slots.
var slotShares = map[MealSlot]float64{
	SlotBreakfast: 0.25,
	SlotLunch:     0.35,
	SlotDinner:    0.30,
	SlotSnack:     0.10,
}

// macroKind selects which per-100g density a portion is sized against.
type macroKind int

const (
	byProtein macroKind = iota
	byCarbs
	byFat
)

func (k macroKind) density(item FoodItem) float64 {
	switch k {
	case byProtein:
		return item.ProteinPer100g
	case byCarbs:
		return item.CarbsPer100g
	default:
		return item.FatPer100g
	}
}

// macroBudget is a meal's macro targets in (unrounded) grams.
type macroBudget struct {
	proteinG float64
	carbsG   float64
	fatG     float64
}

func budgetFor(mealCalories float64, goal Goal) macroBudget {
	r := ratioFor(goal)
	return macroBudget{
		proteinG: mealCalories * r.protein / 4,
		carbsG:   mealCalories * r.carbs / 4,
		fatG:     mealCalories * r.fat / 9,
	}
}

func (b macroBudget) target(kind macroKind) float64 {
	switch kind {
	case byProtein:
		return b.proteinG
	case byCarbs:
		return b.carbsG
	default:
		return b.fatG
	}
}

// mealRole is one row of a slot composition table: which macro it serves,
// how much of the slot's macro target it covers (or a fixed gram portion),
// the preference-ordered candidate foods, and the category to fall back to
// when no candidate resolves.
type mealRole struct {
	kind       macroKind
	share      float64 // fraction of the slot macro target; ignored when fixedGrams > 0
	fixedGrams float64
	maxGrams   float64 // 0 = no clamp
	candidates []string
	fallback   FoodCategory
	onlyGoals  []Goal // empty = every goal
}

func (r mealRole) appliesTo(goal Goal) bool {
	if len(r.onlyGoals) == 0 {
		return true
	}
	for _, g := range r.onlyGoals {
		if g == goal {
			return true
		}
	}
	return false
}

// slotRoles is the per-slot composition: breakfast is cereal-led, lunch is
// the largest protein+starch plate, dinner swaps in lighter choices, and the
// snack stays small. The lunch oil role is skipped when losing.
var slotRoles = map[MealSlot][]mealRole{
	SlotBreakfast: {
		{kind: byCarbs, share: 0.6, candidates: []string{"oats"}, fallback: CategoryCarb},
		{kind: byProtein, share: 0.7, candidates: []string{"yogurt-greek"}, fallback: CategoryDairy},
		{kind: byCarbs, fixedGrams: 120, candidates: []string{"banana"}, fallback: CategoryFruit},
	},
	SlotLunch: {
		{kind: byProtein, share: 0.9, maxGrams: 250, candidates: []string{"chicken-breast"}, fallback: CategoryProtein},
		{kind: byCarbs, share: 0.8, maxGrams: 300, candidates: []string{"rice-white-cooked"}, fallback: CategoryCarb},
		{kind: byCarbs, fixedGrams: 150, candidates: []string{"broccoli"}, fallback: CategoryVegetable},
		{kind: byFat, fixedGrams: 10, candidates: []string{"olive-oil"}, fallback: CategoryFat,
			onlyGoals: []Goal{GoalMaintain, GoalGain}},
	},
	SlotDinner: {
		{kind: byProtein, share: 0.75, maxGrams: 200, candidates: []string{"salmon"}, fallback: CategoryProtein},
		{kind: byCarbs, share: 0.5, maxGrams: 200, candidates: []string{"sweet-potato", "potato"}, fallback: CategoryCarb},
		{kind: byCarbs, fixedGrams: 150, candidates: []string{"green-beans"}, fallback: CategoryVegetable},
	},
	SlotSnack: {
		{kind: byProtein, fixedGrams: 150, candidates: []string{"yogurt-greek"}, fallback: CategoryDairy},
		{kind: byFat, fixedGrams: 30, candidates: []string{"almond"}, fallback: CategoryFat,
			onlyGoals: []Goal{GoalGain}},
		{kind: byCarbs, fixedGrams: 150, candidates: []string{"apple"}, fallback: CategoryFruit,
			onlyGoals: []Goal{GoalLose, GoalMaintain}},
	},
}

// resolveRole picks the first candidate present in the catalogue, then the
// first item of the fallback category. A false return means the role is
// omitted from the meal entirely.
func (c *Catalog) resolveRole(r mealRole) (FoodItem, bool) {
	for _, id := range r.candidates {
		if item, ok := c.Lookup(id); ok {
			return item, true
		}
	}
	return c.firstOfCategory(r.fallback)
}

// portionGrams sizes a portion to deliver targetMass grams of the role's
// macro given the item's density, clamped to the role ceiling. A zero
// density cannot be sized and omits the role.
func portionGrams(r mealRole, item FoodItem, budget macroBudget) (float64, bool) {
	if r.fixedGrams > 0 {
		return r.fixedGrams, true
	}
	density := r.kind.density(item)
	if density <= 0 {
		return 0, false
	}
	grams := math.Round(budget.target(r.kind) * r.share / (density / 100))
	if r.maxGrams > 0 && grams > r.maxGrams {
		grams = r.maxGrams
	}
	if grams <= 0 {
		return 0, false
	}
	return grams, true
}

func (c *Catalog) buildPortions(roles []mealRole, budget macroBudget, goal Goal) []FoodPortion {
	var portions []FoodPortion
	for _, role := range roles {
		if !role.appliesTo(goal) {
			continue
		}
		item, ok := c.resolveRole(role)
		if !ok {
			continue
		}
		grams, ok := portionGrams(role, item, budget)
		if !ok {
			continue
		}
		portions = append(portions, FoodPortion{FoodID: item.ID, Grams: grams})
	}
	return portions
}

/* ─── Per-slot generation ────────────────────────────────────────────── */

// GenerateSlotMeal composes one meal for a slot from the daily calorie
// budget: the slot share of the day's calories is split into macro targets
// by the goal ratio, then filled role by role from the slot table. Totals
// are realized values recomputed from the final portions, never the
// requested target.
func (c *Catalog) GenerateSlotMeal(dailyCalories int, goal Goal, slot MealSlot) GeneratedMeal {
	share, ok := slotShares[slot]
	if !ok {
		slot, share = SlotSnack, slotShares[SlotSnack]
	}
	budget := budgetFor(float64(dailyCalories)*share, goal)
	portions := c.buildPortions(slotRoles[slot], budget, goal)
	return c.assembleMeal(c.slotMealName(slot, portions), portions)
}

func (c *Catalog) slotMealName(slot MealSlot, portions []FoodPortion) string {
	labels := map[MealSlot]string{
		SlotBreakfast: "Breakfast",
		SlotLunch:     "Lunch",
		SlotDinner:    "Dinner",
		SlotSnack:     "Snack",
	}
	var names []string
	for _, p := range portions {
		if item, ok := c.Lookup(p.FoodID); ok {
			names = append(names, item.Name)
		}
		if len(names) == 3 {
			break
		}
	}
	if len(names) == 0 {
		return "Balanced " + strings.ToLower(labels[slot])
	}
	return labels[slot] + ": " + strings.Join(names, ", ")
}

func (c *Catalog) assembleMeal(name string, portions []FoodPortion) GeneratedMeal {
	total := c.TotalNutrition(portions)
	return GeneratedMeal{
		ID:       uuid.NewString(),
		Name:     name,
		Foods:    portions,
		Calories: total.Calories,
		ProteinG: total.ProteinG,
		CarbsG:   total.CarbsG,
		FatG:     total.FatG,
		FiberG:   total.FiberG,
	}
}

/* ─── Whole-day generation ───────────────────────────────────────────── */

// twoMealLoseSplit gives the first of two meals 40% when losing; other
// goals split evenly.
const twoMealLoseSplit = 0.4

// GenerateDayMeals composes the whole day as one or two meals from the
// daily calorie target. Two meals split 40/60 when losing, 50/50 otherwise.
// mealCount is clamped to 1..2.
func (c *Catalog) GenerateDayMeals(targetCalories int, goal Goal, mealCount int) []GeneratedMeal {
	if mealCount <= 1 {
		portions := c.dayPortions(float64(targetCalories), goal)
		meal := c.assembleMeal("", portions)
		meal.Name = fmt.Sprintf("Single meal (%d kcal)", meal.Calories)
		return []GeneratedMeal{meal}
	}

	split := 0.5
	if goal == GoalLose {
		split = twoMealLoseSplit
	}

	meals := make([]GeneratedMeal, 0, 2)
	for i, share := range []float64{split, 1 - split} {
		portions := c.dayPortions(float64(targetCalories)*share, goal)
		meal := c.assembleMeal("", portions)
		meal.Name = fmt.Sprintf("Meal %d (%d kcal)", i+1, meal.Calories)
		meals = append(meals, meal)
	}
	return meals
}

// day-mode protein pairs: the lean pair when losing, the richer pair
// otherwise. Each covers half the protein target.
var dayProteinPairs = map[bool][]mealRole{
	true: {
		{kind: byProtein, share: 0.5, maxGrams: 250, candidates: []string{"chicken-breast"}, fallback: CategoryProtein},
		{kind: byProtein, share: 0.5, maxGrams: 200, candidates: []string{"yogurt-greek"}, fallback: CategoryDairy},
	},
	false: {
		{kind: byProtein, share: 0.5, maxGrams: 250, candidates: []string{"salmon"}, fallback: CategoryProtein},
		{kind: byProtein, share: 0.5, maxGrams: 200, candidates: []string{"egg-whole"}, fallback: CategoryProtein},
	},
}

// oilTopUpThresholdG is the fat gap below which no oil is added; a few
// grams short is not worth a dedicated line item.
const oilTopUpThresholdG = 5

// dayPortions builds a whole-day meal: protein first from a two-source
// pair, then a starch sized to 70% of the carbs still missing, a fixed
// fruit and vegetable portion, and an oil top-up only when the remaining
// fat gap exceeds 5 g. Running totals use Scale so the remainder math sees
// the same figures the final meal will report.
func (c *Catalog) dayPortions(mealCalories float64, goal Goal) []FoodPortion {
	budget := budgetFor(mealCalories, goal)

	var portions []FoodPortion
	var running Nutrition
	push := func(item FoodItem, grams float64) {
		portions = append(portions, FoodPortion{FoodID: item.ID, Grams: grams})
		running = running.add(Scale(item, grams))
	}

	for _, role := range dayProteinPairs[goal == GoalLose] {
		item, ok := c.resolveRole(role)
		if !ok {
			continue
		}
		if grams, ok := portionGrams(role, item, budget); ok {
			push(item, grams)
		}
	}

	starchID := "sweet-potato"
	if goal == GoalGain {
		starchID = "rice-white-cooked"
	}
	starchRole := mealRole{kind: byCarbs, maxGrams: 300, candidates: []string{starchID}, fallback: CategoryCarb}
	if item, ok := c.resolveRole(starchRole); ok {
		if density := byCarbs.density(item); density > 0 {
			remaining := budget.carbsG - running.CarbsG
			if remaining > 0 {
				grams := math.Round(remaining * 0.7 / (density / 100))
				if grams > starchRole.maxGrams {
					grams = starchRole.maxGrams
				}
				if grams > 0 {
					push(item, grams)
				}
			}
		}
	}

	if item, ok := c.resolveRole(mealRole{candidates: []string{"banana"}, fallback: CategoryFruit}); ok {
		push(item, 120)
	}
	if item, ok := c.resolveRole(mealRole{candidates: []string{"broccoli"}, fallback: CategoryVegetable}); ok {
		push(item, 150)
	}

	if gap := budget.fatG - running.FatG; gap > oilTopUpThresholdG {
		if item, ok := c.resolveRole(mealRole{candidates: []string{"olive-oil"}, fallback: CategoryFat}); ok {
			if density := byFat.density(item); density > 0 {
				grams := math.Min(math.Round(gap/(density/100)), 20)
				if grams > 0 {
					push(item, grams)
				}
			}
		}
	}

	return portions
}

/* ─── Variants & summary ─────────────────────────────────────────────── */

// MealVariantSet holds the three sizes of a slot suggestion.
type MealVariantSet struct {
	Light  GeneratedMeal `json:"light"`
	Normal GeneratedMeal `json:"normal"`
	Rich   GeneratedMeal `json:"rich"`
}

// MealVariants generates a slot meal at 80%, 100%, and 120% of the daily
// budget so the caller can offer a lighter or richer alternative.
func (c *Catalog) MealVariants(dailyCalories int, goal Goal, slot MealSlot) MealVariantSet {
	scale := func(pct float64, label string) GeneratedMeal {
		meal := c.GenerateSlotMeal(int(math.Round(float64(dailyCalories)*pct)), goal, slot)
		if label != "" {
			meal.Name = strings.Replace(meal.Name, ":", " ("+label+"):", 1)
		}
		return meal
	}
	return MealVariantSet{
		Light:  scale(0.8, "light"),
		Normal: scale(1.0, ""),
		Rich:   scale(1.2, "rich"),
	}
}

// MealSummary renders a one-line nutritional digest of a generated meal.
func MealSummary(meal GeneratedMeal) string {
	return fmt.Sprintf("%d kcal · %.0fg P · %.0fg C · %.0fg F",
		meal.Calories, meal.ProteinG, meal.CarbsG, meal.FatG)
}
