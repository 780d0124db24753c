// Package catalog is the fixed meal plan data the rest of the app reads.
// It is mock data: no nutrition math happens here, the plan and its
// alternatives are hardcoded the way a seeded demo dataset would be.
package catalog

import "math/rand"

type Meal struct {
	ID          string
	Name        string
	Time        string
	Calories    int
	ProteinG    float64
	CarbsG      float64
	FatG        float64
	Image       string
	Ingredients []string
}

type DailyPlan struct {
	TargetCalories int
	TargetProteinG float64
	TargetCarbsG   float64
	TargetFatG     float64
	WaterGoal      int
	Meals          []Meal
}

var plan = DailyPlan{
	TargetCalories: 2200,
	TargetProteinG: 150,
	TargetCarbsG:   220,
	TargetFatG:     80,
	WaterGoal:      8,
	Meals: []Meal{
		{
			ID:          "1",
			Name:        "Power Breakfast Bowl",
			Time:        "7:30 AM",
			Calories:    450,
			ProteinG:    35,
			CarbsG:      45,
			FatG:        15,
			Image:       "/meals/breakfast.jpg",
			Ingredients: []string{"Eggs", "Avocado", "Quinoa", "Spinach", "Cherry Tomatoes"},
		},
		{
			ID:          "2",
			Name:        "Mediterranean Lunch",
			Time:        "12:30 PM",
			Calories:    650,
			ProteinG:    45,
			CarbsG:      55,
			FatG:        28,
			Image:       "/meals/lunch.jpg",
			Ingredients: []string{"Grilled Chicken", "Hummus", "Falafel", "Mixed Greens", "Olive Oil"},
		},
		{
			ID:          "3",
			Name:        "Pre-Workout Snack",
			Time:        "4:00 PM",
			Calories:    250,
			ProteinG:    20,
			CarbsG:      30,
			FatG:        8,
			Image:       "/meals/snack.jpg",
			Ingredients: []string{"Greek Yogurt", "Berries", "Honey", "Almonds"},
		},
		{
			ID:          "4",
			Name:        "Lean Dinner",
			Time:        "7:30 PM",
			Calories:    550,
			ProteinG:    50,
			CarbsG:      40,
			FatG:        22,
			Image:       "/meals/dinner.jpg",
			Ingredients: []string{"Salmon", "Brown Rice", "Broccoli", "Lemon", "Herbs"},
		},
	},
}

var alternatives = map[string][]Meal{
	"1": {
		{
			ID:          "1a",
			Name:        "Protein Oat Stack",
			Time:        "7:30 AM",
			Calories:    430,
			ProteinG:    32,
			CarbsG:      52,
			FatG:        12,
			Image:       "/meals/breakfast-alt1.jpg",
			Ingredients: []string{"Rolled Oats", "Whey", "Banana", "Peanut Butter", "Cinnamon"},
		},
		{
			ID:          "1b",
			Name:        "Smoked Salmon Toast",
			Time:        "7:30 AM",
			Calories:    470,
			ProteinG:    33,
			CarbsG:      40,
			FatG:        19,
			Image:       "/meals/breakfast-alt2.jpg",
			Ingredients: []string{"Sourdough", "Smoked Salmon", "Cream Cheese", "Dill", "Capers"},
		},
	},
	"2": {
		{
			ID:          "2a",
			Name:        "Teriyaki Chicken Bowl",
			Time:        "12:30 PM",
			Calories:    640,
			ProteinG:    48,
			CarbsG:      60,
			FatG:        20,
			Image:       "/meals/lunch-alt1.jpg",
			Ingredients: []string{"Chicken Thigh", "Jasmine Rice", "Edamame", "Teriyaki Glaze", "Sesame"},
		},
		{
			ID:          "2b",
			Name:        "Turkey Burrito Bowl",
			Time:        "12:30 PM",
			Calories:    620,
			ProteinG:    46,
			CarbsG:      58,
			FatG:        22,
			Image:       "/meals/lunch-alt2.jpg",
			Ingredients: []string{"Ground Turkey", "Black Beans", "Corn", "Brown Rice", "Pico de Gallo"},
		},
	},
	"3": {
		{
			ID:          "3a",
			Name:        "Cottage Cheese Cup",
			Time:        "4:00 PM",
			Calories:    230,
			ProteinG:    24,
			CarbsG:      20,
			FatG:        7,
			Image:       "/meals/snack-alt1.jpg",
			Ingredients: []string{"Cottage Cheese", "Pineapple", "Walnuts"},
		},
		{
			ID:          "3b",
			Name:        "Rice Cake Stack",
			Time:        "4:00 PM",
			Calories:    260,
			ProteinG:    18,
			CarbsG:      34,
			FatG:        9,
			Image:       "/meals/snack-alt2.jpg",
			Ingredients: []string{"Rice Cakes", "Almond Butter", "Apple", "Sea Salt"},
		},
	},
	"4": {
		{
			ID:          "4a",
			Name:        "Garlic Shrimp Plate",
			Time:        "7:30 PM",
			Calories:    530,
			ProteinG:    48,
			CarbsG:      42,
			FatG:        18,
			Image:       "/meals/dinner-alt1.jpg",
			Ingredients: []string{"Shrimp", "Garlic", "Couscous", "Zucchini", "Lemon"},
		},
		{
			ID:          "4b",
			Name:        "Steak & Sweet Potato",
			Time:        "7:30 PM",
			Calories:    580,
			ProteinG:    52,
			CarbsG:      38,
			FatG:        24,
			Image:       "/meals/dinner-alt2.jpg",
			Ingredients: []string{"Sirloin", "Sweet Potato", "Asparagus", "Chimichurri"},
		},
	},
}

func Plan() DailyPlan {
	out := plan
	out.Meals = append([]Meal(nil), plan.Meals...)
	return out
}

func MealCount() int {
	return len(plan.Meals)
}

func MealByID(id string) (Meal, bool) {
	for _, m := range plan.Meals {
		if m.ID == id {
			return m, true
		}
	}
	return Meal{}, false
}

func Alternatives(id string) []Meal {
	return append([]Meal(nil), alternatives[id]...)
}

// Swap picks a uniform-random alternative for the given base meal and
// returns it under the original meal id, matching the dashboard swap flow.
// The pick is cosmetic and never persisted.
func Swap(id string) (Meal, bool) {
	alts := alternatives[id]
	if len(alts) == 0 {
		return Meal{}, false
	}
	alt := alts[rand.Intn(len(alts))]
	alt.ID = id
	return alt, true
}

// OrderedMeals returns the plan's meals in the user's custom order. Ids not
// in the plan are skipped; plan meals missing from the order are appended in
// default position. An empty order means default order.
func OrderedMeals(order []string) []Meal {
	if len(order) == 0 {
		return Plan().Meals
	}
	out := make([]Meal, 0, len(plan.Meals))
	seen := map[string]bool{}
	for _, id := range order {
		if seen[id] {
			continue
		}
		if m, ok := MealByID(id); ok {
			out = append(out, m)
			seen[id] = true
		}
	}
	for _, m := range plan.Meals {
		if !seen[m.ID] {
			out = append(out, m)
		}
	}
	return out
}
