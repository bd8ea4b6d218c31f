package healthintel

// foodTable is the canonical food catalogue. All values are per 100 g,
// sourced from USDA FoodData Central with CIQUAL (ANSES) cross-checks.
// Declaration order is load-bearing: Search and ByCategory return items in
// this order, and the meal generator falls back to the first item of a
// category when a shortlist id is missing. Append within a category group;
// never reorder.
var foodTable = []FoodItem{
	/* ─── Proteins ───────────────────────────────────────────────────── */
	{
		ID: "chicken-breast", Name: "Chicken breast", Category: CategoryProtein,
		CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6,
		CommonUnit: "piece", GramsPerUnit: 150,
		SearchTerms: []string{"chicken", "poultry"},
	},
	{
		ID: "chicken-thigh", Name: "Chicken thigh", Category: CategoryProtein,
		CaloriesPer100g: 209, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 11,
		CommonUnit: "piece", GramsPerUnit: 120,
	},
	{
		ID: "beef-steak", Name: "Beef steak", Category: CategoryProtein,
		CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 17,
		CommonUnit: "piece", GramsPerUnit: 200,
		SearchTerms: []string{"beef", "red meat", "steak"},
	},
	{
		ID: "ground-beef", Name: "Ground beef (15% fat)", Category: CategoryProtein,
		CaloriesPer100g: 250, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 15,
		SearchTerms: []string{"beef", "mince"},
	},
	{
		ID: "pork-chop", Name: "Pork chop", Category: CategoryProtein,
		CaloriesPer100g: 231, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 14,
		CommonUnit: "piece", GramsPerUnit: 170,
		SearchTerms: []string{"pork"},
	},
	{
		ID: "salmon", Name: "Salmon", Category: CategoryProtein,
		CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13,
		CommonUnit: "piece", GramsPerUnit: 150,
		SearchTerms: []string{"fish"},
	},
	{
		ID: "cod", Name: "Cod fillet", Category: CategoryProtein,
		CaloriesPer100g: 82, ProteinPer100g: 18, CarbsPer100g: 0, FatPer100g: 0.7,
		CommonUnit: "piece", GramsPerUnit: 140,
		SearchTerms: []string{"fish", "white fish"},
	},
	{
		ID: "tuna-canned", Name: "Canned tuna", Category: CategoryProtein,
		CaloriesPer100g: 116, ProteinPer100g: 26, CarbsPer100g: 0, FatPer100g: 1,
		SearchTerms: []string{"tuna", "fish"},
	},
	{
		ID: "sardines", Name: "Sardines in oil", Category: CategoryProtein,
		CaloriesPer100g: 208, ProteinPer100g: 25, CarbsPer100g: 0, FatPer100g: 11.5,
		SearchTerms: []string{"fish", "sardine"},
	},
	{
		ID: "egg-whole", Name: "Whole egg", Category: CategoryProtein,
		CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11,
		CommonUnit: "piece", GramsPerUnit: 50,
		SearchTerms: []string{"egg", "eggs"},
	},
	{
		ID: "egg-white", Name: "Egg white", Category: CategoryProtein,
		CaloriesPer100g: 52, ProteinPer100g: 11, CarbsPer100g: 0.7, FatPer100g: 0.2,
		CommonUnit: "piece", GramsPerUnit: 33,
	},
	{
		ID: "turkey-breast", Name: "Turkey breast", Category: CategoryProtein,
		CaloriesPer100g: 135, ProteinPer100g: 30, CarbsPer100g: 0, FatPer100g: 1,
		SearchTerms: []string{"turkey", "poultry"},
	},
	{
		ID: "shrimp", Name: "Shrimp", Category: CategoryProtein,
		CaloriesPer100g: 99, ProteinPer100g: 24, CarbsPer100g: 0.2, FatPer100g: 0.3,
		SearchTerms: []string{"prawns", "seafood"},
	},
	{
		ID: "tofu-firm", Name: "Firm tofu", Category: CategoryProtein,
		CaloriesPer100g: 144, ProteinPer100g: 17, CarbsPer100g: 2.8, FatPer100g: 8.7,
		SearchTerms: []string{"tofu", "soy"},
	},
	{
		ID: "tempeh", Name: "Tempeh", Category: CategoryProtein,
		CaloriesPer100g: 192, ProteinPer100g: 20, CarbsPer100g: 7.6, FatPer100g: 11,
		SearchTerms: []string{"soy"},
	},
	{
		ID: "protein-powder", Name: "Whey protein powder", Category: CategoryProtein,
		CaloriesPer100g: 370, ProteinPer100g: 80, CarbsPer100g: 6, FatPer100g: 3,
		SearchTerms: []string{"whey", "protein powder"},
	},
	{
		ID: "ham-lean", Name: "Lean ham", Category: CategoryProtein,
		CaloriesPer100g: 115, ProteinPer100g: 19, CarbsPer100g: 1.2, FatPer100g: 3.5,
		CommonUnit: "slice", GramsPerUnit: 28,
		SearchTerms: []string{"ham"},
	},

	/* ─── Carbs ──────────────────────────────────────────────────────── */
	{
		ID: "rice-white-cooked", Name: "White rice, cooked", Category: CategoryCarb,
		CaloriesPer100g: 130, ProteinPer100g: 2.7, CarbsPer100g: 28, FatPer100g: 0.3,
		FiberPer100g: 0.4, CommonUnit: "cup", GramsPerUnit: 158,
		SearchTerms: []string{"rice"},
	},
	{
		ID: "rice-brown-cooked", Name: "Brown rice, cooked", Category: CategoryCarb,
		CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 24, FatPer100g: 0.9,
		FiberPer100g: 1.8, CommonUnit: "cup", GramsPerUnit: 195,
		SearchTerms: []string{"rice", "wholegrain"},
	},
	{
		ID: "pasta-cooked", Name: "Pasta, cooked", Category: CategoryCarb,
		CaloriesPer100g: 131, ProteinPer100g: 5, CarbsPer100g: 25, FatPer100g: 1.1,
		FiberPer100g: 1.8, CommonUnit: "cup", GramsPerUnit: 140,
		SearchTerms: []string{"pasta", "spaghetti", "noodles"},
	},
	{
		ID: "bread-white", Name: "White bread", Category: CategoryCarb,
		CaloriesPer100g: 265, ProteinPer100g: 9, CarbsPer100g: 49, FatPer100g: 3.2,
		FiberPer100g: 2.7, CommonUnit: "slice", GramsPerUnit: 30,
		SearchTerms: []string{"bread"},
	},
	{
		ID: "bread-whole-wheat", Name: "Whole-wheat bread", Category: CategoryCarb,
		CaloriesPer100g: 247, ProteinPer100g: 13, CarbsPer100g: 41, FatPer100g: 3.4,
		FiberPer100g: 7, CommonUnit: "slice", GramsPerUnit: 35,
		SearchTerms: []string{"bread", "wholemeal"},
	},
	{
		ID: "oats", Name: "Rolled oats", Category: CategoryCarb,
		CaloriesPer100g: 389, ProteinPer100g: 17, CarbsPer100g: 66, FatPer100g: 7,
		FiberPer100g: 10.6, CommonUnit: "cup", GramsPerUnit: 80,
		SearchTerms: []string{"oats", "oatmeal", "porridge"},
	},
	{
		ID: "potato", Name: "Potato, boiled", Category: CategoryCarb,
		CaloriesPer100g: 93, ProteinPer100g: 2, CarbsPer100g: 21, FatPer100g: 0.1,
		FiberPer100g: 2.1,
		SearchTerms:  []string{"potato"},
	},
	{
		ID: "sweet-potato", Name: "Sweet potato", Category: CategoryCarb,
		CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1,
		FiberPer100g: 3,
		SearchTerms:  []string{"yam"},
	},
	{
		ID: "quinoa-cooked", Name: "Quinoa, cooked", Category: CategoryCarb,
		CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 21, FatPer100g: 1.9,
		FiberPer100g: 2.8, CommonUnit: "cup", GramsPerUnit: 185,
	},
	{
		ID: "couscous-cooked", Name: "Couscous, cooked", Category: CategoryCarb,
		CaloriesPer100g: 112, ProteinPer100g: 3.8, CarbsPer100g: 23, FatPer100g: 0.2,
		FiberPer100g: 1.4,
		SearchTerms:  []string{"semolina"},
	},
	{
		ID: "lentils-cooked", Name: "Lentils, cooked", Category: CategoryCarb,
		CaloriesPer100g: 116, ProteinPer100g: 9, CarbsPer100g: 20, FatPer100g: 0.4,
		FiberPer100g: 7.9, CommonUnit: "cup", GramsPerUnit: 198,
		SearchTerms: []string{"lentil", "legume"},
	},
	{
		ID: "chickpeas-cooked", Name: "Chickpeas, cooked", Category: CategoryCarb,
		CaloriesPer100g: 164, ProteinPer100g: 8.9, CarbsPer100g: 27, FatPer100g: 2.6,
		FiberPer100g: 7.6, CommonUnit: "cup", GramsPerUnit: 164,
		SearchTerms: []string{"garbanzo", "legume"},
	},
	{
		ID: "black-beans-cooked", Name: "Black beans, cooked", Category: CategoryCarb,
		CaloriesPer100g: 132, ProteinPer100g: 8.9, CarbsPer100g: 24, FatPer100g: 0.5,
		FiberPer100g: 8.7, CommonUnit: "cup", GramsPerUnit: 172,
		SearchTerms: []string{"beans", "legume"},
	},
	{
		ID: "corn-tortilla", Name: "Corn tortilla", Category: CategoryCarb,
		CaloriesPer100g: 218, ProteinPer100g: 5.7, CarbsPer100g: 45, FatPer100g: 2.9,
		FiberPer100g: 6.3, CommonUnit: "piece", GramsPerUnit: 26,
		SearchTerms: []string{"tortilla", "wrap"},
	},
	{
		ID: "bagel", Name: "Plain bagel", Category: CategoryCarb,
		CaloriesPer100g: 250, ProteinPer100g: 10, CarbsPer100g: 49, FatPer100g: 1.5,
		FiberPer100g: 2.1, CommonUnit: "piece", GramsPerUnit: 105,
	},
	{
		ID: "rice-cakes", Name: "Rice cakes", Category: CategoryCarb,
		CaloriesPer100g: 387, ProteinPer100g: 8.2, CarbsPer100g: 82, FatPer100g: 2.8,
		FiberPer100g: 4.2, CommonUnit: "piece", GramsPerUnit: 9,
	},

	/* ─── Vegetables ─────────────────────────────────────────────────── */
	{
		ID: "broccoli", Name: "Broccoli", Category: CategoryVegetable,
		CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4,
		FiberPer100g: 2.6, CommonUnit: "cup", GramsPerUnit: 91,
	},
	{
		ID: "spinach", Name: "Spinach", Category: CategoryVegetable,
		CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4,
		FiberPer100g: 2.2, CommonUnit: "cup", GramsPerUnit: 30,
	},
	{
		ID: "tomato", Name: "Tomato", Category: CategoryVegetable,
		CaloriesPer100g: 18, ProteinPer100g: 0.9, CarbsPer100g: 3.9, FatPer100g: 0.2,
		FiberPer100g: 1.2, CommonUnit: "piece", GramsPerUnit: 120,
	},
	{
		ID: "cucumber", Name: "Cucumber", Category: CategoryVegetable,
		CaloriesPer100g: 15, ProteinPer100g: 0.7, CarbsPer100g: 3.6, FatPer100g: 0.1,
		FiberPer100g: 0.5,
	},
	{
		ID: "carrot", Name: "Carrot", Category: CategoryVegetable,
		CaloriesPer100g: 41, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.2,
		FiberPer100g: 2.8, CommonUnit: "piece", GramsPerUnit: 60,
	},
	{
		ID: "bell-pepper", Name: "Bell pepper", Category: CategoryVegetable,
		CaloriesPer100g: 31, ProteinPer100g: 1, CarbsPer100g: 6, FatPer100g: 0.3,
		FiberPer100g: 2.1,
		SearchTerms:  []string{"pepper", "capsicum"},
	},
	{
		ID: "lettuce", Name: "Lettuce", Category: CategoryVegetable,
		CaloriesPer100g: 15, ProteinPer100g: 1.4, CarbsPer100g: 2.9, FatPer100g: 0.2,
		FiberPer100g: 1.3,
		SearchTerms:  []string{"salad greens"},
	},
	{
		ID: "zucchini", Name: "Zucchini", Category: CategoryVegetable,
		CaloriesPer100g: 17, ProteinPer100g: 1.2, CarbsPer100g: 3.1, FatPer100g: 0.3,
		FiberPer100g: 1,
		SearchTerms:  []string{"courgette"},
	},
	{
		ID: "green-beans", Name: "Green beans", Category: CategoryVegetable,
		CaloriesPer100g: 31, ProteinPer100g: 1.8, CarbsPer100g: 7, FatPer100g: 0.2,
		FiberPer100g: 2.7,
		SearchTerms:  []string{"string beans"},
	},
	{
		ID: "cauliflower", Name: "Cauliflower", Category: CategoryVegetable,
		CaloriesPer100g: 25, ProteinPer100g: 1.9, CarbsPer100g: 5, FatPer100g: 0.3,
		FiberPer100g: 2,
	},
	{
		ID: "mushrooms", Name: "White mushrooms", Category: CategoryVegetable,
		CaloriesPer100g: 22, ProteinPer100g: 3.1, CarbsPer100g: 3.3, FatPer100g: 0.3,
		FiberPer100g: 1, CommonUnit: "cup", GramsPerUnit: 70,
		SearchTerms: []string{"mushroom", "champignon"},
	},
	{
		ID: "onion", Name: "Onion", Category: CategoryVegetable,
		CaloriesPer100g: 40, ProteinPer100g: 1.1, CarbsPer100g: 9.3, FatPer100g: 0.1,
		FiberPer100g: 1.7, CommonUnit: "piece", GramsPerUnit: 110,
	},
	{
		ID: "asparagus", Name: "Asparagus", Category: CategoryVegetable,
		CaloriesPer100g: 20, ProteinPer100g: 2.2, CarbsPer100g: 3.9, FatPer100g: 0.1,
		FiberPer100g: 2.1,
	},
	{
		ID: "kale", Name: "Kale", Category: CategoryVegetable,
		CaloriesPer100g: 35, ProteinPer100g: 2.9, CarbsPer100g: 4.4, FatPer100g: 1.5,
		FiberPer100g: 4.1, CommonUnit: "cup", GramsPerUnit: 21,
	},
	{
		ID: "peas", Name: "Green peas", Category: CategoryVegetable,
		CaloriesPer100g: 81, ProteinPer100g: 5.4, CarbsPer100g: 14, FatPer100g: 0.4,
		FiberPer100g: 5.7, CommonUnit: "cup", GramsPerUnit: 145,
	},

	/* ─── Fruits ─────────────────────────────────────────────────────── */
	{
		ID: "banana", Name: "Banana", Category: CategoryFruit,
		CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3,
		FiberPer100g: 2.6, CommonUnit: "piece", GramsPerUnit: 120,
	},
	{
		ID: "apple", Name: "Apple", Category: CategoryFruit,
		CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2,
		FiberPer100g: 2.4, CommonUnit: "piece", GramsPerUnit: 180,
	},
	{
		ID: "orange", Name: "Orange", Category: CategoryFruit,
		CaloriesPer100g: 47, ProteinPer100g: 0.9, CarbsPer100g: 12, FatPer100g: 0.1,
		FiberPer100g: 2.4, CommonUnit: "piece", GramsPerUnit: 130,
	},
	{
		ID: "strawberry", Name: "Strawberries", Category: CategoryFruit,
		CaloriesPer100g: 32, ProteinPer100g: 0.7, CarbsPer100g: 7.7, FatPer100g: 0.3,
		FiberPer100g: 2, CommonUnit: "cup", GramsPerUnit: 150,
		SearchTerms: []string{"berries"},
	},
	{
		ID: "blueberry", Name: "Blueberries", Category: CategoryFruit,
		CaloriesPer100g: 57, ProteinPer100g: 0.7, CarbsPer100g: 14, FatPer100g: 0.3,
		FiberPer100g: 2.4, CommonUnit: "cup", GramsPerUnit: 148,
		SearchTerms: []string{"berries"},
	},
	{
		ID: "grape", Name: "Grapes", Category: CategoryFruit,
		CaloriesPer100g: 69, ProteinPer100g: 0.7, CarbsPer100g: 18, FatPer100g: 0.2,
		FiberPer100g: 0.9,
	},
	{
		ID: "watermelon", Name: "Watermelon", Category: CategoryFruit,
		CaloriesPer100g: 30, ProteinPer100g: 0.6, CarbsPer100g: 8, FatPer100g: 0.2,
		FiberPer100g: 0.4, CommonUnit: "cup", GramsPerUnit: 152,
		SearchTerms: []string{"melon"},
	},
	{
		ID: "avocado", Name: "Avocado", Category: CategoryFruit,
		CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 9, FatPer100g: 15,
		FiberPer100g: 7, CommonUnit: "piece", GramsPerUnit: 150,
	},
	{
		ID: "pear", Name: "Pear", Category: CategoryFruit,
		CaloriesPer100g: 57, ProteinPer100g: 0.4, CarbsPer100g: 15, FatPer100g: 0.1,
		FiberPer100g: 3.1, CommonUnit: "piece", GramsPerUnit: 180,
	},
	{
		ID: "peach", Name: "Peach", Category: CategoryFruit,
		CaloriesPer100g: 39, ProteinPer100g: 0.9, CarbsPer100g: 10, FatPer100g: 0.3,
		FiberPer100g: 1.5, CommonUnit: "piece", GramsPerUnit: 150,
	},
	{
		ID: "kiwi", Name: "Kiwi", Category: CategoryFruit,
		CaloriesPer100g: 61, ProteinPer100g: 1.1, CarbsPer100g: 15, FatPer100g: 0.5,
		FiberPer100g: 3, CommonUnit: "piece", GramsPerUnit: 75,
	},
	{
		ID: "pineapple", Name: "Pineapple", Category: CategoryFruit,
		CaloriesPer100g: 50, ProteinPer100g: 0.5, CarbsPer100g: 13, FatPer100g: 0.1,
		FiberPer100g: 1.4, CommonUnit: "cup", GramsPerUnit: 165,
	},
	{
		ID: "mango", Name: "Mango", Category: CategoryFruit,
		CaloriesPer100g: 60, ProteinPer100g: 0.8, CarbsPer100g: 15, FatPer100g: 0.4,
		FiberPer100g: 1.6, CommonUnit: "cup", GramsPerUnit: 165,
	},
	{
		ID: "raspberry", Name: "Raspberries", Category: CategoryFruit,
		CaloriesPer100g: 52, ProteinPer100g: 1.2, CarbsPer100g: 12, FatPer100g: 0.7,
		FiberPer100g: 6.5, CommonUnit: "cup", GramsPerUnit: 123,
		SearchTerms: []string{"berries"},
	},

	/* ─── Dairy ──────────────────────────────────────────────────────── */
	{
		ID: "milk-whole", Name: "Whole milk", Category: CategoryDairy,
		CaloriesPer100g: 61, ProteinPer100g: 3.2, CarbsPer100g: 4.8, FatPer100g: 3.3,
		CommonUnit: "cup", GramsPerUnit: 244,
		SearchTerms: []string{"milk"},
	},
	{
		ID: "milk-skim", Name: "Skim milk", Category: CategoryDairy,
		CaloriesPer100g: 34, ProteinPer100g: 3.4, CarbsPer100g: 5, FatPer100g: 0.1,
		CommonUnit: "cup", GramsPerUnit: 244,
		SearchTerms: []string{"milk"},
	},
	{
		ID: "yogurt-plain", Name: "Plain yogurt", Category: CategoryDairy,
		CaloriesPer100g: 59, ProteinPer100g: 3.5, CarbsPer100g: 4.7, FatPer100g: 3.3,
		CommonUnit: "cup", GramsPerUnit: 245,
		SearchTerms: []string{"yogurt", "yoghurt"},
	},
	{
		ID: "yogurt-greek", Name: "Greek yogurt", Category: CategoryDairy,
		CaloriesPer100g: 97, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 5,
		CommonUnit: "cup", GramsPerUnit: 170,
		SearchTerms: []string{"yogurt", "yoghurt"},
	},
	{
		ID: "skyr", Name: "Skyr", Category: CategoryDairy,
		CaloriesPer100g: 63, ProteinPer100g: 11, CarbsPer100g: 4, FatPer100g: 0.2,
		CommonUnit: "cup", GramsPerUnit: 170,
		SearchTerms: []string{"yogurt", "quark"},
	},
	{
		ID: "cheese-mozzarella", Name: "Mozzarella", Category: CategoryDairy,
		CaloriesPer100g: 280, ProteinPer100g: 28, CarbsPer100g: 2.2, FatPer100g: 17,
		SearchTerms: []string{"cheese"},
	},
	{
		ID: "cheese-cheddar", Name: "Cheddar", Category: CategoryDairy,
		CaloriesPer100g: 403, ProteinPer100g: 25, CarbsPer100g: 1.3, FatPer100g: 33,
		SearchTerms: []string{"cheese"},
	},
	{
		ID: "cheese-feta", Name: "Feta", Category: CategoryDairy,
		CaloriesPer100g: 264, ProteinPer100g: 14, CarbsPer100g: 4.1, FatPer100g: 21,
		SearchTerms: []string{"cheese"},
	},
	{
		ID: "cottage-cheese", Name: "Cottage cheese", Category: CategoryDairy,
		CaloriesPer100g: 98, ProteinPer100g: 11, CarbsPer100g: 3.4, FatPer100g: 4.3,
		CommonUnit: "cup", GramsPerUnit: 226,
		SearchTerms: []string{"cheese", "fromage blanc"},
	},

	/* ─── Fats & oils ────────────────────────────────────────────────── */
	{
		ID: "butter", Name: "Butter", Category: CategoryFat,
		CaloriesPer100g: 717, ProteinPer100g: 0.9, CarbsPer100g: 0.1, FatPer100g: 81,
		CommonUnit: "tbsp", GramsPerUnit: 14,
	},
	{
		ID: "olive-oil", Name: "Olive oil", Category: CategoryFat,
		CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100,
		CommonUnit: "tbsp", GramsPerUnit: 14,
		SearchTerms: []string{"oil"},
	},
	{
		ID: "vegetable-oil", Name: "Vegetable oil", Category: CategoryFat,
		CaloriesPer100g: 884, ProteinPer100g: 0, CarbsPer100g: 0, FatPer100g: 100,
		CommonUnit: "tbsp", GramsPerUnit: 14,
		SearchTerms: []string{"oil"},
	},
	{
		ID: "peanut-butter", Name: "Peanut butter", Category: CategoryFat,
		CaloriesPer100g: 588, ProteinPer100g: 25, CarbsPer100g: 20, FatPer100g: 50,
		CommonUnit: "tbsp", GramsPerUnit: 16,
		SearchTerms: []string{"peanut"},
	},
	{
		ID: "almond", Name: "Almonds", Category: CategoryFat,
		CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50,
		FiberPer100g: 12.5,
		SearchTerms:  []string{"nuts"},
	},
	{
		ID: "walnut", Name: "Walnuts", Category: CategoryFat,
		CaloriesPer100g: 654, ProteinPer100g: 15, CarbsPer100g: 14, FatPer100g: 65,
		FiberPer100g: 6.7,
		SearchTerms:  []string{"nuts"},
	},
	{
		ID: "cashew", Name: "Cashews", Category: CategoryFat,
		CaloriesPer100g: 553, ProteinPer100g: 18, CarbsPer100g: 30, FatPer100g: 44,
		FiberPer100g: 3.3,
		SearchTerms:  []string{"nuts"},
	},
	{
		ID: "chia-seeds", Name: "Chia seeds", Category: CategoryFat,
		CaloriesPer100g: 486, ProteinPer100g: 17, CarbsPer100g: 42, FatPer100g: 31,
		FiberPer100g: 34, CommonUnit: "tbsp", GramsPerUnit: 12,
		SearchTerms: []string{"seeds"},
	},

	/* ─── Snacks ─────────────────────────────────────────────────────── */
	{
		ID: "honey", Name: "Honey", Category: CategorySnack,
		CaloriesPer100g: 304, ProteinPer100g: 0.3, CarbsPer100g: 82, FatPer100g: 0,
		CommonUnit: "tbsp", GramsPerUnit: 21,
	},
	{
		ID: "dark-chocolate", Name: "Dark chocolate 70%", Category: CategorySnack,
		CaloriesPer100g: 598, ProteinPer100g: 7.8, CarbsPer100g: 46, FatPer100g: 43,
		FiberPer100g: 11,
		SearchTerms:  []string{"chocolate"},
	},
	{
		ID: "granola", Name: "Granola", Category: CategorySnack,
		CaloriesPer100g: 471, ProteinPer100g: 13, CarbsPer100g: 55, FatPer100g: 21,
		FiberPer100g: 7, CommonUnit: "cup", GramsPerUnit: 60,
		SearchTerms: []string{"muesli"},
	},
	{
		ID: "protein-bar", Name: "Protein bar", Category: CategorySnack,
		CaloriesPer100g: 380, ProteinPer100g: 30, CarbsPer100g: 40, FatPer100g: 12,
		FiberPer100g: 6, CommonUnit: "piece", GramsPerUnit: 60,
	},
	{
		ID: "popcorn-air", Name: "Air-popped popcorn", Category: CategorySnack,
		CaloriesPer100g: 387, ProteinPer100g: 13, CarbsPer100g: 78, FatPer100g: 4.5,
		FiberPer100g: 14.5, CommonUnit: "cup", GramsPerUnit: 8,
		SearchTerms: []string{"popcorn"},
	},
	{
		ID: "hummus", Name: "Hummus", Category: CategorySnack,
		CaloriesPer100g: 166, ProteinPer100g: 7.9, CarbsPer100g: 14, FatPer100g: 9.6,
		FiberPer100g: 6, CommonUnit: "tbsp", GramsPerUnit: 15,
	},

	/* ─── Beverages ──────────────────────────────────────────────────── */
	{
		ID: "coffee-black", Name: "Black coffee", Category: CategoryBeverage,
		CaloriesPer100g: 2, ProteinPer100g: 0.3, CarbsPer100g: 0, FatPer100g: 0,
		CommonUnit: "cup", GramsPerUnit: 240,
		SearchTerms: []string{"coffee", "espresso"},
	},
	{
		ID: "orange-juice", Name: "Orange juice", Category: CategoryBeverage,
		CaloriesPer100g: 45, ProteinPer100g: 0.7, CarbsPer100g: 10, FatPer100g: 0.2,
		CommonUnit: "glass", GramsPerUnit: 248,
		SearchTerms: []string{"juice"},
	},
	{
		ID: "protein-shake", Name: "Protein shake", Category: CategoryBeverage,
		CaloriesPer100g: 70, ProteinPer100g: 12, CarbsPer100g: 3, FatPer100g: 1,
		CommonUnit: "glass", GramsPerUnit: 250,
		SearchTerms: []string{"shake"},
	},
	{
		ID: "oat-milk", Name: "Oat milk", Category: CategoryBeverage,
		CaloriesPer100g: 47, ProteinPer100g: 1, CarbsPer100g: 7.6, FatPer100g: 1.5,
		CommonUnit: "glass", GramsPerUnit: 240,
		SearchTerms: []string{"milk", "plant milk"},
	},
	{
		ID: "green-tea", Name: "Green tea", Category: CategoryBeverage,
		CaloriesPer100g: 1, ProteinPer100g: 0, CarbsPer100g: 0.2, FatPer100g: 0,
		CommonUnit: "cup", GramsPerUnit: 240,
		SearchTerms: []string{"tea"},
	},
}
