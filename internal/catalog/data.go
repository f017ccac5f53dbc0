package catalog

import (
	"github.com/bakehouse/api/internal/enum"
	"github.com/shopspring/decimal"
)

func rupees(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func cake(id, name, desc string, price int64, image string, popular bool, flavors, fillings, toppings []string) Product {
	return Product{
		ID: id, Name: name, Description: desc, Price: rupees(price), Image: image,
		Category: enum.CategoryCakes, Popular: popular,
		Cake: &CakeOptions{Flavors: flavors, Fillings: fillings, Toppings: toppings},
	}
}

func simple(category, id, name, desc string, price int64, image string, popular bool) Product {
	return Product{
		ID: id, Name: name, Description: desc, Price: rupees(price), Image: image,
		Category: category, Popular: popular,
	}
}

// Seed is the storefront's product line. Prices are whole rupees.
func Seed() []Product {
	return []Product{
		// Cakes
		cake("vanilla-cake", "Classic Vanilla Cake",
			"A light and fluffy vanilla cake with buttercream frosting. Perfect for birthdays and celebrations.",
			1200, "/vanilla-cake.jpg", true,
			[]string{enum.FlavorVanilla, enum.FlavorStrawberry, enum.FlavorLemon},
			[]string{enum.FillingButtercream, enum.FillingFruitJam, enum.FillingCreamCheese},
			[]string{enum.ToppingFreshFruit, enum.ToppingSprinkles, enum.ToppingFlowers}),
		cake("chocolate-cake", "Rich Chocolate Cake",
			"A decadent chocolate cake with ganache frosting. Made with premium cocoa for true chocolate lovers.",
			1500, "/chocolate-cake.jpg", true,
			[]string{enum.FlavorChocolate, enum.FlavorVanilla, enum.FlavorRedVelvet},
			[]string{enum.FillingChocolateGanache, enum.FillingButtercream, enum.FillingCaramel},
			[]string{enum.ToppingChocolateShavings, enum.ToppingFreshFruit, enum.ToppingMacarons}),
		cake("strawberry-cake", "Fresh Strawberry Cake",
			"A moist strawberry cake layered with fresh strawberries and strawberry buttercream.",
			1350, "/strawberry-cake.jpg", false,
			[]string{enum.FlavorStrawberry, enum.FlavorVanilla, enum.FlavorLemon},
			[]string{enum.FillingButtercream, enum.FillingFruitJam, enum.FillingCreamCheese},
			[]string{enum.ToppingFreshFruit, enum.ToppingSprinkles}),
		cake("red-velvet-cake", "Red Velvet Cake",
			"A classic red velvet cake with cream cheese frosting. Rich, moist, and slightly tangy.",
			1450, "/red-velvet-cake.jpg", true,
			[]string{enum.FlavorRedVelvet, enum.FlavorChocolate},
			[]string{enum.FillingCreamCheese, enum.FillingButtercream},
			[]string{enum.ToppingSprinkles, enum.ToppingChocolateShavings}),
		cake("carrot-cake", "Spiced Carrot Cake",
			"A spiced carrot cake with walnuts and cream cheese frosting. A perfect balance of sweetness and spice.",
			1300, "/carrot-cake.webp", false,
			[]string{enum.FlavorCarrot, enum.FlavorVanilla},
			[]string{enum.FillingCreamCheese, enum.FillingButtercream},
			[]string{enum.ToppingSprinkles, enum.ToppingFlowers}),
		cake("lemon-cake", "Zesty Lemon Cake",
			"A refreshing lemon cake with lemon curd filling and lemon buttercream. Perfect for summer parties.",
			1250, "/lemon-cake.jpg", false,
			[]string{enum.FlavorLemon, enum.FlavorVanilla},
			[]string{enum.FillingFruitJam, enum.FillingButtercream},
			[]string{enum.ToppingFreshFruit, enum.ToppingFlowers}),
		cake("caramel-cake", "Salted Caramel Cake",
			"A buttery cake with salted caramel filling and caramel buttercream. Sweet and salty perfection.",
			1500, "/caramel-cake.webp", false,
			[]string{enum.FlavorVanilla, enum.FlavorChocolate},
			[]string{enum.FillingCaramel, enum.FillingButtercream},
			[]string{enum.ToppingFreshFruit, enum.ToppingFlowers}),
		cake("macaron-cake", "Macaron Cake",
			"A light almond cake with buttercream filling and topped with colorful macarons.",
			1800, "/macaron-cake.png", true,
			[]string{enum.FlavorVanilla, enum.FlavorStrawberry, enum.FlavorChocolate},
			[]string{enum.FillingButtercream, enum.FillingCreamCheese, enum.FillingChocolateGanache},
			[]string{enum.ToppingMacarons, enum.ToppingFreshFruit, enum.ToppingFlowers}),

		// Pastries
		simple(enum.CategoryPastries, "croissant", "Butter Croissant",
			"A classic French pastry with a flaky, buttery texture.", 120, "/Butter-croissant.png", true),
		simple(enum.CategoryPastries, "pain-au-chocolat", "Pain au Chocolat",
			"A chocolate-filled croissant pastry. The perfect breakfast treat.", 150, "/pain-chocolat.png", false),
		simple(enum.CategoryPastries, "danish", "Mixed Fruit Danish",
			"A flaky pastry filled with pastry cream and topped with seasonal fruits.", 130, "/Mixed-fruit.png", true),
		simple(enum.CategoryPastries, "eclair", "Chocolate Éclair",
			"A choux pastry filled with vanilla custard and topped with chocolate glaze.", 140, "/eclair.png", false),

		// Cupcakes
		simple(enum.CategoryCupcakes, "vanilla-cupcake", "Vanilla Cupcake",
			"A moist vanilla cupcake topped with buttercream frosting and sprinkles.", 80, "/Vanila-cup.png", true),
		simple(enum.CategoryCupcakes, "chocolate-cupcake", "Chocolate Cupcake",
			"A rich chocolate cupcake with chocolate buttercream frosting.", 90, "/Chocolat-cup.png", true),
		simple(enum.CategoryCupcakes, "red-velvet-cupcake", "Red Velvet Cupcake",
			"A classic red velvet cupcake with cream cheese frosting.", 95, "/Red-cup.png", false),
		simple(enum.CategoryCupcakes, "lemon-cupcake", "Lemon Cupcake",
			"A zesty lemon cupcake with lemon buttercream frosting.", 85, "/lemon-cup.png", false),

		// Cookies
		simple(enum.CategoryCookies, "chocolate-chip", "Chocolate Chip Cookie",
			"A classic chocolate chip cookie with a soft center and crisp edges.", 60, "/choco-chip.jpg", true),
		simple(enum.CategoryCookies, "oatmeal-raisin", "Oatmeal Raisin Cookie",
			"A hearty oatmeal cookie with plump raisins and a hint of cinnamon.", 65, "/oatmeal-chip.jpg", false),
		simple(enum.CategoryCookies, "peanut-butter", "Peanut Butter Cookie",
			"A soft peanut butter cookie with the perfect balance of sweet and salty.", 70, "/peanut-chip.jpg", false),
		simple(enum.CategoryCookies, "sugar-cookie", "Sugar Cookie",
			"A classic sugar cookie with a crisp exterior and chewy interior.", 55, "/sugar-chip.jpg", true),

		// Breads
		simple(enum.CategoryBreads, "sourdough", "Sourdough Bread",
			"A tangy sourdough bread with a crusty exterior and chewy interior.", 180, "/sourdough.png", true),
		simple(enum.CategoryBreads, "baguette", "French Baguette",
			"A traditional French baguette with a crisp crust and soft interior.", 160, "/french.png", false),
		simple(enum.CategoryBreads, "focaccia", "Rosemary Focaccia",
			"A flat Italian bread flavored with olive oil, rosemary, and sea salt.", 200, "/rosemary.png", true),
		simple(enum.CategoryBreads, "ciabatta", "Ciabatta Bread",
			"An Italian white bread made with wheat flour and yeast, with a light and airy texture.", 190, "/ciabatta.png", false),
	}
}
