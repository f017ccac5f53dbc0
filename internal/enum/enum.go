package enum

// ── Group A: Persisted values (CHECK constrained in DB) ──

const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

const (
	PaymentMethodCOD = "cod"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// ── Group B: Catalog enums (closed sets, no DB constraint) ──

const (
	CategoryCakes    = "cakes"
	CategoryPastries = "pastries"
	CategoryCupcakes = "cupcakes"
	CategoryCookies  = "cookies"
	CategoryBreads   = "breads"
)

const (
	FlavorVanilla    = "vanilla"
	FlavorChocolate  = "chocolate"
	FlavorStrawberry = "strawberry"
	FlavorRedVelvet  = "red velvet"
	FlavorCarrot     = "carrot"
	FlavorLemon      = "lemon"
)

const (
	FillingButtercream      = "buttercream"
	FillingChocolateGanache = "chocolate ganache"
	FillingCreamCheese      = "cream cheese"
	FillingFruitJam         = "fruit jam"
	FillingCaramel          = "caramel"
)

const (
	ToppingFreshFruit        = "fresh fruit"
	ToppingChocolateShavings = "chocolate shavings"
	ToppingFlowers           = "flowers"
	ToppingSprinkles         = "sprinkles"
	ToppingMacarons          = "macarons"
)

// Ordered lists, used for validation and for rendering pickers.
var (
	Sizes      = []string{SizeSmall, SizeMedium, SizeLarge}
	Categories = []string{CategoryCakes, CategoryPastries, CategoryCupcakes, CategoryCookies, CategoryBreads}
	Flavors    = []string{FlavorVanilla, FlavorChocolate, FlavorStrawberry, FlavorRedVelvet, FlavorCarrot, FlavorLemon}
	Fillings   = []string{FillingButtercream, FillingChocolateGanache, FillingCreamCheese, FillingFruitJam, FillingCaramel}
	Toppings   = []string{ToppingFreshFruit, ToppingChocolateShavings, ToppingFlowers, ToppingSprinkles, ToppingMacarons}

	// DeliverySlots are the whole-hour delivery windows offered between 09:00 and 17:00.
	DeliverySlots = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}
)

