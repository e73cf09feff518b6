package models

// SampleMenu is the demo catalog installed by the seed endpoint. Seeding
// replaces the whole collection with these items.
func SampleMenu() []FoodItem {
	return []FoodItem{
		{ID: "breakfast-1", Name: "Ragi Dosa", Price: 45, Rating: 4.4, Image: "breakfast/ragidosa.png", Category: CategoryBreakfast, Description: "Crisp dosa made from nutritious ragi batter, served with coconut chutney and sambar.", IsAvailable: true},
		{ID: "breakfast-2", Name: "Masala Dosa", Price: 55, Rating: 4.9, Image: "breakfast/masaladosa.png", Category: CategoryBreakfast, Description: "Golden crispy dosa stuffed with spiced potato filling, with chutney and tangy sambar.", IsAvailable: true},
		{ID: "breakfast-3", Name: "Porotta", Price: 45, Rating: 4.9, Image: "breakfast/porotta.png", Category: CategoryBreakfast, Description: "Flaky layered flatbread, best paired with a spicy curry.", IsAvailable: true},
		{ID: "breakfast-4", Name: "Burger", Price: 65, Rating: 4.8, Image: "breakfast/burger.png", Category: CategoryBreakfast, Description: "Juicy patty with fresh lettuce, cheese and house sauce in a toasted bun.", IsAvailable: true},
		{ID: "breakfast-5", Name: "Sandwich", Price: 40, Rating: 4.4, Image: "breakfast/sandwich.png", Category: CategoryBreakfast, Description: "Grilled sandwich loaded with vegetables and melted cheese.", IsAvailable: true},
		{ID: "breakfast-6", Name: "Soft Idli", Price: 45, Rating: 4.9, Image: "breakfast/idli.png", Category: CategoryBreakfast, Description: "Steamed rice cakes, light and fluffy, with chutney and sambar.", IsAvailable: true},
		{ID: "lunch-1", Name: "Chicken Biriyani", Price: 165, Rating: 4.8, Image: "lunch/chickenbiriyani.png", Category: CategoryLunch, Description: "Fragrant basmati rice layered with marinated chicken and spices.", IsAvailable: true},
		{ID: "lunch-2", Name: "Meals", Price: 120, Rating: 4.6, Image: "lunch/meals.png", Category: CategoryLunch, Description: "Traditional thali with rice, curries, pickle and papad.", IsAvailable: true},
		{ID: "lunch-3", Name: "Paneer Butter Masala", Price: 115, Rating: 4.3, Image: "lunch/paneerbuttermasala.png", Category: CategoryLunch, Description: "Cottage cheese simmered in a rich tomato butter gravy.", IsAvailable: true},
		{ID: "lunch-4", Name: "Pizza", Price: 105, Rating: 4.2, Image: "lunch/pizza.png", Category: CategoryLunch, Description: "Wood-fired pizza with a generous layer of cheese and toppings.", IsAvailable: true},
		{ID: "lunch-5", Name: "Chicken Curry", Price: 125, Rating: 4.8, Image: "lunch/chickencurry.png", Category: CategoryLunch, Description: "Home-style chicken curry in a spiced onion-tomato gravy.", IsAvailable: true},
		{ID: "lunch-6", Name: "Fish Curry", Price: 95, Rating: 4.9, Image: "lunch/fishcurry.png", Category: CategoryLunch, Description: "Tangy coastal fish curry with kokum and coconut.", IsAvailable: true},
		{ID: "dinner-1", Name: "Grilled Chicken", Price: 150, Rating: 4.4, Image: "dinner/grilledchicken.png", Category: CategoryDinner, Description: "Char-grilled chicken marinated in pepper and herbs.", IsAvailable: true},
		{ID: "dinner-2", Name: "Fish Curry", Price: 95, Rating: 4.9, Image: "dinner/fishcurry.png", Category: CategoryDinner, Description: "Tangy coastal fish curry with kokum and coconut.", IsAvailable: true},
		{ID: "dinner-3", Name: "Chicken Biriyani", Price: 165, Rating: 4.8, Image: "dinner/chickenbiriyani.png", Category: CategoryDinner, Description: "Fragrant basmati rice layered with marinated chicken and spices.", IsAvailable: true},
		{ID: "dinner-4", Name: "Pizza", Price: 105, Rating: 4.3, Image: "dinner/pizza.png", Category: CategoryDinner, Description: "Wood-fired pizza with a generous layer of cheese and toppings.", IsAvailable: true},
		{ID: "dinner-5", Name: "Chicken Curry", Price: 115, Rating: 4.8, Image: "dinner/chickencurry.png", Category: CategoryDinner, Description: "Home-style chicken curry in a spiced onion-tomato gravy.", IsAvailable: true},
		{ID: "dinner-6", Name: "Mutton Biriyani", Price: 245, Rating: 4.6, Image: "dinner/muttonbiriyani.png", Category: CategoryDinner, Description: "Slow-cooked mutton biriyani with caramelized onions and saffron.", IsAvailable: true},
		{ID: "dessert-1", Name: "Pazham Pori", Price: 15, Rating: 4.6, Image: "dessert/pazhampori.png", Category: CategoryDessert, Description: "Ripe banana fritters in a crisp golden batter.", IsAvailable: true},
		{ID: "dessert-2", Name: "Samosa", Price: 15, Rating: 4.5, Image: "dessert/samosa.png", Category: CategoryDessert, Description: "Crunchy pastry filled with spiced potato and peas.", IsAvailable: true},
		{ID: "dessert-3", Name: "Juice", Price: 55, Rating: 4.5, Image: "dessert/juice.png", Category: CategoryDessert, Description: "Freshly pressed seasonal fruit juice.", IsAvailable: true},
		{ID: "dessert-4", Name: "Chikku Shake", Price: 65, Rating: 4.8, Image: "dessert/chikkushake.png", Category: CategoryDessert, Description: "Thick sapota milkshake topped with ice cream.", IsAvailable: true},
		{ID: "dessert-5", Name: "Gulab Jamun", Price: 85, Rating: 4.2, Image: "dessert/gulabjamun.png", Category: CategoryDessert, Description: "Soft milk dumplings soaked in rose-scented syrup.", IsAvailable: true},
		{ID: "dessert-6", Name: "Vanilla Ice Cream", Price: 70, Rating: 4.1, Image: "dessert/icecream.png", Category: CategoryDessert, Description: "Classic vanilla scoops with a drizzle of chocolate.", IsAvailable: true},
	}
}
