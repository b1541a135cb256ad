package sheets

// Wing Shack sample data used to seed a freshly initialised spreadsheet.

var seedIngredients = [][]string{
	{"Ingredient Name", "Unit", "Unit Cost (£)", "Pack Size", "Cost per Unit (£)", "Supplier", "Category"},
	{"Potato Bun", "each", "25.00", "45", "0.56", "Sysco", "Bread"},
	{"Beyond Meat Patty", "113g", "67.63", "40", "1.69", "Beyond", "Protein"},
	{"American Cheese Slice", "slice", "16.39", "112", "0.15", "Sysco", "Dairy"},
	{"Blue Cheese Slice", "slice", "14.22", "25", "0.57", "Sysco", "Dairy"},
	{"Smoked Cheddar Slice", "slice", "17.41", "50", "0.35", "Sysco", "Dairy"},
	{"Violife Vegan Cheese", "slice", "3.49", "10", "0.35", "Sysco", "Vegan"},
	{"Cucumber", "each", "0.68", "1", "0.68", "Sysco", "Veg"},
	{"Sliced Onion", "g", "3.64", "1250", "0.003", "Sysco", "Veg"},
	{"Jalapenos", "g", "12.77", "1500", "0.009", "Sysco", "Veg"},
	{"Fried Shallots", "g", "8.02", "1000", "0.008", "Sysco", "Garnish"},
	{"Thin Cut Fries", "g", "16.89", "1750", "0.010", "Sysco", "Potato"},
	{"Heinz Truffle Mayo", "ml", "25.69", "1600", "0.016", "Heinz", "Sauce"},
	{"Heinz Korean BBQ Sauce", "ml", "6.52", "875", "0.007", "Heinz", "Sauce"},
	{"Franks Red Hot Sauce", "ml", "20.52", "3780", "0.005", "Franks", "Sauce"},
}

var seedMenuItems = [][]string{
	{"Menu Item Name", "Ingredient Name", "Qty Used", "Unit", "Auto Cost (£)", "Selling Price (£)"},
	{"Wagyu Cheese Smash", "Potato Bun", "1", "each", "", "11.50"},
	{"Wagyu Cheese Smash", "American Cheese Slice", "1", "slice", "", ""},
	{"Wagyu Cheese Smash", "Fried Shallots", "10", "g", "", ""},
	{"Wagyu Cheese Smash", "Truffle Mayo", "15", "ml", "", ""},
	{"Smokey Buffalo Chicken Smash", "Potato Bun", "1", "each", "", "10.50"},
	{"Smokey Buffalo Chicken Smash", "Smoked Cheddar Slice", "1", "slice", "", ""},
	{"Smokey Buffalo Chicken Smash", "Korean BBQ Sauce", "15", "ml", "", ""},
	{"Vegan Smash", "Potato Bun", "1", "each", "", "9.50"},
	{"Vegan Smash", "Beyond Meat Patty", "2", "each", "", ""},
	{"Vegan Smash", "Violife Vegan Cheese", "1", "slice", "", ""},
	{"Vegan Smash", "Jalapenos", "5", "g", "", ""},
	{"Vegan Smash", "Fried Shallots", "10", "g", "", ""},
	{"Vegan Smash", "Truffle Mayo", "15", "ml", "", ""},
	{"Fries", "Thin Cut Fries", "200", "g", "", "3.00"},
}
