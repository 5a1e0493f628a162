package bar

import "github.com/shopspring/decimal"

// WaterSKU gets special narration on add; hydration is encouraged.
const WaterSKU = "N006"

func price(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// DefaultCatalog builds the Outback Bar drink inventory. The data is fixed
// at startup; there is no mutation API.
func DefaultCatalog() *Catalog {
	entries := []CatalogEntry{
		{SKU: "C001", Name: "Margarita", Description: "Tequila, lime juice, triple sec, salt rim", UnitPrice: price(10.00), ABVPercent: 15, Category: CategoryCocktail, Subcategory: "classic"},
		{SKU: "C002", Name: "Old Fashioned", Description: "Bourbon, bitters, sugar cube, orange peel", UnitPrice: price(12.00), ABVPercent: 35, Category: CategoryCocktail, Subcategory: "classic"},
		{SKU: "C003", Name: "Mojito", Description: "White rum, mint, lime, sugar, soda water", UnitPrice: price(11.00), ABVPercent: 10, Category: CategoryCocktail, Subcategory: "refreshing"},
		{SKU: "C004", Name: "Martini", Description: "Gin or vodka, dry vermouth, olive or lemon twist", UnitPrice: price(13.00), ABVPercent: 30, Category: CategoryCocktail, Subcategory: "classic"},
		{SKU: "C005", Name: "Cosmopolitan", Description: "Vodka, cranberry, lime juice, triple sec", UnitPrice: price(11.00), ABVPercent: 20, Category: CategoryCocktail, Subcategory: "classic"},
		{SKU: "C006", Name: "Manhattan", Description: "Rye whiskey, sweet vermouth, bitters, cherry", UnitPrice: price(12.00), ABVPercent: 30, Category: CategoryCocktail, Subcategory: "classic"},
		{SKU: "C007", Name: "Negroni", Description: "Gin, Campari, sweet vermouth", UnitPrice: price(11.00), ABVPercent: 25, Category: CategoryCocktail, Subcategory: "bitter"},
		{SKU: "C008", Name: "Moscow Mule", Description: "Vodka, ginger beer, lime, copper mug", UnitPrice: price(10.00), ABVPercent: 12, Category: CategoryCocktail, Subcategory: "refreshing"},
		{SKU: "C009", Name: "Whiskey Sour", Description: "Bourbon, lemon juice, simple syrup, egg white", UnitPrice: price(10.00), ABVPercent: 20, Category: CategoryCocktail, Subcategory: "sour"},
		{SKU: "C010", Name: "Mai Tai", Description: "Rum blend, orange liqueur, orgeat, lime", UnitPrice: price(12.00), ABVPercent: 25, Category: CategoryCocktail, Subcategory: "tropical"},

		{SKU: "B001", Name: "IPA", Description: "Hoppy, bitter, citrus notes - 6.5% ABV", UnitPrice: price(7.00), ABVPercent: 6.5, Category: CategoryBeer, Subcategory: "draft"},
		{SKU: "B002", Name: "Lager", Description: "Light, crisp, refreshing - 5% ABV", UnitPrice: price(6.00), ABVPercent: 5.0, Category: CategoryBeer, Subcategory: "draft"},
		{SKU: "B003", Name: "Stout", Description: "Dark, rich, coffee notes - 7% ABV", UnitPrice: price(8.00), ABVPercent: 7.0, Category: CategoryBeer, Subcategory: "draft"},
		{SKU: "B004", Name: "Wheat Beer", Description: "Smooth, citrusy, cloudy - 5.5% ABV", UnitPrice: price(6.50), ABVPercent: 5.5, Category: CategoryBeer, Subcategory: "draft"},
		{SKU: "B005", Name: "Pale Ale", Description: "Balanced, hoppy, golden - 5.8% ABV", UnitPrice: price(7.00), ABVPercent: 5.8, Category: CategoryBeer, Subcategory: "draft"},

		{SKU: "W001", Name: "House Red", Description: "Cabernet Sauvignon - Full bodied", UnitPrice: price(9.00), ABVPercent: 13, Category: CategoryWine, Subcategory: "red"},
		{SKU: "W002", Name: "House White", Description: "Chardonnay - Crisp and buttery", UnitPrice: price(9.00), ABVPercent: 12, Category: CategoryWine, Subcategory: "white"},
		{SKU: "W003", Name: "Prosecco", Description: "Italian sparkling - Light and bubbly", UnitPrice: price(10.00), ABVPercent: 11, Category: CategoryWine, Subcategory: "sparkling"},
		{SKU: "W004", Name: "Pinot Noir", Description: "Light red - Earthy and smooth", UnitPrice: price(11.00), ABVPercent: 13, Category: CategoryWine, Subcategory: "red"},
		{SKU: "W005", Name: "Sauvignon Blanc", Description: "Crisp white - Citrus and herbs", UnitPrice: price(10.00), ABVPercent: 12, Category: CategoryWine, Subcategory: "white"},

		{SKU: "N001", Name: "Virgin Mojito", Description: "Mint, lime, sugar, soda water", UnitPrice: price(6.00), ABVPercent: 0, Category: CategoryNonAlcoholic, Subcategory: "mocktail"},
		{SKU: "N002", Name: "Shirley Temple", Description: "Ginger ale, grenadine, maraschino cherry", UnitPrice: price(5.00), ABVPercent: 0, Category: CategoryNonAlcoholic, Subcategory: "mocktail"},
		{SKU: "N003", Name: "Virgin Mary", Description: "Tomato juice, worcestershire, tabasco, celery", UnitPrice: price(6.00), ABVPercent: 0, Category: CategoryNonAlcoholic, Subcategory: "mocktail"},
		{SKU: "N004", Name: "Soda", Description: "Coke, Sprite, Ginger Ale, Tonic", UnitPrice: price(3.00), ABVPercent: 0, Category: CategoryNonAlcoholic, Subcategory: "soft"},
		{SKU: "N005", Name: "Juice", Description: "Orange, cranberry, pineapple, grapefruit", UnitPrice: price(4.00), ABVPercent: 0, Category: CategoryNonAlcoholic, Subcategory: "soft"},
		{SKU: WaterSKU, Name: "Water", Description: "Still or sparkling", UnitPrice: price(0.00), ABVPercent: 0, Category: CategoryNonAlcoholic, Subcategory: "water"},
	}

	aliases := map[string][]string{
		"C001": {"marg", "margarita", "tequila drink"},
		"C002": {"old fashion", "bourbon drink", "whiskey cocktail"},
		"C003": {"mojito", "rum mint", "minty drink"},
		"C004": {"martini", "gin martini", "vodka martini", "dry martini"},
		"C005": {"cosmo", "cosmopolitan", "pink drink"},
		"B001": {"ipa", "india pale ale", "hoppy beer"},
		"B002": {"lager", "light beer", "regular beer"},
		"W001": {"red wine", "cab", "cabernet"},
		"W002": {"white wine", "chard", "chardonnay"},
		"N004": {"coke", "cola", "pepsi", "sprite", "7up", "ginger ale", "tonic", "tonic water", "soda water", "club soda"},
		"N005": {"juice", "orange juice", "oj", "cranberry juice", "cran", "pineapple juice", "grapefruit juice", "apple juice", "tomato juice"},
		WaterSKU: {"water", "h2o", "aqua", "ice water", "tap water", "bottled water", "still water", "sparkling water"},
	}

	return newCatalog(entries, aliases)
}
