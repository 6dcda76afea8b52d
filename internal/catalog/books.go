package catalog

import (
	"github.com/Gusmack1/charlesmackaybooks-order-service/internal/domain"
	"github.com/shopspring/decimal"
)

func gbp(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Books is the static storefront catalog. Prices in GBP, weights in grams.
var Books = []domain.Book{
	{
		ID:          "beardmore-aviation",
		Title:       "Beardmore Aviation 1913-1930",
		Price:       gbp("12.76"),
		InStock:     true,
		Category:    "Scottish Aviation History",
		WeightGrams: 380,
		ISBN:        "9780957344303",
		Description: "The story of a Scottish industrial giant's aviation activities.",
	},
	{
		ID:          "clydeside-aviation-vol1",
		Title:       "Clydeside Aviation Volume One: The Great War",
		Price:       gbp("16.08"),
		InStock:     true,
		Category:    "Scottish Aviation History",
		WeightGrams: 420,
		ISBN:        "9780957344310",
		Description: "Aviation on Clydeside during the First World War.",
	},
	{
		ID:          "clydeside-aviation-vol2",
		Title:       "Clydeside Aviation Volume Two: Between the Wars",
		Price:       gbp("15.84"),
		InStock:     true,
		Category:    "Scottish Aviation History",
		WeightGrams: 410,
		ISBN:        "9780957344327",
		Description: "The interwar years of aviation on the Clyde.",
	},
	{
		ID:          "german-aircraft-great-war",
		Title:       "German Aircraft in the Great War",
		Price:       gbp("14.33"),
		InStock:     true,
		Category:    "WWI Aviation",
		WeightGrams: 390,
		ISBN:        "9780957344334",
	},
	{
		ID:          "british-aircraft-great-war",
		Title:       "British Aircraft of the Great War",
		Price:       gbp("14.33"),
		InStock:     true,
		Category:    "WWI Aviation",
		WeightGrams: 390,
		ISBN:        "9780957344341",
	},
	{
		ID:          "sycamore-seeds",
		Title:       "The Sycamore Seeds: The Early History of the Helicopter",
		Price:       gbp("9.85"),
		InStock:     true,
		Category:    "Helicopter History",
		WeightGrams: 340,
		ISBN:        "9780957344358",
	},
	{
		ID:          "sabres-from-north",
		Title:       "Sabres from the North",
		Price:       gbp("11.20"),
		InStock:     true,
		Category:    "Cold War Aviation",
		WeightGrams: 360,
		ISBN:        "9780957344365",
	},
	{
		ID:          "birth-atomic-bomb",
		Title:       "The Birth of the Atomic Bomb",
		Price:       gbp("13.54"),
		InStock:     false,
		Category:    "Military History",
		WeightGrams: 400,
		ISBN:        "9780957344372",
	},
}
