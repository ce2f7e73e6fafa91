package catalog

import (
	"github.com/arunvel/kadai-api/internal/domain/entity"
	"github.com/google/uuid"
)

type seedRow struct {
	name     string
	tamil    string
	tanglish string
	retail   int64 // paise per kg
}

// seedRows is the starter catalog for a new shop, Tamil names included so the
// till can search in either script. Wholesale defaults to 80% of retail.
var seedRows = []seedRow{
	{"Onion", "வெங்காயம்", "vengayam", 4000},
	{"Tomato", "தக்காளி", "thakkali", 2000},
	{"Potato", "உருளைக்கிழங்கு", "urulaikizhangu", 3500},
	{"Carrot", "கேரட்", "carrot", 6000},
	{"Beans", "பீன்ஸ்", "beans", 8000},
	{"Brinjal", "கத்தரிக்காய்", "kathirikkai", 4500},
	{"Cabbage", "முட்டைக்கோஸ்", "muttaikose", 3000},
	{"Cauliflower", "காலிஃபிளவர்", "gobi", 4000},
	{"Ginger", "இஞ்சி", "inji", 12000},
	{"Garlic", "பூண்டு", "poondu", 20000},
	{"Green Chilly", "பச்சை மிளகாய்", "pachai milagai", 8000},
	{"Drumstick", "முருங்கைக்காய்", "murungakkai", 9000},
	{"Ladies Finger", "வெண்டைக்காய்", "vendakkai", 5000},
	{"Bitter Gourd", "பாகற்காய்", "pavakkai", 5500},
	{"Bottle Gourd", "சுரைக்காய்", "sorakkai", 3500},
	{"Snake Gourd", "புடலங்காய்", "pudalangai", 4000},
	{"Ridge Gourd", "பீர்க்கங்காய்", "peerkangai", 4500},
	{"Pumpkin", "பூசணிக்காய்", "parangikai", 3000},
	{"Radish", "முள்ளங்கி", "mullangi", 3500},
	{"Beetroot", "பீட்ரூட்", "beetroot", 5000},
	{"Capsicum", "குடைமிளகாய்", "kudai milagai", 8000},
	{"Green Peas", "பச்சை பட்டாணி", "pattani", 10000},
	{"Cucumber", "வெள்ளரிக்காய்", "vellarikai", 3000},
	{"Small Onion", "சின்ன வெங்காயம்", "chinna vengayam", 9000},
	{"Sweet Potato", "சர்க்கரைவள்ளி கிழங்கு", "sakkaravalli kizhangu", 4500},
	{"Raw Plantain", "வாழைக்காய்", "vazhakkai", 4000},
	{"Lemon", "எலுமிச்சை", "elumichai", 7000},
	{"Coconut", "தேங்காய்", "thengai", 5000},
	{"Curry Leaves", "கறிவேப்பிலை", "kariveppilai", 2000},
	{"Coriander Leaves", "கொத்தமல்லி", "kothamalli", 2500},
	{"Mint Leaves", "புதினா", "pudina", 2500},
	{"Cluster Beans", "கொத்தவரை", "kothavarangai", 6500},
	{"Broad Beans", "அவரைக்காய்", "avarakkai", 6000},
	{"Ash Gourd", "சாம்பல் பூசணி", "poosanikai", 3000},
	{"Broccoli", "ப்ரோக்கோலி", "broccoli", 12000},
	{"Spring Onion", "வெங்காயத்தாள்", "vengayathal", 4000},
}

// DefaultVegetables returns the starter catalog for a freshly registered
// shop, owned by the given user.
func DefaultVegetables(userID uuid.UUID) []*entity.Vegetable {
	out := make([]*entity.Vegetable, 0, len(seedRows))
	for _, r := range seedRows {
		out = append(out, &entity.Vegetable{
			UserID:         userID,
			Name:           r.name,
			TamilName:      r.tamil,
			TanglishName:   r.tanglish,
			Category:       "Vegetables",
			PricePerKg:     r.retail,
			RetailPrice:    r.retail,
			WholesalePrice: r.retail * 80 / 100,
			StockKg:        100,
		})
	}
	return out
}
