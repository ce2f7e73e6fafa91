package catalog

import "strings"

// tanglishNames maps Romanized-Tamil spellings to the canonical English
// vegetable term. Many spellings collapse to one term; the table is
// intentionally tolerant of common transliteration variants.
var tanglishNames = map[string]string{
	// Onion family
	"vengayam":        "onion",
	"vengaya":         "onion",
	"venkayam":        "onion",
	"sambar vengayam": "shallot",
	"chinna vengayam": "shallot",

	// Tomato
	"thakkali": "tomato",
	"thakali":  "tomato",
	"takkali":  "tomato",

	// Potato
	"urulaikizhangu": "potato",
	"urulai":         "potato",
	"urulaikilangu":  "potato",

	// Brinjal
	"kathirikkai": "brinjal",
	"katharikai":  "eggplant",
	"kathiri":     "brinjal",

	// Okra
	"vendakkai": "ladyfinger",
	"vendakai":  "okra",
	"vendai":    "okra",

	// Coriander
	"kothamalli":      "coriander",
	"kothimalli":      "coriander",
	"kothamalli ilai": "coriander",

	// Garlic
	"poondu":         "garlic",
	"vellaipoondu":   "garlic",
	"vellai poondu":  "garlic",

	// Ginger
	"inji":  "ginger",
	"allam": "ginger",

	// Chilli
	"milagai":         "chilli",
	"milaga":          "chilli",
	"pachai milagai":  "green chilli",
	"sivappu milagai": "red chilli",

	// Carrot
	"carrot": "carrot",
	"karot":  "carrot",

	// Beans
	"beans":     "beans",
	"avarakkai": "beans",
	"avarakai":  "beans",

	// Cabbage
	"cabbage":     "cabbage",
	"muttaikose":  "cabbage",
	"muttai kose": "cabbage",

	// Cauliflower
	"cauliflower": "cauliflower",
	"gobi":        "cauliflower",

	// Greens
	"palak":          "spinach",
	"keerai":         "greens",
	"pasalai keerai": "spinach",

	// Drumstick
	"murungakkai": "drumstick",
	"murunga":     "drumstick",
	"murungai":    "drumstick",

	// Gourds
	"pavakkai":   "bitter gourd",
	"pagarkai":   "bitter gourd",
	"sorakkai":   "bottle gourd",
	"suraikai":   "bottle gourd",
	"peerkangai": "ridge gourd",
	"peerkankai": "ridge gourd",
	"pudalangai": "snake gourd",
	"pudal":      "snake gourd",
	"poosanikai": "ash gourd",
	"pusanikai":  "white pumpkin",
	"parangikai": "pumpkin",
	"parangi":    "pumpkin",

	// Cucumber
	"vellarikai": "cucumber",
	"vellari":    "cucumber",

	// Radish
	"mullangi": "radish",
	"mulangi":  "radish",

	// Beetroot
	"beetroot": "beetroot",
	"bit":      "beetroot",

	// Lemon
	"elumichai":        "lemon",
	"elumicham pazham": "lemon",
	"nimbu":            "lemon",

	// Herbs
	"kariveppilai": "curry leaves",
	"karivepilai":  "curry leaves",
	"karuveppilai": "curry leaves",
	"pudina":       "mint",
	"puthina":      "mint",

	// Peas and cluster beans
	"pattani":        "green peas",
	"patani":         "peas",
	"kothavarangai":  "cluster beans",
	"kothavarankai":  "cluster beans",
}

// Resolve maps a Romanized-Tamil search term to its canonical English
// vegetable term. The input is lowercased and trimmed first. Unknown terms
// pass through unchanged so plain English searches keep working.
func Resolve(raw string) string {
	term := strings.ToLower(strings.TrimSpace(raw))
	if english, ok := tanglishNames[term]; ok {
		return english
	}
	return term
}
