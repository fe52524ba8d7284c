package suggest

import (
	"strings"

	"github.com/pocketprep/pocketprep/internal/model"
)

// fallbackRule pairs query trigger keywords with a fixed suggestion table.
// Triggers are evaluated in order; the first match wins.
type fallbackRule struct {
	keywords   []string
	categories []model.SuggestionCategory
}

// Fallback returns a deterministic packing suggestion set for a query without
// consulting any model. It is pure and never returns an empty result: queries
// matching no trigger get the generic table.
func Fallback(query string) []model.SuggestionCategory {
	lowered := strings.ToLower(query)
	for _, r := range fallbackRules() {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.categories
			}
		}
	}
	return genericFallback()
}

func fallbackRules() []fallbackRule {
	return []fallbackRule{
		{
			keywords: []string{"camp", "outdoor"},
			categories: []model.SuggestionCategory{
				{Name: "Outdoor Gear", Items: []string{"Tent", "Sleeping Bag", "Sleeping Pad", "Flashlight", "Multi-Tool", "Compass", "Rope", "Camp Stove"}},
				{Name: "Clothing", Items: []string{"Hiking Boots", "Warm Jacket", "Quick-Dry Pants", "Wool Socks (3)", "Rain Poncho", "Beanie"}},
				{Name: "Health & Safety", Items: []string{"First Aid Kit", "Insect Repellent", "SPF 50 Sunscreen", "Water Purification Tablets"}},
				{Name: "Food & Snacks", Items: []string{"Trail Mix", "Energy Bars", "Reusable Water Bottle", "Instant Coffee"}},
				{Name: "Electronics", Items: []string{"Portable Battery", "Headlamp", "Phone Charger"}},
			},
		},
		{
			keywords: []string{"beach", "swim", "tropical"},
			categories: []model.SuggestionCategory{
				{Name: "Clothing", Items: []string{"Swimsuit (2)", "Cover-Up", "Shorts (3)", "Tank Tops (3)", "Flip Flops", "Sun Hat"}},
				{Name: "Toiletries & Hygiene", Items: []string{"SPF 50 Sunscreen", "After-Sun Lotion", "Lip Balm with SPF", "Waterproof Hair Ties"}},
				{Name: "Accessories", Items: []string{"Beach Towel", "Sunglasses", "Waterproof Phone Pouch", "Beach Bag", "Reusable Water Bottle"}},
				{Name: "Electronics", Items: []string{"Waterproof Speaker", "Portable Charger", "Camera"}},
				{Name: "Health & Safety", Items: []string{"Insect Repellent", "Aloe Vera Gel", "Reef-Safe Sunscreen"}},
			},
		},
		{
			keywords: []string{"work", "business", "conference", "meeting"},
			categories: []model.SuggestionCategory{
				{Name: "Electronics", Items: []string{"Laptop", "Phone Charger", "Portable Battery", "Presentation Adapter", "Wireless Mouse"}},
				{Name: "Documents", Items: []string{"Business Cards", "ID Badge", "Agenda / Notes", "Boarding Pass"}},
				{Name: "Clothing", Items: []string{"Formal Shirt (2)", "Dress Pants", "Blazer", "Dress Shoes", "Belt", "Tie / Scarf"}},
				{Name: "Accessories", Items: []string{"Notebook", "Quality Pen", "Laptop Bag", "Watch", "Breath Mints"}},
				{Name: "Toiletries & Hygiene", Items: []string{"Deodorant", "Cologne / Perfume", "Toothbrush", "Hair Styling Product"}},
			},
		},
		{
			keywords: []string{"gym", "workout", "fitness", "exercise"},
			categories: []model.SuggestionCategory{
				{Name: "Clothing", Items: []string{"Workout Shorts", "Compression Shirt", "Running Shoes", "Athletic Socks", "Sports Bra", "Gym Gloves"}},
				{Name: "Accessories", Items: []string{"Gym Bag", "Reusable Water Bottle", "Resistance Bands", "Jump Rope", "Foam Roller"}},
				{Name: "Electronics", Items: []string{"Wireless Earbuds", "Fitness Tracker", "Phone Armband"}},
				{Name: "Toiletries & Hygiene", Items: []string{"Deodorant", "Quick-Dry Towel", "Body Wash", "Dry Shampoo"}},
				{Name: "Food & Snacks", Items: []string{"Protein Shake", "Energy Bar", "Banana", "Electrolyte Drink"}},
			},
		},
		{
			keywords: []string{"college", "school", "class", "university"},
			categories: []model.SuggestionCategory{
				{Name: "Electronics", Items: []string{"Laptop", "Charger", "Portable Battery", "USB Drive", "Wireless Earbuds"}},
				{Name: "Accessories", Items: []string{"Backpack", "Notebook (2)", "Pens & Highlighters", "Planner", "Water Bottle", "Pencil Case"}},
				{Name: "Documents", Items: []string{"Student ID", "Class Schedule", "Library Card"}},
				{Name: "Food & Snacks", Items: []string{"Reusable Coffee Mug", "Healthy Snacks", "Lunch Box"}},
				{Name: "Clothing", Items: []string{"Comfortable Sneakers", "Light Jacket", "Extra Layer"}},
			},
		},
		{
			keywords: []string{"hik", "trek", "mountain"},
			categories: []model.SuggestionCategory{
				{Name: "Outdoor Gear", Items: []string{"Trekking Poles", "Daypack (30L)", "Trail Map", "Compass", "Water Bladder"}},
				{Name: "Clothing", Items: []string{"Hiking Boots", "Moisture-Wicking Base Layer", "Quick-Dry Shorts", "Rain Jacket", "Wool Socks (3)", "Sun Hat"}},
				{Name: "Health & Safety", Items: []string{"First Aid Kit", "Emergency Whistle", "SPF 50 Sunscreen", "Blister Bandages", "Insect Repellent"}},
				{Name: "Food & Snacks", Items: []string{"Trail Mix", "Energy Gels", "Dried Fruit", "Reusable Water Bottle (2L)", "Electrolyte Powder"}},
				{Name: "Electronics", Items: []string{"Headlamp", "Portable Charger", "GPS Watch"}},
			},
		},
		{
			keywords: []string{"road trip", "drive", "car trip"},
			categories: []model.SuggestionCategory{
				{Name: "Electronics", Items: []string{"Phone Mount", "Car Charger", "AUX Cable / Bluetooth Adapter", "Portable Battery", "Dash Cam"}},
				{Name: "Food & Snacks", Items: []string{"Cooler Bag", "Reusable Water Bottles", "Road Trip Snacks", "Coffee Thermos"}},
				{Name: "Accessories", Items: []string{"Sunglasses", "Blanket", "Pillow", "Trash Bags", "Wet Wipes"}},
				{Name: "Documents", Items: []string{"Driver's License", "Car Registration", "Insurance Card", "Roadside Assistance Card"}},
				{Name: "Health & Safety", Items: []string{"First Aid Kit", "Hand Sanitizer", "Medications", "Emergency Kit"}},
				{Name: "Entertainment", Items: []string{"Playlist / Podcasts", "Travel Games", "Book / Audiobook"}},
			},
		},
		{
			keywords: []string{"festival", "concert", "music"},
			categories: []model.SuggestionCategory{
				{Name: "Accessories", Items: []string{"Fanny Pack", "Sunglasses", "Ear Plugs", "Bandana", "Reusable Water Bottle", "Clear Bag"}},
				{Name: "Clothing", Items: []string{"Comfortable Sneakers", "Layered Outfits (2-3)", "Rain Poncho", "Hat / Cap"}},
				{Name: "Toiletries & Hygiene", Items: []string{"SPF 50 Sunscreen", "Wet Wipes", "Deodorant", "Hand Sanitizer", "Lip Balm"}},
				{Name: "Electronics", Items: []string{"Portable Charger (large)", "Phone Charger Cable", "Wireless Earbuds"}},
				{Name: "Health & Safety", Items: []string{"Medications", "Electrolyte Packets", "Blister Bandages"}},
			},
		},
		{
			keywords: []string{"winter", "ski", "snow", "cold"},
			categories: []model.SuggestionCategory{
				{Name: "Clothing", Items: []string{"Thermal Base Layer (2)", "Insulated Jacket", "Waterproof Pants", "Warm Beanie", "Ski Goggles", "Thick Gloves", "Wool Socks (4)", "Neck Gaiter"}},
				{Name: "Outdoor Gear", Items: []string{"Ski Pass / Lift Ticket", "Hand Warmers", "Lip Balm with SPF", "Boot Dryer"}},
				{Name: "Toiletries & Hygiene", Items: []string{"Moisturizer", "Sunscreen (yes, for snow!)", "Lip Balm", "Body Lotion"}},
				{Name: "Electronics", Items: []string{"Action Camera", "Portable Charger", "Headphones"}},
				{Name: "Health & Safety", Items: []string{"Pain Relievers", "Hot Cocoa Mix", "First Aid Kit"}},
			},
		},
		{
			keywords: []string{"travel", "trip", "vacation", "holiday", "flight"},
			categories: []model.SuggestionCategory{
				{Name: "Documents", Items: []string{"Passport", "Boarding Pass", "Travel Insurance", "Hotel Confirmation", "Visa (if needed)"}},
				{Name: "Electronics", Items: []string{"Phone Charger", "Portable Battery", "Universal Adapter", "Noise-Canceling Headphones", "Kindle / E-Reader"}},
				{Name: "Clothing", Items: []string{"Versatile Outfits (5)", "Comfortable Walking Shoes", "Light Jacket", "Sleepwear", "Extra Underwear & Socks"}},
				{Name: "Toiletries & Hygiene", Items: []string{"TSA-Approved Toiletry Bag", "Toothbrush & Toothpaste", "Deodorant", "Shampoo & Conditioner", "Razor"}},
				{Name: "Accessories", Items: []string{"Neck Pillow", "Eye Mask", "Luggage Lock", "Packing Cubes", "Reusable Water Bottle"}},
				{Name: "Health & Safety", Items: []string{"Medications", "Hand Sanitizer", "Pain Relievers", "Motion Sickness Tablets"}},
			},
		},
	}
}

func genericFallback() []model.SuggestionCategory {
	return []model.SuggestionCategory{
		{Name: "Electronics", Items: []string{"Phone Charger", "Portable Battery", "Headphones"}},
		{Name: "Clothing", Items: []string{"Extra T-Shirt", "Comfortable Shoes", "Light Jacket"}},
		{Name: "Accessories", Items: []string{"Wallet", "Keys", "Reusable Water Bottle", "Sunglasses"}},
		{Name: "Toiletries & Hygiene", Items: []string{"Deodorant", "Toothbrush", "Hand Sanitizer"}},
		{Name: "Food & Snacks", Items: []string{"Snack Bar", "Chewing Gum", "Mints"}},
	}
}
