package classify

// categoryRules returns the ordered item-name classification table. Keywords
// deliberately collide across groups ("formal" is Clothing, not Documents);
// earlier groups shadow later ones.
func categoryRules() []rule {
	return []rule{
		{
			result: "Electronics",
			keywords: []string{
				"phone", "laptop", "charger", "headphone", "camera", "tablet",
				"flashlight", "battery", "power bank", "adapter", "speaker",
				"watch", "airpod", "earbud",
			},
		},
		{
			result: "Clothing",
			keywords: []string{
				"shirt", "pants", "shoe", "jacket", "socks", "clothes",
				"swimsuit", "dress", "coat", "sweater", "jeans", "shorts",
				"boot", "sandal", "hat", "cap", "hoodie", "glove", "scarf",
				"beanie", "thermal", "bikini", "trunks", "sneaker", "raincoat",
				"poncho", "fleece", "formal", "suit", "underwear",
			},
		},
		{
			result: "Documents",
			keywords: []string{
				"passport", "ticket", "id", "license", "insurance", "boarding",
				"document", "card",
			},
		},
		{
			result: "Toiletries",
			keywords: []string{
				"toothbrush", "soap", "shampoo", "sunscreen", "deodorant",
				"razor", "towel", "lotion", "toothpaste", "conditioner",
				"perfume", "cologne", "wipes", "tissue", "lip balm", "chapstick",
			},
		},
		{
			result: "Food & Drinks",
			keywords: []string{
				"water", "snack", "food", "drink", "coffee", "tea", "protein",
				"energy bar",
			},
		},
		{
			result: "Health & Medicine",
			keywords: []string{
				"medicine", "first aid", "insect", "repellent", "sanitizer",
				"mask", "vitamin", "pill", "bandage", "medication",
			},
		},
		{
			result: "Accessories",
			keywords: []string{
				"bag", "wallet", "sunglasses", "umbrella", "belt", "jewelry",
				"glasses", "key", "pillow", "eye mask",
			},
		},
		{
			result: "Outdoor Gear",
			keywords: []string{
				"tent", "sleeping bag", "compass", "binocular", "knife", "rope",
				"hammock", "stove", "cooler", "multi-tool",
			},
		},
		{
			result: "Entertainment",
			keywords: []string{
				"book", "notebook", "pen", "journal", "game", "puzzle",
			},
		},
	}
}

// iconRules returns the ordered item-name icon table.
func iconRules() []rule {
	return []rule{
		// Electronics
		{result: "iphone", keywords: []string{"phone"}},
		{result: "laptopcomputer", keywords: []string{"laptop", "computer"}},
		{result: "cable.connector", keywords: []string{"charger", "cable"}},
		{result: "headphones", keywords: []string{"headphone", "earphone", "airpod", "earbud"}},
		{result: "battery.100", keywords: []string{"battery", "power bank"}},
		{result: "camera", keywords: []string{"camera"}},
		{result: "ipad", keywords: []string{"tablet", "ipad"}},
		{result: "applewatch", keywords: []string{"watch"}},
		{result: "hifispeaker", keywords: []string{"speaker"}},
		{result: "powerplug", keywords: []string{"adapter", "converter"}},

		// Clothing
		{result: "tshirt", keywords: []string{"jacket", "coat", "hoodie"}},
		{result: "tshirt", keywords: []string{"shirt", "tee", "top"}},
		{result: "figure.walk", keywords: []string{"pants", "jeans", "shorts"}},
		{result: "hanger", keywords: []string{"socks", "underwear"}},
		{result: "figure.pool.swim", keywords: []string{"swimsuit", "bikini", "trunks"}},
		{result: "crown", keywords: []string{"hat", "cap", "beanie"}},
		{result: "tshirt", keywords: []string{"sweater", "fleece", "thermal"}},
		{result: "hanger", keywords: []string{"dress", "formal", "suit"}},
		{result: "hand.raised", keywords: []string{"glove", "mitten"}},
		{result: "wind", keywords: []string{"scarf"}},
		{result: "cloud.rain", keywords: []string{"raincoat", "poncho"}},

		// Footwear
		{result: "shoe.2", keywords: []string{"shoe", "sneaker", "boot"}},
		{result: "shoe.2", keywords: []string{"sandal", "flip flop"}},
		{result: "shoe.2", keywords: []string{"slipper"}},

		// Documents
		{result: "doc.text", keywords: []string{"passport"}},
		{result: "ticket", keywords: []string{"ticket", "boarding"}},
		{result: "creditcard", keywords: []string{"id", "license", "card"}},
		{result: "doc.text.fill", keywords: []string{"insurance", "document"}},
		{result: "map", keywords: []string{"map", "guidebook"}},

		// Toiletries
		{result: "mouth", keywords: []string{"toothbrush", "toothpaste"}},
		{result: "drop", keywords: []string{"shampoo", "conditioner", "soap"}},
		{result: "sun.max", keywords: []string{"sunscreen", "spf", "lotion"}},
		{result: "aqi.medium", keywords: []string{"deodorant", "perfume", "cologne"}},
		{result: "scissors", keywords: []string{"razor", "shaving"}},
		{result: "tablecloth", keywords: []string{"towel"}},
		{result: "square.stack", keywords: []string{"tissue", "wipes"}},
		{result: "mouth", keywords: []string{"lip balm", "chapstick"}},

		// Accessories
		{result: "waterbottle", keywords: []string{"bottle", "water"}},
		{result: "book.closed", keywords: []string{"book", "notebook", "journal"}},
		{result: "pencil", keywords: []string{"pen", "pencil"}},
		{result: "bag", keywords: []string{"bag", "backpack", "daypack"}},
		{result: "creditcard", keywords: []string{"wallet", "purse", "money", "cash"}},
		{result: "key", keywords: []string{"key"}},
		{result: "umbrella", keywords: []string{"umbrella"}},
		{result: "sunglasses", keywords: []string{"sunglasses", "glasses"}},
		{result: "circle", keywords: []string{"belt"}},
		{result: "sparkle", keywords: []string{"jewelry", "necklace", "ring"}},
		{result: "moon.zzz", keywords: []string{"pillow", "eye mask"}},

		// Outdoor / Camping
		{result: "tent", keywords: []string{"tent"}},
		{result: "bed.double", keywords: []string{"sleeping bag", "sleeping pad"}},
		{result: "flashlight.on.fill", keywords: []string{"flash", "torch"}},
		{result: "safari", keywords: []string{"compass"}},
		{result: "binoculars", keywords: []string{"binocular"}},
		{result: "wrench.and.screwdriver", keywords: []string{"knife", "multi-tool"}},
		{result: "link", keywords: []string{"rope", "cord"}},
		{result: "flame", keywords: []string{"stove", "cooker"}},
		{result: "snowflake", keywords: []string{"cooler", "ice"}},
		{result: "tree", keywords: []string{"hammock"}},

		// Health
		{result: "pills", keywords: []string{"medicine", "medication", "pill"}},
		{result: "cross.case", keywords: []string{"first aid", "bandage"}},
		{result: "ladybug", keywords: []string{"insect", "bug spray", "repellent"}},
		{result: "hands.sparkles", keywords: []string{"mask", "sanitizer"}},
		{result: "pill", keywords: []string{"vitamin", "supplement"}},

		// Food
		{result: "fork.knife", keywords: []string{"snack", "food", "meal"}},
		{result: "cup.and.saucer", keywords: []string{"coffee", "tea"}},
		{result: "bolt", keywords: []string{"protein", "energy bar"}},
	}
}
