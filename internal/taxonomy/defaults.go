package taxonomy

// defaultProducts lists product phrases; compound names come first
var defaultProducts = []string{
	// Compound product names
	"sony xperia phone", "sony tv", "sony television", "gaming laptop", "macbook pro", "iphone pro", "samsung galaxy", "nike air max", "adidas ultraboost",
	"wireless headphones", "bluetooth speaker", "smart watch", "gaming mouse", "mechanical keyboard", "wireless charger", "power bank", "usb cable",
	// Bags & accessories
	"laptop bag", "backpack", "handbag", "purse", "wallet", "belt", "sunglasses", "reading glasses",
	// Footwear
	"running shoes", "basketball shoes", "dress shoes", "sandals", "boots", "sneakers", "flip flops", "high heels",
	// Clothing
	"t-shirt", "polo shirt", "dress shirt", "hoodie", "sweater", "jacket", "coat", "blazer", "suit", "dress", "skirt", "pants", "jeans", "shorts",
	// Electronics
	"smartphone", "tablet", "laptop", "desktop", "monitor", "keyboard", "mouse", "webcam", "microphone", "headphones", "earbuds", "speaker",
	"tv", "television", "smart tv", "projector", "soundbar", "home theater", "camera", "dslr", "action camera", "drone",
	// Appliances
	"refrigerator", "microwave", "oven", "dishwasher", "washing machine", "dryer", "vacuum cleaner", "air purifier", "fan", "heater",
	// Furniture
	"bed", "mattress", "pillow", "blanket", "sofa", "chair", "table", "desk", "lamp", "mirror", "curtains", "rug",
	// Automotive
	"car", "bicycle", "motorcycle", "scooter", "helmet", "tire", "battery", "oil", "gas", "insurance",
	// Stationery
	"book", "magazine", "newspaper", "notebook", "pen", "pencil", "marker", "highlighter", "eraser", "stapler",
	// Toys & games
	"toy", "game", "puzzle", "doll", "action figure", "board game", "video game", "console", "controller",
	// Health
	"medicine", "vitamin", "supplement", "bandage", "thermometer", "scale", "toothbrush", "toothpaste", "shampoo", "soap",
	// Food & drink
	"food", "snack", "drink", "coffee", "tea", "water", "juice", "soda", "beer", "wine", "chocolate", "candy",
	// Garden
	"flower", "plant", "seed", "pot", "soil", "fertilizer", "garden tool", "lawn mower", "hose", "sprinkler",
	// Tools
	"tool", "hammer", "screwdriver", "wrench", "drill", "saw", "level", "tape measure", "ladder", "rope",
	// Jewelry
	"jewelry", "ring", "necklace", "bracelet", "earrings", "watch", "chain", "pendant", "brooch", "cufflinks",
}

var defaultBrands = []string{
	// Tech
	"apple", "samsung", "sony", "sony xperia", "google", "microsoft", "dell", "hp", "lenovo", "asus", "acer", "lg", "huawei", "xiaomi", "oneplus", "nokia", "motorola",
	// Audio
	"jbl", "bose", "sennheiser", "audio-technica", "beats", "skullcandy", "jabra", "plantronics", "logitech",
	// Fashion
	"nike", "adidas", "puma", "reebok", "converse", "vans", "new balance", "under armour", "lululemon", "zara", "h&m", "uniqlo", "gap", "levi's", "calvin klein", "tommy hilfiger",
	// Luxury
	"gucci", "louis vuitton", "chanel", "prada", "versace", "armani", "dior", "hermes", "burberry", "ralph lauren",
	// Home & furniture
	"ikea", "wayfair", "west elm", "crate & barrel", "pottery barn", "target", "walmart", "home depot", "lowes",
	// Automotive
	"toyota", "honda", "ford", "bmw", "mercedes", "audi", "volkswagen", "nissan", "hyundai", "kia", "tesla",
	// Sports & outdoor
	"patagonia", "north face", "columbia", "timberland", "merrell", "keen", "salomon", "arc'teryx", "marmot",
	// Beauty & personal care
	"l'oreal", "maybelline", "revlon", "covergirl", "neutrogena", "olay", "dove", "pantene", "head & shoulders",
	// Food & beverage
	"coca-cola", "pepsi", "starbucks", "dunkin", "mcdonald's", "kfc", "subway", "domino's", "pizza hut",
}

var defaultRootColors = []string{
	"black", "white", "red", "blue", "green", "yellow", "pink", "gray",
}

var defaultShades = map[string]string{
	"navy blue": "blue", "light blue": "blue", "sky blue": "blue", "dark blue": "blue",
	"forest green": "green", "lime green": "green", "dark green": "green", "light green": "green",
	"dark red": "red", "maroon": "red", "crimson": "red",
	"off white": "white", "cream": "white",
	"light gray": "gray", "dark gray": "gray", "grey": "gray",
	"hot pink": "pink", "light pink": "pink", "dark pink": "pink",
	"mustard yellow": "yellow", "golden yellow": "yellow",
}
