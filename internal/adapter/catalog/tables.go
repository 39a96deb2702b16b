package catalog

type categoryTable struct {
	displayName   string
	brands        []string
	subcategories []string
	features      []string
	basePrices    map[string]float64
	descriptions  []string
	imageURL      string
}

// Sampling pools for synthetic catalog generation. The category set and
// attribute pools are fixed; only the sampling is randomized.
var categoryTables = []categoryTable{
	{
		displayName: "Smartphones",
		brands: []string{
			"Apple", "Samsung", "OnePlus", "Xiaomi", "Realme",
			"Vivo", "Oppo", "Google", "Nothing", "Motorola",
		},
		subcategories: []string{"Flagship", "Premium", "Mid-range", "Budget", "Gaming"},
		features: []string{
			"High refresh rate display", "Multiple camera setup", "Fast charging",
			"5G connectivity", "Wireless charging", "Water resistance", "Face unlock",
			"Fingerprint sensor", "Stereo speakers", "Gaming mode", "AI photography",
			"Night mode",
		},
		basePrices: map[string]float64{
			"Flagship": 80000, "Premium": 50000, "Mid-range": 25000,
			"Budget": 12000, "Gaming": 35000,
		},
		descriptions: []string{
			"Experience cutting-edge technology with advanced camera systems and lightning-fast performance.",
			"Premium smartphone designed for modern users who demand excellence in every detail.",
			"Revolutionary mobile experience with AI-powered features and stunning display quality.",
			"Next-generation smartphone combining style, performance, and innovative technology.",
		},
		imageURL: "https://images.pexels.com/photos/699122/pexels-photo-699122.jpeg",
	},
	{
		displayName: "Laptops",
		brands: []string{
			"Apple", "Dell", "HP", "Lenovo", "ASUS",
			"Acer", "MSI", "Razer", "Microsoft", "LG",
		},
		subcategories: []string{"Gaming", "Business", "Ultrabook", "Workstation", "Budget", "Convertible"},
		features: []string{
			"SSD storage", "Backlit keyboard", "Fingerprint reader", "Thunderbolt ports",
			"Long battery life", "Fast charging", "Dedicated graphics",
			"High refresh display", "Premium build", "Lightweight design",
			"Multi-core processor", "Ample RAM",
		},
		basePrices: map[string]float64{
			"Gaming": 75000, "Business": 60000, "Ultrabook": 85000,
			"Workstation": 120000, "Budget": 30000, "Convertible": 70000,
		},
		descriptions: []string{
			"Powerful computing solution designed for professionals and enthusiasts alike.",
			"High-performance laptop engineered for demanding tasks and seamless multitasking.",
			"Premium laptop combining portability with uncompromising performance and reliability.",
			"Advanced computing platform built for productivity and creative workflows.",
		},
		imageURL: "https://images.pexels.com/photos/18105/pexels-photo.jpg",
	},
	{
		displayName: "Tablets",
		brands: []string{
			"Apple", "Samsung", "Lenovo", "Xiaomi",
			"Realme", "OnePlus", "Microsoft", "Huawei",
		},
		subcategories: []string{"Professional", "Entertainment", "Budget", "Kids", "Gaming"},
		features: []string{
			"Stylus support", "Keyboard compatible", "High resolution display",
			"Long battery life", "Lightweight design", "Multi-tasking",
			"Premium materials", "Fast processor",
		},
		basePrices: map[string]float64{
			"Professional": 45000, "Entertainment": 25000, "Budget": 12000,
			"Kids": 8000, "Gaming": 35000,
		},
		descriptions: []string{
			"Versatile tablet perfect for work, entertainment, and creative pursuits.",
			"Premium tablet experience with stunning display and intuitive touch interface.",
			"Portable powerhouse designed for modern digital lifestyle and productivity.",
			"Advanced tablet technology for seamless content creation and consumption.",
		},
		imageURL: "https://images.pexels.com/photos/1334597/pexels-photo-1334597.jpeg",
	},
	{
		displayName: "Audio",
		brands: []string{
			"Sony", "Bose", "JBL", "Sennheiser", "Audio-Technica",
			"Boat", "Noise", "Realme", "OnePlus", "Apple",
		},
		subcategories: []string{"Headphones", "Earbuds", "Speakers", "Gaming Headsets", "Studio Monitors"},
		features: []string{
			"Active noise cancellation", "Wireless connectivity", "Long battery life",
			"Quick charge", "Water resistance", "Touch controls", "Voice assistant",
			"Premium drivers", "Comfortable fit", "Foldable design",
			"Multi-device pairing", "Spatial audio",
		},
		basePrices: map[string]float64{
			"Headphones": 15000, "Earbuds": 8000, "Speakers": 12000,
			"Gaming Headsets": 10000, "Studio Monitors": 25000,
		},
		descriptions: []string{
			"Exceptional audio quality with premium drivers and advanced acoustic engineering.",
			"Immersive sound experience designed for audiophiles and music enthusiasts.",
			"Professional-grade audio equipment delivering crystal-clear sound reproduction.",
			"Premium audio solution combining comfort, style, and superior sound quality.",
		},
		imageURL: "https://images.pexels.com/photos/3587478/pexels-photo-3587478.jpeg",
	},
	{
		displayName: "Smartwatches",
		brands: []string{
			"Apple", "Samsung", "Garmin", "Fitbit", "Amazfit",
			"Noise", "Fire-Boltt", "boAt", "Realme", "OnePlus",
		},
		subcategories: []string{"Fitness", "Smart", "Luxury", "Sports", "Budget"},
		features: []string{
			"Heart rate monitoring", "GPS tracking", "Water resistance", "Sleep tracking",
			"Fitness modes", "Smart notifications", "Long battery life",
			"Always-on display", "Voice assistant", "Music control",
			"Payment support", "Health sensors",
		},
		basePrices: map[string]float64{
			"Fitness": 8000, "Smart": 25000, "Luxury": 45000,
			"Sports": 15000, "Budget": 3000,
		},
		descriptions: []string{
			"Smart wearable technology for health monitoring and connected lifestyle.",
			"Advanced fitness tracking with comprehensive health insights and smart features.",
			"Elegant smartwatch combining style with cutting-edge health and fitness technology.",
			"Intelligent wearable designed for active individuals who value health and connectivity.",
		},
		imageURL: "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg",
	},
	{
		displayName: "Cameras",
		brands: []string{
			"Canon", "Nikon", "Sony", "Fujifilm",
			"Panasonic", "Olympus", "Leica", "GoPro",
		},
		subcategories: []string{"DSLR", "Mirrorless", "Action", "Instant", "Professional", "Compact"},
		features: []string{
			"4K video recording", "Image stabilization", "Weather sealing",
			"Fast autofocus", "High ISO performance", "Dual card slots",
			"Articulating screen", "Wi-Fi connectivity", "Long battery life",
			"Professional controls", "Raw support", "Burst shooting",
		},
		basePrices: map[string]float64{
			"DSLR": 45000, "Mirrorless": 55000, "Action": 15000,
			"Instant": 8000, "Professional": 150000, "Compact": 20000,
		},
		descriptions: []string{
			"Professional imaging solution for capturing life's most precious moments.",
			"Advanced camera technology delivering exceptional image quality and creative control.",
			"Premium photography equipment designed for enthusiasts and professionals.",
			"Cutting-edge imaging system with superior optics and innovative features.",
		},
		imageURL: "https://images.pexels.com/photos/90946/pexels-photo-90946.jpeg",
	},
	{
		displayName: "Gaming",
		brands: []string{
			"Sony", "Microsoft", "Nintendo", "Razer", "Logitech",
			"SteelSeries", "Corsair", "ASUS", "MSI",
		},
		subcategories: []string{"Consoles", "Controllers", "Keyboards", "Mice", "Headsets", "Monitors"},
		features: []string{
			"High refresh rate", "Low latency", "RGB lighting", "Mechanical switches",
			"Wireless connectivity", "Programmable buttons", "Ergonomic design",
			"Durable build", "Gaming modes", "Customizable profiles",
			"High DPI", "Anti-ghosting",
		},
		basePrices: map[string]float64{
			"Consoles": 35000, "Controllers": 4000, "Keyboards": 8000,
			"Mice": 3000, "Headsets": 12000, "Monitors": 25000,
		},
		descriptions: []string{
			"High-performance gaming equipment designed for competitive and casual gamers.",
			"Premium gaming gear engineered for precision, speed, and immersive experiences.",
			"Professional gaming solution combining performance with ergonomic design.",
			"Advanced gaming technology for enhanced gameplay and competitive advantage.",
		},
		imageURL: "https://images.pexels.com/photos/7594435/pexels-photo-7594435.jpeg",
	},
	{
		displayName: "Hometech",
		brands: []string{
			"Amazon", "Google", "Apple", "Philips", "Xiaomi",
			"TP-Link", "Netgear", "Samsung", "LG",
		},
		subcategories: []string{
			"Smart Speakers", "Security Cameras", "Smart Lights",
			"Routers", "Smart Displays", "Streaming Devices",
		},
		features: []string{
			"Voice control", "Smart home integration", "Mobile app control",
			"Energy efficient", "Easy setup", "Multi-room audio", "HD video",
			"Night vision", "Motion detection", "Cloud storage",
			"Mesh networking", "4K streaming",
		},
		basePrices: map[string]float64{
			"Smart Speakers": 5000, "Security Cameras": 8000, "Smart Lights": 2000,
			"Routers": 6000, "Smart Displays": 12000, "Streaming Devices": 4000,
		},
		descriptions: []string{
			"Smart home solution designed to enhance convenience and connectivity.",
			"Intelligent home technology for modern living and automated control.",
			"Advanced home automation device with seamless integration and user-friendly interface.",
			"Smart home innovation combining functionality with elegant design.",
		},
		imageURL: "https://images.pexels.com/photos/1444416/pexels-photo-1444416.jpeg",
	},
	{
		displayName: "Accessories",
		brands: []string{
			"Anker", "Belkin", "Spigen", "OtterBox", "Logitech",
			"Apple", "Samsung", "OnePlus", "Xiaomi",
		},
		subcategories: []string{
			"Chargers", "Cases", "Screen Protectors",
			"Cables", "Power Banks", "Stands",
		},
		features: []string{
			"Fast charging", "Wireless charging", "Durable materials", "Compact design",
			"Multiple ports", "LED indicators", "Safety features",
			"Universal compatibility", "Premium finish", "Easy installation",
			"Scratch resistant", "Drop protection",
		},
		basePrices: map[string]float64{
			"Chargers": 2000, "Cases": 1500, "Screen Protectors": 500,
			"Cables": 800, "Power Banks": 3000, "Stands": 2500,
		},
		descriptions: []string{
			"Essential accessory designed to enhance and protect your valuable devices.",
			"Premium accessory combining functionality with stylish design and durability.",
			"High-quality accessory engineered for reliability and optimal performance.",
			"Innovative accessory solution for modern device users and tech enthusiasts.",
		},
		imageURL: "https://images.pexels.com/photos/4526414/pexels-photo-4526414.jpeg",
	},
}

var modelNumbers = []string{
	"Pro", "Max", "Ultra", "Plus", "Lite", "SE", "Air", "Mini", "Edge", "Prime",
}

var nameSuffixes = []string{
	"2024", "5G", "Wireless", "HD", "4K", "Gaming", "Professional", "Advanced",
}

// Specification value pools. Categories without a dedicated pool fall back
// to the smartphone pool.
var specTables = map[string]map[string][]string{
	"Smartphones": {
		"Display":   {`6.1" OLED`, `6.7" AMOLED`, `6.4" Super AMOLED`, `5.8" Retina`},
		"Processor": {"Snapdragon 8 Gen 3", "A17 Pro", "MediaTek Dimensity 9300", "Exynos 2400"},
		"RAM":       {"8GB", "12GB", "16GB", "6GB"},
		"Storage":   {"128GB", "256GB", "512GB", "1TB"},
		"Camera":    {"50MP Triple", "108MP Quad", "64MP Dual", "48MP Triple"},
	},
	"Laptops": {
		"Processor": {"Intel Core i7", "AMD Ryzen 7", "Apple M3", "Intel Core i5"},
		"RAM":       {"16GB DDR5", "32GB DDR5", "8GB DDR4", "64GB DDR5"},
		"Storage":   {"512GB SSD", "1TB SSD", "2TB SSD", "256GB SSD"},
		"Display":   {`15.6" FHD`, `14" 4K OLED`, `16" Retina`, `13.3" QHD`},
		"Graphics":  {"RTX 4060", "RTX 4070", "Integrated", "RTX 4080"},
	},
	"Audio": {
		"Driver":       {"40mm Dynamic", "50mm Planar", "10mm Dynamic", "30mm Neodymium"},
		"Frequency":    {"20Hz-20kHz", "5Hz-40kHz", "10Hz-22kHz", "15Hz-25kHz"},
		"Battery":      {"30 hours", "40 hours", "20 hours", "50 hours"},
		"Connectivity": {"Bluetooth 5.3", "Wired + Wireless", "USB-C", "Bluetooth 5.2"},
	},
}

var extraTags = []string{"tech", "electronics"}
