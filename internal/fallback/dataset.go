package fallback

type productSeed struct {
	id, name, slug                  string
	price                           float64
	salePrice                       *float64
	categorySlug                    string
	stock                           int
	sku                             string
	short, description              string
	images                          []string
	isNew, isBestSeller, isFeatured bool
}

type categorySeed struct {
	id, name, slug, image string
}

type slideSeed struct {
	id, image, heading, text, ctaText, ctaLink string
}

type reviewSeed struct {
	id, name string
	rating   int
	text     string
	date     string
}

type variantSeed struct {
	id, size string
	stock    int
}

func ptr(f float64) *float64 { return &f }

var categorySeeds = []categorySeed{
	{"1", "Women's Fashion", "womens-fashion", "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=600&q=80"},
	{"2", "Men's Fashion", "mens-fashion", "https://images.unsplash.com/photo-1617137968427-85924c800a22?w=600&q=80"},
	{"3", "Baby's Fashion", "babys-fashion", "https://images.unsplash.com/photo-1622290291468-a28f7a7dc6a8?w=600&q=80"},
	{"4", "Casual Wear", "casual-wear", "https://images.unsplash.com/photo-1525171254930-643fc658b64e?w=600&q=80"},
	{"5", "Formal Wear", "formal-wear", "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=600&q=80"},
	{"6", "Accessories", "accessories", "https://images.unsplash.com/photo-1606760227091-3dd870d97f1d?w=600&q=80"},
}

var productSeeds = []productSeed{
	{
		id: "1", name: "Classic Fit Oxford Shirt", slug: "classic-fit-oxford-shirt",
		price: 1299, salePrice: ptr(999.0), categorySlug: "mens-fashion", stock: 45, sku: "MW-OXF-001",
		short: "Premium cotton Oxford shirt with a timeless button-down collar.",
		description: "Elevate your wardrobe with this classic Oxford shirt. Crafted from 100% premium cotton, featuring a button-down collar, single chest pocket, and adjustable cuffs. Perfect for both office and casual wear.",
		images: []string{"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80", "https://images.unsplash.com/photo-1603252109303-2751441dd157?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "2", name: "Slim Fit Chino Trousers", slug: "slim-fit-chino-trousers",
		price: 1499, salePrice: nil, categorySlug: "casual-wear", stock: 30, sku: "MW-CHI-002",
		short: "Comfortable slim-fit chinos in a versatile neutral tone.",
		description: "These slim-fit chinos are a wardrobe essential. Made from stretch cotton twill for maximum comfort, featuring a flat front, belt loops, and clean-finished hems. Pair with a shirt or tee for any occasion.",
		images: []string{"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=800&q=80", "https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: true,
	},
	{
		id: "3", name: "Premium Denim Jacket", slug: "premium-denim-jacket",
		price: 2499, salePrice: ptr(1999.0), categorySlug: "casual-wear", stock: 20, sku: "MW-DNM-003",
		short: "Classic denim jacket with a modern washed finish.",
		description: "A wardrobe staple that never goes out of style. This premium denim jacket features a button-front closure, chest pockets, and a comfortable regular fit. The washed finish gives it a vintage character.",
		images: []string{"https://images.unsplash.com/photo-1576995853123-5a10305d93c0?w=800&q=80", "https://images.unsplash.com/photo-1551537482-f2075a1d41f2?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: false,
	},
	{
		id: "4", name: "Floral Print Maxi Dress", slug: "floral-print-maxi-dress",
		price: 1899, salePrice: ptr(1499.0), categorySlug: "womens-fashion", stock: 25, sku: "WW-MXD-001",
		short: "Elegant floral maxi dress perfect for summer occasions.",
		description: "Turn heads with this stunning floral print maxi dress. Features a flattering V-neckline, flowing skirt, and adjustable waist tie. Made from lightweight, breathable fabric, ideal for summer events, brunches, and vacation.",
		images: []string{"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?w=800&q=80", "https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: true,
	},
	{
		id: "5", name: "Silk Blend Blouse", slug: "silk-blend-blouse",
		price: 1599, salePrice: nil, categorySlug: "womens-fashion", stock: 35, sku: "WW-BLS-002",
		short: "Luxurious silk blend blouse with delicate pleating.",
		description: "Effortlessly chic, this silk blend blouse features delicate front pleating, a relaxed fit, and mother-of-pearl buttons. The smooth, lustrous fabric drapes beautifully. Pair with tailored trousers for the office or jeans for a casual look.",
		images: []string{"https://images.unsplash.com/photo-1564257631407-4deb1f99d992?w=800&q=80", "https://images.unsplash.com/photo-1551163943-3f7fb896e3f2?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "6", name: "High-Waist Palazzo Pants", slug: "high-waist-palazzo-pants",
		price: 1399, salePrice: nil, categorySlug: "womens-fashion", stock: 40, sku: "WW-PLZ-003",
		short: "Flowy high-waist palazzo pants for effortless elegance.",
		description: "These flowing palazzo pants offer the perfect blend of style and comfort. Featuring a high waist with a wide self-tie belt, wide legs, and a luxurious drape. Available in multiple colors to suit every taste.",
		images: []string{"https://images.unsplash.com/photo-1594633312681-425c7b97ccd1?w=800&q=80", "https://images.unsplash.com/photo-1509631179647-0177331693ae?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: false,
	},
	{
		id: "7", name: "Boys Graphic Print T-Shirt", slug: "boys-graphic-print-tshirt",
		price: 599, salePrice: ptr(449.0), categorySlug: "babys-fashion", stock: 60, sku: "KW-TSH-001",
		short: "Fun graphic print t-shirt in soft, breathable cotton.",
		description: "Let kids express their style with this fun graphic print t-shirt. Made from 100% soft cotton, it's comfortable for all-day wear. Features vibrant, long-lasting prints and reinforced stitching for durability.",
		images: []string{"https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?w=800&q=80", "https://images.unsplash.com/photo-1471286174890-9c112ffca5b4?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "8", name: "Girls Party Frock", slug: "girls-party-frock",
		price: 899, salePrice: nil, categorySlug: "babys-fashion", stock: 35, sku: "KW-FRK-002",
		short: "Adorable party frock with tulle layers and satin details.",
		description: "Make every occasion special with this beautiful party frock. Features a satin bodice with floral appliqué, a tulle-layered skirt, and a comfortable cotton lining. Perfect for birthdays, weddings, and family gatherings.",
		images: []string{"https://images.unsplash.com/photo-1518831959646-742c3a14ebf7?w=800&q=80", "https://images.unsplash.com/photo-1524504388940-b1c1722653e1?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: false,
	},
	{
		id: "9", name: "Kids Denim Dungarees", slug: "kids-denim-dungarees",
		price: 1099, salePrice: ptr(849.0), categorySlug: "babys-fashion", stock: 25, sku: "KW-DNG-003",
		short: "Adorable denim dungarees with adjustable straps.",
		description: "These classic denim dungarees are perfect for playful adventures. Featuring adjustable shoulder straps, multiple pockets, and a comfortable relaxed fit. Made from durable denim that gets softer with every wash.",
		images: []string{"https://images.unsplash.com/photo-1503944583220-79d8926ad5e2?w=800&q=80", "https://images.unsplash.com/photo-1622290291468-a28f7a7dc6a8?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: false,
	},
	{
		id: "10", name: "Leather Crossbody Bag", slug: "leather-crossbody-bag",
		price: 1999, salePrice: nil, categorySlug: "accessories", stock: 20, sku: "AC-BAG-001",
		short: "Genuine leather crossbody bag with adjustable strap.",
		description: "This elegant crossbody bag is crafted from genuine leather with a smooth finish. Features an adjustable strap, magnetic snap closure, interior zip pocket, and card slots. Compact yet spacious enough for your daily essentials.",
		images: []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800&q=80", "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: true,
	},
	{
		id: "11", name: "Classic Aviator Sunglasses", slug: "classic-aviator-sunglasses",
		price: 799, salePrice: ptr(599.0), categorySlug: "accessories", stock: 50, sku: "AC-SUN-002",
		short: "Retro aviator sunglasses with UV400 protection.",
		description: "These timeless aviator sunglasses combine classic style with modern UV400 protection. Features a lightweight metal frame, polarized lenses, and adjustable nose pads for a comfortable fit. Comes with a protective case and cleaning cloth.",
		images: []string{"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800&q=80", "https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "12", name: "Woven Leather Belt", slug: "woven-leather-belt",
		price: 699, salePrice: nil, categorySlug: "accessories", stock: 55, sku: "AC-BLT-003",
		short: "Hand-woven leather belt with brushed metal buckle.",
		description: "Add a sophisticated touch to any outfit with this hand-woven leather belt. Crafted from genuine leather strips, featuring a brushed antique metal buckle. The woven design allows for flexible sizing. Perfect for both formal and casual wear.",
		images: []string{"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80", "https://images.unsplash.com/photo-1624222247344-550fb60583dc?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: false,
	},
	{
		id: "13", name: "Tailored Wool Blazer", slug: "tailored-wool-blazer",
		price: 3499, salePrice: ptr(2799.0), categorySlug: "mens-fashion", stock: 18, sku: "MW-BLZ-004",
		short: "Slim-fit wool blend blazer with notch lapels.",
		description: "Command attention with this impeccably tailored wool blend blazer. Features notch lapels, a two-button front, functional sleeve buttons, and a fully lined interior. Perfect for business meetings, dinners, and formal events.",
		images: []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&q=80", "https://images.unsplash.com/photo-1593030761757-71fae45fa0e7?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: true,
	},
	{
		id: "14", name: "Classic Polo T-Shirt", slug: "classic-polo-tshirt",
		price: 899, salePrice: nil, categorySlug: "mens-fashion", stock: 70, sku: "MW-POL-005",
		short: "Breathable piqué cotton polo with contrast collar.",
		description: "A timeless polo shirt crafted from premium piqué cotton. Features a ribbed collar and cuffs, two-button placket, and side vents for comfortable movement. Available in six versatile colors.",
		images: []string{"https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=800&q=80", "https://images.unsplash.com/photo-1581655353564-df123a1eb820?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: false,
	},
	{
		id: "15", name: "Stretch Jogger Pants", slug: "stretch-jogger-pants",
		price: 1199, salePrice: ptr(949.0), categorySlug: "mens-fashion", stock: 40, sku: "MW-JOG-006",
		short: "Tapered jogger pants with elastic cuffs and drawstring waist.",
		description: "Upgrade your casual wardrobe with these tapered jogger pants. Made from a soft cotton-polyester blend with four-way stretch, featuring an elastic drawstring waist, zippered pockets, and ribbed ankle cuffs.",
		images: []string{"https://images.unsplash.com/photo-1552902865-b72c031ac5ea?w=800&q=80", "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: false,
	},
	{
		id: "16", name: "Embroidered Cotton Kurti", slug: "embroidered-cotton-kurti",
		price: 1299, salePrice: ptr(1049.0), categorySlug: "womens-fashion", stock: 30, sku: "WW-KRT-004",
		short: "Hand-embroidered cotton kurti with mirror work details.",
		description: "This stunning cotton kurti showcases intricate hand embroidery and delicate mirror work. Features a mandarin collar, three-quarter sleeves, and side slits for easy movement. Pair with leggings or palazzo pants for a complete look.",
		images: []string{"https://images.unsplash.com/photo-1583391733956-6c78276477e2?w=800&q=80", "https://images.unsplash.com/photo-1614252235316-8c857d38b5f4?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "17", name: "Toddler Canvas Sneakers", slug: "toddler-canvas-sneakers",
		price: 699, salePrice: ptr(549.0), categorySlug: "babys-fashion", stock: 45, sku: "KW-SNK-004",
		short: "Adorable canvas sneakers with easy velcro straps.",
		description: "These cute and practical canvas sneakers are designed for little adventurers. Feature easy-to-use velcro straps, cushioned insoles, and non-slip rubber soles. Available in fun colors and patterns that kids love.",
		images: []string{"https://images.unsplash.com/photo-1555009306-30a937a36929?w=800&q=80", "https://images.unsplash.com/photo-1519238263530-99bdd11df2ea?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: true,
	},
	{
		id: "18", name: "Graphic Print Hoodie", slug: "graphic-print-hoodie",
		price: 1799, salePrice: ptr(1399.0), categorySlug: "casual-wear", stock: 35, sku: "CW-HOD-001",
		short: "Oversized graphic hoodie in heavyweight French terry.",
		description: "Stay cozy and stylish with this oversized graphic hoodie. Made from premium heavyweight French terry cotton, featuring a bold chest print, kangaroo pocket, drawstring hood, and ribbed trims. Perfect for layering on cool days.",
		images: []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800&q=80", "https://images.unsplash.com/photo-1578768079052-aa76e52ff62e?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "19", name: "Cotton Cargo Shorts", slug: "cotton-cargo-shorts",
		price: 999, salePrice: nil, categorySlug: "casual-wear", stock: 50, sku: "CW-SHR-002",
		short: "Relaxed-fit cargo shorts with multiple utility pockets.",
		description: "Built for adventure and everyday comfort, these cargo shorts feature a relaxed fit, multiple utility pockets with button flaps, and a durable cotton twill construction. Belt loops and zip-fly closure complete the look.",
		images: []string{"https://images.unsplash.com/photo-1591195853828-11db59a44f6b?w=800&q=80", "https://images.unsplash.com/photo-1571455786673-9d9d6c194f90?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: false,
	},
	{
		id: "20", name: "Pinstripe Three-Piece Suit", slug: "pinstripe-three-piece-suit",
		price: 7999, salePrice: ptr(6499.0), categorySlug: "formal-wear", stock: 10, sku: "FW-SUT-001",
		short: "Classic pinstripe three-piece suit in navy wool blend.",
		description: "Make a statement with this classic pinstripe three-piece suit. Crafted from fine wool blend fabric, includes a single-breasted jacket with peak lapels, matching waistcoat, and flat-front trousers. Fully lined for a polished finish.",
		images: []string{"https://images.unsplash.com/photo-1594938298603-c8148c4dae35?w=800&q=80", "https://images.unsplash.com/photo-1593030761757-71fae45fa0e7?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: true,
	},
	{
		id: "21", name: "French Cuff Dress Shirt", slug: "french-cuff-dress-shirt",
		price: 1899, salePrice: nil, categorySlug: "formal-wear", stock: 30, sku: "FW-DSH-002",
		short: "Crisp white dress shirt with French cuffs and spread collar.",
		description: "Elevate your formal wardrobe with this immaculate white dress shirt. Features a spread collar, French cuffs for cufflinks, a slim fit silhouette, and wrinkle-resistant premium cotton construction. A boardroom essential.",
		images: []string{"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80", "https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
	{
		id: "22", name: "Slim Fit Dress Trousers", slug: "slim-fit-dress-trousers",
		price: 1699, salePrice: ptr(1399.0), categorySlug: "formal-wear", stock: 25, sku: "FW-DTR-003",
		short: "Tailored slim-fit dress trousers with crease detailing.",
		description: "These expertly tailored dress trousers offer a modern slim fit with classic crease detailing. Made from a wool-polyester blend for shape retention, featuring a hook-and-bar closure, belt loops, and a clean hemmed finish.",
		images: []string{"https://images.unsplash.com/photo-1473966968600-fa801b869a1a?w=800&q=80", "https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=800&q=80"},
		isNew: false, isBestSeller: true, isFeatured: false,
	},
	{
		id: "23", name: "Silk Necktie & Pocket Square Set", slug: "silk-necktie-pocket-square-set",
		price: 999, salePrice: ptr(799.0), categorySlug: "formal-wear", stock: 40, sku: "FW-TIE-004",
		short: "Premium silk necktie with matching pocket square in gift box.",
		description: "Complete your formal look with this premium silk necktie and matching pocket square. Features a rich satin finish, precise stitching, and comes beautifully presented in a gift box. Available in a range of sophisticated patterns.",
		images: []string{"https://images.unsplash.com/photo-1589756823695-278bc923a84d?w=800&q=80", "https://images.unsplash.com/photo-1598808503746-f34c53b9323e?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: false,
	},
	{
		id: "24", name: "Canvas Weekend Tote Bag", slug: "canvas-weekend-tote-bag",
		price: 1299, salePrice: nil, categorySlug: "accessories", stock: 30, sku: "AC-TOT-004",
		short: "Spacious canvas tote with leather handles and zip top.",
		description: "This versatile canvas tote bag is perfect for weekends, work, or travel. Features durable waxed canvas, reinforced leather handles, a secure zip-top closure, interior organizer pockets, and a detachable shoulder strap.",
		images: []string{"https://images.unsplash.com/photo-1544816155-12df9643f363?w=800&q=80", "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=800&q=80"},
		isNew: true, isBestSeller: false, isFeatured: true,
	},
}

var slideSeeds = []slideSeed{
	{"1", "https://images.unsplash.com/photo-1441986300917-64674bd600d8?w=1920&q=80", "New Season Collection", "Discover the latest trends in fashion and clothing", "Shop Now", "/shop"},
	{"2", "https://images.unsplash.com/photo-1483985988355-763728e1935b?w=1920&q=80", "Summer Sale", "Up to 50% off on selected clothing items", "View Collection", "/shop?sale=true"},
	{"3", "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1920&q=80", "Premium Fashion", "Handpicked clothing for every style and occasion", "Explore", "/shop"},
}

var reviewSeeds = []reviewSeed{
	{"1", "Fatima Rahman", 5, "The quality of the fabrics is outstanding! I ordered three dresses and each one fits perfectly. Will definitely shop again.", "2026-01-15"},
	{"2", "Arif Hossain", 5, "Bought a formal shirt and chinos for my office. The fitting is excellent and the material feels premium. Highly recommended!", "2026-01-10"},
	{"3", "Nusrat Jahan", 4, "Great variety of kids clothing. My daughter loves her new party frock! Fast delivery too.", "2026-01-05"},
}

// variantSeeds is the size rail served for any product whose variants cannot be loaded.
var variantSeeds = []variantSeed{
	{"v1", "36", 0},
	{"v2", "38", 5},
	{"v3", "40", 12},
	{"v4", "42", 0},
	{"v5", "44", 1},
	{"v6", "46", 5},
	{"v7", "48", 0},
}
