package domain

// Quiz vocabulary. The query strings drive live image search results and are
// kept verbatim so fixtures stay reproducible.

const (
	FeelingCalm         = "Calm & peaceful"
	FeelingEnergetic    = "Energetic & motivating"
	FeelingProfessional = "Professional & trustworthy"
	FeelingFun          = "Fun & playful"
	FeelingLuxurious    = "Luxurious & premium"
	FeelingMinimal      = "Minimal & clean"
	FeelingWarm         = "Warm & friendly"
	FeelingBold         = "Bold & edgy"
)

const (
	InspirationCalm      = "calm"
	InspirationDuolingo  = "duolingo"
	InspirationNotion    = "notion"
	InspirationInstagram = "instagram"
	InspirationHeadspace = "headspace"
	InspirationStripe    = "stripe"
)

const (
	PaletteSoftPastels = "soft-pastels"
	PaletteEarthTones  = "earth-tones"
	PaletteBoldBright  = "bold-bright"
	PaletteMonochrome  = "monochrome"
	PaletteOceanVibes  = "ocean-vibes"
	PaletteSunset      = "sunset"
)

var Feelings = []string{
	FeelingCalm,
	FeelingEnergetic,
	FeelingProfessional,
	FeelingFun,
	FeelingLuxurious,
	FeelingMinimal,
	FeelingWarm,
	FeelingBold,
}

var TargetAudiences = []string{
	"Busy professionals",
	"Parents/families",
	"Students",
	"Health & fitness enthusiasts",
	"Creatives/artists",
	"Small business owners",
	"Other",
}

var MainActions = []string{
	"Track something",
	"Create content",
	"Learn something",
	"Organize information",
	"Connect with others",
	"Make purchases",
	"Play/compete",
}

type Palette struct {
	Name        string
	Colors      [5]string
	Description string
}

type Inspiration struct {
	Name    string
	Style   string
	Queries [2]string
}

var FeelingQueries = map[string][3]string{
	FeelingCalm:         {"minimal nature zen", "peaceful meditation", "calm minimal"},
	FeelingEnergetic:    {"energetic fitness", "motivational workout", "vibrant energy"},
	FeelingProfessional: {"modern office clean", "professional business", "minimalist workspace"},
	FeelingFun:          {"colorful playful design", "fun creative", "vibrant playful"},
	FeelingLuxurious:    {"luxury premium", "elegant sophisticated", "high-end design"},
	FeelingMinimal:      {"minimal clean design", "simple aesthetic", "white space"},
	FeelingWarm:         {"warm cozy", "friendly welcoming", "soft comfortable"},
	FeelingBold:         {"bold graphic design", "edgy modern", "striking contrast"},
}

var Inspirations = map[string]Inspiration{
	InspirationCalm: {
		Name:    "Calm",
		Style:   "minimalist and zen-like, similar to meditation apps like Calm. Use lots of white space, gentle animations, and soothing colors.",
		Queries: [2]string{"zen minimal", "meditation peaceful"},
	},
	InspirationDuolingo: {
		Name:    "Duolingo",
		Style:   "playful and gamified with bright colors, friendly illustrations, and engaging micro-interactions. Think fun, motivating, and slightly cartoonish.",
		Queries: [2]string{"playful colorful", "fun gamification"},
	},
	InspirationNotion: {
		Name:    "Notion",
		Style:   "clean, organized, and highly functional. Embrace simple layouts, clear typography, and intuitive navigation patterns.",
		Queries: [2]string{"organized clean workspace", "productivity minimal"},
	},
	InspirationInstagram: {
		Name:    "Instagram",
		Style:   "visual-first and modern with emphasis on images, stories, and contemporary UI patterns. Sleek and trendy.",
		Queries: [2]string{"modern aesthetic", "visual photography"},
	},
	InspirationHeadspace: {
		Name:    "Headspace",
		Style:   "friendly and illustrated with warm, approachable animations and character-driven design. Feels like a helpful companion.",
		Queries: [2]string{"friendly illustration", "approachable design"},
	},
	InspirationStripe: {
		Name:    "Stripe",
		Style:   "professional and sleek with subtle gradients, sharp typography, and polished interactions. Corporate but not boring.",
		Queries: [2]string{"professional sleek", "modern gradient"},
	},
}

var Palettes = map[string]Palette{
	PaletteSoftPastels: {
		Name:        "Soft Pastels",
		Colors:      [5]string{"#FFB3BA", "#BAFFC9", "#BAE1FF", "#FFFFB3", "#E7B3FF"},
		Description: "soft pastel pinks, mint greens, and sky blues",
	},
	PaletteEarthTones: {
		Name:        "Earth Tones",
		Colors:      [5]string{"#8B7355", "#A0937D", "#C9B8A0", "#6B8E23", "#8FBC8F"},
		Description: "warm browns, sage greens, and natural tans",
	},
	PaletteBoldBright: {
		Name:        "Bold & Bright",
		Colors:      [5]string{"#FF6B35", "#004E89", "#FFC43D", "#9C27B0", "#00BCD4"},
		Description: "vibrant oranges, deep blues, and sunny yellows",
	},
	PaletteMonochrome: {
		Name:        "Monochrome",
		Colors:      [5]string{"#000000", "#2C2C2C", "#808080", "#D3D3D3", "#FFFFFF"},
		Description: "classic blacks, grays, and whites",
	},
	PaletteOceanVibes: {
		Name:        "Ocean Vibes",
		Colors:      [5]string{"#006BA6", "#0496FF", "#5DFDCB", "#1E88E5", "#00ACC1"},
		Description: "deep ocean blues, turquoise, and seafoam",
	},
	PaletteSunset: {
		Name:        "Sunset",
		Colors:      [5]string{"#9B59B6", "#E67E22", "#F39C12", "#E74C3C", "#FF6B9D"},
		Description: "rich purples, warm oranges, and sunset pinks",
	},
}

type Feature struct {
	Phrase  string
	Enabled func(Submission) bool
}

// Features is ordered; the compiled prompt lists them in this order.
var Features = []Feature{
	{Phrase: "dark mode support", Enabled: func(s Submission) bool { return s.DarkMode }},
	{Phrase: "smooth animations and transitions", Enabled: func(s Submission) bool { return s.Animations }},
	{Phrase: "custom illustrations or icons", Enabled: func(s Submission) bool { return s.Illustrations }},
	{Phrase: "high-quality photos/imagery", Enabled: func(s Submission) bool { return s.Photos }},
	{Phrase: "gradient backgrounds or accents", Enabled: func(s Submission) bool { return s.Gradients }},
	{Phrase: "rounded corners on UI elements", Enabled: func(s Submission) bool { return s.RoundedCorners }},
}
