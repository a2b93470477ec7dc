package reference

var filterCategories = []string{
	AllOption, "Singer", "DJ", "Dancer", "Speaker", "Guitarist", "Choreographer", "Musician",
}

var filterLocations = []string{
	AllOption,
	"Mumbai, Maharashtra",
	"Delhi, NCR",
	"Bangalore, Karnataka",
	"Chennai, Tamil Nadu",
	"Pune, Maharashtra",
	"Hyderabad, Telangana",
	"Kolkata, West Bengal",
	"Jaipur, Rajasthan",
	"Kochi, Kerala",
	"Ahmedabad, Gujarat",
}

var filterPriceRanges = []string{
	AllOption,
	"₹15,000-30,000",
	"₹20,000-40,000",
	"₹25,000-50,000",
	"₹30,000-60,000",
	"₹35,000-75,000",
	"₹40,000-1,00,000",
}

var onboardingCategories = []string{
	"Singer", "Vocalist", "DJ", "Music Producer", "Dancer", "Choreographer",
	"Speaker", "Motivational Coach", "Guitarist", "Pianist", "Drummer",
	"Violinist", "Comedian", "Magician", "Performance Artist", "Tabla Player",
	"Classical Vocalist", "Musician",
}

var onboardingLanguages = []string{
	"Hindi", "English", "Tamil", "Telugu", "Marathi", "Gujarati",
	"Bengali", "Kannada", "Malayalam", "Punjabi", "Urdu", "Odia",
	"Assamese", "Rajasthani", "Bhojpuri", "Haryanvi",
}

var onboardingFeeRanges = []string{
	"₹10,000-20,000", "₹15,000-30,000", "₹20,000-40,000", "₹25,000-50,000",
	"₹30,000-60,000", "₹35,000-75,000", "₹40,000-1,00,000", "₹50,000-1,50,000", "₹1,00,000+",
}

var featuredCategories = []FeaturedCategory{
	{
		Title:       "Singers & Vocalists",
		Description: "Professional singers for weddings, events, and performances",
		Filter:      "Singer",
	},
	{
		Title:       "DJs & Music Producers",
		Description: "Electronic music experts for clubs, parties, and festivals",
		Filter:      "DJ",
	},
	{
		Title:       "Dancers & Choreographers",
		Description: "Talented dancers for shows, events, and performances",
		Filter:      "Dancer",
	},
	{
		Title:       "Speakers & Coaches",
		Description: "Motivational speakers and professional coaches",
		Filter:      "Speaker",
	},
}

var features = []Feature{
	{Title: "Verified Artists", Description: "All artists are professionally vetted and verified"},
	{Title: "Secure Booking", Description: "Safe and secure payment processing for all bookings"},
	{Title: "Quick Response", Description: "Get quotes and responses within 24 hours"},
}
