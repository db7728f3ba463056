package category

// Category identifiers used by the storage collaborator. The cascade is
// data, not behavior: the tables below are immutable code-level constants
// so every mapping decision is auditable and deterministic.
const (
	CatATM             = "atm-withdrawal"
	CatGroceries       = "groceries"
	CatDining          = "dining-out"
	CatTransport       = "transportation"
	CatUtilities       = "utilities"
	CatPersonalCare    = "personal-care"
	CatEntertainment   = "entertainment"
	CatMedical         = "medical"
	CatEducation       = "education"
	CatBusinessExpense = "business-expense"
	CatShopping        = "shopping" // expense default

	CatFamilySupport  = "family-support"
	CatSalary         = "salary"
	CatBusinessIncome = "business-income"
	CatOtherIncome    = "other-income" // income default
)

// expenseBranch is one ordered predicate in the expense cascade. The
// first keyword found in the haystack wins; its label (or the branch
// default) becomes the "Category - Detail" description rewrite.
type expenseBranch struct {
	categoryID    string
	name          string
	keywords      []string
	labels        map[string]string
	defaultDetail string
}

// expenseCascade is tried in declared order; the first branch whose
// keyword list hits wins. Anything that falls through lands in Shopping
// with the description left untouched.
var expenseCascade = []expenseBranch{
	{
		categoryID:    CatATM,
		name:          "ATM",
		keywords:      []string{"atm", "cash withdrawal", "csh wdl", "atw", "nfs"},
		defaultDetail: "Cash Withdrawal",
	},
	{
		categoryID: CatGroceries,
		name:       "Groceries",
		keywords: []string{
			// merchant allowlist
			"bigbasket", "blinkit", "zepto", "dmart", "d-mart", "grofers",
			"reliance fresh", "more supermarket", "spencers", "natures basket",
			// item keywords
			"grocery", "groceries", "supermarket", "kirana", "vegetables",
			"fruits", "milk",
		},
		labels: map[string]string{
			"bigbasket":      "BigBasket",
			"blinkit":        "Blinkit",
			"zepto":          "Zepto",
			"dmart":          "DMart",
			"d-mart":         "DMart",
			"grofers":        "Grofers",
			"reliance fresh": "Reliance Fresh",
		},
		defaultDetail: "Supermarket",
	},
	{
		categoryID: CatDining,
		name:       "Dining",
		keywords: []string{
			"swiggy", "zomato", "starbucks", "mcdonald", "domino", "kfc",
			"pizza", "burger", "barista", "cafe", "restaurant", "biryani",
			"dhaba", "eatery",
		},
		labels: map[string]string{
			"swiggy":    "Swiggy",
			"zomato":    "Zomato",
			"starbucks": "Starbucks",
			"mcdonald":  "McDonald's",
			"domino":    "Domino's",
			"kfc":       "KFC",
		},
		defaultDetail: "Restaurant",
	},
	{
		categoryID: CatTransport,
		name:       "Transport",
		keywords: []string{
			"uber", "ola cabs", "olacabs", "rapido", "irctc", "redbus",
			"fastag", "petrol", "diesel", "fuel", "parking", "metro card",
			"cab ride",
		},
		labels: map[string]string{
			"uber":   "Uber",
			"rapido": "Rapido",
			"irctc":  "Train",
			"redbus": "Bus",
			"petrol": "Fuel",
			"diesel": "Fuel",
			"fuel":   "Fuel",
			"fastag": "Toll",
		},
		defaultDetail: "Travel",
	},
	{
		categoryID: CatUtilities,
		name:       "Utilities",
		keywords: []string{
			"electricity", "bescom", "water bill", "broadband", "airtel",
			"jio", "bsnl", "recharge", "postpaid", "dth", "lpg", "gas bill",
		},
		labels: map[string]string{
			"electricity": "Electricity",
			"bescom":      "Electricity",
			"water bill":  "Water",
			"broadband":   "Internet",
			"airtel":      "Mobile",
			"jio":         "Mobile",
			"bsnl":        "Mobile",
			"recharge":    "Mobile",
			"postpaid":    "Mobile",
			"dth":         "TV",
			"lpg":         "Gas",
			"gas bill":    "Gas",
		},
		defaultDetail: "Bill",
	},
	{
		categoryID:    CatPersonalCare,
		name:          "Personal Care",
		keywords:      []string{"salon", "spa", "haircut", "parlour", "nykaa", "cosmetics"},
		labels:        map[string]string{"nykaa": "Nykaa", "salon": "Salon", "spa": "Spa"},
		defaultDetail: "Grooming",
	},
	{
		categoryID: CatEntertainment,
		name:       "Entertainment",
		keywords: []string{
			"netflix", "hotstar", "prime video", "spotify", "bookmyshow",
			"pvr", "inox", "cinema", "movie",
		},
		labels: map[string]string{
			"netflix":     "Netflix",
			"hotstar":     "Hotstar",
			"prime video": "Prime Video",
			"spotify":     "Spotify",
			"bookmyshow":  "Movies",
			"pvr":         "Movies",
			"inox":        "Movies",
		},
		defaultDetail: "Leisure",
	},
	{
		categoryID: CatMedical,
		name:       "Medical",
		keywords: []string{
			"pharmacy", "apollo", "medplus", "netmeds", "1mg", "hospital",
			"clinic", "doctor", "medicine", "diagnostic", "lab test",
		},
		labels: map[string]string{
			"pharmacy": "Pharmacy",
			"apollo":   "Apollo",
			"medplus":  "Pharmacy",
			"netmeds":  "Pharmacy",
			"1mg":      "Pharmacy",
			"hospital": "Hospital",
			"clinic":   "Clinic",
		},
		defaultDetail: "Healthcare",
	},
	{
		categoryID: CatEducation,
		name:       "Education",
		keywords: []string{
			"udemy", "coursera", "tuition", "school fee", "college fee",
			"exam fee", "course",
		},
		labels: map[string]string{
			"udemy":    "Udemy",
			"coursera": "Coursera",
			"tuition":  "Tuition",
		},
		defaultDetail: "Fees",
	},
	{
		categoryID: CatBusinessExpense,
		name:       "Business",
		keywords: []string{
			"aws", "google cloud", "godaddy", "domain renewal", "hosting",
			"linkedin", "upwork", "office supplies",
		},
		labels: map[string]string{
			"aws":          "AWS",
			"google cloud": "Google Cloud",
			"godaddy":      "GoDaddy",
			"linkedin":     "LinkedIn",
		},
		defaultDetail: "Services",
	},
}

// knownCounterparties maps income counterparty name fragments to a person
// label. A hit assigns the family-support category.
var knownCounterparties = map[string]string{
	"amma":   "family",
	"appa":   "family",
	"mom":    "family",
	"dad":    "family",
	"bhaiya": "family",
	"didi":   "family",
}

// employerFragments mark salary credits.
var employerFragments = []string{"salary", "payroll", "sal credit", "wages"}

// businessIncomeFragments mark invoiced or freelance income.
var businessIncomeFragments = []string{
	"invoice", "client payment", "consulting", "freelance", "upwork",
}
