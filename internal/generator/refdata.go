package generator

import "creditflow360/internal/domain/fraud"

// Reference tables the generators sample from. Kept as ordered slices, not
// maps, so the draw order is stable for a given seed.

type stateCities struct {
	State  string
	Cities []string
}

var indianStates = []stateCities{
	{"Maharashtra", []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"}},
	{"Karnataka", []string{"Bangalore", "Mysore", "Hubli", "Mangalore"}},
	{"Tamil Nadu", []string{"Chennai", "Coimbatore", "Madurai", "Trichy"}},
	{"Delhi", []string{"New Delhi", "Delhi"}},
	{"Gujarat", []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot"}},
	{"Telangana", []string{"Hyderabad", "Warangal"}},
	{"West Bengal", []string{"Kolkata", "Howrah", "Durgapur"}},
	{"Uttar Pradesh", []string{"Lucknow", "Kanpur", "Noida", "Agra", "Varanasi"}},
	{"Rajasthan", []string{"Jaipur", "Jodhpur", "Udaipur"}},
	{"Madhya Pradesh", []string{"Bhopal", "Indore", "Gwalior"}},
	{"Haryana", []string{"Gurgaon", "Faridabad", "Panipat"}},
	{"Punjab", []string{"Chandigarh", "Ludhiana", "Amritsar"}},
	{"Kerala", []string{"Kochi", "Thiruvananthapuram", "Kozhikode"}},
	{"Bihar", []string{"Patna", "Gaya"}},
	{"Odisha", []string{"Bhubaneswar", "Cuttack"}},
}

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Reyansh", "Krishna", "Ishaan",
	"Rohan", "Kabir", "Aryan", "Rahul", "Amit", "Suresh", "Ramesh", "Vikram",
	"Sanjay", "Deepak", "Manoj", "Rajesh", "Anil", "Ananya", "Diya", "Aadhya",
	"Saanvi", "Ishita", "Priya", "Kavya", "Meera", "Pooja", "Neha", "Sneha",
	"Anjali", "Ritu", "Sunita", "Lakshmi", "Divya", "Shreya", "Nisha",
	"Asha", "Rekha",
}

var lastNames = []string{
	"Sharma", "Verma", "Gupta", "Mehta", "Patel", "Shah", "Reddy", "Rao",
	"Nair", "Menon", "Iyer", "Pillai", "Singh", "Kaur", "Chopra", "Kapoor",
	"Malhotra", "Khanna", "Joshi", "Desai", "Kulkarni", "Deshpande", "Banerjee",
	"Chatterjee", "Mukherjee", "Das", "Bose", "Ghosh", "Yadav", "Mishra",
	"Tripathi", "Pandey", "Agarwal", "Bansal", "Goel", "Jain", "Saxena",
	"Srivastava", "Chauhan", "Thakur",
}

var streetNames = []string{
	"MG Road", "Station Road", "Gandhi Nagar", "Nehru Street", "Park Street",
	"Lake View Road", "Temple Road", "Market Lane", "Hill Road", "Ring Road",
	"Church Street", "Mall Road", "Subhash Marg", "Rajaji Salai",
	"Link Road", "Mount Road",
}

var employmentTypes = []string{
	"Salaried", "Self-Employed Professional", "Business Owner",
	"Government Employee", "Contractual", "Retired", "Homemaker",
}

var employmentWeights = []float64{0.55, 0.15, 0.12, 0.08, 0.05, 0.03, 0.02}

var educationLevels = []string{
	"High School", "Diploma", "Bachelor's", "Master's", "PhD",
	"Professional Certificate",
}

var educationWeights = []float64{0.10, 0.15, 0.45, 0.25, 0.03, 0.02}

var acquisitionChannels = []string{
	"Direct Visit", "Online Application", "Broker", "Partner Referral",
	"Employee Referral", "Customer Referral", "Digital Marketing",
	"Branch Walk-in", "Tele-calling", "Email Campaign",
}

var customerSegments = []string{
	"Mass", "Mass Affluent", "Affluent", "High Net Worth", "Premium",
}

var personalEmailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com"}
var businessEmailDomains = []string{"business.com", "enterprise.com", "company.in"}

var loanPurposes = map[string][]string{
	"Home Loan": {
		"Purchase of new house", "Home construction", "Home renovation",
		"Extension of existing house", "Plot purchase with construction",
	},
	"Auto Loan": {
		"Purchase of new car", "Purchase of used car", "Purchase of two-wheeler",
		"Commercial vehicle purchase", "Refinance existing auto loan",
	},
	"Personal Loan": {
		"Medical emergency", "Wedding expenses", "Travel expenses",
		"Debt consolidation", "Home appliances purchase", "Education expenses",
	},
	"Business Loan": {
		"Working capital requirement", "Business expansion", "Equipment purchase",
		"Inventory funding", "New branch setup", "Technology upgrade",
	},
	"Education Loan": {
		"Undergraduate studies", "Postgraduate studies", "Professional certification",
		"Study abroad program", "Research fellowship",
	},
}

var transactionModes = []string{"NEFT", "UPI", "RTGS", "Cheque", "Cash", "DD"}
var transactionModeWeights = []float64{0.35, 0.30, 0.10, 0.15, 0.08, 0.02}

var bankNames = []string{
	"State Bank of India", "HDFC Bank", "ICICI Bank", "Axis Bank",
	"Kotak Mahindra Bank", "Yes Bank", "IDFC First Bank", "IndusInd Bank",
	"Bank of Baroda", "Punjab National Bank", "Canara Bank", "Union Bank",
}

var failureReasons = []string{
	"Insufficient funds", "Invalid account number", "Technical error",
	"Bank server timeout", "Transaction limit exceeded",
	"Account blocked", "Invalid IFSC code", "Duplicate transaction",
}

var collateralTypesByProduct = map[string][]string{
	"Home Loan": {
		"Residential Apartment", "Independent House", "Villa",
		"Commercial Shop", "Office Space", "Agricultural Land",
		"Residential Plot", "Commercial Plot",
	},
	"Auto Loan": {
		"New Car", "Used Car", "Commercial Vehicle",
		"Two-wheeler", "Construction Vehicle", "Fleet Vehicle",
	},
	"Business Loan": {
		"Factory Building", "Warehouse", "Machinery",
		"Equipment", "Inventory", "Fixed Deposit",
		"Government Bonds", "Mutual Funds", "Shares",
	},
	"Education Loan": {
		"Fixed Deposit", "Residential Property", "Land",
		"LIC Policy", "Government Securities",
	},
}

var insurableCollateralTypes = []string{
	"Residential Apartment", "Independent House", "Villa",
	"New Car", "Used Car", "Commercial Vehicle",
	"Factory Building", "Warehouse", "Machinery",
}

var insurers = []string{
	"New India Assurance", "United India Insurance", "ICICI Lombard",
	"Bajaj Allianz", "HDFC Ergo", "Tata AIG", "SBI General",
}

var valuationAgencies = []string{
	"Knight Frank", "CBRE", "JLL", "Cushman & Wakefield",
	"Colliers", "Savills", "ICRA Valuation", "CARE Ratings",
}

var collateralConditions = []string{"Excellent", "Good", "Fair", "Average"}
var collateralConditionWeights = []float64{0.3, 0.4, 0.2, 0.1}

var carBrands = []string{
	"Maruti Suzuki", "Hyundai", "Tata", "Mahindra", "Honda",
	"Toyota", "Kia", "MG", "Skoda", "Volkswagen",
}

var carModels = map[string][]string{
	"Maruti Suzuki": {"Swift", "Baleno", "Dzire", "Vitara Brezza", "Ertiga"},
	"Hyundai":       {"i20", "Creta", "Verna", "Venue", "Grand i10"},
	"Tata":          {"Nexon", "Harrier", "Tiago", "Altroz", "Safari"},
	"Mahindra":      {"XUV500", "Scorpio", "Thar", "Bolero", "XUV300"},
	"Honda":         {"City", "Amaze", "Civic", "CR-V", "WR-V"},
	"Toyota":        {"Innova Crysta", "Fortuner", "Glanza", "Camry"},
	"Kia":           {"Seltos", "Sonet", "Carnival"},
	"MG":            {"Hector", "ZS EV", "Gloster"},
	"Skoda":         {"Octavia", "Superb", "Kushaq"},
	"Volkswagen":    {"Polo", "Vento", "Taigun"},
}

var registrationStates = []string{"MH", "KA", "TN", "DL", "GJ", "UP", "WB"}

var fraudRuleTriggers = map[fraud.AlertType][]string{
	fraud.TypeIncomeMismatch: {
		"Annual income exceeds declared by >50%",
		"Credit score vs income mismatch",
		"Employment type incompatible with income level",
	},
	fraud.TypeSharedCollateral: {
		"Same collateral used for multiple loans",
		"Collateral value inflated across applications",
		"Same property multiple valuations",
	},
	fraud.TypeSyntheticIdentity: {
		"No credit history for age>25",
		"Inconsistent address history",
		"Phone number associated with multiple identities",
	},
	fraud.TypeEarlyDefault: {
		"Default within first 3 months",
		"No payments made since disbursement",
		"Immediate delinquency pattern",
	},
}

var confirmedFraudOutcomes = []string{
	"Legal action initiated", "Loan written off", "Recovery in progress",
}
