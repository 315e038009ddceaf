package generator

// Bounded vocabularies for synthetic identities. Categorical sets mirror the
// documented business vocabulary.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	"Anthony", "Betty", "Mark", "Margaret", "Donald", "Sandra", "Steven", "Ashley",
	"Priya", "Arjun", "Wei", "Mei", "Hans", "Greta", "Pierre", "Amelie",
	"Oliver", "Charlotte", "Jack", "Isla", "Lucas", "Emma", "Noah", "Sophie",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	"Patel", "Sharma", "Chen", "Wang", "Mueller", "Schmidt", "Dubois", "Laurent",
	"Clark", "Lewis", "Walker", "Hall", "Young", "King", "Wright", "Scott",
}

var emailDomains = []string{
	"example.com", "mail.test", "inbox.dev", "post.example", "letterbox.net",
}

var companyStems = []string{
	"Vertex", "Northwind", "Apex", "Bluepeak", "Cascade", "Summit", "Orion", "Atlas",
	"Pinnacle", "Horizon", "Crescent", "Meridian", "Quantum", "Sterling", "Harbor", "Beacon",
	"Falcon", "Granite", "Juniper", "Lakeside", "Monarch", "Nimbus", "Redwood", "Solstice",
}

var companySuffixes = []string{
	"Holdings", "Commerce", "Trading", "Retail Group", "Ventures", "Marketplace",
	"Digital", "Services", "Stores", "Partners",
}

var countries = []string{
	"USA", "UK", "CANADA", "GERMANY", "FRANCE", "INDIA", "SINGAPORE", "AUSTRALIA",
}

var businessTypes = []string{
	"E-COMMERCE", "RETAIL", "SUBSCRIPTION", "MARKETPLACE", "FINANCIAL_SERVICES", "TRAVEL",
}

var paymentMethods = []string{
	"CREDIT_CARD", "DEBIT_CARD", "BANK_TRANSFER", "PAYPAL", "CRYPTO", "WALLET",
}

var failureReasons = []string{
	"Insufficient funds",
	"Card declined",
	"Authentication failed",
	"Network timeout",
	"Invalid card details",
	"Fraud detection triggered",
	"Daily limit exceeded",
}
