package directory

var assemblySeed = []AssemblyConstituency{
	// NCT of Delhi
	{ID: "DL-AC-001", Name: "New Delhi", State: "NCT of Delhi", District: "New Delhi"},
	{ID: "DL-AC-002", Name: "Delhi Cantonment", State: "NCT of Delhi", District: "New Delhi"},
	{ID: "DL-AC-003", Name: "Karol Bagh", State: "NCT of Delhi", District: "Central Delhi"},
	{ID: "DL-AC-004", Name: "Patel Nagar", State: "NCT of Delhi", District: "Central Delhi"},
	{ID: "DL-AC-005", Name: "Moti Nagar", State: "NCT of Delhi", District: "West Delhi"},
	{ID: "DL-AC-006", Name: "Rajinder Nagar", State: "NCT of Delhi", District: "Central Delhi"},
	{ID: "DL-AC-007", Name: "Chandni Chowk", State: "NCT of Delhi", District: "Central Delhi"},
	{ID: "DL-AC-008", Name: "Ballimaran", State: "NCT of Delhi", District: "Central Delhi"},
	{ID: "DL-AC-009", Name: "Sadar Bazar", State: "NCT of Delhi", District: "Central Delhi"},
	{ID: "DL-AC-010", Name: "Model Town", State: "NCT of Delhi", District: "North Delhi"},
	{ID: "DL-AC-011", Name: "Shalimar Bagh", State: "NCT of Delhi", District: "North West Delhi"},
	{ID: "DL-AC-012", Name: "Patparganj", State: "NCT of Delhi", District: "East Delhi"},
	{ID: "DL-AC-013", Name: "Laxmi Nagar", State: "NCT of Delhi", District: "East Delhi"},
	{ID: "DL-AC-014", Name: "Vishwas Nagar", State: "NCT of Delhi", District: "Shahdara"},
	{ID: "DL-AC-015", Name: "Krishna Nagar", State: "NCT of Delhi", District: "Shahdara"},
	{ID: "DL-AC-016", Name: "Gandhi Nagar", State: "NCT of Delhi", District: "East Delhi"},

	// Karnataka
	{ID: "KA-AC-001", Name: "K.R. Pura", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-002", Name: "Byatarayanapura", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-003", Name: "Yeshwanthpura", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-004", Name: "Dasarahalli", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-005", Name: "Mahalakshmi Layout", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-006", Name: "Govindraj Nagar", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-007", Name: "Vijay Nagar", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-008", Name: "Basavanagudi", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-009", Name: "Padmanaba Nagar", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-010", Name: "BTM Layout", State: "Karnataka", District: "Bengaluru Urban"},
	{ID: "KA-AC-011", Name: "Belgaum Uttar", State: "Karnataka", District: "Belagavi"},
	{ID: "KA-AC-012", Name: "Belgaum Dakshin", State: "Karnataka", District: "Belagavi"},
	{ID: "KA-AC-013", Name: "Belgaum Rural", State: "Karnataka", District: "Belagavi"},
	{ID: "KA-AC-014", Name: "Bailhongal", State: "Karnataka", District: "Belagavi"},
	{ID: "KA-AC-015", Name: "Saundatti Yellamma", State: "Karnataka", District: "Belagavi"},

	// Maharashtra
	{ID: "MH-AC-001", Name: "Colaba", State: "Maharashtra", District: "Mumbai City"},
	{ID: "MH-AC-002", Name: "Mumbadevi", State: "Maharashtra", District: "Mumbai City"},
	{ID: "MH-AC-003", Name: "Malabar Hill", State: "Maharashtra", District: "Mumbai City"},
	{ID: "MH-AC-004", Name: "Worli", State: "Maharashtra", District: "Mumbai City"},
	{ID: "MH-AC-005", Name: "Byculla", State: "Maharashtra", District: "Mumbai City"},
	{ID: "MH-AC-006", Name: "Shivadi", State: "Maharashtra", District: "Mumbai City"},
	{ID: "MH-AC-007", Name: "Borivali", State: "Maharashtra", District: "Mumbai Suburban"},
	{ID: "MH-AC-008", Name: "Dahisar", State: "Maharashtra", District: "Mumbai Suburban"},
	{ID: "MH-AC-009", Name: "Kandivali East", State: "Maharashtra", District: "Mumbai Suburban"},
	{ID: "MH-AC-010", Name: "Charkop", State: "Maharashtra", District: "Mumbai Suburban"},
	{ID: "MH-AC-011", Name: "Malad West", State: "Maharashtra", District: "Mumbai Suburban"},
	{ID: "MH-AC-012", Name: "Magathane", State: "Maharashtra", District: "Mumbai Suburban"},
	{ID: "MH-AC-013", Name: "Vadgaon Sheri", State: "Maharashtra", District: "Pune"},
	{ID: "MH-AC-014", Name: "Shivajinagar", State: "Maharashtra", District: "Pune"},
	{ID: "MH-AC-015", Name: "Kothrud", State: "Maharashtra", District: "Pune"},
	{ID: "MH-AC-016", Name: "Parvati", State: "Maharashtra", District: "Pune"},
	{ID: "MH-AC-017", Name: "Pune Cantonment", State: "Maharashtra", District: "Pune"},
	{ID: "MH-AC-018", Name: "Kasba Peth", State: "Maharashtra", District: "Pune"},

	// Tamil Nadu
	{ID: "TN-AC-001", Name: "Villivakkam", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-002", Name: "Egmore", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-003", Name: "Harbour", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-004", Name: "Chepauk-Thiruvallikeni", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-005", Name: "Thousand Lights", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-006", Name: "Anna Nagar", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-007", Name: "Virugambakkam", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-008", Name: "Saidapet", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-009", Name: "Thiyagarayanagar", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-010", Name: "Mylapore", State: "Tamil Nadu", District: "Chennai"},
	{ID: "TN-AC-011", Name: "Velachery", State: "Tamil Nadu", District: "Chennai"},

	// Uttar Pradesh
	{ID: "UP-AC-001", Name: "Loni", State: "Uttar Pradesh", District: "Ghaziabad"},
	{ID: "UP-AC-002", Name: "Sahibabad", State: "Uttar Pradesh", District: "Ghaziabad"},
	{ID: "UP-AC-003", Name: "Ghaziabad", State: "Uttar Pradesh", District: "Ghaziabad"},
	{ID: "UP-AC-004", Name: "Muradnagar", State: "Uttar Pradesh", District: "Ghaziabad"},
	{ID: "UP-AC-005", Name: "Modinagar", State: "Uttar Pradesh", District: "Ghaziabad"},
	{ID: "UP-AC-006", Name: "Lucknow West", State: "Uttar Pradesh", District: "Lucknow"},
	{ID: "UP-AC-007", Name: "Lucknow North", State: "Uttar Pradesh", District: "Lucknow"},
	{ID: "UP-AC-008", Name: "Lucknow East", State: "Uttar Pradesh", District: "Lucknow"},
	{ID: "UP-AC-009", Name: "Lucknow Central", State: "Uttar Pradesh", District: "Lucknow"},
	{ID: "UP-AC-010", Name: "Lucknow Cantonment", State: "Uttar Pradesh", District: "Lucknow"},

	// West Bengal
	{ID: "WB-AC-001", Name: "Jorasanko", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-002", Name: "Shyampukur", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-003", Name: "Maniktala", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-004", Name: "Kashipur-Belgachhia", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-005", Name: "Entally", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-006", Name: "Bhabanipur", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-007", Name: "Rashbehari", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-008", Name: "Ballygunge", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-009", Name: "Chowringhee", State: "West Bengal", District: "Kolkata"},
	{ID: "WB-AC-010", Name: "Kasba", State: "West Bengal", District: "Kolkata"},
}

// Each national seat decomposes into its assembly segments. Order follows the
// Election Commission delimitation listing.
var containmentSeed = map[string][]string{
	"DL-01": {"DL-AC-001", "DL-AC-002", "DL-AC-003", "DL-AC-004", "DL-AC-005", "DL-AC-006"},
	"DL-02": {"DL-AC-007", "DL-AC-008", "DL-AC-009", "DL-AC-010", "DL-AC-011"},
	"DL-03": {"DL-AC-012", "DL-AC-013", "DL-AC-014", "DL-AC-015", "DL-AC-016"},
	"KA-01": {"KA-AC-001", "KA-AC-002", "KA-AC-003", "KA-AC-004", "KA-AC-005"},
	"KA-02": {"KA-AC-006", "KA-AC-007", "KA-AC-008", "KA-AC-009", "KA-AC-010"},
	"KA-03": {"KA-AC-011", "KA-AC-012", "KA-AC-013", "KA-AC-014", "KA-AC-015"},
	"MH-01": {"MH-AC-001", "MH-AC-002", "MH-AC-003", "MH-AC-004", "MH-AC-005", "MH-AC-006"},
	"MH-02": {"MH-AC-007", "MH-AC-008", "MH-AC-009", "MH-AC-010", "MH-AC-011", "MH-AC-012"},
	"MH-03": {"MH-AC-013", "MH-AC-014", "MH-AC-015", "MH-AC-016", "MH-AC-017", "MH-AC-018"},
	"TN-01": {"TN-AC-001", "TN-AC-002", "TN-AC-003", "TN-AC-004", "TN-AC-005", "TN-AC-006"},
	"TN-02": {"TN-AC-007", "TN-AC-008", "TN-AC-009", "TN-AC-010", "TN-AC-011"},
	"UP-01": {"UP-AC-001", "UP-AC-002", "UP-AC-003", "UP-AC-004", "UP-AC-005"},
	"UP-02": {"UP-AC-006", "UP-AC-007", "UP-AC-008", "UP-AC-009", "UP-AC-010"},
	"WB-01": {"WB-AC-001", "WB-AC-002", "WB-AC-003", "WB-AC-004", "WB-AC-005"},
	"WB-02": {"WB-AC-006", "WB-AC-007", "WB-AC-008", "WB-AC-009", "WB-AC-010"},
}
