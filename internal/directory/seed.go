package directory

// Seed datasets. National seats carry the 3-digit PIN prefixes overlapping
// their area; the pincode table maps exact codes to the India Post district
// spelling, which does not always agree verbatim with the assembly dataset's
// district column (the resolver normalizes both sides before comparing).

var nationalSeed = []Constituency{
	{ID: "DL-01", Name: "New Delhi", State: "NCT of Delhi", PinRanges: []string{"110"}},
	{ID: "DL-02", Name: "Chandni Chowk", State: "NCT of Delhi", PinRanges: []string{"110"}},
	{ID: "DL-03", Name: "East Delhi", State: "NCT of Delhi", PinRanges: []string{"110"}},
	{ID: "KA-01", Name: "Bangalore North", State: "Karnataka", PinRanges: []string{"560", "562"}},
	{ID: "KA-02", Name: "Bangalore South", State: "Karnataka", PinRanges: []string{"560"}},
	{ID: "KA-03", Name: "Belgaum", State: "Karnataka", PinRanges: []string{"590", "591"}},
	// No assembly segments seeded yet for Mysore; prefix 570 resolves via
	// the state-only fallback until the delimitation rows land.
	{ID: "KA-04", Name: "Mysore", State: "Karnataka", PinRanges: []string{"570"}},
	{ID: "MH-01", Name: "Mumbai South", State: "Maharashtra", PinRanges: []string{"400"}},
	{ID: "MH-02", Name: "Mumbai North", State: "Maharashtra", PinRanges: []string{"400", "401"}},
	{ID: "MH-03", Name: "Pune", State: "Maharashtra", PinRanges: []string{"411"}},
	{ID: "TN-01", Name: "Chennai Central", State: "Tamil Nadu", PinRanges: []string{"600"}},
	{ID: "TN-02", Name: "Chennai South", State: "Tamil Nadu", PinRanges: []string{"600"}},
	{ID: "UP-01", Name: "Ghaziabad", State: "Uttar Pradesh", PinRanges: []string{"201"}},
	{ID: "UP-02", Name: "Lucknow", State: "Uttar Pradesh", PinRanges: []string{"226"}},
	{ID: "WB-01", Name: "Kolkata Uttar", State: "West Bengal", PinRanges: []string{"700"}},
	{ID: "WB-02", Name: "Kolkata Dakshin", State: "West Bengal", PinRanges: []string{"700"}},
}

var pincodeSeed = map[string]PostalRecord{
	"110001": {State: "NCT of Delhi", District: "New Delhi"},
	"110005": {State: "NCT of Delhi", District: "Central Delhi"},
	"110006": {State: "NCT of Delhi", District: "Central Delhi"},
	"110031": {State: "NCT of Delhi", District: "East Delhi"},
	"201001": {State: "Uttar Pradesh", District: "Ghaziabad"},
	"226001": {State: "Uttar Pradesh", District: "Lucknow District"},
	"400001": {State: "Maharashtra", District: "Mumbai City"},
	"400066": {State: "Maharashtra", District: "Mumbai Suburban District"},
	"411001": {State: "Maharashtra", District: "Pune District"},
	"560001": {State: "Karnataka", District: "Bengaluru Urban District"},
	// India Post still carries the pre-rename spelling here; the assembly
	// dataset says "Belagavi", so this row never district-matches.
	"590001": {State: "Karnataka", District: "Belgaum"},
	"600001": {State: "Tamil Nadu", District: "Chennai district"},
	"700073": {State: "West Bengal", District: "Kolkata"},
}
