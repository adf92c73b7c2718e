package results

// driverIDs maps the provider's three-letter driver abbreviations to the
// canonical driver ids used across the document store.
var driverIDs = map[string]string{
	"NOR": "norris",
	"SAI": "sainz",
	"LEC": "leclerc",
	"PIA": "piastri",
	"VER": "max_verstappen",
	"ALB": "albon",
	"RUS": "russell",
	"ALO": "alonso",
	"HAD": "hadjar",
	"STR": "stroll",
	"TSU": "tsunoda",
	"HAM": "hamilton",
	"DOO": "doohan",
	"ANT": "antonelli",
	"BOR": "bortoleto",
	"LAW": "lawson",
	"GAS": "gasly",
	"HUL": "hulkenberg",
	"OCO": "ocon",
	"BEA": "bearman",
	"HIR": "hirakawa",
	"DRU": "drugovich",
	"IWA": "iwasa",
	"BRO": "browning",
	"VES": "vesti",
	"BEG": "beganovich",
	"COL": "colapinto",
}

// CanonicalDriver resolves a three-letter abbreviation to the canonical
// driver id. Unknown abbreviations resolve to nothing.
func CanonicalDriver(abbreviation string) (string, bool) {
	id, ok := driverIDs[abbreviation]
	return id, ok
}
