package catalog

import "time"

// locationRecode is the cutover at which the moderate resorts replaced their
// view-based room categories with location-based ones (new booking codes).
// Check-ins on or after this date resolve against the new generation.
var locationRecode = date(2026, time.January, 6)

func wdw(slug, name string, rooms map[string][]string) *Resort {
	return &Resort{Slug: slug, DisplayName: name, Store: StoreWDW, rooms: always(rooms)}
}

var wdwResorts = []*Resort{
	wdw("all-star-movies-resort", "Disney's All-Star Movies Resort", map[string][]string{
		"Preferred Room": {"EP"},
		"Standard Room":  {"EA"},
	}),
	wdw("all-star-music-resort", "Disney's All-Star Music Resort", map[string][]string{
		"Standard Room":  {"AA"},
		"Preferred Room": {"AP"},
		"Family Suite":   {"AB"},
	}),
	wdw("all-star-sports-resort", "Disney's All-Star Sports Resort", map[string][]string{
		"Standard Room":  {"SA"},
		"Preferred Room": {"SP"},
	}),
	wdw("animal-kingdom-lodge", "Disney's Animal Kingdom Lodge", map[string][]string{
		"Savanna View - King Bed - Club Level":        {"1V"},
		"Savanna View - King Bed":                     {"7F"},
		"Resort View - King Bed":                      {"BB"},
		"Water View - King Bed":                       {"ZV"},
		"Savanna View":                                {"QC"},
		"Resort View":                                 {"QA"},
		"Water View":                                  {"QB"},
		"Resort View - 1 BR Suite - Club Level":       {"QM"},
		"Savanna View - Club Level":                   {"QG"},
		"Savanna View - 1 BR Suite - Club Level":      {"Q1"},
		"2-Bedroom Suite - Club Level":                {"Q2"},
		"Royal Asante Presidential Suite - Club Level": {"QP"},
	}),
	{
		Slug:        "animal-kingdom-villas-jambo",
		DisplayName: "Disney's Animal Kingdom Villas - Jambo House",
		Store:       StoreWDW,
		apiSlug:     "animal-kingdom-lodge",
		rooms: always(map[string][]string{
			"Deluxe Studio - Savanna View (Jambo)":         {"U2"},
			"1 Bedroom Villa - Savanna View (Jambo)":       {"U3"},
			"3 Bedroom Grand Villa - Savanna View (Jambo)": {"U5"},
			"Studio - Value (Jambo)":                       {"U7"},
			"1 Bedroom Villa - Value (Jambo)":              {"U8"},
			"Deluxe Studio - Resort View (Jambo)":          {"UR"},
			"1 Bedroom Villa - Resort View (Jambo)":        {"US"},
			"Deluxe Studio - Club Level (Jambo)":           {"UX"},
			"1 Bedroom Villa - Club Level (Jambo)":         {"UY"},
		}),
	},
	{
		Slug:        "animal-kingdom-villas-kidani",
		DisplayName: "Disney's Animal Kingdom Villas - Kidani Village",
		Store:       StoreWDW,
		apiSlug:     "animal-kingdom-lodge",
		rooms: always(map[string][]string{
			"Deluxe Studio - Savanna View (Kidani)":         {"AU"},
			"1 Bedroom Villa - Savanna View (Kidani)":       {"BU"},
			"2 Bedroom Villa - Savanna View (Kidani)":       {"CU"},
			"3 Bedroom Grand Villa - Savanna View (Kidani)": {"DU"},
			"Deluxe Studio - Resort View (Kidani)":          {"UA"},
			"1 Bedroom Villa - Resort View (Kidani)":        {"UB"},
			"2 Bedroom Villa - Resort View (Kidani)":        {"UC"},
			"3 Bedroom Grand Villa - Resort View (Kidani)":  {"UD"},
		}),
	},
	wdw("art-of-animation-resort", "Disney's Art of Animation Resort", map[string][]string{
		"The Little Mermaid Standard Room": {"VA"},
		"Family Suite":                     {"VS"},
		"The Lion King Family Suite":       {"VL"},
		"Cars Family Suite":                {"VC"},
		"Finding Nemo Family Suite":        {"VN"},
	}),
	wdw("bay-lake-tower-at-contemporary", "Bay Lake Tower at Disney's Contemporary Resort", map[string][]string{
		"Deluxe Studio - Theme Park View":         {"4A"},
		"1-Bedroom Villa - Theme Park View":       {"4B"},
		"2-Bedroom Villa - Theme Park View":       {"4C"},
		"3-Bedroom Grand Villa - Theme Park View": {"4D"},
		"1 Bedroom Villa - Preferred View":        {"4O"},
		"Deluxe Studio - Preferred View":          {"4S"},
		"2 Bedroom Villa - Preferred View":        {"4T"},
		"3 Bedroom Grand Villa - Preferred View":  {"4V"},
		"Deluxe Studio - Resort View":             {"4W"},
		"1 Bedroom Villa - Resort View":           {"4X"},
		"2 Bedroom Villa - Resort View":           {"4Y"},
	}),
	wdw("beach-club-resort", "Disney's Beach Club Resort", map[string][]string{
		"Resort View":                        {"WC"},
		"Water View":                         {"WD"},
		"Deluxe Room":                        {"XX"},
		"Resort View - Club Level":           {"WK"},
		"Water View - Club Level":            {"WG"},
		"1 Bedroom Suite - Club Level":       {"W1"},
		"2 Bedroom Suite - Club Level":       {"W2"},
		"Nantucket VP Suite - Club Level":    {"WN"},
		"Newport Presidential Suite - Club Level": {"WP"},
	}),
	wdw("beach-club-villas", "Disney's Beach Club Villas", map[string][]string{
		"Deluxe Studio":   {"DA"},
		"1 Bedroom Villa": {"DB"},
		"2 Bedroom Villa": {"DC"},
	}),
	wdw("boardwalk-inn", "Disney's BoardWalk Inn", map[string][]string{
		"2 Bedroom Suite - Club Level":    {"IU"},
		"Deluxe Room - Club Level":        {"IE"},
		"Garden Room - Club Level Access": {"IF"},
		"Resort View":                     {"IL"},
		"Resort View - Club Level":        {"ID"},
		"Sonora VP Suite - Club Level":    {"IV"},
		"Water View":                      {"IC"},
	}),
	wdw("boardwalk-villas", "Disney's BoardWalk Villas", map[string][]string{
		"Deluxe Studio - Garden or Pool View":   {"AZ"},
		"1 Bedroom Villa - Garden or Pool View": {"BZ"},
		"3 Bedroom Grand Villa":                 {"DZ"},
		"1 Bedroom Villa - Boardwalk View":      {"OZ"},
		"Deluxe Studio - Boardwalk View":        {"SZ"},
		"Deluxe Studio - Resort View":           {"ZA"},
		"1 Bedroom Villa - Resort View":         {"ZB"},
	}),
	wdw("boulder-ridge-villas-at-wilderness-lodge", "Boulder Ridge Villas at Disney's Wilderness Lodge", map[string][]string{
		"2 Bedroom Villa": {"XC"},
		"1 Bedroom Villa": {"XB"},
		"Deluxe Studio":   {"XA"},
	}),
	{
		Slug:        "caribbean-beach-resort",
		DisplayName: "Disney's Caribbean Beach Resort",
		Store:       StoreWDW,
		rooms: always(map[string][]string{
			"King Bed":                          {"RK"},
			"Standard View - 5th Sleeper":       {"CX"},
			"Water or Pool View":                {"RD"},
			"Water or Pool View - 5th Sleeper":  {"D8"},
			"Preferred Room":                    {"RP"},
			"Standard View":                     {"RA"},
		}).from(locationRecode, map[string][]string{
			"Standard Location":  {"AG5"},
			"Preferred Location": {"AHE"},
		}),
	},
	wdw("contemporary-resort", "Disney's Contemporary Resort", map[string][]string{
		"Garden Wing - Resort View":                          {"CA"},
		"Garden Wing - Water View":                           {"CB"},
		"Resort View - Club Level":                           {"CC"},
		"Main Tower - Theme Park View":                       {"CF"},
		"Garden Wing - King":                                 {"CG"},
		"Garden Wing - 1 Bedroom Hospitality Suite":          {"CH"},
		"Garden Wing - 1 Bedroom Suite":                      {"CJ"},
		"Garden Wing - Deluxe Room":                          {"CK"},
		"Water View - 2 Bedroom Suite - Club Level":          {"CL"},
		"Theme Park View - 2 Bedroom Suite - Club Level":     {"CM"},
		"Theme Park View - 1 Bedroom Suite - Club Level":     {"CN"},
		"Theme Park View - Presidential Suite Club Level":    {"CP"},
		"Water View - 1 Bedroom Suite - Club Level":          {"CQ"},
		"Theme Park View - Atrium Club Level":                {"CR"},
		"Main Tower - Water View":                            {"CT"},
		"Resort View - King - Club Level":                    {"CW"},
	}),
	wdw("copper-creek-villas-and-cabins", "Copper Creek Villas & Cabins at Disney's Wilderness Lodge", map[string][]string{
		"Deluxe Studio":             {"2A"},
		"2 Bedroom Villa":           {"2F"},
		"1 Bedroom Villa":           {"2E"},
		"3 Bedroom Grand Villa":     {"2I"},
		"Deluxe Studio with Shower": {"2D"},
		"2 Bedroom Cabin":           {"2K"},
	}),
	wdw("coronado-springs-resort", "Disney's Coronado Springs Resort", map[string][]string{
		"Tower - Water View":                       {"F3"},
		"Tower - Water View - King Bed":            {"F4"},
		"Tower - Resort View":                      {"F1"},
		"Tower - Resort View - King Bed":           {"F2"},
		"Tower - Resort View - Club Level":         {"X5"},
		"Tower - Deluxe Suite - Club Level":        {"F5"},
		"Tower - One Bedroom Suite - Club Level":   {"F8"},
		"Tower - Presidential Suite - Club Level":  {"F9"},
		"Village - Standard View - King Bed":       {"NK"},
		"Village - Standard View":                  {"NA"},
		"Village - Water View":                     {"ND"},
		"Village - Preferred Room":                 {"NY"},
		"Village - Water View - King Bed":          {"NW"},
		"Village - Preferred Room - King Bed":      {"NZ"},
		"Village - 1 Bedroom Suite":                {"NT"},
		"Village - 1 Bedroom Suite - King Bed":     {"NG"},
		"Village - Executive Suite":                {"NU"},
		"Village - Standard Location":              {"AHN"},
		"Village - Preferred Location":             {"AHT"},
		"Village - Standard Location - King Bed":   {"AIP"},
		"Village - Preferred Location - King Bed":  {"AIU"},
	}),
	wdw("grand-floridian-resort-and-spa", "Disney's Grand Floridian Resort & Spa", map[string][]string{
		"1 Bedroom Suite - Club Level":             {"B1"},
		"2 Bedroom Suite - Club Level":             {"B2"},
		"Resort View":                              {"BA"},
		"2 BR - Theme Park View - Club Level Access": {"BC"},
		"1 BR - Theme Park View - Club Level Access": {"BD"},
		"Theme Park View - Club Level":             {"BE"},
		"Water View":                               {"BG"},
		"Resort View - Club Level":                 {"BJ"},
		"Grand Suite - Club Level":                 {"BK"},
		"1 Bedroom Suite - Club Level Access":      {"BN"},
		"Deluxe Room - Club Level":                 {"BO"},
		"Deluxe King Room - Club Level":            {"BP"},
		"2 Bedroom Suite - Club Level Access":      {"BQ"},
		"Disney Suite - Club Level":                {"BS"},
		"Theme Park View":                          {"BU"},
		"Victorian Suite - Club Level":             {"BW"},
	}),
	wdw("old-key-west-resort", "Disney's Old Key West Resort", map[string][]string{
		"1 Bedroom Villa":       {"KB"},
		"Deluxe Studio":         {"KA"},
		"3 Bedroom Grand Villa": {"KD"},
		"2 Bedroom Villa":       {"KC"},
	}),
	{
		Slug:        "polynesian-village-resort",
		DisplayName: "Disney's Polynesian Village Resort",
		Store:       StoreWDW,
		apiSlug:     "polynesian-villas-bungalows",
		rooms: always(map[string][]string{
			"Resort View":                      {"PB"},
			"Water View":                       {"P8"},
			"Theme Park View":                  {"PC"},
			"Resort View - Club Level":         {"PM"},
			"Water View - Club Level":          {"PL"},
			"Theme Park View - Club Level":     {"PE"},
			"1 Bedroom Suite - Club Level":     {"P1"},
			"Honeymoon Room - Club Level":      {"PY"},
			"Ambassador VP Suite - Club Level": {"P2"},
			"King Kamehameha Suite - Club Level": {"P5"},
		}),
	},
	wdw("polynesian-villas-bungalows", "Disney's Polynesian Villas & Bungalows", map[string][]string{
		"Deluxe Studio - Resort View":               {"MU"},
		"Deluxe Studio - Preferred View":            {"MV"},
		"Tower - Duo Studio - Resort View":          {"AFR"},
		"Tower - Duo Studio - Preferred View":       {"AFV"},
		"Tower - Duo Studio - Premium View":         {"AFW"},
		"Tower - Deluxe Studio - Resort View":       {"AFX"},
		"Tower - Deluxe Studio - Preferred View":    {"AF1"},
		"Tower - Deluxe Studio - Theme Park View":   {"AF3"},
		"Tower - 1 Bedroom Villa - Resort View":     {"AF7"},
		"Tower - 1 Bedroom Villa - Preferred View":  {"AF9"},
		"Tower - 1 Bedroom Villa - Theme Park View": {"AGA"},
		"Tower - 2 Bedroom Villa - Theme Park View": {"AGF"},
		"Tower - 2 Bedroom Penthouse - Preferred View":  {"AGH"},
		"Tower - 2 Bedroom Penthouse - Theme Park View": {"AGJ"},
		"Bungalow": {"MW"},
	}),
	wdw("pop-century-resort", "Disney's Pop Century Resort", map[string][]string{
		"Standard Room":       {"GA"},
		"Preferred Room":      {"GV"},
		"Standard Pool View":  {"GP"},
		"Preferred Pool View": {"GW"},
	}),
	{
		Slug:        "port-orleans-resort-french-quarter",
		DisplayName: "Disney's Port Orleans Resort - French Quarter",
		Store:       StoreWDW,
		rooms: always(map[string][]string{
			"King Bed":      {"OK"},
			"Garden View":   {"OB"},
			"River View":    {"OE"},
			"Pool View":     {"OD"},
			"Standard View": {"OA"},
		}).from(locationRecode, map[string][]string{
			"Standard Location":  {"AHY"},
			"Preferred Location": {"AH4"},
		}),
	},
	{
		Slug:        "port-orleans-resort-riverside",
		DisplayName: "Disney's Port Orleans Resort - Riverside",
		Store:       StoreWDW,
		rooms: always(map[string][]string{
			"Woods View - 5th Sleeper":          {"AS"},
			"Standard View":                     {"LA"},
			"Standard View - 5th Sleeper":       {"AC"},
			"Woods View":                        {"LB"},
			"King Bed":                          {"LK"},
			"Pool View":                         {"LD"},
			"Preferred Room":                    {"LF"},
			"River View":                        {"LE"},
			"Royal Guest Room - Standard View":  {"LS"},
			"Royal Guest Room - Woods View":     {"LG"},
			"Royal Guest Room - River View":     {"LV"},
		}).from(locationRecode, map[string][]string{
			"Standard Location":               {"AH9"},
			"Standard Location - 5th Sleeper": {"AIC"},
			"Preferred Location":              {"AIE"},
			"Royal Guest Room":                {"AIK"},
		}),
	},
	wdw("riviera-resort", "Disney's Riviera Resort", map[string][]string{
		"Deluxe Studio - Resort View":      {"10"},
		"Deluxe Studio - Preferred View":   {"A1"},
		"2 Bedroom Villa - Resort View":    {"H0"},
		"2 Bedroom Villa - Preferred View": {"J0"},
		"Tower Studio - Resort View":       {"W0"},
		"1 Bedroom Villa - Preferred View": {"C0"},
		"1 Bedroom Villa - Resort View":    {"A9"},
		"3 Bedroom Grand Villa":            {"T0"},
	}),
	wdw("saratoga-springs-resort-and-spa", "Disney's Saratoga Springs Resort & Spa", map[string][]string{
		"Deluxe Studio":                   {"TA"},
		"Deluxe Studio - Preferred":       {"S9"},
		"1 Bedroom Villa - Preferred":     {"SB"},
		"2 Bedroom Villa":                 {"TC"},
		"2 Bedroom Villa - Preferred":     {"SH"},
		"Treehouse Villa":                 {"TH"},
		"3-Bedroom Grand Villa - Preferred": {"SK"},
		"3-Bedroom Grand Villa":           {"TD"},
		"1 Bedroom Villa":                 {"TB"},
	}),
	wdw("dvc-cabins-at-fort-wilderness-resort", "The Cabins at Disney's Fort Wilderness Resort", map[string][]string{
		"1 Bedroom Cabin": {"AD6"},
	}),
	wdw("villas-at-grand-floridian-resort-and-spa", "The Villas at Disney's Grand Floridian Resort & Spa", map[string][]string{
		"Deluxe Studio - Preferred View":         {"81"},
		"1 Bedroom Villa - Preferred View":       {"82"},
		"2 Bedroom Villa - Preferred View":       {"83"},
		"3 Bedroom Grand Villa - Preferred View": {"85"},
		"Deluxe Studio - Resort View":            {"86"},
		"1 Bedroom Villa - Resort View":          {"87"},
		"2 Bedroom Villa - Resort View":          {"88"},
		"Resort Studio - Resort View":            {"AAI"},
		"Resort Studio - Preferred View":         {"AAN"},
		"Resort Studio - Theme Park View":        {"AAT"},
	}),
	wdw("wilderness-lodge-resort", "Disney's Wilderness Lodge", map[string][]string{
		"Fireworks View":                      {"JZ"},
		"Resort View":                         {"JB"},
		"Resort View - King Bed":              {"Z3"},
		"Water View":                          {"JC"},
		"Water View - King Bed":               {"Z9"},
		"Fireworks View - King Bed":           {"Z5"},
		"Resort View - Club Level":            {"JD"},
		"Deluxe Room - Club Level Access":     {"JS"},
		"Resort View - King Bed - Club Level": {"ZS"},
	}),
	wdw("yacht-club-resort", "Disney's Yacht Club Resort", map[string][]string{
		"2 Bedroom Suite - Club Level Access":      {"Y2"},
		"Resort View":                              {"YC"},
		"Water View":                               {"YD"},
		"Water View - Club Level":                  {"YG"},
		"Captain's Deck Suite - Club Level Access": {"YH"},
		"Resort View - Club Level":                 {"YK"},
		"Turret Suite - Club Level Access":         {"YT"},
		"Commodore VP Suite - Club Level":          {"YV"},
	}),
}
