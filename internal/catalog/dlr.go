package catalog

// DLR room identifiers are numeric and a single category can span several of
// them (the club-level premium rooms were split across three inventory ids).

func dlr(slug, name string, rooms map[string][]string) *Resort {
	return &Resort{Slug: slug, DisplayName: name, Store: StoreDLR, rooms: always(rooms)}
}

var dlrResorts = []*Resort{
	dlr("grand-californian-hotel", "Disney's Grand Californian Hotel & Spa", map[string][]string{
		"Standard View":                 {"13874720"},
		"Woods Courtyard View":          {"13874730"},
		"Partial View":                  {"13874708"},
		"Downtown Disney View":          {"17281813"},
		"Pool View":                     {"13874706"},
		"Standard View - Club Level":    {"13874700"},
		"Premium View - Club Level":     {"13874696", "19172023", "19172024"},
		"1 Bedroom Suite":               {"13874709"},
		"2 Bedroom Suite":               {"13874711"},
		"3 Bedroom Suite":               {"13874705"},
		"Arroyo Suite - 2 Bedroom":      {"412421002"},
		"Arroyo Suite - 3 Bedroom":      {"412422862"},
		"Mount Whitney Suite - 2 Bedroom": {"19634028"},
		"Mount Whitney Suite - 3 Bedroom": {"412422881"},
		"El Capitan Suite - 1 Bedroom":  {"412422869"},
		"El Capitan Suite - 2 Bedroom":  {"19634017"},
		"Arcadia Suite - 1 Bedroom":     {"412422819"},
		"Arcadia Suite - 2 Bedrooms":    {"19634019"},
	}),
	dlr("disneyland-hotel", "Disneyland Hotel", map[string][]string{
		"Standard View":                      {"17282273"},
		"Deluxe View":                        {"17282263"},
		"Premium View":                       {"17282255"},
		"Premium Downtown Disney View":       {"18395697"},
		"Standard View - Club Level":         {"13874765"},
		"Premium View - Club Level":          {"13933610"},
		"1 Bedroom Junior Suite":             {"18684616"},
		"1 Bedroom Family Suite":             {"13874748"},
		"2 Bedroom Junior Connecting Suite":  {"18684617"},
		"2 Bedroom Family Connecting Suite":  {"13874747"},
		"2 Bedroom Family Suite":             {"17806652"},
		"3 Bedroom Family Connecting Suite":  {"13874743"},
		"Big Thunder Suite - 2 Bedrooms":     {"19634000"},
		"Pirate Suite - 2 Bedrooms":          {"19633998"},
		"Mickey Mouse Suite - 2 Bedrooms":    {"19634002"},
		"Adventureland Suite - 2 Bedrooms":   {"19301811"},
	}),
	dlr("villas-at-disneyland-hotel", "The Villas at Disneyland Hotel", map[string][]string{
		"Duo Studio - Standard View":              {"411717882"},
		"Duo Studio - Preferred View":             {"411717883"},
		"Duo Studio Garden":                       {"411717885"},
		"Deluxe Studio - Standard View":           {"411700276"},
		"Deluxe Studio - Preferred View":          {"411711478"},
		"Deluxe Studio Garden":                    {"411711480"},
		"1 Bedroom Villa - Preferred View":        {"411711477"},
		"2 Bedroom Villa - Preferred View":        {"411717877"},
		"3 Bedroom Grand Villa - Preferred View":  {"411717880"},
	}),
	dlr("pixar-place-hotel", "Pixar Place Hotel", map[string][]string{
		"Standard View":                     {"17275201"},
		"Premium View":                      {"17275198"},
		"Standard View - Club Level":        {"17274985"},
		"Pool Terrace - Club Level":         {"411977970"},
		"Premium View - Club Level":         {"17274931"},
		"1 Bedroom Suite":                   {"17216962"},
		"2 Bedroom Family Connecting Suite": {"17806667"},
		"Pixel Suite - 1 Bedroom":           {"412422883"},
		"Sketch Suite - 1 Bedroom":          {"412422892"},
		"Pixel Suite - 2 Bedroom":           {"19634007"},
		"Sketch Suite - 2 Bedrooms":         {"19634005"},
		"Pixel Suite - 3 Bedroom":           {"412422887"},
	}),
}
