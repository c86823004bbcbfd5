package atlas

// Country table generated offline from Natural Earth 10m admin-0
// shapefiles, heavily simplified for the engine: a coarse boundary
// ring, a capital coordinate where one is recorded, and a hand-tuned
// difficulty rating. Disputed territories keep their customary
// two-letter codes (XK Kosovo, XS Somaliland).

func coord(lat, lon float64) *Coordinate {
	return &Coordinate{Lat: lat, Lon: lon}
}

var countries = []Target{
	{Code: "AR", Name: "Argentina", Kind: KindCountry, Difficulty: 0.25, capital: coord(-34.60, -58.38),
		Boundary: []Coordinate{{-21.8, -66.3}, {-27.5, -53.6}, {-54.9, -68.3}, {-46.6, -71.7}, {-31.5, -70.2}}},
	{Code: "AU", Name: "Australia", Kind: KindCountry, Difficulty: 0.10, capital: coord(-35.28, 149.13),
		Boundary: []Coordinate{{-11.0, 142.5}, {-28.2, 153.6}, {-39.1, 146.4}, {-34.0, 115.1}, {-19.7, 121.2}}},
	{Code: "BR", Name: "Brazil", Kind: KindCountry, Difficulty: 0.10, capital: coord(-15.79, -47.88),
		Boundary: []Coordinate{{4.4, -60.0}, {-5.2, -35.2}, {-25.5, -48.6}, {-30.2, -57.1}, {-7.3, -73.8}}},
	{Code: "BT", Name: "Bhutan", Kind: KindCountry, Difficulty: 0.80, capital: coord(27.47, 89.64),
		Boundary: []Coordinate{{28.2, 89.1}, {27.8, 91.6}, {26.8, 91.5}, {26.9, 89.0}}},
	{Code: "CA", Name: "Canada", Kind: KindCountry, Difficulty: 0.10, capital: coord(45.42, -75.70),
		Boundary: []Coordinate{{69.5, -128.1}, {62.4, -77.5}, {46.2, -60.0}, {42.3, -83.0}, {49.0, -123.1}, {60.0, -139.0}}},
	{Code: "CD", Name: "Congo (DR)", Kind: KindCountry, Difficulty: 0.55, capital: coord(-4.32, 15.31),
		Boundary: []Coordinate{{5.1, 19.6}, {1.2, 31.2}, {-11.7, 27.5}, {-5.9, 12.4}}},
	{Code: "CH", Name: "Switzerland", Kind: KindCountry, Difficulty: 0.30, capital: coord(46.95, 7.45),
		Boundary: []Coordinate{{47.6, 8.6}, {46.5, 10.4}, {45.9, 8.9}, {46.2, 6.1}}},
	{Code: "CL", Name: "Chile", Kind: KindCountry, Difficulty: 0.30, capital: coord(-33.45, -70.67),
		Boundary: []Coordinate{{-17.6, -69.5}, {-29.9, -70.3}, {-53.6, -70.9}, {-45.4, -73.7}, {-26.3, -70.6}}},
	{Code: "CN", Name: "China", Kind: KindCountry, Difficulty: 0.10, capital: coord(39.90, 116.40),
		Boundary: []Coordinate{{45.2, 124.8}, {31.2, 121.5}, {21.5, 109.8}, {28.2, 85.7}, {43.0, 80.9}, {49.2, 117.7}}},
	{Code: "DE", Name: "Germany", Kind: KindCountry, Difficulty: 0.15, capital: coord(52.52, 13.40),
		Boundary: []Coordinate{{54.8, 9.4}, {52.6, 14.6}, {47.6, 12.9}, {47.6, 7.6}, {51.9, 6.8}}},
	{Code: "EG", Name: "Egypt", Kind: KindCountry, Difficulty: 0.20, capital: coord(30.04, 31.24),
		Boundary: []Coordinate{{31.3, 25.1}, {31.1, 34.2}, {22.0, 36.8}, {22.0, 25.0}}},
	{Code: "ES", Name: "Spain", Kind: KindCountry, Difficulty: 0.15, capital: coord(40.42, -3.70),
		Boundary: []Coordinate{{43.4, -8.0}, {42.4, 3.2}, {36.7, -2.1}, {36.0, -5.6}, {43.0, -9.3}}},
	{Code: "FR", Name: "France", Kind: KindCountry, Difficulty: 0.10, capital: coord(48.86, 2.35),
		Boundary: []Coordinate{{51.0, 2.5}, {48.6, 7.8}, {43.4, 7.5}, {42.6, 1.5}, {43.4, -1.6}, {48.6, -4.6}}},
	{Code: "GB", Name: "United Kingdom", Kind: KindCountry, Difficulty: 0.10, capital: coord(51.51, -0.13),
		Boundary: []Coordinate{{58.6, -3.1}, {52.9, 1.7}, {50.1, -5.6}, {53.4, -4.6}, {56.8, -6.1}}},
	{Code: "GE", Name: "Georgia", Kind: KindCountry, Difficulty: 0.70, capital: coord(41.72, 44.79),
		Boundary: []Coordinate{{43.4, 40.0}, {41.5, 46.6}, {41.1, 44.2}, {41.8, 41.7}}},
	{Code: "GR", Name: "Greece", Kind: KindCountry, Difficulty: 0.25, capital: coord(37.98, 23.73),
		Boundary: []Coordinate{{41.5, 26.3}, {37.9, 23.7}, {35.0, 24.8}, {38.3, 21.1}, {40.2, 20.0}}},
	{Code: "GY", Name: "Guyana", Kind: KindCountry, Difficulty: 0.85, capital: coord(6.80, -58.16),
		Boundary: []Coordinate{{8.4, -59.8}, {5.2, -57.2}, {1.2, -58.9}, {3.9, -61.4}}},
	{Code: "ID", Name: "Indonesia", Kind: KindCountry, Difficulty: 0.30, capital: coord(-6.21, 106.85),
		Boundary: []Coordinate{{5.6, 95.3}, {1.1, 104.1}, {-8.7, 116.1}, {-10.2, 123.6}, {-2.6, 140.7}, {3.6, 125.5}}},
	{Code: "IN", Name: "India", Kind: KindCountry, Difficulty: 0.10, capital: coord(28.61, 77.21),
		Boundary: []Coordinate{{34.0, 74.4}, {27.7, 88.1}, {21.9, 88.9}, {8.1, 77.5}, {23.0, 68.4}, {32.5, 74.5}}},
	{Code: "IT", Name: "Italy", Kind: KindCountry, Difficulty: 0.10, capital: coord(41.90, 12.50),
		Boundary: []Coordinate{{46.6, 12.4}, {44.4, 12.3}, {40.4, 18.5}, {37.9, 15.6}, {40.0, 15.6}, {44.1, 8.2}}},
	{Code: "JP", Name: "Japan", Kind: KindCountry, Difficulty: 0.10, capital: coord(35.68, 139.69),
		Boundary: []Coordinate{{45.4, 141.9}, {38.3, 141.0}, {33.4, 135.8}, {31.0, 130.7}, {37.5, 137.4}, {43.4, 140.4}}},
	{Code: "KE", Name: "Kenya", Kind: KindCountry, Difficulty: 0.35, capital: coord(-1.29, 36.82),
		Boundary: []Coordinate{{4.6, 35.9}, {3.9, 41.9}, {-4.7, 39.2}, {-1.0, 34.0}}},
	{Code: "KG", Name: "Kyrgyzstan", Kind: KindCountry, Difficulty: 0.90, capital: coord(42.87, 74.59),
		Boundary: []Coordinate{{43.2, 70.9}, {42.2, 80.2}, {39.4, 73.6}, {41.4, 69.3}}},
	{Code: "KZ", Name: "Kazakhstan", Kind: KindCountry, Difficulty: 0.40, capital: coord(51.17, 71.45),
		Boundary: []Coordinate{{54.2, 69.1}, {48.4, 85.8}, {42.3, 70.0}, {41.2, 52.4}, {46.5, 48.5}, {51.3, 50.8}}},
	{Code: "LA", Name: "Laos", Kind: KindCountry, Difficulty: 0.65, capital: coord(17.98, 102.63),
		Boundary: []Coordinate{{22.5, 102.1}, {20.4, 104.6}, {14.0, 105.8}, {15.5, 106.6}, {17.6, 101.2}}},
	{Code: "LS", Name: "Lesotho", Kind: KindCountry, Difficulty: 0.85, capital: coord(-29.31, 27.48),
		Boundary: []Coordinate{{-28.6, 28.6}, {-30.2, 29.3}, {-30.6, 27.4}, {-29.0, 27.0}}},
	{Code: "MG", Name: "Madagascar", Kind: KindCountry, Difficulty: 0.35, capital: coord(-18.88, 47.51),
		Boundary: []Coordinate{{-12.0, 49.3}, {-18.1, 49.4}, {-25.6, 45.2}, {-22.4, 43.3}, {-15.7, 46.3}}},
	{Code: "MN", Name: "Mongolia", Kind: KindCountry, Difficulty: 0.45, capital: coord(47.89, 106.91),
		Boundary: []Coordinate{{50.1, 91.6}, {49.9, 115.5}, {43.6, 111.9}, {43.2, 96.4}, {47.9, 89.9}}},
	{Code: "MX", Name: "Mexico", Kind: KindCountry, Difficulty: 0.15, capital: coord(19.43, -99.13),
		Boundary: []Coordinate{{32.5, -117.1}, {25.9, -97.1}, {18.5, -88.3}, {14.5, -92.2}, {20.7, -105.3}, {28.0, -114.0}}},
	{Code: "NA", Name: "Namibia", Kind: KindCountry, Difficulty: 0.55, capital: coord(-22.56, 17.08),
		Boundary: []Coordinate{{-17.4, 24.3}, {-28.1, 19.0}, {-28.6, 16.4}, {-18.9, 11.8}}},
	{Code: "NO", Name: "Norway", Kind: KindCountry, Difficulty: 0.25, capital: coord(59.91, 10.75),
		Boundary: []Coordinate{{71.0, 25.8}, {69.0, 30.0}, {58.0, 7.5}, {61.9, 5.0}, {67.3, 14.4}}},
	{Code: "NP", Name: "Nepal", Kind: KindCountry, Difficulty: 0.60, capital: coord(27.72, 85.32),
		Boundary: []Coordinate{{30.2, 81.0}, {27.9, 88.1}, {26.4, 87.1}, {28.8, 80.1}}},
	{Code: "NZ", Name: "New Zealand", Kind: KindCountry, Difficulty: 0.20, capital: coord(-41.29, 174.78),
		Boundary: []Coordinate{{-34.4, 172.7}, {-39.2, 177.9}, {-46.6, 168.3}, {-43.9, 169.0}, {-38.9, 174.2}}},
	{Code: "PE", Name: "Peru", Kind: KindCountry, Difficulty: 0.30, capital: coord(-12.05, -77.04),
		Boundary: []Coordinate{{-0.2, -75.2}, {-9.4, -70.5}, {-18.3, -70.3}, {-14.8, -75.9}, {-5.0, -81.2}}},
	{Code: "PG", Name: "Papua New Guinea", Kind: KindCountry, Difficulty: 0.70, capital: coord(-9.44, 147.18),
		Boundary: []Coordinate{{-2.6, 141.0}, {-5.5, 151.5}, {-10.6, 150.7}, {-9.1, 141.0}}},
	{Code: "PL", Name: "Poland", Kind: KindCountry, Difficulty: 0.25, capital: coord(52.23, 21.01),
		Boundary: []Coordinate{{54.8, 18.6}, {52.1, 23.6}, {49.2, 22.7}, {50.3, 14.8}, {53.9, 14.2}}},
	{Code: "PY", Name: "Paraguay", Kind: KindCountry, Difficulty: 0.75, capital: coord(-25.28, -57.63),
		Boundary: []Coordinate{{-19.3, -59.1}, {-23.9, -54.3}, {-27.4, -56.4}, {-22.1, -62.6}}},
	{Code: "TD", Name: "Chad", Kind: KindCountry, Difficulty: 0.70, capital: coord(12.13, 15.06),
		Boundary: []Coordinate{{23.0, 16.0}, {13.5, 23.0}, {7.5, 15.4}, {13.1, 13.5}}},
	{Code: "TH", Name: "Thailand", Kind: KindCountry, Difficulty: 0.25, capital: coord(13.76, 100.50),
		Boundary: []Coordinate{{20.4, 100.1}, {16.0, 105.6}, {6.1, 101.8}, {8.4, 98.3}, {15.1, 98.2}}},
	{Code: "TR", Name: "Turkey", Kind: KindCountry, Difficulty: 0.25, capital: coord(39.93, 32.86),
		Boundary: []Coordinate{{42.0, 27.0}, {41.1, 42.9}, {36.9, 44.3}, {36.1, 30.1}, {40.1, 26.2}}},
	{Code: "US", Name: "United States", Kind: KindCountry, Difficulty: 0.05, capital: coord(38.90, -77.04),
		Boundary: []Coordinate{{48.9, -122.8}, {47.5, -69.2}, {25.1, -80.4}, {29.5, -94.7}, {32.7, -117.2}}},
	{Code: "UY", Name: "Uruguay", Kind: KindCountry, Difficulty: 0.60, capital: coord(-34.90, -56.16),
		Boundary: []Coordinate{{-30.2, -57.6}, {-32.8, -53.4}, {-34.9, -54.9}, {-33.7, -58.4}}},
	{Code: "VN", Name: "Vietnam", Kind: KindCountry, Difficulty: 0.30, capital: coord(21.03, 105.85),
		Boundary: []Coordinate{{23.3, 105.3}, {20.8, 106.8}, {10.4, 107.0}, {8.6, 104.8}, {16.1, 107.9}}},
	{Code: "XK", Name: "Kosovo", Kind: KindCountry, Difficulty: 0.90, capital: coord(42.66, 21.17),
		Boundary: []Coordinate{{43.2, 20.8}, {42.6, 21.8}, {42.2, 20.8}, {42.7, 20.2}}},
	{Code: "XS", Name: "Somaliland", Kind: KindCountry, Difficulty: 0.95,
		Boundary: []Coordinate{{11.5, 43.5}, {10.4, 48.9}, {8.0, 48.1}, {9.4, 43.2}}},
	{Code: "ZA", Name: "South Africa", Kind: KindCountry, Difficulty: 0.15, capital: coord(-25.75, 28.19),
		Boundary: []Coordinate{{-22.3, 29.9}, {-28.6, 32.4}, {-34.8, 19.9}, {-28.3, 16.5}}},
}

// capitalNames backs the capital clue type. Targets missing from this
// map (or from the capital coordinate field) never produce capital
// clues and fall back to the boundary centroid for target position.
var capitalNames = map[string]string{
	"AR": "Buenos Aires", "AU": "Canberra", "BR": "Brasilia", "BT": "Thimphu",
	"CA": "Ottawa", "CD": "Kinshasa", "CH": "Bern", "CL": "Santiago",
	"CN": "Beijing", "DE": "Berlin", "EG": "Cairo", "ES": "Madrid",
	"FR": "Paris", "GB": "London", "GE": "Tbilisi", "GR": "Athens",
	"GY": "Georgetown", "ID": "Jakarta", "IN": "New Delhi", "IT": "Rome",
	"JP": "Tokyo", "KE": "Nairobi", "KG": "Bishkek", "KZ": "Astana",
	"LA": "Vientiane", "LS": "Maseru", "MG": "Antananarivo", "MN": "Ulaanbaatar",
	"MX": "Mexico City", "NA": "Windhoek", "NO": "Oslo", "NP": "Kathmandu",
	"NZ": "Wellington", "PE": "Lima", "PG": "Port Moresby", "PL": "Warsaw",
	"PY": "Asuncion", "TD": "N'Djamena", "TH": "Bangkok", "TR": "Ankara",
	"US": "Washington, D.C.", "UY": "Montevideo", "VN": "Hanoi", "XK": "Pristina",
	"ZA": "Pretoria",
}

// trivia backs the trivia clue type. Intentionally sparse; not every
// country has a usable one-liner.
var trivia = map[string]string{
	"AU": "The only country that is also a continent",
	"BR": "Home to the largest rainforest on Earth",
	"BT": "Measures gross national happiness",
	"CH": "Has four national languages",
	"CL": "Over 4,000 km long but rarely 200 km wide",
	"EG": "The longest river in the world reaches the sea here",
	"GY": "The only English-speaking country in South America",
	"ID": "An archipelago of more than seventeen thousand islands",
	"JP": "Known as the Land of the Rising Sun",
	"KZ": "The largest landlocked country in the world",
	"LS": "Entirely surrounded by a single neighbor",
	"MG": "Most of its wildlife exists nowhere else",
	"MN": "The most sparsely populated sovereign country",
	"NO": "The midnight sun shines here in summer",
	"NP": "Contains the highest point on Earth",
	"NZ": "Has more sheep than people",
	"PG": "More languages are spoken here than anywhere else",
	"PY": "One of only two landlocked countries in South America",
	"UY": "The smallest Spanish-speaking country in South America",
}
