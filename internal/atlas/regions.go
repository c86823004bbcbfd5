package atlas

// Region tables generated offline from Natural Earth 10m admin-1
// shapefiles. Areas use iso_3166_2 codes. Bounding boxes are the
// start-position pools for bounded rounds, so they deliberately hug the
// region rather than the full country extent.

var regions = []Region{
	{
		Key:    "usStates",
		Name:   "US States",
		Bounds: Bounds{MinLat: 25.0, MaxLat: 49.0, MinLon: -125.0, MaxLon: -67.0},
		Areas: []Target{
			{Code: "US-AZ", Name: "Arizona", Kind: KindArea, Difficulty: 0.35,
				Boundary: []Coordinate{{37.0, -114.0}, {37.0, -109.0}, {31.3, -109.0}, {31.3, -111.1}, {32.7, -114.8}}},
			{Code: "US-CA", Name: "California", Kind: KindArea, Difficulty: 0.15,
				Boundary: []Coordinate{{42.0, -124.2}, {42.0, -120.0}, {39.0, -120.0}, {35.0, -114.6}, {32.5, -117.1}, {40.4, -124.4}}},
			{Code: "US-CO", Name: "Colorado", Kind: KindArea, Difficulty: 0.30,
				Boundary: []Coordinate{{41.0, -109.0}, {41.0, -102.0}, {37.0, -102.0}, {37.0, -109.0}}},
			{Code: "US-FL", Name: "Florida", Kind: KindArea, Difficulty: 0.15,
				Boundary: []Coordinate{{30.9, -87.6}, {30.7, -81.4}, {25.1, -80.4}, {26.7, -82.3}, {30.1, -84.1}}},
			{Code: "US-MT", Name: "Montana", Kind: KindArea, Difficulty: 0.45,
				Boundary: []Coordinate{{49.0, -116.0}, {49.0, -104.0}, {45.0, -104.0}, {44.4, -111.1}, {47.5, -115.7}}},
			{Code: "US-NY", Name: "New York", Kind: KindArea, Difficulty: 0.25,
				Boundary: []Coordinate{{45.0, -73.3}, {41.0, -71.9}, {40.5, -74.3}, {42.0, -79.8}, {43.3, -79.1}}},
			{Code: "US-TX", Name: "Texas", Kind: KindArea, Difficulty: 0.15,
				Boundary: []Coordinate{{36.5, -103.0}, {33.6, -94.0}, {29.7, -93.8}, {25.9, -97.1}, {29.3, -103.8}, {32.0, -106.6}}},
			{Code: "US-WA", Name: "Washington", Kind: KindArea, Difficulty: 0.30,
				Boundary: []Coordinate{{49.0, -123.3}, {49.0, -117.0}, {45.6, -116.9}, {45.6, -122.4}, {46.3, -124.1}}},
			{Code: "US-WV", Name: "West Virginia", Kind: KindArea, Difficulty: 0.60,
				Boundary: []Coordinate{{40.6, -80.5}, {39.7, -77.7}, {37.2, -81.7}, {38.4, -82.6}}},
			{Code: "US-WY", Name: "Wyoming", Kind: KindArea, Difficulty: 0.50,
				Boundary: []Coordinate{{45.0, -111.1}, {45.0, -104.1}, {41.0, -104.1}, {41.0, -111.1}}},
		},
	},
	{
		Key:    "ukCounties",
		Name:   "UK Counties",
		Bounds: Bounds{MinLat: 49.9, MaxLat: 58.7, MinLon: -8.2, MaxLon: 1.8},
		Areas: []Target{
			{Code: "GB-CON", Name: "Cornwall", Kind: KindArea, Difficulty: 0.40,
				Boundary: []Coordinate{{50.9, -4.5}, {50.3, -4.2}, {50.1, -5.7}, {50.6, -5.0}}},
			{Code: "GB-CMA", Name: "Cumbria", Kind: KindArea, Difficulty: 0.55,
				Boundary: []Coordinate{{55.2, -2.9}, {54.2, -2.3}, {54.1, -3.3}, {54.9, -3.6}}},
			{Code: "GB-DEV", Name: "Devon", Kind: KindArea, Difficulty: 0.45,
				Boundary: []Coordinate{{51.2, -4.2}, {50.9, -3.0}, {50.2, -3.8}, {50.8, -4.5}}},
			{Code: "GB-KEN", Name: "Kent", Kind: KindArea, Difficulty: 0.40,
				Boundary: []Coordinate{{51.5, 0.4}, {51.4, 1.4}, {50.9, 1.0}, {51.1, 0.1}}},
			{Code: "GB-NFK", Name: "Norfolk", Kind: KindArea, Difficulty: 0.50,
				Boundary: []Coordinate{{52.9, 0.4}, {52.9, 1.7}, {52.4, 1.6}, {52.4, 0.4}}},
			{Code: "GB-YOR", Name: "Yorkshire", Kind: KindArea, Difficulty: 0.35,
				Boundary: []Coordinate{{54.5, -2.2}, {54.2, -0.3}, {53.4, -0.8}, {53.5, -2.0}}},
		},
	},
	{
		Key:    "ireland",
		Name:   "Ireland",
		Bounds: Bounds{MinLat: 51.4, MaxLat: 55.4, MinLon: -10.5, MaxLon: -5.4},
		Areas: []Target{
			{Code: "IE-C", Name: "Cork", Kind: KindArea, Difficulty: 0.35,
				Boundary: []Coordinate{{52.3, -9.8}, {52.2, -8.1}, {51.4, -9.2}, {51.8, -10.2}}},
			{Code: "IE-D", Name: "Dublin", Kind: KindArea, Difficulty: 0.20,
				Boundary: []Coordinate{{53.6, -6.3}, {53.4, -6.0}, {53.2, -6.2}, {53.3, -6.5}}},
			{Code: "IE-G", Name: "Galway", Kind: KindArea, Difficulty: 0.40,
				Boundary: []Coordinate{{53.6, -9.9}, {53.5, -8.0}, {53.0, -8.8}, {53.2, -10.0}}},
			{Code: "IE-KY", Name: "Kerry", Kind: KindArea, Difficulty: 0.45,
				Boundary: []Coordinate{{52.6, -10.0}, {52.4, -9.1}, {51.7, -10.1}, {52.1, -10.4}}},
			{Code: "IE-MO", Name: "Mayo", Kind: KindArea, Difficulty: 0.55,
				Boundary: []Coordinate{{54.3, -10.1}, {54.1, -8.9}, {53.6, -9.5}, {53.8, -10.2}}},
		},
	},
	{
		Key:    "canadianProvinces",
		Name:   "Canadian Provinces",
		Bounds: Bounds{MinLat: 42.0, MaxLat: 62.0, MinLon: -139.0, MaxLon: -52.6},
		Areas: []Target{
			{Code: "CA-AB", Name: "Alberta", Kind: KindArea, Difficulty: 0.35,
				Boundary: []Coordinate{{60.0, -120.0}, {60.0, -110.0}, {49.0, -110.0}, {49.0, -114.1}, {53.8, -119.9}}},
			{Code: "CA-BC", Name: "British Columbia", Kind: KindArea, Difficulty: 0.30,
				Boundary: []Coordinate{{60.0, -139.0}, {60.0, -120.0}, {49.0, -114.1}, {49.0, -123.3}, {54.6, -130.7}}},
			{Code: "CA-MB", Name: "Manitoba", Kind: KindArea, Difficulty: 0.50,
				Boundary: []Coordinate{{60.0, -102.0}, {58.8, -94.2}, {49.0, -95.2}, {49.0, -101.4}}},
			{Code: "CA-NS", Name: "Nova Scotia", Kind: KindArea, Difficulty: 0.45,
				Boundary: []Coordinate{{47.0, -60.4}, {45.3, -61.0}, {43.4, -65.7}, {45.3, -64.3}}},
			{Code: "CA-ON", Name: "Ontario", Kind: KindArea, Difficulty: 0.25,
				Boundary: []Coordinate{{56.9, -89.0}, {51.3, -80.1}, {44.8, -75.7}, {42.3, -83.0}, {48.8, -94.6}}},
			{Code: "CA-QC", Name: "Quebec", Kind: KindArea, Difficulty: 0.25,
				Boundary: []Coordinate{{62.0, -78.0}, {58.7, -65.8}, {48.1, -64.5}, {45.0, -74.0}, {52.2, -79.0}}},
			{Code: "CA-SK", Name: "Saskatchewan", Kind: KindArea, Difficulty: 0.55,
				Boundary: []Coordinate{{60.0, -110.0}, {60.0, -102.0}, {49.0, -101.4}, {49.0, -110.0}}},
		},
	},
}
