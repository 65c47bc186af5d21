package domain

func obs(basin Basin, year int, wind float64, cat Category) Observation {
	return Observation{Basin: basin, Year: year, Wind: wind, Category: cat}
}

// eastFixture and westFixture are small hand-checked datasets.
//
//	east hurricanes: h1, h2, h2, h3, h4 (one ts dropped)
//	east winds > 73: pre-1950 {80, 100}, modern {100, 120, 140}
//	west hurricanes: h1, h1, h5 (one ts dropped)
//	west winds > 73: pre-1950 {75}, modern {85, 165}
func eastFixture() []Observation {
	return []Observation{
		obs(BasinEast, 1900, 80, CategoryH1),
		obs(BasinEast, 1920, 100, CategoryH2),
		obs(BasinEast, 1930, 60, CategoryTropicalStorm),
		obs(BasinEast, 1960, 120, CategoryH3),
		obs(BasinEast, 1980, 140, CategoryH4),
		obs(BasinEast, 2000, 100, CategoryH2),
	}
}

func westFixture() []Observation {
	return []Observation{
		obs(BasinWest, 1890, 75, CategoryH1),
		obs(BasinWest, 1945, 60, CategoryTropicalStorm),
		obs(BasinWest, 1955, 165, CategoryH5),
		obs(BasinWest, 1970, 85, CategoryH1),
	}
}
