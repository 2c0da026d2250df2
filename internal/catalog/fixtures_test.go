package catalog

import "github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"

func sampleDestinations() []domain.Destination {
	return []domain.Destination{
		{ID: "1", Name: "El Nido, Palawan", Location: "El Nido, Palawan", Region: "MIMAROPA", Category: domain.DestinationCategoryBeach, Rating: 4.8, ReviewCount: 2547, Featured: true,
			Description: "A stunning tropical paradise featuring pristine beaches, crystal-clear waters, dramatic limestone cliffs, and hidden lagoons."},
		{ID: "2", Name: "Boracay", Location: "Malay, Aklan", Region: "Western Visayas", Category: domain.DestinationCategoryBeach, Rating: 4.7, ReviewCount: 4821, Featured: true,
			Description: "World-famous for its powdery white sand beaches, vibrant nightlife, and crystal-clear waters."},
		{ID: "3", Name: "Banaue Rice Terraces", Location: "Banaue, Ifugao", Region: "Cordillera Administrative Region", Category: domain.DestinationCategoryCultural, Rating: 4.9, ReviewCount: 1876, Featured: true,
			Description: "Ancient rice terraces carved into the mountains."},
		{ID: "4", Name: "Chocolate Hills", Location: "Carmen, Bohol", Region: "Central Visayas", Category: domain.DestinationCategoryNatural, Rating: 4.6, ReviewCount: 3245, Featured: true,
			Description: "Over 1,200 cone-shaped hills that turn chocolate brown during dry season."},
		{ID: "5", Name: "Intramuros", Location: "Manila", Region: "National Capital Region", Category: domain.DestinationCategoryHistorical, Rating: 4.4, ReviewCount: 2156, Featured: false,
			Description: "Historic walled city in Manila featuring Spanish colonial architecture."},
		{ID: "6", Name: "Mayon Volcano", Location: "Albay", Region: "Bicol Region", Category: domain.DestinationCategoryMountain, Rating: 4.7, ReviewCount: 1654, Featured: true,
			Description: "Perfect cone-shaped active volcano known for its near-perfect symmetry."},
	}
}

func sampleAccommodations() []domain.Accommodation {
	return []domain.Accommodation{
		{ID: "1", Name: "El Nido Resorts Pangulasian Island", Type: domain.AccommodationTypeResort, Location: "Bacuit Bay, El Nido, Palawan", Rating: 4.9, ReviewCount: 856, PriceRange: domain.PriceRange{Min: 25000, Max: 45000}},
		{ID: "2", Name: "Shangri-La Boracay", Type: domain.AccommodationTypeResort, Location: "Boracay Island, Aklan", Rating: 4.8, ReviewCount: 2341, PriceRange: domain.PriceRange{Min: 15000, Max: 35000}},
		{ID: "3", Name: "Spin Hostel", Type: domain.AccommodationTypeHostel, Location: "El Nido, Palawan", Rating: 4.5, ReviewCount: 412, PriceRange: domain.PriceRange{Min: 800, Max: 2500}},
		{ID: "4", Name: "Casa Vallejo", Type: domain.AccommodationTypeHotel, Location: "Baguio City", Rating: 4.6, ReviewCount: 970, PriceRange: domain.PriceRange{Min: 5000, Max: 9000}},
		{ID: "5", Name: "Lola's Guesthouse", Type: domain.AccommodationTypeGuesthouse, Location: "Vigan, Ilocos Sur", Rating: 4.6, ReviewCount: 120, PriceRange: domain.PriceRange{Min: 4999, Max: 6000}},
		{ID: "6", Name: "Amorita Villa", Type: domain.AccommodationTypeVilla, Location: "Panglao, Bohol", Rating: 4.7, ReviewCount: 530, PriceRange: domain.PriceRange{Min: 14999, Max: 22000}},
	}
}

func sampleActivities() []domain.Activity {
	return []domain.Activity{
		{ID: "1", Name: "Island Hopping Tour A", Type: domain.ActivityTypeAdventure, Location: "El Nido, Palawan", Difficulty: domain.ActivityDifficultyEasy, Price: 1400, Rating: 4.7, ReviewCount: 1234},
		{ID: "2", Name: "Tarsier Sanctuary Visit", Type: domain.ActivityTypeNature, Location: "Corella, Bohol", Difficulty: domain.ActivityDifficultyEasy, Price: 300, Rating: 4.5, ReviewCount: 876},
		{ID: "3", Name: "Bohol Countryside Tour", Type: domain.ActivityTypeCultural, Location: "Bohol", Difficulty: domain.ActivityDifficultyEasy, Price: 2500, Rating: 4.6, ReviewCount: 543},
		{ID: "4", Name: "Siargao Surfing Lessons", Type: domain.ActivityTypeAdventure, Location: "Siargao", Difficulty: domain.ActivityDifficultyModerate, Price: 1800, Rating: 4.8, ReviewCount: 324},
		{ID: "5", Name: "Baguio Food Tour", Type: domain.ActivityTypeFood, Location: "Baguio City", Difficulty: domain.ActivityDifficultyEasy, Price: 1200, Rating: 4.5, ReviewCount: 287},
		{ID: "6", Name: "Intramuros Walking Tour", Type: domain.ActivityTypeCultural, Location: "Manila", Difficulty: domain.ActivityDifficultyEasy, Price: 0, Rating: 4.3, ReviewCount: 95},
		{ID: "7", Name: "Mt. Pulag Summit Trek", Type: domain.ActivityTypeAdventure, Location: "Benguet", Difficulty: domain.ActivityDifficultyChallenging, Price: 3000, Rating: 4.9, ReviewCount: 210},
		{ID: "8", Name: "Manila Bay Sunset Cruise", Type: domain.ActivityTypeEntertainment, Location: "Manila", Difficulty: domain.ActivityDifficultyEasy, Price: 999, Rating: 4.2, ReviewCount: 150},
	}
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func destIDs(items []domain.Destination) []string {
	return ids(items, func(d domain.Destination) string { return d.ID })
}

func destNames(items []domain.Destination) []string {
	return ids(items, func(d domain.Destination) string { return d.Name })
}
