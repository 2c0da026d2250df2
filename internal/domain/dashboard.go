package domain

type CategoryCount struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TotalDestinations   int             `json:"totalDestinations"`
	TotalAccommodations int             `json:"totalAccommodations"`
	TotalActivities     int             `json:"totalActivities"`
	AverageRating       float64         `json:"averageRating"`
	FeaturedCount       int             `json:"featuredCount"`
	Categories          []CategoryCount `json:"categories"`
	TopDestinations     []Destination   `json:"topDestinations"`
}
