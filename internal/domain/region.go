package domain

// Region is an island group. Members lists the destination region strings
// (e.g. "Western Visayas") that fall inside it.
type Region struct {
	ID                  string   `db:"id" json:"id"`
	Name                string   `db:"name" json:"name"`
	Description         string   `db:"description" json:"description"`
	Image               string   `db:"image" json:"image"`
	Provinces           []string `db:"-" json:"provinces"`
	PopularDestinations []string `db:"-" json:"popularDestinations"`
	Members             []string `db:"-" json:"members"`
}
