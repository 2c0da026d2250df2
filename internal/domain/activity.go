package domain

type ActivityType string

const (
	ActivityTypeAdventure     ActivityType = "adventure"
	ActivityTypeCultural      ActivityType = "cultural"
	ActivityTypeFood          ActivityType = "food"
	ActivityTypeNature        ActivityType = "nature"
	ActivityTypeEntertainment ActivityType = "entertainment"
)

var ActivityTypes = []ActivityType{
	ActivityTypeAdventure,
	ActivityTypeCultural,
	ActivityTypeFood,
	ActivityTypeNature,
	ActivityTypeEntertainment,
}

func (t ActivityType) Valid() bool {
	for _, known := range ActivityTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ActivityDifficulty string

const (
	ActivityDifficultyEasy        ActivityDifficulty = "easy"
	ActivityDifficultyModerate    ActivityDifficulty = "moderate"
	ActivityDifficultyChallenging ActivityDifficulty = "challenging"
)

var ActivityDifficulties = []ActivityDifficulty{
	ActivityDifficultyEasy,
	ActivityDifficultyModerate,
	ActivityDifficultyChallenging,
}

func (d ActivityDifficulty) Valid() bool {
	for _, known := range ActivityDifficulties {
		if d == known {
			return true
		}
	}
	return false
}

type Activity struct {
	ID           string             `db:"id" json:"id"`
	Name         string             `db:"name" json:"name"`
	Description  string             `db:"description" json:"description"`
	Type         ActivityType       `db:"type" json:"type"`
	Location     string             `db:"location" json:"location"`
	Duration     string             `db:"duration" json:"duration"`
	Difficulty   ActivityDifficulty `db:"difficulty" json:"difficulty"`
	Price        int64              `db:"price" json:"price"`
	Images       []string           `db:"-" json:"images"`
	Rating       float64            `db:"rating" json:"rating"`
	ReviewCount  int                `db:"review_count" json:"reviewCount"`
	Includes     []string           `db:"-" json:"includes"`
	Requirements []string           `db:"-" json:"requirements"`
}
