package constvars

// PsychologistSort is the sort key accepted by the psychologist listing.
type PsychologistSort string

const (
	PsychologistSortRecommended PsychologistSort = "recommended"
	PsychologistSortRating      PsychologistSort = "rating"
	PsychologistSortExperience  PsychologistSort = "experience"
	PsychologistSortPriceLow    PsychologistSort = "price_low"
	PsychologistSortPriceHigh   PsychologistSort = "price_high"
)

func (s PsychologistSort) IsValid() bool {
	switch s {
	case PsychologistSortRecommended, PsychologistSortRating, PsychologistSortExperience,
		PsychologistSortPriceLow, PsychologistSortPriceHigh:
		return true
	}
	return false
}

// SortOrder is a generic ascending/descending direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

func (o SortOrder) IsValid() bool {
	return o == SortOrderAsc || o == SortOrderDesc
}

// TrendInterval is the aggregation granularity of admin analytics trends.
type TrendInterval string

const (
	TrendIntervalDay   TrendInterval = "day"
	TrendIntervalMonth TrendInterval = "month"
	TrendIntervalYear  TrendInterval = "year"
)

func (i TrendInterval) IsValid() bool {
	switch i {
	case TrendIntervalDay, TrendIntervalMonth, TrendIntervalYear:
		return true
	}
	return false
}

// Gender as exposed by the psychologist filter.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}
