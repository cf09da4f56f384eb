package anilist

// Raw wire types for AniList GraphQL responses. Every field is optional on
// the wire; defaulting into domain values happens in one place
// (services.mediaToAnime), not here.

// MediaTitle carries the title variants AniList exposes for a media entry.
type MediaTitle struct {
	Romaji  string `json:"romaji"`
	English string `json:"english"`
	Native  string `json:"native"`
}

// CoverImage carries the cover art URLs by resolution.
type CoverImage struct {
	ExtraLarge string `json:"extraLarge"`
	Large      string `json:"large"`
	Medium     string `json:"medium"`
}

// StudioNode is a single studio entry inside the studios connection.
type StudioNode struct {
	Name string `json:"name"`
}

// FuzzyDate is AniList's partial date (any component may be zero).
type FuzzyDate struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Media is a raw catalog record as returned by AniList. averageScore is on
// AniList's 0–100 scale.
type Media struct {
	ID          int        `json:"id"`
	Title       MediaTitle `json:"title"`
	CoverImage  CoverImage `json:"coverImage"`
	BannerImage string     `json:"bannerImage"`
	Description string     `json:"description"`
	Genres      []string   `json:"genres"`
	Popularity  int        `json:"popularity"`
	Status      string     `json:"status"`
	Episodes    int        `json:"episodes"`
	Duration    int        `json:"duration"`
	Season      string     `json:"season"`
	SeasonYear  int        `json:"seasonYear"`
	Studios     struct {
		Nodes []StudioNode `json:"nodes"`
	} `json:"studios"`
	AverageScore int       `json:"averageScore"`
	MeanScore    int       `json:"meanScore"`
	Source       string    `json:"source"`
	Format       string    `json:"format"`
	StartDate    FuzzyDate `json:"startDate"`
	EndDate      FuzzyDate `json:"endDate"`
}

// PageInfo is AniList's pagination envelope.
type PageInfo struct {
	Total       int  `json:"total"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	HasNextPage bool `json:"hasNextPage"`
	PerPage     int  `json:"perPage"`
}

// page is the paginated wrapper around media lists.
type page struct {
	PageInfo PageInfo `json:"pageInfo"`
	Media    []Media  `json:"media"`
}

// ensureMedia coerces a missing or null media list to an empty slice so
// list-returning calls never surface nil to callers.
func ensureMedia(ms []Media) []Media {
	if ms == nil {
		return []Media{}
	}
	return ms
}
