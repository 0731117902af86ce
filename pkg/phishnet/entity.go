package phishnet

// Raw Phish.net v5 records. Field sets follow what the API actually returns;
// numeric IDs may come back null and decode to zero.

type Show struct {
	ShowID       int64  `json:"showid"`
	ShowDate     string `json:"showdate"`
	ShowYear     string `json:"showyear"`
	VenueID      int64  `json:"venueid"`
	Venue        string `json:"venue"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	Artist       string `json:"artist"`
	TourName     string `json:"tour_name"`
	Rating       string `json:"rating"`
	ReviewsCount int    `json:"reviews_count"`
}

type Venue struct {
	VenueID   int64  `json:"venueid"`
	VenueName string `json:"venuename"`
	City      string `json:"city"`
	State     string `json:"state"`
	Country   string `json:"country"`
	PastShows int    `json:"past_shows"`
}

type Song struct {
	SongID      int64  `json:"songid"`
	Song        string `json:"song"`
	Slug        string `json:"slug"`
	Debut       string `json:"debut"`
	TimesPlayed int    `json:"times_played"`
	LastPlayed  string `json:"last_played"`
	Gap         int    `json:"gap"`
}

// SetlistSong is one song slot within a show's setlist.
type SetlistSong struct {
	SongID   int64  `json:"songid"`
	Set      string `json:"set"`
	Position int    `json:"position"`
	Footnote string `json:"footnote"`
}
