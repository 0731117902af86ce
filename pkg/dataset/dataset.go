package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/couchtour/phishstats/pkg/phishnet"
)

// Flat records as they land in the workbook.

type ShowRecord struct {
	ShowID      int64
	ShowDate    string
	Year        int
	VenueID     int64
	VenueName   string
	City        string
	State       string
	Country     string
	Artist      string
	TourName    string
	Rating      string
	ReviewCount int
	Era         string
}

type VenueRecord struct {
	VenueID        int64
	VenueName      string
	City           string
	State          string
	Country        string
	PastShowsCount int
}

type SongRecord struct {
	SongID      int64
	SongName    string
	Slug        string
	Debut       string
	TimesPlayed int
	LastPlayed  string
	Gap         int
}

type SetlistRecord struct {
	SetlistID    int
	ShowID       int64
	ShowDate     string
	SongID       int64
	SetNumber    string
	SongPosition int
	SongNotes    string
}

// ShowSetlist pairs a show with the raw setlist slots fetched for it.
type ShowSetlist struct {
	ShowID   int64
	ShowDate string
	Songs    []phishnet.SetlistSong
}

// Summary frames.

type EraSummary struct {
	Era             string
	TotalShows      int
	StartYear       int
	EndYear         int
	AvgShowsPerYear float64
}

type StateSummary struct {
	State        string
	TotalShows   int
	UniqueVenues int
}

type YearCount struct {
	Year      int
	ShowCount int
}

type Metadata struct {
	DataSource          string
	FetchDate           string
	TotalShows          int
	TotalVenues         int
	TotalSongs          int
	TotalSetlistRecords int
	YearRange           string
}

// Dataset is everything the exporter turns into workbook sheets.
type Dataset struct {
	Shows    []ShowRecord
	Venues   []VenueRecord
	Songs    []SongRecord
	Setlists []SetlistRecord
	Eras     []EraSummary
	States   []StateSummary
	Years    []YearCount
	TopSongs []SongRecord
	Meta     Metadata
}

// Build reshapes raw API records into the workbook frames.
func Build(shows []phishnet.Show, venues []phishnet.Venue, songs []phishnet.Song, setlists []ShowSetlist, now time.Time) Dataset {
	showRecs := BuildShows(shows)
	songRecs := BuildSongs(songs)
	setlistRecs := BuildSetlists(setlists)

	ds := Dataset{
		Shows:    showRecs,
		Venues:   BuildVenues(venues),
		Songs:    songRecs,
		Setlists: setlistRecs,
		Eras:     SummarizeEras(showRecs),
		States:   SummarizeStates(showRecs),
		Years:    SummarizeYears(showRecs),
		TopSongs: TopSongs(songRecs, 50),
	}
	ds.Meta = Metadata{
		DataSource:          "Phish.net API v5",
		FetchDate:           now.Format("2006-01-02 15:04:05"),
		TotalShows:          len(ds.Shows),
		TotalVenues:         len(ds.Venues),
		TotalSongs:          len(ds.Songs),
		TotalSetlistRecords: len(ds.Setlists),
		YearRange:           yearRange(showRecs),
	}
	return ds
}

// BuildShows flattens raw shows, derives the era and defaults the artist.
func BuildShows(shows []phishnet.Show) []ShowRecord {
	out := make([]ShowRecord, 0, len(shows))
	for _, s := range shows {
		year, _ := strconv.Atoi(s.ShowYear)
		artist := s.Artist
		if artist == "" {
			artist = "Phish"
		}
		out = append(out, ShowRecord{
			ShowID:      s.ShowID,
			ShowDate:    s.ShowDate,
			Year:        year,
			VenueID:     s.VenueID,
			VenueName:   s.Venue,
			City:        s.City,
			State:       s.State,
			Country:     s.Country,
			Artist:      artist,
			TourName:    s.TourName,
			Rating:      s.Rating,
			ReviewCount: s.ReviewsCount,
			Era:         EraForYear(year),
		})
	}
	return out
}

func BuildVenues(venues []phishnet.Venue) []VenueRecord {
	out := make([]VenueRecord, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueRecord{
			VenueID:        v.VenueID,
			VenueName:      v.VenueName,
			City:           v.City,
			State:          v.State,
			Country:        v.Country,
			PastShowsCount: v.PastShows,
		})
	}
	return out
}

// BuildSongs drops duplicate song IDs, keeping the first occurrence.
func BuildSongs(songs []phishnet.Song) []SongRecord {
	seen := make(map[int64]bool, len(songs))
	out := make([]SongRecord, 0, len(songs))
	for _, s := range songs {
		if seen[s.SongID] {
			continue
		}
		seen[s.SongID] = true
		out = append(out, SongRecord{
			SongID:      s.SongID,
			SongName:    s.Song,
			Slug:        s.Slug,
			Debut:       s.Debut,
			TimesPlayed: s.TimesPlayed,
			LastPlayed:  s.LastPlayed,
			Gap:         s.Gap,
		})
	}
	return out
}

// BuildSetlists flattens per-show setlists into numbered rows. Slots without
// a song ID are dropped; the set label defaults to "Unknown".
func BuildSetlists(setlists []ShowSetlist) []SetlistRecord {
	var out []SetlistRecord
	for _, sl := range setlists {
		for _, song := range sl.Songs {
			if song.SongID == 0 {
				continue
			}
			set := song.Set
			if set == "" {
				set = "Unknown"
			}
			out = append(out, SetlistRecord{
				SetlistID:    len(out) + 1,
				ShowID:       sl.ShowID,
				ShowDate:     sl.ShowDate,
				SongID:       song.SongID,
				SetNumber:    set,
				SongPosition: song.Position,
				SongNotes:    song.Footnote,
			})
		}
	}
	return out
}

// SummarizeEras counts shows per era in canonical era order.
func SummarizeEras(shows []ShowRecord) []EraSummary {
	byEra := make(map[string]*EraSummary)
	for _, s := range shows {
		es, ok := byEra[s.Era]
		if !ok {
			es = &EraSummary{Era: s.Era, StartYear: s.Year, EndYear: s.Year}
			byEra[s.Era] = es
		}
		es.TotalShows++
		if s.Year < es.StartYear {
			es.StartYear = s.Year
		}
		if s.Year > es.EndYear {
			es.EndYear = s.Year
		}
	}
	var out []EraSummary
	for _, era := range eraOrder {
		es, ok := byEra[era]
		if !ok {
			continue
		}
		es.AvgShowsPerYear = float64(es.TotalShows) / float64(es.EndYear-es.StartYear+1)
		out = append(out, *es)
	}
	return out
}

// SummarizeStates counts shows and distinct venues per state, blank states
// excluded, most-played states first.
func SummarizeStates(shows []ShowRecord) []StateSummary {
	counts := make(map[string]int)
	venues := make(map[string]map[string]bool)
	for _, s := range shows {
		if s.State == "" {
			continue
		}
		counts[s.State]++
		if venues[s.State] == nil {
			venues[s.State] = make(map[string]bool)
		}
		venues[s.State][s.VenueName] = true
	}
	out := make([]StateSummary, 0, len(counts))
	for state, n := range counts {
		out = append(out, StateSummary{
			State:        state,
			TotalShows:   n,
			UniqueVenues: len(venues[state]),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalShows != out[j].TotalShows {
			return out[i].TotalShows > out[j].TotalShows
		}
		return out[i].State < out[j].State
	})
	return out
}

func SummarizeYears(shows []ShowRecord) []YearCount {
	counts := make(map[int]int)
	for _, s := range shows {
		counts[s.Year]++
	}
	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, ShowCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopSongs returns the n most played songs, most played first.
func TopSongs(songs []SongRecord, n int) []SongRecord {
	sorted := make([]SongRecord, len(songs))
	copy(sorted, songs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TimesPlayed != sorted[j].TimesPlayed {
			return sorted[i].TimesPlayed > sorted[j].TimesPlayed
		}
		return sorted[i].SongName < sorted[j].SongName
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func yearRange(shows []ShowRecord) string {
	if len(shows) == 0 {
		return ""
	}
	min, max := shows[0].Year, shows[0].Year
	for _, s := range shows[1:] {
		if s.Year < min {
			min = s.Year
		}
		if s.Year > max {
			max = s.Year
		}
	}
	return fmt.Sprintf("%d-%d", min, max)
}
