package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/couchtour/phishstats/pkg/dataset"
)

// Sheet is one worksheet worth of tabular data.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Sheets lays the dataset out as the workbook the Power BI model expects.
// Sheet names are part of that model; do not rename them.
func Sheets(ds dataset.Dataset) []Sheet {
	showRows := make([][]any, 0, len(ds.Shows))
	for _, s := range ds.Shows {
		showRows = append(showRows, []any{
			s.ShowID, s.ShowDate, s.Year, s.VenueID, s.VenueName,
			s.City, s.State, s.Country, s.Artist, s.TourName,
			s.Rating, s.ReviewCount, s.Era,
		})
	}
	venueRows := make([][]any, 0, len(ds.Venues))
	for _, v := range ds.Venues {
		venueRows = append(venueRows, []any{
			v.VenueID, v.VenueName, v.City, v.State, v.Country, v.PastShowsCount,
		})
	}
	songRows := make([][]any, 0, len(ds.Songs))
	for _, s := range ds.Songs {
		songRows = append(songRows, []any{
			s.SongID, s.SongName, s.Slug, s.Debut, s.TimesPlayed, s.LastPlayed, s.Gap,
		})
	}
	setlistRows := make([][]any, 0, len(ds.Setlists))
	for _, s := range ds.Setlists {
		setlistRows = append(setlistRows, []any{
			s.SetlistID, s.ShowID, s.ShowDate, s.SongID, s.SetNumber, s.SongPosition, s.SongNotes,
		})
	}
	eraRows := make([][]any, 0, len(ds.Eras))
	for _, e := range ds.Eras {
		eraRows = append(eraRows, []any{
			e.Era, e.TotalShows, e.StartYear, e.EndYear, e.AvgShowsPerYear,
		})
	}
	stateRows := make([][]any, 0, len(ds.States))
	for _, s := range ds.States {
		stateRows = append(stateRows, []any{s.State, s.TotalShows, s.UniqueVenues})
	}
	yearRows := make([][]any, 0, len(ds.Years))
	for _, y := range ds.Years {
		yearRows = append(yearRows, []any{y.Year, y.ShowCount})
	}
	topRows := make([][]any, 0, len(ds.TopSongs))
	for _, s := range ds.TopSongs {
		topRows = append(topRows, []any{
			s.SongID, s.SongName, s.TimesPlayed, s.Debut, s.LastPlayed, s.Gap,
		})
	}

	return []Sheet{
		{
			Name: "Fact_Shows",
			Headers: []string{
				"ShowID", "ShowDate", "Year", "VenueID", "VenueName",
				"City", "State", "Country", "Artist", "TourName",
				"Rating", "ReviewCount", "Era",
			},
			Rows: showRows,
		},
		{
			Name:    "Dim_Venues",
			Headers: []string{"VenueID", "VenueName", "City", "State", "Country", "PastShowsCount"},
			Rows:    venueRows,
		},
		{
			Name:    "Dim_Songs",
			Headers: []string{"SongID", "SongName", "Slug", "Debut", "TimesPlayed", "LastPlayed", "Gap"},
			Rows:    songRows,
		},
		{
			Name:    "Fact_Setlists",
			Headers: []string{"SetlistID", "ShowID", "ShowDate", "SongID", "SetNumber", "SongPosition", "SongNotes"},
			Rows:    setlistRows,
		},
		{
			Name:    "Fact_Era_Summary",
			Headers: []string{"Era", "TotalShows", "StartYear", "EndYear", "AvgShowsPerYear"},
			Rows:    eraRows,
		},
		{
			Name:    "Fact_State_Summary",
			Headers: []string{"State", "TotalShows", "UniqueVenues"},
			Rows:    stateRows,
		},
		{
			Name:    "Fact_Year_Trend",
			Headers: []string{"Year", "ShowCount"},
			Rows:    yearRows,
		},
		{
			Name:    "Top_50_Songs",
			Headers: []string{"SongID", "SongName", "TimesPlayed", "Debut", "LastPlayed", "Gap"},
			Rows:    topRows,
		},
		{
			Name: "Metadata",
			Headers: []string{
				"DataSource", "FetchDate", "TotalShows", "TotalVenues",
				"TotalSongs", "TotalSetlistRecords", "YearRange",
			},
			Rows: [][]any{{
				ds.Meta.DataSource, ds.Meta.FetchDate, ds.Meta.TotalShows, ds.Meta.TotalVenues,
				ds.Meta.TotalSongs, ds.Meta.TotalSetlistRecords, ds.Meta.YearRange,
			}},
		},
	}
}

// WriteWorkbook writes the sheets to an xlsx file with styled header rows and
// auto-sized columns.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00ADB5"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return err
			}
		}
		if err := writeSheet(f, sheet, headerStyle); err != nil {
			return fmt.Errorf("sheet %s: %w", sheet.Name, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet, headerStyle int) error {
	header := make([]any, len(sheet.Headers))
	widths := make([]int, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
		widths[i] = len(h)
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return err
	}
	for r, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
			return err
		}
		for c, v := range row {
			if c >= len(widths) {
				break
			}
			if n := len(fmt.Sprint(v)); n > widths[c] {
				widths[c] = n
			}
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(sheet.Headers))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet.Name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := w + 2
		if width > 50 {
			width = 50
		}
		if err := f.SetColWidth(sheet.Name, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}
