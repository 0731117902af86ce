// Command fetcher pulls the full Phish.net catalogue and writes the Power BI
// workbook. Shows are fetched year by year, which the API handles far more
// reliably than one giant query.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/couchtour/phishstats/pkg/config"
	"github.com/couchtour/phishstats/pkg/dataset"
	"github.com/couchtour/phishstats/pkg/export"
	"github.com/couchtour/phishstats/pkg/phishnet"
)

const firstShowYear = 1983

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	out          string
	fromYear     int
	toYear       int
	delay        time.Duration
	skipSetlists bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:          "fetcher",
		Short:        "Fetch Phish.net show data and build the Excel dataset",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "Phish_Complete_Data_API.xlsx", "output workbook path")
	cmd.Flags().IntVar(&opts.fromYear, "from", firstShowYear, "first year to fetch")
	cmd.Flags().IntVar(&opts.toYear, "to", time.Now().Year(), "last year to fetch")
	cmd.Flags().DurationVar(&opts.delay, "delay", 500*time.Millisecond, "pause between API calls")
	cmd.Flags().BoolVar(&opts.skipSetlists, "skip-setlists", false, "skip the per-show setlist fetch")
	return cmd
}

func run(ctx context.Context, opts options) error {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := config.Load()
	if cfg.PhishNetAPIKey == "" {
		return errors.New("PHISHNET_API_KEY is not set; create a .env with your API key")
	}
	client := phishnet.New(cfg.PhishNetAPIKey, cfg.PhishNetBase)

	shows, err := fetchShows(ctx, logger, client, opts)
	if err != nil {
		return err
	}
	if len(shows) == 0 {
		return errors.New("no shows fetched")
	}

	logger.Info("fetching venues")
	venues, err := client.Venues(ctx)
	if err != nil {
		logger.Warn("venue fetch failed, continuing without venues", zap.Error(err))
	}
	logger.Info("fetching songs")
	songs, err := client.Songs(ctx)
	if err != nil {
		logger.Warn("song fetch failed, continuing without songs", zap.Error(err))
	}

	var setlists []dataset.ShowSetlist
	if !opts.skipSetlists {
		setlists = fetchSetlists(ctx, logger, client, shows, opts.delay)
	}

	ds := dataset.Build(shows, venues, songs, setlists, time.Now())

	if err := export.WriteWorkbook(opts.out, export.Sheets(ds)); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	logger.Info("dataset complete",
		zap.String("out", opts.out),
		zap.Int("shows", ds.Meta.TotalShows),
		zap.Int("venues", ds.Meta.TotalVenues),
		zap.Int("songs", ds.Meta.TotalSongs),
		zap.Int("setlistRecords", ds.Meta.TotalSetlistRecords),
		zap.String("years", ds.Meta.YearRange),
	)
	for _, era := range ds.Eras {
		logger.Info("era",
			zap.String("era", era.Era),
			zap.Int("shows", era.TotalShows),
			zap.Int("start", era.StartYear),
			zap.Int("end", era.EndYear),
			zap.Float64("avgPerYear", era.AvgShowsPerYear),
		)
	}
	return nil
}

func fetchShows(ctx context.Context, logger *zap.Logger, client *phishnet.Client, opts options) ([]phishnet.Show, error) {
	var all []phishnet.Show
	for year := opts.fromYear; year <= opts.toYear; year++ {
		logger.Info("fetching shows", zap.Int("year", year))
		shows, err := client.ShowsByYear(ctx, year)
		if err != nil {
			// A bad year should not sink the whole run.
			logger.Warn("year fetch failed", zap.Int("year", year), zap.Error(err))
			continue
		}
		all = append(all, shows...)
		sleep(ctx, opts.delay)
	}
	logger.Info("shows fetched", zap.Int("total", len(all)))
	return all, nil
}

func fetchSetlists(ctx context.Context, logger *zap.Logger, client *phishnet.Client, shows []phishnet.Show, delay time.Duration) []dataset.ShowSetlist {
	logger.Info("fetching setlists", zap.Int("shows", len(shows)))
	var out []dataset.ShowSetlist
	for i, show := range shows {
		if (i+1)%100 == 0 || i+1 == len(shows) {
			logger.Info("setlist progress", zap.Int("done", i+1), zap.Int("total", len(shows)))
		}
		songs, err := client.SetlistByDate(ctx, show.ShowDate)
		if err != nil {
			logger.Warn("setlist fetch failed", zap.String("date", show.ShowDate), zap.Error(err))
			sleep(ctx, delay)
			continue
		}
		if len(songs) > 0 {
			out = append(out, dataset.ShowSetlist{
				ShowID:   show.ShowID,
				ShowDate: show.ShowDate,
				Songs:    songs,
			})
		}
		sleep(ctx, delay)
	}
	return out
}

// sleep rate-limits between API calls without ignoring cancellation.
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
