// Package main provides the command-line front end.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	"github.com/ytlength/ytlength/internal/app/summary"
	"github.com/ytlength/ytlength/internal/domain/duration"
	"github.com/ytlength/ytlength/internal/domain/playlist"
	"github.com/ytlength/ytlength/internal/infra/logger"
	"github.com/ytlength/ytlength/internal/infra/youtube"
)

var (
	app         = kingpin.New("ytlength", "Compute the total length of a YouTube playlist")
	playlistURL = app.Arg("playlist", "Playlist URL or ID").Required().String()
	fromNum     = app.Flag("from", "First video number of the range (1-based)").String()
	toNum       = app.Flag("to", "Last video number of the range (1-based)").String()
	apiKey      = app.Flag("api-key", "YouTube Data API key (default: YOUTUBE_API_KEY env)").String()
	verbose     = app.Flag("verbose", "Enable verbose (DEBUG) logging").Short('v').Bool()
)

// speeds are the playback multipliers the report shows.
var speeds = []float64{0.75, 1.25, 1.5, 2.0}

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	level := "warn"
	if *verbose {
		level = "debug"
	}
	if err := logger.Init(logger.Config{Output: "stderr", Level: level}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	key := *apiKey
	if key == "" {
		key = os.Getenv("YOUTUBE_API_KEY")
	}

	client, err := youtube.New(youtube.Config{APIKey: key})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	summarizer := summary.New(client)
	sum, err := summarizer.Summarize(context.Background(), summary.Request{
		PlaylistURL:  *playlistURL,
		FromVideoNum: *fromNum,
		ToVideoNum:   *toNum,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	render(sum)
}

// render prints the summary report.
func render(sum *playlist.Summary) {
	fmt.Printf("Playlist: %s\n", sum.Title)
	fmt.Printf("Channel:  %s\n", sum.ChannelTitle)

	if sum.VideoCount == 0 && sum.ActualVideoCount == 0 {
		fmt.Println("Videos:   0 (empty playlist)")
		return
	}

	total := float64(sum.TotalDuration())

	fmt.Printf("Videos:   %d", sum.ActualVideoCount)
	if sum.Range != nil {
		fmt.Printf(" (range %d-%d of %d)", sum.Range.From, sum.Range.To, sum.VideoCount)
	}
	fmt.Println()

	fmt.Printf("Total:    %s\n", duration.Format(total))
	fmt.Printf("Average:  %s\n", duration.FormatAverage(total, sum.ActualVideoCount))

	fmt.Println("At playback speed:")
	for _, speed := range speeds {
		fmt.Printf("  %.2fx: %s\n", speed, duration.FormatAtSpeed(total, speed))
	}

	first, last := sum.FirstVideo(), sum.LastVideo()
	if first != nil && last != nil && sum.Range != nil {
		fmt.Printf("First:    #%d: %s\n", sum.Range.From, first.Title)
		fmt.Printf("          %s\n", first.WatchURL(sum.ID, sum.Range.From))
		fmt.Printf("Last:     #%d: %s\n", sum.Range.To, last.Title)
		fmt.Printf("          %s\n", last.WatchURL(sum.ID, sum.Range.To))
	}
}
