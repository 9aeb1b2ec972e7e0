// Command trackdemo renders genome tracks described in a YAML job file to
// an image.
//
// Usage:
//
//	trackdemo -config job.yaml -output track.png [-backend raster] [-v]
//
// A job names a view window and a list of tracks with inline records:
//
//	start: 95
//	end: 165
//	width: 700
//	tracks:
//	  - name: genes
//	    kind: linked_feature
//	    prefs: {block_color: "#336699"}
//	    features:
//	      - {id: f1, start: 100, end: 110, name: f1}
//	      - {id: f2, start: 105, end: 130, strand: "+", thick: [110, 125], blocks: [[105, 130]]}
//
// Colors must be quoted in YAML.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ggtrack"
	"github.com/gogpu/ggtrack/recording"
	_ "github.com/gogpu/ggtrack/recording/backends/raster"
)

func main() {
	var (
		config  = flag.String("config", "", "YAML job file")
		output  = flag.String("output", "track.png", "output file")
		backend = flag.String("backend", "raster", "playback backend ("+strings.Join(recording.Backends(), ", ")+")")
		verbose = flag.Bool("v", false, "log painter diagnostics to stderr")
	)
	flag.Parse()

	if *config == "" {
		fmt.Fprintln(os.Stderr, "trackdemo: -config is required")
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		ggtrack.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	job, err := loadJob(*config)
	if err != nil {
		log.Fatalf("Failed to load job: %v", err)
	}
	r, err := render(job)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := save(r, *backend, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Tracks saved to %s (%dx%d)\n", *output, r.Width(), r.Height())
}
