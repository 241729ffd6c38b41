// gen_placeholder writes the image shown for cars without a photo and the
// site favicon. The server also writes them on startup when they are missing.
package main

import (
	"flag"
	"log"

	"github.com/autohub/site/placeholder"
)

func main() {
	staticDir := flag.String("static", "static", "static files directory")
	force := flag.Bool("force", true, "overwrite existing files")
	flag.Parse()

	written, err := placeholder.EnsureAssets(*staticDir, *force)
	if err != nil {
		log.Fatalf("Failed to write assets: %v", err)
	}
	for _, path := range written {
		log.Printf("Wrote %s", path)
	}
}
