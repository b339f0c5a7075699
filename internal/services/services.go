package services

import (
	"context"

	"github.com/desertthunder/ytaudio/internal/models"
)

// MediaFetcher performs network retrieval and audio conversion on behalf of the download engine.
//
// Probe only reads metadata; Fetch is the only call that writes files.
type MediaFetcher interface {
	// Probe retrieves playlist metadata without downloading anything.
	Probe(ctx context.Context, url string) (*models.PlaylistDescriptor, error)

	// Fetch downloads target.URL, converts it to target.Format and writes it to target.Template.
	Fetch(ctx context.Context, target models.FetchTarget) (*models.FetchResult, error)
}
