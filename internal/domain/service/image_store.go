package service

import (
	"context"
	"io"
)

// ImageStore persists uploaded product images and hands back the relative
// URL under which the image is served. Input validation (extension
// allow-list, size ceiling) happens before the store is called, so a Save
// call always performs I/O.
type ImageStore interface {
	// Save writes the image under a generated collision-free name derived
	// from ext (e.g. ".png") and returns its relative URL.
	Save(ctx context.Context, ext string, r io.Reader) (string, error)
}
