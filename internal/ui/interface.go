package ui

import "context"

type Interface interface {
	// GetVideoURL doit renvoyer une URL valide.
	// Implémentation terminale : priorité clipboard -> prompt
	GetVideoURL(ctx context.Context) (string, error)

	PrintInfo(ctx context.Context, s string)
	PrintError(ctx context.Context, s string)
}
