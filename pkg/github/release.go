package github

import (
	"context"
	"fmt"
	"time"

	"github.com/lum1narie/yt-subs-dl/internal/fetch"
)

const (
	releaseTimeout  = 10 * time.Second
	releaseMaxBytes = 2_000_000
)

// Asset représente un fichier attaché à une release GitHub.
type Asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	ContentType        string `json:"content_type"`
}

// Release contient les métadonnées de la dernière release d'un dépôt.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	Body        string    `json:"body"`
	HTMLURL     string    `json:"html_url"`
	Assets      []Asset   `json:"assets"`
}

// AssetNamed retourne l'asset portant exactement ce nom, s'il existe.
func (r *Release) AssetNamed(name string) (Asset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// LatestRelease interroge l'API GitHub pour la dernière release d'un dépôt donné.
func LatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/%s/releases/latest", owner, repo)

	var rel Release
	if err := fetch.FetchJSONInto(ctx, url, releaseTimeout, releaseMaxBytes, &rel); err != nil {
		return nil, fmt.Errorf("requête GitHub: %w", err)
	}
	if rel.TagName == "" {
		return nil, fmt.Errorf("release GitHub sans tag_name pour %s/%s", owner, repo)
	}
	return &rel, nil
}
