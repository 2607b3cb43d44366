package updater

import (
	"context"
	"fmt"

	"github.com/lum1narie/yt-subs-dl/pkg/github"
)

// noms des assets publiés par yt-dlp pour chaque plateforme
const (
	assetWindows = "yt-dlp.exe"
	assetLinux   = "yt-dlp"
)

// UpdateCheck contient le résultat de la comparaison entre la version locale
// de yt-dlp et la dernière release publiée.
type UpdateCheck struct {
	CurrentVersion string          // version récupérée localement
	Latest         *github.Release // info complète de la release distante
	IsUpToDate     bool            // true si CurrentVersion == Latest.TagName
}

// CheckYtDlpUpdate compare la version locale et la version GitHub.
func CheckYtDlpUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := github.LatestRelease(ctx, "yt-dlp", "yt-dlp")
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	return &UpdateCheck{
		CurrentVersion: localVer,
		Latest:         latest,
		IsUpToDate:     localVer == latest.TagName,
	}, nil
}

// UpdateLink retourne l'URL de téléchargement du binaire pour le système
// donné (valeur de runtime.GOOS). Chaîne vide si l'asset est introuvable.
func (u UpdateCheck) UpdateLink(system string) string {
	name := assetLinux
	if system == "windows" {
		name = assetWindows
	}
	if a, ok := u.Latest.AssetNamed(name); ok {
		return a.BrowserDownloadURL
	}
	return ""
}
