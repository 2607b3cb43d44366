package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/lum1narie/yt-subs-dl/internal/fsutil"
	"github.com/lum1narie/yt-subs-dl/internal/updater"
)

// SaveTranscript écrit le transcript formaté dans outDir, nommé d'après le
// titre de la vidéo. Retourne le chemin final du fichier.
func SaveTranscript(title, transcript, outDir string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("SaveTranscript: transcript vide, rien à sauvegarder")
	}

	base := fsutil.SanitizeFilename(title)
	path := filepath.Join(outDir, base+".txt")

	if err := fsutil.WriteFileAtomic(path, []byte(transcript+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write transcript %s: %w", path, err)
	}
	return path, nil
}

// YtDlpUpdateCheck compare la version locale de yt-dlp à la dernière release
// GitHub et affiche le lien de téléchargement si une mise à jour existe.
// Les échecs réseau restent non fatals chez l'appelant.
func (a *App) YtDlpUpdateCheck(ctx context.Context, timeout time.Duration, version string) error {
	uc, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	check, err := updater.CheckYtDlpUpdate(uc, version)
	if err != nil {
		return fmt.Errorf("vérification de mise à jour a échoué : %v", err)
	}

	if check.IsUpToDate {
		a.ui.PrintError(ctx, fmt.Sprintf("✅ yt-dlp est à jour (%s)", check.CurrentVersion))
		return nil
	}

	a.ui.PrintError(ctx, "⚠️ Nouvelle version de yt-dlp disponible :")
	a.ui.PrintError(ctx, fmt.Sprintf("  Installée : %s", check.CurrentVersion))
	a.ui.PrintError(ctx, fmt.Sprintf("  Dernière  : %s", check.Latest.TagName))
	if link := check.UpdateLink(runtime.GOOS); link != "" {
		a.ui.PrintError(ctx, "Téléchargez-la ici:")
		a.ui.PrintError(ctx, link)
	}

	return nil
}
