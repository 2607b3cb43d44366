package yt

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// CheckBinary vérifie que le binaire existe et n'est pas un répertoire.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.executable()
	info, err := os.Stat(exe)
	if err != nil {
		// pas de chemin résolu : tenter la découverte dans le PATH
		if _, lerr := exec.LookPath(y.Name); lerr == nil {
			return nil
		}
		return fmt.Errorf("yt-dlp introuvable (%s) : %v", exe, err)
	}

	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}

	return nil
}

// ExtractRaw exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	return y.run(ctx, y.Config.BuildArgs(url))
}

// ExtractSubtitleInfo exécute yt-dlp avec résolution des sous-titres pour la
// langue donnée : la sortie contient requested_subtitles avec l'URL SRT.
func (y *YtDlp) ExtractSubtitleInfo(ctx context.Context, url, lang string) (*ExtractedRaw, error) {
	return y.run(ctx, y.Config.BuildSubtitleArgs(url, lang))
}

// run exécute le binaire et sépare la ligne JSON des avertissements.
func (y *YtDlp) run(ctx context.Context, args []string) (*ExtractedRaw, error) {
	cmd := exec.CommandContext(ctx, y.executable(), args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", err, string(out))
	}

	var jsonLine string
	var warnings []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line // si plusieurs lignes JSON, on garde la dernière
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}

func (y *YtDlp) executable() string {
	if y.Path != "" {
		return y.Path
	}
	return y.Name
}
