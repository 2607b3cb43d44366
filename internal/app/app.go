package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lum1narie/yt-subs-dl/internal/clipboard"
	"github.com/lum1narie/yt-subs-dl/internal/config"
	"github.com/lum1narie/yt-subs-dl/internal/fetch"
	"github.com/lum1narie/yt-subs-dl/internal/subtitles"
	"github.com/lum1narie/yt-subs-dl/internal/ui"
	"github.com/lum1narie/yt-subs-dl/internal/yt"
)

const (
	defaultUpdateTimeout  = 15 * time.Second
	defaultExtractTimeout = 2 * time.Minute
	defaultFetchTimeout   = 15 * time.Second
	defaultFetchMaxBytes  = int64(10_000_000)
)

// CLIFlags contient les informations venant des flags de l'app
type CLIFlags struct {
	ConfigPath string
	URL        string
	Raw        bool // sortie SRT brute, sans reflow
	Verbose    bool
	YtDlpPath  string
}

// App orchestre les différentes dépendances (UI, YtDlp, fetch...)
type App struct {
	cfg      *config.Config
	ui       ui.Interface
	flags    *CLIFlags
	ytClient yt.Interface // initialisé dans Run si absent ; injectable pour les tests

	// sorties et téléchargement injectables pour les tests
	out       io.Writer
	fetchText func(ctx context.Context, url string, timeout time.Duration, maxBytes int64) (string, error)
}

// New construit l'application en initialisant les dépendances par défaut.
// Pour les tests, on préférera construire App en injectant des implémentations mock.
func New(cfg *config.Config, uiClient ui.Interface, flags *CLIFlags) *App {
	return &App{
		cfg:       cfg,
		ui:        uiClient,
		flags:     flags,
		out:       os.Stdout,
		fetchText: fetch.FetchTextWithTimeout,
	}
}

// Run exécute le flux principal : métadonnées -> sélection de langue ->
// téléchargement SRT -> reflow -> stdout. Il initialise ytClient (via
// InitYtDlp) en utilisant le ctx, sauf si un client a déjà été injecté.
func (a *App) Run(ctx context.Context) error {
	// Récupération de l'URL : priorité flag > clipboard > prompt
	url := a.flags.URL
	if url == "" {
		u, err := a.ui.GetVideoURL(ctx)
		if err != nil {
			return fmt.Errorf("get url: %w", err)
		}
		url = u
	}

	// avertissements non fatals sur l'emplacement de yt-dlp
	if warnings, err := a.cfg.ValidateYtDlpPresence(); err != nil {
		return fmt.Errorf("configuration yt-dlp : %w", err)
	} else {
		for _, w := range warnings {
			a.ui.PrintError(ctx, "warning: "+w)
		}
	}

	// Init yt-dlp (CheckBinary + version)
	if a.ytClient == nil {
		dl, version, err := yt.InitYtDlp(ctx, a.cfg)
		if err != nil {
			return fmt.Errorf("yt init: %w", err)
		}
		a.ytClient = dl

		// Update check (optionnel)
		if a.cfg.YtDlp.AutoUpdateCheck {
			if err := a.YtDlpUpdateCheck(ctx, defaultUpdateTimeout, version); err != nil {
				a.ui.PrintError(ctx, err.Error())
			}
		}
	}

	// Extraction des métadonnées
	exCtx, exCancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer exCancel()

	raw, err := a.ytClient.ExtractRaw(exCtx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("opération annulée")
		}
		return fmt.Errorf("extract raw: %w", err)
	}
	raw.PrintWarnings()

	meta, err := yt.ParseMeta(raw.JSON)
	if err != nil {
		return fmt.Errorf("parse ytdlp: %w", err)
	}
	if a.flags.Verbose {
		a.ui.PrintError(ctx, meta.Pretty())
	}

	// Sélection de la langue (fonction pure, l'erreur porte les langues disponibles)
	lang, err := subtitles.SelectLanguage(meta.Catalog, a.cfg.PreferDefaultLang, a.cfg.LanguageList())
	if err != nil {
		return err
	}
	if a.flags.Verbose {
		a.ui.PrintError(ctx, fmt.Sprintf("Langue sélectionnée : %s", lang))
	}

	// Téléchargement du contenu SRT pour la langue choisie
	srt, err := a.fetchSubtitleContent(ctx, url, lang)
	if err != nil {
		return err
	}
	if srt == "" {
		return fmt.Errorf("aucun contenu de sous-titres récupéré pour %q", lang)
	}

	// Sortie brute demandée : le SRT part tel quel sur stdout
	if a.flags.Raw {
		fmt.Fprintln(a.out, srt)
		return nil
	}

	if a.flags.Verbose {
		a.ui.PrintError(ctx, "\n--- Raw SRT Content ---\n")
		a.ui.PrintError(ctx, srt)
		a.ui.PrintError(ctx, "\n--- End Raw SRT Content ---\n")
	}

	formatted, err := subtitles.Reflow(srt, a.cfg.Threshold, lang)
	if err != nil {
		return fmt.Errorf("reflow: %w", err)
	}
	fmt.Fprintln(a.out, formatted)

	if a.cfg.CopyToClipboard && formatted != "" {
		if err := clipboard.WriteAll(formatted); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("warning: copie dans le presse-papier impossible : %v", err))
		}
	}

	if a.cfg.SaveTranscript {
		path, err := SaveTranscript(meta.Title, formatted, a.cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("échec de la sauvegarde du transcript: %w", err)
		}
		a.ui.PrintError(ctx, fmt.Sprintf("Transcript écrit dans : %s", path))
	}

	return nil
}

// fetchSubtitleContent résout l'URL SRT de la langue via yt-dlp puis
// télécharge le payload (BOM retiré par le fetcher).
func (a *App) fetchSubtitleContent(ctx context.Context, url, lang string) (string, error) {
	exCtx, cancel := context.WithTimeout(ctx, defaultExtractTimeout)
	defer cancel()

	subInfo, err := a.ytClient.ExtractSubtitleInfo(exCtx, url, lang)
	if err != nil {
		return "", fmt.Errorf("extract subtitle info: %w", err)
	}
	subInfo.PrintWarnings()

	subURL, err := yt.ResolveSubtitleURL(subInfo.JSON, lang)
	if err != nil {
		return "", err
	}

	text, err := a.fetchText(ctx, subURL, defaultFetchTimeout, defaultFetchMaxBytes)
	if err != nil {
		return "", fmt.Errorf("download subtitle: %w", err)
	}
	return text, nil
}
