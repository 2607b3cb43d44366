package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lum1narie/yt-subs-dl/internal/app"
	"github.com/lum1narie/yt-subs-dl/internal/assets"
	"github.com/lum1narie/yt-subs-dl/internal/bootstrap"
	"github.com/lum1narie/yt-subs-dl/internal/config"
	"github.com/lum1narie/yt-subs-dl/internal/ui"
)

func main() {
	flags, overrides := parseFlags()

	// déterminer binDir pour y placer la config par défaut
	binDir := "."
	if exePath, err := os.Executable(); err != nil {
		log.Printf("impossible de déterminer le chemin de l'executable: %v", err)
	} else {
		binDir = filepath.Dir(exePath)
	}

	// emplacement config par défaut : à côté du binaire
	if flags.ConfigPath == "yt-subs-dl.yaml" || flags.ConfigPath == "" {
		flags.ConfigPath = filepath.Join(binDir, "yt-subs-dl.yaml")
	}

	// s'assurer que le fichier config existe, si non on le crée
	if err := bootstrap.EnsureConfigPresent(
		flags.ConfigPath,
		assets.Embedded,
		assets.DefaultConfigAsset,
	); err != nil {
		log.Printf("erreur: EnsureConfigPresent: %v", err)
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	// appliquer les flags par-dessus la config
	if err := overrides.apply(cfg, flags); err != nil {
		log.Fatalf("%v", err)
	}

	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tui := ui.NewTerminal()
	a := app.New(cfg, tui, flags)
	if err := a.Run(ctx); err != nil {
		log.Fatalf("app run: %v", err)
	}
}

// cliOverrides mémorise les flags explicitement passés sur la ligne de
// commande : seuls ceux-là écrasent les valeurs du fichier de config.
type cliOverrides struct {
	threshold       float64
	languages       string
	noPreferDefault bool
	set             map[string]bool
}

func parseFlags() (*app.CLIFlags, *cliOverrides) {
	f := &app.CLIFlags{}
	o := &cliOverrides{}

	flag.StringVar(&f.ConfigPath, "config", "yt-subs-dl.yaml", "path to config file")
	flag.StringVar(&f.URL, "url", "", "URL de la vidéo Youtube (aussi acceptée en argument positionnel)")
	flag.Float64Var(&o.threshold, "t", config.DefaultThreshold,
		"seuil en secondes pour insérer un saut de paragraphe, doit être >= 0")
	flag.StringVar(&o.languages, "l", config.DefaultLanguages,
		"codes langue préférés, séparés par des virgules, par ordre de priorité")
	flag.BoolVar(&o.noPreferDefault, "D", false,
		"ne pas préférer la langue par défaut de la vidéo")
	flag.BoolVar(&f.Raw, "r", false, "afficher le contenu SRT brut, sans reflow")
	flag.BoolVar(&f.Verbose, "v", false, "mode verbeux : langue choisie et SRT brut sur stderr")
	flag.StringVar(&f.YtDlpPath, "yt-dlp-path", "", "chemin absolu vers l'exécutable yt-dlp")
	flag.Parse()

	// retenir les flags réellement passés
	o.set = make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { o.set[fl.Name] = true })

	// l'URL peut aussi être donnée en positionnel
	if f.URL == "" && flag.NArg() > 0 {
		f.URL = flag.Arg(0)
	}

	return f, o
}

// apply reporte les flags passés explicitement dans la config chargée.
func (o *cliOverrides) apply(cfg *config.Config, flags *app.CLIFlags) error {
	if o.set["t"] {
		if o.threshold < 0 {
			return fmt.Errorf("le seuil (-t) doit être non négatif, reçu %v", o.threshold)
		}
		cfg.Threshold = o.threshold
	}
	if o.set["l"] {
		cfg.Languages = o.languages
	}
	if o.set["D"] && o.noPreferDefault {
		cfg.PreferDefaultLang = false
	}
	if flags.YtDlpPath != "" {
		cfg.YtDlp.Path = flags.YtDlpPath
		cfg.ResolveYtDlpPath()
	}
	return nil
}
