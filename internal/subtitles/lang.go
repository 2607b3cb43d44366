package subtitles

import (
	"fmt"
	"strings"

	"github.com/lum1narie/yt-subs-dl/pkg/model"
)

// NoSuitableLanguageError : aucune langue candidate trouvée, ni dans les
// pistes manuelles ni dans les automatiques. Porte les codes disponibles
// pour que l'appelant puisse les afficher.
type NoSuitableLanguageError struct {
	Manual []string
	Auto   []string
}

func (e *NoSuitableLanguageError) Error() string {
	var b strings.Builder
	b.WriteString("aucune langue de sous-titres ne correspond aux préférences")
	if len(e.Manual) > 0 {
		fmt.Fprintf(&b, " (manuels disponibles : %s)", strings.Join(e.Manual, ", "))
	}
	if len(e.Auto) > 0 {
		fmt.Fprintf(&b, " (automatiques disponibles : %s)", strings.Join(e.Auto, ", "))
	}
	return b.String()
}

// SelectLanguage choisit la langue de sous-titres optimale.
// Ordre de résolution (premier trouvé gagne) :
//  1. langue par défaut de la vidéo, pistes manuelles (si preferDefault) ;
//  2. liste de priorité, pistes manuelles ;
//  3. langue par défaut de la vidéo, pistes automatiques (si preferDefault) ;
//  4. liste de priorité, pistes automatiques.
//
// Les pistes manuelles sont donc toujours préférées aux automatiques à rang
// de priorité égal. Échec : *NoSuitableLanguageError. Fonction pure, aucun
// effet de bord.
func SelectLanguage(catalog model.TrackCatalog, preferDefault bool, priority []string) (string, error) {
	if preferDefault && catalog.DefaultLang != "" && catalog.HasManual(catalog.DefaultLang) {
		return catalog.DefaultLang, nil
	}

	for _, lang := range priority {
		if catalog.HasManual(lang) {
			return lang, nil
		}
	}

	if preferDefault && catalog.DefaultLang != "" && catalog.HasAuto(catalog.DefaultLang) {
		return catalog.DefaultLang, nil
	}

	for _, lang := range priority {
		if catalog.HasAuto(lang) {
			return lang, nil
		}
	}

	return "", &NoSuitableLanguageError{
		Manual: catalog.ManualLangs(),
		Auto:   catalog.AutoLangs(),
	}
}
