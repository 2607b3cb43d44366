package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TrackCatalog regroupe les pistes de sous-titres disponibles pour une vidéo,
// indexées par code langue tel que fourni par Youtube (ex. "fr", "en", "en_orig").
// DefaultLang est la langue par défaut annoncée par la vidéo ; vide si inconnue.
type TrackCatalog struct {
	Manual      map[string][]SubtitleTrack `json:"manual,omitempty"`
	Auto        map[string][]SubtitleTrack `json:"automatic,omitempty"`
	DefaultLang string                     `json:"default_lang,omitempty"`
}

// HasManual indique si une piste manuelle existe pour ce code langue.
func (c TrackCatalog) HasManual(lang string) bool {
	_, ok := c.Manual[lang]
	return ok
}

// HasAuto indique si une piste automatique existe pour ce code langue.
func (c TrackCatalog) HasAuto(lang string) bool {
	_, ok := c.Auto[lang]
	return ok
}

// ManualLangs retourne les codes langue des pistes manuelles, triés
// pour un affichage déterministe.
func (c TrackCatalog) ManualLangs() []string {
	return sortedKeys(c.Manual)
}

// AutoLangs retourne les codes langue des pistes automatiques, triés.
func (c TrackCatalog) AutoLangs() []string {
	return sortedKeys(c.Auto)
}

func sortedKeys(m map[string][]SubtitleTrack) []string {
	out := make([]string, 0, len(m))
	for lang := range m {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Meta regroupe les métadonnées extraites d'une vidéo YouTube.
type Meta struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Uploader   string       `json:"uploader,omitempty"`
	UploadDate time.Time    `json:"upload_date,omitempty"`
	Catalog    TrackCatalog `json:"catalog"`
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Uploader=%s, Manual=%d, Auto=%d]",
		m.ID, m.Title, m.Uploader, len(m.Catalog.Manual), len(m.Catalog.Auto))
}

// Pretty retourne une fiche multi-lignes simple, utilisée en mode verbeux.
func (m Meta) Pretty() string {
	dateStr := "<unknown>"
	if !m.UploadDate.IsZero() {
		dateStr = m.UploadDate.Format("2006-01-02")
	}

	formatLangs := func(list []string) string {
		if len(list) == 0 {
			return "(aucun)"
		}
		return strings.Join(list, ", ")
	}

	defaultLang := m.Catalog.DefaultLang
	if defaultLang == "" {
		defaultLang = "(aucune)"
	}

	return fmt.Sprintf(
		"Meta:\n"+
			"  ID          : %s\n"+
			"  Title       : %q\n"+
			"  Uploader    : %s\n"+
			"  Date        : %s\n"+
			"  DefaultLang : %s\n"+
			"  ManualSubs  : %s\n"+
			"  AutoSubs    : %s\n",
		m.ID,
		m.Title,
		m.Uploader,
		dateStr,
		defaultLang,
		formatLangs(m.Catalog.ManualLangs()),
		formatLangs(m.Catalog.AutoLangs()),
	)
}
