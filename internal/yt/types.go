package yt

import (
	"encoding/json"
	"fmt"
	"os"
)

type subtitleItem struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// ytdlpOutput représente la sortie JSON brute retournée par yt-dlp pour une vidéo.
//
// Subtitles et AutomaticCaptions sont des maps où :
//   - la clé (string) correspond au code langue de la piste (ex. "fr", "en", "en_orig").
//   - la valeur ([]subtitleItem) liste toutes les pistes disponibles pour cette langue.
//
// RequestedSubtitles n'est rempli que lorsque yt-dlp est invoqué avec les
// options de sous-titres (--sub-langs ...) : une seule piste par langue,
// celle que yt-dlp a résolue pour le format demandé.
type ytdlpOutput struct {
	ID                 string                    `json:"id"`
	Title              string                    `json:"title"`
	Uploader           string                    `json:"uploader"`
	UploadDate         string                    `json:"upload_date"`
	Timestamp          int64                     `json:"timestamp"` // en Unix epoch
	Language           string                    `json:"language"`
	Subtitles          map[string][]subtitleItem `json:"subtitles"`
	AutomaticCaptions  map[string][]subtitleItem `json:"automatic_captions"`
	RequestedSubtitles map[string]subtitleItem   `json:"requested_subtitles"`
}

// ExtractedRaw contient le JSON raw et les lignes d'avertissements de yt-dlp.
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// PrettyJSON retourne un json indenté
func (r *ExtractedRaw) PrettyJSON() ([]byte, error) {
	var obj any
	if err := json.Unmarshal(r.JSON, &obj); err != nil {
		return nil, err
	}
	return json.MarshalIndent(obj, "", "  ")
}

// PrintWarnings affiche les avertissements de yt-dlp sur stderr,
// pour ne pas polluer la sortie standard (le transcript part sur stdout).
func (r *ExtractedRaw) PrintWarnings() {
	if len(r.Warnings) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "⚠️  Avertissements yt-dlp :")
	for _, w := range r.Warnings {
		fmt.Fprintf(os.Stderr, "  - %s\n", w)
	}
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin) + args.
type YtDlp struct {
	Name   string
	Path   string // chemin vers l'exe
	Config YtDlpConfig
}
