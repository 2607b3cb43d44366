package yt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lum1narie/yt-subs-dl/pkg/model"
)

// ParseMeta transforme le JSON brut de yt-dlp en struct Meta.
// Toutes les pistes sont conservées telles quelles, quel que soit leur
// format : la sélection de langue ne regarde que la présence des clés.
func ParseMeta(raw []byte) (*model.Meta, error) {
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	meta := &model.Meta{
		ID:       y.ID,
		Title:    y.Title,
		Uploader: y.Uploader,
		Catalog: model.TrackCatalog{
			Manual:      catalogTracks(y.Subtitles, model.SubSourceManual),
			Auto:        catalogTracks(y.AutomaticCaptions, model.SubSourceAutomatic),
			DefaultLang: y.Language,
		},
	}

	// upload_date : essayer YYYYMMDD puis timestamp (fallback)
	if y.UploadDate != "" {
		if t, err := time.Parse("20060102", y.UploadDate); err == nil {
			meta.UploadDate = t
		}
	}
	if meta.UploadDate.IsZero() && y.Timestamp != 0 {
		meta.UploadDate = time.Unix(y.Timestamp, 0).UTC()
	}

	return meta, nil
}

// catalogTracks convertit une map yt-dlp (code langue -> pistes) en map du
// catalogue. Les maps nil restent nil : un catalogue sans pistes se comporte
// comme une map vide.
func catalogTracks(in map[string][]subtitleItem, src model.SubSource) map[string][]model.SubtitleTrack {
	if in == nil {
		return nil
	}
	out := make(map[string][]model.SubtitleTrack, len(in))
	for lang, items := range in {
		tracks := make([]model.SubtitleTrack, 0, len(items))
		for _, it := range items {
			tracks = append(tracks, model.SubtitleTrack{
				Lang:   lang,
				Format: model.Format(it.Ext),
				URL:    it.URL,
				Source: src,
			})
		}
		out[lang] = tracks
	}
	return out
}

// ResolveSubtitleURL extrait de la sortie yt-dlp (invocation avec
// BuildSubtitleArgs) l'URL de la piste résolue pour la langue demandée.
// Erreur si requested_subtitles ne contient pas la langue ou pas d'URL.
func ResolveSubtitleURL(raw []byte, lang string) (string, error) {
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return "", fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	item, ok := y.RequestedSubtitles[lang]
	if !ok || item.URL == "" {
		return "", fmt.Errorf("aucune URL de sous-titres SRT pour la langue %q", lang)
	}
	return item.URL, nil
}
