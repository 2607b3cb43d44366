package subtitles

import "github.com/abadojack/whatlanggo"

// DetectLanguage devine la langue dominante des segments (code ISO 639-1).
// Vote majoritaire segment par segment ; retourne "" si rien n'est détecté.
// Utilisé uniquement quand la piste ne porte aucun code langue : un code
// explicite n'est jamais remis en question.
func DetectLanguage(segments []Segment) string {
	counts := make(map[string]int)
	for _, seg := range segments {
		code := whatlanggo.DetectLang(seg.Text).Iso6391()
		if code == "" {
			continue
		}
		counts[code]++
	}

	var top string
	var topCount int
	for code, n := range counts {
		if n > topCount {
			top = code
			topCount = n
		}
	}
	return top
}
