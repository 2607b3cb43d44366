package subtitles

import (
	"strings"
	"time"
)

// noSpaceLanguages : langues dont l'écriture ne sépare pas les mots par des
// espaces. Pour elles, les segments d'un même paragraphe sont concaténés
// sans séparateur.
var noSpaceLanguages = map[string]struct{}{
	"ja": {},
	"zh": {},
	"ko": {},
	"th": {},
	"lo": {},
	"km": {},
	"my": {},
}

// effectiveLanguage retire le suffixe littéral "_orig" que Youtube accole aux
// codes des pistes originales (ex. "en_orig" -> "en"). Suppression de
// sous-chaîne exacte uniquement : "eng_o" reste intact.
func effectiveLanguage(code string) string {
	return strings.TrimSuffix(code, "_orig")
}

// spaceRequired indique si la langue utilise l'espace comme séparateur de mots.
func spaceRequired(code string) bool {
	_, noSpace := noSpaceLanguages[code]
	return !noSpace
}

// Reflow reformate un contenu SRT brut en paragraphes lisibles.
// threshold est le seuil en secondes : un écart entre la fin d'un segment et
// le début du suivant supérieur OU ÉGAL au seuil insère un saut de paragraphe.
// lang détermine la règle de jointure (espace ou concaténation directe).
func Reflow(raw string, threshold float64, lang string) (string, error) {
	segments, err := ParseSRT(raw)
	if err != nil {
		return "", err
	}
	return ReflowSegments(segments, threshold, lang), nil
}

// ReflowSegments fusionne des segments déjà parsés en paragraphes.
// Second étage du reflow ; fonction pure, les segments sont supposés dans
// l'ordre chronologique du fichier.
//
// Le comparateur est inclusif (gap >= threshold) : avec un seuil de 0, tout
// écart non négatif — y compris deux segments exactement contigus — provoque
// un saut de paragraphe.
func ReflowSegments(segments []Segment, threshold float64, lang string) string {
	eff := effectiveLanguage(lang)
	if eff == "" {
		// code langue absent : on devine à partir du texte pour choisir
		// la règle de jointure
		eff = DetectLanguage(segments)
	}
	sep := " "
	if !spaceRequired(eff) {
		sep = ""
	}

	var out strings.Builder
	var buffer []string
	var lastEnd time.Duration
	haveLast := false

	for _, seg := range segments {
		if haveLast {
			gap := (seg.Start - lastEnd).Seconds()
			if gap >= threshold {
				out.WriteString(strings.Join(buffer, sep))
				out.WriteByte('\n')
				buffer = buffer[:0]
			}
		}
		buffer = append(buffer, seg.Text)
		lastEnd = seg.End
		haveLast = true
	}

	// dernier paragraphe : pas de newline final
	if len(buffer) > 0 {
		out.WriteString(strings.Join(buffer, sep))
	}

	return out.String()
}
