package subtitles

import "strings"

// ParseSRT parcourt un contenu SRT séquentiel ("index / début --> fin /
// lignes de texte / ligne vide") et retourne les segments dans l'ordre du
// fichier. Premier étage du reflow : le découpage en paragraphes est fait
// séparément par ReflowSegments.
//
// Règles de lecture :
//   - les lignes vides et les numéros de séquence (lignes purement décimales)
//     sont ignorés ;
//   - après une ligne d'horodatage, toutes les lignes non vides qui suivent
//     forment le texte du segment, chacune trimée, jointes par un espace ;
//   - une ligne d'horodatage sans texte ne produit aucun segment (abandon
//     volontaire, ce n'est pas une erreur) ;
//   - un horodatage de la bonne forme mais hors bornes interrompt tout le
//     parsing avec MalformedTimestampError.
func ParseSRT(raw string) ([]Segment, error) {
	lines := strings.Split(raw, "\n")

	var segments []Segment
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || isDecimal(trimmed) {
			i++
			continue
		}

		m := reTimestampLine.FindStringSubmatch(lines[i])
		if m == nil {
			i++
			continue
		}

		start, err := parseTimestamp(m[1])
		if err != nil {
			return nil, err
		}
		end, err := parseTimestamp(m[2])
		if err != nil {
			return nil, err
		}

		// le texte occupe les lignes suivantes, jusqu'à la première ligne vide
		i++
		var texts []string
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			texts = append(texts, strings.TrimSpace(lines[i]))
			i++
		}

		if len(texts) == 0 {
			continue
		}

		segments = append(segments, Segment{
			Start: start,
			End:   end,
			Text:  strings.Join(texts, " "),
		})
	}

	return segments, nil
}

// isDecimal indique si s est une suite non vide de chiffres décimaux
// (numéro de séquence SRT).
func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
