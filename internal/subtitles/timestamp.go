package subtitles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// reTimestampLine détecte les lignes d'horodatage SRT.
// SRT utilise la virgule comme séparateur des millisecondes.
// Ancré en début de ligne uniquement : le suffixe (position, \r...) est ignoré.
var reTimestampLine = regexp.MustCompile(
	`^(\d{2}:\d{2}:\d{2},\d{3}) --> (\d{2}:\d{2}:\d{2},\d{3})`,
)

// MalformedTimestampError signale un horodatage qui a la bonne forme mais dont
// un champ sort des bornes. L'erreur interrompt tout le reflow en cours.
type MalformedTimestampError struct {
	Value  string
	Reason string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("horodatage invalide %q : %s", e.Value, e.Reason)
}

// parseTimestamp convertit un horodatage SRT "HH:MM:SS,mmm" en time.Duration.
// Les bornes suivent strptime : heures 00-23, minutes et secondes 00-59.
func parseTimestamp(ts string) (time.Duration, error) {
	// la regex garantit la forme ; on re-découpe pour valider les valeurs
	clock, msPart, ok := strings.Cut(ts, ",")
	if !ok {
		return 0, &MalformedTimestampError{Value: ts, Reason: "séparateur des millisecondes absent"}
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, &MalformedTimestampError{Value: ts, Reason: "trois champs HH:MM:SS attendus"}
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h > 23 {
		return 0, &MalformedTimestampError{Value: ts, Reason: "heures hors bornes (00-23)"}
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m > 59 {
		return 0, &MalformedTimestampError{Value: ts, Reason: "minutes hors bornes (00-59)"}
	}
	s, err := strconv.Atoi(parts[2])
	if err != nil || s > 59 {
		return 0, &MalformedTimestampError{Value: ts, Reason: "secondes hors bornes (00-59)"}
	}
	ms, err := strconv.Atoi(msPart)
	if err != nil {
		return 0, &MalformedTimestampError{Value: ts, Reason: "millisecondes invalides"}
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
