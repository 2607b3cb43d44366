package subtitles

import "time"

// Segment représente une entrée de sous-titre horodatée : début, fin et texte.
// Les timestamps sont à la résolution milliseconde. Les segments sont
// conservés dans l'ordre du fichier ; aucun re-tri n'est effectué.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string
}
