package subtitles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lum1narie/yt-subs-dl/pkg/model"
)

// catalogWith construit un catalogue minimal à partir de listes de codes
// langue : le sélecteur ne regarde que la présence des clés.
func catalogWith(manual, auto []string, defaultLang string) model.TrackCatalog {
	c := model.TrackCatalog{
		Manual:      make(map[string][]model.SubtitleTrack),
		Auto:        make(map[string][]model.SubtitleTrack),
		DefaultLang: defaultLang,
	}
	for _, lang := range manual {
		c.Manual[lang] = []model.SubtitleTrack{{Lang: lang, Source: model.SubSourceManual}}
	}
	for _, lang := range auto {
		c.Auto[lang] = []model.SubtitleTrack{{Lang: lang, Source: model.SubSourceAutomatic}}
	}
	return c
}

func TestSelectLanguage(t *testing.T) {
	// manuels {ja, de}, automatiques {en, de, ja}, langue par défaut "de"
	catalog := catalogWith([]string{"ja", "de"}, []string{"en", "de", "ja"}, "de")

	tests := []struct {
		name          string
		preferDefault bool
		priority      []string
		want          string
	}{
		{
			name:          "langue par défaut manuelle gagne",
			preferDefault: true,
			priority:      []string{"en", "ja"},
			want:          "de",
		},
		{
			name:          "sans préférence défaut, priorité manuelle",
			preferDefault: false,
			priority:      []string{"ja", "de"},
			want:          "ja",
		},
		{
			name:          "manuel préféré à l'auto à rang inférieur",
			preferDefault: false,
			priority:      []string{"en", "ja"},
			want:          "ja",
		},
		{
			name:          "repli sur piste automatique",
			preferDefault: false,
			priority:      []string{"es", "en"},
			want:          "en",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SelectLanguage(catalog, tc.preferDefault, tc.priority)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSelectLanguage_ManualPriorityBeatsAutoDefault(t *testing.T) {
	// la langue par défaut n'existe qu'en automatique : une correspondance
	// manuelle dans la liste de priorité passe devant
	catalog := catalogWith([]string{"ja"}, []string{"en"}, "en")

	got, err := SelectLanguage(catalog, true, []string{"ja"})
	require.NoError(t, err)
	assert.Equal(t, "ja", got)
}

func TestSelectLanguage_AutoDefaultBeatsAutoPriority(t *testing.T) {
	catalog := catalogWith(nil, []string{"en", "fr"}, "fr")

	got, err := SelectLanguage(catalog, true, []string{"en"})
	require.NoError(t, err)
	assert.Equal(t, "fr", got)
}

func TestSelectLanguage_NoMatch(t *testing.T) {
	catalog := catalogWith([]string{"ja", "de"}, []string{"en", "de", "ja"}, "")

	_, err := SelectLanguage(catalog, false, []string{"es", "it"})
	require.Error(t, err)

	var nErr *NoSuitableLanguageError
	require.True(t, errors.As(err, &nErr))
	assert.Equal(t, []string{"de", "ja"}, nErr.Manual)
	assert.Equal(t, []string{"de", "en", "ja"}, nErr.Auto)
	assert.Contains(t, err.Error(), "de, ja")
	assert.Contains(t, err.Error(), "de, en, ja")
}

func TestSelectLanguage_EmptyCatalog(t *testing.T) {
	_, err := SelectLanguage(model.TrackCatalog{}, true, []string{"en"})

	var nErr *NoSuitableLanguageError
	require.True(t, errors.As(err, &nErr))
	assert.Empty(t, nErr.Manual)
	assert.Empty(t, nErr.Auto)
}
