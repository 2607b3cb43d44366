package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lum1narie/yt-subs-dl/internal/config"
	"github.com/lum1narie/yt-subs-dl/internal/subtitles"
	"github.com/lum1narie/yt-subs-dl/internal/yt"
)

// fakeUI : implémentation muette de ui.Interface pour les tests.
type fakeUI struct {
	errors []string
}

func (f *fakeUI) GetVideoURL(ctx context.Context) (string, error) { return "", nil }

func (f *fakeUI) PrintInfo(ctx context.Context, s string) {}

func (f *fakeUI) PrintError(ctx context.Context, s string) { f.errors = append(f.errors, s) }

// fakeYt renvoie des payloads JSON préparés à la place d'un vrai yt-dlp.
type fakeYt struct {
	metaJSON string
	subJSON  string
}

func (f *fakeYt) CheckBinary() error { return nil }

func (f *fakeYt) GetVersion(ctx context.Context) (string, error) { return "2025.01.01", nil }

func (f *fakeYt) ExtractRaw(ctx context.Context, url string) (*yt.ExtractedRaw, error) {
	return &yt.ExtractedRaw{JSON: []byte(f.metaJSON)}, nil
}

func (f *fakeYt) ExtractSubtitleInfo(ctx context.Context, url, lang string) (*yt.ExtractedRaw, error) {
	return &yt.ExtractedRaw{JSON: []byte(f.subJSON)}, nil
}

const testMetaJSON = `{
  "id": "abc123",
  "title": "Test video",
  "uploader": "Chan",
  "language": "en",
  "subtitles": {
    "en": [{"ext": "srt", "url": "https://example.com/en.srt"}]
  },
  "automatic_captions": {
    "ja": [{"ext": "srt", "url": "https://example.com/ja.srt"}]
  }
}`

const testSubJSON = `{
  "requested_subtitles": {
    "en": {"ext": "srt", "url": "https://example.com/en-req.srt"}
  }
}`

const testSRT = "1\n" +
	"00:00:00,000 --> 00:00:02,000\n" +
	"Hello\n" +
	"\n" +
	"2\n" +
	"00:00:03,000 --> 00:00:05,000\n" +
	"world\n" +
	"\n" +
	"3\n" +
	"00:00:15,000 --> 00:00:17,000\n" +
	"New paragraph\n"

// newTestApp construit une App entièrement injectée : aucun binaire yt-dlp,
// aucun réseau.
func newTestApp(cfg *config.Config, flags *CLIFlags, srt string) (*App, *bytes.Buffer, *fakeUI) {
	out := &bytes.Buffer{}
	fui := &fakeUI{}
	a := &App{
		cfg:      cfg,
		ui:       fui,
		flags:    flags,
		ytClient: &fakeYt{metaJSON: testMetaJSON, subJSON: testSubJSON},
		out:      out,
		fetchText: func(ctx context.Context, url string, timeout time.Duration, maxBytes int64) (string, error) {
			return srt, nil
		},
	}
	return a, out, fui
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Threshold:         5.0,
		Languages:         "ja,en",
		PreferDefaultLang: true,
		OutputDir:         ".",
	}
	return cfg
}

func TestRun_ReflowedOutput(t *testing.T) {
	a, out, _ := newTestApp(testConfig(), &CLIFlags{URL: "https://youtu.be/abc123"}, testSRT)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	want := "Hello world\nNew paragraph\n"
	if got := out.String(); got != want {
		t.Errorf("sortie = %q; want %q", got, want)
	}
}

func TestRun_RawOutput(t *testing.T) {
	a, out, _ := newTestApp(testConfig(), &CLIFlags{URL: "https://youtu.be/abc123", Raw: true}, testSRT)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got := out.String(); got != testSRT+"\n" {
		t.Errorf("sortie brute = %q; want le SRT inchangé", got)
	}
}

func TestRun_LanguageSelectionFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Languages = "es,it"
	cfg.PreferDefaultLang = false

	a, _, _ := newTestApp(cfg, &CLIFlags{URL: "https://youtu.be/abc123"}, testSRT)

	err := a.Run(context.Background())
	var nErr *subtitles.NoSuitableLanguageError
	if !errors.As(err, &nErr) {
		t.Fatalf("err = %v; want *NoSuitableLanguageError", err)
	}
	if len(nErr.Manual) != 1 || nErr.Manual[0] != "en" {
		t.Errorf("Manual = %v; want [en]", nErr.Manual)
	}
	if len(nErr.Auto) != 1 || nErr.Auto[0] != "ja" {
		t.Errorf("Auto = %v; want [ja]", nErr.Auto)
	}
}

func TestRun_EmptySubtitleContent(t *testing.T) {
	a, _, _ := newTestApp(testConfig(), &CLIFlags{URL: "https://youtu.be/abc123"}, "")

	if err := a.Run(context.Background()); err == nil {
		t.Fatal("erreur attendue pour un contenu de sous-titres vide")
	}
}

func TestRun_FetchErrorPropagated(t *testing.T) {
	a, _, _ := newTestApp(testConfig(), &CLIFlags{URL: "https://youtu.be/abc123"}, testSRT)
	a.fetchText = func(ctx context.Context, url string, timeout time.Duration, maxBytes int64) (string, error) {
		return "", fmt.Errorf("boom")
	}

	err := a.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("err = %v; want une erreur enveloppant 'boom'", err)
	}
}

func TestRun_SaveTranscript(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.SaveTranscript = true
	cfg.OutputDir = dir

	a, _, _ := newTestApp(cfg, &CLIFlags{URL: "https://youtu.be/abc123"}, testSRT)

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Test video.txt"))
	if err != nil {
		t.Fatalf("lecture du transcript : %v", err)
	}
	if want := "Hello world\nNew paragraph\n"; string(data) != want {
		t.Errorf("transcript = %q; want %q", data, want)
	}
}

func TestSaveTranscript_EmptyContent(t *testing.T) {
	if _, err := SaveTranscript("title", "", t.TempDir()); err == nil {
		t.Fatal("erreur attendue pour un transcript vide")
	}
}

func TestSaveTranscript_SanitizesTitle(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveTranscript("A/B: C?", "content", dir)
	if err != nil {
		t.Fatalf("SaveTranscript error: %v", err)
	}
	if got := filepath.Base(path); got != "A B- C.txt" {
		t.Errorf("nom de fichier = %q; want %q", got, "A B- C.txt")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("fichier absent : %v", err)
	}
}
