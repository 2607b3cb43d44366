package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lum1narie/yt-subs-dl/internal/clipboard"
	"github.com/lum1narie/yt-subs-dl/internal/yt"
)

type terminalUI struct {
	reader *bufio.Reader
}

func NewTerminal() Interface {
	return &terminalUI{reader: bufio.NewReader(os.Stdin)}
}

func (t *terminalUI) GetVideoURL(ctx context.Context) (string, error) {
	// 1) clipboard
	if clip, err := clipboard.ReadAll(); err == nil {
		clip = strings.TrimSpace(clip)
		if yt.IsYouTubeURL(clip) {
			t.PrintError(ctx, fmt.Sprintf("Utilisation de l'URL depuis le presse-papier: %s", clip))
			return clip, nil
		}
	}
	// 2) prompt
	for {
		fmt.Fprint(os.Stderr, "Entrez l'URL d'une vidéo Youtube: ")
		input, err := t.reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("lecture stdin: %w", err)
		}
		url := strings.TrimSpace(input)
		if yt.IsYouTubeURL(url) {
			return url, nil
		}
		fmt.Fprintln(os.Stderr, "❌ URL invalide. Essayez à nouveau.")
	}
}

// PrintInfo écrit sur stdout ; réservé au résultat lui-même.
func (t *terminalUI) PrintInfo(ctx context.Context, s string) {
	fmt.Println(s)
}

// PrintError écrit sur stderr ; diagnostics et messages verbeux,
// le transcript reste seul sur stdout.
func (t *terminalUI) PrintError(ctx context.Context, s string) {
	fmt.Fprintln(os.Stderr, s)
}
