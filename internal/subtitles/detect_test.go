package subtitles

import "testing"

func TestDetectLanguage_Japanese(t *testing.T) {
	segments := []Segment{
		{Text: "こんにちは、お元気ですか"},
		{Text: "今日はとてもいい天気ですね"},
	}
	if got := DetectLanguage(segments); got != "ja" {
		t.Errorf("DetectLanguage = %q; want %q", got, "ja")
	}
}

func TestDetectLanguage_Empty(t *testing.T) {
	if got := DetectLanguage(nil); got != "" {
		t.Errorf("DetectLanguage(nil) = %q; want \"\"", got)
	}
	if got := DetectLanguage([]Segment{}); got != "" {
		t.Errorf("DetectLanguage([]) = %q; want \"\"", got)
	}
}

func TestDetectLanguage_MajorityVote(t *testing.T) {
	// deux segments japonais contre un segment russe : le japonais l'emporte
	segments := []Segment{
		{Text: "こんにちは、お元気ですか"},
		{Text: "今日はとてもいい天気ですね"},
		{Text: "Привет, как дела сегодня"},
	}
	if got := DetectLanguage(segments); got != "ja" {
		t.Errorf("DetectLanguage = %q; want %q", got, "ja")
	}
}
