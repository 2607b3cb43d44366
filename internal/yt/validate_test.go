package yt

import "testing"

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://youtu.be/dQw4w9WgXcQ", true},
		{"HTTPS://WWW.YOUTUBE.COM/WATCH?V=abc", true},
		{"https://example.com/watch?v=abc", false},
		{"youtube.com/watch?v=abc", false},
		{"", false},
	}

	for _, tc := range tests {
		if got := IsYouTubeURL(tc.in); got != tc.want {
			t.Errorf("IsYouTubeURL(%q) = %v; want %v", tc.in, got, tc.want)
		}
	}
}
