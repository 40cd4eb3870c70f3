package mime

import "testing"

func TestNewTotalFunction(t *testing.T) {
	cases := map[string]Kind{
		"inode/directory":    Dir,
		"application/json":   JSON,
		"text/plain":         Text,
		"text/x-go":          Text,
		"image/png":          Image,
		"video/mp4":          Video,
		"application/pdf":    PDF,
		"application/zip":    Archive,
		"application/x-random": Others,
		"":                   Others,
	}

	for input, want := range cases {
		if got := New(input); got != want {
			t.Errorf("New(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCanonicalRoundTripIsIdempotent(t *testing.T) {
	kinds := []Kind{Dir, JSON, Text, Image, Video, PDF, Archive, Others}
	for _, k := range kinds {
		if got := New(k.Canonical()); got != k {
			t.Errorf("New(%v.Canonical()) = %v, want %v", k, got, k)
		}
	}
}
