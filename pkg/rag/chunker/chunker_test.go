package chunker

import (
	"strings"
	"testing"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "word"
	}
	return strings.Join(parts, " ")
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		chunkSize  int
		overlap    int
		wantChunks int
	}{
		{
			name:       "short content single chunk",
			content:    "only a few words here",
			chunkSize:  500,
			overlap:    50,
			wantChunks: 1,
		},
		{
			name:       "exact window",
			content:    words(500),
			chunkSize:  500,
			overlap:    50,
			wantChunks: 1,
		},
		{
			name:       "two overlapping windows",
			content:    words(600),
			chunkSize:  500,
			overlap:    50,
			wantChunks: 2,
		},
		{
			name:       "empty content",
			content:    "   ",
			chunkSize:  500,
			overlap:    50,
			wantChunks: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.content, tt.chunkSize, tt.overlap)
			if len(got) != tt.wantChunks {
				t.Errorf("chunk count = %d, want %d", len(got), tt.wantChunks)
			}
		})
	}
}

func TestSplitWordsOverlap(t *testing.T) {
	content := "a b c d e f g h i j"
	got := SplitWords(content, 4, 2)

	if len(got) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(got))
	}
	if got[0] != "a b c d" {
		t.Errorf("first chunk = %q", got[0])
	}
	// Second window starts step = chunkSize - overlap = 2 words in
	if got[1] != "c d e f" {
		t.Errorf("second chunk = %q, overlap not preserved", got[1])
	}
}

func TestSplitSections(t *testing.T) {
	content := "intro text before any marker\n## Products\nPALMS WMS and more\n## Pricing\ndepends on size"
	got := SplitSections(content)

	if len(got) != 3 {
		t.Fatalf("section count = %d, want 3", len(got))
	}
	for i, chunk := range got {
		if !strings.HasPrefix(chunk, "##") {
			t.Errorf("chunk %d missing section marker prefix: %q", i, chunk[:20])
		}
	}
}

func TestSplitSectionsLargeSection(t *testing.T) {
	content := "\n## Big\n" + words(SectionChunkWords+500)
	got := SplitSections(content)

	if len(got) < 2 {
		t.Fatalf("large section should be windowed, got %d chunks", len(got))
	}
	if !strings.HasPrefix(got[0], "##") {
		t.Errorf("first sub-chunk lost marker prefix")
	}
	if strings.HasPrefix(got[1], "##") {
		t.Errorf("only the first sub-chunk should carry the marker prefix")
	}
}

func TestMeaningful(t *testing.T) {
	if Meaningful("   short   ") {
		t.Error("short chunk should be discarded")
	}
	if !Meaningful(words(20)) {
		t.Error("long chunk should survive")
	}
}
