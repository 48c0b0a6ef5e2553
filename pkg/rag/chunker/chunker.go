package chunker

import "strings"

const (
	// Primary loader path: small overlapping word windows.
	DefaultChunkWords   = 500
	DefaultOverlapWords = 50

	// Bulk-refresh path: section-sized windows.
	SectionChunkWords   = 2000
	SectionOverlapWords = 200

	// Chunks shorter than this after trimming carry no retrievable signal.
	MinChunkChars = 50
)

// SplitWords splits content into overlapping word windows of chunkSize words
// with overlap words shared between neighbors.
func SplitWords(content string, chunkSize, overlap int) []string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return nil
	}

	step := chunkSize - overlap
	if step <= 0 {
		step = chunkSize // fallback if overlap >= chunkSize
	}

	var chunks []string
	for i := 0; i < len(words); i += step {
		end := i + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunk := strings.Join(words[i:end], " ")
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(words) {
			break
		}
	}

	return chunks
}

// SplitSections splits a document on "\n##" section markers and windows each
// section with SectionChunkWords/SectionOverlapWords. The marker prefix is
// preserved on the first sub-chunk of every section so retrieval keeps the
// section heading context.
func SplitSections(content string) []string {
	sections := strings.Split(content, "\n##")

	var chunks []string
	for _, section := range sections {
		if strings.TrimSpace(section) == "" {
			continue
		}

		words := strings.Fields(section)
		if len(words) > SectionChunkWords {
			sub := SplitWords(section, SectionChunkWords, SectionOverlapWords)
			for i, chunk := range sub {
				if i == 0 {
					chunk = "##" + chunk
				}
				chunks = append(chunks, chunk)
			}
			continue
		}

		if strings.HasPrefix(section, "##") {
			chunks = append(chunks, section)
		} else {
			chunks = append(chunks, "##"+section)
		}
	}

	return chunks
}

// Meaningful reports whether a chunk survives the minimum-length filter.
func Meaningful(chunk string) bool {
	return len(strings.TrimSpace(chunk)) > MinChunkChars
}
