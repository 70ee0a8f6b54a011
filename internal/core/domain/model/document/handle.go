package document

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentTypePDF is the media type of every composed document.
const ContentTypePDF = "application/pdf"

// Handle is a fully composed document, ready for download.
type Handle struct {
	Filename    string
	ContentType string
	Content     []byte
	Pages       int
	Checksum    string
}

// NewHandle computes the SHA-256 checksum of content.
func NewHandle(filename string, content []byte, pages int) Handle {
	sum := sha256.Sum256(content)
	return Handle{
		Filename:    filename,
		ContentType: ContentTypePDF,
		Content:     content,
		Pages:       pages,
		Checksum:    hex.EncodeToString(sum[:]),
	}
}

func (h Handle) Size() int {
	return len(h.Content)
}
