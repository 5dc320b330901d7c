package media

import "encoding/base64"

// Kind classifies an attachment by how it rides in the model request.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// Attachment is a single local file included alongside the prompt. Bytes are
// read once at request-build time and never retained past the invocation.
type Attachment struct {
	Path      string
	Name      string
	Kind      Kind
	MediaType string // MIME type, e.g. "image/jpeg"
	Data      []byte
}

// Base64 returns the attachment bytes in standard base64 encoding.
func (a *Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

// Textual reports whether the attachment should be inlined as a framed text
// block rather than sent as a binary payload.
func (a *Attachment) Textual() bool {
	return a.Kind == KindDocument && textualTypes[a.MediaType]
}
