package core

// Document is a unit of persona context: a piece of text describing the
// person being cloned, plus optional source metadata that survives
// splitting and indexing.
type Document struct {
	Content  string
	Metadata map[string]string
}

// NewDocument creates a document with no metadata.
func NewDocument(content string) Document {
	return Document{Content: content}
}
