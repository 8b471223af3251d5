package md2rtf

import "errors"

// Sentinel errors for library operations.
var (
	ErrNoDocuments = errors.New("no documents to convert")
	ErrHTMLPreview = errors.New("HTML preview rendering failed")
)
