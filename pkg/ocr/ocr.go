package ocr

import "context"

// TextExtractor turns a base64-encoded image into the document's full text.
// Implementations fail with domain.ErrNoTextFound both when the provider
// reports an error and when it succeeds with empty text.
type TextExtractor interface {
	ExtractText(ctx context.Context, imageBase64 string) (string, error)
}
