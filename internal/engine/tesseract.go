// Package engine adapts the two OCR engines. The classical Tesseract adapter
// is stateless and safe for unlimited concurrent calls; the DeepSeek adapter
// serializes access to a single resident model instance.
package engine

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract runs classical OCR through the gosseract binding. A fresh client
// is created per call; the binding must not be shared across goroutines.
type Tesseract struct{}

func NewTesseract() *Tesseract {
	return &Tesseract{}
}

// Recognize extracts text from in-memory image bytes using the given
// language code. The code must already be validated against the supported
// set. Single attempt, no retry.
func (t *Tesseract) Recognize(imageData []byte, lang string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return "", fmt.Errorf("set tesseract language %q: %w", lang, err)
	}
	if err := client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("load image into tesseract: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("tesseract recognition: %w", err)
	}
	return text, nil
}
