package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlirezaFazli29/ocr-app/internal/apierr"
	"github.com/AlirezaFazli29/ocr-app/internal/language"
)

// Recognizer runs classical OCR over in-memory image bytes with a validated
// language code. Implementations must be safe for concurrent calls.
type Recognizer interface {
	Recognize(imageData []byte, lang string) (string, error)
}

type tesseractAPI struct {
	engine Recognizer
}

// NewTesseractRouter builds the classical backend's router.
func NewTesseractRouter(logger *slog.Logger, eng Recognizer, maxUpload int64) *gin.Engine {
	router := newRouter(logger, maxUpload)
	api := &tesseractAPI{engine: eng}
	router.GET("/", root("Tesseract"))
	router.POST("/file-to-base64", fileToBase64)
	router.POST("/ocr", api.ocrUpload)
	router.POST("/ocr_base64", api.ocrBase64)
	router.POST("/ocr_base64_json", api.ocrBase64JSON)
	router.GET("/get_supported_languages", api.supportedLanguages)
	return router
}

func (a *tesseractAPI) ocrUpload(c *gin.Context) {
	lang, aerr := parseLanguage(c.PostForm("language"))
	if aerr != nil {
		abort(c, aerr)
		return
	}
	data, aerr := uploadBytes(c)
	if aerr != nil {
		abort(c, aerr)
		return
	}
	a.run(c, data, lang, msgUpload)
}

func (a *tesseractAPI) ocrBase64(c *gin.Context) {
	lang, aerr := parseLanguage(c.PostForm("language"))
	if aerr != nil {
		abort(c, aerr)
		return
	}
	data, aerr := decodeBase64(c.PostForm("base64_string"))
	if aerr != nil {
		abort(c, aerr)
		return
	}
	a.run(c, data, lang, msgBase64)
}

func (a *tesseractAPI) ocrBase64JSON(c *gin.Context) {
	var req ocrJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, apierr.InvalidInput(msgBase64, err))
		return
	}
	// Language is checked before any image decode work.
	lang, aerr := parseLanguage(req.Language)
	if aerr != nil {
		abort(c, aerr)
		return
	}
	data, aerr := decodeBase64(req.Base64String)
	if aerr != nil {
		abort(c, aerr)
		return
	}
	a.run(c, data, lang, msgBase64)
}

func (a *tesseractAPI) run(c *gin.Context, data []byte, lang language.Language, msg string) {
	if _, aerr := sniffImage(data, msg); aerr != nil {
		abort(c, aerr)
		return
	}
	text, err := a.engine.Recognize(data, lang.Code())
	if err != nil {
		abort(c, apierr.Engine(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"language":       lang.Name(),
		"extracted_text": text,
	})
}

func (a *tesseractAPI) supportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"supported_languages": language.Supported()})
}
