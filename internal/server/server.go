// Package server wires the HTTP APIs of the two OCR backends. Both share one
// request pipeline: decode the input shape into raw bytes, sniff that the
// bytes are a genuine image, then hand off to the engine adapter and format
// the result envelope.
package server

import (
	"encoding/base64"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-contrib/expvar"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	sloggin "github.com/samber/slog-gin"

	"github.com/AlirezaFazli29/ocr-app/internal/apierr"
	"github.com/AlirezaFazli29/ocr-app/internal/imaging"
	"github.com/AlirezaFazli29/ocr-app/internal/language"
)

var validate = validator.New()

func newRouter(logger *slog.Logger, maxUpload int64) *gin.Engine {
	router := gin.New()
	router.Use(sloggin.New(logger), gin.Recovery())
	if maxUpload > 0 {
		router.MaxMultipartMemory = maxUpload
		router.Use(limitBody(maxUpload))
	}
	router.GET("/debug/vars", expvar.Handler())
	return router
}

// limitBody caps the request body at maxUpload bytes. An oversized body makes
// the multipart or JSON read fail, which the handlers surface as a 400 with
// the read error text.
func limitBody(maxUpload int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUpload)
		c.Next()
	}
}

func abort(c *gin.Context, e *apierr.Error) {
	c.AbortWithStatusJSON(e.Status, e.Body)
}

func root(engineName string) gin.HandlerFunc {
	msg := engineName + " OCR Service is running!"
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": msg})
	}
}

// fileToBase64 returns the uploaded file's content as a base64 string.
func fileToBase64(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		abort(c, apierr.Detail("Could not process the uploaded file."))
		return
	}
	data, err := readUpload(header)
	if err != nil {
		abort(c, apierr.Detail("Could not process the uploaded file."))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filename":      header.Filename,
		"base64_string": base64.StdEncoding.EncodeToString(data),
	})
}

func readUpload(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// uploadBytes pulls the "file" part out of a multipart OCR request.
func uploadBytes(c *gin.Context) ([]byte, *apierr.Error) {
	header, err := c.FormFile("file")
	if err != nil {
		return nil, apierr.InvalidInput("Could not process the uploaded file.", err)
	}
	data, err := readUpload(header)
	if err != nil {
		return nil, apierr.InvalidInput("Could not process the uploaded file.", err)
	}
	return data, nil
}

// decodeBase64 turns a base64 form or JSON field into raw image bytes.
func decodeBase64(s string) ([]byte, *apierr.Error) {
	if err := validate.Var(s, "required,base64"); err != nil {
		return nil, apierr.InvalidInput("Could not process the base64 string.", err)
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, apierr.InvalidInput("Could not process the base64 string.", err)
	}
	return data, nil
}

// parseLanguage is the single language validation shared by the form and
// JSON paths.
func parseLanguage(code string) (language.Language, *apierr.Error) {
	l, err := language.Parse(code)
	if err != nil {
		return "", apierr.UnsupportedLanguage(code, language.Codes())
	}
	return l, nil
}

// sniffImage verifies data is a genuine image. msg names the input shape in
// the failure payload so the client sees which decode step broke.
func sniffImage(data []byte, msg string) (imaging.Info, *apierr.Error) {
	info, err := imaging.Sniff(data)
	if err != nil {
		if errors.Is(err, imaging.ErrUnrecognized) {
			return imaging.Info{}, apierr.InvalidImage()
		}
		return imaging.Info{}, apierr.ImageProcessing(msg, err)
	}
	return info, nil
}

const (
	msgUpload = "Could not process the uploaded file."
	msgBase64 = "Could not process the base64 string."
)

type ocrJSONRequest struct {
	Base64String string `json:"base64_string"`
	Language     string `json:"language"`
}
