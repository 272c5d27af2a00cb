package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlirezaFazli29/ocr-app/internal/apierr"
	"github.com/AlirezaFazli29/ocr-app/internal/scratch"
)

// Inferencer converts a staged image file to markdown text. Calls may block
// behind the engine's exclusion gate for arbitrarily long.
type Inferencer interface {
	Infer(ctx context.Context, imagePath string) (string, error)
}

type deepseekAPI struct {
	engine Inferencer
}

// NewDeepSeekRouter builds the transformer backend's router.
func NewDeepSeekRouter(logger *slog.Logger, eng Inferencer, maxUpload int64) *gin.Engine {
	router := newRouter(logger, maxUpload)
	api := &deepseekAPI{engine: eng}
	router.GET("/", root("DeepSeek"))
	router.POST("/file-to-base64", fileToBase64)
	router.POST("/ocr", api.ocrUpload)
	router.POST("/ocr_base64", api.ocrBase64)
	router.POST("/ocr_base64_json", api.ocrBase64JSON)
	return router
}

func (a *deepseekAPI) ocrUpload(c *gin.Context) {
	data, aerr := uploadBytes(c)
	if aerr != nil {
		abort(c, aerr)
		return
	}
	a.run(c, data, msgUpload)
}

func (a *deepseekAPI) ocrBase64(c *gin.Context) {
	data, aerr := decodeBase64(c.PostForm("base64_string"))
	if aerr != nil {
		abort(c, aerr)
		return
	}
	a.run(c, data, msgBase64)
}

func (a *deepseekAPI) ocrBase64JSON(c *gin.Context) {
	var req ocrJSONRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, apierr.InvalidInput(msgBase64, err))
		return
	}
	data, aerr := decodeBase64(req.Base64String)
	if aerr != nil {
		abort(c, aerr)
		return
	}
	a.run(c, data, msgBase64)
}

func (a *deepseekAPI) run(c *gin.Context, data []byte, msg string) {
	info, aerr := sniffImage(data, msg)
	if aerr != nil {
		abort(c, aerr)
		return
	}
	path, cleanup, err := scratch.File(data, info.Ext)
	if err != nil {
		abort(c, apierr.Engine(err))
		return
	}
	defer cleanup()

	// Once inference starts it runs to completion; a client disconnect does
	// not cancel the in-flight engine call or free the gate early.
	text, err := a.engine.Infer(context.WithoutCancel(c.Request.Context()), path)
	if err != nil {
		abort(c, apierr.Engine(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"extracted_text": text})
}
