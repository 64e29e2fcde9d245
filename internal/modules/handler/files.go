package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/infra/storage"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

type FileHandler struct {
	svc service.AttachmentService
	log *zap.Logger

	// signer is nil for the local driver, which serves /files statically.
	signer storage.URLSigner
	expire time.Duration
}

func NewFileHandler(s service.AttachmentService, log *zap.Logger) *FileHandler {
	return &FileHandler{svc: s, log: log}
}

// WithSigner enables Redirect with links valid for expire.
func (h *FileHandler) WithSigner(signer storage.URLSigner, expire time.Duration) *FileHandler {
	if expire <= 0 {
		expire = 15 * time.Minute
	}
	h.signer = signer
	h.expire = expire
	return h
}

// Download godoc
//
//	@Summary		Download a stored file by its relative path
//	@Description	Paths containing .. or starting with / are rejected
//	@Tags			files
//	@Produce		octet-stream
//	@Param			file	path	string	true	"Relative path, e.g. projects/<id>/plan.pdf"
//	@Success		200	{file}	binary
//	@Failure		400	{object}	serializer.Message
//	@Failure		404	{object}	serializer.Message
//	@Router			/download/{file} [get]
func (h *FileHandler) Download(c *gin.Context) {
	// the catch-all param always starts with the separating slash
	rel := strings.TrimPrefix(c.Param("file"), "/")
	d, err := h.svc.OpenPath(c.Request.Context(), rel)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	serveDownload(c, d, true)
}

// Redirect godoc
//
//	@Summary	Redirect to a short-lived direct link for a stored file
//	@Tags		files
//	@Param		file	path	string	true	"Relative path"
//	@Success	302
//	@Failure	400	{object}	serializer.Message
//	@Failure	404	{object}	serializer.Message
//	@Router		/files/{file} [get]
func (h *FileHandler) Redirect(c *gin.Context) {
	if h.signer == nil {
		c.JSON(http.StatusNotFound, serializer.NotFound(service.MsgFileNotFound))
		return
	}
	key, err := storage.CleanKey(strings.TrimPrefix(c.Param("file"), "/"))
	if err != nil {
		badRequest(c, "Ruta inválida")
		return
	}
	url, err := h.signer.SignedURL(c.Request.Context(), key, h.expire)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.Redirect(http.StatusFound, url)
}
