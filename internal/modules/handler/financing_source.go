package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

const msgSourceNotFound = "Fuente de financiamiento no encontrada"

type FinancingSourceHandler struct {
	svc service.FinancingSourceService
	log *zap.Logger
}

func NewFinancingSourceHandler(s service.FinancingSourceService, log *zap.Logger) *FinancingSourceHandler {
	return &FinancingSourceHandler{svc: s, log: log}
}

type FinancingSourceReq struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// sourceID maps an empty id to uuid.Nil so the service reports missing fields,
// and a malformed one to 404.
func (h *FinancingSourceHandler) sourceID(c *gin.Context, raw string) (uuid.UUID, bool) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, true
	}
	id, ok := parseUUID(raw)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFound(msgSourceNotFound))
	}
	return id, ok
}

// CreateFinancingSource godoc
//
//	@Summary	Create financing source
//	@Tags		financing-source
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.FinancingSourceReq	true	"Name and description"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/financing-source [post]
func (h *FinancingSourceHandler) CreateFinancingSource(c *gin.Context) {
	req := FinancingSourceReq{}
	if !bindJSON(c, &req) {
		return
	}
	fs, err := h.svc.Create(c.Request.Context(), middleware.UserID(c), service.FinancingSourceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Created(fs.ID))
}

// GetFinancingSource godoc
//
//	@Summary	Get financing source
//	@Tags		financing-source
//	@Produce	json
//	@Param		id	query	string	true	"Financing source ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.FinancingSource}
//	@Router		/api/supervisor/financing-source [get]
func (h *FinancingSourceHandler) GetFinancingSource(c *gin.Context) {
	raw := c.Query("id")
	if strings.TrimSpace(raw) == "" {
		badRequest(c, "")
		return
	}
	id, ok := h.sourceID(c, raw)
	if !ok {
		return
	}
	fs, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(fs))
}

// ListFinancingSources godoc
//
//	@Summary		List financing sources
//	@Description	all=true returns every source as {id,name} ordered by name, without paging
//	@Tags			financing-source
//	@Produce		json
//	@Param			limit	query	int		false	"Page size, 1-100"
//	@Param			offset	query	int		false	"Offset"
//	@Param			search	query	string	false	"Matches name or description"
//	@Param			all		query	bool	false	"Options projection"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.ListResponse{data=[]model.FinancingSource}
//	@Router			/api/supervisor/financing-sources [get]
func (h *FinancingSourceHandler) ListFinancingSources(c *gin.Context) {
	if isAll(c) {
		rows, err := h.svc.Options(c.Request.Context())
		if err != nil {
			writeErr(c, h.log, err)
			return
		}
		c.JSON(http.StatusOK, serializer.Data(rows))
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	rows, count, err := h.svc.List(c.Request.Context(), q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// UpdateFinancingSource godoc
//
//	@Summary	Update financing source
//	@Tags		financing-source
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.FinancingSourceReq	true	"ID, name and description"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/financing-source [put]
func (h *FinancingSourceHandler) UpdateFinancingSource(c *gin.Context) {
	req := FinancingSourceReq{}
	if !bindJSON(c, &req) {
		return
	}
	id, ok := h.sourceID(c, req.ID)
	if !ok {
		return
	}
	err := h.svc.Update(c.Request.Context(), middleware.UserID(c), id, service.FinancingSourceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// DeleteFinancingSource godoc
//
//	@Summary		Delete financing source
//	@Description	Refused while any project still references the source
//	@Tags			financing-source
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.FinancingSourceReq	true	"ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.OKResponse
//	@Router			/api/supervisor/financing-source [delete]
func (h *FinancingSourceHandler) DeleteFinancingSource(c *gin.Context) {
	req := FinancingSourceReq{}
	if !bindJSON(c, &req) {
		return
	}
	id, ok := h.sourceID(c, req.ID)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}
