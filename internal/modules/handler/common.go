package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
	"github.com/caderh/caderh-api/internal/pkg/paging"
)

// writeErr is the single place service errors become HTTP answers.
func writeErr(c *gin.Context, log *zap.Logger, err error) {
	var ve *service.ValidationError
	var nf *service.NotFoundError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, serializer.ParamErr(ve.Msg))
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, serializer.NotFound(nf.Msg))
	default:
		log.Sugar().Errorw("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"user_id", middleware.UserID(c),
			"err", err,
		)
		c.JSON(http.StatusInternalServerError, serializer.ServerErr())
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, serializer.ParamErr(msg))
}

// bindQuery reads the common list query; a missing or out-of-range limit is a 400.
func bindQuery(c *gin.Context) (paging.Query, bool) {
	var q paging.Query
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "")
		return q, false
	}
	if err := q.Validate(); err != nil {
		badRequest(c, "")
		return q, false
	}
	return q, true
}

// bindJSON decodes the body; a malformed body is a 400 with the default message.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		badRequest(c, "")
		return false
	}
	return true
}

func parseUUID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// uuidParam answers 404 with notFoundMsg when the path segment is not a uuid.
func uuidParam(c *gin.Context, name, notFoundMsg string) (uuid.UUID, bool) {
	id, ok := parseUUID(c.Param(name))
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFound(notFoundMsg))
	}
	return id, ok
}

// int64Param answers 400 when the path segment is not a positive integer.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "ID inválido")
		return 0, false
	}
	return id, true
}

// int64Query returns 0 for an absent value and false for a malformed one.
func int64Query(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v < 0 {
		badRequest(c, "")
		return 0, false
	}
	return v, true
}

func isAll(c *gin.Context) bool {
	return c.Query("all") == "true"
}
