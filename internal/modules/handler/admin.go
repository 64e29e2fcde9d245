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

const msgUserNotFound = "Usuario no encontrado"

type AdminHandler struct {
	users service.UserService
	audit service.AuditService
	log   *zap.Logger
}

func NewAdminHandler(users service.UserService, audit service.AuditService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{users: users, audit: audit, log: log}
}

type CreateUserReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type UpdateUserReq struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	// Disabled carries the status label, ACTIVE or DISABLED.
	Disabled string `json:"disabled"`
}

// CreateUser godoc
//
//	@Summary		Create user
//	@Description	Creates an account with a generated password and emails it to the user
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateUserReq	true	"New user"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.OKResponse
//	@Router			/api/admin/user [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	req := CreateUserReq{}
	if !bindJSON(c, &req) {
		return
	}
	u, err := h.users.Create(c.Request.Context(), middleware.UserID(c), service.CreateUserInput{
		Email: req.Email,
		Name:  req.Name,
		Role:  req.Role,
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Created(u.ID))
}

// GetUser godoc
//
//	@Summary	Get user
//	@Tags		admin
//	@Produce	json
//	@Param		id	query	string	true	"User ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.User}
//	@Router		/api/admin/user [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	raw := c.Query("id")
	if strings.TrimSpace(raw) == "" {
		badRequest(c, "")
		return
	}
	id, ok := parseUUID(raw)
	if !ok {
		c.JSON(http.StatusNotFound, serializer.NotFound(msgUserNotFound))
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(u))
}

// ListUsers godoc
//
//	@Summary	List users
//	@Tags		admin
//	@Produce	json
//	@Param		limit	query	int		true	"Page size, 1-100"
//	@Param		offset	query	int		false	"Offset"
//	@Param		search	query	string	false	"Matches email or name"
//	@Param		sort	query	string	false	"Sort column"
//	@Param		desc	query	string	false	"desc for descending"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.User}
//	@Router		/api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	rows, count, err := h.users.List(c.Request.Context(), q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// UpdateUser godoc
//
//	@Summary	Update user
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.UpdateUserReq	true	"User fields"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/admin/user [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	req := UpdateUserReq{}
	if !bindJSON(c, &req) {
		return
	}
	in := service.UpdateUserInput{Name: req.Name, Role: req.Role, Status: req.Disabled}
	if strings.TrimSpace(req.ID) != "" {
		id, ok := parseUUID(req.ID)
		if !ok {
			c.JSON(http.StatusNotFound, serializer.NotFound(msgUserNotFound))
			return
		}
		in.ID = id
	}
	if err := h.users.Update(c.Request.Context(), middleware.UserID(c), in); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// ListLogs godoc
//
//	@Summary	List audit log
//	@Tags		admin
//	@Produce	json
//	@Param		limit	query	int		true	"Page size, 1-100"
//	@Param		offset	query	int		false	"Offset"
//	@Param		user_id	query	string	false	"Only entries by this user"
//	@Param		search	query	string	false	"Matches the log text"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.UserLog}
//	@Router		/api/admin/logs [get]
func (h *AdminHandler) ListLogs(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	var userID *uuid.UUID
	if raw := c.Query("user_id"); strings.TrimSpace(raw) != "" {
		id, ok := parseUUID(raw)
		if !ok {
			badRequest(c, "")
			return
		}
		userID = &id
	}
	rows, count, err := h.audit.ListUserLogs(c.Request.Context(), userID, q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}
