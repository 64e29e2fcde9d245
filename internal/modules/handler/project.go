package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

type ProjectHandler struct {
	svc   service.ProjectService
	users service.UserService
	log   *zap.Logger
}

func NewProjectHandler(s service.ProjectService, users service.UserService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{svc: s, users: users, log: log}
}

type AccomplishmentsReq struct {
	// Accomplishments is decoded loosely; malformed entries are dropped, not rejected.
	Accomplishments []interface{} `json:"accomplishments"`
}

type AgentsReq struct {
	UserIDs []string `json:"user_ids"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Description	Rows carry financed_amount and total_expenses in cents
//	@Tags			project
//	@Produce		json
//	@Param			limit	query	int		true	"Page size, 1-100"
//	@Param			offset	query	int		false	"Offset"
//	@Param			status	query	string	false	"ACTIVE (default) or ARCHIVED"
//	@Param			search	query	string	false	"Matches name or description"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.ListResponse{data=[]model.Project}
//	@Router			/api/supervisor/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	rows, count, err := h.svc.List(c.Request.Context(), c.Query("status"), q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// GetProject godoc
//
//	@Summary	Get project
//	@Tags		project
//	@Produce	json
//	@Param		id	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.Project}
//	@Router		/api/supervisor/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(p))
}

// DeleteProject godoc
//
//	@Summary	Delete project
//	@Tags		project
//	@Produce	json
//	@Param		id	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// ArchiveProject godoc
//
//	@Summary	Archive project
//	@Tags		project
//	@Produce	json
//	@Param		id	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/projects/{id}/archive [patch]
func (h *ProjectHandler) ArchiveProject(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	if err := h.svc.Archive(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// UpdateAccomplishments godoc
//
//	@Summary	Replace project accomplishments
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string						true	"Project ID"
//	@Param		payload	body	handler.AccomplishmentsReq	true	"Accomplishments"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/projects/{id}/accomplishments [patch]
func (h *ProjectHandler) UpdateAccomplishments(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	req := AccomplishmentsReq{}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.UpdateAccomplishments(c.Request.Context(), middleware.UserID(c), id, req.Accomplishments); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// GetProjectAgents godoc
//
//	@Summary	List agents assigned to a project
//	@Tags		project
//	@Produce	json
//	@Param		id	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.UserOption}
//	@Router		/api/supervisor/projects/{id}/agents [get]
func (h *ProjectHandler) GetProjectAgents(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	rows, err := h.svc.ListAgents(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// PutProjectAgents godoc
//
//	@Summary	Replace agents assigned to a project
//	@Tags		project
//	@Accept		json
//	@Produce	json
//	@Param		id		path	string				true	"Project ID"
//	@Param		payload	body	handler.AgentsReq	true	"USER ids"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/projects/{id}/agents [put]
func (h *ProjectHandler) PutProjectAgents(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	req := AgentsReq{}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.ReplaceAgents(c.Request.Context(), middleware.UserID(c), id, req.UserIDs); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// ListProjectLogs godoc
//
//	@Summary	List a project's audit trail
//	@Tags		project
//	@Produce	json
//	@Param		id		path	string	true	"Project ID"
//	@Param		limit	query	int		true	"Page size, 1-100"
//	@Param		offset	query	int		false	"Offset"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.ProjectLog}
//	@Router		/api/supervisor/projects/{id}/logs [get]
func (h *ProjectHandler) ListProjectLogs(c *gin.Context) {
	id, ok := uuidParam(c, "id", service.MsgProjectNotFound)
	if !ok {
		return
	}
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	rows, count, err := h.svc.ListLogs(c.Request.Context(), id, q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// ListAgentOptions godoc
//
//	@Summary	List USER accounts that can be assigned to projects
//	@Tags		project
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.UserOption}
//	@Router		/api/supervisor/agents [get]
func (h *ProjectHandler) ListAgentOptions(c *gin.Context) {
	rows, err := h.users.ListAgents(c.Request.Context())
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}
