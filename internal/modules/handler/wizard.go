package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

const msgRecordNotFound = "Registro no encontrado"

// WizardHandler serves the five project wizard steps and the single-item
// edits of the project detail view.
type WizardHandler struct {
	projects service.ProjectService
	items    service.ProjectItemService
	files    service.AttachmentService
	log      *zap.Logger
}

func NewWizardHandler(projects service.ProjectService, items service.ProjectItemService, files service.AttachmentService, log *zap.Logger) *WizardHandler {
	return &WizardHandler{projects: projects, items: items, files: files, log: log}
}

type Step1Req struct {
	ProjectID       string        `json:"project_id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Objectives      string        `json:"objectives"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date"`
	Accomplishments []interface{} `json:"accomplishments"`
	ProjectCategory string        `json:"project_category"`
	AssignedAgentID string        `json:"assigned_agent_id"`
}

type Step1Resp struct {
	ProjectID uuid.UUID `json:"project_id"`
}

type FinancingItemsReq struct {
	Items []service.FinancingItemInput `json:"items"`
}

type DonationItemsReq struct {
	Items []service.DonationItemInput `json:"items"`
}

type ExpenseItemsReq struct {
	Items []service.ExpenseItemInput `json:"items"`
}

type UploadResp struct {
	OK     bool      `json:"ok"`
	FileID uuid.UUID `json:"file_id"`
}

// bindItems reports decode failures, such as a non-numeric amount, with the step's item message.
func bindItems(c *gin.Context, v interface{}, msg string) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		badRequest(c, msg)
		return false
	}
	return true
}

func (h *WizardHandler) projectParam(c *gin.Context) (uuid.UUID, bool) {
	return uuidParam(c, "projectId", service.MsgProjectNotFound)
}

// Step1 godoc
//
//	@Summary		Create or update a project's core data
//	@Description	Updates when project_id is set, creates otherwise
//	@Tags			wizard
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.Step1Req	true	"Project core data"
//	@Security		BearerAuth
//	@Success		200		{object}	handler.Step1Resp
//	@Router			/api/supervisor/project/wizard/step1 [post]
func (h *WizardHandler) Step1(c *gin.Context) {
	req := Step1Req{}
	if !bindJSON(c, &req) {
		return
	}
	in := service.ProjectCoreInput{
		Name:            req.Name,
		Description:     req.Description,
		Objectives:      req.Objectives,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Accomplishments: req.Accomplishments,
		ProjectCategory: req.ProjectCategory,
	}
	if strings.TrimSpace(req.ProjectID) != "" {
		id, ok := parseUUID(req.ProjectID)
		if !ok {
			c.JSON(http.StatusNotFound, serializer.NotFound(service.MsgProjectNotFound))
			return
		}
		in.ProjectID = &id
	}
	if strings.TrimSpace(req.AssignedAgentID) != "" {
		id, ok := parseUUID(req.AssignedAgentID)
		if !ok {
			badRequest(c, "El usuario seleccionado no existe")
			return
		}
		in.AssignedAgentID = &id
	}

	id, err := h.projects.SaveCore(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, Step1Resp{ProjectID: id})
}

// GetStep2 godoc
//
//	@Summary	List a project's financing sources
//	@Tags		wizard
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.ProjectFinancingSource}
//	@Router		/api/supervisor/project/wizard/step2/{projectId} [get]
func (h *WizardHandler) GetStep2(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	rows, err := h.items.ListFinancingSources(c.Request.Context(), projectID)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// PutStep2 godoc
//
//	@Summary		Replace a project's financing sources
//	@Description	The whole batch is validated before anything is written
//	@Tags			wizard
//	@Accept			json
//	@Produce		json
//	@Param			projectId	path	string						true	"Project ID"
//	@Param			payload		body	handler.FinancingItemsReq	true	"Items"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.OKResponse
//	@Router			/api/supervisor/project/wizard/step2/{projectId} [put]
func (h *WizardHandler) PutStep2(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	req := FinancingItemsReq{}
	if !bindItems(c, &req, service.MsgFinancingItem) {
		return
	}
	if err := h.items.ReplaceFinancingSources(c.Request.Context(), middleware.UserID(c), projectID, req.Items); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// GetStep3 godoc
//
//	@Summary	List a project's donations
//	@Tags		wizard
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.ProjectDonation}
//	@Router		/api/supervisor/project/wizard/step3/{projectId} [get]
func (h *WizardHandler) GetStep3(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	rows, err := h.items.ListDonations(c.Request.Context(), projectID)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// PutStep3 godoc
//
//	@Summary	Replace a project's donations
//	@Tags		wizard
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path	string						true	"Project ID"
//	@Param		payload		body	handler.DonationItemsReq	true	"Items"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/wizard/step3/{projectId} [put]
func (h *WizardHandler) PutStep3(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	req := DonationItemsReq{}
	if !bindItems(c, &req, service.MsgDonationItem) {
		return
	}
	if err := h.items.ReplaceDonations(c.Request.Context(), middleware.UserID(c), projectID, req.Items); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// GetStep4 godoc
//
//	@Summary	List a project's expenses
//	@Tags		wizard
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.ProjectExpense}
//	@Router		/api/supervisor/project/wizard/step4/{projectId} [get]
func (h *WizardHandler) GetStep4(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	rows, err := h.items.ListExpenses(c.Request.Context(), projectID)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// PutStep4 godoc
//
//	@Summary	Replace a project's expenses
//	@Tags		wizard
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path	string					true	"Project ID"
//	@Param		payload		body	handler.ExpenseItemsReq	true	"Items"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/wizard/step4/{projectId} [put]
func (h *WizardHandler) PutStep4(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	req := ExpenseItemsReq{}
	if !bindItems(c, &req, service.MsgExpenseItem) {
		return
	}
	if err := h.items.ReplaceExpenses(c.Request.Context(), middleware.UserID(c), projectID, req.Items); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// GetStep5 godoc
//
//	@Summary	List a project's files
//	@Tags		wizard
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.ProjectFile}
//	@Router		/api/supervisor/project/wizard/step5/{projectId} [get]
func (h *WizardHandler) GetStep5(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	rows, err := h.files.List(c.Request.Context(), projectID)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// PostStep5 godoc
//
//	@Summary		Upload one project file
//	@Description	Allowed extensions: pdf, docx, xlsx, jpg, jpeg, png
//	@Tags			wizard
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			projectId	path		string	true	"Project ID"
//	@Param			file		formData	file	true	"File"
//	@Param			filename	formData	string	false	"Stored name, without extension"
//	@Param			description	formData	string	false	"Description"
//	@Security		BearerAuth
//	@Success		200	{object}	handler.UploadResp
//	@Router			/api/supervisor/project/wizard/step5/{projectId} [post]
func (h *WizardHandler) PostStep5(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, service.MsgMissingFile)
		return
	}
	fileID, err := h.files.Upload(c.Request.Context(), middleware.UserID(c), projectID, service.UploadInput{
		File:        fh,
		Filename:    c.PostForm("filename"),
		Description: c.PostForm("description"),
	})
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, UploadResp{OK: true, FileID: fileID})
}

// DeleteStep5 godoc
//
//	@Summary	Delete one project file
//	@Tags		wizard
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Param		fileId		path	string	true	"File ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/wizard/step5/{projectId}/{fileId} [delete]
func (h *WizardHandler) DeleteStep5(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	fileID, ok := uuidParam(c, "fileId", service.MsgFileNotFound)
	if !ok {
		return
	}
	if err := h.files.Delete(c.Request.Context(), middleware.UserID(c), projectID, fileID); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// DownloadProjectFile godoc
//
//	@Summary	Download a project file as an attachment
//	@Tags		wizard
//	@Produce	octet-stream
//	@Param		projectId	path	string	true	"Project ID"
//	@Param		fileId		path	string	true	"File ID"
//	@Security	BearerAuth
//	@Success	200	{file}	binary
//	@Router		/api/supervisor/project/{projectId}/file/{fileId}/download [get]
func (h *WizardHandler) DownloadProjectFile(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	fileID, ok := uuidParam(c, "fileId", service.MsgFileNotFound)
	if !ok {
		return
	}
	d, err := h.files.Open(c.Request.Context(), projectID, fileID)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	serveDownload(c, d, true)
}

// serveDownload streams d and closes it.
func serveDownload(c *gin.Context, d *service.Download, attachment bool) {
	defer d.Body.Close()
	headers := map[string]string{}
	if attachment {
		headers["Content-Disposition"] = fmt.Sprintf("attachment; filename=%q", d.Name)
	}
	contentType := d.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, d.Size, contentType, d.Body, headers)
}

// AddFinancingSource godoc
//
//	@Summary	Add one financing source to a project
//	@Tags		project-detail
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path	string						true	"Project ID"
//	@Param		payload		body	service.FinancingItemInput	true	"Item"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/{projectId}/financing-source [post]
func (h *WizardHandler) AddFinancingSource(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	req := service.FinancingItemInput{}
	if !bindItems(c, &req, service.MsgFinancingItem) {
		return
	}
	id, err := h.items.AddFinancingSource(c.Request.Context(), middleware.UserID(c), projectID, req)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// DeleteFinancingSource godoc
//
//	@Summary	Remove one financing source from a project
//	@Tags		project-detail
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Param		id			path	string	true	"Row ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/{projectId}/financing-source/{id} [delete]
func (h *WizardHandler) DeleteFinancingSource(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", msgRecordNotFound)
	if !ok {
		return
	}
	if err := h.items.DeleteFinancingSource(c.Request.Context(), middleware.UserID(c), projectID, id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// AddDonation godoc
//
//	@Summary	Add one donation to a project
//	@Tags		project-detail
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path	string						true	"Project ID"
//	@Param		payload		body	service.DonationItemInput	true	"Item"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/{projectId}/donation [post]
func (h *WizardHandler) AddDonation(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	req := service.DonationItemInput{}
	if !bindItems(c, &req, service.MsgDonationItem) {
		return
	}
	id, err := h.items.AddDonation(c.Request.Context(), middleware.UserID(c), projectID, req)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// DeleteDonation godoc
//
//	@Summary	Remove one donation from a project
//	@Tags		project-detail
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Param		id			path	string	true	"Row ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/{projectId}/donation/{id} [delete]
func (h *WizardHandler) DeleteDonation(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", msgRecordNotFound)
	if !ok {
		return
	}
	if err := h.items.DeleteDonation(c.Request.Context(), middleware.UserID(c), projectID, id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// AddExpense godoc
//
//	@Summary	Add one expense to a project
//	@Tags		project-detail
//	@Accept		json
//	@Produce	json
//	@Param		projectId	path	string						true	"Project ID"
//	@Param		payload		body	service.ExpenseItemInput	true	"Item"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/{projectId}/expense [post]
func (h *WizardHandler) AddExpense(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	req := service.ExpenseItemInput{}
	if !bindItems(c, &req, service.MsgExpenseItem) {
		return
	}
	id, err := h.items.AddExpense(c.Request.Context(), middleware.UserID(c), projectID, req)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// DeleteExpense godoc
//
//	@Summary	Remove one expense from a project
//	@Tags		project-detail
//	@Produce	json
//	@Param		projectId	path	string	true	"Project ID"
//	@Param		id			path	string	true	"Row ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/supervisor/project/{projectId}/expense/{id} [delete]
func (h *WizardHandler) DeleteExpense(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", msgRecordNotFound)
	if !ok {
		return
	}
	if err := h.items.DeleteExpense(c.Request.Context(), middleware.UserID(c), projectID, id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}
