package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

// CentrosHandler serves areas, geographic catalogs and training centers.
type CentrosHandler struct {
	catalogs service.CatalogService
	centros  service.CentroService
	log      *zap.Logger
}

func NewCentrosHandler(catalogs service.CatalogService, centros service.CentroService, log *zap.Logger) *CentrosHandler {
	return &CentrosHandler{catalogs: catalogs, centros: centros, log: log}
}

type AreaReq struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

// ListAreas godoc
//
//	@Summary		List areas
//	@Description	all=true returns every active area as {id,nombre} without paging
//	@Tags			centros
//	@Produce		json
//	@Param			limit	query	int		false	"Page size, 1-100"
//	@Param			offset	query	int		false	"Offset"
//	@Param			search	query	string	false	"Matches nombre"
//	@Param			all		query	bool	false	"Options projection"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.ListResponse{data=[]model.Area}
//	@Router			/api/centros/areas [get]
func (h *CentrosHandler) ListAreas(c *gin.Context) {
	if isAll(c) {
		rows, err := h.catalogs.AreaOptions(c.Request.Context())
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
	rows, count, err := h.catalogs.ListAreas(c.Request.Context(), q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// CreateArea godoc
//
//	@Summary	Create area
//	@Tags		centros
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.AreaReq	true	"Nombre"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/centros/areas [post]
func (h *CentrosHandler) CreateArea(c *gin.Context) {
	req := AreaReq{}
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.catalogs.CreateArea(c.Request.Context(), middleware.UserID(c), req.Nombre)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// UpdateArea godoc
//
//	@Summary	Rename area
//	@Tags		centros
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	handler.AreaReq	true	"ID and nombre"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/areas [put]
func (h *CentrosHandler) UpdateArea(c *gin.Context) {
	req := AreaReq{}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.catalogs.UpdateArea(c.Request.Context(), middleware.UserID(c), req.ID, req.Nombre); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// DeleteArea godoc
//
//	@Summary	Deactivate area
//	@Tags		centros
//	@Produce	json
//	@Param		id	path	int	true	"Area ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/areas/{id} [delete]
func (h *CentrosHandler) DeleteArea(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.catalogs.DeleteArea(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// ListDepartamentos godoc
//
//	@Summary	List departamentos
//	@Tags		centros
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.CatalogItem}
//	@Router		/api/centros/departamentos [get]
func (h *CentrosHandler) ListDepartamentos(c *gin.Context) {
	rows, err := h.catalogs.Departamentos(c.Request.Context())
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// ListMunicipios godoc
//
//	@Summary	List municipios
//	@Tags		centros
//	@Produce	json
//	@Param		departamento_id	query	int	false	"Only municipios of this departamento"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.Municipio}
//	@Router		/api/centros/municipios [get]
func (h *CentrosHandler) ListMunicipios(c *gin.Context) {
	depID, ok := int64Query(c, "departamento_id")
	if !ok {
		return
	}
	rows, err := h.catalogs.Municipios(c.Request.Context(), depID)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// ListNiveles godoc
//
//	@Summary	List niveles de escolaridad
//	@Tags		centros
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=[]model.CatalogItem}
//	@Router		/api/centros/niveles-escolaridad [get]
func (h *CentrosHandler) ListNiveles(c *gin.Context) {
	rows, err := h.catalogs.Niveles(c.Request.Context())
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(rows))
}

// ListCentros godoc
//
//	@Summary	List centros
//	@Tags		centros
//	@Produce	json
//	@Param		limit	query	int		false	"Page size, 1-100"
//	@Param		offset	query	int		false	"Offset"
//	@Param		search	query	string	false	"Matches nombre, siglas or codigo"
//	@Param		estatus	query	int		false	"0 lists inactive centros"
//	@Param		all		query	bool	false	"Options projection"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.Centro}
//	@Router		/api/centros/centros [get]
func (h *CentrosHandler) ListCentros(c *gin.Context) {
	if isAll(c) {
		rows, err := h.centros.Options(c.Request.Context())
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
	estatus := model.EstatusActive
	if c.Query("estatus") == "0" {
		estatus = model.EstatusInactive
	}
	rows, count, err := h.centros.List(c.Request.Context(), estatus, q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// GetCentro godoc
//
//	@Summary	Get centro
//	@Tags		centros
//	@Produce	json
//	@Param		id	path	int	true	"Centro ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.Centro}
//	@Router		/api/centros/centros/{id} [get]
func (h *CentrosHandler) GetCentro(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	row, err := h.centros.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(row))
}

// CreateCentro godoc
//
//	@Summary	Create centro
//	@Tags		centros
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	service.CentroInput	true	"Centro"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/centros/centros [post]
func (h *CentrosHandler) CreateCentro(c *gin.Context) {
	in := service.CentroInput{}
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.centros.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// UpdateCentro godoc
//
//	@Summary	Update centro
//	@Tags		centros
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int					true	"Centro ID"
//	@Param		payload	body	service.CentroInput	true	"Centro"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/centros/{id} [put]
func (h *CentrosHandler) UpdateCentro(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	in := service.CentroInput{}
	if !bindJSON(c, &in) {
		return
	}
	if err := h.centros.Update(c.Request.Context(), middleware.UserID(c), id, in); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// DeleteCentro godoc
//
//	@Summary	Deactivate centro
//	@Tags		centros
//	@Produce	json
//	@Param		id	path	int	true	"Centro ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/centros/{id} [delete]
func (h *CentrosHandler) DeleteCentro(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.centros.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}
