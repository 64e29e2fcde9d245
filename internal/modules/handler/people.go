package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/middleware"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/modules/serializer"
	"github.com/caderh/caderh-api/internal/modules/service"
)

// PeopleHandler serves instructores, estudiantes and cursos of the centros.
type PeopleHandler struct {
	instructores service.InstructorService
	estudiantes  service.EstudianteService
	cursos       service.CursoService
	log          *zap.Logger
}

func NewPeopleHandler(instructores service.InstructorService, estudiantes service.EstudianteService, cursos service.CursoService, log *zap.Logger) *PeopleHandler {
	return &PeopleHandler{instructores: instructores, estudiantes: estudiantes, cursos: cursos, log: log}
}

type CVResp struct {
	OK   bool   `json:"ok"`
	File string `json:"file"`
}

// uploadCV runs upload with the multipart field "file" of the record named by :id.
func (h *PeopleHandler) uploadCV(c *gin.Context, upload func(id int64, fh *multipart.FileHeader) (string, error)) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, service.MsgMissingFile)
		return
	}
	key, err := upload(id, fh)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, CVResp{OK: true, File: key})
}

// byID runs fn on the record named by :id and answers ok.
func (h *PeopleHandler) byID(c *gin.Context, fn func(id int64) error) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := fn(id); err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.OK())
}

// ListInstructores godoc
//
//	@Summary	List instructores
//	@Tags		instructores
//	@Produce	json
//	@Param		limit		query	int		true	"Page size, 1-100"
//	@Param		offset		query	int		false	"Offset"
//	@Param		centro_id	query	int		false	"Only this centro"
//	@Param		search		query	string	false	"Matches nombre, apellido or identidad"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.Instructor}
//	@Router		/api/centros/instructores [get]
func (h *PeopleHandler) ListInstructores(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	centroID, ok := int64Query(c, "centro_id")
	if !ok {
		return
	}
	rows, count, err := h.instructores.List(c.Request.Context(), centroID, q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// GetInstructor godoc
//
//	@Summary	Get instructor
//	@Tags		instructores
//	@Produce	json
//	@Param		id	path	int	true	"Instructor ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.Instructor}
//	@Router		/api/centros/instructores/{id} [get]
func (h *PeopleHandler) GetInstructor(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	row, err := h.instructores.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(row))
}

// CreateInstructor godoc
//
//	@Summary	Create instructor
//	@Tags		instructores
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	service.InstructorInput	true	"Instructor"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/centros/instructores [post]
func (h *PeopleHandler) CreateInstructor(c *gin.Context) {
	in := service.InstructorInput{}
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.instructores.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// UpdateInstructor godoc
//
//	@Summary	Update instructor
//	@Tags		instructores
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int						true	"Instructor ID"
//	@Param		payload	body	service.InstructorInput	true	"Instructor"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/instructores/{id} [put]
func (h *PeopleHandler) UpdateInstructor(c *gin.Context) {
	in := service.InstructorInput{}
	h.byID(c, func(id int64) error {
		if err := c.ShouldBindJSON(&in); err != nil {
			return service.Invalid(service.MsgMissingFields)
		}
		return h.instructores.Update(c.Request.Context(), middleware.UserID(c), id, in)
	})
}

// DeleteInstructor godoc
//
//	@Summary	Deactivate instructor
//	@Tags		instructores
//	@Produce	json
//	@Param		id	path	int	true	"Instructor ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/instructores/{id} [delete]
func (h *PeopleHandler) DeleteInstructor(c *gin.Context) {
	h.byID(c, func(id int64) error {
		return h.instructores.Delete(c.Request.Context(), middleware.UserID(c), id)
	})
}

// UploadInstructorCV godoc
//
//	@Summary	Upload or replace an instructor's CV
//	@Tags		instructores
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		int		true	"Instructor ID"
//	@Param		file	formData	file	true	"CV"
//	@Security	BearerAuth
//	@Success	200	{object}	handler.CVResp
//	@Router		/api/centros/instructores/{id}/cv [post]
func (h *PeopleHandler) UploadInstructorCV(c *gin.Context) {
	h.uploadCV(c, func(id int64, fh *multipart.FileHeader) (string, error) {
		return h.instructores.UploadCV(c.Request.Context(), middleware.UserID(c), id, fh)
	})
}

// DeleteInstructorCV godoc
//
//	@Summary	Remove an instructor's CV
//	@Tags		instructores
//	@Produce	json
//	@Param		id	path	int	true	"Instructor ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/instructores/{id}/cv [delete]
func (h *PeopleHandler) DeleteInstructorCV(c *gin.Context) {
	h.byID(c, func(id int64) error {
		return h.instructores.DeleteCV(c.Request.Context(), middleware.UserID(c), id)
	})
}

// ListEstudiantes godoc
//
//	@Summary	List estudiantes
//	@Tags		estudiantes
//	@Produce	json
//	@Param		limit		query	int		true	"Page size, 1-100"
//	@Param		offset		query	int		false	"Offset"
//	@Param		centro_id	query	int		false	"Only this centro"
//	@Param		search		query	string	false	"Matches nombre, apellido or identidad"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.Estudiante}
//	@Router		/api/centros/estudiantes [get]
func (h *PeopleHandler) ListEstudiantes(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	centroID, ok := int64Query(c, "centro_id")
	if !ok {
		return
	}
	rows, count, err := h.estudiantes.List(c.Request.Context(), centroID, q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// GetEstudiante godoc
//
//	@Summary	Get estudiante
//	@Tags		estudiantes
//	@Produce	json
//	@Param		id	path	int	true	"Estudiante ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.Estudiante}
//	@Router		/api/centros/estudiantes/{id} [get]
func (h *PeopleHandler) GetEstudiante(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	row, err := h.estudiantes.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(row))
}

// CreateEstudiante godoc
//
//	@Summary		Create estudiante
//	@Description	identidad is unique per centro
//	@Tags			estudiantes
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	service.EstudianteInput	true	"Estudiante"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.OKResponse
//	@Router			/api/centros/estudiantes [post]
func (h *PeopleHandler) CreateEstudiante(c *gin.Context) {
	in := service.EstudianteInput{}
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.estudiantes.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// UpdateEstudiante godoc
//
//	@Summary	Update estudiante
//	@Tags		estudiantes
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int						true	"Estudiante ID"
//	@Param		payload	body	service.EstudianteInput	true	"Estudiante"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/estudiantes/{id} [put]
func (h *PeopleHandler) UpdateEstudiante(c *gin.Context) {
	in := service.EstudianteInput{}
	h.byID(c, func(id int64) error {
		if err := c.ShouldBindJSON(&in); err != nil {
			return service.Invalid(service.MsgMissingFields)
		}
		return h.estudiantes.Update(c.Request.Context(), middleware.UserID(c), id, in)
	})
}

// DeleteEstudiante godoc
//
//	@Summary	Deactivate estudiante
//	@Tags		estudiantes
//	@Produce	json
//	@Param		id	path	int	true	"Estudiante ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/estudiantes/{id} [delete]
func (h *PeopleHandler) DeleteEstudiante(c *gin.Context) {
	h.byID(c, func(id int64) error {
		return h.estudiantes.Delete(c.Request.Context(), middleware.UserID(c), id)
	})
}

// UploadEstudianteCV godoc
//
//	@Summary	Upload or replace an estudiante's CV
//	@Tags		estudiantes
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		id		path		int		true	"Estudiante ID"
//	@Param		file	formData	file	true	"CV"
//	@Security	BearerAuth
//	@Success	200	{object}	handler.CVResp
//	@Router		/api/centros/estudiantes/{id}/cv [post]
func (h *PeopleHandler) UploadEstudianteCV(c *gin.Context) {
	h.uploadCV(c, func(id int64, fh *multipart.FileHeader) (string, error) {
		return h.estudiantes.UploadCV(c.Request.Context(), middleware.UserID(c), id, fh)
	})
}

// DeleteEstudianteCV godoc
//
//	@Summary	Remove an estudiante's CV
//	@Tags		estudiantes
//	@Produce	json
//	@Param		id	path	int	true	"Estudiante ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/estudiantes/{id}/cv [delete]
func (h *PeopleHandler) DeleteEstudianteCV(c *gin.Context) {
	h.byID(c, func(id int64) error {
		return h.estudiantes.DeleteCV(c.Request.Context(), middleware.UserID(c), id)
	})
}

// ListCursos godoc
//
//	@Summary	List cursos
//	@Tags		cursos
//	@Produce	json
//	@Param		limit		query	int		true	"Page size, 1-100"
//	@Param		offset		query	int		false	"Offset"
//	@Param		centro_id	query	int		false	"Only this centro"
//	@Param		area_id		query	int		false	"Only this area"
//	@Param		search		query	string	false	"Matches nombre or codigo"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.ListResponse{data=[]model.Curso}
//	@Router		/api/centros/cursos [get]
func (h *PeopleHandler) ListCursos(c *gin.Context) {
	q, ok := bindQuery(c)
	if !ok {
		return
	}
	centroID, ok := int64Query(c, "centro_id")
	if !ok {
		return
	}
	areaID, ok := int64Query(c, "area_id")
	if !ok {
		return
	}
	rows, count, err := h.cursos.List(c.Request.Context(), repo.CursoFilter{CentroID: centroID, AreaID: areaID}, q)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.List(rows, count))
}

// GetCurso godoc
//
//	@Summary	Get curso
//	@Tags		cursos
//	@Produce	json
//	@Param		id	path	int	true	"Curso ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.DataResponse{data=model.Curso}
//	@Router		/api/centros/cursos/{id} [get]
func (h *PeopleHandler) GetCurso(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	row, err := h.cursos.Get(c.Request.Context(), id)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, serializer.Data(row))
}

// CreateCurso godoc
//
//	@Summary	Create curso
//	@Tags		cursos
//	@Accept		json
//	@Produce	json
//	@Param		payload	body	service.CursoInput	true	"Curso"
//	@Security	BearerAuth
//	@Success	201	{object}	serializer.OKResponse
//	@Router		/api/centros/cursos [post]
func (h *PeopleHandler) CreateCurso(c *gin.Context) {
	in := service.CursoInput{}
	if !bindJSON(c, &in) {
		return
	}
	id, err := h.cursos.Create(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		writeErr(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, serializer.Created(id))
}

// UpdateCurso godoc
//
//	@Summary	Update curso
//	@Tags		cursos
//	@Accept		json
//	@Produce	json
//	@Param		id		path	int					true	"Curso ID"
//	@Param		payload	body	service.CursoInput	true	"Curso"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/cursos/{id} [put]
func (h *PeopleHandler) UpdateCurso(c *gin.Context) {
	in := service.CursoInput{}
	h.byID(c, func(id int64) error {
		if err := c.ShouldBindJSON(&in); err != nil {
			return service.Invalid(service.MsgMissingFields)
		}
		return h.cursos.Update(c.Request.Context(), middleware.UserID(c), id, in)
	})
}

// DeleteCurso godoc
//
//	@Summary	Deactivate curso
//	@Tags		cursos
//	@Produce	json
//	@Param		id	path	int	true	"Curso ID"
//	@Security	BearerAuth
//	@Success	200	{object}	serializer.OKResponse
//	@Router		/api/centros/cursos/{id} [delete]
func (h *PeopleHandler) DeleteCurso(c *gin.Context) {
	h.byID(c, func(id int64) error {
		return h.cursos.Delete(c.Request.Context(), middleware.UserID(c), id)
	})
}
