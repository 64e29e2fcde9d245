package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/service"
)

func setupCentrosRouter(catalogs *MockCatalogService, centros *MockCentroService) http.Handler {
	h := NewCentrosHandler(catalogs, centros, testLogger())
	r := setupRouter()
	r.GET("/areas", h.ListAreas)
	r.POST("/areas", h.CreateArea)
	r.PUT("/areas", h.UpdateArea)
	r.DELETE("/areas/:id", h.DeleteArea)
	r.GET("/departamentos", h.ListDepartamentos)
	r.GET("/municipios", h.ListMunicipios)
	r.GET("/niveles-escolaridad", h.ListNiveles)
	r.GET("/centros", h.ListCentros)
	r.GET("/centros/:id", h.GetCentro)
	r.POST("/centros", h.CreateCentro)
	r.PUT("/centros/:id", h.UpdateCentro)
	r.DELETE("/centros/:id", h.DeleteCentro)
	return r
}

func TestCentrosHandler_Areas(t *testing.T) {
	catalogs := &MockCatalogService{}
	catalogs.On("AreaOptions", mock.Anything).Return([]model.CatalogItem{{ID: 1, Nombre: "Agrícola"}}, nil)
	catalogs.On("ListAreas", mock.Anything, mock.Anything).Return([]model.Area{{ID: 1, Nombre: "Agrícola", Estatus: 1}}, int64(1), nil)
	catalogs.On("CreateArea", mock.Anything, testActor, "Turismo").Return(int64(7), nil)
	catalogs.On("CreateArea", mock.Anything, testActor, "agrícola").Return(int64(0), service.Invalid("Ya existe un área con este nombre"))
	catalogs.On("UpdateArea", mock.Anything, testActor, int64(7), "Hotelería").Return(nil)
	catalogs.On("DeleteArea", mock.Anything, testActor, int64(99)).Return(service.NotFound("Área no encontrada"))
	r := setupCentrosRouter(catalogs, &MockCentroService{})

	w := doJSON(t, r, http.MethodGet, "/areas?all=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/areas?limit=10&search=agr", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["count"])

	w = doJSON(t, r, http.MethodPost, "/areas", AreaReq{Nombre: "Turismo"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.EqualValues(t, 7, decode(t, w)["id"])

	w = doJSON(t, r, http.MethodPost, "/areas", AreaReq{Nombre: "agrícola"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/areas", AreaReq{ID: 7, Nombre: "Hotelería"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/areas/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/areas/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	catalogs.AssertExpectations(t)
}

func TestCentrosHandler_Catalogs(t *testing.T) {
	catalogs := &MockCatalogService{}
	catalogs.On("Departamentos", mock.Anything).Return([]model.CatalogItem{{ID: 8, Nombre: "Francisco Morazán"}}, nil)
	catalogs.On("Municipios", mock.Anything, int64(8)).Return([]model.Municipio{{ID: 110, DepartamentoID: 8, Nombre: "Distrito Central"}}, nil)
	catalogs.On("Municipios", mock.Anything, int64(0)).Return([]model.Municipio{}, nil)
	catalogs.On("Niveles", mock.Anything).Return([]model.CatalogItem{{ID: 1, Nombre: "Primaria"}}, nil)
	r := setupCentrosRouter(catalogs, &MockCentroService{})

	for _, path := range []string{"/departamentos", "/municipios?departamento_id=8", "/municipios", "/niveles-escolaridad"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	w := doJSON(t, r, http.MethodGet, "/municipios?departamento_id=x", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	catalogs.AssertExpectations(t)
}

func TestCentrosHandler_Centros(t *testing.T) {
	in := service.CentroInput{Siglas: "CFP", Codigo: "C-01", Nombre: "Centro Norte", DepartamentoID: 8, MunicipioID: 110}

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		setup          func(*MockCentroService)
		expectedStatus int
	}{
		{
			name:   "inactive list",
			method: http.MethodGet,
			path:   "/centros?limit=10&estatus=0",
			setup: func(svc *MockCentroService) {
				svc.On("List", mock.Anything, model.EstatusInactive, mock.Anything).Return([]model.Centro{}, int64(0), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "default list is active",
			method: http.MethodGet,
			path:   "/centros?limit=10",
			setup: func(svc *MockCentroService) {
				svc.On("List", mock.Anything, model.EstatusActive, mock.Anything).Return([]model.Centro{}, int64(0), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "options",
			method: http.MethodGet,
			path:   "/centros?all=true",
			setup: func(svc *MockCentroService) {
				svc.On("Options", mock.Anything).Return([]model.CatalogItem{{ID: 1, Nombre: "Centro Norte"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/centros/3",
			setup: func(svc *MockCentroService) {
				svc.On("Get", mock.Anything, int64(3)).Return(&model.Centro{ID: 3, Nombre: "Centro Norte"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/centros",
			body:   in,
			setup: func(svc *MockCentroService) {
				svc.On("Create", mock.Anything, testActor, in).Return(int64(3), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "municipio outside departamento",
			method: http.MethodPut,
			path:   "/centros/3",
			body:   in,
			setup: func(svc *MockCentroService) {
				svc.On("Update", mock.Anything, testActor, int64(3), in).Return(service.Invalid("El municipio no pertenece al departamento"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/centros/3",
			setup: func(svc *MockCentroService) {
				svc.On("Delete", mock.Anything, testActor, int64(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockCentroService{}
			tt.setup(svc)

			w := doJSON(t, setupCentrosRouter(&MockCatalogService{}, svc), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
