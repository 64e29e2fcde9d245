package service

import (
	"context"
	"testing"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCatalogService_Areas(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		r := &MockCatalogRepo{}
		a := &MockAuditService{}
		r.On("AreaNameTaken", ctx, "Electricidad", int64(0)).Return(false, nil)
		r.On("CreateArea", ctx, mock.AnythingOfType("*model.Area")).Run(func(args mock.Arguments) {
			args.Get(1).(*model.Area).ID = 4
		}).Return(nil)
		a.On("Record", ctx, mock.MatchedBy(func(ev AuditEvent) bool {
			return ev.Log == "Creó área ID: 4, NOMBRE: Electricidad"
		})).Return(nil)

		id, err := NewCatalogService(r, a).CreateArea(ctx, uuid.New(), " Electricidad ")
		require.NoError(t, err)
		assert.Equal(t, int64(4), id)
		a.AssertExpectations(t)
	})

	t.Run("duplicate on create", func(t *testing.T) {
		r := &MockCatalogRepo{}
		r.On("AreaNameTaken", ctx, "electricidad", int64(0)).Return(true, nil)

		_, err := NewCatalogService(r, &MockAuditService{}).CreateArea(ctx, uuid.New(), "electricidad")
		assertValidation(t, err, msgAreaExists)
	})

	t.Run("duplicate on rename", func(t *testing.T) {
		r := &MockCatalogRepo{}
		r.On("GetArea", ctx, int64(4)).Return(&model.Area{ID: 4, Nombre: "Electricidad"}, nil)
		r.On("AreaNameTaken", ctx, "Soldadura", int64(4)).Return(true, nil)

		err := NewCatalogService(r, &MockAuditService{}).UpdateArea(ctx, uuid.New(), 4, "Soldadura")
		assertValidation(t, err, msgAreaOtherName)
		r.AssertNotCalled(t, "RenameArea", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete is soft", func(t *testing.T) {
		r := &MockCatalogRepo{}
		a := &MockAuditService{}
		r.On("GetArea", ctx, int64(4)).Return(&model.Area{ID: 4, Nombre: "Electricidad"}, nil)
		r.On("SetAreaEstatus", ctx, int64(4), model.EstatusInactive).Return(nil)
		a.On("Record", ctx, mock.Anything).Return(nil)

		require.NoError(t, NewCatalogService(r, a).DeleteArea(ctx, uuid.New(), 4))
		r.AssertExpectations(t)
	})

	t.Run("delete unknown", func(t *testing.T) {
		r := &MockCatalogRepo{}
		r.On("GetArea", ctx, int64(9)).Return(nil, gorm.ErrRecordNotFound)

		assertNotFound(t, NewCatalogService(r, &MockAuditService{}).DeleteArea(ctx, uuid.New(), 9), msgAreaNotFound)
	})
}

func TestCentroService_Create_ChecksLocation(t *testing.T) {
	ctx := context.Background()
	in := CentroInput{Nombre: "Centro Tegucigalpa", DepartamentoID: 8, MunicipioID: 110}

	t.Run("unknown departamento", func(t *testing.T) {
		cat := &MockCatalogRepo{}
		cat.On("DepartamentoExists", ctx, int64(8)).Return(false, nil)

		_, err := NewCentroService(&MockCentroRepo{}, cat, &MockAuditService{}).Create(ctx, uuid.New(), in)
		assertValidation(t, err, msgDepartamentoNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		r := &MockCentroRepo{}
		cat := &MockCatalogRepo{}
		a := &MockAuditService{}
		cat.On("DepartamentoExists", ctx, int64(8)).Return(true, nil)
		cat.On("GetMunicipio", ctx, int64(110)).Return(&model.Municipio{ID: 110, DepartamentoID: 8}, nil)
		r.On("Create", ctx, mock.MatchedBy(func(c *model.Centro) bool { return c.Estatus == model.EstatusActive })).Return(nil)
		a.On("Record", ctx, mock.Anything).Return(nil)

		_, err := NewCentroService(r, cat, a).Create(ctx, uuid.New(), in)
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("bad email", func(t *testing.T) {
		bad := in
		bad.Email = "no-es-correo"
		_, err := NewCentroService(&MockCentroRepo{}, &MockCatalogRepo{}, &MockAuditService{}).Create(ctx, uuid.New(), bad)
		assertValidation(t, err, msgInvalidEmail)
	})
}
