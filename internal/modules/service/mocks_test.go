package service

import (
	"context"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo is a mock implementation of UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) FindEnabledByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context, p paging.Query) ([]model.User, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockUserRepo) ListByIDs(ctx context.Context, ids []uuid.UUID, role string) ([]model.User, error) {
	args := m.Called(ctx, ids, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepo) ListOptions(ctx context.Context, role string) ([]model.UserOption, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserOption), args.Error(1)
}

// MockAuditRepo is a mock implementation of AuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Create(ctx context.Context, ul *model.UserLog, pl *model.ProjectLog) error {
	args := m.Called(ctx, ul, pl)
	return args.Error(0)
}

func (m *MockAuditRepo) ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.UserLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditRepo) ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	args := m.Called(ctx, projectID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.ProjectLog), args.Get(1).(int64), args.Error(2)
}

// MockAuditService records events without touching a repo.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, ev AuditEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockAuditService) ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.UserLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditService) ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	args := m.Called(ctx, projectID, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.ProjectLog), args.Get(1).(int64), args.Error(2)
}

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, v interface{}) error {
	args := m.Called(ctx, routingKey, v)
	return args.Error(0)
}

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendAccountEmail(ctx context.Context, to, name, password, role string) error {
	args := m.Called(ctx, to, name, password, role)
	return args.Error(0)
}

func (m *MockMailer) SendRecoveryCode(ctx context.Context, to, name, code string) error {
	args := m.Called(ctx, to, name, code)
	return args.Error(0)
}

// MockTokens is a mock implementation of TokenIssuer
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Issue(userID uuid.UUID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) IssueReset(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokens) ParseReset(raw string) (uuid.UUID, error) {
	args := m.Called(raw)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

// MockFinancingSourceRepo is a mock implementation of FinancingSourceRepo
type MockFinancingSourceRepo struct {
	mock.Mock
}

func (m *MockFinancingSourceRepo) Create(ctx context.Context, fs *model.FinancingSource) error {
	args := m.Called(ctx, fs)
	return args.Error(0)
}

func (m *MockFinancingSourceRepo) Get(ctx context.Context, id uuid.UUID) (*model.FinancingSource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinancingSource), args.Error(1)
}

func (m *MockFinancingSourceRepo) List(ctx context.Context, p paging.Query) ([]model.FinancingSource, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.FinancingSource), args.Get(1).(int64), args.Error(2)
}

func (m *MockFinancingSourceRepo) ListOptions(ctx context.Context) ([]model.FinancingSourceOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FinancingSourceOption), args.Error(1)
}

func (m *MockFinancingSourceRepo) Update(ctx context.Context, fs *model.FinancingSource) error {
	args := m.Called(ctx, fs)
	return args.Error(0)
}

func (m *MockFinancingSourceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFinancingSourceRepo) NameTaken(ctx context.Context, name string, exclude *uuid.UUID) (bool, error) {
	args := m.Called(ctx, name, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockFinancingSourceRepo) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFinancingSourceRepo) ExistingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

// MockProjectRepo is a mock implementation of ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) UpdateCore(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) List(ctx context.Context, status string, p paging.Query) ([]model.Project, int64, error) {
	args := m.Called(ctx, status, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Project), args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepo) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProjectRepo) SetAccomplishments(ctx context.Context, id uuid.UUID, items []model.Accomplishment) error {
	args := m.Called(ctx, id, items)
	return args.Error(0)
}

func (m *MockProjectRepo) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepo) ListAgents(ctx context.Context, projectID uuid.UUID) ([]model.UserOption, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserOption), args.Error(1)
}

func (m *MockProjectRepo) ReplaceAgents(ctx context.Context, projectID uuid.UUID, userIDs []uuid.UUID) error {
	args := m.Called(ctx, projectID, userIDs)
	return args.Error(0)
}

// MockProjectItemRepo is a mock implementation of ProjectItemRepo
type MockProjectItemRepo struct {
	mock.Mock
}

func (m *MockProjectItemRepo) ListFinancingSources(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFinancingSource, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectFinancingSource), args.Error(1)
}

func (m *MockProjectItemRepo) ReplaceFinancingSources(ctx context.Context, projectID uuid.UUID, rows []model.ProjectFinancingSource) error {
	args := m.Called(ctx, projectID, rows)
	return args.Error(0)
}

func (m *MockProjectItemRepo) AddFinancingSource(ctx context.Context, row *model.ProjectFinancingSource) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProjectItemRepo) DeleteFinancingSource(ctx context.Context, projectID, id uuid.UUID) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

func (m *MockProjectItemRepo) ListDonations(ctx context.Context, projectID uuid.UUID) ([]model.ProjectDonation, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectDonation), args.Error(1)
}

func (m *MockProjectItemRepo) ReplaceDonations(ctx context.Context, projectID uuid.UUID, rows []model.ProjectDonation) error {
	args := m.Called(ctx, projectID, rows)
	return args.Error(0)
}

func (m *MockProjectItemRepo) AddDonation(ctx context.Context, row *model.ProjectDonation) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProjectItemRepo) DeleteDonation(ctx context.Context, projectID, id uuid.UUID) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

func (m *MockProjectItemRepo) ListExpenses(ctx context.Context, projectID uuid.UUID) ([]model.ProjectExpense, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectExpense), args.Error(1)
}

func (m *MockProjectItemRepo) ReplaceExpenses(ctx context.Context, projectID uuid.UUID, rows []model.ProjectExpense) error {
	args := m.Called(ctx, projectID, rows)
	return args.Error(0)
}

func (m *MockProjectItemRepo) AddExpense(ctx context.Context, row *model.ProjectExpense) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}

func (m *MockProjectItemRepo) DeleteExpense(ctx context.Context, projectID, id uuid.UUID) error {
	args := m.Called(ctx, projectID, id)
	return args.Error(0)
}

// MockProjectFileRepo is a mock implementation of ProjectFileRepo
type MockProjectFileRepo struct {
	mock.Mock
}

func (m *MockProjectFileRepo) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFile, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectFile), args.Error(1)
}

func (m *MockProjectFileRepo) Get(ctx context.Context, projectID, fileID uuid.UUID) (*model.ProjectFile, error) {
	args := m.Called(ctx, projectID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectFile), args.Error(1)
}

func (m *MockProjectFileRepo) Create(ctx context.Context, f *model.ProjectFile) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockProjectFileRepo) Delete(ctx context.Context, projectID, fileID uuid.UUID) error {
	args := m.Called(ctx, projectID, fileID)
	return args.Error(0)
}

// MockCatalogRepo is a mock implementation of CatalogRepo
type MockCatalogRepo struct {
	mock.Mock
}

func (m *MockCatalogRepo) ListAreas(ctx context.Context, p paging.Query) ([]model.Area, int64, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Area), args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogRepo) AreaOptions(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) GetArea(ctx context.Context, id int64) (*model.Area, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Area), args.Error(1)
}

func (m *MockCatalogRepo) CreateArea(ctx context.Context, a *model.Area) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCatalogRepo) RenameArea(ctx context.Context, id int64, nombre string) error {
	args := m.Called(ctx, id, nombre)
	return args.Error(0)
}

func (m *MockCatalogRepo) SetAreaEstatus(ctx context.Context, id int64, estatus int16) error {
	args := m.Called(ctx, id, estatus)
	return args.Error(0)
}

func (m *MockCatalogRepo) AreaNameTaken(ctx context.Context, nombre string, exclude int64) (bool, error) {
	args := m.Called(ctx, nombre, exclude)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepo) ListDepartamentos(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) ListMunicipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error) {
	args := m.Called(ctx, departamentoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Municipio), args.Error(1)
}

func (m *MockCatalogRepo) GetMunicipio(ctx context.Context, id int64) (*model.Municipio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Municipio), args.Error(1)
}

func (m *MockCatalogRepo) DepartamentoExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepo) ListNiveles(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockCatalogRepo) NivelExists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCentroRepo is a mock implementation of CentroRepo
type MockCentroRepo struct {
	mock.Mock
}

func (m *MockCentroRepo) List(ctx context.Context, f repo.CentroListFilter, p paging.Query) ([]model.Centro, int64, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Centro), args.Get(1).(int64), args.Error(2)
}

func (m *MockCentroRepo) Options(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *MockCentroRepo) Get(ctx context.Context, id int64) (*model.Centro, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Centro), args.Error(1)
}

func (m *MockCentroRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCentroRepo) Create(ctx context.Context, c *model.Centro) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCentroRepo) Update(ctx context.Context, c *model.Centro) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCentroRepo) SetEstatus(ctx context.Context, id int64, estatus int16) error {
	args := m.Called(ctx, id, estatus)
	return args.Error(0)
}

// MockEstudianteRepo is a mock implementation of EstudianteRepo
type MockEstudianteRepo struct {
	mock.Mock
}

func (m *MockEstudianteRepo) List(ctx context.Context, f repo.PersonFilter, p paging.Query) ([]model.Estudiante, int64, error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.Estudiante), args.Get(1).(int64), args.Error(2)
}

func (m *MockEstudianteRepo) Get(ctx context.Context, id int64) (*model.Estudiante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Estudiante), args.Error(1)
}

func (m *MockEstudianteRepo) Create(ctx context.Context, e *model.Estudiante) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstudianteRepo) Update(ctx context.Context, e *model.Estudiante) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstudianteRepo) SetEstatus(ctx context.Context, id int64, estatus int16) error {
	args := m.Called(ctx, id, estatus)
	return args.Error(0)
}

func (m *MockEstudianteRepo) SetArchivo(ctx context.Context, id int64, path string) error {
	args := m.Called(ctx, id, path)
	return args.Error(0)
}

func (m *MockEstudianteRepo) IdentidadTaken(ctx context.Context, identidad string, centroID, exclude int64) (bool, error) {
	args := m.Called(ctx, identidad, centroID, exclude)
	return args.Bool(0), args.Error(1)
}
