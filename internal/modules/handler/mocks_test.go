package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/modules/service"
	"github.com/caderh/caderh-api/internal/pkg/paging"
)

var testActor = uuid.MustParse("11111111-1111-1111-1111-111111111111")

// setupRouter returns a test engine whose requests run as an ADMIN testActor.
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testActor)
		c.Set("user_role", model.RoleAdmin)
		c.Next()
	})
	return r
}

func testLogger() *zap.Logger { return zap.NewNop() }

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			raw, err := sonic.Marshal(body)
			require.NoError(t, err)
			buf.Write(raw)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doMultipart(t *testing.T, r http.Handler, path string, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	out := map[string]interface{}{}
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*service.LoginOutput, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginOutput), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID uuid.UUID, password string) error {
	return m.Called(ctx, userID, password).Error(0)
}

func (m *MockUserService) StartRecovery(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockUserService) VerifyRecovery(ctx context.Context, email, code string) (string, error) {
	args := m.Called(ctx, email, code)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) ResetPassword(ctx context.Context, resetToken, password string) error {
	return m.Called(ctx, resetToken, password).Error(0)
}

func (m *MockUserService) ResendVerification(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockUserService) Create(ctx context.Context, actorID uuid.UUID, in service.CreateUserInput) (*model.User, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, p paging.Query) ([]model.User, int64, error) {
	args := m.Called(ctx, p)
	rows, _ := args.Get(0).([]model.User)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserService) Update(ctx context.Context, actorID uuid.UUID, in service.UpdateUserInput) error {
	return m.Called(ctx, actorID, in).Error(0)
}

func (m *MockUserService) ListAgents(ctx context.Context) ([]model.UserOption, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.UserOption)
	return rows, args.Error(1)
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, ev service.AuditEvent) error {
	return m.Called(ctx, ev).Error(0)
}

func (m *MockAuditService) ListUserLogs(ctx context.Context, userID *uuid.UUID, p paging.Query) ([]model.UserLog, int64, error) {
	args := m.Called(ctx, userID, p)
	rows, _ := args.Get(0).([]model.UserLog)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockAuditService) ListProjectLogs(ctx context.Context, projectID uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	args := m.Called(ctx, projectID, p)
	rows, _ := args.Get(0).([]model.ProjectLog)
	return rows, args.Get(1).(int64), args.Error(2)
}

// MockFinancingSourceService is a mock implementation of FinancingSourceService
type MockFinancingSourceService struct {
	mock.Mock
}

func (m *MockFinancingSourceService) Create(ctx context.Context, actorID uuid.UUID, in service.FinancingSourceInput) (*model.FinancingSource, error) {
	args := m.Called(ctx, actorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinancingSource), args.Error(1)
}

func (m *MockFinancingSourceService) Get(ctx context.Context, id uuid.UUID) (*model.FinancingSource, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FinancingSource), args.Error(1)
}

func (m *MockFinancingSourceService) List(ctx context.Context, p paging.Query) ([]model.FinancingSource, int64, error) {
	args := m.Called(ctx, p)
	rows, _ := args.Get(0).([]model.FinancingSource)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockFinancingSourceService) Options(ctx context.Context) ([]model.FinancingSourceOption, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.FinancingSourceOption)
	return rows, args.Error(1)
}

func (m *MockFinancingSourceService) Update(ctx context.Context, actorID, id uuid.UUID, in service.FinancingSourceInput) error {
	return m.Called(ctx, actorID, id, in).Error(0)
}

func (m *MockFinancingSourceService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return m.Called(ctx, actorID, id).Error(0)
}

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, status string, p paging.Query) ([]model.Project, int64, error) {
	args := m.Called(ctx, status, p)
	rows, _ := args.Get(0).([]model.Project)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectService) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return m.Called(ctx, actorID, id).Error(0)
}

func (m *MockProjectService) Archive(ctx context.Context, actorID, id uuid.UUID) error {
	return m.Called(ctx, actorID, id).Error(0)
}

func (m *MockProjectService) UpdateAccomplishments(ctx context.Context, actorID, id uuid.UUID, raw []interface{}) error {
	return m.Called(ctx, actorID, id, raw).Error(0)
}

func (m *MockProjectService) SaveCore(ctx context.Context, actorID uuid.UUID, in service.ProjectCoreInput) (uuid.UUID, error) {
	args := m.Called(ctx, actorID, in)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectService) ListAgents(ctx context.Context, id uuid.UUID) ([]model.UserOption, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.UserOption)
	return rows, args.Error(1)
}

func (m *MockProjectService) ReplaceAgents(ctx context.Context, actorID, id uuid.UUID, userIDs []string) error {
	return m.Called(ctx, actorID, id, userIDs).Error(0)
}

func (m *MockProjectService) ListLogs(ctx context.Context, id uuid.UUID, p paging.Query) ([]model.ProjectLog, int64, error) {
	args := m.Called(ctx, id, p)
	rows, _ := args.Get(0).([]model.ProjectLog)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectService) CanAccess(ctx context.Context, projectID, userID uuid.UUID, role string) (bool, error) {
	args := m.Called(ctx, projectID, userID, role)
	return args.Bool(0), args.Error(1)
}

// MockProjectItemService is a mock implementation of ProjectItemService
type MockProjectItemService struct {
	mock.Mock
}

func (m *MockProjectItemService) ListFinancingSources(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFinancingSource, error) {
	args := m.Called(ctx, projectID)
	rows, _ := args.Get(0).([]model.ProjectFinancingSource)
	return rows, args.Error(1)
}

func (m *MockProjectItemService) ReplaceFinancingSources(ctx context.Context, actorID, projectID uuid.UUID, items []service.FinancingItemInput) error {
	return m.Called(ctx, actorID, projectID, items).Error(0)
}

func (m *MockProjectItemService) AddFinancingSource(ctx context.Context, actorID, projectID uuid.UUID, item service.FinancingItemInput) (uuid.UUID, error) {
	args := m.Called(ctx, actorID, projectID, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectItemService) DeleteFinancingSource(ctx context.Context, actorID, projectID, id uuid.UUID) error {
	return m.Called(ctx, actorID, projectID, id).Error(0)
}

func (m *MockProjectItemService) ListDonations(ctx context.Context, projectID uuid.UUID) ([]model.ProjectDonation, error) {
	args := m.Called(ctx, projectID)
	rows, _ := args.Get(0).([]model.ProjectDonation)
	return rows, args.Error(1)
}

func (m *MockProjectItemService) ReplaceDonations(ctx context.Context, actorID, projectID uuid.UUID, items []service.DonationItemInput) error {
	return m.Called(ctx, actorID, projectID, items).Error(0)
}

func (m *MockProjectItemService) AddDonation(ctx context.Context, actorID, projectID uuid.UUID, item service.DonationItemInput) (uuid.UUID, error) {
	args := m.Called(ctx, actorID, projectID, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectItemService) DeleteDonation(ctx context.Context, actorID, projectID, id uuid.UUID) error {
	return m.Called(ctx, actorID, projectID, id).Error(0)
}

func (m *MockProjectItemService) ListExpenses(ctx context.Context, projectID uuid.UUID) ([]model.ProjectExpense, error) {
	args := m.Called(ctx, projectID)
	rows, _ := args.Get(0).([]model.ProjectExpense)
	return rows, args.Error(1)
}

func (m *MockProjectItemService) ReplaceExpenses(ctx context.Context, actorID, projectID uuid.UUID, items []service.ExpenseItemInput) error {
	return m.Called(ctx, actorID, projectID, items).Error(0)
}

func (m *MockProjectItemService) AddExpense(ctx context.Context, actorID, projectID uuid.UUID, item service.ExpenseItemInput) (uuid.UUID, error) {
	args := m.Called(ctx, actorID, projectID, item)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProjectItemService) DeleteExpense(ctx context.Context, actorID, projectID, id uuid.UUID) error {
	return m.Called(ctx, actorID, projectID, id).Error(0)
}

// MockAttachmentService is a mock implementation of AttachmentService
type MockAttachmentService struct {
	mock.Mock
}

func (m *MockAttachmentService) List(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFile, error) {
	args := m.Called(ctx, projectID)
	rows, _ := args.Get(0).([]model.ProjectFile)
	return rows, args.Error(1)
}

func (m *MockAttachmentService) Upload(ctx context.Context, actorID, projectID uuid.UUID, in service.UploadInput) (uuid.UUID, error) {
	args := m.Called(ctx, actorID, projectID, in)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAttachmentService) Delete(ctx context.Context, actorID, projectID, fileID uuid.UUID) error {
	return m.Called(ctx, actorID, projectID, fileID).Error(0)
}

func (m *MockAttachmentService) Open(ctx context.Context, projectID, fileID uuid.UUID) (*service.Download, error) {
	args := m.Called(ctx, projectID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Download), args.Error(1)
}

func (m *MockAttachmentService) OpenPath(ctx context.Context, rel string) (*service.Download, error) {
	args := m.Called(ctx, rel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Download), args.Error(1)
}

// MockCatalogService is a mock implementation of CatalogService
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListAreas(ctx context.Context, p paging.Query) ([]model.Area, int64, error) {
	args := m.Called(ctx, p)
	rows, _ := args.Get(0).([]model.Area)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockCatalogService) AreaOptions(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CatalogItem)
	return rows, args.Error(1)
}

func (m *MockCatalogService) CreateArea(ctx context.Context, actorID uuid.UUID, nombre string) (int64, error) {
	args := m.Called(ctx, actorID, nombre)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogService) UpdateArea(ctx context.Context, actorID uuid.UUID, id int64, nombre string) error {
	return m.Called(ctx, actorID, id, nombre).Error(0)
}

func (m *MockCatalogService) DeleteArea(ctx context.Context, actorID uuid.UUID, id int64) error {
	return m.Called(ctx, actorID, id).Error(0)
}

func (m *MockCatalogService) Departamentos(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CatalogItem)
	return rows, args.Error(1)
}

func (m *MockCatalogService) Municipios(ctx context.Context, departamentoID int64) ([]model.Municipio, error) {
	args := m.Called(ctx, departamentoID)
	rows, _ := args.Get(0).([]model.Municipio)
	return rows, args.Error(1)
}

func (m *MockCatalogService) Niveles(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CatalogItem)
	return rows, args.Error(1)
}

// MockCentroService is a mock implementation of CentroService
type MockCentroService struct {
	mock.Mock
}

func (m *MockCentroService) List(ctx context.Context, estatus int16, p paging.Query) ([]model.Centro, int64, error) {
	args := m.Called(ctx, estatus, p)
	rows, _ := args.Get(0).([]model.Centro)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockCentroService) Options(ctx context.Context) ([]model.CatalogItem, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]model.CatalogItem)
	return rows, args.Error(1)
}

func (m *MockCentroService) Get(ctx context.Context, id int64) (*model.Centro, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Centro), args.Error(1)
}

func (m *MockCentroService) Create(ctx context.Context, actorID uuid.UUID, in service.CentroInput) (int64, error) {
	args := m.Called(ctx, actorID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCentroService) Update(ctx context.Context, actorID uuid.UUID, id int64, in service.CentroInput) error {
	return m.Called(ctx, actorID, id, in).Error(0)
}

func (m *MockCentroService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	return m.Called(ctx, actorID, id).Error(0)
}

// MockEstudianteService is a mock implementation of EstudianteService
type MockEstudianteService struct {
	mock.Mock
}

func (m *MockEstudianteService) List(ctx context.Context, centroID int64, p paging.Query) ([]model.Estudiante, int64, error) {
	args := m.Called(ctx, centroID, p)
	rows, _ := args.Get(0).([]model.Estudiante)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockEstudianteService) Get(ctx context.Context, id int64) (*model.Estudiante, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Estudiante), args.Error(1)
}

func (m *MockEstudianteService) Create(ctx context.Context, actorID uuid.UUID, in service.EstudianteInput) (int64, error) {
	args := m.Called(ctx, actorID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEstudianteService) Update(ctx context.Context, actorID uuid.UUID, id int64, in service.EstudianteInput) error {
	return m.Called(ctx, actorID, id, in).Error(0)
}

func (m *MockEstudianteService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	return m.Called(ctx, actorID, id).Error(0)
}

func (m *MockEstudianteService) UploadCV(ctx context.Context, actorID uuid.UUID, id int64, fh *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, actorID, id, fh)
	return args.String(0), args.Error(1)
}

func (m *MockEstudianteService) DeleteCV(ctx context.Context, actorID uuid.UUID, id int64) error {
	return m.Called(ctx, actorID, id).Error(0)
}

// MockCursoService is a mock implementation of CursoService
type MockCursoService struct {
	mock.Mock
}

func (m *MockCursoService) List(ctx context.Context, f repo.CursoFilter, p paging.Query) ([]model.Curso, int64, error) {
	args := m.Called(ctx, f, p)
	rows, _ := args.Get(0).([]model.Curso)
	return rows, args.Get(1).(int64), args.Error(2)
}

func (m *MockCursoService) Get(ctx context.Context, id int64) (*model.Curso, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Curso), args.Error(1)
}

func (m *MockCursoService) Create(ctx context.Context, actorID uuid.UUID, in service.CursoInput) (int64, error) {
	args := m.Called(ctx, actorID, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCursoService) Update(ctx context.Context, actorID uuid.UUID, id int64, in service.CursoInput) error {
	return m.Called(ctx, actorID, id, in).Error(0)
}

func (m *MockCursoService) Delete(ctx context.Context, actorID uuid.UUID, id int64) error {
	return m.Called(ctx, actorID, id).Error(0)
}
