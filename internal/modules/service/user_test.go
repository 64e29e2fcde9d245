package service

import (
	"context"
	"errors"
	"testing"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/secrets"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func assertValidation(t *testing.T, err error, msg string) {
	t.Helper()
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, msg, ve.Msg)
}

func assertNotFound(t *testing.T, err error, msg string) {
	t.Helper()
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, msg, nf.Msg)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	actor := uuid.New()
	newID := uuid.New()

	tests := []struct {
		name    string
		in      CreateUserInput
		setup   func(*MockUserRepo, *MockAuditService, *MockMailer)
		wantErr string
	}{
		{
			name: "creates user and audits the new id",
			in:   CreateUserInput{Email: "ana@caderh.hn", Name: "Ana", Role: "SUPERVISOR"},
			setup: func(r *MockUserRepo, a *MockAuditService, m *MockMailer) {
				r.On("FindByEmail", ctx, "ana@caderh.hn").Return(nil, gorm.ErrRecordNotFound)
				r.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
					return u.Role == model.RoleManager && u.FirstLogin && u.Password != ""
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = newID
				}).Return(nil)
				a.On("Record", ctx, mock.MatchedBy(func(ev AuditEvent) bool {
					return ev.ActorID == actor && ev.EntityID == newID.String() && ev.Action == ActionCreate
				})).Return(nil)
				m.On("SendAccountEmail", ctx, "ana@caderh.hn", "Ana", mock.AnythingOfType("string"), "Supervisor").Return(nil)
			},
		},
		{
			name: "mail failure does not fail the request",
			in:   CreateUserInput{Email: "ana@caderh.hn", Name: "Ana", Role: "USER"},
			setup: func(r *MockUserRepo, a *MockAuditService, m *MockMailer) {
				r.On("FindByEmail", ctx, "ana@caderh.hn").Return(nil, gorm.ErrRecordNotFound)
				r.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(nil)
				a.On("Record", ctx, mock.Anything).Return(nil)
				m.On("SendAccountEmail", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))
			},
		},
		{
			name: "duplicate email",
			in:   CreateUserInput{Email: "ANA@caderh.hn", Name: "Ana", Role: "USER"},
			setup: func(r *MockUserRepo, a *MockAuditService, m *MockMailer) {
				r.On("FindByEmail", ctx, "ANA@caderh.hn").Return(&model.User{ID: uuid.New()}, nil)
			},
			wantErr: "Correo electrónico en uso",
		},
		{
			name:    "invalid role",
			in:      CreateUserInput{Email: "ana@caderh.hn", Name: "Ana", Role: "ROOT"},
			setup:   func(r *MockUserRepo, a *MockAuditService, m *MockMailer) {},
			wantErr: "Rol inválido",
		},
		{
			name:    "missing fields",
			in:      CreateUserInput{Email: "ana@caderh.hn", Role: "USER"},
			setup:   func(r *MockUserRepo, a *MockAuditService, m *MockMailer) {},
			wantErr: MsgMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &MockUserRepo{}
			a := &MockAuditService{}
			m := &MockMailer{}
			tt.setup(r, a, m)

			svc := NewUserService(r, &MockTokens{}, m, a, zap.NewNop())
			u, err := svc.Create(ctx, actor, tt.in)

			if tt.wantErr != "" {
				assertValidation(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, u)
			}
			r.AssertExpectations(t)
			a.AssertExpectations(t)
			m.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := secrets.HashPassword("correct-horse")
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "ana@caderh.hn", Name: "Ana", Role: model.RoleAdmin, Password: hash, FirstLogin: true}

	t.Run("success", func(t *testing.T) {
		r := &MockUserRepo{}
		tok := &MockTokens{}
		r.On("FindEnabledByEmail", ctx, "ana@caderh.hn").Return(user, nil)
		tok.On("Issue", user.ID, model.RoleAdmin).Return("signed", nil)

		out, err := NewUserService(r, tok, &MockMailer{}, &MockAuditService{}, zap.NewNop()).Login(ctx, "ana@caderh.hn", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "signed", out.Session)
		assert.True(t, out.FirstLogin)
		assert.Equal(t, model.RoleAdmin, out.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		r := &MockUserRepo{}
		r.On("FindEnabledByEmail", ctx, "ana@caderh.hn").Return(user, nil)

		_, err := NewUserService(r, &MockTokens{}, &MockMailer{}, &MockAuditService{}, zap.NewNop()).Login(ctx, "ana@caderh.hn", "nope")
		assertValidation(t, err, MsgBadCredentials)
	})

	t.Run("unknown or disabled user", func(t *testing.T) {
		r := &MockUserRepo{}
		r.On("FindEnabledByEmail", ctx, "ghost@caderh.hn").Return(nil, gorm.ErrRecordNotFound)

		_, err := NewUserService(r, &MockTokens{}, &MockMailer{}, &MockAuditService{}, zap.NewNop()).Login(ctx, "ghost@caderh.hn", "whatever")
		assertValidation(t, err, MsgBadCredentials)
	})
}

func TestUserService_Recovery(t *testing.T) {
	ctx := context.Background()
	code := "123456"
	user := &model.User{ID: uuid.New(), Email: "ana@caderh.hn", Name: "Ana", VerificationCode: &code}

	t.Run("verify issues reset token", func(t *testing.T) {
		r := &MockUserRepo{}
		tok := &MockTokens{}
		r.On("FindEnabledByEmail", ctx, "ana@caderh.hn").Return(user, nil)
		tok.On("IssueReset", user.ID).Return("reset-token", nil)

		got, err := NewUserService(r, tok, &MockMailer{}, &MockAuditService{}, zap.NewNop()).VerifyRecovery(ctx, "ana@caderh.hn", "123456")
		require.NoError(t, err)
		assert.Equal(t, "reset-token", got)
	})

	t.Run("verify rejects wrong code", func(t *testing.T) {
		r := &MockUserRepo{}
		r.On("FindEnabledByEmail", ctx, "ana@caderh.hn").Return(user, nil)

		_, err := NewUserService(r, &MockTokens{}, &MockMailer{}, &MockAuditService{}, zap.NewNop()).VerifyRecovery(ctx, "ana@caderh.hn", "654321")
		assertValidation(t, err, MsgBadCode)
	})

	t.Run("reset requires a pending code", func(t *testing.T) {
		r := &MockUserRepo{}
		tok := &MockTokens{}
		noCode := &model.User{ID: user.ID}
		tok.On("ParseReset", "reset-token").Return(user.ID, nil)
		r.On("Get", ctx, user.ID).Return(noCode, nil)

		err := NewUserService(r, tok, &MockMailer{}, &MockAuditService{}, zap.NewNop()).ResetPassword(ctx, "reset-token", "new-password")
		assertValidation(t, err, MsgBadCode)
		r.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("reset clears the code", func(t *testing.T) {
		r := &MockUserRepo{}
		tok := &MockTokens{}
		a := &MockAuditService{}
		tok.On("ParseReset", "reset-token").Return(user.ID, nil)
		r.On("Get", ctx, user.ID).Return(user, nil)
		r.On("UpdateFields", ctx, user.ID, mock.MatchedBy(func(f map[string]interface{}) bool {
			_, has := f["verification_code"]
			return has && f["verification_code"] == nil && f["first_login"] == false
		})).Return(nil)
		a.On("Record", ctx, mock.Anything).Return(nil)

		err := NewUserService(r, tok, &MockMailer{}, a, zap.NewNop()).ResetPassword(ctx, "reset-token", "new-password")
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("start recovery is silent for unknown email", func(t *testing.T) {
		r := &MockUserRepo{}
		m := &MockMailer{}
		r.On("FindEnabledByEmail", ctx, "ghost@caderh.hn").Return(nil, gorm.ErrRecordNotFound)

		err := NewUserService(r, &MockTokens{}, m, &MockAuditService{}, zap.NewNop()).StartRecovery(ctx, "ghost@caderh.hn")
		require.NoError(t, err)
		m.AssertNotCalled(t, "SendRecoveryCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("disables user with role alias", func(t *testing.T) {
		r := &MockUserRepo{}
		a := &MockAuditService{}
		r.On("UpdateFields", ctx, id, map[string]interface{}{"name": "Ana", "role": model.RoleUser, "disabled": true}).Return(nil)
		a.On("Record", ctx, mock.Anything).Return(nil)

		err := NewUserService(r, &MockTokens{}, &MockMailer{}, a, zap.NewNop()).
			Update(ctx, uuid.New(), UpdateUserInput{ID: id, Name: "Ana", Role: "AGENT", Status: "DISABLED"})
		require.NoError(t, err)
		r.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		r := &MockUserRepo{}
		r.On("UpdateFields", ctx, id, mock.Anything).Return(gorm.ErrRecordNotFound)

		err := NewUserService(r, &MockTokens{}, &MockMailer{}, &MockAuditService{}, zap.NewNop()).
			Update(ctx, uuid.New(), UpdateUserInput{ID: id, Name: "Ana", Role: "USER", Status: "ACTIVE"})
		assertNotFound(t, err, "Usuario no encontrado")
	})
}
