package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/caderh/caderh-api/internal/infra/mailer"
	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/paging"
	"github.com/caderh/caderh-api/internal/pkg/secrets"
	"github.com/caderh/caderh-api/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minPasswordLen     = 8
	generatedPassLen   = 8
	verificationDigits = 6

	StatusActive   = "ACTIVE"
	StatusDisabled = "DISABLED"
)

// TokenIssuer is satisfied by *tokens.Manager.
type TokenIssuer interface {
	Issue(userID uuid.UUID, role string) (string, error)
	IssueReset(userID uuid.UUID) (string, error)
	ParseReset(raw string) (uuid.UUID, error)
}

type LoginOutput struct {
	Session    string `json:"session"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	FirstLogin bool   `json:"first_login"`
}

type CreateUserInput struct {
	Email string
	Name  string
	Role  string
}

type UpdateUserInput struct {
	ID     uuid.UUID
	Name   string
	Role   string
	Status string
}

type UserService interface {
	Login(ctx context.Context, email, password string) (*LoginOutput, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, password string) error
	StartRecovery(ctx context.Context, email string) error
	VerifyRecovery(ctx context.Context, email, code string) (string, error)
	ResetPassword(ctx context.Context, resetToken, password string) error
	ResendVerification(ctx context.Context, email string) error

	Create(ctx context.Context, actorID uuid.UUID, in CreateUserInput) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	List(ctx context.Context, p paging.Query) ([]model.User, int64, error)
	Update(ctx context.Context, actorID uuid.UUID, in UpdateUserInput) error
	ListAgents(ctx context.Context) ([]model.UserOption, error)
}

type userService struct {
	r      repo.UserRepo
	tokens TokenIssuer
	mail   mailer.Mailer
	audit  AuditService
	log    *zap.Logger
}

func NewUserService(r repo.UserRepo, tokens TokenIssuer, m mailer.Mailer, audit AuditService, log *zap.Logger) UserService {
	return &userService{r: r, tokens: tokens, mail: m, audit: audit, log: log}
}

func (s *userService) Login(ctx context.Context, email, password string) (*LoginOutput, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, Invalid(MsgBadCredentials)
	}
	u, err := s.r.FindEnabledByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, Invalid(MsgBadCredentials)
		}
		return nil, err
	}
	if !secrets.CheckPassword(u.Password, password) {
		return nil, Invalid(MsgBadCredentials)
	}

	tok, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Session:    tok,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		FirstLogin: u.FirstLogin,
	}, nil
}

func (s *userService) setPassword(ctx context.Context, id uuid.UUID, password string) error {
	hash, err := secrets.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	err = s.r.UpdateFields(ctx, id, map[string]interface{}{
		"password":          hash,
		"first_login":       false,
		"verification_code": nil,
	})
	return notFoundOr(err, "Usuario no encontrado")
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, password string) error {
	if len(password) < minPasswordLen {
		return Invalid(MsgBadPassword)
	}
	if err := s.setPassword(ctx, userID, password); err != nil {
		return err
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    userID,
		Action:     ActionPassword,
		EntityType: "user",
		EntityID:   userID.String(),
		Log:        "Cambió su contraseña",
	})
}

func (s *userService) StartRecovery(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return Invalid(MsgMissingFields)
	}
	u, err := s.r.FindEnabledByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			// unknown addresses get the same answer
			return nil
		}
		return err
	}

	code, err := utils.GenerateNumericCode(verificationDigits)
	if err != nil {
		return err
	}
	if err := s.r.UpdateFields(ctx, u.ID, map[string]interface{}{"verification_code": code}); err != nil {
		return err
	}
	if err := s.mail.SendRecoveryCode(ctx, u.Email, u.Name, code); err != nil {
		s.log.Sugar().Errorw("send recovery code", "user_id", u.ID, "err", err)
	}
	return nil
}

func (s *userService) VerifyRecovery(ctx context.Context, email, code string) (string, error) {
	code = strings.TrimSpace(code)
	if strings.TrimSpace(email) == "" || code == "" {
		return "", Invalid(MsgMissingFields)
	}
	u, err := s.r.FindEnabledByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return "", Invalid(MsgBadCode)
		}
		return "", err
	}
	if u.VerificationCode == nil || subtle.ConstantTimeCompare([]byte(*u.VerificationCode), []byte(code)) != 1 {
		return "", Invalid(MsgBadCode)
	}
	return s.tokens.IssueReset(u.ID)
}

func (s *userService) ResetPassword(ctx context.Context, resetToken, password string) error {
	if resetToken == "" || password == "" {
		return Invalid(MsgMissingFields)
	}
	if len(password) < minPasswordLen {
		return Invalid(MsgBadPassword)
	}
	id, err := s.tokens.ParseReset(resetToken)
	if err != nil {
		return Invalid(MsgBadCode)
	}
	u, err := s.r.Get(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return Invalid(MsgBadCode)
		}
		return err
	}
	// the token is single use: the pending code is cleared below
	if u.Disabled || u.VerificationCode == nil {
		return Invalid(MsgBadCode)
	}
	if err := s.setPassword(ctx, u.ID, password); err != nil {
		return err
	}
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    u.ID,
		Action:     ActionPassword,
		EntityType: "user",
		EntityID:   u.ID.String(),
		Log:        "Recuperó su contraseña",
	})
}

func (s *userService) ResendVerification(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return Invalid(MsgMissingFields)
	}
	u, err := s.r.FindEnabledByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	if u.VerificationCode == nil {
		return nil
	}
	if err := s.mail.SendRecoveryCode(ctx, u.Email, u.Name, *u.VerificationCode); err != nil {
		s.log.Sugar().Errorw("resend recovery code", "user_id", u.ID, "err", err)
	}
	return nil
}

func (s *userService) Create(ctx context.Context, actorID uuid.UUID, in CreateUserInput) (*model.User, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || strings.TrimSpace(in.Role) == "" {
		return nil, Invalid(MsgMissingFields)
	}
	role, ok := model.NormalizeRole(in.Role)
	if !ok {
		return nil, Invalid("Rol inválido")
	}
	if !validEmail(email) {
		return nil, Invalid("Correo electrónico inválido")
	}

	if _, err := s.r.FindByEmail(ctx, email); err == nil {
		return nil, Invalid("Correo electrónico en uso")
	} else if !isNotFound(err) {
		return nil, err
	}

	password, err := utils.GeneratePassword(generatedPassLen)
	if err != nil {
		return nil, err
	}
	hash, err := secrets.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &model.User{
		Email:      email,
		Name:       name,
		Role:       role,
		Password:   hash,
		FirstLogin: true,
	}
	if err := s.r.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, Invalid("Correo electrónico en uso")
		}
		return nil, err
	}

	if err := s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionCreate,
		EntityType: "user",
		EntityID:   u.ID.String(),
		Log:        fmt.Sprintf("Creó usuario ID: %s, EMAIL: %s", u.ID, u.Email),
		Details:    map[string]interface{}{"email": u.Email, "role": u.Role},
	}); err != nil {
		return nil, err
	}

	if err := s.mail.SendAccountEmail(ctx, u.Email, u.Name, password, model.RoleLabel(u.Role)); err != nil {
		s.log.Sugar().Errorw("send account email", "user_id", u.ID, "err", err)
	}
	return u, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Usuario no encontrado")
	}
	return u, nil
}

func (s *userService) List(ctx context.Context, p paging.Query) ([]model.User, int64, error) {
	return s.r.List(ctx, p)
}

func (s *userService) Update(ctx context.Context, actorID uuid.UUID, in UpdateUserInput) error {
	name := strings.TrimSpace(in.Name)
	if in.ID == uuid.Nil || name == "" || in.Role == "" || in.Status == "" {
		return Invalid(MsgMissingFields)
	}
	role, ok := model.NormalizeRole(in.Role)
	if !ok {
		return Invalid("Rol inválido")
	}
	var disabled bool
	switch strings.ToUpper(in.Status) {
	case StatusActive:
	case StatusDisabled:
		disabled = true
	default:
		return Invalid("Estado inválido")
	}

	if err := s.r.UpdateFields(ctx, in.ID, map[string]interface{}{
		"name":     name,
		"role":     role,
		"disabled": disabled,
	}); err != nil {
		return notFoundOr(err, "Usuario no encontrado")
	}

	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     ActionUpdate,
		EntityType: "user",
		EntityID:   in.ID.String(),
		Log:        fmt.Sprintf("Actualizó usuario ID: %s, NOMBRE: %s, ROL: %s, DESHABILITADO: %t", in.ID, name, role, disabled),
	})
}

func (s *userService) ListAgents(ctx context.Context) ([]model.UserOption, error) {
	return s.r.ListOptions(ctx, model.RoleUser)
}
