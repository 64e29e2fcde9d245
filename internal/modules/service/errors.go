package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func validEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}

const (
	MsgMissingFields   = "Faltan campos requeridos"
	MsgInvalidName     = "Nombre inválido"
	MsgInvalidDesc     = "Descripción inválida"
	MsgBadCredentials  = "Incorrect username or password"
	MsgBadPassword     = "Wrong password format"
	MsgBadCode         = "Código de verificación incorrecto"
	MsgProjectNotFound = "Proyecto no encontrado"
	MsgFileNotFound    = "Archivo no encontrado"
	MsgMissingFile     = "Falta el archivo"
	MsgFileType        = "Tipo de archivo no permitido"
)

// ValidationError is a client error answered with 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError is answered with 404.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

func Invalid(msg string) error  { return &ValidationError{Msg: msg} }
func NotFound(msg string) error { return &NotFoundError{Msg: msg} }

// notFoundOr translates gorm's missing-row error, passing everything else through.
func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(msg)
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
