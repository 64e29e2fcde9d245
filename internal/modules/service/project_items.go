package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/modules/repo"
	"github.com/caderh/caderh-api/internal/pkg/types"
	"github.com/google/uuid"
)

const (
	MsgFinancingItem = "Cada item debe tener financing_source_id y amount"
	MsgDonationItem  = "Cada item debe tener amount y donation_type (CASH o SUPPLY)"
	MsgExpenseItem   = "Cada item debe tener amount"
	msgNegative      = "El monto no puede ser negativo"
	msgItemNotFound  = "Registro no encontrado"
)

type FinancingItemInput struct {
	FinancingSourceID string       `json:"financing_source_id"`
	Amount            types.Amount `json:"amount"`
	Description       string       `json:"description"`
}

type DonationItemInput struct {
	Amount       types.Amount `json:"amount"`
	DonationType string       `json:"donation_type"`
	Description  string       `json:"description"`
}

type ExpenseItemInput struct {
	Amount      types.Amount `json:"amount"`
	Description string       `json:"description"`
}

// ProjectItemService manages wizard steps 2-4. Replace* validates the whole batch
// before anything is written, and writes in one transaction.
type ProjectItemService interface {
	ListFinancingSources(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFinancingSource, error)
	ReplaceFinancingSources(ctx context.Context, actorID, projectID uuid.UUID, items []FinancingItemInput) error
	AddFinancingSource(ctx context.Context, actorID, projectID uuid.UUID, item FinancingItemInput) (uuid.UUID, error)
	DeleteFinancingSource(ctx context.Context, actorID, projectID, id uuid.UUID) error

	ListDonations(ctx context.Context, projectID uuid.UUID) ([]model.ProjectDonation, error)
	ReplaceDonations(ctx context.Context, actorID, projectID uuid.UUID, items []DonationItemInput) error
	AddDonation(ctx context.Context, actorID, projectID uuid.UUID, item DonationItemInput) (uuid.UUID, error)
	DeleteDonation(ctx context.Context, actorID, projectID, id uuid.UUID) error

	ListExpenses(ctx context.Context, projectID uuid.UUID) ([]model.ProjectExpense, error)
	ReplaceExpenses(ctx context.Context, actorID, projectID uuid.UUID, items []ExpenseItemInput) error
	AddExpense(ctx context.Context, actorID, projectID uuid.UUID, item ExpenseItemInput) (uuid.UUID, error)
	DeleteExpense(ctx context.Context, actorID, projectID, id uuid.UUID) error
}

type projectItemService struct {
	projects repo.ProjectRepo
	items    repo.ProjectItemRepo
	sources  repo.FinancingSourceRepo
	audit    AuditService
}

func NewProjectItemService(projects repo.ProjectRepo, items repo.ProjectItemRepo, sources repo.FinancingSourceRepo, audit AuditService) ProjectItemService {
	return &projectItemService{projects: projects, items: items, sources: sources, audit: audit}
}

func (s *projectItemService) ensure(ctx context.Context, projectID uuid.UUID) error {
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return notFoundOr(err, MsgProjectNotFound)
	}
	return nil
}

func (s *projectItemService) record(ctx context.Context, actorID, projectID uuid.UUID, action, entity, log string) error {
	return s.audit.Record(ctx, AuditEvent{
		ActorID:    actorID,
		Action:     action,
		EntityType: entity,
		EntityID:   projectID.String(),
		ProjectID:  &projectID,
		Log:        log,
	})
}

func checkAmount(a types.Amount, missingMsg string) error {
	if !a.Set {
		return Invalid(missingMsg)
	}
	if a.Cents < 0 {
		return Invalid(msgNegative)
	}
	return nil
}

// financingRows validates every item and resolves the referenced sources in one query.
func (s *projectItemService) financingRows(ctx context.Context, projectID uuid.UUID, items []FinancingItemInput) ([]model.ProjectFinancingSource, error) {
	rows := make([]model.ProjectFinancingSource, 0, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		raw := strings.TrimSpace(it.FinancingSourceID)
		if raw == "" || !it.Amount.Set {
			return nil, Invalid(MsgFinancingItem)
		}
		if err := checkAmount(it.Amount, MsgFinancingItem); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, Invalid(fmt.Sprintf("%s: %s", msgFinancingSourceNotFound, raw))
		}
		ids = append(ids, id)
		rows = append(rows, model.ProjectFinancingSource{
			ProjectID:         projectID,
			FinancingSourceID: id,
			Amount:            it.Amount.Cents,
			Description:       strings.TrimSpace(it.Description),
		})
	}
	if len(ids) == 0 {
		return rows, nil
	}

	existing, err := s.sources.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	known := make(map[uuid.UUID]bool, len(existing))
	for _, id := range existing {
		known[id] = true
	}
	for _, id := range ids {
		if !known[id] {
			return nil, Invalid(fmt.Sprintf("%s: %s", msgFinancingSourceNotFound, id))
		}
	}
	return rows, nil
}

func donationRow(projectID uuid.UUID, it DonationItemInput) (model.ProjectDonation, error) {
	if err := checkAmount(it.Amount, MsgDonationItem); err != nil {
		return model.ProjectDonation{}, err
	}
	dt, ok := model.ParseDonationType(it.DonationType)
	if !ok {
		return model.ProjectDonation{}, Invalid(MsgDonationItem)
	}
	return model.ProjectDonation{
		ProjectID:    projectID,
		Amount:       it.Amount.Cents,
		DonationType: dt,
		Description:  strings.TrimSpace(it.Description),
	}, nil
}

func expenseRow(projectID uuid.UUID, it ExpenseItemInput) (model.ProjectExpense, error) {
	if err := checkAmount(it.Amount, MsgExpenseItem); err != nil {
		return model.ProjectExpense{}, err
	}
	return model.ProjectExpense{
		ProjectID:   projectID,
		Amount:      it.Amount.Cents,
		Description: strings.TrimSpace(it.Description),
	}, nil
}

func (s *projectItemService) ListFinancingSources(ctx context.Context, projectID uuid.UUID) ([]model.ProjectFinancingSource, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return nil, err
	}
	return s.items.ListFinancingSources(ctx, projectID)
}

func (s *projectItemService) ReplaceFinancingSources(ctx context.Context, actorID, projectID uuid.UUID, items []FinancingItemInput) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	rows, err := s.financingRows(ctx, projectID, items)
	if err != nil {
		return err
	}
	if err := s.items.ReplaceFinancingSources(ctx, projectID, rows); err != nil {
		return err
	}
	return s.record(ctx, actorID, projectID, ActionUpdate, "project_financing_sources",
		fmt.Sprintf("Actualizó fuentes de financiamiento del proyecto ID: %s", projectID))
}

func (s *projectItemService) AddFinancingSource(ctx context.Context, actorID, projectID uuid.UUID, item FinancingItemInput) (uuid.UUID, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return uuid.Nil, err
	}
	rows, err := s.financingRows(ctx, projectID, []FinancingItemInput{item})
	if err != nil {
		return uuid.Nil, err
	}
	row := rows[0]
	if err := s.items.AddFinancingSource(ctx, &row); err != nil {
		return uuid.Nil, err
	}
	return row.ID, s.record(ctx, actorID, projectID, ActionCreate, "project_financing_sources",
		fmt.Sprintf("Agregó fuente de financiamiento al proyecto ID: %s", projectID))
}

func (s *projectItemService) DeleteFinancingSource(ctx context.Context, actorID, projectID, id uuid.UUID) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	if err := s.items.DeleteFinancingSource(ctx, projectID, id); err != nil {
		return notFoundOr(err, msgItemNotFound)
	}
	return s.record(ctx, actorID, projectID, ActionDelete, "project_financing_sources",
		fmt.Sprintf("Eliminó fuente de financiamiento del proyecto ID: %s", projectID))
}

func (s *projectItemService) ListDonations(ctx context.Context, projectID uuid.UUID) ([]model.ProjectDonation, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return nil, err
	}
	return s.items.ListDonations(ctx, projectID)
}

func (s *projectItemService) ReplaceDonations(ctx context.Context, actorID, projectID uuid.UUID, items []DonationItemInput) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	rows := make([]model.ProjectDonation, 0, len(items))
	for _, it := range items {
		row, err := donationRow(projectID, it)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if err := s.items.ReplaceDonations(ctx, projectID, rows); err != nil {
		return err
	}
	return s.record(ctx, actorID, projectID, ActionUpdate, "project_donations",
		fmt.Sprintf("Actualizó donaciones del proyecto ID: %s", projectID))
}

func (s *projectItemService) AddDonation(ctx context.Context, actorID, projectID uuid.UUID, item DonationItemInput) (uuid.UUID, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return uuid.Nil, err
	}
	row, err := donationRow(projectID, item)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.items.AddDonation(ctx, &row); err != nil {
		return uuid.Nil, err
	}
	return row.ID, s.record(ctx, actorID, projectID, ActionCreate, "project_donations",
		fmt.Sprintf("Agregó donación al proyecto ID: %s", projectID))
}

func (s *projectItemService) DeleteDonation(ctx context.Context, actorID, projectID, id uuid.UUID) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	if err := s.items.DeleteDonation(ctx, projectID, id); err != nil {
		return notFoundOr(err, msgItemNotFound)
	}
	return s.record(ctx, actorID, projectID, ActionDelete, "project_donations",
		fmt.Sprintf("Eliminó donación del proyecto ID: %s", projectID))
}

func (s *projectItemService) ListExpenses(ctx context.Context, projectID uuid.UUID) ([]model.ProjectExpense, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return nil, err
	}
	return s.items.ListExpenses(ctx, projectID)
}

func (s *projectItemService) ReplaceExpenses(ctx context.Context, actorID, projectID uuid.UUID, items []ExpenseItemInput) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	rows := make([]model.ProjectExpense, 0, len(items))
	for _, it := range items {
		row, err := expenseRow(projectID, it)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	if err := s.items.ReplaceExpenses(ctx, projectID, rows); err != nil {
		return err
	}
	return s.record(ctx, actorID, projectID, ActionUpdate, "project_expenses",
		fmt.Sprintf("Actualizó gastos del proyecto ID: %s", projectID))
}

func (s *projectItemService) AddExpense(ctx context.Context, actorID, projectID uuid.UUID, item ExpenseItemInput) (uuid.UUID, error) {
	if err := s.ensure(ctx, projectID); err != nil {
		return uuid.Nil, err
	}
	row, err := expenseRow(projectID, item)
	if err != nil {
		return uuid.Nil, err
	}
	if err := s.items.AddExpense(ctx, &row); err != nil {
		return uuid.Nil, err
	}
	return row.ID, s.record(ctx, actorID, projectID, ActionCreate, "project_expenses",
		fmt.Sprintf("Agregó gasto al proyecto ID: %s", projectID))
}

func (s *projectItemService) DeleteExpense(ctx context.Context, actorID, projectID, id uuid.UUID) error {
	if err := s.ensure(ctx, projectID); err != nil {
		return err
	}
	if err := s.items.DeleteExpense(ctx, projectID, id); err != nil {
		return notFoundOr(err, msgItemNotFound)
	}
	return s.record(ctx, actorID, projectID, ActionDelete, "project_expenses",
		fmt.Sprintf("Eliminó gasto del proyecto ID: %s", projectID))
}
