package service

import (
	"context"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/caderh/caderh-api/internal/modules/model"
	"github.com/caderh/caderh-api/internal/pkg/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newItemService(p *MockProjectRepo, i *MockProjectItemRepo, fs *MockFinancingSourceRepo, a *MockAuditService) ProjectItemService {
	return NewProjectItemService(p, i, fs, a)
}

func TestProjectItemService_ReplaceFinancingSources(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()
	known := uuid.New()
	unknown := uuid.New()

	tests := []struct {
		name    string
		items   []FinancingItemInput
		setup   func(*MockFinancingSourceRepo, *MockProjectItemRepo, *MockAuditService)
		wantErr string
	}{
		{
			name: "valid batch replaces in order",
			items: []FinancingItemInput{
				{FinancingSourceID: known.String(), Amount: types.NewAmount(150000)},
				{FinancingSourceID: known.String(), Amount: types.NewAmount(0), Description: " segunda "},
			},
			setup: func(fs *MockFinancingSourceRepo, i *MockProjectItemRepo, a *MockAuditService) {
				fs.On("ExistingIDs", ctx, []uuid.UUID{known, known}).Return([]uuid.UUID{known}, nil)
				i.On("ReplaceFinancingSources", ctx, pid, mock.MatchedBy(func(rows []model.ProjectFinancingSource) bool {
					return len(rows) == 2 && rows[0].Amount == 150000 && rows[1].Description == "segunda"
				})).Return(nil)
				a.On("Record", ctx, mock.MatchedBy(func(ev AuditEvent) bool {
					return ev.ProjectID != nil && *ev.ProjectID == pid
				})).Return(nil)
			},
		},
		{
			name:  "empty batch clears the collection",
			items: nil,
			setup: func(fs *MockFinancingSourceRepo, i *MockProjectItemRepo, a *MockAuditService) {
				i.On("ReplaceFinancingSources", ctx, pid, []model.ProjectFinancingSource{}).Return(nil)
				a.On("Record", ctx, mock.Anything).Return(nil)
			},
		},
		{
			name: "malformed uuid rejects the whole batch",
			items: []FinancingItemInput{
				{FinancingSourceID: known.String(), Amount: types.NewAmount(1)},
				{FinancingSourceID: "not-a-uuid", Amount: types.NewAmount(1)},
			},
			setup:   func(fs *MockFinancingSourceRepo, i *MockProjectItemRepo, a *MockAuditService) {},
			wantErr: "Fuente de financiamiento no encontrada: not-a-uuid",
		},
		{
			name: "unknown source",
			items: []FinancingItemInput{
				{FinancingSourceID: unknown.String(), Amount: types.NewAmount(1)},
			},
			setup: func(fs *MockFinancingSourceRepo, i *MockProjectItemRepo, a *MockAuditService) {
				fs.On("ExistingIDs", ctx, []uuid.UUID{unknown}).Return([]uuid.UUID{}, nil)
			},
			wantErr: "Fuente de financiamiento no encontrada: " + unknown.String(),
		},
		{
			name:    "missing amount",
			items:   []FinancingItemInput{{FinancingSourceID: known.String()}},
			setup:   func(fs *MockFinancingSourceRepo, i *MockProjectItemRepo, a *MockAuditService) {},
			wantErr: MsgFinancingItem,
		},
		{
			name:    "negative amount",
			items:   []FinancingItemInput{{FinancingSourceID: known.String(), Amount: types.NewAmount(-5)}},
			setup:   func(fs *MockFinancingSourceRepo, i *MockProjectItemRepo, a *MockAuditService) {},
			wantErr: msgNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &MockProjectRepo{}
			i := &MockProjectItemRepo{}
			fs := &MockFinancingSourceRepo{}
			a := &MockAuditService{}
			p.On("Get", ctx, pid).Return(&model.Project{ID: pid, ProjectStatus: model.ProjectActive}, nil)
			tt.setup(fs, i, a)

			err := newItemService(p, i, fs, a).ReplaceFinancingSources(ctx, uuid.New(), pid, tt.items)
			if tt.wantErr != "" {
				assertValidation(t, err, tt.wantErr)
				i.AssertNotCalled(t, "ReplaceFinancingSources", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
			}
			i.AssertExpectations(t)
			fs.AssertExpectations(t)
			a.AssertExpectations(t)
		})
	}
}

func TestProjectItemService_ReplaceDonations(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()

	var items []DonationItemInput
	require.NoError(t, sonic.Unmarshal([]byte(`[
		{"amount": "2500", "donation_type": "CASH"},
		{"amount": 100, "donation_type": "suministros", "description": "Pupitres"}
	]`), &items))

	p := &MockProjectRepo{}
	i := &MockProjectItemRepo{}
	a := &MockAuditService{}
	p.On("Get", ctx, pid).Return(&model.Project{ID: pid}, nil)
	i.On("ReplaceDonations", ctx, pid, mock.MatchedBy(func(rows []model.ProjectDonation) bool {
		return len(rows) == 2 &&
			rows[0].Amount == 2500 && rows[0].DonationType == model.DonationCash &&
			rows[1].DonationType == model.DonationSupply
	})).Return(nil)
	a.On("Record", ctx, mock.Anything).Return(nil)

	err := newItemService(p, i, &MockFinancingSourceRepo{}, a).ReplaceDonations(ctx, uuid.New(), pid, items)
	require.NoError(t, err)
	i.AssertExpectations(t)

	t.Run("bad donation type rejects the batch", func(t *testing.T) {
		i := &MockProjectItemRepo{}
		err := newItemService(p, i, &MockFinancingSourceRepo{}, &MockAuditService{}).ReplaceDonations(ctx, uuid.New(), pid, []DonationItemInput{
			{Amount: types.NewAmount(1), DonationType: "CASH"},
			{Amount: types.NewAmount(1), DonationType: "BITCOIN"},
		})
		assertValidation(t, err, MsgDonationItem)
		i.AssertNotCalled(t, "ReplaceDonations", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProjectItemService_DeletedProject(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()
	p := &MockProjectRepo{}
	i := &MockProjectItemRepo{}
	p.On("Get", ctx, pid).Return(nil, gorm.ErrRecordNotFound)
	svc := newItemService(p, i, &MockFinancingSourceRepo{}, &MockAuditService{})

	_, err := svc.ListExpenses(ctx, pid)
	assertNotFound(t, err, MsgProjectNotFound)

	err = svc.ReplaceExpenses(ctx, uuid.New(), pid, []ExpenseItemInput{{Amount: types.NewAmount(1)}})
	assertNotFound(t, err, MsgProjectNotFound)

	_, err = svc.AddExpense(ctx, uuid.New(), pid, ExpenseItemInput{Amount: types.NewAmount(1)})
	assertNotFound(t, err, MsgProjectNotFound)
	i.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestProjectItemService_AddAndDeleteExpense(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()
	rowID := uuid.New()
	p := &MockProjectRepo{}
	i := &MockProjectItemRepo{}
	a := &MockAuditService{}
	p.On("Get", ctx, pid).Return(&model.Project{ID: pid}, nil)
	i.On("AddExpense", ctx, mock.AnythingOfType("*model.ProjectExpense")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.ProjectExpense).ID = rowID
	}).Return(nil)
	i.On("DeleteExpense", ctx, pid, rowID).Return(nil).Once()
	i.On("DeleteExpense", ctx, pid, rowID).Return(gorm.ErrRecordNotFound).Once()
	a.On("Record", ctx, mock.Anything).Return(nil)
	svc := newItemService(p, i, &MockFinancingSourceRepo{}, a)

	id, err := svc.AddExpense(ctx, uuid.New(), pid, ExpenseItemInput{Amount: types.NewAmount(990)})
	require.NoError(t, err)
	assert.Equal(t, rowID, id)

	require.NoError(t, svc.DeleteExpense(ctx, uuid.New(), pid, rowID))
	assertNotFound(t, svc.DeleteExpense(ctx, uuid.New(), pid, rowID), msgItemNotFound)
}
