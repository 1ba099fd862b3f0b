package expense_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mvargas/spendtrack/internal/expense"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params expense.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *expense.MockRepository)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: expense.CreateParams{
					Description: "Groceries",
					Amount:      decimal.RequireFromString("25.90"),
					Category:    "Food",
					Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				},
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params expense.CreateParams) (*expense.Expense, error) {
						now := time.Now()
						return &expense.Expense{
							ID:          1,
							Description: params.Description,
							Amount:      params.Amount,
							Category:    params.Category,
							Date:        params.Date,
							CreatedAt:   now,
							UpdatedAt:   now,
						}, nil
					})
			},
			wantErr: false,
		},
		{
			name: "RepoError",
			args: args{
				params: expense.CreateParams{
					Description: "Broken",
				},
			},
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					CreateExpense(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("store error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := expense.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.NotZero(t, got.ID)
		})
	}
}

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		id        int64
		setupMock func(m *expense.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			id:   7,
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					GetExpense(gomock.Any(), int64(7)).
					Return(&expense.Expense{ID: 7}, nil)
			},
		},
		{
			name: "NotFound",
			id:   8,
			setupMock: func(m *expense.MockRepository) {
				m.EXPECT().
					GetExpense(gomock.Any(), int64(8)).
					Return(nil, expense.ErrNotFound)
			},
			wantErr: expense.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := expense.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := expense.NewService(repo)
			got, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, got.ID)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := expense.NewMockRepository(ctrl)
	repo.EXPECT().DeleteExpense(gomock.Any(), int64(3)).Return(expense.ErrNotFound)

	svc := expense.NewService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), expense.ErrNotFound)
}
