package contract_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trungle-dev/renty/internal/actor"
	"github.com/trungle-dev/renty/internal/apperr"
	"github.com/trungle-dev/renty/internal/contract"
	"github.com/trungle-dev/renty/internal/property"
)

func datePtr(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestService_Create_Validation(t *testing.T) {
	type testCase struct {
		name   string
		params contract.CreateParams
	}

	tests := []testCase{
		{
			name: "RentalWithoutStartDate",
			params: contract.CreateParams{
				ApartmentID: uuid.New(),
				ResidentID:  uuid.New(),
				Type:        contract.TypeRental,
				MonthlyRent: 5_000_000,
			},
		},
		{
			name: "RentalEndBeforeStart",
			params: contract.CreateParams{
				ApartmentID: uuid.New(),
				ResidentID:  uuid.New(),
				Type:        contract.TypeRental,
				StartDate:   datePtr(2026, 6, 1),
				EndDate:     datePtr(2026, 5, 1),
				MonthlyRent: 5_000_000,
			},
		},
		{
			name: "RentalEndEqualsStart",
			params: contract.CreateParams{
				ApartmentID: uuid.New(),
				ResidentID:  uuid.New(),
				Type:        contract.TypeRental,
				StartDate:   datePtr(2026, 6, 1),
				EndDate:     datePtr(2026, 6, 1),
				MonthlyRent: 5_000_000,
			},
		},
		{
			name: "ZeroRent",
			params: contract.CreateParams{
				ApartmentID: uuid.New(),
				ResidentID:  uuid.New(),
				Type:        contract.TypeRental,
				StartDate:   datePtr(2026, 6, 1),
			},
		},
		{
			name: "UnknownType",
			params: contract.CreateParams{
				ApartmentID: uuid.New(),
				ResidentID:  uuid.New(),
				Type:        contract.Type("lease-to-own"),
				MonthlyRent: 5_000_000,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository call may happen on a validation failure.
			repo := contract.NewMockRepository(ctrl)
			svc := contract.NewService(repo)

			_, err := svc.Create(context.Background(), tt.params, nil)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestService_Create_Rental(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	tx := contract.NewMockTx(ctrl)
	svc := contract.NewService(repo)

	apartmentID := uuid.New()
	start := datePtr(2026, 6, 1)

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		GetApartmentForUpdate(gomock.Any(), apartmentID).
		Return(&contract.ApartmentState{ID: apartmentID, Status: property.ApartmentAvailable}, nil)
	tx.EXPECT().
		CreateContract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *contract.Contract) error {
			c.ID = uuid.New()
			return nil
		})
	tx.EXPECT().
		ReplaceServices(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, lines []*contract.ServiceLine) error {
			require.Len(t, lines, 1)
			// Lines start from the contract start date.
			assert.Equal(t, *start, lines[0].AppliedFrom)
			return nil
		})
	tx.EXPECT().
		AppendHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *contract.HistoryEntry) error {
			assert.Equal(t, contract.ActionCreated, h.Action)
			return nil
		})
	tx.EXPECT().
		SetApartmentStatus(gomock.Any(), apartmentID, property.ApartmentRented, property.CauseNone).
		Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	c, err := svc.Create(context.Background(), contract.CreateParams{
		ApartmentID: apartmentID,
		ResidentID:  uuid.New(),
		Type:        contract.TypeRental,
		SignedDate:  start.AddDate(0, 0, -7),
		StartDate:   start,
		EndDate:     datePtr(2027, 6, 1),
		MonthlyRent: 5_000_000,
		Deposit:     10_000_000,
	}, []contract.ServiceParams{
		{ServiceID: uuid.New(), Name: "water", UnitPrice: 20_000},
	})
	require.NoError(t, err)
	assert.Equal(t, contract.StatusActive, c.Status)
}

func TestService_Create_OwnershipDropsDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	tx := contract.NewMockTx(ctrl)
	svc := contract.NewService(repo)

	apartmentID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		GetApartmentForUpdate(gomock.Any(), apartmentID).
		Return(&contract.ApartmentState{ID: apartmentID, Status: property.ApartmentAvailable}, nil)
	tx.EXPECT().
		CreateContract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *contract.Contract) error {
			c.ID = uuid.New()
			assert.Nil(t, c.StartDate)
			assert.Nil(t, c.EndDate)
			return nil
		})
	tx.EXPECT().ReplaceServices(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().
		SetApartmentStatus(gomock.Any(), apartmentID, property.ApartmentOwned, property.CauseNone).
		Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), contract.CreateParams{
		ApartmentID: apartmentID,
		ResidentID:  uuid.New(),
		Type:        contract.TypeOwnership,
		StartDate:   datePtr(2026, 6, 1), // must be discarded
		EndDate:     datePtr(2027, 6, 1),
		MonthlyRent: 1_800_000_000,
	}, nil)
	require.NoError(t, err)
}

func TestService_Create_OccupiedApartment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	tx := contract.NewMockTx(ctrl)
	svc := contract.NewService(repo)

	apartmentID := uuid.New()

	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		GetApartmentForUpdate(gomock.Any(), apartmentID).
		Return(&contract.ApartmentState{ID: apartmentID, Status: property.ApartmentRented}, nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Create(context.Background(), contract.CreateParams{
		ApartmentID: apartmentID,
		ResidentID:  uuid.New(),
		Type:        contract.TypeRental,
		StartDate:   datePtr(2026, 6, 1),
		MonthlyRent: 5_000_000,
	}, nil)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_Renew(t *testing.T) {
	contractID := uuid.New()
	start := datePtr(2026, 1, 1)

	type testCase struct {
		name      string
		existing  *contract.Contract
		newEnd    time.Time
		setupMock func(repo *contract.MockRepository, tx *contract.MockTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "OwnershipRejected",
			existing: &contract.Contract{
				ID:     contractID,
				Type:   contract.TypeOwnership,
				Status: contract.StatusActive,
			},
			newEnd:  start.AddDate(1, 0, 0),
			wantErr: apperr.ErrInvalidOperation,
		},
		{
			name: "TerminatedRejected",
			existing: &contract.Contract{
				ID:        contractID,
				Type:      contract.TypeRental,
				Status:    contract.StatusTerminated,
				StartDate: start,
			},
			newEnd:  start.AddDate(1, 0, 0),
			wantErr: apperr.ErrInvalidOperation,
		},
		{
			name: "EndEqualsStartRejected",
			existing: &contract.Contract{
				ID:        contractID,
				Type:      contract.TypeRental,
				Status:    contract.StatusActive,
				StartDate: start,
			},
			newEnd:  *start,
			wantErr: apperr.ErrValidation,
		},
		{
			name: "Renewed",
			existing: &contract.Contract{
				ID:          contractID,
				Type:        contract.TypeRental,
				Status:      contract.StatusActive,
				StartDate:   start,
				EndDate:     datePtr(2026, 12, 31),
				MonthlyRent: 5_000_000,
			},
			newEnd: start.AddDate(2, 0, 0),
			setupMock: func(repo *contract.MockRepository, tx *contract.MockTx) {
				repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
				tx.EXPECT().UpdateContract(gomock.Any(), gomock.Any()).Return(nil)
				tx.EXPECT().
					AppendHistory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, h *contract.HistoryEntry) error {
						assert.Equal(t, contract.ActionRenewed, h.Action)
						return nil
					})
				tx.EXPECT().Commit().Return(nil)
				tx.EXPECT().Rollback().Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := contract.NewMockRepository(ctrl)
			tx := contract.NewMockTx(ctrl)
			svc := contract.NewService(repo)

			repo.EXPECT().GetContract(gomock.Any(), contractID).Return(tt.existing, nil)

			if tt.setupMock != nil {
				tt.setupMock(repo, tx)
			}

			newRent := int64(6_000_000)

			c, err := svc.Renew(context.Background(), contractID, tt.newEnd, &newRent)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.newEnd, *c.EndDate)
			assert.Equal(t, newRent, c.MonthlyRent)
			// Renewal never touches the stored status.
			assert.Equal(t, contract.StatusActive, c.Status)
		})
	}
}

func TestService_Terminate_AlreadyTerminated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	svc := contract.NewService(repo)

	contractID := uuid.New()

	// No transaction, no history: the second terminate is rejected
	// before any write.
	repo.EXPECT().
		GetContract(gomock.Any(), contractID).
		Return(&contract.Contract{ID: contractID, Status: contract.StatusTerminated}, nil)

	_, err := svc.Terminate(context.Background(), contractID, time.Now(), 0, "tenant moved out")
	assert.ErrorIs(t, err, apperr.ErrInvalidOperation)
}

func TestService_Terminate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	tx := contract.NewMockTx(ctrl)
	svc := contract.NewService(repo)

	contractID := uuid.New()
	apartmentID := uuid.New()
	when := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		GetContract(gomock.Any(), contractID).
		Return(&contract.Contract{
			ID:          contractID,
			ApartmentID: apartmentID,
			Type:        contract.TypeRental,
			Status:      contract.StatusActive,
		}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().
		UpdateContract(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *contract.Contract) error {
			assert.Equal(t, contract.StatusTerminated, c.Status)
			return nil
		})
	tx.EXPECT().
		AppendHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *contract.HistoryEntry) error {
			assert.Equal(t, contract.ActionTerminated, h.Action)
			assert.Equal(t, int64(2_000_000), h.RefundAmount)
			assert.Equal(t, "tenant moved out", h.Reason)
			assert.Equal(t, when, h.OccurredAt)
			assert.Equal(t, "lan.pham", h.ActorName)
			return nil
		})
	tx.EXPECT().
		GetApartmentForUpdate(gomock.Any(), apartmentID).
		Return(&contract.ApartmentState{ID: apartmentID, Status: property.ApartmentRented}, nil)
	tx.EXPECT().
		SetApartmentStatus(gomock.Any(), apartmentID, property.ApartmentAvailable, property.CauseNone).
		Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	ctx := actor.WithActor(context.Background(), actor.Actor{ID: uuid.New(), Name: "lan.pham"})

	c, err := svc.Terminate(ctx, contractID, when, 2_000_000, "tenant moved out")
	require.NoError(t, err)
	assert.Equal(t, contract.StatusTerminated, c.Status)
}

func TestService_Terminate_UnderMaintenanceOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	tx := contract.NewMockTx(ctrl)
	svc := contract.NewService(repo)

	contractID := uuid.New()
	apartmentID := uuid.New()

	repo.EXPECT().
		GetContract(gomock.Any(), contractID).
		Return(&contract.Contract{
			ID:          contractID,
			ApartmentID: apartmentID,
			Type:        contract.TypeRental,
			Status:      contract.StatusActive,
		}, nil)
	repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	tx.EXPECT().UpdateContract(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().AppendHistory(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().
		GetApartmentForUpdate(gomock.Any(), apartmentID).
		Return(&contract.ApartmentState{
			ID:           apartmentID,
			Status:       property.ApartmentRented,
			UnderOverlay: true,
		}, nil)
	// The building is under maintenance: the released apartment joins
	// the cascade instead of going back to available.
	tx.EXPECT().
		SetApartmentStatus(gomock.Any(), apartmentID, property.ApartmentMaintenance, property.CauseCascade).
		Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	_, err := svc.Terminate(context.Background(), contractID, time.Now(), 0, "")
	require.NoError(t, err)
}

func TestService_ListExpiring(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	svc := contract.NewService(repo)

	now := time.Now()
	soon := now.Add(10 * 24 * time.Hour)
	far := now.Add(120 * 24 * time.Hour)

	repo.EXPECT().ListActive(gomock.Any()).Return([]*contract.Contract{
		{ID: uuid.New(), Status: contract.StatusActive, EndDate: &soon},
		{ID: uuid.New(), Status: contract.StatusActive, EndDate: &far},
		{ID: uuid.New(), Status: contract.StatusActive},
	}, nil)

	got, err := svc.ListExpiring(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, &soon, got[0].EndDate)
}

func TestService_BuildingHasBlocking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	svc := contract.NewService(repo)

	buildingID := uuid.New()
	now := time.Now()
	past := now.Add(-24 * time.Hour)

	// An expired-but-still-ACTIVE contract blocks just like a current one.
	repo.EXPECT().ListByBuilding(gomock.Any(), buildingID).Return([]*contract.Contract{
		{ID: uuid.New(), Status: contract.StatusTerminated},
		{ID: uuid.New(), Status: contract.StatusActive, EndDate: &past},
	}, nil)

	blocked, err := svc.BuildingHasBlocking(context.Background(), buildingID, now)
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestService_ApartmentHasBlocking_AllTerminated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := contract.NewMockRepository(ctrl)
	svc := contract.NewService(repo)

	apartmentID := uuid.New()

	repo.EXPECT().ListByApartment(gomock.Any(), apartmentID).Return([]*contract.Contract{
		{ID: uuid.New(), Status: contract.StatusTerminated},
		{ID: uuid.New(), Status: contract.StatusCancelled},
	}, nil)

	blocked, err := svc.ApartmentHasBlocking(context.Background(), apartmentID, time.Now())
	require.NoError(t, err)
	assert.False(t, blocked)
}
