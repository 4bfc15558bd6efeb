package property_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trungle-dev/renty/internal/apperr"
	"github.com/trungle-dev/renty/internal/property"
)

func TestService_SetBuildingStatus_MaintenanceBlockedByContracts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(&property.Building{ID: buildingID, Status: property.BuildingActive}, nil)
	guard.EXPECT().
		BuildingHasBlocking(gomock.Any(), buildingID, gomock.Any()).
		Return(true, nil)

	// No cascade transaction may be opened on rejection.
	_, err := svc.SetBuildingStatus(context.Background(), buildingID, property.BuildingMaintenance)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_SetBuildingStatus_MaintenanceCascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	tx := property.NewMockCascadeTx(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(&property.Building{ID: buildingID, Status: property.BuildingActive}, nil)
	guard.EXPECT().
		BuildingHasBlocking(gomock.Any(), buildingID, gomock.Any()).
		Return(false, nil)
	repo.EXPECT().BeginCascade(gomock.Any(), buildingID).Return(tx, nil)
	tx.EXPECT().SetBuildingStatus(gomock.Any(), property.BuildingMaintenance).Return(nil)
	tx.EXPECT().SetFloorStatuses(gomock.Any(), property.FloorMaintenance).Return(nil)
	tx.EXPECT().MarkAvailableUnderMaintenance(gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	b, err := svc.SetBuildingStatus(context.Background(), buildingID, property.BuildingMaintenance)
	require.NoError(t, err)
	assert.Equal(t, property.BuildingMaintenance, b.Status)
}

func TestService_SetBuildingStatus_ReversalReleasesCascaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	tx := property.NewMockCascadeTx(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(&property.Building{ID: buildingID, Status: property.BuildingMaintenance}, nil)
	repo.EXPECT().BeginCascade(gomock.Any(), buildingID).Return(tx, nil)
	tx.EXPECT().SetBuildingStatus(gomock.Any(), property.BuildingActive).Return(nil)
	tx.EXPECT().SetFloorStatuses(gomock.Any(), property.FloorActive).Return(nil)
	tx.EXPECT().ReleaseCascaded(gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	b, err := svc.SetBuildingStatus(context.Background(), buildingID, property.BuildingActive)
	require.NoError(t, err)
	assert.Equal(t, property.BuildingActive, b.Status)
}

func TestService_SetBuildingStatus_NoopWhenUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(&property.Building{ID: buildingID, Status: property.BuildingActive}, nil)

	b, err := svc.SetBuildingStatus(context.Background(), buildingID, property.BuildingActive)
	require.NoError(t, err)
	assert.Equal(t, property.BuildingActive, b.Status)
}

func TestService_DeleteApartment(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(repo *property.MockRepository, guard *property.MockContractGuard, id uuid.UUID)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "BlockedByContract",
			setupMock: func(repo *property.MockRepository, guard *property.MockContractGuard, id uuid.UUID) {
				repo.EXPECT().GetApartment(gomock.Any(), id).Return(&property.Apartment{ID: id}, nil)
				guard.EXPECT().ApartmentHasBlocking(gomock.Any(), id, gomock.Any()).Return(true, nil)
			},
			wantErr: apperr.ErrConflict,
		},
		{
			name: "Deleted",
			setupMock: func(repo *property.MockRepository, guard *property.MockContractGuard, id uuid.UUID) {
				repo.EXPECT().GetApartment(gomock.Any(), id).Return(&property.Apartment{ID: id}, nil)
				guard.EXPECT().ApartmentHasBlocking(gomock.Any(), id, gomock.Any()).Return(false, nil)
				repo.EXPECT().DeleteApartment(gomock.Any(), id).Return(nil)
			},
		},
		{
			name: "NotFound",
			setupMock: func(repo *property.MockRepository, guard *property.MockContractGuard, id uuid.UUID) {
				repo.EXPECT().GetApartment(gomock.Any(), id).Return(nil, apperr.NotFound("apartment %s", id))
			},
			wantErr: apperr.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := property.NewMockRepository(ctrl)
			guard := property.NewMockContractGuard(ctrl)
			svc := property.NewService(repo, guard)

			id := uuid.New()
			tt.setupMock(repo, guard, id)

			err := svc.DeleteApartment(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_CreateApartment_DerivesRoomNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	floorID := uuid.New()

	repo.EXPECT().
		GetFloor(gomock.Any(), floorID).
		Return(&property.Floor{ID: floorID, Number: 5}, nil)
	repo.EXPECT().
		ListRoomNumbers(gomock.Any(), floorID).
		Return([]string{"501", "502"}, nil)
	repo.EXPECT().
		CreateApartment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *property.Apartment) error {
			a.ID = uuid.New()
			return nil
		})

	a, err := svc.CreateApartment(context.Background(), property.CreateApartmentParams{
		FloorID:   floorID,
		Area:      52.5,
		Bedrooms:  2,
		Bathrooms: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "503", a.RoomNumber)
	assert.Equal(t, property.ApartmentAvailable, a.Status)
	assert.Equal(t, property.CauseNone, a.MaintenanceCause)
}

func TestService_CreateApartment_RejectsBadArea(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	_, err := svc.CreateApartment(context.Background(), property.CreateApartmentParams{
		FloorID: uuid.New(),
		Area:    0,
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestService_SetApartmentMaintenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	id := uuid.New()

	repo.EXPECT().
		GetApartment(gomock.Any(), id).
		Return(&property.Apartment{ID: id, Status: property.ApartmentRented}, nil)

	_, err := svc.SetApartmentMaintenance(context.Background(), id, true)
	assert.ErrorIs(t, err, apperr.ErrInvalidOperation)
}

func TestService_SeedApartments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	tx := property.NewMockSeedTx(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()
	floorID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(&property.Building{ID: buildingID, Status: property.BuildingActive}, nil)
	repo.EXPECT().
		GetFloorByNumber(gomock.Any(), buildingID, 2).
		Return(&property.Floor{ID: floorID, Number: 2}, nil)
	repo.EXPECT().
		ListRoomNumbers(gomock.Any(), floorID).
		Return([]string{"201"}, nil)
	repo.EXPECT().
		GetFloorByNumber(gomock.Any(), buildingID, 3).
		Return(nil, apperr.NotFound("floor 3"))
	repo.EXPECT().BeginSeed(gomock.Any(), buildingID).Return(tx, nil)
	tx.EXPECT().
		CreateFloor(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f *property.Floor) error {
			f.ID = uuid.New()
			return nil
		})
	tx.EXPECT().CreateApartments(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().Commit().Return(nil)
	tx.EXPECT().Rollback().Return(nil)

	rows := []property.SeedApartment{
		{FloorNumber: 2, Area: 40, Bedrooms: 1, Bathrooms: 1},
		{FloorNumber: 3, RoomNumber: "305", Area: 65, Bedrooms: 2, Bathrooms: 2},
	}

	apartments, err := svc.SeedApartments(context.Background(), buildingID, rows)
	require.NoError(t, err)
	require.Len(t, apartments, 2)
	assert.Equal(t, "202", apartments[0].RoomNumber)
	assert.Equal(t, "305", apartments[1].RoomNumber)
	assert.NotEqual(t, uuid.Nil, apartments[1].FloorID)
}

func TestService_SeedApartments_DuplicateRoomInBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()
	floorID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(&property.Building{ID: buildingID, Status: property.BuildingActive}, nil)
	repo.EXPECT().
		GetFloorByNumber(gomock.Any(), buildingID, 2).
		Return(&property.Floor{ID: floorID, Number: 2}, nil)
	repo.EXPECT().ListRoomNumbers(gomock.Any(), floorID).Return(nil, nil)

	rows := []property.SeedApartment{
		{FloorNumber: 2, RoomNumber: "204", Area: 40},
		{FloorNumber: 2, RoomNumber: "204", Area: 42},
	}

	_, err := svc.SeedApartments(context.Background(), buildingID, rows)
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestService_SeedApartments_RepoErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	guard := property.NewMockContractGuard(ctrl)
	svc := property.NewService(repo, guard)

	buildingID := uuid.New()

	repo.EXPECT().
		GetBuilding(gomock.Any(), buildingID).
		Return(nil, errors.New("db down"))

	_, err := svc.SeedApartments(context.Background(), buildingID, []property.SeedApartment{
		{FloorNumber: 1, Area: 30},
	})
	assert.Error(t, err)
}
