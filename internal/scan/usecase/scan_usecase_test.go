package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ecoshopper-backend/internal/scan/domain/model"
	"ecoshopper-backend/internal/scan/domain/service"
	"ecoshopper-backend/internal/scan/usecase"
	apperrors "ecoshopper-backend/internal/shared/errors"
	"ecoshopper-backend/internal/shared/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock repository
type mockScanRepository struct {
	mock.Mock
}

func (m *mockScanRepository) Insert(ctx context.Context, record *model.ScanRecord) (*model.ScanRecord, error) {
	args := m.Called(ctx, record)
	if fn, ok := args.Get(0).(func(context.Context, *model.ScanRecord) *model.ScanRecord); ok {
		return fn(ctx, record), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScanRecord), args.Error(1)
}

func (m *mockScanRepository) FindRecent(ctx context.Context, limit int) ([]*model.ScanRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ScanRecord), args.Error(1)
}

// memScanRepository keeps records in memory, newest first, like the store.
type memScanRepository struct {
	records []*model.ScanRecord
	nextID  int
}

func (m *memScanRepository) Insert(_ context.Context, record *model.ScanRecord) (*model.ScanRecord, error) {
	m.nextID++
	stored := *record
	stored.ID = fmt.Sprintf("id-%d", m.nextID)
	m.records = append(m.records, &stored)
	return &stored, nil
}

func (m *memScanRepository) FindRecent(_ context.Context, limit int) ([]*model.ScanRecord, error) {
	out := make([]*model.ScanRecord, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0; i-- {
		out = append(out, m.records[i])
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestUsecase(repo *mockScanRepository) usecase.ScanUsecase {
	return usecase.NewScanUsecase(repo, service.NewSource(), logger.NewLogger(), 25)
}

func TestScan_EmptyBarcode(t *testing.T) {
	repo := &mockScanRepository{}
	uc := newTestUsecase(repo)

	_, err := uc.Scan(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidBarcode)

	_, err = uc.Scan(context.Background(), "   ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidBarcode)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestScan_FabricatedFieldsWithinContract(t *testing.T) {
	repo := &mockScanRepository{}
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*model.ScanRecord")).
		Return(func(_ context.Context, r *model.ScanRecord) *model.ScanRecord {
			stored := *r
			stored.ID = "stored-id"
			return &stored
		}, nil)
	uc := newTestUsecase(repo)

	for i := 0; i < 50; i++ {
		record, err := uc.Scan(context.Background(), "8901063010805")
		require.NoError(t, err)

		assert.Equal(t, "stored-id", record.ID)
		assert.Equal(t, "8901063010805", record.Code)
		assert.Equal(t, "Whole Wheat Bread", record.Name)
		assert.Equal(t, "Healthy Bakes Co.", record.Manufacturer)
		assert.Equal(t, "Food & Beverages", record.Category)

		mfg, err := time.Parse(time.RFC3339, record.MfgDate)
		require.NoError(t, err)
		exp, err := time.Parse(time.RFC3339, record.ExpDate)
		require.NoError(t, err)
		assert.True(t, exp.After(mfg), "expiry must strictly exceed manufacture")

		// Expiry is 12 to 24 months after manufacture.
		assert.False(t, exp.Before(service.AddMonths(mfg, 12)))
		assert.False(t, exp.After(service.AddMonths(mfg, 24)))

		assert.GreaterOrEqual(t, record.Rating, 50)
		assert.LessOrEqual(t, record.Rating, 95)
		assert.GreaterOrEqual(t, record.FootprintKgCO2e, 0.5)
		assert.Less(t, record.FootprintKgCO2e, 5.5)
		assert.Greater(t, record.ScannedAt, int64(0))
	}
}

func TestScan_TrimsBarcode(t *testing.T) {
	repo := &mockScanRepository{}
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*model.ScanRecord")).
		Return(func(_ context.Context, r *model.ScanRecord) *model.ScanRecord { return r }, nil)
	uc := newTestUsecase(repo)

	record, err := uc.Scan(context.Background(), "  4901234567894  ")
	require.NoError(t, err)
	assert.Equal(t, "4901234567894", record.Code)
	assert.Equal(t, "Bamboo Toothbrush 2-Pack", record.Name)
}

func TestScan_UnknownCodeFallsBack(t *testing.T) {
	repo := &mockScanRepository{}
	repo.On("Insert", mock.Anything, mock.AnythingOfType("*model.ScanRecord")).
		Return(func(_ context.Context, r *model.ScanRecord) *model.ScanRecord { return r }, nil)
	uc := newTestUsecase(repo)

	record, err := uc.Scan(context.Background(), "0000000000000")
	require.NoError(t, err)
	assert.Equal(t, "Product", record.Name)
	assert.Equal(t, "Unknown Manufacturer", record.Manufacturer)
	assert.Equal(t, "General Merchandise", record.Category)
}

func TestScan_StoreFailurePropagates(t *testing.T) {
	repo := &mockScanRepository{}
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil, apperrors.ErrStoreUnavailable)
	uc := newTestUsecase(repo)

	_, err := uc.Scan(context.Background(), "012345678905")
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestHistory_LimitAndOrdering(t *testing.T) {
	repo := &memScanRepository{}
	uc := usecase.NewScanUsecase(repo, service.NewSource(), logger.NewLogger(), 25)

	codes := []string{"8901063010805", "012345678905", "9780306406157", "4901234567894"}
	persisted := make([]*model.ScanRecord, 0, len(codes))
	for _, code := range codes {
		record, err := uc.Scan(context.Background(), code)
		require.NoError(t, err)
		persisted = append(persisted, record)
	}

	history, err := uc.History(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, history, 3)

	// Most recently created first.
	assert.Equal(t, persisted[3].ID, history[0].ID)
	assert.Equal(t, persisted[2].ID, history[1].ID)
	assert.Equal(t, persisted[1].ID, history[2].ID)

	// Round-trip: every field survives persistence unchanged.
	assert.Equal(t, persisted[3], history[0])
}

func TestHistory_DefaultLimit(t *testing.T) {
	repo := &mockScanRepository{}
	repo.On("FindRecent", mock.Anything, 25).Return([]*model.ScanRecord{}, nil)
	uc := newTestUsecase(repo)

	_, err := uc.History(context.Background(), 0)
	require.NoError(t, err)
	repo.AssertCalled(t, "FindRecent", mock.Anything, 25)
}

func TestHistory_StoreFailurePropagates(t *testing.T) {
	repo := &mockScanRepository{}
	repo.On("FindRecent", mock.Anything, 5).Return(nil, apperrors.ErrStoreUnavailable)
	uc := newTestUsecase(repo)

	_, err := uc.History(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
