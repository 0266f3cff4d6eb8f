package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"casaherenia/models"
)

func TestCreateBlockStoresValidRange(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := &ManualBlockService{Repo: repo, Logger: zap.NewNop()}

	id, err := svc.Create(context.Background(), models.UnitRoom1, "2026-03-10", "2026-03-12", "painting")
	require.NoError(t, err)
	assert.Equal(t, "blk-1", id)

	require.Len(t, repo.created, 1)
	assert.Equal(t, models.UnitRoom1, repo.created[0].RoomID)
	assert.Equal(t, "painting", repo.created[0].Reason)
}

func TestCreateBlockAllowsSingleDay(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := &ManualBlockService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.Create(context.Background(), models.UnitVilla, "2026-03-10", "2026-03-10", "")
	require.NoError(t, err)
	assert.Len(t, repo.created, 1)
}

func TestCreateBlockRejectsInvertedRangeBeforeStoreWrite(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := &ManualBlockService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.Create(context.Background(), models.UnitRoom1, "2026-03-12", "2026-03-10", "")
	assert.ErrorIs(t, err, ErrInvalidBlockRange)
	assert.Empty(t, repo.created)
}

func TestCreateBlockRejectsMalformedDates(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := &ManualBlockService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.Create(context.Background(), models.UnitRoom1, "10/03/2026", "2026-03-12", "")
	assert.ErrorIs(t, err, ErrInvalidBlockDate)

	_, err = svc.Create(context.Background(), models.UnitRoom1, "2026-03-10", "garbage", "")
	assert.ErrorIs(t, err, ErrInvalidBlockDate)

	assert.Empty(t, repo.created)
}

func TestCreateBlockRejectsUnknownUnit(t *testing.T) {
	repo := &fakeBlockRepo{}
	svc := &ManualBlockService{Repo: repo, Logger: zap.NewNop()}

	_, err := svc.Create(context.Background(), models.Unit("penthouse"), "2026-03-10", "2026-03-12", "")
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.Empty(t, repo.created)
}

func TestListBlocksRejectsUnknownUnit(t *testing.T) {
	svc := &ManualBlockService{Repo: &fakeBlockRepo{}, Logger: zap.NewNop()}

	_, err := svc.List(context.Background(), models.Unit(""))
	assert.ErrorIs(t, err, ErrInvalidUnit)
}
