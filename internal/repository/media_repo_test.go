package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/trip_go_server/internal/testutil"
)

func TestMediaRepository_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMediaRepository(db)
	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)
	moment := testutil.TestMoment(t, db, trip.ID, user.ID)

	media := testutil.TestMedia(t, db, trip.ID, moment.ID)
	assert.NotZero(t, media.ID)

	found, err := repo.GetByID(media.ID)
	require.NoError(t, err)
	assert.Equal(t, media.StorageKey, found.StorageKey)
}

// 批量查询覆盖多个时刻；组内 sort_order 优先，其次创建时间
func TestMediaRepository_ListByMomentIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMediaRepository(db)
	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)
	m1 := testutil.TestMoment(t, db, trip.ID, user.ID)
	m2 := testutil.TestMoment(t, db, trip.ID, user.ID)

	second := testutil.TestMedia(t, db, trip.ID, m1.ID, testutil.WithSortOrder(2))
	first := testutil.TestMedia(t, db, trip.ID, m1.ID, testutil.WithSortOrder(1))
	other := testutil.TestMedia(t, db, trip.ID, m2.ID)

	media, err := repo.ListByMomentIDs([]int64{m1.ID, m2.ID})
	require.NoError(t, err)
	require.Len(t, media, 3)

	assert.Equal(t, other.ID, media[0].ID) // sort_order 0
	assert.Equal(t, first.ID, media[1].ID)
	assert.Equal(t, second.ID, media[2].ID)
}

func TestMediaRepository_ListByMomentIDs_EmptyInput(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMediaRepository(db)

	media, err := repo.ListByMomentIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, media)
}

func TestMediaRepository_ListStorageKeys(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMediaRepository(db)
	user := testutil.TestUser(t, db)
	trip := testutil.TestTrip(t, db, user.ID)
	moment := testutil.TestMoment(t, db, trip.ID, user.ID)

	media := testutil.TestMedia(t, db, trip.ID, moment.ID)

	keys, err := repo.ListStorageKeys()
	require.NoError(t, err)
	assert.Contains(t, keys, media.StorageKey)
}
