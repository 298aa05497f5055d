package repository

import (
	"context"
	"testing"

	"mediamate-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFavoriteContent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	contentID := seedBook(t, db, "Dune", "spice", nil)
	alice := seedUser(t, db, "alice")

	action, err := repo.Toggle(context.Background(), alice, &contentID, nil)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, action)

	fav, err := repo.IsFavoriteContent(context.Background(), alice, contentID)
	require.NoError(t, err)
	assert.True(t, fav)

	action, err = repo.Toggle(context.Background(), alice, &contentID, nil)
	require.NoError(t, err)
	assert.Equal(t, FavoriteRemoved, action)

	fav, err = repo.IsFavoriteContent(context.Background(), alice, contentID)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestToggleFavoriteRoom(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	alice := seedUser(t, db, "alice")
	community := models.Community{ChatName: "book club", CreatorID: alice}
	require.NoError(t, db.Create(&community).Error)

	action, err := repo.Toggle(context.Background(), alice, nil, &community.RoomID)
	require.NoError(t, err)
	assert.Equal(t, FavoriteAdded, action)

	fav, err := repo.IsFavoriteRoom(context.Background(), alice, community.RoomID)
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestListByUserResolvesTitlesAcrossKinds(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)

	alice := seedUser(t, db, "alice")
	bookID := seedBook(t, db, "Dune", "spice", nil)
	movieID := seedMovie(t, db, "Heat", "crime drama", nil)
	community := models.Community{ChatName: "film buffs", CreatorID: alice}
	require.NoError(t, db.Create(&community).Error)

	for _, target := range []struct {
		contentID *uint
		roomID    *uint
	}{
		{contentID: &bookID},
		{contentID: &movieID},
		{roomID: &community.RoomID},
	} {
		_, err := repo.Toggle(context.Background(), alice, target.contentID, target.roomID)
		require.NoError(t, err)
	}

	items, err := repo.ListByUser(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, items, 3)

	byTitle := map[string]models.FavoriteItem{}
	for _, item := range items {
		byTitle[item.Title] = item
	}
	assert.Equal(t, "Book", byTitle["Dune"].ContentType)
	assert.Equal(t, "Movie", byTitle["Heat"].ContentType)
	assert.Equal(t, "Community", byTitle["film buffs"].ContentType)
}
