package services

import (
	"context"
	"testing"

	"mediamate-backend/internal/database"
	"mediamate-backend/internal/models"
	"mediamate-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type requestTestEnv struct {
	db       *database.Database
	content  repository.ContentRepository
	requests repository.RequestRepository
}

func newRequestService(t *testing.T) (RequestService, *requestTestEnv) {
	t.Helper()

	db := newTestDB(t)
	env := &requestTestEnv{
		db:       db,
		content:  repository.NewContentRepository(db),
		requests: repository.NewRequestRepository(db),
	}
	service := NewRequestService(env.requests, env.content, repository.NewGenreRepository(db), testLogger())
	return service, env
}

func seedTestUser(t *testing.T, db *database.Database, username string) uint {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		UserType:     models.UserTypeUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user.UserID
}

func TestAcceptedRequestPublishesCatalogItem(t *testing.T) {
	service, env := newRequestService(t)
	userID := seedTestUser(t, env.db, "requester")

	request, err := service.Create(context.Background(), userID, "books", "Dune", "spice and sand", "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, "Book", request.ContentType)

	err = service.Decide(context.Background(), request.RequestID, RequestDecisionAccept, RequestOverrides{
		Genres: []string{"Sci-Fi"},
	})
	require.NoError(t, err)

	updated, err := env.requests.FindByID(context.Background(), request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, updated.Status)

	// The approved item is reachable through the catalog with its genres.
	rows, _, err := env.content.FindPage(context.Background(), models.ContentTypeBook, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Dune", rows[0].Title)
	assert.Equal(t, "Sci-Fi", rows[0].GenreNames)
}

func TestDeclinedRequestPublishesNothing(t *testing.T) {
	service, env := newRequestService(t)
	userID := seedTestUser(t, env.db, "requester")

	request, err := service.Create(context.Background(), userID, "movie", "Heat", "crime drama", "")
	require.NoError(t, err)

	require.NoError(t, service.Decide(context.Background(), request.RequestID, RequestDecisionDecline, RequestOverrides{}))

	updated, err := env.requests.FindByID(context.Background(), request.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, updated.Status)

	_, total, err := env.content.FindPage(context.Background(), models.ContentTypeMovie, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestDecideRejectsSecondDecision(t *testing.T) {
	service, env := newRequestService(t)
	userID := seedTestUser(t, env.db, "requester")

	request, err := service.Create(context.Background(), userID, "game", "Myst", "puzzle island", "")
	require.NoError(t, err)

	require.NoError(t, service.Decide(context.Background(), request.RequestID, RequestDecisionDecline, RequestOverrides{}))

	err = service.Decide(context.Background(), request.RequestID, RequestDecisionAccept, RequestOverrides{})
	assert.ErrorIs(t, err, ErrRequestDecided)
}

func TestDecideRejectsUnknownDecision(t *testing.T) {
	service, env := newRequestService(t)
	userID := seedTestUser(t, env.db, "requester")

	request, err := service.Create(context.Background(), userID, "book", "Dune", "spice", "")
	require.NoError(t, err)

	err = service.Decide(context.Background(), request.RequestID, "maybe", RequestOverrides{})
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestCreateRejectsUnknownContentType(t *testing.T) {
	service, env := newRequestService(t)
	userID := seedTestUser(t, env.db, "requester")

	_, err := service.Create(context.Background(), userID, "podcast", "Serial", "true crime", "")
	assert.ErrorIs(t, err, repository.ErrInvalidContentType)
}

func TestPublishDirectSkipsTheQueue(t *testing.T) {
	service, env := newRequestService(t)
	adminID := seedTestUser(t, env.db, "admin")

	contentID, err := service.PublishDirect(context.Background(), adminID, "Game", "Outer Wilds", "a loop in space", "", []string{"Adventure"})
	require.NoError(t, err)
	require.NotZero(t, contentID)

	row, err := env.content.FindByTypeAndID(context.Background(), models.ContentTypeGame, contentID)
	require.NoError(t, err)
	assert.Equal(t, "Outer Wilds", row.Title)

	// The audit trail records an already-approved request.
	requests, err := service.ListOwn(context.Background(), adminID)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.RequestStatusApproved, requests[0].Status)
}
