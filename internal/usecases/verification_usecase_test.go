package usecases_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"community-hub.backend/internal/domain/entities"
	"community-hub.backend/internal/infrastructure/repositories"
	"community-hub.backend/internal/usecases"
	"github.com/google/uuid"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerificationUsecase(h *hub, ttl time.Duration) *usecases.VerificationUsecase {
	return usecases.NewVerificationUsecase(
		repositories.NewUnitOfWork(h.db),
		h.users,
		repositories.NewVerificationRepository(h.db),
		h.metrics,
		ttl,
	)
}

func TestVerificationUsecase_Flow(t *testing.T) {
	h := newHub(t)
	uc := newVerificationUsecase(h, 15*time.Minute)
	ctx := context.Background()
	actor := h.user(t, "newcomer", false)

	challenge, err := uc.StartChallenge(ctx, actor)
	require.NoError(t, err)
	assert.Len(t, challenge.Token, 32)
	assert.True(t, challenge.ExpiresAt.After(time.Now()))

	_, err = uc.Complete(ctx, actor, "not-the-token")
	requireStatus(t, err, http.StatusBadRequest)

	user, err := uc.Complete(ctx, actor, challenge.Token)
	require.NoError(t, err)
	assert.True(t, user.Verified)
	assert.True(t, user.VerifiedAt.Valid)

	stored, err := h.users.GetByID(ctx, actor.UserID)
	require.NoError(t, err)
	assert.True(t, stored.Verified)
	assert.Equal(t, float64(1), promtestutil.ToFloat64(h.metrics.VerificationsCompleted))

	_, err = uc.StartChallenge(ctx, entities.Actor{UserID: actor.UserID, Verified: true})
	requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "already verified", err.Error())

	_, err = uc.Complete(ctx, actor, challenge.Token)
	requireStatus(t, err, http.StatusBadRequest)
}

func TestVerificationUsecase_ExpiredChallenge(t *testing.T) {
	h := newHub(t)
	uc := newVerificationUsecase(h, -time.Minute)
	ctx := context.Background()
	actor := h.user(t, "late", false)

	challenge, err := uc.StartChallenge(ctx, actor)
	require.NoError(t, err)

	_, err = uc.Complete(ctx, actor, challenge.Token)
	requireStatus(t, err, http.StatusBadRequest)

	stored, err := h.users.GetByID(ctx, actor.UserID)
	require.NoError(t, err)
	assert.False(t, stored.Verified)
}

func TestVerificationUsecase_UnknownUser(t *testing.T) {
	h := newHub(t)
	uc := newVerificationUsecase(h, time.Minute)

	_, err := uc.StartChallenge(context.Background(), entities.Actor{UserID: uuid.New()})
	requireStatus(t, err, http.StatusNotFound)

	_, err = uc.Complete(context.Background(), entities.Actor{UserID: uuid.New()}, "token")
	requireStatus(t, err, http.StatusNotFound)

	_, err = uc.Complete(context.Background(), entities.Actor{UserID: uuid.New()}, "")
	requireStatus(t, err, http.StatusBadRequest)
}
