package jobs

import (
	"context"
	"time"

	"community-hub.backend/internal/metrics"
	"community-hub.backend/pkg/logger"
	"go.uber.org/zap"
)

type expiredChallengeDeleter interface {
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// VerificationPurgeJob deletes verification challenges that expired without
// being completed
type VerificationPurgeJob struct {
	repo    expiredChallengeDeleter
	metrics *metrics.Registry
	now     func() time.Time
}

func NewVerificationPurgeJob(repo expiredChallengeDeleter, m *metrics.Registry) *VerificationPurgeJob {
	return &VerificationPurgeJob{repo: repo, metrics: m, now: time.Now}
}

func (j *VerificationPurgeJob) Name() string {
	return "verification-purge"
}

func (j *VerificationPurgeJob) Run(ctx context.Context) {
	deleted, err := j.repo.DeleteExpired(ctx, j.now())
	if err != nil {
		logger.Error(ctx, "purge expired verification challenges failed", zap.Error(err))
		return
	}
	j.metrics.ChallengesPurgedAdd(deleted)
	if deleted > 0 {
		logger.Info(ctx, "purged expired verification challenges", zap.Int64("count", deleted))
	}
}
