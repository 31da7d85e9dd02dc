package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"community-hub.backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

type deleterStub struct {
	deleted int64
	err     error
	calls   int
	before  time.Time
}

func (s *deleterStub) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	s.calls++
	s.before = before
	return s.deleted, s.err
}

func TestVerificationPurgeJob_Run(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo := &deleterStub{deleted: 4}
	m := metrics.NewRegistry(prometheus.NewRegistry())
	job := NewVerificationPurgeJob(repo, m)
	job.now = func() time.Time { return now }

	job.Run(context.Background())
	require.Equal(t, 1, repo.calls)
	require.Equal(t, now, repo.before)
	require.Equal(t, 4.0, testutil.ToFloat64(m.ChallengesPurged))
	require.Equal(t, "verification-purge", job.Name())
}

func TestVerificationPurgeJob_RunError(t *testing.T) {
	repo := &deleterStub{err: errors.New("db down")}
	job := NewVerificationPurgeJob(repo, nil)

	require.NotPanics(t, func() { job.Run(context.Background()) })
	require.Equal(t, 1, repo.calls)
}

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Run(context.Context) { j.runs.Add(1) }

func TestScheduler_RegisterRejectsBadSpec(t *testing.T) {
	s := NewScheduler()
	err := s.Register("every now and then", &countingJob{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "counting")
}

func TestScheduler_RunsRegisteredJobs(t *testing.T) {
	s := NewScheduler()
	job := &countingJob{}
	require.NoError(t, s.Register("@every 1s", job))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))

	require.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	s.Stop(stopCtx)
}
