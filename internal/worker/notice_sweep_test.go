package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeExpirer struct {
	calls []time.Time
	err   error
}

func (f *fakeExpirer) DeactivateExpired(_ context.Context, now time.Time) (int64, error) {
	f.calls = append(f.calls, now)
	return int64(len(f.calls)), f.err
}

func TestSweepExpired(t *testing.T) {
	f := &fakeExpirer{}
	now := time.Date(2025, 3, 4, 12, 0, 0, 0, time.UTC)

	sweepExpired(context.Background(), f, now)
	f.err = errors.New("db down")
	sweepExpired(context.Background(), f, now.Add(time.Minute))

	assert.Equal(t, []time.Time{now, now.Add(time.Minute)}, f.calls)
}
