package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/dto"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/repository"
	"github.com/Jnxvln/chlm2025-dashboard-qwik-sub001/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQueue struct {
	jobs []worker.EmailJob
	err  error
}

func (q *stubQueue) EnqueueEmail(_ context.Context, job worker.EmailJob) error {
	if q.err != nil {
		return q.err
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func newNoticeFixture(t *testing.T) (NoticeService, ContactService, *stubQueue) {
	t.Helper()
	db := newTestDB(t)
	contactRepo := repository.NewContactRepository(db)
	q := &stubQueue{}
	notices := NewNoticeService(repository.NewNoticeRepository(db), contactRepo, q)
	contacts := NewContactService(contactRepo, repository.NewVendorRepository(db))
	return notices, contacts, q
}

func TestNoticeService_BroadcastQueuesOneJobPerEmail(t *testing.T) {
	notices, contacts, q := newNoticeFixture(t)
	ctx := context.Background()

	_, err := contacts.Create(ctx, dto.CreateContactRequest{FirstName: "ana", Email: strPtr("ANA@example.com")})
	require.NoError(t, err)
	_, err = contacts.Create(ctx, dto.CreateContactRequest{FirstName: "bo", Phone: strPtr("512-555-0100")})
	require.NoError(t, err)
	_, err = contacts.Create(ctx, dto.CreateContactRequest{FirstName: "cy", Email: strPtr("cy@example.com")})
	require.NoError(t, err)

	n, err := notices.Create(ctx, dto.CreateNoticeRequest{Title: "yard closed friday", Body: "the yard is closed friday. pickups resume monday."})
	require.NoError(t, err)
	assert.Equal(t, "Yard Closed Friday", n.Title)
	assert.Equal(t, "The yard is closed friday. Pickups resume monday.", n.Body)

	res, err := notices.Broadcast(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Recipients)
	require.Len(t, q.jobs, 2)
	assert.Equal(t, "ana@example.com", q.jobs[0].To)
	assert.Equal(t, "cy@example.com", q.jobs[1].To)
	assert.Equal(t, n.Title, q.jobs[0].Subject)
	assert.Equal(t, n.ID, q.jobs[0].NoticeID)
}

func TestNoticeService_BroadcastRejectsInactive(t *testing.T) {
	notices, _, q := newNoticeFixture(t)
	ctx := context.Background()

	n, err := notices.Create(ctx, dto.CreateNoticeRequest{Title: "Old News", Body: "Nothing."})
	require.NoError(t, err)
	_, err = notices.Update(ctx, n.ID, dto.UpdateNoticeRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	_, err = notices.Broadcast(ctx, n.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, q.jobs)

	_, err = notices.Broadcast(ctx, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNoticeService_BroadcastQueueFailure(t *testing.T) {
	notices, contacts, q := newNoticeFixture(t)
	ctx := context.Background()
	q.err = errors.New("redis down")

	_, err := contacts.Create(ctx, dto.CreateContactRequest{FirstName: "Ana", Email: strPtr("ana@example.com")})
	require.NoError(t, err)
	n, err := notices.Create(ctx, dto.CreateNoticeRequest{Title: "Heads Up", Body: "Body."})
	require.NoError(t, err)

	_, err = notices.Broadcast(ctx, n.ID)
	assert.ErrorIs(t, err, q.err)
}

func TestNoticeService_ExpiryHidesFromDefaultList(t *testing.T) {
	notices, _, _ := newNoticeFixture(t)
	ctx := context.Background()

	soon := time.Now().UTC().Add(time.Hour)
	_, err := notices.Create(ctx, dto.CreateNoticeRequest{Title: "Soon Gone", Body: "Body.", ExpiresAt: &soon})
	require.NoError(t, err)
	_, err = notices.Create(ctx, dto.CreateNoticeRequest{Title: "Pinned", Body: "Body."})
	require.NoError(t, err)

	past := time.Now().UTC().Add(-time.Hour)
	_, err = notices.Create(ctx, dto.CreateNoticeRequest{Title: "Too Late", Body: "Body.", ExpiresAt: &past})
	assert.ErrorIs(t, err, ErrInvalidInput)

	svc := notices.(*noticeService)
	svc.now = func() time.Time { return soon.Add(time.Minute) }

	list, err := notices.List(ctx, dto.ActiveFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pinned", list[0].Title)

	all, err := notices.List(ctx, dto.ActiveFilter{Active: dto.ActiveAll})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestContactService_VendorReference(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(repository.NewContactRepository(db), repository.NewVendorRepository(db))
	ctx := context.Background()
	v := seedVendor(t, db, "Quarry")

	c, err := svc.Create(ctx, dto.CreateContactRequest{VendorID: uintPtr(v.ID), FirstName: "dana", Title: strPtr("yard manager")})
	require.NoError(t, err)
	assert.Equal(t, "Dana", c.FirstName)
	assert.Equal(t, "Yard Manager", *c.Title)
	assert.Equal(t, v.ID, *c.VendorID)

	_, err = svc.Create(ctx, dto.CreateContactRequest{VendorID: uintPtr(404), FirstName: "X"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := svc.Update(ctx, c.ID, dto.UpdateContactRequest{VendorID: uintPtr(0)})
	require.NoError(t, err)
	assert.Nil(t, got.VendorID)

	list, err := svc.List(ctx, dto.ContactFilter{VendorID: v.ID})
	require.NoError(t, err)
	assert.Empty(t, list)
}
