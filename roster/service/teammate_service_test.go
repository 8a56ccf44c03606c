package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tabajaradev/static-roster/shared/models"
)

// --- stubs ---

type stubStaticStore struct {
	created   []*models.Static
	exists    bool
	existsErr error
	createErr error
}

func (s *stubStaticStore) Create(ctx context.Context, st *models.Static) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = append(s.created, st)
	return nil
}

func (s *stubStaticStore) ExistsByGUID(ctx context.Context, guid string) (bool, error) {
	return s.exists, s.existsErr
}

type stubTeammateStore struct {
	upserted  []*models.StaticTeammate
	created   bool
	upsertErr error
	listed    []models.StaticTeammate
	listErr   error
}

func (s *stubTeammateStore) Upsert(ctx context.Context, tm *models.StaticTeammate) (bool, error) {
	if s.upsertErr != nil {
		return false, s.upsertErr
	}
	s.upserted = append(s.upserted, tm)
	return s.created, nil
}

func (s *stubTeammateStore) ListByStaticGUID(ctx context.Context, guid string) ([]models.StaticTeammate, error) {
	return s.listed, s.listErr
}

type stubLocker struct {
	acquired   []string
	released   []string
	acquireErr error
}

func (l *stubLocker) Acquire(ctx context.Context, key string) (string, error) {
	if l.acquireErr != nil {
		return "", l.acquireErr
	}
	l.acquired = append(l.acquired, key)
	return "token", nil
}

func (l *stubLocker) Release(ctx context.Context, key, token string) error {
	l.released = append(l.released, key)
	return nil
}

// --- tests ---

func TestTeammateServiceUpsert(t *testing.T) {
	tm := &models.StaticTeammate{Name: "bob", StaticGUID: "guid-1", EarsValue: 5}

	t.Run("rejects unknown static when check enabled", func(t *testing.T) {
		teammates := &stubTeammateStore{}
		svc := NewTeammateService(teammates, &stubStaticStore{exists: false}, nil, true)

		_, err := svc.Upsert(context.Background(), tm)

		require.ErrorIs(t, err, ErrStaticNotFound)
		assert.Empty(t, teammates.upserted, "no record may be written after a failed referential check")
	})

	t.Run("skips referential check when disabled", func(t *testing.T) {
		teammates := &stubTeammateStore{created: true}
		svc := NewTeammateService(teammates, &stubStaticStore{exists: false}, nil, false)

		created, err := svc.Upsert(context.Background(), tm)

		require.NoError(t, err)
		assert.True(t, created)
		assert.Len(t, teammates.upserted, 1)
	})

	t.Run("reports insert vs update from the store", func(t *testing.T) {
		statics := &stubStaticStore{exists: true}

		created, err := NewTeammateService(&stubTeammateStore{created: true}, statics, nil, true).
			Upsert(context.Background(), tm)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = NewTeammateService(&stubTeammateStore{created: false}, statics, nil, true).
			Upsert(context.Background(), tm)
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("wraps existence-check failures", func(t *testing.T) {
		svc := NewTeammateService(&stubTeammateStore{}, &stubStaticStore{existsErr: errors.New("boom")}, nil, true)

		_, err := svc.Upsert(context.Background(), tm)

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrStaticNotFound)
	})

	t.Run("acquires and releases the lock around the write", func(t *testing.T) {
		locker := &stubLocker{}
		svc := NewTeammateService(&stubTeammateStore{created: true}, &stubStaticStore{exists: true}, locker, true)

		_, err := svc.Upsert(context.Background(), tm)

		require.NoError(t, err)
		require.Equal(t, []string{"guid-1:bob"}, locker.acquired)
		assert.Equal(t, locker.acquired, locker.released)
	})

	t.Run("releases the lock when the write fails", func(t *testing.T) {
		locker := &stubLocker{}
		svc := NewTeammateService(&stubTeammateStore{upsertErr: errors.New("boom")}, &stubStaticStore{exists: true}, locker, true)

		_, err := svc.Upsert(context.Background(), tm)

		require.Error(t, err)
		assert.Equal(t, locker.acquired, locker.released)
	})

	t.Run("fails when the lock cannot be acquired", func(t *testing.T) {
		teammates := &stubTeammateStore{}
		locker := &stubLocker{acquireErr: errors.New("held")}
		svc := NewTeammateService(teammates, &stubStaticStore{exists: true}, locker, true)

		_, err := svc.Upsert(context.Background(), tm)

		require.Error(t, err)
		assert.Empty(t, teammates.upserted)
	})
}

func TestTeammateServiceListByStatic(t *testing.T) {
	t.Run("passes through store results", func(t *testing.T) {
		listed := []models.StaticTeammate{{Name: "bob", StaticGUID: "guid-1", EarsValue: 9}}
		svc := NewTeammateService(&stubTeammateStore{listed: listed}, &stubStaticStore{}, nil, true)

		got, err := svc.ListByStatic(context.Background(), "guid-1")

		require.NoError(t, err)
		assert.Equal(t, listed, got)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		svc := NewTeammateService(&stubTeammateStore{listErr: errors.New("boom")}, &stubStaticStore{}, nil, true)

		_, err := svc.ListByStatic(context.Background(), "guid-1")

		require.Error(t, err)
	})
}
