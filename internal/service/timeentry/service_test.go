package timeentry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeitgrid/worktime-backend-go/internal/domain/timeentry"
	"github.com/zeitgrid/worktime-backend-go/internal/domain/user"
)

const (
	employeeID  = "b3f1c2d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d"
	adminID     = "7d0a9e2b-1c3f-4e5a-9b8c-6d7e8f9a0b1c"
	colleagueID = "19f8e7d6-c5b4-4a39-8271-605f4e3d2c1b"
)

type fakeUserRepo struct {
	users     map[string]user.User
	getCalls  int
	deleteErr error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	f.getCalls++
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

type fakeTimeEntryRepo struct {
	entries []timeentry.TimeEntry
	nextID  int64
	deleted []int64
}

func (f *fakeTimeEntryRepo) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	f.nextID++
	entry.ID = f.nextID
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeTimeEntryRepo) GetByID(ctx context.Context, id int64) (timeentry.TimeEntry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
}

func (f *fakeTimeEntryRepo) ListByUserAndRange(ctx context.Context, userID string, from, to time.Time) ([]timeentry.TimeEntry, error) {
	result := make([]timeentry.TimeEntry, 0)
	for _, e := range f.entries {
		if e.UserID == userID && !e.DateTime.Before(from) && e.DateTime.Before(to) {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeTimeEntryRepo) Delete(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func newService(t *testing.T) (*TimeEntryServiceImpl, *fakeTimeEntryRepo, *fakeUserRepo) {
	t.Helper()
	users := &fakeUserRepo{users: map[string]user.User{
		employeeID:  {ID: employeeID, Username: "mmeier", IsEmployee: true},
		adminID:     {ID: adminID, Username: "admin", IsSuperuser: true},
		colleagueID: {ID: colleagueID, Username: "jdoe", IsEmployee: true},
	}}
	entries := &fakeTimeEntryRepo{}
	svc := NewTimeEntryService(entries, users, time.UTC).(*TimeEntryServiceImpl)
	return svc, entries, users
}

func TestCreateEntry_OwnEntry(t *testing.T) {
	svc, entries, _ := newService(t)

	resp, err := svc.CreateEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		UserID:    employeeID,
		DateTime:  "2025-03-03T08:00:00Z",
		EntryType: "arrival",
		ActorID:   employeeID,
	})
	require.NoError(t, err)
	assert.Equal(t, employeeID, resp.UserID)
	assert.Equal(t, timeentry.EntryArrival, resp.EntryType)
	require.Len(t, entries.entries, 1)
	assert.Equal(t, employeeID, entries.entries[0].CreatedBy)
}

func TestCreateEntry_ForOtherRequiresForce(t *testing.T) {
	svc, entries, _ := newService(t)

	_, err := svc.CreateEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		UserID:    employeeID,
		DateTime:  "2025-03-03T08:00:00Z",
		EntryType: "arrival",
		ActorID:   adminID,
	})
	require.ErrorIs(t, err, timeentry.ErrForbiddenForOther)
	assert.Empty(t, entries.entries)
}

func TestCreateEntry_ForOtherWithForce(t *testing.T) {
	svc, entries, _ := newService(t)

	resp, err := svc.CreateEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		UserID:    employeeID,
		DateTime:  "2025-03-03T08:00:00Z",
		EntryType: "arrival",
		Force:     true,
		ActorID:   adminID,
	})
	require.NoError(t, err)
	assert.Equal(t, employeeID, resp.UserID)
	require.Len(t, entries.entries, 1)
	assert.Equal(t, adminID, entries.entries[0].CreatedBy, "the acting superuser is recorded as creator")
}

func TestCreateEntry_ForceWithoutPrivilege(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.CreateEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		UserID:    employeeID,
		DateTime:  "2025-03-03T08:00:00Z",
		EntryType: "arrival",
		Force:     true,
		ActorID:   colleagueID,
	})
	require.ErrorIs(t, err, timeentry.ErrForbiddenForOther)
}

func TestCreateEntry_InvalidRequest(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.CreateEntry(context.Background(), timeentry.CreateTimeEntryRequest{
		UserID:    employeeID,
		DateTime:  "yesterday",
		EntryType: "arrival",
		ActorID:   employeeID,
	})
	require.Error(t, err)
}

func TestDeleteEntry(t *testing.T) {
	svc, entries, _ := newService(t)
	created, err := entries.Create(context.Background(), timeentry.TimeEntry{
		UserID:    employeeID,
		DateTime:  time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC),
		EntryType: timeentry.EntryArrival,
		CreatedBy: employeeID,
	})
	require.NoError(t, err)

	// A colleague without force cannot delete someone else's entry.
	err = svc.DeleteEntry(context.Background(), created.ID, colleagueID, false)
	require.ErrorIs(t, err, timeentry.ErrForbiddenForOther)

	// The owner can.
	require.NoError(t, svc.DeleteEntry(context.Background(), created.ID, employeeID, false))
	assert.Equal(t, []int64{created.ID}, entries.deleted)
}

func TestDeleteEntry_Unknown(t *testing.T) {
	svc, _, _ := newService(t)

	err := svc.DeleteEntry(context.Background(), 404, employeeID, false)
	require.ErrorIs(t, err, timeentry.ErrEntryNotFound)
}

func TestListForDay_MemoizesCreators(t *testing.T) {
	svc, entries, users := newService(t)
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	for i, hour := range []int{8, 12, 13, 17} {
		entryType := timeentry.EntryArrival
		if i%2 == 1 {
			entryType = timeentry.EntryDeparture
		}
		_, err := entries.Create(context.Background(), timeentry.TimeEntry{
			UserID:    employeeID,
			DateTime:  time.Date(2025, time.March, 3, hour, 0, 0, 0, time.UTC),
			EntryType: entryType,
			CreatedBy: employeeID,
		})
		require.NoError(t, err)
	}

	result, err := svc.ListForDay(context.Background(), employeeID, day)
	require.NoError(t, err)
	require.Len(t, result, 4)

	assert.Equal(t, 1, users.getCalls, "one lookup per distinct creator")
	for _, e := range result {
		require.NotNil(t, e.CreatedBy)
		assert.Equal(t, "mmeier", e.CreatedBy.Username)
	}
}

func TestListForDay_DeletedCreator(t *testing.T) {
	svc, entries, users := newService(t)
	day := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	_, err := entries.Create(context.Background(), timeentry.TimeEntry{
		UserID:    employeeID,
		DateTime:  time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC),
		EntryType: timeentry.EntryArrival,
		CreatedBy: adminID,
	})
	require.NoError(t, err)
	delete(users.users, adminID)

	result, err := svc.ListForDay(context.Background(), employeeID, day)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].CreatedBy, "deleted creators resolve to nil, the entry still lists")
}
