package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kxvin1/life-dashboard/internal/cache"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports/mocks"
	"github.com/Kxvin1/life-dashboard/internal/store"
)

func newTestBridge(ctrl *gomock.Controller) *cache.Bridge {
	return cache.NewBridge(cache.NewRegistry(), mocks.NewMockLogger(ctrl))
}

func respondWith[T any](records []T) func(context.Context, string, string, any, any) error {
	return func(_ context.Context, _ string, _ string, _ any, out any) error {
		*out.(*[]T) = records
		return nil
	}
}

func TestCollection_RefreshReplacesItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, newTestBridge(ctrl))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{{ID: "t1", Title: "water plants"}}))

	require.NoError(t, tasks.Refresh(t.Context()))
	require.Equal(t, domain.StateLoaded, tasks.State())

	items := tasks.Items()
	require.Len(t, items, 1)
	require.Equal(t, "water plants", items[0].Title)
}

// A mutation through one store must trigger exactly one registry bump, and
// that bump must refresh sibling stores but not the originating store.
func TestCollection_CreateRefreshesSiblingsNotSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	bridge := newTestBridge(ctrl)

	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, bridge)
	summary := store.New[domain.SummaryEntry]("summary", store.SummaryPath, gateway, bridge)

	gomock.InOrder(
		gateway.EXPECT().
			Request(gomock.Any(), http.MethodPost, store.TasksPath, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ string, _ any, out any) error {
				*out.(*domain.Task) = domain.Task{ID: "t1", Title: "file taxes"}
				return nil
			}),
		// The sibling refresh happens inside the synchronous notification
		// pass. No GET on the tasks path is expected.
		gateway.EXPECT().
			Request(gomock.Any(), http.MethodGet, store.SummaryPath, nil, gomock.Any()).
			DoAndReturn(respondWith([]domain.SummaryEntry{{ID: "tasks", Label: "Open tasks", Count: 1}})),
	)

	created, err := tasks.Create(t.Context(), domain.TaskInput{Title: "file taxes"})
	require.NoError(t, err)
	require.Equal(t, "t1", created.ID)

	require.Equal(t, int64(1), bridge.Registry().Version())

	items := tasks.Items()
	require.Len(t, items, 1)
	require.Equal(t, "file taxes", items[0].Title)

	entries := summary.Items()
	require.Len(t, entries, 1)
	require.Equal(t, 1, entries[0].Count)
}

func TestCollection_CreateFailureLeavesEverythingUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	bridge := newTestBridge(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, bridge)

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodPost, store.TasksPath, gomock.Any(), gomock.Any()).
		Return(domain.ErrRequestFailed)

	_, err := tasks.Create(t.Context(), domain.TaskInput{Title: "nope"})
	require.ErrorIs(t, err, domain.ErrRequestFailed)
	require.Empty(t, tasks.Items())
	require.Equal(t, int64(0), bridge.Registry().Version())
}

// A failed refresh must keep the previous collection visible instead of
// clearing it.
func TestCollection_FailedRefreshKeepsStaleItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, newTestBridge(ctrl))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}))
	require.NoError(t, tasks.Refresh(t.Context()))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		Return(domain.ErrNetwork)

	err := tasks.Refresh(t.Context())
	require.ErrorIs(t, err, domain.ErrNetwork)
	require.Equal(t, domain.StateFailed, tasks.State())
	require.ErrorIs(t, tasks.Err(), domain.ErrNetwork)
	require.Len(t, tasks.Items(), 3)

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{{ID: "t1"}}))
	require.NoError(t, tasks.Refresh(t.Context()))
	require.Equal(t, domain.StateLoaded, tasks.State())
	require.NoError(t, tasks.Err())
	require.Len(t, tasks.Items(), 1)
}

func TestCollection_UpdateUpsertsInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	bridge := newTestBridge(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, bridge)

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{{ID: "t1", Title: "old"}, {ID: "t2"}}))
	require.NoError(t, tasks.Refresh(t.Context()))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodPatch, store.TasksPath+"/t1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, _ any, out any) error {
			*out.(*domain.Task) = domain.Task{ID: "t1", Title: "new", Done: true}
			return nil
		})

	updated, err := tasks.Update(t.Context(), "t1", domain.TaskPatch{})
	require.NoError(t, err)
	require.True(t, updated.Done)

	items := tasks.Items()
	require.Len(t, items, 2)
	require.Equal(t, "new", items[0].Title)
}

func TestCollection_DeleteRemovesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	bridge := newTestBridge(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, bridge)

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{{ID: "t1"}, {ID: "t2"}}))
	require.NoError(t, tasks.Refresh(t.Context()))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodDelete, store.TasksPath+"/t1", nil, nil).
		Return(nil)

	require.NoError(t, tasks.Delete(t.Context(), "t1"))
	require.Equal(t, int64(1), bridge.Registry().Version())

	_, err := tasks.Get("t1")
	require.ErrorIs(t, err, domain.ErrNotFound)

	rec, err := tasks.Get("t2")
	require.NoError(t, err)
	require.Equal(t, "t2", rec.ID)
}

func TestCollection_FingerprintTracksContents(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, newTestBridge(ctrl))

	empty := tasks.Fingerprint()

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{{ID: "t1", Title: "a"}}))
	require.NoError(t, tasks.Refresh(t.Context()))

	loaded := tasks.Fingerprint()
	require.NotEqual(t, empty, loaded)
	require.Equal(t, loaded, tasks.Fingerprint())
}

func TestCollection_CloseStopsRefreshes(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	bridge := newTestBridge(ctrl)
	tasks := store.New[domain.Task]("tasks", store.TasksPath, gateway, bridge)

	tasks.Close()
	bridge.Invalidated(t.Context(), nil)
	require.Empty(t, tasks.Items())
}
