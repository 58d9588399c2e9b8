package store_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Kxvin1/life-dashboard/internal/core/domain"
	"github.com/Kxvin1/life-dashboard/internal/core/ports/mocks"
	"github.com/Kxvin1/life-dashboard/internal/store"
)

func TestTasks_OpenFiltersCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	tasks := store.NewTasks(gateway, newTestBridge(ctrl))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.TasksPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Task{
			{ID: "t1", Title: "water plants"},
			{ID: "t2", Title: "file taxes", Done: true},
			{ID: "t3", Title: "call dentist"},
		}))
	require.NoError(t, tasks.Refresh(t.Context()))

	open := tasks.Open()
	require.Len(t, open, 2)
	require.Equal(t, "t1", open[0].ID)
	require.Equal(t, "t3", open[1].ID)
}

func TestTasks_SetDoneSendsPatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	tasks := store.NewTasks(gateway, newTestBridge(ctrl))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodPatch, store.TasksPath+"/t1", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body any, out any) error {
			patch, ok := body.(domain.TaskPatch)
			require.True(t, ok)
			require.NotNil(t, patch.Done)
			require.True(t, *patch.Done)

			*out.(*domain.Task) = domain.Task{ID: "t1", Done: true}
			return nil
		})

	task, err := tasks.SetDone(t.Context(), "t1", true)
	require.NoError(t, err)
	require.True(t, task.Done)
}

func TestCategories_TotalByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockGateway(ctrl)
	categories := store.NewCategories(gateway, newTestBridge(ctrl))

	gateway.EXPECT().
		Request(gomock.Any(), http.MethodGet, store.CategoriesPath, nil, gomock.Any()).
		DoAndReturn(respondWith([]domain.Category{
			{ID: "c1", Kind: domain.KindExpense, MonthlyTotal: -45230},
			{ID: "c2", Kind: domain.KindExpense, MonthlyTotal: -12000},
			{ID: "c3", Kind: domain.KindIncome, MonthlyTotal: 650000},
		}))
	require.NoError(t, categories.Refresh(t.Context()))

	require.Equal(t, int64(-57230), categories.TotalByKind(domain.KindExpense))
	require.Equal(t, int64(650000), categories.TotalByKind(domain.KindIncome))
	require.Zero(t, categories.TotalByKind(domain.CategoryKind("other")))
}
