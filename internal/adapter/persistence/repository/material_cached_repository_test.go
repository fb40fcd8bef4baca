package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"house_calculator/internal/domain/entities"
	mock_interfaces "house_calculator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCachedMaterialRepository_List(t *testing.T) {
	t.Run("second call served from cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockIMaterialRepository(ctrl)
		repo := NewCachedMaterialRepository(next, time.Minute)

		next.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Material{{ID: "m1"}}, nil).Times(1)

		for i := 0; i < 3; i++ {
			res, err := repo.List(context.Background(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(res) != 1 || res[0].ID != "m1" {
				t.Fatalf("unexpected result: %+v", res)
			}
		}
	})

	t.Run("filters cached separately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockIMaterialRepository(ctrl)
		repo := NewCachedMaterialRepository(next, time.Minute)

		wooden := entities.HouseTypeWooden
		next.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Material{{ID: "m1"}, {ID: "m2"}}, nil)
		next.EXPECT().List(gomock.Any(), &wooden).Return([]entities.Material{{ID: "m2"}}, nil)

		all, _ := repo.List(context.Background(), nil)
		filtered, _ := repo.List(context.Background(), &wooden)
		if len(all) != 2 || len(filtered) != 1 {
			t.Fatalf("unexpected results: %+v %+v", all, filtered)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockIMaterialRepository(ctrl)
		repo := NewCachedMaterialRepository(next, time.Minute)

		gomock.InOrder(
			next.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, errors.New("db")),
			next.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Material{{ID: "m1"}}, nil),
		)

		if _, err := repo.List(context.Background(), nil); err == nil {
			t.Fatalf("expected error")
		}
		res, err := repo.List(context.Background(), nil)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("create flushes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		next := mock_interfaces.NewMockIMaterialRepository(ctrl)
		repo := NewCachedMaterialRepository(next, time.Minute)

		next.EXPECT().List(gomock.Any(), gomock.Nil()).Return([]entities.Material{{ID: "m1"}}, nil).Times(2)
		next.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Material{ID: "m2"}, nil)

		_, _ = repo.List(context.Background(), nil)
		if _, err := repo.Create(context.Background(), entities.Material{ID: "m2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, _ = repo.List(context.Background(), nil)
	})
}
