// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-meal-planner/internal/logger"
	"github.com/MKhiriev/go-meal-planner/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listRowColumns = []string{"list_id", "owner_id", "title", "recipe_ids", "is_public", "created_at", "updated_at"}

func newTestListRepo(t *testing.T) (ListRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewListRepository(db, logger.Nop()), mock
}

func TestListIDs(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("SELECT list_id FROM recipe_lists").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"list_id"}).AddRow(4).AddRow(9))

	ids, err := repo.ListIDs(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 9}, ids)
}

func TestCreateList(t *testing.T) {
	repo, mock := newTestListRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO recipe_lists").
		WithArgs(int64(2), "Dinners", "[]", true).
		WillReturnRows(sqlmock.NewRows(listRowColumns).AddRow(11, 2, "Dinners", "[]", true, now, now))

	list, err := repo.CreateList(context.Background(), models.RecipeList{OwnerID: 2, Title: "Dinners", Public: true})
	require.NoError(t, err)
	assert.Equal(t, int64(11), list.ID)
	assert.Equal(t, []int64{}, list.RecipeIDs)
}

func TestGetOwnedList(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestListRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT list_id").
			WithArgs(int64(11), int64(2)).
			WillReturnRows(sqlmock.NewRows(listRowColumns).AddRow(11, 2, "Dinners", "[3,1]", false, now, now))

		list, err := repo.GetOwnedList(context.Background(), 11, 2)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1}, list.RecipeIDs)
	})

	t.Run("other owner", func(t *testing.T) {
		repo, mock := newTestListRepo(t)

		mock.ExpectQuery("SELECT list_id").WithArgs(int64(11), int64(3)).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetOwnedList(context.Background(), 11, 3)
		require.ErrorIs(t, err, ErrListNotFound)
	})
}

func TestFindListByTitle(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectQuery("SELECT list_id").
		WithArgs(int64(2), models.FavoritesListTitle).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindListByTitle(context.Background(), 2, models.FavoritesListTitle)
	require.ErrorIs(t, err, ErrListNotFound)
}

func TestUpdateList(t *testing.T) {
	list := models.RecipeList{ID: 11, OwnerID: 2, Title: "T", RecipeIDs: []int64{1, 2}, Public: true}

	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "not owned", result: sqlmock.NewResult(0, 0), wantErr: ErrListNotFound},
		{name: "driver error", execErr: errors.New("down"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestListRepo(t)

			exp := mock.ExpectExec("UPDATE recipe_lists").WithArgs("T", "[1,2]", true, int64(11), int64(2))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdateList(context.Background(), list)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeleteList(t *testing.T) {
	repo, mock := newTestListRepo(t)

	mock.ExpectExec("DELETE FROM recipe_lists").WithArgs(int64(11), int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteList(context.Background(), 11, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPublicLists(t *testing.T) {
	repo, mock := newTestListRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM recipe_lists`).
		WithArgs("%week%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT list_id").
		WithArgs("%week%", 20, 0).
		WillReturnRows(sqlmock.NewRows(listRowColumns).AddRow(5, 7, "Weekdays", "[8]", true, now, now))

	lists, total, err := repo.SearchPublicLists(context.Background(), "week", models.NewPageRequest(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, lists, 1)
	assert.Equal(t, "Weekdays", lists[0].Title)
}
