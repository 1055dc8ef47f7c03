package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"dietdiary-backend/internal/meal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var mealColumns = []string{"id", "user_id", "name", "tag", "note", "date", "created_at"}

func newGormWithMock(t *testing.T) (MealRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return NewGormMealRepository(db), mock, sqlDB
}

func TestGormFindByID(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	date := time.Date(2024, 5, 21, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(mealColumns).AddRow("m-1", "u-1", "Oatmeal", "breakfast", "", date, date))

	meal, err := repo.FindByID(context.Background(), "m-1")
	require.NoError(t, err)
	require.NotNil(t, meal)
	assert.Equal(t, "u-1", meal.UserID)
	assert.Equal(t, "Oatmeal", meal.Name)
	assert.EqualValues(t, "breakfast", meal.Tag)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFindByID_NotFound(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows(mealColumns))

	meal, err := repo.FindByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, meal)
}

func TestGormFindByUserIDBetween(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	from := time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE user_id = \$1 AND date >= \$2 AND date < \$3 ORDER BY date DESC`).
		WillReturnRows(sqlmock.NewRows(mealColumns).
			AddRow("m-2", "u-1", "Salad", "lunch", "", from.Add(12*time.Hour), from).
			AddRow("m-1", "u-1", "Oatmeal", "breakfast", "", from.Add(8*time.Hour), from))

	meals, err := repo.FindByUserIDBetween(context.Background(), "u-1", from, to)
	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.Equal(t, "m-2", meals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFindByUserID_Empty(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "meals" WHERE user_id = \$1 ORDER BY date DESC`).
		WillReturnRows(sqlmock.NewRows(mealColumns))

	meals, err := repo.FindByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	assert.NotNil(t, meals)
	assert.Empty(t, meals)
}

func TestGormDelete(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "meals" WHERE id = \$1`).
		WithArgs("m-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), "m-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFindByUserID_DBError(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	mock.ExpectQuery(`SELECT \* FROM "meals"`).WillReturnError(errors.New("db down"))

	_, err := repo.FindByUserID(context.Background(), "u-1")
	assert.Error(t, err)
}

func TestGormCreate(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "meals"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	meal := &domain.Meal{UserID: "u-1", Name: "Toast", Tag: domain.TagBreakfast, Date: time.Now()}
	require.NoError(t, repo.Create(context.Background(), meal))

	assert.NotEmpty(t, meal.ID)
	assert.False(t, meal.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUpdate_WritesNameAndDateOnly(t *testing.T) {
	repo, mock, sqlDB := newGormWithMock(t)
	defer sqlDB.Close()

	date := time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "meals" SET "name"=$1,"date"=$2 WHERE "id" = $3`)).
		WithArgs("Bagel", date, "m-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &domain.Meal{
		ID:     "m-1",
		UserID: "u-2",
		Name:   "Bagel",
		Tag:    domain.TagCheat,
		Note:   "changed",
		Date:   date,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
