package store

import (
	"context"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"housing-backend/internal/db"
	"housing-backend/internal/model"
)

// A helper function to create a mock database connection.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: conn,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return gormDB, mock
}

// newSQLiteDB opens a private in-memory database with the schema migrated.
func newSQLiteDB(t *testing.T) *gorm.DB {
	name := strings.ReplaceAll(t.Name(), "/", "_")
	testDB, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(testDB))

	sqlDB, _ := testDB.DB()
	t.Cleanup(func() { sqlDB.Close() })
	return testDB
}

func TestChambreStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewGormChambreStore(newSQLiteDB(t))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	c1 := &model.Chambre{Numero: "101", Type: "SIMPLE"}
	c2 := &model.Chambre{Numero: "102", Type: "DOUBLE"}
	require.NoError(t, s.Save(ctx, c1))
	require.NoError(t, s.Save(ctx, c2))
	assert.NotZero(t, c1.ID)
	assert.NotZero(t, c2.ID)
	assert.NotEqual(t, c1.ID, c2.ID)

	all, err = s.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.Chambre{*c1, *c2}, all)

	found, err := s.FindByID(ctx, c2.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *c2, *found)
}

func TestChambreStore_SaveWithIDReplacesRecord(t *testing.T) {
	ctx := context.Background()
	s := NewGormChambreStore(newSQLiteDB(t))

	c := &model.Chambre{Numero: "201", Type: "SIMPLE"}
	require.NoError(t, s.Save(ctx, c))

	updated := &model.Chambre{ID: c.ID, Numero: "201", Type: "DOUBLE"}
	require.NoError(t, s.Save(ctx, updated))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "DOUBLE", all[0].Type)
}

func TestChambreStore_SaveWithUnknownIDInserts(t *testing.T) {
	ctx := context.Background()
	s := NewGormChambreStore(newSQLiteDB(t))

	require.NoError(t, s.Save(ctx, &model.Chambre{ID: 42, Numero: "301", Type: "TRIPLE"}))

	found, err := s.FindByID(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "301", found.Numero)
}

func TestChambreStore_FindByIDMissingReturnsNil(t *testing.T) {
	s := NewGormChambreStore(newSQLiteDB(t))

	found, err := s.FindByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestUniversiteStore_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewGormUniversiteStore(newSQLiteDB(t))

	u := &model.Universite{Nom: "ESPRIT", Adresse: "Ariana"}
	require.NoError(t, s.Save(ctx, u))
	assert.NotZero(t, u.ID)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Universite{*u}, all)

	found, err := s.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, found)

	missing, err := s.FindByID(ctx, u.ID+1)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBlocStore_SaveDoesNotWriteChambres(t *testing.T) {
	ctx := context.Background()
	testDB := newSQLiteDB(t)
	s := NewGormBlocStore(testDB)

	b := &model.Bloc{Nom: "Bloc A", Chambres: []model.Chambre{{Numero: "101", Type: "SIMPLE"}}}
	require.NoError(t, s.Save(ctx, b))
	assert.NotZero(t, b.ID)

	var count int64
	require.NoError(t, testDB.Model(&model.Chambre{}).Count(&count).Error)
	assert.Equal(t, int64(0), count, "saving a bloc must not cascade to its chambres")
}

func TestBlocStore_FindPreloadsChambres(t *testing.T) {
	ctx := context.Background()
	testDB := newSQLiteDB(t)
	blocs := NewGormBlocStore(testDB)
	chambres := NewGormChambreStore(testDB)

	b := &model.Bloc{Nom: "Bloc B"}
	require.NoError(t, blocs.Save(ctx, b))
	require.NoError(t, chambres.Save(ctx, &model.Chambre{Numero: "11", Type: "SIMPLE", BlocID: &b.ID}))
	require.NoError(t, chambres.Save(ctx, &model.Chambre{Numero: "12", Type: "DOUBLE", BlocID: &b.ID}))
	require.NoError(t, chambres.Save(ctx, &model.Chambre{Numero: "99", Type: "SIMPLE"}))

	found, err := blocs.FindByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bloc B", found.Nom)
	require.Len(t, found.Chambres, 2)
	for _, c := range found.Chambres {
		require.NotNil(t, c.BlocID)
		assert.Equal(t, b.ID, *c.BlocID)
	}

	all, err := blocs.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Chambres, 2)

	missing, err := blocs.FindByID(ctx, b.ID+100)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStringColumnsAreUnboundedOnPostgres(t *testing.T) {
	gormDB, _ := newMockDB(t)

	testCases := []struct {
		model   any
		columns []string
	}{
		{&model.Chambre{}, []string{"numero_chambre", "type_chambre"}},
		{&model.Universite{}, []string{"nom_universite", "adresse"}},
		{&model.Bloc{}, []string{"nom_bloc"}},
	}
	for _, tc := range testCases {
		s, err := schema.Parse(tc.model, &sync.Map{}, gormDB.NamingStrategy)
		require.NoError(t, err)
		for _, column := range tc.columns {
			field := s.LookUpField(column)
			require.NotNil(t, field, "column %s", column)
			assert.Equal(t, "text", gormDB.Dialector.DataTypeOf(field), "column %s", column)
		}
	}
}

func TestChambreStore_LongValuesAreStoredAsIs(t *testing.T) {
	ctx := context.Background()
	s := NewGormChambreStore(newSQLiteDB(t))

	c := &model.Chambre{
		Numero: strings.Repeat("9", 300),
		Type:   "SUITE " + strings.Repeat("avec vue sur la mer ", 20),
	}
	require.NoError(t, s.Save(ctx, c))

	found, err := s.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *c, *found)
}

func TestGormStores_SQL(t *testing.T) {
	testCases := []struct {
		name             string
		mockExpectations func(mock sqlmock.Sqlmock)
		run              func(db *gorm.DB) error
	}{
		{
			name: "Chambre insert is a single INSERT returning the id",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "chambres" ("numero_chambre","type_chambre","bloc_id") VALUES ($1,$2,$3)`)).
					WithArgs("103", "SIMPLE", Any{}).
					WillReturnRows(sqlmock.NewRows([]string{"id_chambre"}).AddRow(3))
				mock.ExpectCommit()
			},
			run: func(db *gorm.DB) error {
				c := &model.Chambre{Numero: "103", Type: "SIMPLE"}
				if err := NewGormChambreStore(db).Save(context.Background(), c); err != nil {
					return err
				}
				if c.ID != 3 {
					return fmt.Errorf("expected id 3, got %d", c.ID)
				}
				return nil
			},
		},
		{
			name: "Bloc insert omits chambres",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "blocs" ("nom_bloc") VALUES ($1)`)).
					WithArgs("Bloc A").
					WillReturnRows(sqlmock.NewRows([]string{"id_bloc"}).AddRow(1))
				mock.ExpectCommit()
			},
			run: func(db *gorm.DB) error {
				b := &model.Bloc{Nom: "Bloc A", Chambres: []model.Chambre{{Numero: "101"}}}
				return NewGormBlocStore(db).Save(context.Background(), b)
			},
		},
		{
			name: "Chambre lookup miss is not an error",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chambres" WHERE "chambres"."id_chambre" = $1`)).
					WithArgs(7, Any{}).
					WillReturnRows(sqlmock.NewRows([]string{"id_chambre", "numero_chambre", "type_chambre", "bloc_id"}))
			},
			run: func(db *gorm.DB) error {
				c, err := NewGormChambreStore(db).FindByID(context.Background(), 7)
				if err != nil {
					return err
				}
				if c != nil {
					return fmt.Errorf("expected nil chambre, got %+v", c)
				}
				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newMockDB(t)
			tc.mockExpectations(mock)

			assert.NoError(t, tc.run(gormDB))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestChambreStore_PropagatesDatabaseErrors(t *testing.T) {
	gormDB, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "chambres"`)).
		WillReturnError(fmt.Errorf("connection refused"))

	_, err := NewGormChambreStore(gormDB).FindAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch chambres")
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Any is a helper for sqlmock to match any argument.
type Any struct{}

// Match satisfies the sqlmock.Argument interface
func (a Any) Match(v driver.Value) bool {
	return true
}
