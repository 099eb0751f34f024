package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"taxiservice/internal/db"
	apperrors "taxiservice/internal/errors"
	"taxiservice/internal/logger"
	"taxiservice/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := db.Open(db.DriverSQLite, dsn, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		_ = db.Reset(gdb)
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

func TestManufacturerRepository_CRUD(t *testing.T) {
	repo := NewManufacturerRepository(newTestDB(t))
	ctx := context.Background()

	m := &model.Manufacturer{Name: "Tavria", Country: "Ukraine"}
	require.NoError(t, repo.Create(ctx, m))
	require.NotZero(t, m.ID)
	require.NoError(t, repo.Create(ctx, &model.Manufacturer{Name: "Lada", Country: "Russia"}))

	found, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tavria Ukraine", found.String())

	found.Country = "UA"
	require.NoError(t, repo.Update(ctx, found))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Tavria", list[0].Name)
	assert.Equal(t, "UA", list[0].Country)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, repo.Delete(ctx, m.ID))
	_, err = repo.FindByID(ctx, m.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDriverRepository_UniqueUsername(t *testing.T) {
	repo := NewDriverRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Driver{Username: "testdriver1", PasswordHash: "x", LicenseNumber: "AAA11111"}))
	err := repo.Create(ctx, &model.Driver{Username: "testdriver1", PasswordHash: "x", LicenseNumber: "BBB22222"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestDriverRepository_Lookups(t *testing.T) {
	repo := NewDriverRepository(newTestDB(t))
	ctx := context.Background()

	d := &model.Driver{Username: "driver3", PasswordHash: "x", FirstName: "D", LastName: "Three", LicenseNumber: "CCC33333"}
	require.NoError(t, repo.Create(ctx, d))

	byName, err := repo.FindByUsername(ctx, "driver3")
	require.NoError(t, err)
	assert.Equal(t, d.ID, byName.ID)
	assert.Equal(t, "x", byName.PasswordHash)

	byLicense, err := repo.FindByLicenseNumber(ctx, "CCC33333")
	require.NoError(t, err)
	assert.Equal(t, d.ID, byLicense.ID)

	_, err = repo.FindByUsername(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.UpdateLicenseNumber(ctx, d.ID, "DDD44444"))
	reloaded, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "DDD44444", reloaded.LicenseNumber)
	assert.Equal(t, "x", reloaded.PasswordHash)
}

func TestCarRepository_DriverAssignments(t *testing.T) {
	gdb := newTestDB(t)
	cars := NewCarRepository(gdb)
	drivers := NewDriverRepository(gdb)
	manufacturers := NewManufacturerRepository(gdb)
	ctx := context.Background()

	m := &model.Manufacturer{Name: "TestManufacturer", Country: "Nowhere"}
	require.NoError(t, manufacturers.Create(ctx, m))
	car := &model.Car{Model: "ModelX1", ManufacturerID: m.ID}
	require.NoError(t, cars.Create(ctx, car))
	d := &model.Driver{Username: "testdriver1", PasswordHash: "x", LicenseNumber: "AAA11111"}
	require.NoError(t, drivers.Create(ctx, d))

	has, err := cars.HasDriver(ctx, car.ID, d.ID)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, cars.AddDriver(ctx, car.ID, d.ID))

	has, err = cars.HasDriver(ctx, car.ID, d.ID)
	require.NoError(t, err)
	assert.True(t, has)

	loaded, err := cars.FindByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, "TestManufacturer", loaded.Manufacturer.Name)
	require.Len(t, loaded.Drivers, 1)
	assert.Equal(t, "testdriver1", loaded.Drivers[0].Username)

	withCars, err := drivers.FindByID(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, withCars.Cars, 1)
	assert.Equal(t, "TestManufacturer", withCars.Cars[0].Manufacturer.Name)

	n, err := cars.CountByManufacturer(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, cars.RemoveDriver(ctx, car.ID, d.ID))
	has, err = cars.HasDriver(ctx, car.ID, d.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCarRepository_DeleteClearsAssignments(t *testing.T) {
	gdb := newTestDB(t)
	cars := NewCarRepository(gdb)
	drivers := NewDriverRepository(gdb)
	ctx := context.Background()

	m := &model.Manufacturer{Name: "M", Country: "C"}
	require.NoError(t, NewManufacturerRepository(gdb).Create(ctx, m))
	car := &model.Car{Model: "ModelY1", ManufacturerID: m.ID}
	require.NoError(t, cars.Create(ctx, car))
	d := &model.Driver{Username: "u", PasswordHash: "x", LicenseNumber: "AAA11111"}
	require.NoError(t, drivers.Create(ctx, d))
	require.NoError(t, cars.AddDriver(ctx, car.ID, d.ID))

	require.NoError(t, cars.Delete(ctx, car.ID))

	var joins int64
	require.NoError(t, gdb.Table(carDriversTable).Count(&joins).Error)
	assert.Zero(t, joins)

	_, err := cars.FindByID(ctx, car.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCarRepository_ListPreservesInsertionOrder(t *testing.T) {
	gdb := newTestDB(t)
	cars := NewCarRepository(gdb)
	ctx := context.Background()

	m := &model.Manufacturer{Name: "TestManufacturer", Country: "C"}
	require.NoError(t, NewManufacturerRepository(gdb).Create(ctx, m))
	for _, name := range []string{"ModelY1", "ModelX1", "ModelX2"} {
		require.NoError(t, cars.Create(ctx, &model.Car{Model: name, ManufacturerID: m.ID}))
	}

	list, err := cars.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"ModelY1", "ModelX1", "ModelX2"}, []string{list[0].Model, list[1].Model, list[2].Model})
	assert.Equal(t, "TestManufacturer", list[2].Manufacturer.Name)
}
