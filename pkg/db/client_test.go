package db

import (
	"context"
	"errors"
	"testing"

	"github.com/foodisbae/foodisbae-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewRequiresDSN(t *testing.T) {
	_, err := New(context.Background(), config.DBConfig{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DSN is required")
}

type txRow struct {
	ID   uint
	Body string
}

func TestWithTxRollsBackOnError(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&txRow{}))
	client := &Client{conn: gdb}

	err = client.WithTx(context.Background(), func(tx *gorm.DB) error {
		if createErr := tx.Create(&txRow{Body: "first"}).Error; createErr != nil {
			return createErr
		}
		return errors.New("abort")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&txRow{}).Count(&count).Error)
	assert.Zero(t, count)

	err = client.WithTx(context.Background(), func(tx *gorm.DB) error {
		return tx.Create(&txRow{Body: "second"}).Error
	})
	require.NoError(t, err)
	require.NoError(t, gdb.Model(&txRow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil, ""))
	assert.True(t, IsUniqueViolation(errors.New(`duplicate key value violates unique constraint "users_email_key"`), ""))
	assert.True(t, IsUniqueViolation(errors.New(`constraint "users_email_key" violated`), "users_email_key"))
	assert.False(t, IsUniqueViolation(errors.New("connection reset"), ""))
}
