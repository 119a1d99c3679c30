//go:build integration
// +build integration

package dao

import (
	"Board/config"
	"Board/models"
	"Board/pkg/database"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"gorm.io/gorm"
)

// newMySQLDB 启动 mysql 容器，默认隔离级别 REPEATABLE READ
func newMySQLDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := mysql.Run(ctx,
		"mysql:8.0",
		mysql.WithDatabase("board"),
		mysql.WithUsername("board"),
		mysql.WithPassword("board"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "charset=utf8mb4", "parseTime=True", "loc=Local")
	require.NoError(t, err)

	db, err := database.Open(&config.Database{
		Driver:       config.DriverMySQL,
		Dsn:          dsn,
		MaxOpenConns: 20,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestMySQL_ConcurrentToggle(t *testing.T) {
	assertConcurrentToggle(t, newMySQLDB(t), 21)
}

func TestMySQL_ConcurrentFirstToggleDifferentUsers(t *testing.T) {
	db := newMySQLDB(t)
	ctx := context.Background()
	seedAccount(t, db, "alice")
	seedAccount(t, db, "bob")
	post := seedPost(t, db, "alice", "t", "c")
	likes := NewLikes(db)

	errs := make(chan error, 2)
	for _, user := range []string{"alice", "bob"} {
		go func(user string) {
			_, err := likes.Toggle(ctx, post.ID, user)
			errs <- err
		}(user)
	}
	require.NoError(t, <-errs)
	require.NoError(t, <-errs)

	n, err := likes.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestMySQL_SearchCaseSensitive(t *testing.T) {
	db := newMySQLDB(t)
	ctx := context.Background()
	seedAccount(t, db, "alice")
	upper := seedPost(t, db, "alice", "Go tips", "c")
	seedPost(t, db, "alice", "misc", "we go hiking")

	posts := NewPosts(db)
	rows, err := posts.List(ctx, PostQuery{Search: "Go", CaseSensitive: true, Limit: 20})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, upper.ID, rows[0].ID)
}

func TestMySQL_DuplicateKey(t *testing.T) {
	db := newMySQLDB(t)
	seedAccount(t, db, "alice")

	err := NewAccounts(db).Create(context.Background(), &models.Account{
		ID: "other", Username: "alice_name", Email: "other@example.com", Password: "x",
	})
	assert.True(t, IsDuplicateKey(err))
}
