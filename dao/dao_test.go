package dao

import (
	"Board/models"
	"Board/pkg/database"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return database.NewTestDB(t)
}

func seedAccount(t *testing.T, db *gorm.DB, id string) *models.Account {
	t.Helper()
	account := &models.Account{
		ID:       id,
		Username: id + "_name",
		Email:    id + "@example.com",
		Password: "x",
	}
	require.NoError(t, NewAccounts(db).Create(context.Background(), account))
	return account
}

func seedPost(t *testing.T, db *gorm.DB, authorID, title, content string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: content, AuthorID: authorID}
	require.NoError(t, NewPosts(db).Create(context.Background(), post))
	return post
}
