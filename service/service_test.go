package service

import (
	"Board/config"
	"Board/dao"
	"Board/dao/cache"
	"Board/models"
	"Board/pkg/database"
	"Board/pkg/jwt"
	"Board/types"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type testApp struct {
	Config   *config.Config
	Issuer   *jwt.Issuer
	Accounts *AccountService
	Identity *IdentityService
	Posts    *PostService
	Likes    *LikeService
	Comments *CommentService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	conf := &config.Config{
		Jwt:   &config.Jwt{Secret: "test-secret", Algorithm: "HS256", ExpireMinutes: 30},
		Board: &config.Board{},
	}
	issuer, err := jwt.NewIssuer(conf)
	require.NoError(t, err)

	db := database.NewTestDB(t)
	accounts := dao.NewAccounts(db)
	posts := dao.NewPosts(db)
	likes := dao.NewLikes(db)

	return &testApp{
		Config:   conf,
		Issuer:   issuer,
		Accounts: &AccountService{AccountsDAO: accounts, Issuer: issuer},
		Identity: &IdentityService{Issuer: issuer, AccountsDAO: accounts},
		Posts:    &PostService{Config: conf, PostsDAO: posts, LikesDAO: likes},
		Likes:    &LikeService{LikesDAO: likes, Lock: cache.NewToggleLock(nil)},
		Comments: &CommentService{CommentsDAO: dao.NewComments(db), PostsDAO: posts},
	}
}

func (a *testApp) signup(t *testing.T, id string) *models.Account {
	t.Helper()
	account, err := a.Accounts.Signup(context.Background(), &types.SignupRequest{
		UserID:   id,
		Username: id + "_name",
		Email:    id + "@example.com",
		Password: "password-" + id,
	})
	require.NoError(t, err)
	return account
}

func (a *testApp) post(t *testing.T, author *models.Account, title, content string) *types.PostResponse {
	t.Helper()
	post, err := a.Posts.Create(context.Background(), author, &types.CreatePostRequest{Title: title, Content: content})
	require.NoError(t, err)
	return post
}

func ptr[T any](v T) *T {
	return &v
}
