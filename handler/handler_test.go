package handler_test

import (
	"Board/config"
	"Board/dao"
	"Board/dao/cache"
	"Board/handler"
	"Board/pkg/database"
	"Board/pkg/jwt"
	"Board/pkg/server"
	"Board/service"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	conf := &config.Config{
		App:   &config.App{Env: "test"},
		Jwt:   &config.Jwt{Secret: "handler-secret", Algorithm: "HS256", ExpireMinutes: 10},
		Board: &config.Board{},
	}
	issuer, err := jwt.NewIssuer(conf)
	require.NoError(t, err)

	db := database.NewTestDB(t)
	accounts := dao.NewAccounts(db)
	posts := dao.NewPosts(db)
	likes := dao.NewLikes(db)
	identity := &service.IdentityService{Issuer: issuer, AccountsDAO: accounts}

	return server.NewGinEngine(&server.Handlers{
		User: &handler.User{
			AccountService:  &service.AccountService{AccountsDAO: accounts, Issuer: issuer},
			IdentityService: identity,
		},
		Post: &handler.Post{
			PostService:     &service.PostService{Config: conf, PostsDAO: posts, LikesDAO: likes},
			LikeService:     &service.LikeService{LikesDAO: likes, Lock: cache.NewToggleLock(nil)},
			IdentityService: identity,
		},
		Comments: &handler.CommentsHandler{
			CommentService:  &service.CommentService{CommentsDAO: dao.NewComments(db), PostsDAO: posts},
			IdentityService: identity,
		},
	})
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func signupAndLogin(t *testing.T, r http.Handler, id string) string {
	t.Helper()

	w, _ := do(t, r, http.MethodPost, "/api/users/signup", "", map[string]string{
		"user_id":  id,
		"username": id,
		"email":    id + "@x.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env := do(t, r, http.MethodPost, "/api/users/login", "", map[string]string{
		"username": id,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &token))
	assert.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

func TestSignupLoginMe(t *testing.T) {
	r := newTestEngine(t)
	token := signupAndLogin(t, r, "alice")

	w, env := do(t, r, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var me map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "alice", me["user_id"])
	assert.Equal(t, "alice@x.com", me["email"])
	assert.NotContains(t, me, "password")

	w, _ = do(t, r, http.MethodGet, "/api/users/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/users/me", "broken.token.value", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupValidationAndConflict(t *testing.T) {
	r := newTestEngine(t)
	signupAndLogin(t, r, "alice")

	w, env := do(t, r, http.MethodPost, "/api/users/signup", "", map[string]string{
		"user_id": "bob", "username": "alice", "email": "bob@x.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, http.StatusConflict, env.Code)

	w, _ = do(t, r, http.MethodPost, "/api/users/signup", "", map[string]string{
		"user_id": "bob", "username": "bob", "email": "not-an-email", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/users/signup", "", map[string]string{
		"user_id": "bob", "username": "bob", "email": "bob@x.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWithForm(t *testing.T) {
	r := newTestEngine(t)
	signupAndLogin(t, r, "alice")

	form := url.Values{"username": {"alice"}, "password": {"secret123"}}
	req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/users/login", "", map[string]string{"username": "alice", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListMyLike(t *testing.T) {
	r := newTestEngine(t)
	token := signupAndLogin(t, r, "alice")

	var ids []uint64
	for i := 0; i < 3; i++ {
		w, env := do(t, r, http.MethodPost, "/api/posts", token, map[string]string{
			"title":   fmt.Sprintf("post %d", i),
			"content": "content",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var post struct {
			PostID uint64 `json:"post_id"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &post))
		ids = append(ids, post.PostID)
	}
	liked := ids[1]

	w, env := do(t, r, http.MethodPost, fmt.Sprintf("/api/posts/%d/like", liked), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var toggle struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &toggle))
	assert.True(t, toggle.Liked)
	assert.Equal(t, int64(1), toggle.LikesCount)

	type row struct {
		PostID     uint64 `json:"post_id"`
		LikesCount int64  `json:"likes_count"`
		MyLike     *bool  `json:"my_like"`
	}

	// 匿名访问 my_like 为 null
	_, env = do(t, r, http.MethodGet, "/api/posts", "", nil)
	var anonymous []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &anonymous))
	require.Len(t, anonymous, 3)
	for _, p := range anonymous {
		v, ok := p["my_like"]
		assert.True(t, ok)
		assert.Nil(t, v)
	}

	// 无效 token 按匿名处理
	w, _ = do(t, r, http.MethodGet, "/api/posts", "garbage", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	_, env = do(t, r, http.MethodGet, "/api/posts", token, nil)
	var mine []row
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	require.Len(t, mine, 3)
	for _, p := range mine {
		require.NotNil(t, p.MyLike)
		assert.Equal(t, p.PostID == liked, *p.MyLike)
	}
}

func TestPostOwnershipOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	alice := signupAndLogin(t, r, "alice")
	bob := signupAndLogin(t, r, "bob")

	_, env := do(t, r, http.MethodPost, "/api/posts", alice, map[string]string{"title": "t", "content": "c"})
	var post struct {
		PostID uint64 `json:"post_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))
	path := fmt.Sprintf("/api/posts/%d", post.PostID)

	w, _ := do(t, r, http.MethodPatch, path, bob, map[string]string{"title": "mine now"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	w, _ = do(t, r, http.MethodDelete, path, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, r, http.MethodPatch, path, alice, map[string]string{"title": "renamed"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodDelete, path, alice, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w, _ = do(t, r, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/posts/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentsOverHTTP(t *testing.T) {
	r := newTestEngine(t)
	alice := signupAndLogin(t, r, "alice")

	_, env := do(t, r, http.MethodPost, "/api/posts", alice, map[string]string{"title": "t", "content": "c"})
	var post struct {
		PostID uint64 `json:"post_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &post))

	w, _ := do(t, r, http.MethodPost, "/api/comments", "", map[string]any{"post_id": post.PostID, "content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/comments", alice, map[string]any{"post_id": post.PostID, "content": "hi"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/comments?post_id=%d", post.PostID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var comments []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	assert.Len(t, comments, 1)

	w, _ = do(t, r, http.MethodGet, "/api/comments", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestEngine(t)

	for _, path := range []string{"/api/users/health", "/api/posts/health", "/api/comments/health"} {
		w, _ := do(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "board_http_requests_total")
}
