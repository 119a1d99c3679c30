package dao

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikes_ToggleInvolutive(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedAccount(t, db, "alice")
	post := seedPost(t, db, "alice", "t", "c")
	likes := NewLikes(db)

	liked, err := likes.Toggle(ctx, post.ID, "alice")
	require.NoError(t, err)
	assert.True(t, liked)

	n, err := likes.CountByPostUser(ctx, post.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	liked, err = likes.Toggle(ctx, post.ID, "alice")
	require.NoError(t, err)
	assert.False(t, liked)

	n, err = likes.CountByPostUser(ctx, post.ID, "alice")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLikes_ToggleMissingPost(t *testing.T) {
	db := newTestDB(t)
	seedAccount(t, db, "alice")

	_, err := NewLikes(db).Toggle(context.Background(), 42, "alice")
	assert.True(t, IsNotFound(err))
}

func TestLikes_ConcurrentToggleKeepsAtMostOneRow(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedAccount(t, db, "alice")
	post := seedPost(t, db, "alice", "t", "c")
	likes := NewLikes(db)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := likes.Toggle(ctx, post.ID, "alice")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := likes.CountByPostUser(ctx, post.ID, "alice")
	require.NoError(t, err)
	// 偶数次切换后回到未点赞
	assert.Zero(t, n)
}

func TestLikes_LikedPostIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedAccount(t, db, "alice")
	p1 := seedPost(t, db, "alice", "a", "a")
	p2 := seedPost(t, db, "alice", "b", "b")
	likes := NewLikes(db)

	_, err := likes.Toggle(ctx, p2.ID, "alice")
	require.NoError(t, err)

	got, err := likes.LikedPostIDs(ctx, "alice", []uint64{p1.ID, p2.ID})
	require.NoError(t, err)
	assert.False(t, got[p1.ID])
	assert.True(t, got[p2.ID])

	got, err = likes.LikedPostIDs(ctx, "alice", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
