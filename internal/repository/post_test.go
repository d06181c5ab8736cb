package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Ladynads/creaverse/internal/cache"
	"github.com/Ladynads/creaverse/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_LikeToggleKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	fan := createTestUser(t, db, "fan")
	post := createTestPost(t, db, author, "hello world")

	// double-like stays one row
	require.NoError(t, repo.Like(ctx, fan.ID, post.ID))
	require.NoError(t, repo.Like(ctx, fan.ID, post.ID))

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	liked, err := repo.IsLiked(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	require.NoError(t, repo.Unlike(ctx, fan.ID, post.ID))
	liked, err = repo.IsLiked(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	// re-like after unlike works, still one row
	require.NoError(t, repo.Like(ctx, fan.ID, post.ID))
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPostRepository_EngagementCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	fan1 := createTestUser(t, db, "fan1")
	fan2 := createTestUser(t, db, "fan2")
	post := createTestPost(t, db, author, "counted post")

	require.NoError(t, repo.Like(ctx, fan1.ID, post.ID))
	require.NoError(t, repo.Like(ctx, fan2.ID, post.ID))
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, UserID: fan1.ID, Content: "nice"}).Error)

	got, err := repo.GetByID(ctx, post.ID, fan1.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LikesCount)
	assert.Equal(t, 1, got.CommentsCount)
	assert.True(t, got.Liked)

	got, err = repo.GetByID(ctx, post.ID, fan2.ID)
	require.NoError(t, err)
	assert.True(t, got.Liked)
}

func TestPostRepository_ListCandidatesExcludesDrafts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	published := createTestPost(t, db, author, "published")
	draft := &models.Post{UserID: author.ID, Content: "draft", IsDraft: true}
	require.NoError(t, db.Create(draft).Error)

	posts, err := repo.ListCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, published.ID, posts[0].ID)
}

func TestPostRepository_ListCandidatesCapAndOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 5; i++ {
		post := &models.Post{UserID: author.ID, Content: fmt.Sprintf("post %d", i)}
		require.NoError(t, db.Create(post).Error)
		require.NoError(t, db.Model(post).Update("created_at", base.Add(time.Duration(i)*time.Hour)).Error)
	}

	posts, err := repo.ListCandidates(ctx, 3)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.True(t, !posts[i-1].CreatedAt.Before(posts[i].CreatedAt),
			"candidates must be newest first")
	}
}

func TestPostRepository_ListLikedBy(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	fan := createTestUser(t, db, "fan")
	liked := createTestPost(t, db, author, "liked one")
	createTestPost(t, db, author, "ignored one")

	require.NoError(t, repo.Like(ctx, fan.ID, liked.ID))

	posts, err := repo.ListLikedBy(ctx, fan.ID, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, liked.ID, posts[0].ID)

	ids, err := repo.LikedPostIDs(ctx, fan.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{liked.ID}, ids)
}

func TestPostRepository_DeleteCleansChildren(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	fan := createTestUser(t, db, "fan")
	post := createTestPost(t, db, author, "doomed")

	require.NoError(t, repo.Like(ctx, fan.ID, post.ID))
	require.NoError(t, db.Create(&models.Comment{PostID: post.ID, UserID: fan.ID, Content: "bye"}).Error)

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID, 0)
	require.Error(t, err)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	var likes int64
	require.NoError(t, db.Model(&models.Like{}).Where("post_id = ?", post.ID).Count(&likes).Error)
	assert.EqualValues(t, 0, likes)
}

func TestPostRepository_ListCandidatesCached(t *testing.T) {
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer cache.SetClient(nil)

	db := newTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	author := createTestUser(t, db, "author")
	createTestPost(t, db, author, "warm the cache")

	posts, err := repo.ListCandidates(ctx, 10)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, mr.Exists(cache.TrendingKey()))

	// served from cache: a post created behind the cache's back stays hidden
	stale := &models.Post{UserID: author.ID, Content: "behind the cache"}
	require.NoError(t, db.Create(stale).Error)
	posts, err = repo.ListCandidates(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	// a write through the repository invalidates, so the next read is fresh
	fresh := &models.Post{UserID: author.ID, Content: "through the front door"}
	require.NoError(t, repo.Create(ctx, fresh))
	posts, err = repo.ListCandidates(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	// a wider request than the cached one goes back to the database
	posts, err = repo.ListCandidates(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, posts, 3)
}
