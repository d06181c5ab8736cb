package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Ladynads/creaverse/internal/cache"
	"github.com/Ladynads/creaverse/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines the interface for post data operations, including
// the like rows that hang off posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, includeDrafts bool, limit int) ([]*models.Post, error)
	ListLikedBy(ctx context.Context, userID uint, limit int) ([]*models.Post, error)
	ListCandidates(ctx context.Context, limit int) ([]*models.Post, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)

	Like(ctx context.Context, userID, postID uint) error
	Unlike(ctx context.Context, userID, postID uint) error
	IsLiked(ctx context.Context, userID, postID uint) (bool, error)
	LikedPostIDs(ctx context.Context, userID uint) ([]uint, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTrending(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}

	posts := []*models.Post{&post}
	if err := r.loadEngagement(ctx, posts); err != nil {
		return nil, err
	}
	if currentUserID != 0 {
		liked, err := r.IsLiked(ctx, currentUserID, id)
		if err != nil {
			return nil, err
		}
		post.Liked = liked
	}
	return &post, nil
}

func (r *postRepository) GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTrending(ctx)
	return nil
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.UserInteraction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTrending(ctx)
	return nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, includeDrafts bool, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	q := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID)
	if !includeDrafts {
		q = q.Where("is_draft = ?", false)
	}
	var posts []*models.Post
	if err := q.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.loadEngagement(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListLikedBy(ctx context.Context, userID uint, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 20
	}
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN likes ON likes.post_id = posts.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.loadEngagement(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// feedCandidates is the cached form of the candidate slice. The stored
// limit lets a cached entry serve any request for the same or fewer rows.
type feedCandidates struct {
	Limit int            `json:"limit"`
	Posts []*models.Post `json:"posts"`
}

// ListCandidates returns the bounded, most recent slice of published posts
// that feed ranking works over, with like and comment counts populated.
// Results are cached under the trending key; every post, like, and comment
// write invalidates it.
func (r *postRepository) ListCandidates(ctx context.Context, limit int) ([]*models.Post, error) {
	if limit <= 0 {
		limit = 500
	}

	var cached feedCandidates
	if found, err := cache.GetJSON(ctx, cache.TrendingKey(), &cached); err == nil && found && cached.Limit >= limit {
		if len(cached.Posts) > limit {
			return cached.Posts[:limit], nil
		}
		return cached.Posts, nil
	}

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("is_draft = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := r.loadEngagement(ctx, posts); err != nil {
		return nil, err
	}
	_ = cache.SetJSON(ctx, cache.TrendingKey(), feedCandidates{Limit: limit, Posts: posts}, cache.TrendingTTL)
	return posts, nil
}

func (r *postRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("user_id = ? AND is_draft = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Like(ctx context.Context, userID, postID uint) error {
	like := models.Like{UserID: userID, PostID: postID, Reaction: models.ReactionLike}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTrending(ctx)
	return nil
}

func (r *postRepository) Unlike(ctx context.Context, userID, postID uint) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTrending(ctx)
	return nil
}

func (r *postRepository) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *postRepository) LikedPostIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

type engagementRow struct {
	PostID uint
	N      int64
}

// loadEngagement fills LikesCount and CommentsCount for a batch of posts
// with two grouped queries. Counts always come from the live rows, never a
// stored column.
func (r *postRepository) loadEngagement(ctx context.Context, posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	ids := make([]uint, len(posts))
	byID := make(map[uint]*models.Post, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	var likeRows []engagementRow
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&likeRows).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	for _, row := range likeRows {
		byID[row.PostID].LikesCount = int(row.N)
	}

	var commentRows []engagementRow
	err = r.db.WithContext(ctx).Model(&models.Comment{}).
		Select("post_id, COUNT(*) AS n").
		Where("post_id IN ?", ids).
		Group("post_id").
		Scan(&commentRows).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	for _, row := range commentRows {
		byID[row.PostID].CommentsCount = int(row.N)
	}
	return nil
}

// RecentWindow returns the cutoff instant for "recent" posts.
func RecentWindow(now time.Time, days int) time.Time {
	return now.AddDate(0, 0, -days)
}
