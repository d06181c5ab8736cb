package service

import (
	"context"
	"strings"

	"github.com/Ladynads/creaverse/internal/keywords"
	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/repository"
)

const maxContentLen = 10000

// PostService owns the post lifecycle: creation with keyword extraction,
// drafts, likes and comments. Likes and comments are mirrored into the
// interaction ledger.
type PostService struct {
	postRepo     repository.PostRepository
	commentRepo  repository.CommentRepository
	interactions *InteractionService
}

type CreatePostInput struct {
	UserID   uint
	Content  string
	ImageURL string
	IsDraft  bool
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Content  string
	ImageURL string
	// Publish moves a draft to published. Published posts never revert
	// to draft.
	Publish bool
}

type AddCommentInput struct {
	UserID   uint
	PostID   uint
	ParentID *uint
	Content  string
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, interactions *InteractionService) *PostService {
	return &PostService{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		interactions: interactions,
	}
}

func validContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content is too long")
	}
	return nil
}

// CreatePost stores a new post with keywords extracted from its content.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validContent(in.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   in.UserID,
		Content:  in.Content,
		ImageURL: in.ImageURL,
		IsDraft:  in.IsDraft,
	}
	post.SetKeywords(keywords.Extract(in.Content))

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns the post with engagement counts filled in. Drafts are
// visible to their author only; everyone else gets not found.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}
	if post.IsDraft && post.UserID != viewerID {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// UpdatePost edits a post's content. Keywords are recomputed from the new
// content so they never drift from it.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if post.UserID != in.UserID {
		return nil, models.NewPermissionError("You can only edit your own posts")
	}
	if err := validContent(in.Content); err != nil {
		return nil, err
	}

	post.Content = in.Content
	post.ImageURL = in.ImageURL
	post.SetKeywords(keywords.Extract(in.Content))
	if in.Publish {
		post.IsDraft = false
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost removes a post and its dependent rows.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, userID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewPermissionError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ListUserPosts returns a user's posts. Drafts are included only when the
// viewer is the author.
func (s *PostService) ListUserPosts(ctx context.Context, ownerID, viewerID uint, limit int) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, ownerID, ownerID == viewerID, limit)
}

// ListLikedPosts returns the posts a user has liked, most recent like first.
func (s *PostService) ListLikedPosts(ctx context.Context, userID uint, limit int) ([]*models.Post, error) {
	return s.postRepo.ListLikedBy(ctx, userID, limit)
}

// ToggleLike flips the viewer's like on a post and mirrors the change into
// the ledger. It reports the resulting state.
func (s *PostService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	post, err := s.GetPost(ctx, postID, userID)
	if err != nil {
		return false, err
	}

	liked, err := s.postRepo.IsLiked(ctx, userID, postID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
			return true, err
		}
		if err := s.interactions.Remove(ctx, userID, models.PostTarget(post.ID), models.InteractionLike); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return false, err
	}
	if _, err := s.interactions.Record(ctx, userID, models.PostTarget(post.ID), models.InteractionLike, nil); err != nil {
		return true, err
	}
	return true, nil
}

// RecordView marks the post as seen by the viewer. Repeat views are no-ops.
func (s *PostService) RecordView(ctx context.Context, userID, postID uint) error {
	post, err := s.GetPost(ctx, postID, userID)
	if err != nil {
		return err
	}
	_, err = s.interactions.Record(ctx, userID, models.PostTarget(post.ID), models.InteractionView, nil)
	return err
}

// AddComment creates a comment, threaded under a parent when given. The
// parent must belong to the same post. Commenting marks the post as
// interacted with in the ledger; deleting comments later does not erase
// that history.
func (s *PostService) AddComment(ctx context.Context, in AddCommentInput) (*models.Comment, error) {
	if err := validContent(in.Content); err != nil {
		return nil, err
	}
	post, err := s.GetPost(ctx, in.PostID, in.UserID)
	if err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != in.PostID {
			return nil, models.NewValidationError("Parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:   in.PostID,
		UserID:   in.UserID,
		ParentID: in.ParentID,
		Content:  in.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	if _, err := s.interactions.Record(ctx, in.UserID, models.PostTarget(post.ID), models.InteractionComment, nil); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment edits a comment's content and marks it edited.
func (s *PostService) UpdateComment(ctx context.Context, userID, commentID uint, content string) (*models.Comment, error) {
	if err := validContent(content); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewPermissionError("You can only edit your own comments")
	}

	comment.Content = content
	comment.Edited = true
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment removes a comment. The comment author and the post author
// may both delete it.
func (s *PostService) DeleteComment(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		post, err := s.postRepo.GetByID(ctx, comment.PostID, userID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return models.NewPermissionError("You can only delete your own comments")
		}
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// ListComments returns a post's comments oldest first.
func (s *PostService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
