package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ladynads/creaverse/internal/cache"
	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/repository"
	"github.com/Ladynads/creaverse/internal/validation"
)

const (
	maxEngagementScore  = 100
	featuredCreatorsMax = 5
)

// UserService owns accounts and the follow graph. Registration is
// invite-gated: a valid unused code is consumed as part of account
// creation.
type UserService struct {
	userRepo     repository.UserRepository
	postRepo     repository.PostRepository
	invites      *InviteService
	interactions *InteractionService
	now          func() time.Time
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	InviteCode string
}

type UpdateProfileInput struct {
	UserID      uint
	Bio         string
	Avatar      string
	CoverImage  string
	SocialLinks models.JSONMap
}

// ProfileStats is the derived per-user summary: counts plus the engagement
// score. It is computed from the source tables and cached, never stored.
type ProfileStats struct {
	UserID          uint  `json:"user_id"`
	Posts           int64 `json:"posts"`
	Followers       int64 `json:"followers"`
	Following       int64 `json:"following"`
	LikesReceived   int64 `json:"likes_received"`
	EngagementScore int64 `json:"engagement_score"`
	Online          bool  `json:"online"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository, invites *InviteService, interactions *InteractionService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		invites:      invites,
		interactions: interactions,
		now:          time.Now,
	}
}

// Register creates an account against an invite code. The code is claimed
// after the account row exists; if claiming fails the account is rolled
// back, so a lost redemption race never leaves a user behind.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := s.invites.Validate(ctx, in.InviteCode); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		LastSeen: s.now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if _, err := s.invites.Redeem(ctx, in.InviteCode, user.ID); err != nil {
		if delErr := s.userRepo.Delete(ctx, user.ID); delErr != nil {
			return nil, models.NewInternalError(delErr)
		}
		return nil, err
	}
	return user, nil
}

// Authenticate checks the password for the named user and touches their
// last seen timestamp on success.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewPermissionError("Invalid credentials")
	}
	if err := s.userRepo.TouchLastSeen(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile returns the user with follower, following and post counts
// filled in.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.fillCounts(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) fillCounts(ctx context.Context, user *models.User) error {
	followers, err := s.userRepo.FollowerCount(ctx, user.ID)
	if err != nil {
		return err
	}
	following, err := s.userRepo.FollowingCount(ctx, user.ID)
	if err != nil {
		return err
	}
	posts, err := s.postRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	user.FollowerCount = int(followers)
	user.FollowingCount = int(following)
	user.PostCount = int(posts)
	return nil
}

// UpdateProfile applies profile edits. Username and email are immutable
// here.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	user.Bio = in.Bio
	user.Avatar = in.Avatar
	user.CoverImage = in.CoverImage
	user.SocialLinks = in.SocialLinks

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	cache.InvalidateUserStats(ctx, user.ID)
	return user, nil
}

// DeleteAccount removes the user and their dependent rows. Invite codes
// they redeemed stay consumed.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	cache.InvalidateUserStats(ctx, userID)
	return nil
}

// FollowToggle flips the follow edge from followerID to followeeID and
// mirrors it into the ledger. It reports the resulting state.
func (s *UserService) FollowToggle(ctx context.Context, followerID, followeeID uint) (bool, error) {
	if followerID == followeeID {
		return false, models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return false, err
	}

	following, err := s.userRepo.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return false, err
	}

	if following {
		// Ledger first: if either step fails the edge is still present, so
		// the reported state matches the store and a retry heals the marker.
		if err := s.interactions.Remove(ctx, followerID, models.UserTarget(followeeID), models.InteractionFollow); err != nil {
			return true, err
		}
		if err := s.userRepo.Unfollow(ctx, followerID, followeeID); err != nil {
			return true, err
		}
		cache.InvalidateUserStats(ctx, followeeID)
		return false, nil
	}

	if err := s.userRepo.Follow(ctx, followerID, followeeID); err != nil {
		return false, err
	}
	if _, err := s.interactions.Record(ctx, followerID, models.UserTarget(followeeID), models.InteractionFollow, nil); err != nil {
		return true, err
	}
	cache.InvalidateUserStats(ctx, followeeID)
	return true, nil
}

// Stats returns the cached profile summary, recomputing it from the source
// tables on a cache miss. The score saturates at 100.
func (s *UserService) Stats(ctx context.Context, userID uint) (*ProfileStats, error) {
	var stats ProfileStats
	err := cache.Aside(ctx, cache.UserStatsKey(userID), &stats, cache.UserStatsTTL, func() error {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		posts, err := s.postRepo.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		followers, err := s.userRepo.FollowerCount(ctx, userID)
		if err != nil {
			return err
		}
		following, err := s.userRepo.FollowingCount(ctx, userID)
		if err != nil {
			return err
		}
		likes, err := s.userRepo.CountLikesReceived(ctx, userID)
		if err != nil {
			return err
		}

		stats = ProfileStats{
			UserID:          userID,
			Posts:           posts,
			Followers:       followers,
			Following:       following,
			LikesReceived:   likes,
			EngagementScore: engagementScore(posts, likes, followers),
			Online:          user.IsOnline(s.now()),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// engagementScore weights likes received and followers over raw post count
// and caps the result at 100.
func engagementScore(posts, likesReceived, followers int64) int64 {
	score := (2*posts + 3*likesReceived + 5*followers) / 2
	if score > maxEngagementScore {
		return maxEngagementScore
	}
	return score
}

// FeaturedCreators returns verified users ordered by follower count, post
// count as tiebreak.
func (s *UserService) FeaturedCreators(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 || limit > featuredCreatorsMax {
		limit = featuredCreatorsMax
	}
	return s.userRepo.FeaturedCreators(ctx, limit)
}
