// Package service provides the application business logic exposed to the
// web layer: feed ranking, posting, invites, messaging, and profiles.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/Ladynads/creaverse/internal/keywords"
	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/observability"
	"github.com/Ladynads/creaverse/internal/repository"
)

// FeedConfig carries the ranking knobs. Zero values fall back to the
// defaults documented on each field.
type FeedConfig struct {
	// CandidateLimit bounds how many recent posts one ranking pass
	// considers. Default 500.
	CandidateLimit int
	// WindowDays is the recency threshold shared by the trending age
	// factor and the latest tier. Default 7.
	WindowDays int
	// LikeWeight and CommentWeight are the trending score weights.
	// Defaults 3 and 2.
	LikeWeight    int
	CommentWeight int
}

func (c FeedConfig) withDefaults() FeedConfig {
	if c.CandidateLimit <= 0 {
		c.CandidateLimit = 500
	}
	if c.WindowDays <= 0 {
		c.WindowDays = 7
	}
	if c.LikeWeight <= 0 {
		c.LikeWeight = 3
	}
	if c.CommentWeight <= 0 {
		c.CommentWeight = 2
	}
	return c
}

// FeedService blends keyword recommendations, personalization, trending and
// recency into one deduplicated post list.
type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	cfg         FeedConfig
	now         func() time.Time
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, commentRepo repository.CommentRepository, cfg FeedConfig) *FeedService {
	return &FeedService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		cfg:         cfg.withDefaults(),
		now:         time.Now,
	}
}

// BuildFeed ranks the candidate set for the viewer. Tiers are concatenated
// recommended, personalized, trending, latest, and deduplicated keeping the
// first occurrence, so a post's position is decided by the highest tier it
// appears in.
func (s *FeedService) BuildFeed(ctx context.Context, viewerID uint) ([]*models.Post, error) {
	start := s.now()
	defer func() {
		observability.FeedBuildDuration.Observe(time.Since(start).Seconds())
	}()

	candidates, err := s.postRepo.ListCandidates(ctx, s.cfg.CandidateLimit)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	interacted, err := s.interactedPostIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	interactedKeywords, err := s.interactedKeywords(ctx, interacted)
	if err != nil {
		return nil, err
	}

	now := s.now()
	tiers := [][]*models.Post{
		recommendedTier(candidates, viewerID, interactedKeywords),
		personalizedTier(candidates, interacted),
		trendingTier(candidates, now, s.cfg),
		latestTier(candidates, now, s.cfg.WindowDays),
	}

	return dedupeTiers(tiers), nil
}

// interactedPostIDs is the union of posts the viewer liked or commented on.
func (s *FeedService) interactedPostIDs(ctx context.Context, viewerID uint) (map[uint]struct{}, error) {
	liked, err := s.postRepo.LikedPostIDs(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	commented, err := s.commentRepo.PostIDsCommentedBy(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	ids := make(map[uint]struct{}, len(liked)+len(commented))
	for _, id := range liked {
		ids[id] = struct{}{}
	}
	for _, id := range commented {
		ids[id] = struct{}{}
	}
	return ids, nil
}

// interactedKeywords folds the keyword sets of the interacted posts into
// one lookup set. Interacted posts may be older than the candidate window,
// so they are fetched directly rather than from the candidate slice.
func (s *FeedService) interactedKeywords(ctx context.Context, interacted map[uint]struct{}) (map[string]struct{}, error) {
	if len(interacted) == 0 {
		return nil, nil
	}
	ids := make([]uint, 0, len(interacted))
	for id := range interacted {
		ids = append(ids, id)
	}
	posts, err := s.postRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lists := make([][]string, 0, len(posts))
	for _, p := range posts {
		lists = append(lists, p.KeywordList())
	}
	return keywords.Union(lists...), nil
}

// recommendedTier keeps candidates whose keywords overlap the viewer's
// interacted keywords, excluding the viewer's own posts. Candidate order
// (newest first) is preserved.
func recommendedTier(candidates []*models.Post, viewerID uint, interactedKeywords map[string]struct{}) []*models.Post {
	if len(interactedKeywords) == 0 {
		return nil
	}
	var out []*models.Post
	for _, p := range candidates {
		if p.UserID == viewerID {
			continue
		}
		if keywords.Overlaps(p.KeywordList(), interactedKeywords) {
			out = append(out, p)
		}
	}
	return out
}

// personalizedTier orders all candidates with viewer-interacted posts
// first, then by recency within each group.
func personalizedTier(candidates []*models.Post, interacted map[uint]struct{}) []*models.Post {
	out := make([]*models.Post, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		_, bi := interacted[out[i].ID]
		_, bj := interacted[out[j].ID]
		if bi != bj {
			return bi
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// trendingScore is the engagement score with a linear age term: posts lose
// a point per day past the window threshold and gain one per day inside it.
func trendingScore(p *models.Post, now time.Time, cfg FeedConfig) int {
	ageDays := int(now.Sub(p.CreatedAt).Hours() / 24)
	ageFactor := cfg.WindowDays - ageDays
	return cfg.LikeWeight*p.LikesCount + cfg.CommentWeight*p.CommentsCount + ageFactor
}

// trendingTier orders all candidates by descending trending score, ties by
// recency.
func trendingTier(candidates []*models.Post, now time.Time, cfg FeedConfig) []*models.Post {
	out := make([]*models.Post, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := trendingScore(out[i], now, cfg), trendingScore(out[j], now, cfg)
		if si != sj {
			return si > sj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// latestTier keeps candidates created within the window, newest first.
func latestTier(candidates []*models.Post, now time.Time, windowDays int) []*models.Post {
	cutoff := repository.RecentWindow(now, windowDays)
	var out []*models.Post
	for _, p := range candidates {
		if p.CreatedAt.After(cutoff) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var tierNames = [...]string{"recommended", "personalized", "trending", "latest"}

// dedupeTiers concatenates the tiers and keeps the first occurrence of
// every post identity.
func dedupeTiers(tiers [][]*models.Post) []*models.Post {
	seen := make(map[uint]struct{})
	var out []*models.Post
	for t, tier := range tiers {
		for _, p := range tier {
			if _, dup := seen[p.ID]; dup {
				continue
			}
			seen[p.ID] = struct{}{}
			out = append(out, p)
			observability.FeedPostsRanked.WithLabelValues(tierNames[t]).Inc()
		}
	}
	return out
}
