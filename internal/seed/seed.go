package seed

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Ladynads/creaverse/internal/models"
	"github.com/Ladynads/creaverse/internal/observability"
)

// Options configure the seeder.
type Options struct {
	NumUsers int
	NumPosts int
	Clean    bool
}

// Seeder populates the database with a connected demo community: an invite
// chain from a handful of founders, a follow graph, posts with extracted
// keywords, and enough likes, comments and messages to make the feed and
// inbox interesting.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
	log     *slog.Logger
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{
		db:      db,
		factory: NewFactory(db),
		log:     observability.L().With("component", "seed"),
	}
}

// ClearAll wipes every seeded table. Delete order follows the foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []interface{}{
		&models.UserInteraction{},
		&models.Like{},
		&models.Comment{},
		&models.Message{},
		&models.InviteCode{},
		&models.Follow{},
		&models.Post{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	s.log.Info("database cleared")
	return nil
}

// Run seeds the full community.
func (s *Seeder) Run(opts Options) error {
	if opts.NumUsers < 2 {
		opts.NumUsers = 2
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = opts.NumUsers * 4
	}
	if opts.Clean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.seedInviteChain(opts.NumUsers)
	if err != nil {
		return err
	}
	posts, err := s.seedPosts(users, opts.NumPosts)
	if err != nil {
		return err
	}
	if err := s.seedSocialGraph(users, posts); err != nil {
		return err
	}

	s.log.Info("seed complete", "users", len(users), "posts", len(posts))
	return nil
}

// seedInviteChain creates the users. The first few are founders with no
// invite; everyone after them joins on a code issued by an earlier member,
// so the invite ledger reflects how the community actually grows.
func (s *Seeder) seedInviteChain(n int) ([]*models.User, error) {
	founders := 3
	if n < founders {
		founders = n
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("creating user %d: %w", i, err)
		}
		if i >= founders {
			inviter := users[s.factory.rng.Intn(len(users))]
			if _, err := s.factory.CreateInvite(inviter, user); err != nil {
				return nil, fmt.Errorf("creating invite for user %d: %w", i, err)
			}
		}
		users = append(users, user)
	}

	// A few issued but unredeemed codes.
	for i := 0; i < founders; i++ {
		if _, err := s.factory.CreateInvite(users[i], nil); err != nil {
			return nil, err
		}
	}
	return users, nil
}

func (s *Seeder) seedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		post, err := s.factory.CreatePost(author, 30)
		if err != nil {
			return nil, fmt.Errorf("creating post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Seeder) seedSocialGraph(users []*models.User, posts []*models.Post) error {
	rng := s.factory.rng

	for _, user := range users {
		// Each user follows a handful of others.
		for i := 0; i < 3; i++ {
			other := users[rng.Intn(len(users))]
			if err := s.factory.CreateFollow(user, other); err != nil {
				return err
			}
		}
		// And engages with a slice of the published posts.
		for i := 0; i < 5 && len(posts) > 0; i++ {
			post := posts[rng.Intn(len(posts))]
			if post.IsDraft || post.UserID == user.ID {
				continue
			}
			if err := s.factory.CreateLike(user, post); err != nil {
				return err
			}
			if rng.Intn(3) == 0 {
				if _, err := s.factory.CreateComment(user, post); err != nil {
					return err
				}
			}
		}
	}

	// A few message threads between random pairs.
	for i := 0; i < len(users); i++ {
		a := users[rng.Intn(len(users))]
		b := users[rng.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		for j := 0; j < 1+rng.Intn(4); j++ {
			sender, receiver := a, b
			if j%2 == 1 {
				sender, receiver = b, a
			}
			if _, err := s.factory.CreateMessage(sender, receiver); err != nil {
				return err
			}
		}
	}
	return nil
}
