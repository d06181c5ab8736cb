// Command feed builds and prints the ranked feed for a user. Development
// tool for inspecting ranking behavior against real data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/Ladynads/creaverse/internal/cache"
	"github.com/Ladynads/creaverse/internal/config"
	"github.com/Ladynads/creaverse/internal/database"
	"github.com/Ladynads/creaverse/internal/repository"
	"github.com/Ladynads/creaverse/internal/service"
)

func main() {
	userID := flag.Uint("user", 0, "User ID to build the feed for")
	limit := flag.Int("limit", 20, "Number of posts to print")
	flag.Parse()

	if *userID == 0 {
		log.Fatal("a -user ID is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cache.InitRedis(cfg.RedisURL)

	svc := service.NewFeedService(
		repository.NewPostRepository(db),
		repository.NewCommentRepository(db),
		service.FeedConfig{
			CandidateLimit: cfg.FeedCandidateLimit,
			WindowDays:     cfg.FeedWindowDays,
			LikeWeight:     cfg.FeedLikeWeight,
			CommentWeight:  cfg.FeedCommentWeight,
		},
	)

	feed, err := svc.BuildFeed(context.Background(), *userID)
	if err != nil {
		log.Fatalf("Feed build failed: %v", err)
	}

	for i, post := range feed {
		if i == *limit {
			break
		}
		content := post.Content
		if len(content) > 60 {
			content = content[:60] + "..."
		}
		fmt.Printf("%3d. [post %d by %s] likes=%d comments=%d keywords=%q\n      %s\n",
			i+1, post.ID, post.User.Username, post.LikesCount, post.CommentsCount, post.Keywords, content)
	}
}
