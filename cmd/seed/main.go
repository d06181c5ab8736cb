// Command main runs the database seeder for Creaverse.
package main

import (
	"flag"
	"log"

	"github.com/Ladynads/creaverse/internal/cache"
	"github.com/Ladynads/creaverse/internal/config"
	"github.com/Ladynads/creaverse/internal/database"
	"github.com/Ladynads/creaverse/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	clean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Printf("Seeding: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *clean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	cache.InitRedis(cfg.RedisURL)

	s := seed.NewSeeder(database.DB)
	if err := s.Run(seed.Options{
		NumUsers: *numUsers,
		NumPosts: *numPosts,
		Clean:    *clean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
