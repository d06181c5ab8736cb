// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ladynads/creaverse/internal/keywords"
	"github.com/Ladynads/creaverse/internal/models"
)

// DefaultPassword is the password every seeded account gets, so demo
// logins are predictable.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rng  *rand.Rand
	hash string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	// One shared hash: bcrypt per user makes large seeds crawl.
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &Factory{
		db:   db,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		hash: string(hash),
	}
}

// CreateUser persists a user with realistic profile data.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	username := strings.ToLower(gofakeit.Username())
	user := &models.User{
		Username: fmt.Sprintf("%s%d", username, f.rng.Intn(10000)),
		Email:    fmt.Sprintf("%s%d@%s", username, f.rng.Intn(10000), gofakeit.DomainName()),
		Password: f.hash,
		Bio:      gofakeit.Sentence(8),
		Avatar:   fmt.Sprintf("https://picsum.photos/seed/%s/200/200", gofakeit.UUID()),
		Verified: f.rng.Intn(5) == 0,
		LastSeen: time.Now().Add(-time.Duration(f.rng.Intn(72)) * time.Hour),
		SocialLinks: models.JSONMap{
			"website": gofakeit.URL(),
		},
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post for the user with keywords extracted the same
// way the application does it, spread over the last maxDays.
func (f *Factory) CreatePost(user *models.User, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 30
	}
	content := gofakeit.Paragraph(1, 3, 8, " ")
	post := &models.Post{
		UserID:  user.ID,
		Content: content,
		IsDraft: f.rng.Intn(10) == 0,
		CreatedAt: time.Now().
			Add(-time.Duration(f.rng.Intn(maxDays*24)) * time.Hour).
			Add(-time.Duration(f.rng.Intn(60)) * time.Minute),
	}
	post.SetKeywords(keywords.Extract(content))
	if f.rng.Intn(3) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
	}
	for _, override := range overrides {
		override(post)
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment persists a comment and its ledger marker.
func (f *Factory) CreateComment(user *models.User, post *models.Post) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(10),
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	if err := f.recordInteraction(user.ID, models.PostTarget(post.ID), models.InteractionComment); err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like and its ledger marker. Duplicate likes are
// skipped.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := models.Like{UserID: user.ID, PostID: post.ID, Reaction: models.ReactionLike}
	res := f.db.Where(models.Like{UserID: user.ID, PostID: post.ID}).FirstOrCreate(&like)
	if res.Error != nil {
		return res.Error
	}
	return f.recordInteraction(user.ID, models.PostTarget(post.ID), models.InteractionLike)
}

// CreateFollow persists a follow edge and its ledger marker.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	if follower.ID == followee.ID {
		return nil
	}
	edge := models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
	res := f.db.Where(models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}).FirstOrCreate(&edge)
	if res.Error != nil {
		return res.Error
	}
	return f.recordInteraction(follower.ID, models.UserTarget(followee.ID), models.InteractionFollow)
}

// CreateMessage persists a direct message, randomly read or unread.
func (f *Factory) CreateMessage(sender, receiver *models.User) (*models.Message, error) {
	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    gofakeit.Sentence(12),
	}
	if f.rng.Intn(2) == 0 {
		now := time.Now()
		message.IsRead = true
		message.ReadAt = &now
	}
	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

// CreateInvite persists an invite code for the creator, optionally already
// redeemed by usedBy.
func (f *Factory) CreateInvite(creator *models.User, usedBy *models.User) (*models.InviteCode, error) {
	raw := strings.ToUpper(strings.ReplaceAll(gofakeit.UUID(), "-", ""))
	invite := &models.InviteCode{
		Code:        raw[:10],
		CreatedByID: creator.ID,
	}
	if usedBy != nil {
		now := time.Now()
		invite.UsedByID = &usedBy.ID
		invite.UsedAt = &now
	}
	if err := f.db.Create(invite).Error; err != nil {
		return nil, err
	}
	return invite, nil
}

func (f *Factory) recordInteraction(userID uint, target models.InteractionTarget, kind models.InteractionKind) error {
	row := models.UserInteraction{
		UserID:       userID,
		PostID:       target.PostID,
		TargetUserID: target.TargetUserID,
		Kind:         kind,
	}
	cond := models.UserInteraction{
		UserID:       userID,
		PostID:       target.PostID,
		TargetUserID: target.TargetUserID,
		Kind:         kind,
	}
	return f.db.Where(cond).FirstOrCreate(&row).Error
}
