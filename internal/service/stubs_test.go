package service

import (
	"context"

	"github.com/Ladynads/creaverse/internal/models"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint, uint) (*models.Post, error)
	getByIDsFn       func(context.Context, []uint) ([]*models.Post, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
	listByUserFn     func(context.Context, uint, bool, int) ([]*models.Post, error)
	listLikedByFn    func(context.Context, uint, int) ([]*models.Post, error)
	listCandidatesFn func(context.Context, int) ([]*models.Post, error)
	countByUserFn    func(context.Context, uint) (int64, error)
	likeFn           func(context.Context, uint, uint) error
	unlikeFn         func(context.Context, uint, uint) error
	isLikedFn        func(context.Context, uint, uint) (bool, error)
	likedPostIDsFn   func(context.Context, uint) ([]uint, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *postRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]*models.Post, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint, includeDrafts bool, limit int) ([]*models.Post, error) {
	return s.listByUserFn(ctx, userID, includeDrafts, limit)
}
func (s *postRepoStub) ListLikedBy(ctx context.Context, userID uint, limit int) ([]*models.Post, error) {
	return s.listLikedByFn(ctx, userID, limit)
}
func (s *postRepoStub) ListCandidates(ctx context.Context, limit int) ([]*models.Post, error) {
	return s.listCandidatesFn(ctx, limit)
}
func (s *postRepoStub) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return s.countByUserFn(ctx, userID)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) LikedPostIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.likedPostIDsFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn:        func(_ context.Context, _, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getByIDsFn:       func(_ context.Context, _ []uint) ([]*models.Post, error) { return nil, nil },
		updateFn:         func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:         func(_ context.Context, _ uint) error { return nil },
		listByUserFn:     func(_ context.Context, _ uint, _ bool, _ int) ([]*models.Post, error) { return nil, nil },
		listLikedByFn:    func(_ context.Context, _ uint, _ int) ([]*models.Post, error) { return nil, nil },
		listCandidatesFn: func(_ context.Context, _ int) ([]*models.Post, error) { return nil, nil },
		countByUserFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		likeFn:           func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:         func(_ context.Context, _, _ uint) error { return nil },
		isLikedFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		likedPostIDsFn:   func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn             func(context.Context, *models.Comment) error
	getByIDFn            func(context.Context, uint) (*models.Comment, error)
	updateFn             func(context.Context, *models.Comment) error
	deleteFn             func(context.Context, uint) error
	listByPostFn         func(context.Context, uint) ([]models.Comment, error)
	countByPostFn        func(context.Context, uint) (int64, error)
	postIDsCommentedByFn func(context.Context, uint) ([]uint, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) PostIDsCommentedBy(ctx context.Context, userID uint) ([]uint, error) {
	return s.postIDsCommentedByFn(ctx, userID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:            func(_ context.Context, _ uint) (*models.Comment, error) { return &models.Comment{}, nil },
		updateFn:             func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
		listByPostFn:         func(_ context.Context, _ uint) ([]models.Comment, error) { return nil, nil },
		countByPostFn:        func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		postIDsCommentedByFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn             func(context.Context, *models.User) error
	getByIDFn            func(context.Context, uint) (*models.User, error)
	getByUsernameFn      func(context.Context, string) (*models.User, error)
	updateFn             func(context.Context, *models.User) error
	deleteFn             func(context.Context, uint) error
	listFn               func(context.Context, int, int) ([]models.User, error)
	touchLastSeenFn      func(context.Context, uint) error
	followFn             func(context.Context, uint, uint) error
	unfollowFn           func(context.Context, uint, uint) error
	isFollowingFn        func(context.Context, uint, uint) (bool, error)
	followerCountFn      func(context.Context, uint) (int64, error)
	followingCountFn     func(context.Context, uint) (int64, error)
	featuredCreatorsFn   func(context.Context, int) ([]models.User, error)
	countLikesReceivedFn func(context.Context, uint) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) TouchLastSeen(ctx context.Context, id uint) error {
	return s.touchLastSeenFn(ctx, id)
}
func (s *userRepoStub) Follow(ctx context.Context, followerID, followeeID uint) error {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *userRepoStub) FollowerCount(ctx context.Context, userID uint) (int64, error) {
	return s.followerCountFn(ctx, userID)
}
func (s *userRepoStub) FollowingCount(ctx context.Context, userID uint) (int64, error) {
	return s.followingCountFn(ctx, userID)
}
func (s *userRepoStub) FeaturedCreators(ctx context.Context, limit int) ([]models.User, error) {
	return s.featuredCreatorsFn(ctx, limit)
}
func (s *userRepoStub) CountLikesReceived(ctx context.Context, userID uint) (int64, error) {
	return s.countLikesReceivedFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:             func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:            func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:      func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		updateFn:             func(_ context.Context, _ *models.User) error { return nil },
		deleteFn:             func(_ context.Context, _ uint) error { return nil },
		listFn:               func(_ context.Context, _, _ int) ([]models.User, error) { return nil, nil },
		touchLastSeenFn:      func(_ context.Context, _ uint) error { return nil },
		followFn:             func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:           func(_ context.Context, _, _ uint) error { return nil },
		isFollowingFn:        func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
		followerCountFn:      func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		followingCountFn:     func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		featuredCreatorsFn:   func(_ context.Context, _ int) ([]models.User, error) { return nil, nil },
		countLikesReceivedFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// inviteRepoStub is a stub for repository.InviteRepository.
type inviteRepoStub struct {
	createFn         func(context.Context, *models.InviteCode) error
	getByCodeFn      func(context.Context, string) (*models.InviteCode, error)
	listByCreatorFn  func(context.Context, uint) ([]models.InviteCode, error)
	countByCreatorFn func(context.Context, uint) (int64, error)
	markUsedFn       func(context.Context, string, uint) (bool, error)
}

func (s *inviteRepoStub) Create(ctx context.Context, invite *models.InviteCode) error {
	return s.createFn(ctx, invite)
}
func (s *inviteRepoStub) GetByCode(ctx context.Context, code string) (*models.InviteCode, error) {
	return s.getByCodeFn(ctx, code)
}
func (s *inviteRepoStub) ListByCreator(ctx context.Context, creatorID uint) ([]models.InviteCode, error) {
	return s.listByCreatorFn(ctx, creatorID)
}
func (s *inviteRepoStub) CountByCreator(ctx context.Context, creatorID uint) (int64, error) {
	return s.countByCreatorFn(ctx, creatorID)
}
func (s *inviteRepoStub) MarkUsed(ctx context.Context, code string, userID uint) (bool, error) {
	return s.markUsedFn(ctx, code, userID)
}

func noopInviteRepo() *inviteRepoStub {
	return &inviteRepoStub{
		createFn:         func(_ context.Context, _ *models.InviteCode) error { return nil },
		getByCodeFn:      func(_ context.Context, _ string) (*models.InviteCode, error) { return &models.InviteCode{}, nil },
		listByCreatorFn:  func(_ context.Context, _ uint) ([]models.InviteCode, error) { return nil, nil },
		countByCreatorFn: func(_ context.Context, _ uint) (int64, error) { return 0, nil },
		markUsedFn:       func(_ context.Context, _ string, _ uint) (bool, error) { return true, nil },
	}
}

// messageRepoStub is a stub for repository.MessageRepository.
type messageRepoStub struct {
	createFn         func(context.Context, *models.Message) error
	listBetweenFn    func(context.Context, uint, uint) ([]models.Message, error)
	listInvolvingFn  func(context.Context, uint) ([]models.Message, error)
	markThreadReadFn func(context.Context, uint, uint) error
	countUnreadFn    func(context.Context, uint) (int64, error)
}

func (s *messageRepoStub) Create(ctx context.Context, message *models.Message) error {
	return s.createFn(ctx, message)
}
func (s *messageRepoStub) ListBetween(ctx context.Context, userID, otherID uint) ([]models.Message, error) {
	return s.listBetweenFn(ctx, userID, otherID)
}
func (s *messageRepoStub) ListInvolving(ctx context.Context, userID uint) ([]models.Message, error) {
	return s.listInvolvingFn(ctx, userID)
}
func (s *messageRepoStub) MarkThreadRead(ctx context.Context, receiverID, senderID uint) error {
	return s.markThreadReadFn(ctx, receiverID, senderID)
}
func (s *messageRepoStub) CountUnread(ctx context.Context, userID uint) (int64, error) {
	return s.countUnreadFn(ctx, userID)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{
		createFn:         func(_ context.Context, _ *models.Message) error { return nil },
		listBetweenFn:    func(_ context.Context, _, _ uint) ([]models.Message, error) { return nil, nil },
		listInvolvingFn:  func(_ context.Context, _ uint) ([]models.Message, error) { return nil, nil },
		markThreadReadFn: func(_ context.Context, _, _ uint) error { return nil },
		countUnreadFn:    func(_ context.Context, _ uint) (int64, error) { return 0, nil },
	}
}

// interactionRepoStub is a stub for repository.InteractionRepository.
type interactionRepoStub struct {
	recordFn     func(context.Context, uint, models.InteractionTarget, models.InteractionKind, models.JSONMap) (*models.UserInteraction, error)
	existsFn     func(context.Context, uint, models.InteractionTarget, models.InteractionKind) (bool, error)
	removeFn     func(context.Context, uint, models.InteractionTarget, models.InteractionKind) error
	listByUserFn func(context.Context, uint, int) ([]models.UserInteraction, error)
}

func (s *interactionRepoStub) Record(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind, metadata models.JSONMap) (*models.UserInteraction, error) {
	return s.recordFn(ctx, userID, target, kind, metadata)
}
func (s *interactionRepoStub) Exists(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) (bool, error) {
	return s.existsFn(ctx, userID, target, kind)
}
func (s *interactionRepoStub) Remove(ctx context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind) error {
	return s.removeFn(ctx, userID, target, kind)
}
func (s *interactionRepoStub) ListByUser(ctx context.Context, userID uint, limit int) ([]models.UserInteraction, error) {
	return s.listByUserFn(ctx, userID, limit)
}

func noopInteractionRepo() *interactionRepoStub {
	return &interactionRepoStub{
		recordFn: func(_ context.Context, userID uint, target models.InteractionTarget, kind models.InteractionKind, metadata models.JSONMap) (*models.UserInteraction, error) {
			return &models.UserInteraction{UserID: userID, Kind: kind, Metadata: metadata}, nil
		},
		existsFn:     func(_ context.Context, _ uint, _ models.InteractionTarget, _ models.InteractionKind) (bool, error) { return false, nil },
		removeFn:     func(_ context.Context, _ uint, _ models.InteractionTarget, _ models.InteractionKind) error { return nil },
		listByUserFn: func(_ context.Context, _ uint, _ int) ([]models.UserInteraction, error) { return nil, nil },
	}
}
