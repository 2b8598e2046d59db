package service

import (
	"context"
	"log/slog"

	"filmgraph/internal/model"
	"filmgraph/internal/repository"
)

// FriendshipService maintains the directed friendship graph. Edges are plain
// set membership: adds and removes are idempotent and there is no multi-step
// protocol behind them.
type FriendshipService struct {
	friendRepo repository.FriendshipRepository
	userRepo   repository.UserRepository
	log        *slog.Logger
}

func NewFriendshipService(
	friendRepo repository.FriendshipRepository,
	userRepo repository.UserRepository,
	log *slog.Logger,
) *FriendshipService {
	return &FriendshipService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
		log:        log,
	}
}

// AddFriend inserts the directed edge owner->friend. Self-friendship is a
// validation failure regardless of whether the id exists; re-adding an
// existing edge succeeds without effect.
func (s *FriendshipService) AddFriend(ctx context.Context, ownerID, friendID int64) error {
	if ownerID == friendID {
		return model.ErrSelfFriendship
	}

	if err := s.requireUsers(ctx, ownerID, friendID); err != nil {
		return err
	}

	if err := s.friendRepo.AddEdge(ctx, ownerID, friendID); err != nil {
		return err
	}

	s.log.Info("friend added", "owner_id", ownerID, "friend_id", friendID)
	return nil
}

// RemoveFriend deletes the edge owner->friend. Both ids must resolve;
// removing an edge that was never added succeeds silently.
func (s *FriendshipService) RemoveFriend(ctx context.Context, ownerID, friendID int64) error {
	if ownerID == friendID {
		return model.ErrSelfFriendship
	}

	if err := s.requireUsers(ctx, ownerID, friendID); err != nil {
		return err
	}

	if err := s.friendRepo.RemoveEdge(ctx, ownerID, friendID); err != nil {
		return err
	}

	s.log.Info("friend removed", "owner_id", ownerID, "friend_id", friendID)
	return nil
}

// Friends returns the users the owner has added, as full records in edge
// insertion order.
func (s *FriendshipService) Friends(ctx context.Context, ownerID int64) ([]model.User, error) {
	if err := s.requireUsers(ctx, ownerID); err != nil {
		return nil, err
	}

	friends, err := s.friendRepo.Friends(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []model.User{}
	}
	return friends, nil
}

// CommonFriends returns every user both sides have added as a friend target.
// The result is a set intersection, so the argument order does not matter.
func (s *FriendshipService) CommonFriends(ctx context.Context, ownerID, otherID int64) ([]model.User, error) {
	ids := []int64{ownerID}
	if otherID != ownerID {
		ids = append(ids, otherID)
	}
	if err := s.requireUsers(ctx, ids...); err != nil {
		return nil, err
	}

	common, err := s.friendRepo.CommonFriends(ctx, ownerID, otherID)
	if err != nil {
		return nil, err
	}
	if common == nil {
		common = []model.User{}
	}
	return common, nil
}

func (s *FriendshipService) requireUsers(ctx context.Context, ids ...int64) error {
	ok, err := s.userRepo.AllExist(ctx, ids...)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrUserNotFound
	}
	return nil
}
