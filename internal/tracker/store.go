package tracker

import (
	"context"

	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

// repoStore adapts the repo layer to the merger's Store.
type repoStore struct {
	cards repos.JobCardRepo
	users repos.UserRepo
}

func NewRepoStore(cards repos.JobCardRepo, users repos.UserRepo) Store {
	return &repoStore{cards: cards, users: users}
}

func (s *repoStore) ReadJobCards(ctx context.Context) ([]*types.JobCardView, error) {
	return s.cards.List(ctx)
}

func (s *repoStore) ReadUsers(ctx context.Context) ([]*types.User, error) {
	return s.users.List(ctx)
}
