package memory

import (
	"context"

	"loveacts-service/internal/domain/entity"
	"loveacts-service/internal/domain/repository"
)

type coupleRepository struct {
	s *Store
}

func (r *coupleRepository) Link(ctx context.Context, couple *entity.Couple) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	initiator, ok := r.s.users[couple.User1ID]
	if !ok {
		return repository.ErrNotFound
	}
	respondent, ok := r.s.users[couple.User2ID]
	if !ok {
		return repository.ErrNotFound
	}
	if initiator.PartnerID != nil {
		return repository.ErrAlreadyLinked
	}
	if respondent.PartnerID != nil {
		return repository.ErrPartnerTaken
	}

	user1, user2 := couple.User1ID, couple.User2ID
	initiator.PartnerID = &user2
	respondent.PartnerID = &user1

	cp := *couple
	r.s.couples = append(r.s.couples, &cp)
	return nil
}
