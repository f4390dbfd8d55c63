package annotation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tourcatalog/internal/domain/entity"
	"tourcatalog/internal/repository"
	"tourcatalog/internal/utils/identifier"
)

// SubmitInput represents the input parameters for submitting a pet policy.
type SubmitInput struct {
	ContentID string
	Allowed   bool
	SizeClass int
	MaxCount  int
	Notes     string
	Category  string
	AreaCode  string
}

// Service provides pet-policy management use cases. It normalizes incoming
// identifiers so the store is always keyed in canonical form.
type Service struct {
	Repo repository.PetPolicyRepository
}

// Submit stores or replaces the policy for a place.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*entity.PetPolicy, error) {
	id := identifier.Normalize(in.ContentID)
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidContentID
	}
	policy := &entity.PetPolicy{
		ContentID: id,
		Allowed:   in.Allowed,
		SizeClass: in.SizeClass,
		MaxCount:  in.MaxCount,
		Notes:     strings.TrimSpace(in.Notes),
		Category:  in.Category,
		AreaCode:  in.AreaCode,
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Upsert(ctx, policy); err != nil {
		return nil, fmt.Errorf("submit policy: %w", err)
	}
	return policy, nil
}

// Get retrieves the policy for a content ID.
func (s *Service) Get(ctx context.Context, contentID string) (*entity.PetPolicy, error) {
	id := identifier.Normalize(contentID)
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidContentID
	}
	policy, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get policy: %w", err)
	}
	if policy == nil {
		return nil, ErrPolicyNotFound
	}
	return policy, nil
}

// List retrieves policies matching the filter.
func (s *Service) List(ctx context.Context, filter repository.PetPolicyFilter) ([]*entity.PetPolicy, error) {
	policies, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	return policies, nil
}

// Remove deletes the policy for a content ID.
func (s *Service) Remove(ctx context.Context, contentID string) error {
	id := identifier.Normalize(contentID)
	if strings.TrimSpace(id) == "" {
		return ErrInvalidContentID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrPolicyNotFound
		}
		return fmt.Errorf("remove policy: %w", err)
	}
	return nil
}
