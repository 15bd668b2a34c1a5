package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"ops-backend/models"
	"ops-backend/repository"
)

type Sealer interface {
	Seal(plain string) (string, error)
	Open(sealed string) (string, error)
}

type SubscriptionStore interface {
	List(ctx context.Context, filter bson.M, opts repository.ListOptions) ([]models.Subscription, error)
	FindByID(ctx context.Context, id string) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	Update(ctx context.Context, id string, set bson.M) error
	Delete(ctx context.Context, id string) error
}

// SubscriptionService stores account passwords sealed; only Credentials opens them.
type SubscriptionService struct {
	store SubscriptionStore
	vault Sealer
}

func NewSubscriptionService(store SubscriptionStore, vault Sealer) *SubscriptionService {
	return &SubscriptionService{store: store, vault: vault}
}

func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	subs, err := s.store.List(ctx, bson.M{}, repository.ListOptions{SortBy: "platform"})
	if err != nil {
		return nil, err
	}
	for i := range subs {
		subs[i].HasPassword = subs[i].SealedPassword != ""
	}
	return subs, nil
}

func (s *SubscriptionService) Create(ctx context.Context, payload models.SubscriptionCreatePayload) (*models.Subscription, error) {
	sealed, err := s.vault.Seal(payload.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to seal subscription password: %w", err)
	}
	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	sub := &models.Subscription{
		Platform:       payload.Platform,
		Username:       payload.Username,
		SealedPassword: sealed,
		HasPassword:    sealed != "",
		IsActive:       active,
		RenewalDate:    payload.RenewalDate,
		Notes:          payload.Notes,
	}
	if err := s.store.Create(ctx, sub); err != nil {
		return nil, storeErr("subscription", err)
	}
	return sub, nil
}

func (s *SubscriptionService) Update(ctx context.Context, id string, payload models.SubscriptionUpdatePayload) (*models.Subscription, error) {
	set := payload.Changes()
	if payload.Password != nil {
		sealed, err := s.vault.Seal(*payload.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to seal subscription password: %w", err)
		}
		set["sealed_password"] = sealed
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("no fields to update: %w", ErrValidation)
	}

	if err := s.store.Update(ctx, id, set); err != nil {
		return nil, storeErr("subscription", err)
	}
	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("subscription", err)
	}
	sub.HasPassword = sub.SealedPassword != ""
	return sub, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id string) error {
	return storeErr("subscription", s.store.Delete(ctx, id))
}

func (s *SubscriptionService) Credentials(ctx context.Context, id string) (*models.SubscriptionCredentials, error) {
	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr("subscription", err)
	}
	plain, err := s.vault.Open(sub.SealedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to open subscription password: %w", err)
	}
	return &models.SubscriptionCredentials{Platform: sub.Platform, Username: sub.Username, Password: plain}, nil
}
