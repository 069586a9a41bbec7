package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/paintconnect/storefront/internal/models"
	"github.com/paintconnect/storefront/internal/repo"
)

type MessageService struct {
	Repo *repo.GormRepo
}

func (s *MessageService) CreateContactMessage(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Phone) == "" || strings.TrimSpace(msg.Message) == "" {
		return nil, fmt.Errorf("name, phone and message are required: %w", ErrValidation)
	}
	return s.Repo.CreateContactMessage(ctx, msg)
}

func (s *MessageService) ListContactMessages(ctx context.Context, offset, limit int) ([]models.ContactMessage, error) {
	return s.Repo.ListContactMessages(ctx, offset, limit)
}

func (s *MessageService) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.MarkContactMessageRead(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return err
}

func (s *MessageService) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.DeleteContactMessage(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("message %s: %w", id, ErrNotFound)
	}
	return err
}
