package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

type LookupService interface {
	List(ctx context.Context, dimension types.Dimension) ([]*types.AttributeCode, error)
	Create(ctx context.Context, dimension types.Dimension, code, name, description string) (*types.AttributeCode, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type lookupService struct {
	log        *logger.Logger
	attributes repos.AttributeRepo
}

func NewLookupService(baseLog *logger.Logger, attributes repos.AttributeRepo) LookupService {
	return &lookupService{
		log:        baseLog.With("service", "LookupService"),
		attributes: attributes,
	}
}

func (s *lookupService) List(ctx context.Context, dimension types.Dimension) ([]*types.AttributeCode, error) {
	if dimension != "" && !types.ValidDimension(dimension) {
		return nil, fmt.Errorf("unknown dimension %q", dimension)
	}
	return s.attributes.List(ctx, dimension)
}

func (s *lookupService) Create(ctx context.Context, dimension types.Dimension, code, name, description string) (*types.AttributeCode, error) {
	if !types.ValidDimension(dimension) {
		return nil, fmt.Errorf("unknown dimension %q", dimension)
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 1 || !strings.Contains(types.SKUAlphabet, code) {
		return nil, fmt.Errorf("code must be a single character from %s", types.SKUAlphabet)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("missing name")
	}

	created, err := s.attributes.Create(ctx, &types.AttributeCode{
		ID:          uuid.New(),
		Dimension:   dimension,
		Code:        code,
		Name:        name,
		Description: description,
	})
	if err != nil {
		if types.IsUniqueViolation(err) {
			return nil, fmt.Errorf("code %s already exists in %s", code, dimension)
		}
		return nil, err
	}
	s.log.Info("Attribute code created", "dimension", dimension, "code", code)
	return created, nil
}

func (s *lookupService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing attribute id")
	}
	if err := s.attributes.Delete(ctx, id); err != nil {
		// Codes stay immutable once referenced by a product.
		if types.IsForeignKeyViolation(err) {
			return fmt.Errorf("attribute code is referenced by products and cannot be deleted")
		}
		return err
	}
	return nil
}
