package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

// SuffixLength is the fixed width of the base-36 sequence suffix.
const SuffixLength = 3

// EncodeSuffix renders a sequence integer as a zero-padded base-36 string,
// most significant digit first. 0 -> "000", 35 -> "00Z", 36 -> "010".
func EncodeSuffix(n int64) string {
	buf := [SuffixLength]byte{}
	quotient := n
	for i := SuffixLength - 1; i >= 0; i-- {
		buf[i] = types.SKUAlphabet[quotient%36]
		quotient /= 36
	}
	return string(buf[:])
}

type SKUPreview struct {
	Prefix       string   `json:"prefix"`
	Suffix       string   `json:"suffix"`
	FullSKU      string   `json:"full_sku"`
	NextSequence int64    `json:"next_sequence"`
	Codes        []string `json:"codes"`
}

type CreateProductInput struct {
	Name        string
	Description string
	Selections  map[types.Dimension]uuid.UUID
}

type SKUService interface {
	// CreateProduct composes the identifier, allocates a suffix and persists
	// the product. A failed insert after a successful allocation burns the
	// suffix; uniqueness wins over density.
	CreateProduct(ctx context.Context, input CreateProductInput) (*types.Product, error)
	// Preview composes the identifier a create call would produce without
	// consuming a sequence slot. Advisory only; it races with real
	// allocations.
	Preview(ctx context.Context, selections map[types.Dimension]uuid.UUID) (*SKUPreview, error)
}

type skuService struct {
	log        *logger.Logger
	attributes repos.AttributeRepo
	products   repos.ProductRepo
	sequences  repos.SequenceRepo
}

func NewSKUService(baseLog *logger.Logger, attributes repos.AttributeRepo, products repos.ProductRepo, sequences repos.SequenceRepo) SKUService {
	return &skuService{
		log:        baseLog.With("service", "SKUService"),
		attributes: attributes,
		products:   products,
		sequences:  sequences,
	}
}

// composePrefix resolves one attribute per dimension in prefix order.
func (s *skuService) composePrefix(ctx context.Context, selections map[types.Dimension]uuid.UUID) (string, []string, error) {
	var missing []types.Dimension
	ids := make([]uuid.UUID, 0, len(types.Dimensions))
	for _, d := range types.Dimensions {
		id, ok := selections[d]
		if !ok || id == uuid.Nil {
			missing = append(missing, d)
			continue
		}
		ids = append(ids, id)
	}
	if len(missing) > 0 {
		return "", nil, types.IncompleteSelectionError(missing)
	}

	rows, err := s.attributes.GetByIDs(ctx, ids)
	if err != nil {
		return "", nil, err
	}
	byID := make(map[uuid.UUID]*types.AttributeCode, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	prefix := ""
	codes := make([]string, 0, len(types.Dimensions))
	for _, d := range types.Dimensions {
		row := byID[selections[d]]
		if row == nil || row.Dimension != d {
			return "", nil, errors.Join(types.ErrNotFound, fmt.Errorf("no %s attribute with id %s", d, selections[d]))
		}
		prefix += row.Code
		codes = append(codes, row.Code)
	}
	return prefix, codes, nil
}

func (s *skuService) CreateProduct(ctx context.Context, input CreateProductInput) (*types.Product, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("missing product name")
	}
	prefix, _, err := s.composePrefix(ctx, input.Selections)
	if err != nil {
		return nil, err
	}

	seq, err := s.sequences.Next(ctx, prefix)
	if err != nil {
		return nil, err
	}
	sku := prefix + EncodeSuffix(seq)

	product := &types.Product{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		SKU:         sku,
		SequenceNum: seq,
		FaceValueID: input.Selections[types.DimensionFaceValue],
		CategoryID:  input.Selections[types.DimensionCategory],
		MaterialID:  input.Selections[types.DimensionMaterial],
		MotifID:     input.Selections[types.DimensionMotif],
		FindingID:   input.Selections[types.DimensionFinding],
		LockingID:   input.Selections[types.DimensionLocking],
		SizeID:      input.Selections[types.DimensionSize],
		IsActive:    true,
	}
	created, err := s.products.Create(ctx, product)
	if err != nil {
		if types.IsUniqueViolation(err) {
			// Another writer landed the same SKU first. The allocated
			// suffix stays burned; the caller decides whether to retry.
			s.log.Warn("SKU collided after allocation", "sku", sku, "error", err)
			return nil, types.AllocationConflictError(sku)
		}
		return nil, err
	}
	s.log.Info("Product created", "sku", created.SKU, "sequence", created.SequenceNum)
	return created, nil
}

func (s *skuService) Preview(ctx context.Context, selections map[types.Dimension]uuid.UUID) (*SKUPreview, error) {
	prefix, codes, err := s.composePrefix(ctx, selections)
	if err != nil {
		return nil, err
	}
	next, err := s.sequences.Peek(ctx, prefix)
	if err != nil {
		return nil, err
	}
	suffix := EncodeSuffix(next)
	return &SKUPreview{
		Prefix:       prefix,
		Suffix:       suffix,
		FullSKU:      prefix + suffix,
		NextSequence: next,
		Codes:        codes,
	}, nil
}
