package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Bloodcipher/Amara/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email, role string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Name:     "Test " + role,
		Email:    email,
		Role:     role,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedAttributeSet creates one code per dimension and returns the selection
// map a product create expects. Codes spell the prefix FCMONLS.
func SeedAttributeSet(tb testing.TB, ctx context.Context, tx *gorm.DB) map[types.Dimension]uuid.UUID {
	tb.Helper()
	codes := map[types.Dimension]string{
		types.DimensionFaceValue: "F",
		types.DimensionCategory:  "C",
		types.DimensionMaterial:  "M",
		types.DimensionMotif:     "O",
		types.DimensionFinding:   "N",
		types.DimensionLocking:   "L",
		types.DimensionSize:      "S",
	}
	selections := make(map[types.Dimension]uuid.UUID, len(codes))
	for _, d := range types.Dimensions {
		row := &types.AttributeCode{
			ID:        uuid.New(),
			Dimension: d,
			Code:      codes[d],
			Name:      string(d) + " " + codes[d],
		}
		if err := tx.WithContext(ctx).Create(row).Error; err != nil {
			tb.Fatalf("seed attribute %s: %v", d, err)
		}
		selections[d] = row.ID
	}
	return selections
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, sku string, seq int64, selections map[types.Dimension]uuid.UUID) *types.Product {
	tb.Helper()
	p := &types.Product{
		ID:          uuid.New(),
		Name:        "Product " + sku,
		SKU:         sku,
		SequenceNum: seq,
		FaceValueID: selections[types.DimensionFaceValue],
		CategoryID:  selections[types.DimensionCategory],
		MaterialID:  selections[types.DimensionMaterial],
		MotifID:     selections[types.DimensionMotif],
		FindingID:   selections[types.DimensionFinding],
		LockingID:   selections[types.DimensionLocking],
		SizeID:      selections[types.DimensionSize],
		IsActive:    true,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedJobCard(tb testing.TB, ctx context.Context, tx *gorm.DB, productID uuid.UUID, number string, status types.JobCardStatus) *types.JobCard {
	tb.Helper()
	card := &types.JobCard{
		ID:            uuid.New(),
		ProductID:     productID,
		JobCardNumber: number,
		TargetQty:     10,
		Status:        status,
		Priority:      types.PriorityNormal,
	}
	if err := tx.WithContext(ctx).Create(card).Error; err != nil {
		tb.Fatalf("seed job card: %v", err)
	}
	return card
}
