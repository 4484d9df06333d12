package repos_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/repos/testutil"
	"github.com/Bloodcipher/Amara/internal/types"
)

func randomPrefix(tb testing.TB) string {
	tb.Helper()
	buf := make([]byte, 7)
	for i := range buf {
		buf[i] = types.SKUAlphabet[rand.Intn(len(types.SKUAlphabet))]
	}
	return string(buf)
}

func TestSkuSequenceRepo_NextIsMonotonicPerPrefix(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	r := repos.NewSkuSequenceRepo(tx, testutil.Logger(t))
	ctx := context.Background()
	prefix := randomPrefix(t)

	for want := int64(0); want < 5; want++ {
		got, err := r.Next(ctx, prefix)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if got != want {
			t.Fatalf("expected %d, got %d", want, got)
		}
	}
}

func TestSkuSequenceRepo_PeekDoesNotConsume(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	r := repos.NewSkuSequenceRepo(tx, testutil.Logger(t))
	ctx := context.Background()
	prefix := randomPrefix(t)

	next, err := r.Peek(ctx, prefix)
	if err != nil {
		t.Fatalf("peek unseen prefix: %v", err)
	}
	if next != 0 {
		t.Fatalf("unseen prefix must peek 0, got %d", next)
	}

	if _, err := r.Next(ctx, prefix); err != nil {
		t.Fatalf("next: %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err = r.Peek(ctx, prefix)
		if err != nil {
			t.Fatalf("peek: %v", err)
		}
		if next != 1 {
			t.Fatalf("peek must stay at 1, got %d", next)
		}
	}
}

func TestSkuSequenceRepo_RejectsBadPrefix(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	r := repos.NewSkuSequenceRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	if _, err := r.Next(ctx, "ABC"); err == nil {
		t.Fatalf("expected error for short prefix")
	}
	if _, err := r.Next(ctx, "ABCDEFGH"); err == nil {
		t.Fatalf("expected error for long prefix")
	}
}

func TestSkuSequenceRepo_ConcurrentAllocationsAreDistinct(t *testing.T) {
	db := testutil.DB(t)
	r := repos.NewSkuSequenceRepo(db, testutil.Logger(t))
	ctx := context.Background()
	prefix := randomPrefix(t)
	t.Cleanup(func() {
		db.Exec(`DELETE FROM sku_sequence WHERE prefix = ?`, prefix)
	})

	const n = 20
	results := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := r.Next(ctx, prefix)
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			results[i] = v
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, v := range results {
		if seen[v] {
			t.Fatalf("duplicate allocation %d", v)
		}
		seen[v] = true
	}
}
