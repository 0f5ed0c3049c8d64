package store

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/robalobadob/pushfold-trainer/internal/ranges"
	"github.com/robalobadob/pushfold-trainer/internal/trainer"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	gen, err := trainer.NewGenerator([]int{10}, []ranges.Position{ranges.Button}, trainer.SampleCombos, rand.NewSource(1))
	if err != nil {
		t.Fatalf("new generator: %v", err)
	}
	sess := trainer.NewSession(gen, 2)

	if _, err := st.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get before save: err = %v, want ErrNotFound", err)
	}
	if err := st.Save(ctx, sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := st.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != sess.ID || len(got.Scenarios) != 2 {
		t.Errorf("got %+v", got)
	}

	if err := st.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
	if err := st.Delete(ctx, "unknown"); err != nil {
		t.Errorf("delete unknown id: %v", err)
	}
}
