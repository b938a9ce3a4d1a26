package store_test

import (
	"context"
	"testing"

	"petpal/internal/adapters/storage/memory"
	"petpal/internal/store"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestCollection_RoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	col := store.NewCollection[item](memory.NewStore(), store.CollectionPets)

	in := []item{
		{ID: "3", Name: "c"},
		{ID: "1", Name: "a"},
		{ID: "2", Name: "b"},
	}
	if err := col.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := col.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d items, got %d", len(in), len(out))
	}
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("order not preserved at %d: got %+v want %+v", i, out[i], in[i])
		}
	}
}

func TestCollection_MissingReadsEmpty(t *testing.T) {
	col := store.NewCollection[item](memory.NewStore(), store.CollectionSchedules)

	out, err := col.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty, got %d items", len(out))
	}
}

func TestCollection_CorruptReadsEmpty(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	col := store.NewCollection[item](st, store.CollectionUsers)

	// Valor dañado en el medio de persistencia: no debe romper la lectura.
	if err := st.Write(ctx, store.CollectionUsers, []byte("{not json")); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := col.Load(ctx)
	if err != nil {
		t.Fatalf("expected fail-open load, got error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty on corrupt value, got %d items", len(out))
	}
}

func TestCollection_SaveNilWritesEmptyList(t *testing.T) {
	ctx := context.Background()
	st := memory.NewStore()
	col := store.NewCollection[item](st, store.CollectionHealthRecords)

	if err := col.Save(ctx, nil); err != nil {
		t.Fatalf("save nil: %v", err)
	}

	raw, err := st.Read(ctx, store.CollectionHealthRecords)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "[]" {
		t.Fatalf("expected empty json array, got %q", string(raw))
	}
}
