package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kondate-api/internal/domain"
)

func TestStore_CopiesOnReadAndWrite(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Read(ctx, "history")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	doc := []byte(`[1]`)
	require.NoError(t, s.Write(ctx, "history", doc))
	doc[1] = '9'

	got, err := s.Read(ctx, "history")
	require.NoError(t, err)
	if diff := cmp.Diff([]byte(`[1]`), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	got[1] = '7'
	again, _ := s.Read(ctx, "history")
	assert.Equal(t, []byte(`[1]`), again)
}

func TestStore_FailWrites(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	s.SetFailWrites(boom)

	assert.ErrorIs(t, s.Write(context.Background(), "config", []byte(`{}`)), boom)
	_, err := s.Read(context.Background(), "config")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_SetFailWritesWhileWriting(t *testing.T) {
	s := New()
	boom := errors.New("boom")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				err := s.Write(ctx, "ingredients", []byte(`[]`))
				if err != nil {
					assert.ErrorIs(t, err, boom)
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		if j%2 == 0 {
			s.SetFailWrites(boom)
		} else {
			s.SetFailWrites(nil)
		}
	}
	wg.Wait()

	s.SetFailWrites(nil)
	require.NoError(t, s.Write(ctx, "ingredients", []byte(`[1]`)))
}
