package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct {
	Key string
	Val int
}

func TestSet(t *testing.T) {
	type args[T any] struct {
		key  string
		val  *T
		m    *MStorage
		opts []func(*SetOptions)
	}
	type testCase[T any] struct {
		name    string
		args    args[T]
		wantErr error
	}
	ms := NewMemStorage()
	tests := []testCase[target]{
		{
			name: "default",
			args: args[target]{
				key: "key1",
				val: &target{Key: "key1", Val: 1},
				m:   ms,
			},
		}, {
			name: "duplicate records",
			args: args[target]{
				key: "key1",
				val: &target{Key: "key1", Val: 2},
				m:   ms,
			},
			wantErr: ErrDuplicateKey,
		}, {
			name: "overwrite",
			args: args[target]{
				key:  "key1",
				val:  &target{Key: "key1", Val: 3},
				m:    ms,
				opts: []func(*SetOptions){WithOverwrite()},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set[target](t.Context(), tt.args.key, tt.args.val, tt.args.m, tt.args.opts...)
			if err != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("%s: Set() error = %+v, wantErr %+v", tt.name, err, tt.wantErr)
			}

			if tt.wantErr == nil {
				val, getErr := Get[target](t.Context(), tt.args.key, tt.args.m)
				if getErr != nil {
					t.Fatal(getErr)
				}
				if val.Key != tt.args.val.Key || val.Val != tt.args.val.Val {
					t.Errorf("%s: Set() Val = %+v, want %+v", tt.name, val, tt.args.val)
				}
			}
		})
	}
}

func TestGet_NotFound(t *testing.T) {
	_, err := Get[target](t.Context(), "missing", NewMemStorage())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdate_Concurrent(t *testing.T) {
	ms := NewMemStorage()
	require.NoError(t, Set[target](t.Context(), "k", &target{Key: "k"}, ms))

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			_ = Update[target](t.Context(), "k", ms, func(v *target) error {
				v.Val++
				return nil
			})
		}()
	}
	wg.Wait()

	val, err := Get[target](t.Context(), "k", ms)
	require.NoError(t, err)
	assert.Equal(t, workers, val.Val)
}

func TestUpdate_Errors(t *testing.T) {
	ms := NewMemStorage()
	err := Update[target](t.Context(), "missing", ms, func(*target) error { return nil })
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, Set[target](t.Context(), "k", &target{Key: "k", Val: 1}, ms))
	fnErr := errors.New("boom")
	err = Update[target](t.Context(), "k", ms, func(v *target) error {
		v.Val = 100
		return fnErr
	})
	require.ErrorIs(t, err, fnErr)

	val, err := Get[target](t.Context(), "k", ms)
	require.NoError(t, err)
	assert.Equal(t, 1, val.Val)
}

func TestFilterAll(t *testing.T) {
	ms := NewMemStorage()
	for i := range 10 {
		key := string(rune('a' + i))
		require.NoError(t, Set[target](t.Context(), key, &target{Key: key, Val: i}, ms))
	}

	even, err := FilterAll[target](t.Context(), ms, 0, func(v target) bool { return v.Val%2 == 0 })
	require.NoError(t, err)
	assert.Len(t, even, 5)

	limited, err := GetAll[target](t.Context(), ms, 3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)

	all, err := GetAll[target](t.Context(), ms, 0)
	require.NoError(t, err)
	assert.Len(t, all, 10)
	assert.Equal(t, 10, ms.Len())
}
