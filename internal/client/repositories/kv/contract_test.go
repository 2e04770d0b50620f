package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract checks the behaviour every Repository must share.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) Repository) {
	t.Helper()

	t.Run("get missing returns nil nil", func(t *testing.T) {
		r := newRepo(t)
		v, err := r.Get(context.Background(), "absent")
		require.NoError(t, err)
		require.Nil(t, v)
	})

	t.Run("set many then get", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, map[string][]byte{
			"authToken": []byte("tok-1"),
			"user":      []byte(`{"id":1}`),
		}))

		tok, err := r.Get(ctx, "authToken")
		require.NoError(t, err)
		assert.Equal(t, []byte("tok-1"), tok)

		user, err := r.Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"id":1}`), user)
	})

	t.Run("set overwrites", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, map[string][]byte{"authToken": []byte("old")}))
		require.NoError(t, r.Set(ctx, map[string][]byte{"authToken": []byte("new")}))

		v, err := r.Get(ctx, "authToken")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), v)
	})

	t.Run("empty set is a no-op", func(t *testing.T) {
		r := newRepo(t)
		require.NoError(t, r.Set(context.Background(), nil))
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		r := newRepo(t)
		ctx := context.Background()

		require.NoError(t, r.Set(ctx, map[string][]byte{"authToken": []byte("t"), "user": []byte("u"), "other": []byte("o")}))
		require.NoError(t, r.Delete(ctx, "authToken", "user"))
		require.NoError(t, r.Delete(ctx, "authToken", "user"))

		for _, key := range []string{"authToken", "user"} {
			v, err := r.Get(ctx, key)
			require.NoError(t, err)
			assert.Nil(t, v, key)
		}
		other, err := r.Get(ctx, "other")
		require.NoError(t, err)
		assert.Equal(t, []byte("o"), other, "keys not named survive")
	})
}

// contractKeys lists every key the contract writes, for backends that need
// explicit cleanup.
var contractKeys = []string{"authToken", "user", "other"}
