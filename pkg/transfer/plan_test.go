package transfer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePlan_EmptyRequestReturnsAllInStoreOrder(t *testing.T) {
	store := newMemStore()
	store.add("users")
	store.add("posts")
	store.add("comments")

	plan, err := ResolvePlan(context.Background(), store, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"users", "posts", "comments"}, plan)
}

func TestResolvePlan_IntersectionPreservesRequestedOrder(t *testing.T) {
	store := newMemStore()
	store.add("users")
	store.add("posts")
	store.add("comments")

	plan, err := ResolvePlan(context.Background(), store, []string{"comments", "archive", "users"})
	require.NoError(t, err)
	assert.Equal(t, []string{"comments", "users"}, plan, "unknown names are dropped, requested order kept")
}

func TestResolvePlan_NoRequestedNameMatches(t *testing.T) {
	store := newMemStore()
	store.add("users")

	plan, err := ResolvePlan(context.Background(), store, []string{"archive", "audit"})
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestResolvePlan_ListFailure(t *testing.T) {
	store := newMemStore()
	store.listErr = errors.New("network down")

	_, err := ResolvePlan(context.Background(), store, nil)
	var enumErr *EnumerationError
	require.ErrorAs(t, err, &enumErr)
	assert.ErrorIs(t, err, store.listErr)
}
