package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Malformed ids are rejected before any query is issued, so the lookups
// report not-found instead of a database error. The nil db proves no
// query runs.
func TestFindById_MalformedIdIsNotFound(t *testing.T) {
	ctx := context.Background()

	user, err := (&userRepository{}).FindById(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, user)

	post, err := (&postRepository{}).FindById(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, post)

	entry, err := (&therapyRepository{}).FindEntryById(ctx, uuid.New(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, entry)
}
