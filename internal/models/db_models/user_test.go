package db_models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Deletions are soft, so a plain unique constraint on email would keep a
// removed account's address reserved forever and break re-signup. The
// uniqueness must be scoped to live rows.
func TestUserEmailUniqueOnlyAmongLiveRows(t *testing.T) {
	sch, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	found := false
	for _, idx := range sch.ParseIndexes() {
		for _, f := range idx.Fields {
			if f.Name != "Email" {
				continue
			}
			found = true
			assert.Equal(t, "UNIQUE", idx.Class)
			assert.Equal(t, "deleted_at IS NULL", idx.Where)
		}
	}
	require.True(t, found, "email must carry a unique index")
}

func TestUserIsVerified(t *testing.T) {
	var u User
	assert.False(t, u.IsVerified())

	at := int64(1700000000)
	u.EmailVerifiedAt = &at
	assert.True(t, u.IsVerified())
}
