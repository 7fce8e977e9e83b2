package db_models

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	BaseModel
	Name            string
	// unique among live rows only, so a deleted account's email can be
	// registered again
	Email           string `gorm:"uniqueIndex:idx_users_live_email,where:deleted_at IS NULL"`
	PasswordHash    string
	Role            string `gorm:"default:member"`
	EmailVerifiedAt *int64

	Posts           []Post
	Comments        []Comment
	TherapyMessages []TherapyMessage
	TherapyEntries  []TherapyEntry
}

func (u *User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
