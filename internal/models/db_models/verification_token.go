package db_models

// VerificationToken is ephemeral signup state: created with the account,
// deleted on successful verification or on an expired lookup.
type VerificationToken struct {
	Token     string `gorm:"primaryKey"`
	Email     string `gorm:"not null;index"`
	ExpiresAt int64  `gorm:"not null"`
	CreatedAt int64  `gorm:"autoCreateTime"`
}
