package tables

import "time"

type User struct {
	tableName          struct{}   `bun:"table:users,alias:u"`
	ID                 int64      `bun:"id,pk,autoincrement" json:"id"`
	FirstName          string     `bun:"first_name,notnull" json:"first_name"`
	LastName           string     `bun:"last_name,notnull" json:"last_name"`
	MiddleName         string     `bun:"middle_name" json:"middle_name,omitempty"`
	DateOfBirth        time.Time  `bun:"date_of_birth,notnull" json:"date_of_birth"`
	Phone              string     `bun:"phone,notnull" json:"phone"`
	Email              string     `bun:"email,unique,notnull" json:"email"`
	GDPRConsent        bool       `bun:"gdpr_consent,notnull" json:"gdpr_consent"`
	PasswordHash       string     `bun:"password_hash,notnull" json:"-"`
	RefreshToken       string     `bun:"refresh_token" json:"-"`
	RefreshTokenExpiry *time.Time `bun:"refresh_token_expiry,nullzero" json:"-"`
	CreatedAt          time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// FullName is the display name used in auth responses and emails.
func (u *User) FullName() string {
	if u.MiddleName != "" {
		return u.FirstName + " " + u.MiddleName + " " + u.LastName
	}
	return u.FirstName + " " + u.LastName
}
