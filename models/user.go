package models

// User is a profile document keyed by the identity subject. Admin and
// Moderator are authorization flags; neither is settable through the normal
// profile paths.
type User struct {
	ID                   string  `bson:"_id,omitempty" json:"id"`
	Name                 string  `bson:"name,omitempty" json:"name,omitempty"`
	Age                  int     `bson:"age,omitempty" json:"age,omitempty"`
	Email                string  `bson:"email,omitempty" json:"email,omitempty"`
	ProfileImage         string  `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	NotificationsEnabled bool    `bson:"notificationsEnabled" json:"notificationsEnabled"`
	Rating               float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Admin                bool    `bson:"admin" json:"admin"`
	Moderator            bool    `bson:"moderator" json:"moderator"`
	LastProfileUpdate    string  `bson:"lastProfileUpdate,omitempty" json:"lastProfileUpdate,omitempty"` // RFC 3339
}

// UserPatch carries profile fields an owner may change. Role flags are
// deliberately absent.
type UserPatch struct {
	Name                 *string  `json:"name,omitempty"`
	Age                  *int     `json:"age,omitempty"`
	Email                *string  `json:"email,omitempty"`
	ProfileImage         *string  `json:"profileImage,omitempty"`
	NotificationsEnabled *bool    `json:"notificationsEnabled,omitempty"`
	Rating               *float64 `json:"rating,omitempty"`
}
