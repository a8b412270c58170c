package models

// Comment is a single discussion entry under an event. A top-level comment has
// an empty ParentCommentID; a reply points at a top-level comment. Only one
// nesting level exists and it is fixed at creation.
type Comment struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	EventID         string `bson:"eventId" json:"eventId"`
	UserID          string `bson:"userId" json:"userId"`
	Username        string `bson:"username" json:"username"`
	Text            string `bson:"text" json:"text"`
	CreatedAt       string `bson:"createdAt" json:"createdAt"` // RFC 3339
	ParentCommentID string `bson:"parentCommentId,omitempty" json:"parentCommentId,omitempty"`
}

type Category struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"`
}
