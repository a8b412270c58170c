package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ToeMom/GroupUp-Final/models"
)

func TestAddCommentStampsAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approved := f.seedApproved(t, "alice", nil)

	f.seedUser(t, "bob", 25, false, false)

	created, err := f.comments.Add(ctx, "bob", &models.Comment{
		EventID: approved.ID,
		Text:    "count me in",
		UserID:  "forged",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "bob", created.UserID)
	assert.Equal(t, "user bob", created.Username)
	assert.NotEmpty(t, created.CreatedAt)
}

func TestAddCommentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approved := f.seedApproved(t, "alice", nil)

	_, err := f.comments.Add(ctx, "", &models.Comment{EventID: approved.ID, Text: "hi"})
	assert.ErrorIs(t, err, models.ErrNotAuthenticated)

	_, err = f.comments.Add(ctx, "bob", &models.Comment{EventID: approved.ID})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = f.comments.Add(ctx, "bob", &models.Comment{Text: "hi"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestReplyNestingIsOneLevel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approved := f.seedApproved(t, "alice", nil)

	top, err := f.comments.Add(ctx, "bob", &models.Comment{EventID: approved.ID, Text: "top"})
	require.NoError(t, err)

	reply, err := f.comments.Add(ctx, "carol", &models.Comment{
		EventID:         approved.ID,
		Text:            "reply",
		ParentCommentID: top.ID,
	})
	require.NoError(t, err)

	_, err = f.comments.Add(ctx, "dave", &models.Comment{
		EventID:         approved.ID,
		Text:            "reply to a reply",
		ParentCommentID: reply.ID,
	})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = f.comments.Add(ctx, "dave", &models.Comment{
		EventID:         approved.ID,
		Text:            "orphan",
		ParentCommentID: "missing",
	})
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
}

func TestListTopLevelExcludesReplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approved := f.seedApproved(t, "alice", nil)

	top, err := f.comments.Add(ctx, "bob", &models.Comment{EventID: approved.ID, Text: "top"})
	require.NoError(t, err)
	reply, err := f.comments.Add(ctx, "carol", &models.Comment{
		EventID:         approved.ID,
		Text:            "reply",
		ParentCommentID: top.ID,
	})
	require.NoError(t, err)

	topLevel, err := f.comments.ListTopLevel(ctx, approved.ID)
	require.NoError(t, err)
	require.Len(t, topLevel, 1)
	assert.Equal(t, top.ID, topLevel[0].ID)

	replies, err := f.comments.ListReplies(ctx, top.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)
}

func TestDeleteCommentAuthorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approved := f.seedApproved(t, "alice", nil)

	comment, err := f.comments.Add(ctx, "bob", &models.Comment{EventID: approved.ID, Text: "hello"})
	require.NoError(t, err)

	// A bystander may not delete someone else's comment.
	err = f.comments.Delete(ctx, "carol", comment.ID)
	assert.ErrorIs(t, err, models.ErrNotAuthorized)

	// The event creator may.
	require.NoError(t, f.comments.Delete(ctx, "alice", comment.ID))

	// The author may delete their own.
	comment, err = f.comments.Add(ctx, "bob", &models.Comment{EventID: approved.ID, Text: "again"})
	require.NoError(t, err)
	require.NoError(t, f.comments.Delete(ctx, "bob", comment.ID))

	err = f.comments.Delete(ctx, "bob", comment.ID)
	assert.ErrorIs(t, err, models.ErrCommentNotFound)
}

func TestDeleteTopLevelLeavesReplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	approved := f.seedApproved(t, "alice", nil)

	top, err := f.comments.Add(ctx, "bob", &models.Comment{EventID: approved.ID, Text: "top"})
	require.NoError(t, err)
	reply, err := f.comments.Add(ctx, "carol", &models.Comment{
		EventID:         approved.ID,
		Text:            "reply",
		ParentCommentID: top.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.comments.Delete(ctx, "bob", top.ID))

	replies, err := f.comments.ListReplies(ctx, top.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)
}
