package entities

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a post on a startup's discussion. ParentID makes it a reply.
type Comment struct {
	ID        uuid.UUID  `json:"id"`
	StartupID uuid.UUID  `json:"startupId"`
	UserID    uuid.UUID  `json:"userId"`
	ParentID  *uuid.UUID `json:"parentId,omitempty"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CommentThread is a comment with its author and direct replies
type CommentThread struct {
	Comment
	Author  *UserSummary     `json:"author,omitempty"`
	Replies []*CommentThread `json:"replies"`
}

// PostCommentInput represents input for a comment or reply
type PostCommentInput struct {
	Content string `json:"content"`
}
