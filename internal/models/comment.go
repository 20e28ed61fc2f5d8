package models

import (
	"time"
)

// Comment is a comment on an article
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeStatus is the like state of an article for the current user
type LikeStatus struct {
	Liked bool `json:"liked"`
	Count int  `json:"count"`
}

// ArticleReport is a user report against an article
type ArticleReport struct {
	ID           int64     `json:"id"`
	ArticleID    int64     `json:"article_id"`
	UserID       int64     `json:"user_id"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status,omitempty"`
	ArticleTitle string    `json:"article_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// MaxCommentLength is the maximum allowed characters in a comment body
const MaxCommentLength = 2000
