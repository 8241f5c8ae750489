package models

import "time"

// Comment is a reply attached to a Review through ReviewID. There is no
// foreign key constraint: deleting a review leaves its comments in place.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ReviewID  uint      `json:"reviewId" gorm:"not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Comment) TableName() string {
	return "comments"
}

type CommentView struct {
	ID        uint      `json:"id"`
	ReviewID  uint      `json:"reviewId"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LegacyCommentView mirrors what the original listing endpoint returned,
// stored password included.
type LegacyCommentView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Comment) View() CommentView {
	return CommentView{
		ID:        c.ID,
		ReviewID:  c.ReviewID,
		Content:   c.Content,
		Author:    c.Author,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (c Comment) LegacyView() LegacyCommentView {
	return LegacyCommentView{
		ID:        c.ID,
		Content:   c.Content,
		Author:    c.Author,
		Password:  c.Password,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
