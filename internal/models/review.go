package models

import (
	"time"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BookTitle  string    `json:"bookTitle" gorm:"not null"`
	Title      string    `json:"title" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	StarRating int       `json:"starRating" gorm:"not null"`
	Author     string    `json:"author" gorm:"not null"`
	Password   string    `json:"-" gorm:"not null"` // ownership credential, never serialized
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// ReviewSummary is the list projection: no content, no password.
type ReviewSummary struct {
	ID         uint      `json:"id"`
	BookTitle  string    `json:"bookTitle"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	StarRating int       `json:"starRating"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type ReviewDetail struct {
	ID         uint      `json:"id"`
	BookTitle  string    `json:"bookTitle"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	StarRating int       `json:"starRating"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (r Review) Summary() ReviewSummary {
	return ReviewSummary{
		ID:         r.ID,
		BookTitle:  r.BookTitle,
		Title:      r.Title,
		Author:     r.Author,
		StarRating: r.StarRating,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r Review) Detail() ReviewDetail {
	return ReviewDetail{
		ID:         r.ID,
		BookTitle:  r.BookTitle,
		Title:      r.Title,
		Content:    r.Content,
		Author:     r.Author,
		StarRating: r.StarRating,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
