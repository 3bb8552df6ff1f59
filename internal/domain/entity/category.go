package entity

import "time"

// Category agrupa productos de un usuario. (title, user_id) es único.
type Category struct {
	ID        int64
	Title     string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
