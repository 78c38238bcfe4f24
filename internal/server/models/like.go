package models

import "time"

// Like is a directed "liker likes likee" edge, unique per ordered pair.
type Like struct {
	LikerID   string
	LikeeID   string
	CreatedAt time.Time
}
