package user

import "time"

type User struct {
	ID          string
	Username    string
	Email       string
	IsSuperuser bool
	IsEmployee  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
