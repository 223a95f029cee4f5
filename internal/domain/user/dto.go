package user

import "time"

type ListFilter struct {
	Page       int
	PageSize   int
	IsEmployee *bool
}

func (f *ListFilter) Normalize() {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.PageSize <= 0 {
		f.PageSize = 25
	}
	if f.PageSize > 200 {
		f.PageSize = 200
	}
}

type UserInfo struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	IsEmployee  bool      `json:"is_employee"`
	CreatedAt   time.Time `json:"created_at"`
}

func ToUserInfo(u User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
		IsEmployee:  u.IsEmployee,
		CreatedAt:   u.CreatedAt,
	}
}

type ListUsersResponse struct {
	Users      []UserInfo `json:"users"`
	TotalItems int64      `json:"total_items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
}
