package response

import (
	"time"

	"business-buddy/internal/data/entity"
)

// UserResponse is a user record with the password hash stripped
type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	UserType    entity.UserType `json:"userType"`
	CompanyName string          `json:"companyName"`
	Phone       string          `json:"phone"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Count int            `json:"count"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		UserType:    user.UserType,
		CompanyName: user.CompanyName,
		Phone:       user.Phone,
		CreatedAt:   user.CreatedAt,
	}
}

func UsersToListResponse(users []*entity.User) UserListResponse {
	resp := UserListResponse{
		Users: make([]UserResponse, 0, len(users)),
		Count: len(users),
	}
	for _, user := range users {
		resp.Users = append(resp.Users, UserToResponse(user))
	}
	return resp
}
