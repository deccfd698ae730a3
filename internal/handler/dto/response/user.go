package response

import (
	"time"

	"agendapay/internal/domain/user"

	"github.com/jinzhu/copier"
	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUser(u *user.User) *UserResponse {
	var resp UserResponse
	// copier maps the entity's getter methods onto same-named fields.
	_ = copier.Copy(&resp, u)
	return &resp
}

func FromUsers(users []*user.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
