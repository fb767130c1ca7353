package services

import (
	"context"

	"ansh-apparels/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.AdminUserView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.AdminUserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].AdminView())
	}
	return views, nil
}

func (s *UserService) SetRole(ctx context.Context, id, role string) (*models.AdminUserView, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, models.NewValidationError("Invalid role")
	}

	user, err := s.users.SetRole(ctx, id, role)
	if err != nil {
		return nil, err
	}
	view := user.AdminView()
	return &view, nil
}
