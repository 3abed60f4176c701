package domain

import (
	"context"
	"errors"

	"github.com/studyhive-lab/backend/internal/entity"
	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetUsers(context.Context, *model.GetUsersRequest) (*model.GetUsersResponse, error)
	AssignRole(context.Context, *model.AssignRoleRequest) (*model.AssignRoleResponse, error)
}

type userDomain struct {
	userRepo repository.UserRepository
}

func NewUserDomain(userRepo repository.UserRepository) *userDomain {
	return &userDomain{userRepo: userRepo}
}

func (d *userDomain) GetUsers(
	ctx context.Context, req *model.GetUsersRequest,
) (*model.GetUsersResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit %d", req.Limit)
	}

	users, err := d.userRepo.GetAll(ctx, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.userRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count users: %v", err)
		return nil, errorx.Unknown
	}

	clientUsers := []model.User{}
	for _, u := range users {
		clientUsers = append(clientUsers, model.ConvertUser(&u))
	}

	return &model.GetUsersResponse{Users: clientUsers, Total: total}, nil
}

func (d *userDomain) AssignRole(
	ctx context.Context, req *model.AssignRoleRequest,
) (*model.AssignRoleResponse, error) {
	validRoles := []string{entity.SuperAdminRole, entity.AdminRole, entity.UserRole}
	if !slices.Contains(validRoles, req.Role) {
		return nil, errorx.New(errorx.BadRequest, "Invalid role %s", req.Role)
	}

	if req.UserID == xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.BadRequest, "Cannot change your own role")
	}

	target, err := d.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if target.Role == entity.SuperAdminRole {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot change role of a super admin")
	}

	if err := d.userRepo.UpdateRole(ctx, req.UserID, req.Role); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update role: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AssignRoleResponse{}, nil
}
