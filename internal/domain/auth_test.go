package domain

import (
	"context"
	"testing"

	"github.com/studyhive-lab/backend/internal/model"
	"github.com/studyhive-lab/backend/internal/repository"
	"github.com/studyhive-lab/backend/pkg/authenticator"
	"github.com/studyhive-lab/backend/pkg/errorx"
	"github.com/studyhive-lab/backend/pkg/testutil"
	"github.com/studyhive-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newAuthDomainForTest(ctx context.Context) *authDomain {
	authCfg := xcontext.Configs(ctx).Auth
	return NewAuthDomain(
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
		authenticator.NewTokenEngine[model.AccessToken](authCfg.TokenSecret, authCfg.AccessToken),
		authenticator.NewTokenEngine[model.RefreshToken](authCfg.TokenSecret, authCfg.RefreshToken),
	)
}

func Test_authDomain_RegisterAndLogin(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := newAuthDomainForTest(ctx)

	registerResp, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "carol",
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registerResp.AccessToken)
	require.NotEmpty(t, registerResp.RefreshToken)
	require.Equal(t, "carol", registerResp.User.Name)

	// The registration creates a profile with a referral code.
	profileRepo := repository.NewProfileRepository()
	profile, err := profileRepo.GetByUserID(ctx, registerResp.User.ID)
	require.NoError(t, err)
	require.Equal(t, 1, profile.Level)
	require.Len(t, profile.ReferralCode, 8)

	loginResp, err := authDomain.Login(ctx, &model.LoginRequest{
		Name:     "carol",
		Password: "hunter2",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)

	_, err = authDomain.Login(ctx, &model.LoginRequest{
		Name:     "carol",
		Password: "wrong",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}

func Test_authDomain_Register_duplicatedName(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	authDomain := newAuthDomainForTest(ctx)

	_, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     testutil.User1.Name,
		Password: "whatever",
	})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_authDomain_Refresh(t *testing.T) {
	ctx := testutil.MockContext()
	authDomain := newAuthDomainForTest(ctx)

	registerResp, err := authDomain.Register(ctx, &model.RegisterRequest{
		Name:     "dave",
		Password: "hunter2",
	})
	require.NoError(t, err)

	refreshResp, err := authDomain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: registerResp.RefreshToken,
	})
	require.NoError(t, err)
	require.NotEmpty(t, refreshResp.AccessToken)
	require.NotEmpty(t, refreshResp.RefreshToken)

	_, err = authDomain.Refresh(ctx, &model.RefreshTokenRequest{
		RefreshToken: "garbage",
	})
	require.Error(t, err)
}
