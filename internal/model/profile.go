package model

type GetMeRequest struct{}

type GetMeResponse struct {
	User    User    `json:"user"`
	Profile Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateProfileResponse struct{}

type GetLeaderboardRequest struct {
	Period string `json:"period"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	MyRank      uint64             `json:"my_rank,omitempty"`
}

type UploadAvatarRequest struct{}

type UploadAvatarResponse struct {
	URL string `json:"url"`
}

type GetBadgesRequest struct{}

type GetBadgesResponse struct {
	Badges []Badge `json:"badges"`
}
