package model

type ApplyReferralCodeRequest struct {
	Code string `json:"code"`
}

type ApplyReferralCodeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type GetMyReferralsRequest struct{}

type GetMyReferralsResponse struct {
	Referrals   []Referral `json:"referrals"`
	TotalPoints uint64     `json:"total_points"`
}
