package model

// StaleEvent tells subscribers a bucket of cached reads is out of date. It
// carries no payload beyond the key, consumers refetch from the source of
// truth.
type StaleEvent struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

const (
	NotesBucket         = "notes"
	TestsBucket         = "tests"
	CoursesBucket       = "courses"
	PurchasesBucket     = "purchases"
	EnrollmentsBucket   = "enrollments"
	ProfilesBucket      = "profiles"
	ReferralsBucket     = "referrals"
	NotificationsBucket = "notifications"
	LeaderboardBucket   = "leaderboard"
)
