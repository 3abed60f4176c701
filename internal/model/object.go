package model

type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type RefreshToken struct {
	UserID string `json:"user_id"`
	Family string `json:"family"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url"`
	CreatedAt string `json:"created_at"`
}

type Profile struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	XP               uint64 `json:"xp"`
	Level            int    `json:"level"`
	RewardPoints     uint64 `json:"reward_points"`
	WeeklyXP         uint64 `json:"weekly_xp"`
	MonthlyXP        uint64 `json:"monthly_xp"`
	Streak           int    `json:"streak"`
	LastActivityDate string `json:"last_activity_date"`
	ReferralCode     string `json:"referral_code"`
	ReferredBy       string `json:"referred_by"`
}

type Course struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
	IsActive      bool    `json:"is_active"`
	CreatedBy     string  `json:"created_by"`
	CreatedAt     string  `json:"created_at"`
}

type Lesson struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index"`
}

type Note struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content,omitempty"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	FileURL   string  `json:"file_url,omitempty"`
	IsActive  bool    `json:"is_active"`
	HasAccess bool    `json:"has_access"`
	CreatedAt string  `json:"created_at"`
}

type Question struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer,omitempty"`
}

type Test struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	RewardPoints uint64     `json:"reward_points"`
	Questions    []Question `json:"questions,omitempty"`
	IsActive     bool       `json:"is_active"`
	HasAccess    bool       `json:"has_access"`
	CreatedAt    string     `json:"created_at"`
}

type Purchase struct {
	ID        string  `json:"id"`
	NoteID    string  `json:"note_id,omitempty"`
	TestID    string  `json:"test_id,omitempty"`
	OrderID   string  `json:"order_id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

type CategoryPurchase struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	ContentType string  `json:"content_type"`
	OrderID     string  `json:"order_id"`
	PaymentID   string  `json:"payment_id"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

type Enrollment struct {
	UserID      string `json:"user_id"`
	CourseID    string `json:"course_id"`
	Course      Course `json:"course"`
	Progress    int    `json:"progress"`
	CompletedAt string `json:"completed_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type TestResult struct {
	ID             string `json:"id"`
	TestID         string `json:"test_id"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	XPEarned       uint64 `json:"xp_earned"`
	CreatedAt      string `json:"created_at"`
}

type Badge struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	XPRequirement uint64 `json:"xp_requirement"`
	Unlocked      bool   `json:"unlocked"`
	UnlockedAt    string `json:"unlocked_at,omitempty"`
}

type Referral struct {
	ID           string `json:"id"`
	ReferredID   string `json:"referred_id"`
	ReferredName string `json:"referred_name"`
	Status       string `json:"status"`
	PointsEarned uint64 `json:"points_earned"`
	CreatedAt    string `json:"created_at"`
}

type Notification struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
}

type Category struct {
	Name        string `json:"name"`
	CourseCount int64  `json:"course_count"`
}

type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	XP       uint64 `json:"xp"`
	Level    int    `json:"level"`
	Rank     uint64 `json:"rank"`
}
