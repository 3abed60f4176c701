package model

type GetTestsRequest struct {
	Category string `json:"category"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type GetTestsResponse struct {
	Tests []Test `json:"tests"`
}

type GetTestRequest struct {
	ID string `json:"id"`
}

type GetTestResponse struct {
	Test Test `json:"test"`
}

type SubmitTestRequest struct {
	ID      string `json:"id"`
	Answers []int  `json:"answers"`
}

type SubmitTestResponse struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
	XPEarned       uint64 `json:"xp_earned"`
	FirstAttempt   bool   `json:"first_attempt"`
}

type GetMyTestResultsRequest struct{}

type GetMyTestResultsResponse struct {
	Results []TestResult `json:"results"`
}

type CreateTestRequest struct {
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	RewardPoints uint64     `json:"reward_points"`
	Questions    []Question `json:"questions"`
}

type CreateTestResponse struct {
	ID string `json:"id"`
}

type UpdateTestRequest struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Price        *float64   `json:"price"`
	RewardPoints *uint64    `json:"reward_points"`
	Questions    []Question `json:"questions"`
	IsActive     *bool      `json:"is_active"`
}

type UpdateTestResponse struct{}

type DeleteTestRequest struct {
	ID string `json:"id"`
}

type DeleteTestResponse struct{}
