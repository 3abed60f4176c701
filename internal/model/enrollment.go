package model

type EnrollRequest struct {
	CourseID string `json:"course_id"`
}

type EnrollResponse struct{}

type UpdateProgressRequest struct {
	CourseID string `json:"course_id"`
	Progress int    `json:"progress"`
}

type UpdateProgressResponse struct{}

type GetMyCoursesRequest struct{}

type GetMyCoursesResponse struct {
	Enrollments []Enrollment `json:"enrollments"`
}
