package model

type GetCategoriesRequest struct{}

type GetCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

type GetCoursesRequest struct {
	Category string `json:"category"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type GetCoursesResponse struct {
	Courses []Course `json:"courses"`
}

type GetCourseRequest struct {
	ID string `json:"id"`
}

type GetCourseResponse struct {
	Course  Course   `json:"course"`
	Lessons []Lesson `json:"lessons"`
}

type CreateCourseRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price"`
}

type CreateCourseResponse struct {
	ID string `json:"id"`
}

type UpdateCourseRequest struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	IsActive      *bool    `json:"is_active"`
}

type UpdateCourseResponse struct{}

type DeleteCourseRequest struct {
	ID string `json:"id"`
}

type DeleteCourseResponse struct{}

type CreateLessonRequest struct {
	CourseID   string `json:"course_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	VideoURL   string `json:"video_url"`
	OrderIndex int    `json:"order_index"`
}

type CreateLessonResponse struct {
	ID string `json:"id"`
}

type UpdateLessonRequest struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
}

type UpdateLessonResponse struct{}

type DeleteLessonRequest struct {
	ID string `json:"id"`
}

type DeleteLessonResponse struct{}

type ReorderLessonsRequest struct {
	CourseID  string   `json:"course_id"`
	LessonIDs []string `json:"lesson_ids"`
}

type ReorderLessonsResponse struct{}
