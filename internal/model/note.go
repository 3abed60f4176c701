package model

type GetNotesRequest struct {
	Category string `json:"category"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type GetNotesResponse struct {
	Notes []Note `json:"notes"`
}

type GetNoteRequest struct {
	ID string `json:"id"`
}

type GetNoteResponse struct {
	Note Note `json:"note"`
}

type CreateNoteRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	FileURL  string  `json:"file_url"`
}

type CreateNoteResponse struct {
	ID string `json:"id"`
}

type UpdateNoteRequest struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	FileURL  string   `json:"file_url"`
	IsActive *bool    `json:"is_active"`
}

type UpdateNoteResponse struct{}

type DeleteNoteRequest struct {
	ID string `json:"id"`
}

type DeleteNoteResponse struct{}

type UploadNoteFileRequest struct{}

type UploadNoteFileResponse struct {
	URL string `json:"url"`
}
