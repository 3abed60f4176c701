package model

type BuyNoteRequest struct {
	NoteID string `json:"note_id"`
}

type BuyNoteResponse struct {
	Purchase Purchase `json:"purchase"`
}

type BuyTestRequest struct {
	TestID string `json:"test_id"`
}

type BuyTestResponse struct {
	Purchase Purchase `json:"purchase"`
}

type BuyCategoryRequest struct {
	Category    string `json:"category"`
	ContentType string `json:"content_type"`
}

type BuyCategoryResponse struct {
	Purchase CategoryPurchase `json:"purchase"`
}

type GetMyPurchasesRequest struct{}

type GetMyPurchasesResponse struct {
	Purchases         []Purchase         `json:"purchases"`
	CategoryPurchases []CategoryPurchase `json:"category_purchases"`
}
