package dto

// PageRequest carries the page query parameters of list endpoints.
type PageRequest struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

type PageInfo struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
