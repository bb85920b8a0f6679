package dto

// ImportSheetsRequest optionally overrides the configured sheet range.
type ImportSheetsRequest struct {
	Range string `json:"range" binding:"omitempty,max=120"`
}
