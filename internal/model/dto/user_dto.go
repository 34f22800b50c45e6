package dto

// MeResponse 当前身份
type MeResponse struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
}
