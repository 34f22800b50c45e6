package dto

// CreateTripRequest 创建行程请求。日期为 date-only（"2006-01-02"），时区缺省由服务端填充。
type CreateTripRequest struct {
	Title     string  `json:"title"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Timezone  *string `json:"timezone,omitempty"`
}

// TripResponse 行程详情/创建响应
type TripResponse struct {
	ID        int64   `json:"id"`
	OwnerID   int64   `json:"ownerId"`
	Title     string  `json:"title"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Timezone  string  `json:"timezone"`
	CoverURL  *string `json:"coverUrl"`
	CreatedAt string  `json:"createdAt"`
}

// TripSummary 行程列表项，封面经 LEFT JOIN 解析，无封面为 null
type TripSummary struct {
	ID        int64   `json:"id"`
	OwnerID   int64   `json:"ownerId"`
	Title     string  `json:"title"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Timezone  string  `json:"timezone"`
	CoverURL  *string `json:"coverUrl"`
	CreatedAt string  `json:"createdAt"`
}
