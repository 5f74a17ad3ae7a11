package notice

type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=Low Medium High Urgent"`
	Date     string `json:"date"`
}

type NoticeResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	Date      string `json:"date"`
	CreatedAt string `json:"createdAt"`
}
