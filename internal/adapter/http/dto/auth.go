package dto

type UserItem struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
