package model

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatTurn is one entry of a conversation history. Histories are append-only
// and insertion order is significant.
type ChatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
