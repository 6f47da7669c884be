package response

const (
	StatusSuccess = "SUCCESS"
	StatusFail    = "FAIL"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateTicketResponse struct {
	Msg         string  `json:"msg"`
	TicketID    string  `json:"ticket_id"`
	LootlabsURL *string `json:"lootlabs_url"`
	IsExisting  bool    `json:"is_existing"`
}

type CallbackResponse struct {
	Status      string  `json:"status"`
	PlayerNum   string  `json:"player_num"`
	HasPassword bool    `json:"has_password"`
	InstagramID *string `json:"instagram_id"`
	Message     string  `json:"message"`
}

type GateStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LoginResponse struct {
	Status   string `json:"status"`
	TicketID string `json:"ticket_id,omitempty"`
	Message  string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
