package dto

type RegisterGateDTO struct {
	ClickID     string `json:"click_id" binding:"required"`
	Password    string `json:"password" binding:"required"`
	InstagramID string `json:"instagram_id" binding:"required"`
}

// LoginGateDTO carries either a player number or an instagram handle.
// When both are present the handle wins.
type LoginGateDTO struct {
	PlayerNum   string `json:"player_num"`
	InstagramID string `json:"instagram_id"`
	Password    string `json:"password" binding:"required"`
}

type AdminLoginDTO struct {
	Password string `json:"password" binding:"required"`
}
