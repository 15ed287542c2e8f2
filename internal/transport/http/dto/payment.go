package dto

type BeginPaymentRequest struct {
	TalentID string `json:"talent_id"`
}

type SelectMethodRequest struct {
	Method string `json:"method"`
}

type CredentialsRequest struct {
	WalletID string `json:"wallet_id"`
	PIN      string `json:"pin"`
}
