package receipt

type Data struct {
	PaymentID    string `json:"payment_id"`
	Status       string `json:"status"`
	CardLastFour string `json:"card_last_four"`
	Currency     string `json:"currency"`
	Amount       int64  `json:"amount"`
}

type Generator interface {
	Generate(data Data) ([]byte, error)
}
