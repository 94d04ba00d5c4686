package model

type VerifyDiscountRequest struct {
	Code string `json:"code"`
}

type VerifyDiscountResponse struct {
	Valid   bool   `json:"valid"`
	Benefit string `json:"benefit,omitempty"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

type MarkDiscountUsedRequest struct {
	Code string `json:"code"`
}

type MarkDiscountUsedResponse struct{}
