package model

type ConsultOracleRequest struct {
	FingerprintHash string `json:"fingerprintHash"`
	Rune            string `json:"rune"`
}

type ConsultOracleResponse struct {
	Message        string `json:"message"`
	Code           string `json:"code,omitempty"`
	Benefit        string `json:"benefit,omitempty"`
	AlreadyClaimed bool   `json:"alreadyClaimed"`
}
