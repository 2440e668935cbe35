package response

type PayoutResult struct {
	ID           string `json:"id"`
	Success      bool   `json:"success"`
	TransferCode string `json:"transfer_code,omitempty"`
	Error        string `json:"error,omitempty"`
}

type PayoutSweep struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Results []PayoutResult `json:"results"`
}
