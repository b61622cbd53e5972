package http

// --- Response DTOs ---

type authURLResp struct {
	URL string `json:"url"`
}

type callbackResp struct {
	UserID string `json:"user_id"`
}

type checkResp struct {
	Authenticated bool `json:"authenticated"`
}
