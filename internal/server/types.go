package server

// PutKeyRequest represents the request body for upserting a key
type PutKeyRequest struct {
	Key   int64 `json:"key"`
	Value int64 `json:"value"`
}

// PutKeyResponse represents the response body for an upsert
type PutKeyResponse struct {
	Key    int64  `json:"key"`
	Value  int64  `json:"value"`
	Result string `json:"result"`
}

// GetKeyResponse represents the response body for a lookup hit
type GetKeyResponse struct {
	Key   int64 `json:"key"`
	Value int64 `json:"value"`
}
