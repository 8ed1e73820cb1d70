package dto

type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorBody is the bare error shape used by the version endpoint.
type ErrorBody struct {
	Error string `json:"error"`
}
