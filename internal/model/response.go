package model

// Response is the uniform envelope for every API reply, success or failure.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
