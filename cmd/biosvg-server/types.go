package main

// Challenge holds the server-side answer for an outstanding captcha.
type Challenge struct {
	Answer string
}

// StartResponse is returned by /api/challenge/start
type StartResponse struct {
	UUID  string `json:"uuid"`
	Image string `json:"image"` // inline SVG document
}

// VerifyRequest is the JSON body for /api/challenge/verify
type VerifyRequest struct {
	UUID   string `json:"uuid"`
	Answer string `json:"answer"`
}

// VerifyResponse is returned by /api/challenge/verify
type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
