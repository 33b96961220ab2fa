package models

// OTPIssueRequest asks for a completion challenge. PhoneNumber is the
// customer contact handed over by the booking collaborator; when absent,
// only the local fallback code is issued.
type OTPIssueRequest struct {
	PhoneNumber string `json:"phone_number,omitempty"`
}

// OTPIssueResponse reports the outcome of issuing a completion challenge.
// VerificationID is present when the external provider accepted the send;
// LocalCodeIssued is true when a fallback code was stored on the trip.
type OTPIssueResponse struct {
	VerificationID  string `json:"verification_id,omitempty"`
	LocalCodeIssued bool   `json:"local_code_issued"`
}

// OTPVerifyRequest is the completion challenge response from the driver app
type OTPVerifyRequest struct {
	Code           string `json:"code" validate:"required"`
	VerificationID string `json:"verification_id,omitempty"`
}

// OTPVerifyResponse reports whether the trip was completed
type OTPVerifyResponse struct {
	Completed bool `json:"completed"`
}
