package webhook

import "errors"

var (
	ErrMissingSignature = errors.New("no signature provided")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrSecretNotSet     = errors.New("webhook secret not configured")
	ErrIPNotAllowed     = errors.New("ip not whitelisted")
	ErrRateLimited      = errors.New("rate limit exceeded")
)
