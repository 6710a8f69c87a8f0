package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown             = "UNKNOWN"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeAdmin1Mismatch      = "ADMIN1_MISMATCH"
	CodeIdentityToken       = "IDENTITY_TOKEN_INVALID"
	CodeInsufficientStake   = "INSUFFICIENT_STAKE"
	CodeExternalCallFailure = "EXTERNAL_CALL_FAILURE"
	CodeTokenNotSet         = "TOKEN_NOT_SET"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeInvalidUcacID       = "INVALID_UCAC_ID"
	CodeInvalidArgument     = "INVALID_ARGUMENT"
)

var enUSMessages = map[Code]string{
	CodeUnknown:             "An unexpected error occurred.",
	CodeUnauthorized:        "Only the {{.Role}} may perform this operation.",
	CodeAdmin1Mismatch:      "The ledger was created by a different admin1.",
	CodeIdentityToken:       "The identity token is missing, expired, or invalid.",
	CodeInsufficientStake:   "Staked balance {{.Staked}} is lower than the requested {{.Requested}}.",
	CodeExternalCallFailure: "The value unit {{.Unit}} rejected the transfer.",
	CodeTokenNotSet:         "No current value unit is configured.",
	CodeInvalidAmount:       "Amount must be a positive whole number.",
	CodeInvalidUcacID:       "UCAC id must be at most 32 bytes.",
	CodeInvalidArgument:     "The {{.Field}} value is invalid.",
}
