package ledger

import (
	"errors"
	"fmt"
)

// Domain-level error values returned by the ledger service.
var (
	ErrIDRequired           = errors.New("id required")
	ErrNameRequired         = errors.New("name required")
	ErrInvalidReference     = errors.New("invalid reference")
	ErrInvalidMetadataJSON  = errors.New("invalid metadata json")
	ErrIDBlocked            = errors.New("id blocked")
	ErrIDNotFound           = errors.New("id not found in match directory")
	ErrRecordNotFound       = errors.New("payment record not found")
	ErrNoPendingPayment     = errors.New("no pending payment")
	ErrPaymentNotSubmitted  = errors.New("payment not submitted")
	ErrPaymentPending       = errors.New("payment pending approval")
	ErrNoCredit             = errors.New("no credit available")
	ErrMatchNotFound        = errors.New("match entry missing from directory")
	ErrInvalidRecord        = errors.New("invalid payment record")
	ErrInvalidServiceConfig = errors.New("invalid service config")
)

// ErrorKind groups errors by how a caller can recover from them.
type ErrorKind string

const (
	ErrorKindValidation  ErrorKind = "validation"
	ErrorKindForbidden   ErrorKind = "forbidden"
	ErrorKindNotFound    ErrorKind = "not_found"
	ErrorKindState       ErrorKind = "state"
	ErrorKindConsistency ErrorKind = "consistency"
	ErrorKindInternal    ErrorKind = "internal"
)

// Stable machine-readable error codes.
const (
	CodeIDRequired          = "id_required"
	CodeNameRequired        = "name_required"
	CodeInvalidReference    = "invalid_reference"
	CodeInvalidMetadataJSON = "invalid_metadata_json"
	CodeIDBlocked           = "id_blocked"
	CodeIDNotFound          = "id_not_found"
	CodeRecordNotFound      = "record_not_found"
	CodeNoPendingPayment    = "no_pending_payment"
	CodePaymentNotSubmitted = "payment_not_submitted"
	CodePaymentPending      = "payment_pending"
	CodeNoCredit            = "no_credit"
	CodeMatchNotFound       = "match_not_found"
	CodeInternal            = "internal_error"
)

// ErrorClass is the transport-neutral description of a failure.
type ErrorClass struct {
	Kind    ErrorKind
	Code    string
	Message string
}

type classification struct {
	target error
	class  ErrorClass
}

var classifications = []classification{
	{ErrIDRequired, ErrorClass{ErrorKindValidation, CodeIDRequired, "ID is required."}},
	{ErrNameRequired, ErrorClass{ErrorKindValidation, CodeNameRequired, "Name is required."}},
	{ErrInvalidReference, ErrorClass{ErrorKindValidation, CodeInvalidReference, "Payment reference is invalid."}},
	{ErrInvalidMetadataJSON, ErrorClass{ErrorKindValidation, CodeInvalidMetadataJSON, "Metadata must be a JSON object."}},
	{ErrIDBlocked, ErrorClass{ErrorKindForbidden, CodeIDBlocked, "This ID is not allowed to access the site."}},
	{ErrIDNotFound, ErrorClass{ErrorKindNotFound, CodeIDNotFound, "ID not found in matches."}},
	{ErrRecordNotFound, ErrorClass{ErrorKindNotFound, CodeRecordNotFound, "No payment found."}},
	{ErrPaymentNotSubmitted, ErrorClass{ErrorKindNotFound, CodePaymentNotSubmitted, "Payment not submitted."}},
	{ErrNoPendingPayment, ErrorClass{ErrorKindState, CodeNoPendingPayment, "No pending payment to approve."}},
	{ErrPaymentPending, ErrorClass{ErrorKindState, CodePaymentPending, "Payment pending approval."}},
	{ErrNoCredit, ErrorClass{ErrorKindState, CodeNoCredit, "No approved payment credit available."}},
	{ErrMatchNotFound, ErrorClass{ErrorKindConsistency, CodeMatchNotFound, "Match entry is unavailable."}},
}

var internalErrorClass = ErrorClass{ErrorKindInternal, CodeInternal, "Internal error."}

// Classify maps an error returned by the service onto its kind and stable code.
// Unrecognized errors (store I/O, invalid records) classify as internal.
func Classify(err error) ErrorClass {
	for _, candidate := range classifications {
		if errors.Is(err, candidate.target) {
			return candidate.class
		}
	}
	return internalErrorClass
}

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
