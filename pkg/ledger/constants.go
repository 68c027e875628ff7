package ledger

// Operation names and outcomes reported in OperationLog.
const (
	OperationSubmit  = "submit_payment"
	OperationApprove = "approve_payment"
	OperationLookup  = "lookup_and_consume"

	OperationStatusOK    = "ok"
	OperationStatusError = "error"

	maxReferenceLength = 128
)
