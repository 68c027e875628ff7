package ledger

import "context"

// StatusView is the read-only answer to a status poll.
type StatusView struct {
	Status Status
	Record *PaymentRecord
}

// GetStatus reports the derived payment status for an identifier without mutating anything.
func (service *Service) GetStatus(requestContext context.Context, rawID string) (StatusView, error) {
	matchID, err := NewMatchID(rawID)
	if err != nil {
		return StatusView{}, err
	}
	record, exists, err := service.store.Get(requestContext, matchID)
	if err != nil {
		return StatusView{}, err
	}
	if !exists {
		return StatusView{Status: StatusNone}, nil
	}
	return StatusView{Status: record.Status(), Record: &record}, nil
}

// ListPending returns every record with at least one submission awaiting approval.
func (service *Service) ListPending(requestContext context.Context) ([]PaymentRecord, error) {
	records, err := service.store.List(requestContext)
	if err != nil {
		return nil, err
	}
	pending := make([]PaymentRecord, 0, len(records))
	for _, record := range records {
		if record.PendingCount > 0 {
			pending = append(pending, record)
		}
	}
	return pending, nil
}
