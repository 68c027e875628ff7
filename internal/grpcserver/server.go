package grpcserver

import (
	"context"
	"errors"
	"time"

	matchledgerv1 "github.com/MarkoPoloResearchLab/matchledger/api/matchledger/v1"
	"github.com/MarkoPoloResearchLab/matchledger/pkg/ledger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PaymentLedgerServer exposes the payment ledger over gRPC.
type PaymentLedgerServer struct {
	matchledgerv1.UnimplementedPaymentLedgerServer
	ledgerService *ledger.Service
}

// NewPaymentLedgerServer constructs a gRPC server for the ledger service.
func NewPaymentLedgerServer(ledgerService *ledger.Service) *PaymentLedgerServer {
	return &PaymentLedgerServer{ledgerService: ledgerService}
}

func (service *PaymentLedgerServer) GetStatus(ctx context.Context, request *matchledgerv1.GetStatusRequest) (*matchledgerv1.GetStatusResponse, error) {
	view, err := service.ledgerService.GetStatus(ctx, request.GetId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	response := &matchledgerv1.GetStatusResponse{Status: view.Status.String()}
	if view.Record != nil {
		response.Record = toProtoRecord(*view.Record)
	}
	return response, nil
}

func (service *PaymentLedgerServer) SubmitPayment(ctx context.Context, request *matchledgerv1.SubmitPaymentRequest) (*matchledgerv1.PaymentResponse, error) {
	record, err := service.ledgerService.SubmitPayment(ctx, ledger.SubmitPaymentInput{
		ID:        request.GetId(),
		PayerName: request.GetName(),
		Reference: request.GetUtr(),
		Metadata:  request.GetMetadataJson(),
	})
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return paymentResponse(record), nil
}

func (service *PaymentLedgerServer) Lookup(ctx context.Context, request *matchledgerv1.LookupRequest) (*matchledgerv1.LookupResponse, error) {
	result, err := service.ledgerService.LookupAndConsume(ctx, request.GetId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &matchledgerv1.LookupResponse{
		Entry: &matchledgerv1.MatchEntry{
			Id:        result.Entry.ID,
			Name:      result.Entry.Name,
			MatchId:   result.Entry.MatchID,
			MatchName: result.Entry.MatchName,
			Message:   result.Entry.Message,
		},
		CreditsLeft: result.Record.Credits,
		UsedCount:   result.Record.UsedCount,
	}, nil
}

func (service *PaymentLedgerServer) ListPending(ctx context.Context, _ *matchledgerv1.ListPendingRequest) (*matchledgerv1.ListPendingResponse, error) {
	pending, err := service.ledgerService.ListPending(ctx)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	response := &matchledgerv1.ListPendingResponse{Pending: make([]*matchledgerv1.PaymentRecord, 0, len(pending))}
	for _, record := range pending {
		response.Pending = append(response.Pending, toProtoRecord(record))
	}
	return response, nil
}

func (service *PaymentLedgerServer) Approve(ctx context.Context, request *matchledgerv1.ApproveRequest) (*matchledgerv1.PaymentResponse, error) {
	record, err := service.ledgerService.ApprovePayment(ctx, request.GetId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return paymentResponse(record), nil
}

func paymentResponse(record ledger.PaymentRecord) *matchledgerv1.PaymentResponse {
	return &matchledgerv1.PaymentResponse{
		Status:       record.Status().String(),
		PendingCount: record.PendingCount,
		Credits:      record.Credits,
		UsedCount:    record.UsedCount,
	}
}

func toProtoRecord(record ledger.PaymentRecord) *matchledgerv1.PaymentRecord {
	return &matchledgerv1.PaymentRecord{
		Id:                   record.ID,
		Name:                 record.PayerName,
		Utr:                  record.Reference,
		MetadataJson:         string(record.Metadata),
		PendingCount:         record.PendingCount,
		Credits:              record.Credits,
		UsedCount:            record.UsedCount,
		LastSubmittedUnixUtc: unixUTC(record.LastSubmittedAt),
		LastApprovedUnixUtc:  unixUTC(record.LastApprovedAt),
		LastUsedUnixUtc:      unixUTC(record.LastUsedAt),
	}
}

func unixUTC(value *time.Time) int64 {
	if value == nil {
		return 0
	}
	return value.UTC().Unix()
}

// mapToGRPCError reports the stable error code as the status message.
func mapToGRPCError(source error) error {
	if errors.Is(source, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, source.Error())
	}
	if errors.Is(source, context.Canceled) {
		return status.Error(codes.Canceled, source.Error())
	}
	class := ledger.Classify(source)
	switch class.Kind {
	case ledger.ErrorKindValidation:
		return status.Error(codes.InvalidArgument, class.Code)
	case ledger.ErrorKindForbidden:
		return status.Error(codes.PermissionDenied, class.Code)
	case ledger.ErrorKindNotFound:
		return status.Error(codes.NotFound, class.Code)
	case ledger.ErrorKindState:
		return status.Error(codes.FailedPrecondition, class.Code)
	case ledger.ErrorKindConsistency:
		return status.Error(codes.DataLoss, class.Code)
	default:
		return status.Error(codes.Internal, class.Code)
	}
}
