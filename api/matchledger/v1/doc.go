// Package matchledgerv1 holds the generated PaymentLedger gRPC contract.
package matchledgerv1

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative matchledger/v1/payment_ledger.proto
