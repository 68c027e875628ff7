package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	matchledgerv1 "github.com/MarkoPoloResearchLab/matchledger/api/matchledger/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const (
	flagGRPCAddr     = "grpc-addr"
	flagGRPCInsecure = "grpc-insecure"
	flagTimeout      = "timeout"
	flagID           = "id"
)

var adminOutputFormat = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true, EmitUnpopulated: true}

type adminOptions struct {
	address  string
	insecure bool
	timeout  time.Duration
}

func newAdminCommand() *cobra.Command {
	options := &adminOptions{}
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administer a running matchledgerd over gRPC",
	}
	cmd.PersistentFlags().StringVar(&options.address, flagGRPCAddr, "localhost:9000", "matchledgerd gRPC address")
	cmd.PersistentFlags().BoolVar(&options.insecure, flagGRPCInsecure, false, "set true when connecting to a plaintext gRPC endpoint")
	cmd.PersistentFlags().DurationVar(&options.timeout, flagTimeout, 5*time.Second, "RPC timeout")

	cmd.AddCommand(&cobra.Command{
		Use:   "pending",
		Short: "List payments awaiting approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, options, func(ctx context.Context, client matchledgerv1.PaymentLedgerClient) (proto.Message, error) {
				return client.ListPending(ctx, &matchledgerv1.ListPendingRequest{})
			})
		},
	})

	approveCmd := &cobra.Command{
		Use:   "approve",
		Short: "Approve one pending payment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requiredID(cmd)
			if err != nil {
				return err
			}
			return withClient(cmd, options, func(ctx context.Context, client matchledgerv1.PaymentLedgerClient) (proto.Message, error) {
				return client.Approve(ctx, &matchledgerv1.ApproveRequest{Id: id})
			})
		},
	}
	approveCmd.Flags().String(flagID, "", "identifier to approve")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show the payment status of an identifier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := requiredID(cmd)
			if err != nil {
				return err
			}
			return withClient(cmd, options, func(ctx context.Context, client matchledgerv1.PaymentLedgerClient) (proto.Message, error) {
				return client.GetStatus(ctx, &matchledgerv1.GetStatusRequest{Id: id})
			})
		},
	}
	statusCmd.Flags().String(flagID, "", "identifier to inspect")

	cmd.AddCommand(approveCmd, statusCmd)
	return cmd
}

func requiredID(cmd *cobra.Command) (string, error) {
	id, err := cmd.Flags().GetString(flagID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%s is required", flagID)
	}
	return id, nil
}

func withClient(cmd *cobra.Command, options *adminOptions, call func(context.Context, matchledgerv1.PaymentLedgerClient) (proto.Message, error)) error {
	transport := credentials.NewClientTLSFromCert(nil, "")
	if options.insecure {
		transport = insecure.NewCredentials()
	}
	conn, err := grpc.NewClient(options.address, grpc.WithTransportCredentials(transport))
	if err != nil {
		return fmt.Errorf("connect matchledgerd: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), options.timeout)
	defer cancel()
	response, err := call(ctx, matchledgerv1.NewPaymentLedgerClient(conn))
	if err != nil {
		return err
	}
	payload, err := adminOutputFormat.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
	return err
}
