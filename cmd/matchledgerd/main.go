package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MarkoPoloResearchLab/matchledger/internal/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagConfig         = "config"
	flagListenAddr     = "listen-addr"
	flagGRPCListenAddr = "grpc-listen-addr"
	flagStoreEngine    = "store-engine"
	flagStoreURL       = "store-url"
	flagMatchesPath    = "matches-path"
	flagStaticDir      = "static-dir"
	flagAllowedOrigins = "allowed-origins"
	flagBlockedIDs     = "blocked-ids"
	flagRequestTimeout = "request-timeout"
	envPrefix          = "MATCHLEDGER"
	envLegacyPort      = "PORT"
	envLegacyPayments  = "PAYMENTS_PATH"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "matchledgerd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := server.Config{}
	cmd := &cobra.Command{
		Use:           "matchledgerd",
		Short:         "Payment-gated match lookup ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.Run(ctx, cfg)
		},
	}

	cmd.Flags().String(flagConfig, "", "optional config file (yaml, toml or json)")
	cmd.Flags().String(flagListenAddr, ":8000", "HTTP listen address")
	cmd.Flags().String(flagGRPCListenAddr, "", "gRPC listen address (empty disables gRPC)")
	cmd.Flags().String(flagStoreEngine, server.StoreEngineSnapshot, "ledger store engine: snapshot, gorm or pgx")
	cmd.Flags().String(flagStoreURL, "payments.json", "snapshot path, sqlite path/url or postgres url")
	cmd.Flags().String(flagMatchesPath, "matches.json", "match directory file (json or yaml)")
	cmd.Flags().String(flagStaticDir, "", "directory with index.html and admin.html (empty disables static serving)")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-separated list of allowed CORS origins (empty allows all)")
	cmd.Flags().String(flagBlockedIDs, "", "comma-separated list of identifiers denied access")
	cmd.Flags().Duration(flagRequestTimeout, 5*time.Second, "per-request timeout")

	cmd.AddCommand(newApplyMessagesCommand())
	cmd.AddCommand(newAdminCommand())
	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *server.Config) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, flagName := range []string{flagListenAddr, flagGRPCListenAddr, flagStoreEngine, flagStoreURL, flagMatchesPath, flagStaticDir, flagAllowedOrigins, flagBlockedIDs, flagRequestTimeout} {
		if err := v.BindPFlag(flagName, cmd.Flags().Lookup(flagName)); err != nil {
			return err
		}
	}

	configPath, err := cmd.Flags().GetString(flagConfig)
	if err != nil {
		return err
	}
	if strings.TrimSpace(configPath) != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	cfg.ListenAddr = strings.TrimSpace(v.GetString(flagListenAddr))
	if legacyPort := strings.TrimSpace(os.Getenv(envLegacyPort)); legacyPort != "" && !v.IsSet(flagListenAddr) {
		cfg.ListenAddr = ":" + legacyPort
	}
	cfg.GRPCListenAddr = strings.TrimSpace(v.GetString(flagGRPCListenAddr))
	cfg.StoreEngine = strings.TrimSpace(v.GetString(flagStoreEngine))
	cfg.StoreURL = strings.TrimSpace(v.GetString(flagStoreURL))
	if legacyPayments := strings.TrimSpace(os.Getenv(envLegacyPayments)); legacyPayments != "" && !v.IsSet(flagStoreURL) {
		cfg.StoreURL = legacyPayments
	}
	cfg.MatchesPath = strings.TrimSpace(v.GetString(flagMatchesPath))
	cfg.StaticDir = strings.TrimSpace(v.GetString(flagStaticDir))
	cfg.AllowedOrigins = listValue(v, flagAllowedOrigins)
	cfg.BlockedIDs = listValue(v, flagBlockedIDs)
	cfg.RequestTimeout = v.GetDuration(flagRequestTimeout)

	return cfg.Validate()
}

// listValue accepts both a comma-separated string and a config-file list.
func listValue(v *viper.Viper, key string) []string {
	switch value := v.Get(key).(type) {
	case string:
		return server.ParseList(value)
	case nil:
		return []string{}
	default:
		return server.ParseList(strings.Join(v.GetStringSlice(key), ","))
	}
}
