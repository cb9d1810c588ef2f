package main

import (
	"net/http"
	"time"

	_ "owt/docs"
	"owt/internal/api"
	"owt/internal/client"
	"owt/internal/config"
	"owt/internal/store"
	"owt/wallet"

	"go.uber.org/zap"
)

// @title           owt wallet API
// @version         1.0
// @description     Local Octra wallet daemon: encrypted multi-wallet vault, key derivation and transaction signing.
// @BasePath        /
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := config.Init(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	if err := config.PromptForPassword(); err != nil {
		logger.Fatal("failed to read vault password", zap.Error(err))
	}

	kv, err := store.NewFileKV(config.GetDataDir())
	if err != nil {
		logger.Fatal("failed to open data dir", zap.Error(err))
	}

	st := store.New(kv)
	if ok, err := st.HasVault(); err != nil {
		logger.Fatal("failed to read vault", zap.Error(err))
	} else if !ok {
		// a missing vault also unlocks, so a wiped data dir would otherwise
		// pass for a first run silently
		logger.Warn("no vault found, a new one will be created under the entered password",
			zap.String("dataDir", config.GetDataDir()))
	}

	password, err := config.GetVaultPasswordBytes()
	if err != nil {
		logger.Fatal("vault password not available", zap.Error(err))
	}
	if err := st.Unlock(password); err != nil {
		clear(password)
		logger.Fatal("failed to unlock vault", zap.Error(err))
	}
	clear(password)

	rpc := client.NewOctraClient(config.GetOctraRPCURL(), logger)
	svc := wallet.NewService(st, rpc, time.Duration(config.GetBalanceTTLSeconds())*time.Second, logger)

	addr := ":" + config.GetPort()
	logger.Info("walletd listening",
		zap.String("addr", addr),
		zap.String("rpc", config.GetOctraRPCURL()))

	if err := http.ListenAndServe(addr, api.SetupRouter(svc)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
