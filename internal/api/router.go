package api

import (
	"net/http"

	"owt/internal/handler"
	"owt/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers
func SetupRouter(svc *wallet.Service) http.Handler {
	walletHandler := handler.NewWalletHandler(svc)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet/generate", walletHandler.Generate)
	mux.HandleFunc("/wallet/import", walletHandler.Import)
	mux.HandleFunc("/wallet/list", walletHandler.List)
	mux.HandleFunc("/wallet/rename", walletHandler.Rename)
	mux.HandleFunc("/wallet/remove", walletHandler.Remove)
	mux.HandleFunc("/wallet/active", walletHandler.SwitchActive)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/send", walletHandler.Send)

	return mux
}
