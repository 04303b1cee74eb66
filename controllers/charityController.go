package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

// Charity page donation parameters. All values come from the environment; the
// defaults keep the page rendering when nothing is configured.
type CharityInfo struct {
	Bank        string `json:"bank"`
	Account     string `json:"account"`
	AccountName string `json:"account_name"`
	Template    string `json:"template"`
	Description string `json:"description"`
	QRUrl       string `json:"qr_url"`
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetCharityInfo returns the VietQR donation parameters and the composed QR
// image URL consumed by the charity page.
func GetCharityInfo(w http.ResponseWriter, r *http.Request) {
	info := CharityInfo{
		Bank:        envOrDefault("VIETQR_BANK", "970422"),
		Account:     envOrDefault("VIETQR_ACCOUNT", "0000000000"),
		AccountName: envOrDefault("VIETQR_ACCOUNT_NAME", "Chilling Coffee Charity"),
		Template:    envOrDefault("VIETQR_TEMPLATE", "compact2"),
		Description: envOrDefault("VIETQR_DESCRIPTION", "Charity donation"),
	}

	info.QRUrl = fmt.Sprintf(
		"https://img.vietqr.io/image/%s-%s-%s.png?accountName=%s&addInfo=%s",
		info.Bank, info.Account, info.Template,
		url.QueryEscape(info.AccountName), url.QueryEscape(info.Description),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}
