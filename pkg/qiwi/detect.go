package qiwi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/qiwi/pkg/validate"
)

// DetectMobile resolves the provider id of the carrier serving phone.
func (w *Wallet) DetectMobile(ctx context.Context, phone string) (string, error) {
	phone = NormalizeNumber(phone)
	if phone == "" {
		return "", invalidArgument("phone is empty")
	}
	return w.detect(ctx, "mobile/detect.action", url.Values{"phone": {phone}})
}

// DetectCard resolves the provider id of the bank that issued card.
func (w *Wallet) DetectCard(ctx context.Context, card string) (string, error) {
	card = strings.ReplaceAll(card, " ", "")
	if !validate.IsLuhn(card) {
		return "", invalidArgument("card number %q is invalid", maskCard(card))
	}
	return w.detect(ctx, "card/detect.action", url.Values{"cardNumber": {card}})
}

func (w *Wallet) detect(ctx context.Context, path string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.detectURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, _, err := w.client.Fetch(req)
	if err != nil {
		return "", fmt.Errorf("request %s failed: %w", path, err)
	}
	w.logger.Debug("Detect", zap.String("path", path), zap.Int("status", status), zap.ByteString("body", body))

	o, err := FromBytes(body).object("Detection")
	if err != nil {
		return "", err
	}
	code, ok, err := o.optObj("code")
	if err != nil {
		return "", err
	}
	if ok {
		value, err := code.optStr("value")
		if err != nil {
			return "", err
		}
		if value != nil && *value == "0" {
			pid, err := o.optStr("message")
			if err != nil {
				return "", err
			}
			if pid != nil && *pid != "" {
				return *pid, nil
			}
		}
	}
	return "", ErrUnresolvedProvider
}

func maskCard(card string) string {
	if len(card) <= 4 {
		return card
	}
	return strings.Repeat("*", len(card)-4) + card[len(card)-4:]
}
