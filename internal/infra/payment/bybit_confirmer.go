// Package payment implements the external payment confirmation
// collaborator against the exchange wallet API.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	fundRecordsPath = "/v2/private/wallet/fund/records"
	defaultTimeout  = 5 * time.Second
	statusSuccess   = "success"
)

// bybitConfirmer looks up wallet fund records on the exchange and
// confirms payment when a successful record carries the order ID in its
// note field. Any transport or decode failure degrades to unconfirmed.
type bybitConfirmer struct {
	baseURL   string
	apiKey    string
	apiSecret string
	client    *http.Client
	logger    *slog.Logger
	now       func() time.Time
}

// NewBybitConfirmer is the constructor for bybitConfirmer. It returns
// nil when payment is not configured, which the order lifecycle treats
// as manual-only approval.
func NewBybitConfirmer(cfg *config.Config, logger *slog.Logger) service.PaymentConfirmer {
	if cfg.Payment == nil || cfg.Payment.APIKey == "" || cfg.Payment.APISecret == "" {
		return nil
	}

	timeout := cfg.Payment.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &bybitConfirmer{
		baseURL:   strings.TrimRight(cfg.Payment.BaseURL, "/"),
		apiKey:    cfg.Payment.APIKey,
		apiSecret: cfg.Payment.APISecret,
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
		now:       time.Now,
	}
}

type fundRecordsResponse struct {
	Result struct {
		Data []fundRecord `json:"data"`
	} `json:"result"`
}

type fundRecord struct {
	Note   string `json:"note"`
	Status string `json:"status"`
}

// Confirm reports whether a cleared payment referencing the order exists.
func (c *bybitConfirmer) Confirm(ctx context.Context, order *entity.Order) (bool, error) {
	if order == nil || order.ID == uuid.Nil {
		return false, errors.New("order id is required")
	}

	params := map[string]string{
		"api_key":   c.apiKey,
		"timestamp": strconv.FormatInt(c.now().UnixMilli(), 10),
	}
	params["sign"] = c.sign(params)

	query := url.Values{}
	for key, value := range params {
		query.Set(key, value)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+fundRecordsPath+"?"+query.Encode(), nil)
	if err != nil {
		return false, errors.Wrap(err, "failed to build fund records request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "fund records request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, errors.Errorf("fund records request returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, errors.Wrap(err, "failed to read fund records response")
	}

	var decoded fundRecordsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return false, errors.Wrap(err, "malformed fund records response")
	}

	orderID := order.ID.String()
	for _, record := range decoded.Result.Data {
		if record.Note == orderID && record.Status == statusSuccess {
			return true, nil
		}
	}

	c.logger.Debug("No cleared fund record for order", slog.String("orderID", orderID))

	return false, nil
}

// sign builds the request signature: params sorted by key, joined as
// k=v with &, HMAC-SHA256 under the API secret, hex encoded.
func (c *bybitConfirmer) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	mac := hmac.New(sha256.New, []byte(c.apiSecret))
	mac.Write([]byte(strings.Join(pairs, "&")))

	return hex.EncodeToString(mac.Sum(nil))
}
