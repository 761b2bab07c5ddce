package alma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/alma-scheduler/internal/domain/recurrence"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
)

// Client calls the Alma REST API (almaws/v1).
type Client struct {
	baseURL    string
	apiKey     string
	library    string
	circDesk   string
	httpClient *http.Client
	logger     *zerolog.Logger

	redis    *redis.Client
	cacheTTL time.Duration
}

// APIError is a non-2xx answer from Alma. Code and Message come from the
// first entry of Alma's errorList when the body has one.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("alma: http %d: %s %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("alma: http %d", e.Status)
}

type Options struct {
	BaseURL  string
	APIKey   string
	Library  string
	CircDesk string
	Timeout  time.Duration
}

func NewClient(opts Options, logger *zerolog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Client{
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		library:    opts.Library,
		circDesk:   opts.CircDesk,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger,
	}
}

// UseRedisCache enables caching of booking availability lookups.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// --------------------------------------------------
// Loans
// --------------------------------------------------

type valueRef struct {
	Value string `json:"value"`
}

type createLoanRequest struct {
	CircDesk valueRef `json:"circ_desk"`
	Library  valueRef `json:"library"`
}

type loanResponse struct {
	LoanID string `json:"loan_id"`
}

// CreateLoan checks the item with the given barcode out to the user and
// returns Alma's loan id.
func (c *Client) CreateLoan(ctx context.Context, username, barcode string) (string, error) {
	endpoint := fmt.Sprintf(
		"%s/almaws/v1/users/%s/loans?user_id_type=all_unique&item_barcode=%s",
		c.baseURL, url.PathEscape(username), url.QueryEscape(barcode),
	)
	body := createLoanRequest{
		CircDesk: valueRef{Value: c.circDesk},
		Library:  valueRef{Value: c.library},
	}

	var resp loanResponse
	if err := c.doJSON(ctx, "create_loan", http.MethodPost, endpoint, body, &resp); err != nil {
		return "", err
	}
	if resp.LoanID == "" {
		metrics.IncAlmaRequest("create_loan", "invalid")
		return "", fmt.Errorf("alma: create loan: empty loan_id")
	}
	return resp.LoanID, nil
}

// ReturnLoan scans the item in at the configured circulation desk.
func (c *Client) ReturnLoan(ctx context.Context, mmsID, itemID string) error {
	q := url.Values{}
	q.Set("op", "scan")
	q.Set("library", c.library)
	q.Set("circ_desk", c.circDesk)

	endpoint := fmt.Sprintf(
		"%s/almaws/v1/bibs/%s/holdings/ALL/items/%s?%s",
		c.baseURL, url.PathEscape(mmsID), url.PathEscape(itemID), q.Encode(),
	)
	return c.doJSON(ctx, "return_loan", http.MethodPost, endpoint, nil, nil)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

type bookingPeriod struct {
	FromTime time.Time `json:"from_time"`
	ToTime   time.Time `json:"to_time"`
}

type bookingAvailability struct {
	Periods []bookingPeriod `json:"booking_availability"`
}

// IsAvailable reports, for each interval, whether the bib has no booking
// overlapping it. Results are in the order of intervals.
func (c *Client) IsAvailable(ctx context.Context, mmsID string, intervals []recurrence.Interval) ([]bool, error) {
	out := make([]bool, len(intervals))
	if len(intervals) == 0 {
		return out, nil
	}

	from, to := intervals[0].Start, intervals[0].End
	for _, iv := range intervals[1:] {
		if iv.Start.Before(from) {
			from = iv.Start
		}
		if iv.End.After(to) {
			to = iv.End
		}
	}

	booked, err := c.bookingAvailability(ctx, mmsID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	for i, iv := range intervals {
		out[i] = true
		for _, p := range booked.Periods {
			if iv.Start.Before(p.ToTime) && p.FromTime.Before(iv.End) {
				out[i] = false
				break
			}
		}
	}
	return out, nil
}

func (c *Client) bookingAvailability(ctx context.Context, mmsID string, from, to time.Time) (*bookingAvailability, error) {
	q := url.Values{}
	q.Set("from", from.Format(time.RFC3339))
	q.Set("to", to.Format(time.RFC3339))

	endpoint := fmt.Sprintf(
		"%s/almaws/v1/bibs/%s/booking-availability?%s",
		c.baseURL, url.PathEscape(mmsID), q.Encode(),
	)
	cacheKey := fmt.Sprintf("alma:availability:%s:%d:%d", mmsID, from.Unix(), to.Unix())

	var resp bookingAvailability
	if c.readCache(ctx, cacheKey, &resp) {
		return &resp, nil
	}

	if err := c.doJSON(ctx, "booking_availability", http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKey, resp)
	return &resp, nil
}

// --------------------------------------------------
// Cache
// --------------------------------------------------

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.cacheTTL).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("alma cache write failed")
	}
}

// --------------------------------------------------
// Transport
// --------------------------------------------------

func (c *Client) doJSON(ctx context.Context, op, method, endpoint string, body, out any) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.addHeaders(req)

	started := time.Now()
	err = c.do(req, out)

	status := "ok"
	if err != nil {
		status = "error"
		c.logger.Warn().Err(err).Str("op", op).Dur("took", time.Since(started)).Msg("alma request failed")
	} else {
		c.logger.Debug().Str("op", op).Dur("took", time.Since(started)).Msg("alma request")
	}
	metrics.IncAlmaRequest(op, status)

	return err
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("alma: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("alma: decode response: %w", err)
	}
	return nil
}

type errorBody struct {
	ErrorList struct {
		Error []struct {
			ErrorCode    string `json:"errorCode"`
			ErrorMessage string `json:"errorMessage"`
		} `json:"error"`
	} `json:"errorList"`
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		if errs := body.ErrorList.Error; len(errs) > 0 {
			apiErr.Code = errs[0].ErrorCode
			apiErr.Message = errs[0].ErrorMessage
		}
	}
	return apiErr
}

func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "apikey "+c.apiKey)
	}
}
