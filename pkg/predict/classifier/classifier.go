// Package classifier talks to an external crop model served over HTTP.
package classifier

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Classifier predicts a crop label from a feature row laid out in Features() order.
type Classifier interface {
	Features() []string
	Predict(ctx context.Context, row []float64) (string, error)
}

type httpClassifier struct {
	endpoint string
	features []string
	http     *http.Client
	cb       *gobreaker.CircuitBreaker
	log      *zap.Logger
}

// NewHTTP returns nil when either the endpoint or the feature order is missing,
// which callers treat as "no model loaded".
func NewHTTP(endpoint string, features []string, timeout time.Duration, cb *gobreaker.CircuitBreaker, log *zap.Logger) Classifier {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" || len(features) == 0 {
		return nil
	}
	return &httpClassifier{
		endpoint: endpoint,
		features: features,
		http:     &http.Client{Timeout: timeout},
		cb:       cb,
		log:      log,
	}
}

func (c *httpClassifier) Features() []string { return c.features }

type predictReq struct {
	Instances [][]float64 `json:"instances"`
}

type predictResp struct {
	Predictions []json.RawMessage `json:"predictions"`
}

func (c *httpClassifier) Predict(ctx context.Context, row []float64) (string, error) {
	if len(row) != len(c.features) {
		return "", fmt.Errorf("feature row has %d values, model expects %d", len(row), len(c.features))
	}
	v, err := c.cb.Execute(func() (interface{}, error) { return c.call(ctx, row) })
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *httpClassifier) call(ctx context.Context, row []float64) (string, error) {
	b, err := json.Marshal(predictReq{Instances: [][]float64{row}})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("classifier status %d: %s", resp.StatusCode, string(msg))
	}
	var out predictResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Predictions) == 0 {
		return "", errors.New("classifier returned no predictions")
	}
	return label(out.Predictions[0])
}

// label accepts a string or numeric class; model servers emit either.
func label(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return s, nil
		}
		return "", errors.New("classifier returned an empty label")
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("unsupported prediction %s", string(raw))
}

// LoadFeatureOrder reads the column order the model was trained with, either a
// JSON array of names or one name per line. A missing file yields nil, nil.
func LoadFeatureOrder(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '[' {
		var names []string
		if err := json.Unmarshal(raw, &names); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return names, nil
	}
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, sc.Err()
}
