package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/viper"
)

// apiError is the twirp error envelope returned by the server.
type apiError struct {
	Code string            `json:"code"`
	Msg  string            `json:"msg"`
	Meta map[string]string `json:"meta,omitempty"`
}

func (e *apiError) Error() string {
	if p, ok := e.Meta["provider"]; ok {
		return fmt.Sprintf("%s: %s (provider %s)", e.Code, e.Msg, p)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func getClient() *resty.Client {
	return resty.New().
		SetBaseURL(strings.TrimRight(viper.GetString("endpoint"), "/") + "/api").
		SetHeader("Content-Type", "application/json")
}

func newRequest(ctx context.Context) *resty.Request {
	return getClient().R().SetContext(ctx).SetError(&apiError{})
}

// execute sends r. Path placeholders like {id} are filled from the
// request's path params, which resty escapes.
func execute(r *resty.Request, method, path string) error {
	resp, err := r.Execute(method, path)
	if err != nil {
		return err
	}

	if resp.IsError() {
		if apiErr, ok := resp.Error().(*apiError); ok && apiErr.Code != "" {
			return apiErr
		}

		return fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	return nil
}
