package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

var errMissingResult = errors.New("rpc response has no result")

// call posts a JSON-RPC 2.0 request to <baseURL>/json_rpc and decodes the
// result into out.
func (p *Provider) call(ctx context.Context, method string, params, out any) error {
	buf := p.buffers.Get()
	defer p.buffers.Put(buf)

	if err := json.NewEncoder(buf).Encode(request{
		JSONRPC: "2.0",
		ID:      "0",
		Method:  method,
		Params:  params,
	}); err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	url := strings.TrimRight(p.baseURL, "/") + "/json_rpc"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}

	if r.Error != nil {
		return fmt.Errorf("%s: %w", method, r.Error)
	}

	if len(r.Result) == 0 || string(r.Result) == "null" {
		return fmt.Errorf("%s: %w", method, errMissingResult)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(r.Result, out); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}

	return nil
}
