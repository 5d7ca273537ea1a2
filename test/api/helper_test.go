package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Response wraps the {status, message, data} envelope every endpoint
// returns.
type Response struct {
	StatusCode int
	Status     string          `json:"status"`
	Message    string          `json:"message,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}

func (r Response) IsSuccess() bool {
	return r.Status == "success"
}

func (r Response) GetString(key string) string {
	var data map[string]interface{}
	if err := json.Unmarshal(r.Data, &data); err != nil {
		return ""
	}
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// DataList decodes the data payload as a JSON array.
func (r Response) DataList() []map[string]interface{} {
	var list []map[string]interface{}
	json.Unmarshal(r.Data, &list)
	return list
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func makeRequest(method, path string, body interface{}, token string) Response {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return Response{Status: "error", Message: fmt.Sprintf("Failed to marshal request body: %v", err)}
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, cfg.BaseURL+"/api/v1"+path, reqBody)
	if err != nil {
		return Response{Status: "error", Message: fmt.Sprintf("Failed to create request: %v", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Do(req)
	if err != nil {
		return Response{Status: "error", Message: fmt.Sprintf("Request failed: %v", err)}
	}
	defer resp.Body.Close()

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return Response{Status: "error", Message: fmt.Sprintf("Failed to decode response: %v", err)}
	}
	response.StatusCode = resp.StatusCode

	return response
}
