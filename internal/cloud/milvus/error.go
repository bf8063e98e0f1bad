package milvus

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// ServerError is a Milvus server error
type ServerError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (se ServerError) Error() string {
	return se.Message
}

// parseResponseError attempts to read a server error
// from the provided *http.Response
func parseResponseError(res *http.Response) error {
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	payload := strings.TrimSpace(string(body))
	if payload == "" {
		return errors.New(res.Status)
	}
	return errors.New(payload)
}
