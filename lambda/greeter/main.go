package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

var (
	// ErrMissingCommand is returned when the payload has no "command" key, or its value is null.
	ErrMissingCommand = errors.New("request: command is required")
	// ErrDuplicateCommand is returned when "command" appears more than once.
	ErrDuplicateCommand = errors.New("request: duplicate command field")
)

type Request struct {
	Command string `json:"command"`
}

// UnmarshalJSON matches the "command" key exactly. encoding/json would accept
// "Command" or "COMMAND" and let a repeated key overwrite the first.
func (r *Request) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if keyCount(b, "command") > 1 {
		return ErrDuplicateCommand
	}
	raw, ok := fields["command"]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return ErrMissingCommand
	}
	var command string
	if err := json.Unmarshal(raw, &command); err != nil {
		return fmt.Errorf("decode request: command: %w", err)
	}
	r.Command = command
	return nil
}

// keyCount counts top-level occurrences of key in a JSON object; b must already be valid JSON.
func keyCount(b []byte, key string) int {
	dec := json.NewDecoder(bytes.NewReader(b))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return 0
	}
	n := 0
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return n
		}
		if k, _ := tok.(string); k == key {
			n++
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return n
		}
	}
	return n
}

type Response struct {
	Message string `json:"message"`
}

func HandleRequest(ctx context.Context, req Request) (Response, error) {
	log.Printf("info: greeting request_id=%s command_bytes=%d", requestID(ctx), len(req.Command))
	return Response{Message: fmt.Sprintf("Hello from Lambda! You said: %s", req.Command)}, nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	// Not running under the Lambda runtime
	return "local-" + uuid.New().String()
}

func main() {
	// CloudWatch timestamps every line already
	log.SetFlags(0)
	lambda.Start(HandleRequest)
}
