package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type optimizeResult struct {
	Report
	Detail string `json:"detail"`
}

// handler serves a Lambda function URL. The body carries the roster in the
// JSON roster format plus optional weight overrides:
//
//	{"roster": {"people": [...]}, "config": {"gradingCost": 5}}
func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}
	if !gjson.Valid(body) {
		return errResp(400, "invalid JSON body")
	}
	req := gjson.Parse(body)
	rosterDoc := req.Get("roster")
	if !rosterDoc.Exists() {
		return errResp(400, "missing roster field")
	}

	cfg := applyConfigJSON(req.Get("config"), DefaultConfig())
	if err := cfg.Validate(); err != nil {
		return errResp(400, err.Error())
	}
	entries, err := parseRosterJSON(rosterDoc.Raw)
	if err != nil {
		return errResp(400, err.Error())
	}
	roster, err := resolveRoster(entries, cfg.MaxTeamSize)
	if err != nil {
		return errResp(400, err.Error())
	}

	log, err := newLogger(false)
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()
	opt, err := NewOptimizer(roster, cfg, WithLogger(log))
	if err != nil {
		return errResp(400, err.Error())
	}
	res := opt.Optimize(ctx)

	resp := optimizeResult{Report: NewReport(res, roster), Detail: FormatResult(res, roster)}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
