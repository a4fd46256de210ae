package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairRequest = `{
	"roster": {"people": [
		{"name": "A", "size": 1},
		{"name": "B", "size": 2, "friends": ["C"]},
		{"name": "C", "size": 2, "friends": ["B"]}
	]},
	"config": {"gradingCost": 1, "foeCost": 1, "friendCost": 1}
}`

func TestHandler(t *testing.T) {
	for name, event := range map[string]events.LambdaFunctionURLRequest{
		"plain":  {Body: pairRequest},
		"base64": {Body: base64.StdEncoding.EncodeToString([]byte(pairRequest)), IsBase64Encoded: true},
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := handler(context.Background(), event)
			require.NoError(t, err)
			require.Equal(t, 200, resp.StatusCode, resp.Body)
			assert.Equal(t, "application/json", resp.Headers["Content-Type"])

			var got optimizeResult
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
			assert.Equal(t, 2, got.Cost)
			assert.Equal(t, 2, got.NumTeams)
			assert.Equal(t, [][]string{{"B", "C"}, {"A"}}, got.Teams)
			assert.Equal(t, "B C\nA\n2\n", got.Detail)
			assert.NotEmpty(t, got.RunID)
		})
	}
}

func TestHandlerBareArrayDefaults(t *testing.T) {
	body := `{"roster": [{"name": "solo", "size": 1}]}`
	resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{Body: body})
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode, resp.Body)

	var got optimizeResult
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &got))
	assert.Zero(t, got.Cost)
	assert.Equal(t, [][]string{{"solo"}}, got.Teams)
}

func TestHandlerErrors(t *testing.T) {
	tests := []struct {
		name  string
		event events.LambdaFunctionURLRequest
		msg   string
	}{
		{"bad base64", events.LambdaFunctionURLRequest{Body: "%%%", IsBase64Encoded: true}, "invalid base64 body"},
		{"bad json", events.LambdaFunctionURLRequest{Body: "{"}, "invalid JSON body"},
		{"no roster", events.LambdaFunctionURLRequest{Body: `{"config":{}}`}, "missing roster field"},
		{"bad config", events.LambdaFunctionURLRequest{Body: `{"roster":[{"name":"a","size":1}],"config":{"foeCost":-1}}`}, "foe cost -1"},
		{"bad roster", events.LambdaFunctionURLRequest{Body: `{"roster":{"people":7}}`}, "no people array"},
		{"unknown friend", events.LambdaFunctionURLRequest{Body: `{"roster":[{"name":"a","size":1,"friends":["b"]}]}`}, `"a" lists "b"`},
		{"empty roster", events.LambdaFunctionURLRequest{Body: `{"roster":[]}`}, "roster is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := handler(context.Background(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
			assert.Contains(t, body["error"], tt.msg)
		})
	}
}
