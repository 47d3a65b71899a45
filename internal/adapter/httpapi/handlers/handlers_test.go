package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kiroua/fingerprint"
	"kiroua/internal/adapter/upstream/shared"
	"kiroua/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(kiroVersion string) *gin.Engine {
	gen := fingerprint.New(utils.NewSeededSource(1))
	h := New(Options{
		Generator: gen,
		HeaderManager: shared.NewHeaderManager(shared.Options{
			KiroVersion: kiroVersion,
			Generator:   gen,
		}),
	})
	r := gin.New()
	h.Register(r)
	return r
}

func doGet(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHealth(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleIdentity_UsesConfiguredVersion(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/identity")
	require.Equal(t, http.StatusOK, w.Code)

	var identity fingerprint.IdentityHeaders
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Equal(t, "spec", identity.AgentMode)
	assert.True(t, strings.HasPrefix(identity.XAmzUserAgent, "aws-sdk-js/1.0.18 KiroIDE-0.8.0-"))
	assert.Contains(t, identity.UserAgent, "-electron.0")
	assert.Contains(t, identity.UserAgent, "md/nodejs#138.0.")
}

func TestHandleIdentity_QueryOverridesVersion(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/identity?kiro_version=0.9.2")
	require.Equal(t, http.StatusOK, w.Code)

	var identity fingerprint.IdentityHeaders
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &identity))
	assert.Contains(t, identity.XAmzUserAgent, "KiroIDE-0.9.2-")
	assert.Contains(t, identity.UserAgent, "KiroIDE-0.9.2-")
}

func TestHandleIdentity_EmptyVersionAccepted(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/identity?kiro_version=")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "KiroIDE--")
}

func TestHandleIdentityBatch(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/identity/batch?count=5")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		KiroVersion string                        `json:"kiro_version"`
		Count       int                           `json:"count"`
		Items       []fingerprint.IdentityHeaders `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0.8.0", resp.KiroVersion)
	assert.Equal(t, 5, resp.Count)
	require.Len(t, resp.Items, 5)

	seen := make(map[string]bool)
	for _, item := range resp.Items {
		assert.False(t, seen[item.UserAgent])
		seen[item.UserAgent] = true
	}
}

func TestHandleIdentityBatch_InvalidCount(t *testing.T) {
	r := newTestRouter("0.8.0")
	for _, q := range []string{"0", "-1", "101", "abc"} {
		w := doGet(t, r, "/v1/identity/batch?count="+q)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Contains(t, w.Body.String(), `"code":"bad_request"`, q)
	}
}

func TestHandleUpstreamRequest(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/identity/request?stream=true")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Method  string            `json:"method"`
		URL     string            `json:"url"`
		Stream  bool              `json:"stream"`
		Headers map[string]string `json:"headers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.MethodPost, resp.Method)
	assert.Equal(t, "https://q.us-east-1.amazonaws.com/generateAssistantResponse", resp.URL)
	assert.True(t, resp.Stream)

	assert.Equal(t, "spec", resp.Headers["X-Amzn-Kiro-Agent-Mode"])
	assert.Contains(t, resp.Headers["X-Amz-User-Agent"], "KiroIDE-0.8.0-")
	assert.Contains(t, resp.Headers["User-Agent"], "api/codewhispererstreaming#1.0.18")
	assert.Equal(t, "*/*", resp.Headers["Accept"])
	assert.NotEmpty(t, resp.Headers["Amz-Sdk-Invocation-Id"])
	assert.NotEmpty(t, resp.Headers["X-Amzn-Trace-Id"])
}

func TestHandleUpstreamRequest_InvalidStream(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/identity/request?stream=maybe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlePolicy(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/policy")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		SDKVersion string                    `json:"sdk_version"`
		AgentMode  string                    `json:"agent_mode"`
		Fields     []fingerprint.FieldPolicy `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.0.18", resp.SDKVersion)
	assert.Equal(t, "spec", resp.AgentMode)
	assert.Len(t, resp.Fields, len(fingerprint.FieldPolicies))
}

func TestHandleGetSystemInfo(t *testing.T) {
	w := doGet(t, newTestRouter("0.7.5"), "/api/system/info")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "0.7.5", resp["kiro_version"])
	assert.Equal(t, false, resp["stealth"])
}

func TestNoRoute(t *testing.T) {
	w := doGet(t, newTestRouter("0.8.0"), "/v1/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"not_found"`)
}
