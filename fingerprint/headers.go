package fingerprint

import (
	"fmt"
	"net/http"
)

// 身份请求头名称
const (
	HeaderAgentMode     = "x-amzn-kiro-agent-mode"
	HeaderXAmzUserAgent = "x-amz-user-agent"
	HeaderUserAgent     = "User-Agent"
)

// IdentityHeaders 一次请求使用的身份头
type IdentityHeaders struct {
	AgentMode     string `json:"agent_mode"`
	XAmzUserAgent string `json:"x_amz_user_agent"`
	UserAgent     string `json:"user_agent"`
}

// BuildIdentityHeaders 构建随机化的身份头
// kiroVersion 原样使用，不做校验；OS 版本、运行时版本、提交哈希每次调用各抽取一次，
// 两个 User-Agent 共用同一个提交哈希
func (g *Generator) BuildIdentityHeaders(kiroVersion string) IdentityHeaders {
	osVersion := g.OSVersion()
	runtimeVersion := g.RuntimeVersion()
	hash := g.CommitHash()

	signature := fmt.Sprintf("KiroIDE-%s-%s", kiroVersion, hash)

	return IdentityHeaders{
		AgentMode:     AgentMode,
		XAmzUserAgent: fmt.Sprintf("aws-sdk-js/%s %s", SDKVersion, signature),
		UserAgent: fmt.Sprintf("aws-sdk-js/%s ua/%s os/%s lang/js md/nodejs#%s api/codewhispererstreaming#%s m/E %s",
			SDKVersion, UAProtocol, osVersion, runtimeVersion, SDKVersion, signature),
	}
}

func BuildIdentityHeaders(kiroVersion string) IdentityHeaders {
	return defaultGenerator.BuildIdentityHeaders(kiroVersion)
}

// Apply 将身份头写入 h
func (ih IdentityHeaders) Apply(h http.Header) {
	h.Set(HeaderAgentMode, ih.AgentMode)
	h.Set(HeaderXAmzUserAgent, ih.XAmzUserAgent)
	h.Set(HeaderUserAgent, ih.UserAgent)
}
