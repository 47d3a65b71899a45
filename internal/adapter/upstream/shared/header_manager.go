package shared

import (
	"fmt"
	"net/http"
	"time"

	"kiroua/config"
	"kiroua/fingerprint"
	"kiroua/utils"

	"github.com/google/uuid"
)

const (
	headerInvocationID = "amz-sdk-invocation-id"
	headerSDKRequest   = "amz-sdk-request"
	headerTraceID      = "X-Amzn-Trace-Id"

	sdkRequestValue = "attempt=1; max=1"
)

type Options struct {
	KiroVersion string
	Generator   *fingerprint.Generator
	Stealth     bool
}

// HeaderManager 为发往 CodeWhisperer 的请求写入身份头
// 每次 Apply 重新抽取一组身份字段，不在请求之间缓存
type HeaderManager struct {
	kiroVersion string
	generator   *fingerprint.Generator
	stealth     bool
}

func NewHeaderManager(opts Options) *HeaderManager {
	if opts.KiroVersion == "" {
		opts.KiroVersion = config.DefaultKiroVersion
	}
	if opts.Generator == nil {
		opts.Generator = fingerprint.Default()
	}
	return &HeaderManager{
		kiroVersion: opts.KiroVersion,
		generator:   opts.Generator,
		stealth:     opts.Stealth,
	}
}

func (m *HeaderManager) KiroVersion() string {
	return m.kiroVersion
}

func (m *HeaderManager) Stealth() bool {
	return m.stealth
}

// Apply 应用请求头，返回本次使用的身份头
func (m *HeaderManager) Apply(req *http.Request, isStream bool) fingerprint.IdentityHeaders {
	identity := m.generator.BuildIdentityHeaders(m.kiroVersion)
	identity.Apply(req.Header)

	req.Header.Set("Content-Type", "application/json")
	if isStream {
		req.Header.Set("Accept", "*/*")
	} else {
		req.Header.Set("Accept", "application/json")
	}

	if m.stealth {
		req.Header.Set("Accept-Encoding", utils.ChooseString(config.AcceptEncodings))
		req.Header.Set("Accept-Language", utils.ChooseString(config.AcceptLanguages))
	} else {
		req.Header.Set("Accept-Encoding", config.DefaultAcceptEncoding)
		req.Header.Set("Accept-Language", config.DefaultAcceptLanguage)
	}

	req.Header.Set(headerInvocationID, uuid.NewString())
	req.Header.Set(headerSDKRequest, sdkRequestValue)
	req.Header.Set(headerTraceID, buildTraceID(time.Now()))

	return identity
}

// buildTraceID 生成 X-Ray 格式的 trace id
func buildTraceID(now time.Time) string {
	return fmt.Sprintf("Root=1-%08x-%s;Parent=%s;Sampled=%d",
		now.Unix(), utils.RandomHex(24), utils.RandomHex(16), utils.RandomIntBetween(0, 1))
}
