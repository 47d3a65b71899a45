// Package fingerprint 生成随机化的 Kiro IDE 客户端身份请求头。
//
// 保守随机化策略：SDK 版本、Kiro IDE 版本、agent mode 等产品标识字段固定不变，
// 只有描述运行环境的字段（OS 版本、Node/Chromium 版本、提交哈希）在每次调用时重新抽取。
// 哪些字段随机、随机范围是多少，统一记录在 FieldPolicies 中；修改范围属于策略变更。
package fingerprint

// 固定字段，只能通过重新发布修改
const (
	// AgentMode x-amzn-kiro-agent-mode 的取值
	AgentMode = "spec"

	// SDKVersion aws-sdk-js 版本，同时作为 api/codewhispererstreaming 通道版本
	SDKVersion = "1.0.18"

	// UAProtocol ua/ 段的协议版本
	UAProtocol = "2.1"

	// CommitHashLength KiroIDE 提交哈希长度
	CommitHashLength = 40

	hexAlphabet = "0123456789abcdef"
)

// Electron 宿主 OS 版本: 13.{minor}.{patch}.{build}-electron.0
const (
	osMajor  = 13
	osSuffix = "-electron.0"
)

// Node/Chromium 版本: 138.0.{patch}.{build}
const (
	runtimeMajor = 138
	runtimeMinor = 0
)

var (
	osMinorRange = Range{Min: 7, Max: 9}
	osPatchRange = Range{Min: 0, Max: 99}
	osBuildRange = Range{Min: 0, Max: 299}

	runtimePatchRange = Range{Min: 7200, Max: 7210}
	runtimeBuildRange = Range{Min: 0, Max: 999}
)

// FieldSource 字段取值来源
type FieldSource string

const (
	SourceConstant FieldSource = "constant"
	SourceCaller   FieldSource = "caller"
	SourceRandom   FieldSource = "random"
)

// FieldPolicy 单个身份字段的随机化策略
type FieldPolicy struct {
	Name       string      `json:"name"`
	Source     FieldSource `json:"source"`
	Randomized bool        `json:"randomized"`
	Value      string      `json:"value,omitempty"`
	Range      *Range      `json:"range,omitempty"`
}

// FieldPolicies 全部身份字段的随机化策略表
var FieldPolicies = []FieldPolicy{
	{Name: "agent_mode", Source: SourceConstant, Value: AgentMode},
	{Name: "sdk_version", Source: SourceConstant, Value: SDKVersion},
	{Name: "ua_protocol", Source: SourceConstant, Value: UAProtocol},
	{Name: "kiro_version", Source: SourceCaller},
	{Name: "os_minor", Source: SourceRandom, Randomized: true, Range: &osMinorRange},
	{Name: "os_patch", Source: SourceRandom, Randomized: true, Range: &osPatchRange},
	{Name: "os_build", Source: SourceRandom, Randomized: true, Range: &osBuildRange},
	{Name: "runtime_patch", Source: SourceRandom, Randomized: true, Range: &runtimePatchRange},
	{Name: "runtime_build", Source: SourceRandom, Randomized: true, Range: &runtimeBuildRange},
	{Name: "commit_hash", Source: SourceRandom, Randomized: true, Value: "40 hex digits"},
}

// Policy 按字段名查找策略
func Policy(name string) (FieldPolicy, bool) {
	for _, p := range FieldPolicies {
		if p.Name == name {
			return p, true
		}
	}
	return FieldPolicy{}, false
}
