package version

// Version 项目版本号
const Version = "0.3.0"

// ProjectName 项目名称
const ProjectName = "KiroUA"

// GetVersionInfo 获取完整版本信息
func GetVersionInfo() string {
	return ProjectName + " v" + Version
}
