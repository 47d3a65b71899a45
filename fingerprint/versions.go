package fingerprint

import "strconv"

// CommitHash 生成 40 位小写十六进制提交哈希
func (g *Generator) CommitHash() string {
	var buf [CommitHashLength]byte
	for i := range buf {
		buf[i] = g.RandomHexDigit()
	}
	return string(buf[:])
}

// OSVersion 生成 Electron 宿主 OS 版本，范围 13.7.x.x-electron.0 ~ 13.9.x.x-electron.0
func (g *Generator) OSVersion() string {
	minor := osMinorRange.Draw(g)
	patch := osPatchRange.Draw(g)
	build := osBuildRange.Draw(g)
	return dotted(osMajor, minor, patch, build) + osSuffix
}

// RuntimeVersion 生成 Node/Chromium 版本，范围 138.0.7200.x ~ 138.0.7210.x
func (g *Generator) RuntimeVersion() string {
	patch := runtimePatchRange.Draw(g)
	build := runtimeBuildRange.Draw(g)
	return dotted(runtimeMajor, runtimeMinor, patch, build)
}

func dotted(parts ...uint32) string {
	b := make([]byte, 0, 24)
	for i, p := range parts {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(p), 10)
	}
	return string(b)
}

func GenerateCommitHash() string {
	return defaultGenerator.CommitHash()
}

func GenerateOSVersion() string {
	return defaultGenerator.OSVersion()
}

func GenerateRuntimeVersion() string {
	return defaultGenerator.RuntimeVersion()
}
