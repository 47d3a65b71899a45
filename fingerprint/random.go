package fingerprint

import (
	"kiroua/logger"
	"kiroua/utils"
)

// Range 闭区间 [Min, Max]，Min >= Max 时退化为 Min
type Range struct {
	Min uint32 `json:"min"`
	Max uint32 `json:"max"`
}

// Draw 用指定生成器在区间内抽取一个值
func (r Range) Draw(g *Generator) uint32 {
	return g.RandomInt(r.Min, r.Max)
}

// Generator 组合随机源生成各类身份字段，本身不持有可变状态
type Generator struct {
	src utils.RandomSource
}

// New 基于给定随机源创建生成器，src 为 nil 时使用 utils.DefaultSource
func New(src utils.RandomSource) *Generator {
	if src == nil {
		src = utils.DefaultSource
	}
	return &Generator{src: src}
}

var defaultGenerator = New(nil)

// Default 返回使用进程级随机源的生成器
func Default() *Generator {
	return defaultGenerator
}

// RandomInt 返回 [min, max] 内均匀分布的整数；min >= max 时直接返回 min
func (g *Generator) RandomInt(min, max uint32) uint32 {
	if min >= max {
		if min > max && logger.IsDebugEnabled() {
			logger.Debug("退化随机区间",
				logger.Uint32("min", min),
				logger.Uint32("max", max))
		}
		return min
	}
	span := int64(max-min) + 1
	return min + uint32(g.src.Int63n(span))
}

// RandomHexDigit 返回一个小写十六进制字符
func (g *Generator) RandomHexDigit() byte {
	return hexAlphabet[g.src.Int63n(int64(len(hexAlphabet)))]
}
