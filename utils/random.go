package utils

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	mathrand "math/rand"
	"sync"
	"time"
)

// RandomSource 随机数来源
// Int63n 返回 [0, n) 内的均匀分布整数，共享使用时必须并发安全
type RandomSource interface {
	Int63n(n int64) int64
}

// DefaultSource 进程级默认随机源（crypto/rand，失败时回退）
var DefaultSource RandomSource = NewCryptoSource()

// CryptoSource 基于 crypto/rand 的随机源
// crypto/rand 出错时回退到加锁的 math/rand，错误不向上层暴露
type CryptoSource struct {
	fallback     *mathrand.Rand
	fallbackLock sync.Mutex
}

func NewCryptoSource() *CryptoSource {
	return &CryptoSource{
		fallback: mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
	}
}

func (s *CryptoSource) Int63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		s.fallbackLock.Lock()
		defer s.fallbackLock.Unlock()
		return s.fallback.Int63n(n)
	}
	return v.Int64()
}

func (s *CryptoSource) read(buf []byte) {
	if _, err := rand.Read(buf); err != nil {
		s.fallbackLock.Lock()
		s.fallback.Read(buf)
		s.fallbackLock.Unlock()
	}
}

// SeededSource 固定种子的随机源，用于测试与可复现调试
type SeededSource struct {
	mu  sync.Mutex
	rng *mathrand.Rand
}

func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: mathrand.New(mathrand.NewSource(seed))}
}

func (s *SeededSource) Int63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Int63n(n)
}

// RandomIntFrom 从指定随机源取 [min, max] 内的整数，min >= max 时直接返回 min
func RandomIntFrom(src RandomSource, min, max int64) int64 {
	if min >= max {
		return min
	}
	return min + src.Int63n(max-min+1)
}

func RandomIntBetween(min, max int64) int64 {
	return RandomIntFrom(DefaultSource, min, max)
}

func RandomBool() bool {
	return RandomIntBetween(0, 1) == 1
}

// RandomHex 生成指定长度的小写十六进制字符串
func RandomHex(length int) string {
	if length <= 0 {
		return ""
	}
	bytes := make([]byte, (length+1)/2)
	if cs, ok := DefaultSource.(*CryptoSource); ok {
		cs.read(bytes)
	} else {
		for i := range bytes {
			bytes[i] = byte(DefaultSource.Int63n(256))
		}
	}
	return hex.EncodeToString(bytes)[:length]
}

// ChooseString 从候选列表中随机选择一个，空列表返回空串
func ChooseString(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[RandomIntBetween(0, int64(len(options)-1))]
}
