package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
)

// Level 日志级别
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO",
	WARN:  "WARN",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// Field 日志字段
type Field struct {
	Key   string
	Value any
}

// Logger 输出单行 JSON 的结构化日志器
type Logger struct {
	level        int64 // 原子读写
	logger       *log.Logger
	logFile      *os.File
	enableCaller bool
	callerSkip   int
}

var defaultLogger *Logger

func init() {
	defaultLogger = createLogger()
}

func envTrue(key string) bool {
	v := os.Getenv(key)
	return v == "true" || v == "1"
}

// createLogger 根据环境变量构建 logger
func createLogger() *Logger {
	l := &Logger{
		level:      int64(INFO),
		callerSkip: 3,
	}

	if envTrue("DEBUG") {
		l.level = int64(DEBUG)
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := ParseLevel(lvl); err == nil {
			l.level = int64(parsed)
		}
	}

	// 调试级别默认带上调用位置
	l.enableCaller = envTrue("LOG_ENABLE_CALLER") || Level(l.level) == DEBUG
	if skip, err := strconv.Atoi(os.Getenv("LOG_CALLER_SKIP")); err == nil && skip > 0 {
		l.callerSkip = skip
	}

	writers := []io.Writer{os.Stdout}
	if path := os.Getenv("LOG_FILE"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "无法打开日志文件 %s: %v\n", path, err)
		} else {
			l.logFile = file
			if os.Getenv("LOG_CONSOLE") == "false" {
				writers = []io.Writer{file}
			} else {
				writers = append(writers, file)
			}
		}
	}

	l.logger = log.New(io.MultiWriter(writers...), "", 0)
	return l
}

// ParseLevel 从字符串解析日志级别
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	default:
		return INFO, fmt.Errorf("unknown log level: %s", s)
	}
}

func (l *Logger) shouldLog(level Level) bool {
	return atomic.LoadInt64(&l.level) <= int64(level)
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	if !l.shouldLog(level) {
		return
	}

	var b strings.Builder

	// 字段顺序固定：timestamp > level > file > func > message > 其他字段（按键排序）
	b.WriteString(`{"timestamp":"`)
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000Z07:00"))
	b.WriteString(`","level":"`)
	b.WriteString(level.String())
	b.WriteString(`"`)

	if l.enableCaller {
		if pc, file, line, ok := runtime.Caller(l.callerSkip); ok {
			if idx := strings.LastIndex(file, "/"); idx >= 0 {
				file = file[idx+1:]
			}
			b.WriteString(`,"file":"`)
			b.WriteString(file)
			b.WriteString(":")
			b.WriteString(strconv.Itoa(line))
			b.WriteString(`"`)
			if fn := runtime.FuncForPC(pc); fn != nil {
				name := fn.Name()
				if dot := strings.LastIndex(name, "."); dot >= 0 && dot < len(name)-1 {
					name = name[dot+1:]
				}
				b.WriteString(`,"func":"`)
				b.WriteString(name)
				b.WriteString(`"`)
			}
		}
	}

	b.WriteString(`,"message":`)
	if escaped, err := sonic.MarshalString(msg); err == nil {
		b.WriteString(escaped)
	} else {
		b.WriteString(`""`)
	}

	extra := make(map[string]any, len(fields))
	for _, f := range fields {
		switch f.Key {
		case "timestamp", "level", "message", "file", "func":
			continue
		}
		extra[f.Key] = f.Value
	}
	if len(extra) > 0 {
		keys := make([]string, 0, len(extra))
		for k := range extra {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(`,"`)
			b.WriteString(k)
			b.WriteString(`":`)
			if data, err := sonic.Marshal(extra[k]); err == nil {
				b.Write(data)
			} else {
				b.WriteString(`null`)
			}
		}
	}
	b.WriteString(`}`)

	l.logger.Println(b.String())

	if level == FATAL {
		os.Exit(1)
	}
}

// SetLevel 设置默认 logger 的级别
func SetLevel(level Level) {
	atomic.StoreInt64(&defaultLogger.level, int64(level))
}

// IsDebugEnabled 默认 logger 是否输出 DEBUG 日志
func IsDebugEnabled() bool {
	return defaultLogger.shouldLog(DEBUG)
}

// SetOutput 替换默认 logger 的输出目标，主要用于测试
func SetOutput(w io.Writer) {
	defaultLogger.logger.SetOutput(w)
}

func Debug(msg string, fields ...Field) {
	defaultLogger.log(DEBUG, msg, fields)
}

func Info(msg string, fields ...Field) {
	defaultLogger.log(INFO, msg, fields)
}

func Warn(msg string, fields ...Field) {
	defaultLogger.log(WARN, msg, fields)
}

func Error(msg string, fields ...Field) {
	defaultLogger.log(ERROR, msg, fields)
}

func Fatal(msg string, fields ...Field) {
	defaultLogger.log(FATAL, msg, fields)
}

func String(key, val string) Field {
	return Field{Key: key, Value: val}
}

func Int(key string, val int) Field {
	return Field{Key: key, Value: val}
}

func Int64(key string, val int64) Field {
	return Field{Key: key, Value: val}
}

func Uint32(key string, val uint32) Field {
	return Field{Key: key, Value: val}
}

func Bool(key string, val bool) Field {
	return Field{Key: key, Value: val}
}

func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}

func Any(key string, val any) Field {
	return Field{Key: key, Value: val}
}

// Reinitialize 重新读取环境变量构建默认 logger（.env 加载之后调用）
func Reinitialize() {
	if defaultLogger.logFile != nil {
		defaultLogger.logFile.Close()
	}
	defaultLogger = createLogger()
}
