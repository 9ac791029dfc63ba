package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort string
	Debug      bool

	// 上传大小上限（字节）
	MaxUploadBytes int64

	// 静态资源目录（站点 logo 等），为空则不挂载
	AssetsDir string

	// 坐标偏移随机种子，0 表示每次按时间取种（生产默认）
	JitterSeed int64
}

func Load() (*Config, error) {
	// 尝试加载 .env 文件（可选）
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     getEnv("PORT", "4000"),
		Debug:          getEnvBool("DEBUG", false),
		MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", 32<<20),
		AssetsDir:      getEnv("ASSETS_DIR", ""),
		JitterSeed:     getEnvInt64("JITTER_SEED", 0),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		n, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return n
		}
	}
	return defaultValue
}
