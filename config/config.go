package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Unprocessable-upload policies for a compressed upload field.
const (
	PolicyReject   = "reject"
	PolicyStoreRaw = "store_raw"
)

// Storage backends.
const (
	StorageFS    = "fs"
	StorageMinIO = "minio"
)

type (
	APP struct {
		Name      string
		Host      string
		Port      string
		Env       string
		JWTSecret string
	}
	DB struct {
		User     string
		Password string
		Name     string
		Host     string
		Port     string
	}
	Storage struct {
		Backend string
		Root    string
		BaseURL string
	}
	S3 struct {
		Endpoint        string
		Region          string
		AccessKeyID     string
		SecretAccessKey string
		BucketUploads   string
		UseSSL          bool
		PublicURL       string
	}
	MQ struct {
		User         string
		Password     string
		Vhost        string
		Host         string
		AmqpPort     string
		Exchange     string
		ExchangeType string
		QueueName    string
	}
	Redis struct {
		Addr       string
		Password   string
		DB         int
		ProfileTTL time.Duration
	}
	Chat struct {
		APIKey       string
		BaseURL      string
		Model        string
		HistoryLimit int
	}
	Log struct {
		Level      string
		Format     string
		Output     string
		File       string
		MaxSizeMB  int
		MaxBackups int
		MaxAgeDays int
	}
	Upload struct {
		AvatarPath              string
		AvatarUnprocessable     string
		SkillPhotoPath          string
		SkillPhotoUnprocessable string
	}

	Config struct {
		App     APP
		DB      DB
		Storage Storage
		S3      S3
		MQ      MQ
		Redis   Redis
		Chat    Chat
		Log     Log
		Upload  Upload
	}
)

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return def
	}
	return v
}

func Load() Config {
	app := APP{
		Name:      getEnv("SERVICE_NAME", "portfolioapi"),
		Host:      getEnv("SERVICE_HOST", ""),
		Port:      getEnv("SERVICE_PORT", "8080"),
		Env:       getEnv("SERVICE_ENV", ""),
		JWTSecret: getEnv("SERVICE_JWT_SECRET", ""),
	}
	db := DB{
		User:     getEnv("POSTGRES_USER", ""),
		Password: getEnv("POSTGRES_PASSWORD", ""),
		Name:     getEnv("POSTGRES_DB", ""),
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", ""),
	}
	storage := Storage{
		Backend: getEnv("STORAGE_BACKEND", StorageFS),
		Root:    getEnv("STORAGE_ROOT", "media"),
		BaseURL: getEnv("STORAGE_BASE_URL", "/media/"),
	}
	s3 := S3{
		Endpoint:        getEnv("S3_ENDPOINT", ""),
		Region:          getEnv("S3_REGION", ""),
		AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		BucketUploads:   getEnv("S3_BUCKET_UPLOADS", ""),
		UseSSL:          getEnvBool("S3_USE_SSL", true),
		PublicURL:       getEnv("S3_PUBLIC_URL", ""),
	}
	mq := MQ{
		User:         getEnv("RABBITMQ_USER", ""),
		Password:     getEnv("RABBITMQ_PASSWORD", ""),
		Vhost:        getEnv("RABBITMQ_VHOST", ""),
		Host:         getEnv("RABBITMQ_HOST", ""),
		AmqpPort:     getEnv("RABBITMQ_AMQP_PORT", ""),
		Exchange:     getEnv("RABBITMQ_EXCHANGE", "portfolio"),
		ExchangeType: getEnv("RABBITMQ_EXCHANGE_TYPE", "direct"),
		QueueName:    getEnv("RABBITMQ_QUEUE_NAME", "portfolio.events"),
	}
	redis := Redis{
		Addr:       getEnv("REDIS_ADDR", ""),
		Password:   getEnv("REDIS_PASSWORD", ""),
		DB:         getEnvInt("REDIS_DB", 0),
		ProfileTTL: getEnvDuration("REDIS_PROFILE_TTL", 5*time.Minute),
	}
	chat := Chat{
		APIKey:       getEnv("CHAT_API_KEY", ""),
		BaseURL:      getEnv("CHAT_BASE_URL", ""),
		Model:        getEnv("CHAT_MODEL", "gemini-2.5-flash"),
		HistoryLimit: getEnvInt("CHAT_HISTORY_LIMIT", 10),
	}
	lg := Log{
		Level:      getEnv("LOG_LEVEL", "info"),
		Format:     getEnv("LOG_FORMAT", "json"),
		Output:     getEnv("LOG_OUTPUT", "console"),
		File:       getEnv("LOG_FILE", "logs/portfolioapi.log"),
		MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 100),
		MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 5),
		MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 30),
	}
	upload := Upload{
		AvatarPath:              getEnv("UPLOAD_AVATAR_PATH", "avatars"),
		AvatarUnprocessable:     getEnv("UPLOAD_AVATAR_UNPROCESSABLE", PolicyReject),
		SkillPhotoPath:          getEnv("UPLOAD_SKILL_PHOTO_PATH", "skill_photos"),
		SkillPhotoUnprocessable: getEnv("UPLOAD_SKILL_PHOTO_UNPROCESSABLE", PolicyStoreRaw),
	}

	return Config{
		App:     app,
		DB:      db,
		Storage: storage,
		S3:      s3,
		MQ:      mq,
		Redis:   redis,
		Chat:    chat,
		Log:     lg,
		Upload:  upload,
	}
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
	), nil
}

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}

// ValidatePolicy reports whether p is a known unprocessable-upload policy.
func ValidatePolicy(p string) error {
	switch p {
	case PolicyReject, PolicyStoreRaw:
		return nil
	}
	return fmt.Errorf("unknown unprocessable upload policy %q", p)
}
