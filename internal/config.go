package internal

type Config struct {
	BadgerFilepath    string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath     string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel          string `env:"LOG_LEVEL,default=INFO"`
	StorageQuotaBytes int64  `env:"STORAGE_QUOTA_BYTES"`
}
