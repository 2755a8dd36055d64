package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBUri                 string `mapstructure:"DB_URI"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	StorageRoot           string `mapstructure:"STORAGE_ROOT"`
	StorageBaseURL        string `mapstructure:"STORAGE_BASE_URL"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("CONTEXT_TIMEOUT", 10)
	viper.SetDefault("DB_URI", "mongodb://localhost:27017")
	viper.SetDefault("DB_NAME", "wardrobeai")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY_HOUR", 2)
	viper.SetDefault("STORAGE_ROOT", "./data/images")
	viper.SetDefault("STORAGE_BASE_URL", "http://localhost:8080/static")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("no .env file found, relying on defaults and environment")
	}
	viper.AutomaticEnv()

	if err := viper.Unmarshal(&env); err != nil {
		log.Fatal("environment can't be loaded: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("the app is running in development env")
	}
	return &env
}
