package settings

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const Prefix = "MINUS_ONE"

func LoadEnvFiles() {
	env := os.Getenv(EnvKey("ENV"))
	if env == "" {
		env = DefaultEnv
	}

	godotenv.Load(".env." + env + ".local")
	godotenv.Load(".env." + env)
	godotenv.Load()
}

func GetenvStr(key string) string {
	return os.Getenv(EnvKey(key))
}

func EnvKey(str string) string {
	return fmt.Sprintf("%s_%s", Prefix, str)
}
