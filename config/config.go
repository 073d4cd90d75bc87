package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// .env is optional, deployments set the environment directly
	godotenv.Load()
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func GetListenAddr() string {
	addr, err := GetSecret("LISTEN_ADDR")
	if err != nil {
		return ":80"
	}
	return addr
}
