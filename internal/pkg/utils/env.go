package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func lookupEnv(key string) (string, bool) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func GetEnvString(key, defaultValue string) string {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Error parsing %s: %v, will use default value %d", key, err, defaultValue)
		return defaultValue
	}
	return intValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, ok := lookupEnv(key)
	if !ok {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("Error parsing %s: %v, will use default value %t", key, err, defaultValue)
		return defaultValue
	}
	return boolValue
}
