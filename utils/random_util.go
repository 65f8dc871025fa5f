package utils

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// GetUUID 生成uuid，基于时间的uuid生成失败时退化为随机uuid
func GetUUID() string {
	u1, err := uuid.NewUUID()
	if err != nil {
		logrus.Warnf("NewUUID fail, err = %v", err)
		return uuid.NewString()
	}
	return u1.String()
}
