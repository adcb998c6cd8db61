package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	log  *zap.Logger = zap.NewNop()
	once sync.Once
)

// Init khởi tạo logger toàn cục, gọi một lần khi start server
func Init(env string) *zap.Logger {
	once.Do(func() {
		var (
			l   *zap.Logger
			err error
		)
		if env == "production" {
			l, err = zap.NewProduction()
		} else {
			l, err = zap.NewDevelopment()
		}
		if err != nil {
			l = zap.NewExample()
		}
		log = l
	})
	return log
}

func L() *zap.Logger {
	return log
}

func Sync() {
	_ = log.Sync()
}
