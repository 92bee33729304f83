package logger

import "go.uber.org/zap"

// Log — глобальный логгер процесса. До Init пишет в никуда, чтобы пакеты
// можно было гонять в тестах без инициализации.
var Log = zap.NewNop()

func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	Log = l
}

func Sync() {
	_ = Log.Sync()
}
