package compute_overlap

// OverlapObserver получает размер каждого вычисленного пересечения (метрики)
type OverlapObserver interface {
	ObserveOverlap(source string, intervals int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
