package edit

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики редактора. Регистрируются в глобальном регистре при
// инициализации пакета, экспорт наружу делает cmd/editor.
var (
	metricBlocksChanged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "editor",
		Name:      "blocks_changed_total",
		Help:      "Общее число успешно применённых записей блоков.",
	})

	metricLimitRejections = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "editor",
		Name:      "change_limit_rejections_total",
		Help:      "Число записей, отклонённых лимитом изменений сессии.",
	})

	metricOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "editor",
		Name:      "operations_total",
		Help:      "Число вызовов региональных операций по именам.",
	}, []string{"op"})

	metricQueueFlushes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "editor",
		Name:      "queue_flushes_total",
		Help:      "Число сбросов отложенной очереди установки.",
	})
)

func init() {
	prometheus.MustRegister(metricBlocksChanged, metricLimitRejections, metricOperations, metricQueueFlushes)
}
