package magna

import "github.com/prometheus/client_golang/prometheus"

// Prometheus-метрики пайплайна разрушения. Регистрируются в глобальном
// регистре при загрузке пакета; хост отдает их через свой /metrics.
var (
	breakAttempts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "magna",
		Name:      "break_attempts_total",
		Help:      "Попытки радиусного разрушения по результатам.",
	}, []string{"result"})

	blocksBroken = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "magna",
		Name:      "blocks_broken_total",
		Help:      "Блоки, разрушенные проходами радиусного разрушения.",
	})

	candidatesSkipped = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "magna",
		Name:      "candidates_skipped_total",
		Help:      "Кандидаты, пропущенные как пустые или непригодные.",
	})

	dropsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "magna",
		Name:      "drops_processed_total",
		Help:      "Дропы, прошедшие через процессор.",
	})

	dropsSuppressed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "magna",
		Name:      "drops_suppressed_total",
		Help:      "Дропы, подавленные процессором.",
	})
)

// Результаты попытки разрушения для метрики break_attempts_total
const (
	resultOK               = "ok"
	resultSneakGated       = "sneak_gated"
	resultOriginIneligible = "origin_ineligible"
)

func init() {
	prometheus.MustRegister(
		breakAttempts,
		blocksBroken,
		candidatesSkipped,
		dropsProcessed,
		dropsSuppressed,
	)
}
