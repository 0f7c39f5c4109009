package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/annel0/mmo-editor/internal/config"
	"github.com/annel0/mmo-editor/internal/edit"
	"github.com/annel0/mmo-editor/internal/eventbus"
	"github.com/annel0/mmo-editor/internal/logging"
	"github.com/annel0/mmo-editor/internal/vec"
	"github.com/annel0/mmo-editor/internal/world"
	"github.com/annel0/mmo-editor/internal/world/block"
)

func main() {
	cfgPath := flag.String("config", "", "Путь к YAML-конфигурации (по умолчанию ENV EDITOR_CONFIG)")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.Init(); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.Close()

	logging.Info("🧱 Запуск демонстрации редактора мира...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	maxBlocks := cfg.Editor.GetMaxBlocks()
	metricsPort := cfg.Server.GetMetricsPort()
	logging.Info("📡 Конфигурация: лимит=%d, fast_mode=%v, queue=%v, metrics=:%d",
		maxBlocks, cfg.Editor.FastMode, cfg.Editor.UseQueue, metricsPort)

	// === ШИНА СОБЫТИЙ ===
	var bus eventbus.EventBus
	if cfg.EventBus.URL != "" {
		retention := time.Duration(cfg.EventBus.Retention) * time.Hour
		jsBus, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream, retention)
		if err != nil {
			logging.Warn("JetStream недоступен (%v), используем in-memory шину", err)
			bus = eventbus.NewMemoryBus(1024)
		} else {
			bus = jsBus
		}
	} else {
		bus = eventbus.NewMemoryBus(1024)
	}
	eventbus.Init(bus)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Warn("LoggingListener не запущен: %v", err)
	}

	exporter := eventbus.NewMetricsExporter(bus)
	exporter.StartHTTP(fmt.Sprintf(":%d", metricsPort))

	// === МИР И СЕССИЯ ===
	w := world.NewMemoryWorld()
	es := edit.NewSession(w, maxBlocks)
	es.SetFastMode(cfg.Editor.FastMode)
	if cfg.Editor.UseQueue {
		es.EnableQueue()
	}

	// === СЦЕНАРИЙ РЕДАКТИРОВАНИЯ ===
	stone := edit.NewSinglePattern(block.NewState(block.StoneBlockID))
	grass := edit.NewSinglePattern(block.NewState(block.GrassBlockID))

	report := func(op string, affected int, err error) {
		if err != nil {
			logging.Error("❌ %s: %v (успело %d блоков)", op, err, affected)
			return
		}
		logging.Info("✅ %s: %d блоков", op, affected)
		_ = eventbus.Publish(context.Background(),
			eventbus.NewEnvelope(eventbus.EventEditApplied, op, es.ID().String(), affected))
	}

	// Платформа под постройку
	platform := edit.NewCuboidRegion(vec.Vec3{X: -20, Y: 0, Z: -20}, vec.Vec3{X: 20, Y: 3, Z: 20})
	affected, err := es.SetBlocks(platform, stone)
	report("платформа", affected, err)

	affected, err = es.OverlayCuboidBlocks(platform, grass)
	report("газон", affected, err)

	// Сфера и цилиндр
	affected, err = es.MakeSphere(vec.Vec3{X: 0, Y: 20, Z: 0}, stone, 8, false)
	report("сфера", affected, err)

	affected, err = es.MakeCylinder(vec.Vec3{X: 15, Y: 4, Z: 15}, stone, 4, 10, true)
	report("цилиндр", affected, err)

	// Произвольная форма по формуле: тор
	torus := edit.NewCuboidRegion(vec.Vec3{X: -30, Y: 10, Z: -60}, vec.Vec3{X: -10, Y: 30, Z: -40})
	affected, err = es.MakeShapeCentered(torus, stone, "(sqrt(x*x+z*z)-0.6)^2 + y*y <= 0.1", false)
	report("тор", affected, err)

	es.FlushQueue()

	// Откат сферы целиком
	undoTarget := edit.NewSession(w, edit.UnlimitedBlocks)
	es.Undo(undoTarget)

	logging.Info("📊 Итог: чанков загружено %d, изменений в сессии отката %d",
		w.LoadedChunkCount(), undoTarget.Size())

	exporter.Stop()
	logging.Info("👋 Демонстрация завершена")
}
