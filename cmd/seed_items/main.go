// seed_items carga un catálogo de items desde un CSV (nombre;cantidad;minimo) en PostgreSQL.
//
// Uso: go run ./cmd/seed_items [-charset latin1] [-sep ';'] [-dry-run] catalogo.csv
// Los items cuyo nombre ya existe (sin distinguir mayúsculas) se omiten.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/catalog"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

func main() {
	charset := flag.String("charset", catalog.CharsetUTF8, "codificación del archivo: utf-8, latin1, windows-1252")
	sep := flag.String("sep", ";", "separador de columnas")
	dryRun := flag.Bool("dry-run", false, "solo valida el archivo, no escribe")
	flag.Parse()

	if flag.NArg() != 1 || len([]rune(*sep)) != 1 {
		fmt.Fprintln(os.Stderr, "uso: seed_items [-charset latin1] [-sep ';'] [-dry-run] catalogo.csv")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed_items")

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir catálogo")
	}
	defer f.Close()

	items, rowErrs, err := catalog.Parse(f, catalog.Options{Charset: *charset, Separator: []rune(*sep)[0]})
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogo")
	}
	for _, re := range rowErrs {
		log.Warn().Int("line", re.Line).Str("reason", re.Reason).Msg("fila descartada")
	}
	log.Info().Int("valid", len(items)).Int("discarded", len(rowErrs)).Msg("catálogo leído")
	if *dryRun {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if _, err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	itemUC := usecase.NewItemUseCase(postgres.NewItemRepository(pool))
	var created, skipped int
	for _, in := range items {
		existing, err := itemUC.List(ctx, in.Name)
		if err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("consultar item")
		}
		if hasName(existing.Items, in.Name) {
			skipped++
			continue
		}
		if _, err := itemUC.Create(ctx, in); err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("crear item")
		}
		created++
	}
	log.Info().Int("created", created).Int("skipped", skipped).Msg("carga finalizada")
}

func hasName(items []dto.ItemResponse, name string) bool {
	for _, it := range items {
		if strings.EqualFold(it.Name, name) {
			return true
		}
	}
	return false
}
