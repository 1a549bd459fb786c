// Command importer carrega comunas e bairros a partir das planilhas CSV da prefeitura.
//
//	importer -level neighborhoods -file barrios.csv \
//	    -id-column "CODIGO DEL BARRIO" -name-column NOMBRE \
//	    -parent-column "CODIGO DE LA COMUNA" -id-start 427 -parent-id-start 22
package main

import (
	"context"
	"flag"
	"os"

	"github.com/ledgerflow/corresponsal-api/internal/config"
	"github.com/ledgerflow/corresponsal-api/internal/domain"
	"github.com/ledgerflow/corresponsal-api/internal/infra/postgres"
	"github.com/ledgerflow/corresponsal-api/internal/usecase"
	"github.com/rs/zerolog/log"
)

func main() {
	var (
		level         = flag.String("level", "", "nível das regiões: departments, municipalities, communes ou neighborhoods")
		file          = flag.String("file", "", "caminho do CSV")
		idColumn      = flag.String("id-column", "", "coluna com o id de cada linha")
		nameColumn    = flag.String("name-column", "NOMBRE", "coluna com o nome")
		parentColumn  = flag.String("parent-column", "", "coluna com o id do pai")
		idStart       = flag.Int64("id-start", 0, "renumera as linhas a partir deste id (0 mantém o CSV)")
		parentIDStart = flag.Int64("parent-id-start", 0, "renumera os pais a partir deste id (0 mantém o CSV)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuração inválida")
	}
	config.SetupLogger(cfg)

	regionLevel, err := domain.ParseRegionLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Str("level", *level).Msg("Informe -level")
	}
	if *file == "" {
		log.Fatal().Msg("Informe -file")
	}
	if cfg.StorageDriver != config.StoragePostgres {
		log.Fatal().Msg("A importação só faz sentido com STORAGE_DRIVER=postgres")
	}

	ctx := context.Background()
	if cfg.RunMigrations {
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("Falha ao aplicar migrations")
		}
	}
	dbPool, err := postgres.NewPool(ctx, cfg.DatabaseURL, 2, 1)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível conectar ao banco de dados")
	}
	defer dbPool.Close()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Msg("Não foi possível abrir o CSV")
	}
	defer f.Close()

	importRegions := usecase.NewImportRegions(postgres.NewRegionRepository(dbPool), postgres.NewUow(dbPool))
	output, err := importRegions.Execute(ctx, usecase.ImportRegionsInput{
		Level:         regionLevel,
		Source:        f,
		IDColumn:      *idColumn,
		NameColumn:    *nameColumn,
		ParentColumn:  *parentColumn,
		IDStart:       *idStart,
		ParentIDStart: *parentIDStart,
	})
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Importação cancelada; nada foi gravado")
	}
	log.Info().Int("imported", output.Imported).Str("level", string(regionLevel)).Msg("✅ Importação concluída")
}
