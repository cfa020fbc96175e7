package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/plasmahub/plasma-builder-backend/internal/logger"
	"github.com/plasmahub/plasma-builder-backend/internal/types"
	"github.com/plasmahub/plasma-builder-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "plasma_builder", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := autoMigrate(s.db); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		table, name, ddl string
	}{
		{"variation", "fk_variation_component_id",
			`ALTER TABLE "variation" ADD CONSTRAINT "fk_variation_component_id" FOREIGN KEY ("component_id") REFERENCES "component"("id") ON DELETE CASCADE`},
		{"token", "fk_token_component_id",
			`ALTER TABLE "token" ADD CONSTRAINT "fk_token_component_id" FOREIGN KEY ("component_id") REFERENCES "component"("id") ON DELETE CASCADE`},
		{"token_variation", "fk_token_variation_token_id",
			`ALTER TABLE "token_variation" ADD CONSTRAINT "fk_token_variation_token_id" FOREIGN KEY ("token_id") REFERENCES "token"("id") ON DELETE CASCADE`},
		{"token_variation", "fk_token_variation_variation_id",
			`ALTER TABLE "token_variation" ADD CONSTRAINT "fk_token_variation_variation_id" FOREIGN KEY ("variation_id") REFERENCES "variation"("id") ON DELETE CASCADE`},
		{"variation_value", "fk_variation_value_variation_id",
			`ALTER TABLE "variation_value" ADD CONSTRAINT "fk_variation_value_variation_id" FOREIGN KEY ("variation_id") REFERENCES "variation"("id") ON DELETE CASCADE`},
		{"token_value", "fk_token_value_variation_value_id",
			`ALTER TABLE "token_value" ADD CONSTRAINT "fk_token_value_variation_value_id" FOREIGN KEY ("variation_value_id") REFERENCES "variation_value"("id") ON DELETE CASCADE`},
		{"invariant_token_value", "fk_invariant_token_value_token_id",
			`ALTER TABLE "invariant_token_value" ADD CONSTRAINT "fk_invariant_token_value_token_id" FOREIGN KEY ("token_id") REFERENCES "token"("id") ON DELETE CASCADE`},
		{"props_api", "fk_props_api_component_id",
			`ALTER TABLE "props_api" ADD CONSTRAINT "fk_props_api_component_id" FOREIGN KEY ("component_id") REFERENCES "component"("id") ON DELETE CASCADE`},
		{"design_system_component", "fk_design_system_component_design_system_id",
			`ALTER TABLE "design_system_component" ADD CONSTRAINT "fk_design_system_component_design_system_id" FOREIGN KEY ("design_system_id") REFERENCES "design_system"("id") ON DELETE CASCADE`},
	}
	for _, c := range constraints {
		var count int64
		s.db.Raw(`SELECT COUNT(*) FROM information_schema.table_constraints WHERE table_name = ? AND constraint_name = ?`, c.table, c.name).Scan(&count)
		if count > 0 {
			continue
		}
		if err := s.db.Exec(c.ddl).Error; err != nil {
			return fmt.Errorf("add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

func autoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&types.DesignSystem{},
		&types.DesignSystemComponent{},
		&types.Component{},
		&types.Variation{},
		&types.Token{},
		&types.TokenVariation{},
		&types.VariationValue{},
		&types.TokenValue{},
		&types.InvariantTokenValue{},
		&types.PropsAPI{},
	)
}
