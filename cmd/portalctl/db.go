package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/portal-rdp/internal/application/dto"
	"github.com/jhoicas/portal-rdp/internal/application/usecase"
	"github.com/jhoicas/portal-rdp/internal/domain"
	"github.com/jhoicas/portal-rdp/internal/domain/entity"
	"github.com/jhoicas/portal-rdp/internal/infrastructure/postgres"
	"github.com/jhoicas/portal-rdp/pkg/config"
	"github.com/jhoicas/portal-rdp/pkg/logger"
)

// openDB carga la configuración y abre el pool.
func openDB(ctx context.Context) (*pgxpool.Pool, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"}).Component("portalctl")
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return pool, log, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Aplica el esquema de base de datos (idempotente)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, log, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := postgres.Migrate(ctx, pool); err != nil {
				return err
			}
			log.Info().Msg("esquema aplicado")
			return nil
		},
	}
}

func seedAdminCmd() *cobra.Command {
	var email, password, name string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea el usuario admin inicial si no existe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, log, err := openDB(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			created, err := seedAdmin(ctx, usecase.NewUserUseCase(postgres.NewInternalUserRepository(pool)), email, password, name)
			if err != nil {
				return err
			}
			if !created {
				log.Info().Str("email", email).Msg("el admin ya existe, sin cambios")
				return nil
			}
			log.Info().Str("email", email).Msg("admin creado")
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email del admin")
	cmd.Flags().StringVar(&password, "password", "", "contraseña del personal interno (4 a 8 caracteres)")
	cmd.Flags().StringVar(&name, "nombre", "Administrador", "nombre a mostrar")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// seedAdmin devuelve false si el email ya estaba registrado.
func seedAdmin(ctx context.Context, uc *usecase.UserUseCase, email, password, name string) (bool, error) {
	_, err := uc.Create(ctx, dto.CreateInternalUserRequest{
		NombreUsuario: strings.TrimSpace(name),
		Email:         email,
		Password:      password,
		Rol:           entity.RoleAdmin,
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seed-admin: %w", err)
	}
	return true, nil
}
