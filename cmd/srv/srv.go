package main

import (
	"context"
	"net/http"

	"github.com/nordicmagic/backend/config"
	"github.com/nordicmagic/backend/internal/domain"
	"github.com/nordicmagic/backend/internal/repository"
	"github.com/nordicmagic/backend/pkg/logger"
	"github.com/nordicmagic/backend/pkg/router"
	"github.com/nordicmagic/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs config.Configs

	claimRepo   repository.ClaimRepository
	attemptRepo repository.AttemptRepository

	oracleDomain   domain.OracleDomain
	discountDomain domain.DiscountDomain
	catalogDomain  domain.CatalogDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadLogger() {
	l := logger.NewLogger(logger.ParseLevel(s.configs.LogLevel))
	s.ctx = xcontext.WithLogger(s.ctx, l)
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadRepos() {
	s.claimRepo = repository.NewClaimRepository()
	s.attemptRepo = repository.NewAttemptRepository()
}

func (s *srv) loadDomains() {
	s.oracleDomain = domain.NewOracleDomain(s.claimRepo, s.attemptRepo, nil)
	s.discountDomain = domain.NewDiscountDomain(s.claimRepo)
	s.catalogDomain = domain.NewCatalogDomain()
}
