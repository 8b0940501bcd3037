// Package httpserver manages server creation and api routing.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-budget/internal/accountdelivery"
	"github.com/go-petr/pet-budget/internal/accountservice"
	"github.com/go-petr/pet-budget/internal/budgetdelivery"
	"github.com/go-petr/pet-budget/internal/budgetjob"
	"github.com/go-petr/pet-budget/internal/budgetservice"
	"github.com/go-petr/pet-budget/internal/categorydelivery"
	"github.com/go-petr/pet-budget/internal/categoryservice"
	"github.com/go-petr/pet-budget/internal/exportdelivery"
	"github.com/go-petr/pet-budget/internal/exportservice"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/internal/profiledelivery"
	"github.com/go-petr/pet-budget/internal/profileservice"
	"github.com/go-petr/pet-budget/internal/syncbus"
	"github.com/go-petr/pet-budget/internal/transactiondelivery"
	"github.com/go-petr/pet-budget/internal/transactionservice"
	"github.com/go-petr/pet-budget/internal/validation"
	"github.com/go-petr/pet-budget/pkg/configpkg"
	"github.com/go-petr/pet-budget/pkg/tokenpkg"
)

// Server holds the storage, the handlers router and configuration.
type Server struct {
	Engine     *gin.Engine
	Config     configpkg.Config
	Repos      *Repos
	Objects    ObjectStore
	Bus        *syncbus.Bus
	TokenMaker tokenpkg.Maker
	Job        *budgetjob.Job

	closeObjects func() error
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// Close stops the budget job and releases the bus and the storage.
func (s *Server) Close() error {
	s.Job.Stop()
	s.Bus.Close()

	return errors.Join(s.closeObjects(), s.Repos.Close())
}

// NewTokenMaker returns the token maker of the configured kind.
func NewTokenMaker(config configpkg.Config) (tokenpkg.Maker, error) {
	return tokenpkg.NewMaker(config.TokenKind, config.TokenSymmetricKey)
}

// New creates Server type with instantiated domains and routes.
func New(ctx context.Context, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ctx = logger.WithContext(ctx)

	tokenMaker, err := NewTokenMaker(config)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterBinding(v); err != nil {
			return nil, fmt.Errorf("cannot register validators: %w", err)
		}
	}

	repos, err := OpenRepos(ctx, config)
	if err != nil {
		return nil, err
	}

	objects, closeObjects, err := OpenObjects(ctx, config)
	if err != nil {
		return nil, errors.Join(err, repos.Close())
	}

	bus := syncbus.New()

	transactionService := transactionservice.New(repos.Transactions)
	categoryService := categoryservice.New(repos.Categories)
	budgetService := budgetservice.New(repos.Budgets, repos.Transactions)
	profileService := profileservice.New(repos.Users, repos.Companies, objects, bus)
	accountService := accountservice.New(repos.Transactions, repos.Categories, repos.Budgets, repos.Users, repos.Companies, objects)
	exportService := exportservice.New(repos.Transactions, repos.Categories, repos.Budgets, repos.Users, repos.Companies)

	job, err := budgetjob.New(config.BudgetRefreshSpec, budgetService, logger)
	if err != nil {
		bus.Close()
		return nil, errors.Join(err, closeObjects(), repos.Close())
	}

	transactionHandler := transactiondelivery.NewHandler(transactionService)
	categoryHandler := categorydelivery.NewHandler(categoryService)
	budgetHandler := budgetdelivery.NewHandler(budgetService)
	profileHandler := profiledelivery.NewHandler(profileService)
	accountHandler := accountdelivery.NewHandler(accountService)
	exportHandler := exportdelivery.NewHandler(exportService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))

	engine.GET("/healthz", func(gctx *gin.Context) {
		gctx.Status(http.StatusNoContent)
	})

	authRoutes := engine.Group("/", middleware.AuthMiddleware(tokenMaker))

	transactionHandler.Register(authRoutes)
	categoryHandler.Register(authRoutes)
	budgetHandler.Register(authRoutes)
	profileHandler.Register(authRoutes)
	accountHandler.Register(authRoutes)
	exportHandler.Register(authRoutes)

	server := &Server{
		Engine:       engine,
		Config:       config,
		Repos:        repos,
		Objects:      objects,
		Bus:          bus,
		TokenMaker:   tokenMaker,
		Job:          job,
		closeObjects: closeObjects,
	}

	return server, nil
}
