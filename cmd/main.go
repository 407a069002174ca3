package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"gocatalog/config"
	"gocatalog/internal/domain"
	"gocatalog/internal/pkg/database"
	"gocatalog/internal/pkg/kvstore"
	"gocatalog/internal/pkg/logger"
	"gocatalog/internal/pkg/middleware"
	"gocatalog/internal/pkg/token"
	"gocatalog/internal/stockpolicy"

	"gocatalog/internal/api/brand"
	"gocatalog/internal/api/product"
	"gocatalog/internal/api/router"
	"gocatalog/internal/api/stock"
	"gocatalog/internal/api/typeproduct"
	"gocatalog/internal/repository/memrepo"
	"gocatalog/internal/repository/namedrepo"
	"gocatalog/internal/repository/productrepo"
	"gocatalog/internal/service/brandservice"
	"gocatalog/internal/service/productservice"
	"gocatalog/internal/service/relationservice"
	"gocatalog/internal/service/stockservice"
	"gocatalog/internal/service/typeservice"
)

// @title GoCatalog API
// @version 1.0
// @description Catálogo de produtos com marcas, tipos e políticas de estoque.
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	app := &cli.App{
		Name:   "gocatalog",
		Usage:  "catálogo de produtos com marcas, tipos e políticas de estoque",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "inicia o servidor HTTP",
				Action: serve,
			},
			{
				Name:  "token",
				Usage: "emite um JWT para chamar as rotas de escrita",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Value: "operator", Usage: "sujeito do token"},
					&cli.StringFlag{Name: "role", Aliases: []string{"r"}, Value: string(domain.RoleEditor), Usage: "admin, editor ou viewer"},
					&cli.DurationFlag{Name: "ttl", Usage: "validade do token (padrão: JWT_EXPIRY)"},
				},
				Action: issueToken,
			},
			{
				Name:  "schema",
				Usage: "imprime o DDL aplicado na inicialização",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, database.Schema())
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func issueToken(c *cli.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	role := domain.Role(c.String("role"))
	if !role.Valid() {
		return fmt.Errorf("papel desconhecido %q", role)
	}
	ttl := c.Duration("ttl")
	if ttl <= 0 {
		ttl = cfg.TokenExpiry
	}

	signed, err := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry).GenerateTokenWithExpiry(c.String("subject"), string(role), ttl)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, signed)
	return nil
}

// repositories agrupa as três implementações de domain.Repository escolhidas pelo STORE_DRIVER.
type repositories struct {
	products domain.ProductRepository
	brands   domain.BrandRepository
	types    domain.TypeProductRepository
	close    func() error
}

func openRepositories(ctx context.Context, cfg *config.Config, log logger.Logger) (repositories, error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		store := memrepo.NewStore()
		log.Warn("Usando armazenamento em memória; os dados são perdidos ao encerrar.", nil)
		return repositories{products: store.Products, brands: store.Brands, types: store.Types, close: func() error { return nil }}, nil
	}

	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		return repositories{}, err
	}
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return repositories{}, err
	}
	log.Info("Schema verificado.", nil)

	return repositories{
		products: productrepo.NewProductRepository(db, cfg.DBTimeout, log),
		brands:   namedrepo.NewBrandRepository(db, cfg.DBTimeout, log),
		types:    namedrepo.NewTypeProductRepository(db, cfg.DBTimeout, log),
		close:    db.Close,
	}, nil
}

func serve(c *cli.Context) error {
	log.Println("⚡ Inicializando serviço GoCatalog...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment, "store": cfg.StoreDriver})

	// 1. Infraestrutura
	repos, err := openRepositories(c.Context, cfg, appLog)
	if err != nil {
		appLog.Error("Falha ao abrir o armazenamento.", err)
		return err
	}
	defer repos.close()

	var rateLimit func(http.Handler) http.Handler
	if cfg.RedisAddr != "" {
		kv, err := kvstore.NewRedisClient(cfg.RedisAddr)
		if err != nil {
			appLog.Error("Falha ao conectar ao Redis.", err)
			return err
		}
		defer kv.Close()
		rateLimit = middleware.RateLimiter(kv, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog)
		appLog.Info("Conexão Redis estabelecida; rate limit ativo.", map[string]interface{}{"max": cfg.RateLimitMaxRequests})
	}

	defaultPolicy, err := stockpolicy.ByName(cfg.StockPolicy)
	if err != nil {
		return err
	}

	// 2. Injeção de dependências: Repository -> Service -> Handler
	resolver := relationservice.NewResolver(repos.brands, repos.types, appLog)
	handlers := router.Handlers{
		Product:     product.NewHandler(productservice.NewService(repos.products, resolver, appLog), appLog),
		Brand:       brand.NewHandler(brandservice.NewService(repos.brands, appLog), appLog),
		TypeProduct: typeproduct.NewHandler(typeservice.NewService(repos.types, appLog), appLog),
		Stock:       stock.NewHandler(stockservice.NewService(repos.products, defaultPolicy, appLog), appLog),
	}
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.TokenExpiry)

	r := router.NewRouter(handlers, router.Options{Tokens: tokenSvc, Logger: appLog, RateLimit: rateLimit})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 3. Execução e Graceful Shutdown
	serverErr := make(chan error, 1)
	go func() {
		appLog.Info("Servidor GoCatalog ouvindo na porta", map[string]interface{}{"port": cfg.Port, "policy": defaultPolicy.Name()})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		appLog.Error("Servidor falhou.", err)
		return err
	case <-quit:
		appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
		return err
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
	return nil
}
