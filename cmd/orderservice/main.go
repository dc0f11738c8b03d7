package main

import (
	"context"
	"fmt"

	"github.com/vcstore/orderservice/internal/adapter/client/catalog"
	"github.com/vcstore/orderservice/internal/adapter/config"
	"github.com/vcstore/orderservice/internal/adapter/handler/http"
	"github.com/vcstore/orderservice/internal/adapter/logger"
	"github.com/vcstore/orderservice/internal/adapter/storage"
	"github.com/vcstore/orderservice/internal/adapter/storage/repository"
	"github.com/vcstore/orderservice/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	orderRepo, err := repository.NewOrderRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}
	lineRepo, err := repository.NewOrderLineRepository(db)
	if err != nil {
		log.Error("order line repo creating error", zap.Error(err))
		return
	}
	customerRepo, err := repository.NewCustomerRepository(db)
	if err != nil {
		log.Error("customer repo creating error", zap.Error(err))
		return
	}

	catalogClient, err := catalog.NewClient(conf.Catalog, log.Named("Catalog"))
	if err != nil {
		log.Error("catalog client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(orderRepo, lineRepo, customerRepo, catalogClient, log.Named("Service"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	customerHandler, err := http.NewCustomerHandler(svc, log.Named("Customer handler"))
	if err != nil {
		log.Error("customer handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(catalogClient, log.Named("Product handler"))
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler, customerHandler, productHandler, log.Named("Router"))
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
