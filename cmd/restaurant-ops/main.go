package main

import (
	"flag"
	"fmt"
	"os"

	"restaurant-ops/internal/app/admin"
	"restaurant-ops/internal/app/chef"
	"restaurant-ops/internal/app/customer"
	"restaurant-ops/internal/app/gate"
	"restaurant-ops/internal/app/manager"
	"restaurant-ops/internal/common/cli"
	"restaurant-ops/internal/common/config"
	"restaurant-ops/internal/common/logger"
	"restaurant-ops/internal/connections/textstore"
	"restaurant-ops/internal/domain"
	"restaurant-ops/internal/feedback"
	"restaurant-ops/internal/inventory"
	"restaurant-ops/internal/ledger"
	"restaurant-ops/internal/menu"
	"restaurant-ops/internal/sales"
	"restaurant-ops/internal/users"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	lg := logger.New("bootstrap")

	store, err := textstore.New(cfg.DataDir)
	if err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}
	if err := store.EnsureDatasets(
		users.Dataset, menu.Dataset, ledger.Dataset, inventory.Dataset, feedback.Dataset,
	); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}

	userRepo := users.NewUserRepository(store)
	menuRepo := menu.NewMenuRepository(store)
	orderRepo := ledger.NewOrderRepository(store)
	requestRepo := inventory.NewRequestRepository(store)
	feedbackRepo := feedback.NewFeedbackRepository(store)

	userSvc := users.NewUserService(userRepo)
	menuSvc := menu.NewMenuService(menuRepo)
	orderSvc := ledger.NewOrderService(orderRepo, menuSvc)
	salesSvc := sales.NewSalesService(orderRepo, menuSvc)
	requestSvc := inventory.NewRequestService(requestRepo)
	feedbackSvc := feedback.NewFeedbackService(feedbackRepo, orderRepo)

	if err := userSvc.SeedDefaultAdmin(cfg.SeedAdmin.Username, cfg.SeedAdmin.Password); err != nil {
		lg.Error("fatal", err, nil)
		os.Exit(1)
	}

	p := cli.New(os.Stdin, os.Stdout)
	gateScreen := gate.New(p, userSvc, cfg.MaxLoginAttempts)
	adminScreen := admin.New(p, userSvc, salesSvc, feedbackSvc)
	managerScreen := manager.New(p, menuSvc, orderSvc, feedbackSvc, requestSvc, userSvc)
	chefScreen := chef.New(p, orderSvc, requestSvc, userSvc)
	customerScreen := customer.New(p, menuSvc, orderSvc, feedbackSvc, userSvc)

	lg.Info("service_started", map[string]any{"data_dir": cfg.DataDir})
	p.Say("=== Restaurant Management System ===")

	// One login/logout cycle per iteration; the process ends when the input
	// stream does.
	for {
		sess, ok := gateScreen.Run()
		if !ok {
			break
		}
		switch sess.Role {
		case domain.RoleAdmin:
			adminScreen.Run(sess)
		case domain.RoleManager:
			managerScreen.Run(sess)
		case domain.RoleChef:
			chefScreen.Run(sess)
		case domain.RoleCustomer:
			customerScreen.Run(sess)
		}
	}
	lg.Info("service_stopped", nil)
}
