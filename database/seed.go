package database

import (
	"context"
	"fmt"
	"log/slog"

	"restaurant_manager/helper"
	"restaurant_manager/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
}

// SeedData creates the admin account and a starter menu; existing rows are kept.
func SeedData(ctx context.Context, db *gorm.DB, opts SeedOptions, log *slog.Logger) error {
	db = db.WithContext(ctx)

	hash, err := helper.HashPassword(opts.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := model.User{Email: opts.AdminEmail, Password: hash, Name: "Administrator", IsAdmin: true}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		return fmt.Errorf("seed admin %s: %w", admin.Email, err)
	}

	menu := []model.MenuItem{
		{Name: "Margherita Pizza", Price: decimal.RequireFromString("12.50"), Category: "Mains", Description: "Tomato, mozzarella, basil"},
		{Name: "Mushroom Risotto", Price: decimal.RequireFromString("14.00"), Category: "Mains", Description: "Arborio rice, porcini, parmesan"},
		{Name: "Caesar Salad", Price: decimal.RequireFromString("9.00"), Category: "Starters", Description: "Romaine, croutons, anchovy dressing"},
		{Name: "Tomato Soup", Price: decimal.RequireFromString("6.50"), Category: "Starters"},
		{Name: "Tiramisu", Price: decimal.RequireFromString("7.00"), Category: "Desserts"},
		{Name: "House Lemonade", Price: decimal.RequireFromString("3.50"), Category: "Drinks"},
	}

	store := NewStore(db)
	seeded := 0
	for _, item := range menu {
		var count int64
		if err := db.Model(&model.MenuItem{}).Where("name = ?", item.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := store.CreateMenuItem(ctx, &item); err != nil {
			log.Error("failed to seed menu item", "name", item.Name, "error", err)
			continue
		}
		seeded++
	}

	log.Info("seed finished", "admin", admin.Email, "menuItems", seeded)
	return nil
}
